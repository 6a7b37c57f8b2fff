// Package report collects check results and prints the pass/fail summary.
package report

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

type Outcome string

const (
	OutcomePass Outcome = "PASS"
	OutcomeFail Outcome = "FAIL"
	OutcomeSkip Outcome = "SKIP"
)

// Result is the outcome of a single named check.
type Result struct {
	Suite    string
	Check    string
	Outcome  Outcome
	Err      error
	Duration time.Duration
}

// Summary aggregates a whole run.
type Summary struct {
	Target     string
	StartedAt  time.Time
	FinishedAt time.Time
	Results    []Result
	Passed     int
	Failed     int
	Skipped    int
}

func (s Summary) Ok() bool {
	return s.Failed == 0
}

// Recorder accumulates results and prints one line per check as it lands.
type Recorder struct {
	mu      sync.Mutex
	out     io.Writer
	target  string
	started time.Time
	results []Result
	metrics *Metrics
}

func NewRecorder(target string, metrics *Metrics) *Recorder {
	return &Recorder{
		out:     os.Stdout,
		target:  target,
		started: time.Now(),
		metrics: metrics,
	}
}

// SetOutput redirects the printed lines, for tests.
func (r *Recorder) SetOutput(w io.Writer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.out = w
}

func (r *Recorder) Record(res Result) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, res)
	if r.metrics != nil {
		r.metrics.Observe(res)
	}
	switch res.Outcome {
	case OutcomeFail:
		fmt.Fprintf(r.out, "[FAIL] %s/%s (%s): %v\n", res.Suite, res.Check, res.Duration.Round(time.Millisecond), res.Err)
	case OutcomeSkip:
		fmt.Fprintf(r.out, "[SKIP] %s/%s\n", res.Suite, res.Check)
	default:
		fmt.Fprintf(r.out, "[PASS] %s/%s (%s)\n", res.Suite, res.Check, res.Duration.Round(time.Millisecond))
	}
}

// Summarize finalizes the run and prints the totals block.
func (r *Recorder) Summarize() Summary {
	r.mu.Lock()
	defer r.mu.Unlock()

	summary := Summary{
		Target:     r.target,
		StartedAt:  r.started,
		FinishedAt: time.Now(),
		Results:    append([]Result(nil), r.results...),
	}
	for _, res := range r.results {
		switch res.Outcome {
		case OutcomePass:
			summary.Passed++
		case OutcomeFail:
			summary.Failed++
		case OutcomeSkip:
			summary.Skipped++
		}
	}

	fmt.Fprintf(r.out, "\n%d checks: %d passed, %d failed, %d skipped (%s)\n",
		len(summary.Results), summary.Passed, summary.Failed, summary.Skipped,
		summary.FinishedAt.Sub(summary.StartedAt).Round(time.Millisecond))
	if summary.Ok() {
		fmt.Fprintln(r.out, "RESULT: PASS")
	} else {
		fmt.Fprintln(r.out, "RESULT: FAIL")
		for _, res := range summary.Results {
			if res.Outcome == OutcomeFail {
				fmt.Fprintf(r.out, "  - %s/%s: %v\n", res.Suite, res.Check, res.Err)
			}
		}
	}
	return summary
}
