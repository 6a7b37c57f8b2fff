package suite

import (
	"context"
	"time"

	"github.com/clinichub/apicheck/internal/report"
)

// Run executes the suites sequentially, recording one result per check.
// Cleanup checks always run; their failures are logged, not counted.
func Run(ctx context.Context, suites []Suite, env *Env, rec *report.Recorder, stopOnFailure bool) {
	for _, s := range suites {
		runSuite(ctx, s, env, rec, stopOnFailure)
	}
}

func runSuite(ctx context.Context, s Suite, env *Env, rec *report.Recorder, stopOnFailure bool) {
	env.Log.Info().Str("suite", s.Name).Int("checks", len(s.Checks)).Msg("running suite")

	aborted := false
	for _, c := range s.Checks {
		if aborted || ctx.Err() != nil {
			rec.Record(report.Result{Suite: s.Name, Check: c.Name, Outcome: report.OutcomeSkip})
			continue
		}
		start := time.Now()
		err := c.Run(ctx, env)
		res := report.Result{
			Suite:    s.Name,
			Check:    c.Name,
			Outcome:  report.OutcomePass,
			Duration: time.Since(start),
		}
		if err != nil {
			res.Outcome = report.OutcomeFail
			res.Err = err
			if stopOnFailure {
				aborted = true
			}
		}
		rec.Record(res)
	}

	for _, c := range s.Cleanup {
		if err := c.Run(ctx, env); err != nil {
			env.Log.Warn().Err(err).Str("suite", s.Name).Str("cleanup", c.Name).Msg("cleanup failed")
		}
	}
}
