package report

import (
	"bytes"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomail "gopkg.in/gomail.v2"
)

func TestRecorderPrintsAndCounts(t *testing.T) {
	var buf bytes.Buffer
	rec := NewRecorder("http://localhost:8080", nil)
	rec.SetOutput(&buf)

	rec.Record(Result{Suite: "patients", Check: "create patient", Outcome: OutcomePass, Duration: 12 * time.Millisecond})
	rec.Record(Result{Suite: "billing", Check: "overpayment rejected", Outcome: OutcomeFail, Err: errors.New("accepted"), Duration: 3 * time.Millisecond})
	rec.Record(Result{Suite: "billing", Check: "pay off invoice", Outcome: OutcomeSkip})

	summary := rec.Summarize()
	assert.Equal(t, 1, summary.Passed)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 1, summary.Skipped)
	assert.False(t, summary.Ok())

	out := buf.String()
	assert.Contains(t, out, "[PASS] patients/create patient")
	assert.Contains(t, out, "[FAIL] billing/overpayment rejected")
	assert.Contains(t, out, "[SKIP] billing/pay off invoice")
	assert.Contains(t, out, "RESULT: FAIL")
	assert.Contains(t, out, "3 checks: 1 passed, 1 failed, 1 skipped")
}

func TestRecorderPassVerdict(t *testing.T) {
	var buf bytes.Buffer
	rec := NewRecorder("stub", nil)
	rec.SetOutput(&buf)
	rec.Record(Result{Suite: "auth", Check: "login", Outcome: OutcomePass})

	summary := rec.Summarize()
	assert.True(t, summary.Ok())
	assert.Contains(t, buf.String(), "RESULT: PASS")
}

func TestMailerFormatsSummary(t *testing.T) {
	var sent *gomail.Message
	m := &Mailer{
		cfg: EmailConfig{From: "apicheck@clinichub.local", To: []string{"oncall@clinichub.local"}},
		send: func(msg *gomail.Message) error {
			sent = msg
			return nil
		},
	}

	summary := Summary{
		Target:     "https://staging.clinichub.example",
		StartedAt:  time.Now().Add(-time.Minute),
		FinishedAt: time.Now(),
		Passed:     40,
		Failed:     2,
		Results: []Result{
			{Suite: "inventory", Check: "adjust below zero rejected", Outcome: OutcomeFail, Err: errors.New("stock went negative")},
		},
	}
	require.NoError(t, m.Send(summary))
	require.NotNil(t, sent)

	subject := sent.GetHeader("Subject")
	require.Len(t, subject, 1)
	assert.Contains(t, subject[0], "FAIL")
	assert.Contains(t, subject[0], "40 passed, 2 failed")
}

func TestMailerSendFailure(t *testing.T) {
	m := &Mailer{
		cfg:  EmailConfig{From: "a@b", To: []string{"c@d"}},
		send: func(*gomail.Message) error { return errors.New("smtp down") },
	}
	assert.Error(t, m.Send(Summary{}))
}

func TestEmailConfigEnabled(t *testing.T) {
	assert.False(t, EmailConfig{}.Enabled())
	assert.False(t, EmailConfig{Host: "smtp.example.com"}.Enabled())
	assert.True(t, EmailConfig{Host: "smtp.example.com", To: []string{"x@y"}}.Enabled())
}

func TestMetricsExposition(t *testing.T) {
	m := NewMetrics("apicheck")
	m.Observe(Result{Suite: "patients", Outcome: OutcomePass, Duration: 20 * time.Millisecond})
	m.Observe(Result{Suite: "patients", Outcome: OutcomeFail, Duration: 5 * time.Millisecond})

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	body := w.Body.String()
	assert.Contains(t, body, `apicheck_checks_total{outcome="PASS",suite="patients"} 1`)
	assert.Contains(t, body, `apicheck_checks_total{outcome="FAIL",suite="patients"} 1`)
	assert.Contains(t, body, "apicheck_check_duration_seconds")
}
