package report

import (
	"fmt"
	"strings"
	"time"

	gomail "gopkg.in/gomail.v2"
)

// EmailConfig configures the optional summary mail.
type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       []string
}

func (c EmailConfig) Enabled() bool {
	return c.Host != "" && len(c.To) > 0
}

// Mailer sends run summaries over SMTP.
type Mailer struct {
	cfg  EmailConfig
	send func(*gomail.Message) error
}

func NewMailer(cfg EmailConfig) *Mailer {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return &Mailer{cfg: cfg, send: func(m *gomail.Message) error {
		return dialer.DialAndSend(m)
	}}
}

func (m *Mailer) Send(summary Summary) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", m.cfg.To...)
	msg.SetHeader("Subject", subject(summary))
	msg.SetBody("text/plain", body(summary))
	if err := m.send(msg); err != nil {
		return fmt.Errorf("send summary mail: %w", err)
	}
	return nil
}

func subject(s Summary) string {
	verdict := "PASS"
	if !s.Ok() {
		verdict = "FAIL"
	}
	return fmt.Sprintf("[apicheck] %s: %s (%d passed, %d failed)", verdict, s.Target, s.Passed, s.Failed)
}

func body(s Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Target:   %s\n", s.Target)
	fmt.Fprintf(&b, "Started:  %s\n", s.StartedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(&b, "Duration: %s\n", s.FinishedAt.Sub(s.StartedAt).Round(time.Millisecond))
	fmt.Fprintf(&b, "Checks:   %d passed, %d failed, %d skipped\n", s.Passed, s.Failed, s.Skipped)
	if !s.Ok() {
		b.WriteString("\nFailures:\n")
		for _, res := range s.Results {
			if res.Outcome == OutcomeFail {
				fmt.Fprintf(&b, "  - %s/%s: %v\n", res.Suite, res.Check, res.Err)
			}
		}
	}
	return b.String()
}
