package suite

import (
	"context"
	"time"

	"github.com/clinichub/apicheck/internal/model"
)

func Telehealth() Suite {
	var (
		patient *model.Patient
		session *model.TelehealthSession
	)

	return Suite{
		Name: "telehealth",
		Checks: []Check{
			{Name: "schedule session", Run: func(ctx context.Context, env *Env) error {
				p, err := newPatient(ctx, env)
				if err != nil {
					return err
				}
				patient = p
				session, err = env.Client.CreateSession(ctx, model.CreateSessionRequest{
					PatientID:   patient.ID,
					Clinician:   env.Fix.ClinicianName(),
					ScheduledAt: time.Now().Add(time.Hour).UTC(),
				})
				if err != nil {
					return err
				}
				if err := expectf(session.Status == model.SessionStatusScheduled, "new session status: got %q", session.Status); err != nil {
					return err
				}
				return expectf(session.JoinToken == "", "join token issued before start")
			}},
			{Name: "complete before start rejected", Run: func(ctx context.Context, env *Env) error {
				if session == nil {
					return expectf(false, "session fixture missing")
				}
				_, err := env.Client.CompleteSession(ctx, session.ID)
				return expectRejected(err, "completing a session that never started")
			}},
			{Name: "start issues join token", Run: func(ctx context.Context, env *Env) error {
				if session == nil {
					return expectf(false, "session fixture missing")
				}
				started, err := env.Client.StartSession(ctx, session.ID)
				if err != nil {
					return err
				}
				if err := expectf(started.Status == model.SessionStatusInProgress, "status after start: got %q", started.Status); err != nil {
					return err
				}
				return expectf(started.JoinToken != "", "started session has no join token")
			}},
			{Name: "double start rejected", Run: func(ctx context.Context, env *Env) error {
				if session == nil {
					return expectf(false, "session fixture missing")
				}
				_, err := env.Client.StartSession(ctx, session.ID)
				return expectRejected(err, "starting a session twice")
			}},
			{Name: "complete session", Run: func(ctx context.Context, env *Env) error {
				if session == nil {
					return expectf(false, "session fixture missing")
				}
				completed, err := env.Client.CompleteSession(ctx, session.ID)
				if err != nil {
					return err
				}
				if err := expectf(completed.Status == model.SessionStatusCompleted, "status after complete: got %q", completed.Status); err != nil {
					return err
				}
				return expectf(completed.JoinToken == "", "join token survived completion")
			}},
		},
		Cleanup: []Check{
			{Name: "delete session", Run: func(ctx context.Context, env *Env) error {
				if session == nil {
					return nil
				}
				return env.Client.DeleteSession(ctx, session.ID)
			}},
			{Name: "delete patient", Run: func(ctx context.Context, env *Env) error {
				if patient == nil {
					return nil
				}
				return env.Client.DeletePatient(ctx, patient.ID)
			}},
		},
	}
}
