package suite

import (
	"context"

	"github.com/google/uuid"

	"github.com/clinichub/apicheck/internal/model"
)

func Patients() Suite {
	var (
		created *model.Patient
		request model.CreatePatientRequest
	)

	return Suite{
		Name: "patients",
		Checks: []Check{
			{Name: "create patient", Run: func(ctx context.Context, env *Env) error {
				request = env.Fix.Patient()
				patient, err := env.Client.CreatePatient(ctx, request)
				if err != nil {
					return err
				}
				created = patient
				return expectf(patient.ID != uuid.Nil, "created patient has no id")
			}},
			{Name: "get returns created fields", Run: func(ctx context.Context, env *Env) error {
				if created == nil {
					return expectf(false, "patient fixture missing")
				}
				patient, err := env.Client.GetPatient(ctx, created.ID)
				if err != nil {
					return err
				}
				if err := expectf(patient.Name == request.Name, "name mismatch: got %q want %q", patient.Name, request.Name); err != nil {
					return err
				}
				if err := expectf(patient.Email == request.Email, "email mismatch: got %q want %q", patient.Email, request.Email); err != nil {
					return err
				}
				return expectf(patient.Status == model.PatientStatusActive, "status mismatch: got %q", patient.Status)
			}},
			{Name: "list with search finds patient", Run: func(ctx context.Context, env *Env) error {
				if created == nil {
					return expectf(false, "patient fixture missing")
				}
				patients, err := env.Client.ListPatients(ctx, model.PatientFilters{Search: request.Email})
				if err != nil {
					return err
				}
				for _, p := range patients {
					if p.ID == created.ID {
						return nil
					}
				}
				return expectf(false, "search %q did not return created patient", request.Email)
			}},
			{Name: "update changes status", Run: func(ctx context.Context, env *Env) error {
				if created == nil {
					return expectf(false, "patient fixture missing")
				}
				inactive := "inactive"
				patient, err := env.Client.UpdatePatient(ctx, created.ID, model.UpdatePatientRequest{Status: &inactive})
				if err != nil {
					return err
				}
				return expectf(patient.Status == model.PatientStatusInactive, "status not updated: got %q", patient.Status)
			}},
			{Name: "duplicate email rejected", Run: func(ctx context.Context, env *Env) error {
				dup := env.Fix.Patient()
				dup.Email = request.Email
				_, err := env.Client.CreatePatient(ctx, dup)
				return expectRejected(err, "duplicate patient email")
			}},
			{Name: "get unknown patient is 404", Run: func(ctx context.Context, env *Env) error {
				_, err := env.Client.GetPatient(ctx, randomID())
				return expectRejected(err, "lookup of unknown patient")
			}},
		},
		Cleanup: []Check{
			{Name: "delete patient", Run: func(ctx context.Context, env *Env) error {
				if created == nil {
					return nil
				}
				return env.Client.DeletePatient(ctx, created.ID)
			}},
		},
	}
}
