package suite

import (
	"context"

	"github.com/clinichub/apicheck/internal/model"
)

func Encounters() Suite {
	var (
		patient   *model.Patient
		encounter *model.Encounter
	)

	return Suite{
		Name: "encounters",
		Checks: []Check{
			{Name: "create encounter for patient", Run: func(ctx context.Context, env *Env) error {
				p, err := newPatient(ctx, env)
				if err != nil {
					return err
				}
				patient = p
				encounter, err = env.Client.CreateEncounter(ctx, model.CreateEncounterRequest{
					PatientID: patient.ID,
					Clinician: env.Fix.ClinicianName(),
					Type:      "office_visit",
					Reason:    "annual physical",
				})
				if err != nil {
					return err
				}
				return expectf(encounter.Status == model.EncounterStatusInProgress,
					"new encounter status: got %q want %q", encounter.Status, model.EncounterStatusInProgress)
			}},
			{Name: "encounter for unknown patient rejected", Run: func(ctx context.Context, env *Env) error {
				_, err := env.Client.CreateEncounter(ctx, model.CreateEncounterRequest{
					PatientID: randomID(),
					Clinician: env.Fix.ClinicianName(),
					Type:      "office_visit",
					Reason:    "ghost visit",
				})
				return expectRejected(err, "encounter for unknown patient")
			}},
			{Name: "list by patient includes encounter", Run: func(ctx context.Context, env *Env) error {
				if patient == nil || encounter == nil {
					return expectf(false, "encounter fixture missing")
				}
				encounters, err := env.Client.ListEncountersByPatient(ctx, patient.ID)
				if err != nil {
					return err
				}
				for _, e := range encounters {
					if e.ID == encounter.ID {
						return nil
					}
				}
				return expectf(false, "created encounter missing from patient listing")
			}},
			{Name: "complete encounter", Run: func(ctx context.Context, env *Env) error {
				if encounter == nil {
					return expectf(false, "encounter fixture missing")
				}
				updated, err := env.Client.UpdateEncounterStatus(ctx, encounter.ID, model.EncounterStatusCompleted)
				if err != nil {
					return err
				}
				return expectf(updated.Status == model.EncounterStatusCompleted,
					"status after completion: got %q", updated.Status)
			}},
			{Name: "completed encounter cannot change status", Run: func(ctx context.Context, env *Env) error {
				if encounter == nil {
					return expectf(false, "encounter fixture missing")
				}
				_, err := env.Client.UpdateEncounterStatus(ctx, encounter.ID, model.EncounterStatusInProgress)
				return expectRejected(err, "status change on completed encounter")
			}},
		},
		Cleanup: []Check{
			{Name: "delete encounter", Run: func(ctx context.Context, env *Env) error {
				if encounter == nil {
					return nil
				}
				return env.Client.DeleteEncounter(ctx, encounter.ID)
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
