package suite

import (
	"context"

	"github.com/clinichub/apicheck/internal/model"
)

func SOAPNotes() Suite {
	var (
		patient   *model.Patient
		encounter *model.Encounter
		note      *model.SOAPNote
	)

	return Suite{
		Name: "soap-notes",
		Checks: []Check{
			{Name: "create note on encounter", Run: func(ctx context.Context, env *Env) error {
				p, err := newPatient(ctx, env)
				if err != nil {
					return err
				}
				patient = p
				encounter, err = env.Client.CreateEncounter(ctx, model.CreateEncounterRequest{
					PatientID: patient.ID,
					Clinician: env.Fix.ClinicianName(),
					Type:      "office_visit",
					Reason:    "persistent cough",
				})
				if err != nil {
					return err
				}
				note, err = env.Client.CreateSOAPNote(ctx, model.CreateSOAPNoteRequest{
					EncounterID: encounter.ID,
					Subjective:  "Patient reports dry cough for two weeks.",
					Objective:   "Lungs clear to auscultation, afebrile.",
					Assessment:  "Likely post-viral cough.",
					Plan:        "Supportive care, follow up in two weeks if persists.",
				})
				if err != nil {
					return err
				}
				return expectf(note.Status == model.SOAPNoteStatusDraft, "new note status: got %q", note.Status)
			}},
			{Name: "note for unknown encounter rejected", Run: func(ctx context.Context, env *Env) error {
				_, err := env.Client.CreateSOAPNote(ctx, model.CreateSOAPNoteRequest{
					EncounterID: randomID(),
					Subjective:  "s", Objective: "o", Assessment: "a", Plan: "p",
				})
				return expectRejected(err, "note for unknown encounter")
			}},
			{Name: "update draft note", Run: func(ctx context.Context, env *Env) error {
				if note == nil {
					return expectf(false, "note fixture missing")
				}
				plan := "Chest X-ray if symptoms persist beyond four weeks."
				updated, err := env.Client.UpdateSOAPNote(ctx, note.ID, model.UpdateSOAPNoteRequest{Plan: &plan})
				if err != nil {
					return err
				}
				return expectf(updated.Plan == plan, "plan not updated: got %q", updated.Plan)
			}},
			{Name: "sign note", Run: func(ctx context.Context, env *Env) error {
				if note == nil {
					return expectf(false, "note fixture missing")
				}
				signed, err := env.Client.SignSOAPNote(ctx, note.ID)
				if err != nil {
					return err
				}
				if err := expectf(signed.Status == model.SOAPNoteStatusSigned, "status after signing: got %q", signed.Status); err != nil {
					return err
				}
				return expectf(signed.SignedAt != nil && signed.SignedBy != "", "signed note missing signer metadata")
			}},
			{Name: "signed note is immutable", Run: func(ctx context.Context, env *Env) error {
				if note == nil {
					return expectf(false, "note fixture missing")
				}
				plan := "late edit"
				_, err := env.Client.UpdateSOAPNote(ctx, note.ID, model.UpdateSOAPNoteRequest{Plan: &plan})
				return expectRejected(err, "edit of signed note")
			}},
			{Name: "double sign rejected", Run: func(ctx context.Context, env *Env) error {
				if note == nil {
					return expectf(false, "note fixture missing")
				}
				_, err := env.Client.SignSOAPNote(ctx, note.ID)
				return expectRejected(err, "second signature")
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
