package suite

import (
	"context"

	"github.com/clinichub/apicheck/internal/model"
)

func Prescriptions() Suite {
	var (
		patient *model.Patient
		rx      *model.Prescription
	)

	return Suite{
		Name: "prescriptions",
		Checks: []Check{
			{Name: "create prescription", Run: func(ctx context.Context, env *Env) error {
				p, err := newPatient(ctx, env)
				if err != nil {
					return err
				}
				patient = p
				medication, dosage, frequency := env.Fix.Medication()
				rx, err = env.Client.CreatePrescription(ctx, model.CreatePrescriptionRequest{
					PatientID:  patient.ID,
					Medication: medication,
					Dosage:     dosage,
					Frequency:  frequency,
					Refills:    1,
				})
				if err != nil {
					return err
				}
				return expectf(rx.Status == model.PrescriptionStatusActive, "new rx status: got %q", rx.Status)
			}},
			{Name: "refill decrements count", Run: func(ctx context.Context, env *Env) error {
				if rx == nil {
					return expectf(false, "prescription fixture missing")
				}
				refilled, err := env.Client.RefillPrescription(ctx, rx.ID)
				if err != nil {
					return err
				}
				return expectf(refilled.Refills == 0, "refills after refill: got %d", refilled.Refills)
			}},
			{Name: "refill with none remaining rejected", Run: func(ctx context.Context, env *Env) error {
				if rx == nil {
					return expectf(false, "prescription fixture missing")
				}
				_, err := env.Client.RefillPrescription(ctx, rx.ID)
				return expectRejected(err, "refill with zero remaining")
			}},
			{Name: "discontinue prescription", Run: func(ctx context.Context, env *Env) error {
				if rx == nil {
					return expectf(false, "prescription fixture missing")
				}
				discontinued, err := env.Client.DiscontinuePrescription(ctx, rx.ID)
				if err != nil {
					return err
				}
				return expectf(discontinued.Status == model.PrescriptionStatusDiscontinued,
					"status after discontinue: got %q", discontinued.Status)
			}},
			{Name: "refill of discontinued rx rejected", Run: func(ctx context.Context, env *Env) error {
				if rx == nil {
					return expectf(false, "prescription fixture missing")
				}
				_, err := env.Client.RefillPrescription(ctx, rx.ID)
				return expectRejected(err, "refill of discontinued prescription")
			}},
		},
		Cleanup: []Check{
			{Name: "delete prescription", Run: func(ctx context.Context, env *Env) error {
				if rx == nil {
					return nil
				}
				return env.Client.DeletePrescription(ctx, rx.ID)
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
