package suite

import (
	"context"

	"github.com/clinichub/apicheck/internal/model"
)

func Referrals() Suite {
	var (
		patient  *model.Patient
		referral *model.Referral
	)

	return Suite{
		Name: "referrals",
		Checks: []Check{
			{Name: "create referral", Run: func(ctx context.Context, env *Env) error {
				p, err := newPatient(ctx, env)
				if err != nil {
					return err
				}
				patient = p
				referral, err = env.Client.CreateReferral(ctx, model.CreateReferralRequest{
					PatientID:  patient.ID,
					Specialty:  "cardiology",
					ReferredTo: env.Fix.ClinicianName(),
					Reason:     "abnormal ECG",
					Priority:   "urgent",
				})
				if err != nil {
					return err
				}
				return expectf(referral.Status == model.ReferralStatusPending, "new referral status: got %q", referral.Status)
			}},
			{Name: "pending cannot jump to completed", Run: func(ctx context.Context, env *Env) error {
				if referral == nil {
					return expectf(false, "referral fixture missing")
				}
				_, err := env.Client.UpdateReferralStatus(ctx, referral.ID, model.ReferralStatusCompleted)
				return expectRejected(err, "pending to completed transition")
			}},
			{Name: "accept referral", Run: func(ctx context.Context, env *Env) error {
				if referral == nil {
					return expectf(false, "referral fixture missing")
				}
				updated, err := env.Client.UpdateReferralStatus(ctx, referral.ID, model.ReferralStatusAccepted)
				if err != nil {
					return err
				}
				return expectf(updated.Status == model.ReferralStatusAccepted, "status after accept: got %q", updated.Status)
			}},
			{Name: "accepted cannot be declined", Run: func(ctx context.Context, env *Env) error {
				if referral == nil {
					return expectf(false, "referral fixture missing")
				}
				_, err := env.Client.UpdateReferralStatus(ctx, referral.ID, model.ReferralStatusDeclined)
				return expectRejected(err, "declining an accepted referral")
			}},
			{Name: "complete referral", Run: func(ctx context.Context, env *Env) error {
				if referral == nil {
					return expectf(false, "referral fixture missing")
				}
				updated, err := env.Client.UpdateReferralStatus(ctx, referral.ID, model.ReferralStatusCompleted)
				if err != nil {
					return err
				}
				return expectf(updated.Status == model.ReferralStatusCompleted, "status after complete: got %q", updated.Status)
			}},
		},
		Cleanup: []Check{
			{Name: "delete referral", Run: func(ctx context.Context, env *Env) error {
				if referral == nil {
					return nil
				}
				return env.Client.DeleteReferral(ctx, referral.ID)
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
