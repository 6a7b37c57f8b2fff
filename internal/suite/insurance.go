package suite

import (
	"context"

	"github.com/clinichub/apicheck/internal/model"
)

func Insurance() Suite {
	var (
		patient *model.Patient
		policy  *model.InsurancePolicy
		invoice *model.Invoice
		claim   *model.InsuranceClaim
	)

	return Suite{
		Name: "insurance",
		Checks: []Check{
			{Name: "add policy for patient", Run: func(ctx context.Context, env *Env) error {
				p, err := newPatient(ctx, env)
				if err != nil {
					return err
				}
				patient = p
				policy, err = env.Client.CreatePolicy(ctx, model.CreatePolicyRequest{
					PatientID:   patient.ID,
					Provider:    env.Fix.InsuranceProvider(),
					MemberID:    env.Fix.MemberID(),
					GroupNumber: "GRP-1001",
				})
				if err != nil {
					return err
				}
				return expectf(policy.Status == "active", "policy status: got %q", policy.Status)
			}},
			{Name: "verify policy eligibility", Run: func(ctx context.Context, env *Env) error {
				if policy == nil {
					return expectf(false, "policy fixture missing")
				}
				result, err := env.Client.VerifyPolicy(ctx, policy.ID)
				if err != nil {
					return err
				}
				if err := expectf(result.PolicyID == policy.ID, "verification for wrong policy"); err != nil {
					return err
				}
				return expectf(result.Eligible, "active policy reported ineligible")
			}},
			{Name: "submit claim against invoice", Run: func(ctx context.Context, env *Env) error {
				if patient == nil || policy == nil {
					return expectf(false, "policy fixture missing")
				}
				var err error
				invoice, err = env.Client.CreateInvoice(ctx, model.CreateInvoiceRequest{
					PatientID: patient.ID,
					LineItems: []model.LineItem{{Description: "Specialist consult", Quantity: 1, UnitPrice: 22000}},
				})
				if err != nil {
					return err
				}
				claim, err = env.Client.SubmitClaim(ctx, model.CreateClaimRequest{
					InvoiceID: invoice.ID,
					PolicyID:  policy.ID,
				})
				if err != nil {
					return err
				}
				if err := expectf(claim.Amount == invoice.Total, "claim amount: got %d want %d", claim.Amount, invoice.Total); err != nil {
					return err
				}
				return expectf(claim.Status == model.ClaimStatusSubmitted, "claim status: got %q", claim.Status)
			}},
			{Name: "claim status lookup", Run: func(ctx context.Context, env *Env) error {
				if claim == nil {
					return expectf(false, "claim fixture missing")
				}
				fetched, err := env.Client.GetClaim(ctx, claim.ID)
				if err != nil {
					return err
				}
				return expectf(fetched.ID == claim.ID, "claim lookup returned wrong claim")
			}},
			{Name: "claim for unknown policy rejected", Run: func(ctx context.Context, env *Env) error {
				if invoice == nil {
					return expectf(false, "invoice fixture missing")
				}
				_, err := env.Client.SubmitClaim(ctx, model.CreateClaimRequest{
					InvoiceID: invoice.ID,
					PolicyID:  randomID(),
				})
				return expectRejected(err, "claim against unknown policy")
			}},
		},
		Cleanup: []Check{
			{Name: "delete invoice", Run: func(ctx context.Context, env *Env) error {
				if invoice == nil {
					return nil
				}
				return env.Client.DeleteInvoice(ctx, invoice.ID)
			}},
			{Name: "delete policy", Run: func(ctx context.Context, env *Env) error {
				if policy == nil {
					return nil
				}
				return env.Client.DeletePolicy(ctx, policy.ID)
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
