package suite

import (
	"context"

	"github.com/clinichub/apicheck/internal/model"
)

func Billing() Suite {
	var (
		patient *model.Patient
		invoice *model.Invoice
	)

	return Suite{
		Name: "billing",
		Checks: []Check{
			{Name: "create invoice computes total", Run: func(ctx context.Context, env *Env) error {
				p, err := newPatient(ctx, env)
				if err != nil {
					return err
				}
				patient = p
				invoice, err = env.Client.CreateInvoice(ctx, model.CreateInvoiceRequest{
					PatientID: patient.ID,
					LineItems: []model.LineItem{
						{Description: "Office visit", Quantity: 1, UnitPrice: 15000},
						{Description: "Rapid strep test", Quantity: 2, UnitPrice: 2500},
					},
				})
				if err != nil {
					return err
				}
				const want = 15000 + 2*2500
				if err := expectf(invoice.Total == want, "total: got %d want %d", invoice.Total, want); err != nil {
					return err
				}
				if err := expectf(invoice.Balance == want, "balance: got %d want %d", invoice.Balance, want); err != nil {
					return err
				}
				return expectf(invoice.Status == model.InvoiceStatusOpen, "status: got %q", invoice.Status)
			}},
			{Name: "empty invoice rejected", Run: func(ctx context.Context, env *Env) error {
				if patient == nil {
					return expectf(false, "patient fixture missing")
				}
				_, err := env.Client.CreateInvoice(ctx, model.CreateInvoiceRequest{
					PatientID: patient.ID,
					LineItems: []model.LineItem{},
				})
				return expectRejected(err, "invoice without line items")
			}},
			{Name: "partial payment reduces balance", Run: func(ctx context.Context, env *Env) error {
				if invoice == nil {
					return expectf(false, "invoice fixture missing")
				}
				updated, err := env.Client.RecordPayment(ctx, invoice.ID, model.RecordPaymentRequest{
					Amount: 5000, Method: "card",
				})
				if err != nil {
					return err
				}
				if err := expectf(updated.AmountPaid == 5000, "amount paid: got %d", updated.AmountPaid); err != nil {
					return err
				}
				return expectf(updated.Balance == invoice.Total-5000, "balance: got %d", updated.Balance)
			}},
			{Name: "overpayment rejected", Run: func(ctx context.Context, env *Env) error {
				if invoice == nil {
					return expectf(false, "invoice fixture missing")
				}
				_, err := env.Client.RecordPayment(ctx, invoice.ID, model.RecordPaymentRequest{
					Amount: invoice.Total * 10, Method: "cash",
				})
				return expectRejected(err, "payment exceeding balance")
			}},
			{Name: "paying off marks invoice paid", Run: func(ctx context.Context, env *Env) error {
				if invoice == nil {
					return expectf(false, "invoice fixture missing")
				}
				updated, err := env.Client.RecordPayment(ctx, invoice.ID, model.RecordPaymentRequest{
					Amount: invoice.Total - 5000, Method: "card",
				})
				if err != nil {
					return err
				}
				if err := expectf(updated.Balance == 0, "balance after payoff: got %d", updated.Balance); err != nil {
					return err
				}
				return expectf(updated.Status == model.InvoiceStatusPaid, "status after payoff: got %q", updated.Status)
			}},
			{Name: "payment on paid invoice rejected", Run: func(ctx context.Context, env *Env) error {
				if invoice == nil {
					return expectf(false, "invoice fixture missing")
				}
				_, err := env.Client.RecordPayment(ctx, invoice.ID, model.RecordPaymentRequest{
					Amount: 100, Method: "cash",
				})
				return expectRejected(err, "payment on settled invoice")
			}},
			{Name: "list by patient includes invoice", Run: func(ctx context.Context, env *Env) error {
				if patient == nil || invoice == nil {
					return expectf(false, "invoice fixture missing")
				}
				invoices, err := env.Client.ListInvoicesByPatient(ctx, patient.ID)
				if err != nil {
					return err
				}
				for _, inv := range invoices {
					if inv.ID == invoice.ID {
						return nil
					}
				}
				return expectf(false, "invoice missing from patient listing")
			}},
		},
		Cleanup: []Check{
			{Name: "delete invoice", Run: func(ctx context.Context, env *Env) error {
				if invoice == nil {
					return nil
				}
				return env.Client.DeleteInvoice(ctx, invoice.ID)
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
