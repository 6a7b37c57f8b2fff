package client

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/clinichub/apicheck/internal/model"
)

func (c *Client) CreateInvoice(ctx context.Context, req model.CreateInvoiceRequest) (*model.Invoice, error) {
	if err := model.Validate(req); err != nil {
		return nil, err
	}
	var invoice model.Invoice
	if err := c.do(ctx, http.MethodPost, "/api/invoices", req, &invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (c *Client) GetInvoice(ctx context.Context, id uuid.UUID) (*model.Invoice, error) {
	var invoice model.Invoice
	if err := c.do(ctx, http.MethodGet, "/api/invoices/"+id.String(), nil, &invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (c *Client) ListInvoicesByPatient(ctx context.Context, patientID uuid.UUID) ([]model.Invoice, error) {
	var invoices []model.Invoice
	path := "/api/invoices?patient_id=" + patientID.String()
	if err := c.do(ctx, http.MethodGet, path, nil, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

func (c *Client) RecordPayment(ctx context.Context, invoiceID uuid.UUID, req model.RecordPaymentRequest) (*model.Invoice, error) {
	if err := model.Validate(req); err != nil {
		return nil, err
	}
	var invoice model.Invoice
	if err := c.do(ctx, http.MethodPost, "/api/invoices/"+invoiceID.String()+"/payments", req, &invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (c *Client) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/invoices/"+id.String(), nil, nil)
}
