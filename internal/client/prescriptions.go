package client

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/clinichub/apicheck/internal/model"
)

func (c *Client) CreatePrescription(ctx context.Context, req model.CreatePrescriptionRequest) (*model.Prescription, error) {
	if err := model.Validate(req); err != nil {
		return nil, err
	}
	var rx model.Prescription
	if err := c.do(ctx, http.MethodPost, "/api/prescriptions", req, &rx); err != nil {
		return nil, err
	}
	return &rx, nil
}

func (c *Client) GetPrescription(ctx context.Context, id uuid.UUID) (*model.Prescription, error) {
	var rx model.Prescription
	if err := c.do(ctx, http.MethodGet, "/api/prescriptions/"+id.String(), nil, &rx); err != nil {
		return nil, err
	}
	return &rx, nil
}

// RefillPrescription consumes one refill; the server rejects the call once
// no refills remain.
func (c *Client) RefillPrescription(ctx context.Context, id uuid.UUID) (*model.Prescription, error) {
	var rx model.Prescription
	if err := c.do(ctx, http.MethodPost, "/api/prescriptions/"+id.String()+"/refill", nil, &rx); err != nil {
		return nil, err
	}
	return &rx, nil
}

func (c *Client) DiscontinuePrescription(ctx context.Context, id uuid.UUID) (*model.Prescription, error) {
	var rx model.Prescription
	if err := c.do(ctx, http.MethodPost, "/api/prescriptions/"+id.String()+"/discontinue", nil, &rx); err != nil {
		return nil, err
	}
	return &rx, nil
}

func (c *Client) DeletePrescription(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/prescriptions/"+id.String(), nil, nil)
}
