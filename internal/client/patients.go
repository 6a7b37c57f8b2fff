package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/clinichub/apicheck/internal/model"
)

func (c *Client) CreatePatient(ctx context.Context, req model.CreatePatientRequest) (*model.Patient, error) {
	if err := model.Validate(req); err != nil {
		return nil, err
	}
	var patient model.Patient
	if err := c.do(ctx, http.MethodPost, "/api/patients", req, &patient); err != nil {
		return nil, err
	}
	return &patient, nil
}

func (c *Client) GetPatient(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	var patient model.Patient
	if err := c.do(ctx, http.MethodGet, "/api/patients/"+id.String(), nil, &patient); err != nil {
		return nil, err
	}
	return &patient, nil
}

func (c *Client) ListPatients(ctx context.Context, filters model.PatientFilters) ([]model.Patient, error) {
	q := url.Values{}
	if filters.Search != "" {
		q.Set("search", filters.Search)
	}
	if filters.Status != "" {
		q.Set("status", filters.Status)
	}
	path := "/api/patients"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	var patients []model.Patient
	if err := c.do(ctx, http.MethodGet, path, nil, &patients); err != nil {
		return nil, err
	}
	return patients, nil
}

func (c *Client) UpdatePatient(ctx context.Context, id uuid.UUID, req model.UpdatePatientRequest) (*model.Patient, error) {
	if err := model.Validate(req); err != nil {
		return nil, err
	}
	var patient model.Patient
	if err := c.do(ctx, http.MethodPut, "/api/patients/"+id.String(), req, &patient); err != nil {
		return nil, err
	}
	return &patient, nil
}

func (c *Client) DeletePatient(ctx context.Context, id uuid.UUID) error {
	if err := c.do(ctx, http.MethodDelete, "/api/patients/"+id.String(), nil, nil); err != nil {
		return fmt.Errorf("delete patient %s: %w", id, err)
	}
	return nil
}
