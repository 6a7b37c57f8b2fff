package client

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/clinichub/apicheck/internal/model"
)

func (c *Client) CreateEncounter(ctx context.Context, req model.CreateEncounterRequest) (*model.Encounter, error) {
	if err := model.Validate(req); err != nil {
		return nil, err
	}
	var encounter model.Encounter
	if err := c.do(ctx, http.MethodPost, "/api/encounters", req, &encounter); err != nil {
		return nil, err
	}
	return &encounter, nil
}

func (c *Client) GetEncounter(ctx context.Context, id uuid.UUID) (*model.Encounter, error) {
	var encounter model.Encounter
	if err := c.do(ctx, http.MethodGet, "/api/encounters/"+id.String(), nil, &encounter); err != nil {
		return nil, err
	}
	return &encounter, nil
}

func (c *Client) ListEncountersByPatient(ctx context.Context, patientID uuid.UUID) ([]model.Encounter, error) {
	var encounters []model.Encounter
	path := "/api/encounters?patient_id=" + patientID.String()
	if err := c.do(ctx, http.MethodGet, path, nil, &encounters); err != nil {
		return nil, err
	}
	return encounters, nil
}

func (c *Client) UpdateEncounterStatus(ctx context.Context, id uuid.UUID, status model.EncounterStatus) (*model.Encounter, error) {
	req := model.UpdateEncounterStatusRequest{Status: status}
	if err := model.Validate(req); err != nil {
		return nil, err
	}
	var encounter model.Encounter
	if err := c.do(ctx, http.MethodPut, "/api/encounters/"+id.String()+"/status", req, &encounter); err != nil {
		return nil, err
	}
	return &encounter, nil
}

func (c *Client) DeleteEncounter(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/encounters/"+id.String(), nil, nil)
}
