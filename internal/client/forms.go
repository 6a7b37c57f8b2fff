package client

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/clinichub/apicheck/internal/model"
)

func (c *Client) CreateFormTemplate(ctx context.Context, req model.CreateFormTemplateRequest) (*model.FormTemplate, error) {
	if err := model.Validate(req); err != nil {
		return nil, err
	}
	var template model.FormTemplate
	if err := c.do(ctx, http.MethodPost, "/api/forms/templates", req, &template); err != nil {
		return nil, err
	}
	return &template, nil
}

func (c *Client) GetFormTemplate(ctx context.Context, id uuid.UUID) (*model.FormTemplate, error) {
	var template model.FormTemplate
	if err := c.do(ctx, http.MethodGet, "/api/forms/templates/"+id.String(), nil, &template); err != nil {
		return nil, err
	}
	return &template, nil
}

func (c *Client) SubmitForm(ctx context.Context, req model.CreateFormSubmissionRequest) (*model.FormSubmission, error) {
	if err := model.Validate(req); err != nil {
		return nil, err
	}
	var submission model.FormSubmission
	if err := c.do(ctx, http.MethodPost, "/api/forms/submissions", req, &submission); err != nil {
		return nil, err
	}
	return &submission, nil
}

func (c *Client) GetFormSubmission(ctx context.Context, id uuid.UUID) (*model.FormSubmission, error) {
	var submission model.FormSubmission
	if err := c.do(ctx, http.MethodGet, "/api/forms/submissions/"+id.String(), nil, &submission); err != nil {
		return nil, err
	}
	return &submission, nil
}

func (c *Client) DeleteFormTemplate(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/forms/templates/"+id.String(), nil, nil)
}
