package client

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/clinichub/apicheck/internal/model"
)

func (c *Client) CreateSession(ctx context.Context, req model.CreateSessionRequest) (*model.TelehealthSession, error) {
	if err := model.Validate(req); err != nil {
		return nil, err
	}
	var session model.TelehealthSession
	if err := c.do(ctx, http.MethodPost, "/api/telehealth/sessions", req, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *Client) GetSession(ctx context.Context, id uuid.UUID) (*model.TelehealthSession, error) {
	var session model.TelehealthSession
	if err := c.do(ctx, http.MethodGet, "/api/telehealth/sessions/"+id.String(), nil, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// StartSession moves a scheduled session to in_progress and returns the
// join token for the video room.
func (c *Client) StartSession(ctx context.Context, id uuid.UUID) (*model.TelehealthSession, error) {
	var session model.TelehealthSession
	if err := c.do(ctx, http.MethodPost, "/api/telehealth/sessions/"+id.String()+"/start", nil, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *Client) CompleteSession(ctx context.Context, id uuid.UUID) (*model.TelehealthSession, error) {
	var session model.TelehealthSession
	if err := c.do(ctx, http.MethodPost, "/api/telehealth/sessions/"+id.String()+"/complete", nil, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *Client) DeleteSession(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/telehealth/sessions/"+id.String(), nil, nil)
}
