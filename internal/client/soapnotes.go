package client

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/clinichub/apicheck/internal/model"
)

func (c *Client) CreateSOAPNote(ctx context.Context, req model.CreateSOAPNoteRequest) (*model.SOAPNote, error) {
	if err := model.Validate(req); err != nil {
		return nil, err
	}
	var note model.SOAPNote
	if err := c.do(ctx, http.MethodPost, "/api/soap-notes", req, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (c *Client) GetSOAPNote(ctx context.Context, id uuid.UUID) (*model.SOAPNote, error) {
	var note model.SOAPNote
	if err := c.do(ctx, http.MethodGet, "/api/soap-notes/"+id.String(), nil, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (c *Client) UpdateSOAPNote(ctx context.Context, id uuid.UUID, req model.UpdateSOAPNoteRequest) (*model.SOAPNote, error) {
	var note model.SOAPNote
	if err := c.do(ctx, http.MethodPut, "/api/soap-notes/"+id.String(), req, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// SignSOAPNote finalizes a draft note; the server rejects edits afterwards.
func (c *Client) SignSOAPNote(ctx context.Context, id uuid.UUID) (*model.SOAPNote, error) {
	var note model.SOAPNote
	if err := c.do(ctx, http.MethodPost, "/api/soap-notes/"+id.String()+"/sign", nil, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (c *Client) DeleteSOAPNote(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/soap-notes/"+id.String(), nil, nil)
}
