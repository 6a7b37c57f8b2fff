package client

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/clinichub/apicheck/internal/model"
)

func (c *Client) CreateReferral(ctx context.Context, req model.CreateReferralRequest) (*model.Referral, error) {
	if err := model.Validate(req); err != nil {
		return nil, err
	}
	var referral model.Referral
	if err := c.do(ctx, http.MethodPost, "/api/referrals", req, &referral); err != nil {
		return nil, err
	}
	return &referral, nil
}

func (c *Client) GetReferral(ctx context.Context, id uuid.UUID) (*model.Referral, error) {
	var referral model.Referral
	if err := c.do(ctx, http.MethodGet, "/api/referrals/"+id.String(), nil, &referral); err != nil {
		return nil, err
	}
	return &referral, nil
}

func (c *Client) UpdateReferralStatus(ctx context.Context, id uuid.UUID, status model.ReferralStatus) (*model.Referral, error) {
	req := model.UpdateReferralStatusRequest{Status: status}
	if err := model.Validate(req); err != nil {
		return nil, err
	}
	var referral model.Referral
	if err := c.do(ctx, http.MethodPut, "/api/referrals/"+id.String()+"/status", req, &referral); err != nil {
		return nil, err
	}
	return &referral, nil
}

func (c *Client) DeleteReferral(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/referrals/"+id.String(), nil, nil)
}
