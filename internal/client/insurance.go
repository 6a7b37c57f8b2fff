package client

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/clinichub/apicheck/internal/model"
)

func (c *Client) CreatePolicy(ctx context.Context, req model.CreatePolicyRequest) (*model.InsurancePolicy, error) {
	if err := model.Validate(req); err != nil {
		return nil, err
	}
	var policy model.InsurancePolicy
	if err := c.do(ctx, http.MethodPost, "/api/insurance/policies", req, &policy); err != nil {
		return nil, err
	}
	return &policy, nil
}

func (c *Client) GetPolicy(ctx context.Context, id uuid.UUID) (*model.InsurancePolicy, error) {
	var policy model.InsurancePolicy
	if err := c.do(ctx, http.MethodGet, "/api/insurance/policies/"+id.String(), nil, &policy); err != nil {
		return nil, err
	}
	return &policy, nil
}

// VerifyPolicy runs the eligibility check for a policy.
func (c *Client) VerifyPolicy(ctx context.Context, id uuid.UUID) (*model.VerificationResult, error) {
	var result model.VerificationResult
	if err := c.do(ctx, http.MethodGet, "/api/insurance/policies/"+id.String()+"/verify", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) SubmitClaim(ctx context.Context, req model.CreateClaimRequest) (*model.InsuranceClaim, error) {
	if err := model.Validate(req); err != nil {
		return nil, err
	}
	var claim model.InsuranceClaim
	if err := c.do(ctx, http.MethodPost, "/api/insurance/claims", req, &claim); err != nil {
		return nil, err
	}
	return &claim, nil
}

func (c *Client) GetClaim(ctx context.Context, id uuid.UUID) (*model.InsuranceClaim, error) {
	var claim model.InsuranceClaim
	if err := c.do(ctx, http.MethodGet, "/api/insurance/claims/"+id.String(), nil, &claim); err != nil {
		return nil, err
	}
	return &claim, nil
}

func (c *Client) DeletePolicy(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/insurance/policies/"+id.String(), nil, nil)
}
