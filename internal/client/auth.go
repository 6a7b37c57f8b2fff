package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/clinichub/apicheck/internal/model"
)

// Login authenticates and caches the returned token pair for later calls.
func (c *Client) Login(ctx context.Context, email, password string) (*model.TokenPair, error) {
	req := model.LoginRequest{Email: email, Password: password}
	if err := model.Validate(req); err != nil {
		return nil, err
	}
	var pair model.TokenPair
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", req, &pair); err != nil {
		return nil, err
	}
	if pair.AccessToken == "" {
		return nil, fmt.Errorf("login succeeded but no access token returned")
	}
	c.storeTokens(pair)
	return &pair, nil
}

// Refresh exchanges the cached refresh token for a fresh pair.
func (c *Client) Refresh(ctx context.Context) (*model.TokenPair, error) {
	refresh, ok := c.tokens.Get(refreshTokenKey)
	if !ok {
		return nil, fmt.Errorf("no refresh token cached; login first")
	}
	var pair model.TokenPair
	err := c.do(ctx, http.MethodPost, "/api/auth/refresh", model.RefreshRequest{RefreshToken: refresh.(string)}, &pair)
	if err != nil {
		return nil, err
	}
	c.storeTokens(pair)
	return &pair, nil
}

// Me returns the authenticated account.
func (c *Client) Me(ctx context.Context) (*model.Account, error) {
	var account model.Account
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// Ping checks that the target is reachable and serving the API.
func (c *Client) Ping(ctx context.Context) error {
	err := c.do(ctx, http.MethodGet, "/api/health", nil, nil)
	if err != nil && !IsClientError(err) {
		return err
	}
	return nil
}
