package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	cache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/clinichub/apicheck/internal/model"
)

const (
	tokenKey        = "access_token"
	refreshTokenKey = "refresh_token"

	// Fallback TTL when a token carries no exp claim.
	defaultTokenTTL = 15 * time.Minute
)

// Config holds client construction options.
type Config struct {
	BaseURL string
	Timeout time.Duration
	// Requests per second against the target; zero disables limiting.
	RateLimit float64
	Burst     int
	Logger    zerolog.Logger
}

// Client is a typed HTTP client for the ClinicHub REST API. All methods
// decode the standard {status, message, data} envelope and surface
// non-success responses as *APIError.
type Client struct {
	baseURL string
	httpc   *http.Client
	limiter *rate.Limiter
	tokens  *cache.Cache
	log     zerolog.Logger
}

func New(cfg Config) (*Client, error) {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", cfg.BaseURL, err)
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	return &Client{
		baseURL: base,
		httpc:   &http.Client{Timeout: timeout},
		limiter: limiter,
		tokens:  cache.New(defaultTokenTTL, time.Minute),
		log:     cfg.Logger,
	}, nil
}

// BaseURL returns the configured target, without trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Token returns the cached access token, if any.
func (c *Client) Token() string {
	if v, ok := c.tokens.Get(tokenKey); ok {
		return v.(string)
	}
	return ""
}

// storeTokens caches the pair, expiring the access token at its exp claim.
func (c *Client) storeTokens(pair model.TokenPair) {
	ttl := defaultTokenTTL
	if exp := tokenExpiry(pair.AccessToken); !exp.IsZero() {
		if d := time.Until(exp) - 30*time.Second; d > 0 {
			ttl = d
		}
	}
	c.tokens.Set(tokenKey, pair.AccessToken, ttl)
	c.tokens.Set(refreshTokenKey, pair.RefreshToken, cache.NoExpiration)
}

// tokenExpiry extracts the exp claim without verifying the signature; the
// harness only needs it to schedule cache expiry.
func tokenExpiry(token string) time.Time {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

// do issues a request, decodes the envelope, and unmarshals data into out
// when provided. 200 and 201 count as success.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: read response: %w", method, path, err)
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("request")

	var env model.Envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("non-JSON response: %s", truncate(respBody, 256)),
		}
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated || !env.IsSuccess() {
		return &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("%s %s: decode data: %w", method, path, err)
		}
	}
	return nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
