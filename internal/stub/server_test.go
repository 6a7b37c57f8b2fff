package stub_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinichub/apicheck/internal/stub"
)

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	server, err := stub.New(stub.Options{})
	require.NoError(t, err)
	ts := httptest.NewServer(server.Engine())
	t.Cleanup(ts.Close)
	return ts
}

func call(t *testing.T, ts *httptest.Server, method, path, token string, body interface{}) (int, envelope) {
	t.Helper()
	var reqBody bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&reqBody).Encode(body))
	}
	req, err := http.NewRequest(method, ts.URL+path, &reqBody)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func login(t *testing.T, ts *httptest.Server) string {
	t.Helper()
	code, env := call(t, ts, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    stub.DefaultAdminEmail,
		"password": stub.DefaultAdminPassword,
	})
	require.Equal(t, http.StatusOK, code)
	var pair struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &pair))
	require.NotEmpty(t, pair.AccessToken)
	return pair.AccessToken
}

func TestHealthIsPublic(t *testing.T) {
	ts := newServer(t)
	code, env := call(t, ts, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "success", env.Status)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	ts := newServer(t)
	code, env := call(t, ts, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    stub.DefaultAdminEmail,
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "error", env.Status)
	assert.NotEmpty(t, env.Message)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	ts := newServer(t)
	code, env := call(t, ts, http.MethodGet, "/api/patients", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "error", env.Status)

	code, _ = call(t, ts, http.MethodGet, "/api/patients", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestPatientLifecycle(t *testing.T) {
	ts := newServer(t)
	token := login(t, ts)

	payload := map[string]string{
		"name":          "Jordan Smith",
		"email":         "jordan.smith@example.com",
		"date_of_birth": "1985-04-12",
		"status":        "active",
	}
	code, env := call(t, ts, http.MethodPost, "/api/patients", token, payload)
	require.Equal(t, http.StatusCreated, code)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.NotEmpty(t, created.ID)

	code, _ = call(t, ts, http.MethodPost, "/api/patients", token, payload)
	assert.Equal(t, http.StatusConflict, code, "duplicate email must be rejected")

	code, env = call(t, ts, http.MethodGet, "/api/patients/"+created.ID, token, nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "success", env.Status)

	code, _ = call(t, ts, http.MethodDelete, fmt.Sprintf("/api/patients/%s", created.ID), token, nil)
	assert.Equal(t, http.StatusOK, code)

	code, _ = call(t, ts, http.MethodGet, "/api/patients/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestRefreshTokenTypeIsEnforced(t *testing.T) {
	ts := newServer(t)
	token := login(t, ts)

	// An access token must not work as a refresh token.
	code, _ := call(t, ts, http.MethodPost, "/api/auth/refresh", "", map[string]string{
		"refresh_token": token,
	})
	assert.Equal(t, http.StatusUnauthorized, code)
}
