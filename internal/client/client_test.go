package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinichub/apicheck/internal/client"
)

func newClient(t *testing.T, handler http.Handler) *client.Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	c, err := client.New(client.Config{
		BaseURL: ts.URL,
		Timeout: 5 * time.Second,
		Logger:  zerolog.Nop(),
	})
	require.NoError(t, err)
	return c
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func TestNewRejectsEmptyBaseURL(t *testing.T) {
	_, err := client.New(client.Config{})
	assert.Error(t, err)
}

func TestLoginSendsBearerOnLaterCalls(t *testing.T) {
	var seenAuth string
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"status": "success",
			"data": map[string]string{
				"access_token":  "opaque-token",
				"refresh_token": "refresh",
			},
		})
	})
	mux.HandleFunc("/api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		seenAuth = r.Header.Get("Authorization")
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"status": "success",
			"data":   map[string]string{"email": "admin@clinichub.local"},
		})
	})

	c := newClient(t, mux)
	pair, err := c.Login(context.Background(), "admin@clinichub.local", "changeme123")
	require.NoError(t, err)
	assert.Equal(t, "opaque-token", pair.AccessToken)

	_, err = c.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer opaque-token", seenAuth)
}

func TestErrorEnvelopeBecomesAPIError(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{
			"status":  "error",
			"message": "patient not found",
		})
	}))

	_, err := c.GetPatient(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, client.IsNotFound(err))
	assert.True(t, client.IsClientError(err))
	assert.Contains(t, err.Error(), "patient not found")
}

func TestUnauthorizedDetection(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{
			"status":  "error",
			"message": "missing authorization header",
		})
	}))

	_, err := c.Me(context.Background())
	require.Error(t, err)
	assert.True(t, client.IsUnauthorized(err))
	assert.False(t, client.IsNotFound(err))
}

func TestNonJSONResponseIsSurfaced(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>upstream error</html>"))
	}))

	_, err := c.Me(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-JSON response")
	assert.False(t, client.IsClientError(err))
}

func TestPingToleratesAuthRejection(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{
			"status":  "error",
			"message": "missing authorization header",
		})
	}))

	assert.NoError(t, c.Ping(context.Background()))
}

func TestPingFailsOnServerError(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"status":  "error",
			"message": "database down",
		})
	}))

	assert.Error(t, c.Ping(context.Background()))
}
