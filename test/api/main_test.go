// Package api_test runs the check suites against a live ClinicHub
// deployment. It is skipped unless CLINICHUB_API_URL is set; CI starts the
// server and points the harness at it.
package api_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/clinichub/apicheck/internal/client"
	"github.com/clinichub/apicheck/internal/fixture"
	"github.com/clinichub/apicheck/internal/suite"
)

var (
	liveEnv *suite.Env
	baseURL string
)

func TestMain(m *testing.M) {
	baseURL = os.Getenv("CLINICHUB_API_URL")
	if baseURL == "" {
		fmt.Println("CLINICHUB_API_URL not set; skipping live API tests")
		os.Exit(0)
	}

	email := os.Getenv("CLINICHUB_EMAIL")
	if email == "" {
		email = "admin@clinichub.local"
	}
	password := os.Getenv("CLINICHUB_PASSWORD")

	api, err := client.New(client.Config{
		BaseURL: baseURL,
		Timeout: 30 * time.Second,
		Logger:  zerolog.Nop(),
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	// Retry logic for server startup
	ctx := context.Background()
	maxRetries := 5
	for i := 0; i < maxRetries; i++ {
		if err := api.Ping(ctx); err != nil {
			if i == maxRetries-1 {
				fmt.Printf("Error: %v\nMake sure the API server is running at %s\n", err, baseURL)
				os.Exit(1)
			}
			fmt.Printf("Waiting for API server (attempt %d/%d)...\n", i+1, maxRetries)
			time.Sleep(2 * time.Second)
			continue
		}
		break
	}

	if _, err := api.Login(ctx, email, password); err != nil {
		fmt.Printf("Failed to login: %v\n", err)
		os.Exit(1)
	}

	liveEnv = &suite.Env{
		Client: api,
		Fix:    fixture.NewFactory(),
		Log:    zerolog.Nop(),
	}

	os.Exit(m.Run())
}
