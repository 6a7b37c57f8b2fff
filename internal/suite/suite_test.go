package suite_test

import (
	"bytes"
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinichub/apicheck/internal/client"
	"github.com/clinichub/apicheck/internal/fixture"
	"github.com/clinichub/apicheck/internal/report"
	"github.com/clinichub/apicheck/internal/stub"
	"github.com/clinichub/apicheck/internal/suite"
)

func newEnv(t *testing.T) *suite.Env {
	t.Helper()

	server, err := stub.New(stub.Options{})
	require.NoError(t, err)
	ts := httptest.NewServer(server.Engine())
	t.Cleanup(ts.Close)

	api, err := client.New(client.Config{
		BaseURL: ts.URL,
		Timeout: 10 * time.Second,
		Logger:  zerolog.Nop(),
	})
	require.NoError(t, err)

	_, err = api.Login(context.Background(), stub.DefaultAdminEmail, stub.DefaultAdminPassword)
	require.NoError(t, err)

	return &suite.Env{Client: api, Fix: fixture.NewFactory(), Log: zerolog.Nop()}
}

func TestFullRegistryAgainstStub(t *testing.T) {
	env := newEnv(t)

	var buf bytes.Buffer
	rec := report.NewRecorder("stub", nil)
	rec.SetOutput(&buf)

	suite.Run(context.Background(), suite.Registry(), env, rec, false)
	summary := rec.Summarize()

	assert.Zero(t, summary.Failed, "unexpected failures:\n%s", buf.String())
	assert.Zero(t, summary.Skipped)
	assert.True(t, summary.Ok())
	assert.Contains(t, buf.String(), "RESULT: PASS")
}

func TestSuiteSelection(t *testing.T) {
	all, err := suite.Select(nil)
	require.NoError(t, err)
	assert.Len(t, all, 11)

	one, err := suite.Select([]string{"billing"})
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.Equal(t, "billing", one[0].Name)

	_, err = suite.Select([]string{"billing", "nonsense"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown suite "nonsense"`)
}

func TestStopOnFailureSkipsRest(t *testing.T) {
	failing := suite.Suite{
		Name: "demo",
		Checks: []suite.Check{
			{Name: "boom", Run: func(ctx context.Context, env *suite.Env) error {
				return errors.New("boom")
			}},
			{Name: "after", Run: func(ctx context.Context, env *suite.Env) error {
				t.Fatal("check ran after a failure with stop-on-failure set")
				return nil
			}},
		},
	}

	var buf bytes.Buffer
	rec := report.NewRecorder("stub", nil)
	rec.SetOutput(&buf)
	env := &suite.Env{Log: zerolog.Nop()}

	suite.Run(context.Background(), []suite.Suite{failing}, env, rec, true)
	summary := rec.Summarize()

	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 1, summary.Skipped)
	assert.Contains(t, buf.String(), "[SKIP] demo/after")
}

func TestCleanupRunsAfterFailure(t *testing.T) {
	cleaned := false
	s := suite.Suite{
		Name: "demo",
		Checks: []suite.Check{
			{Name: "boom", Run: func(ctx context.Context, env *suite.Env) error {
				return errors.New("boom")
			}},
		},
		Cleanup: []suite.Check{
			{Name: "teardown", Run: func(ctx context.Context, env *suite.Env) error {
				cleaned = true
				return nil
			}},
		},
	}

	rec := report.NewRecorder("stub", nil)
	rec.SetOutput(&bytes.Buffer{})
	suite.Run(context.Background(), []suite.Suite{s}, &suite.Env{Log: zerolog.Nop()}, rec, true)

	assert.True(t, cleaned)
}
