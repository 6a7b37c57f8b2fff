package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.Target.BaseURL)
	assert.Equal(t, "admin@clinichub.local", cfg.Target.Email)
	assert.Equal(t, 30*time.Second, cfg.Target.Timeout())
	assert.Equal(t, 5, cfg.Runner.StartupRetries)
	assert.Equal(t, 587, cfg.Report.SMTPPort)
	assert.Equal(t, 10*time.Minute, cfg.Lock.TTL())
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("CLINICHUB_API_URL", "https://staging.clinichub.example")
	t.Setenv("CLINICHUB_EMAIL", "qa@clinichub.example")
	t.Setenv("CLINICHUB_TIMEOUT_SECONDS", "5")
	t.Setenv("APICHECK_SUITES", "patients,billing")
	t.Setenv("APICHECK_STOP_ON_FAILURE", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://staging.clinichub.example", cfg.Target.BaseURL)
	assert.Equal(t, "qa@clinichub.example", cfg.Target.Email)
	assert.Equal(t, 5*time.Second, cfg.Target.Timeout())
	assert.Equal(t, []string{"patients", "billing"}, cfg.Runner.Suites)
	assert.True(t, cfg.Runner.StopOnFailure)
}

func TestTimeoutFallsBackWhenUnset(t *testing.T) {
	assert.Equal(t, 30*time.Second, TargetConfig{}.Timeout())
	assert.Equal(t, 45*time.Second, TargetConfig{TimeoutSeconds: 45}.Timeout())
}
