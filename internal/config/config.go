package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

type TargetConfig struct {
	BaseURL        string  `mapstructure:"base_url" envconfig:"CLINICHUB_API_URL"`
	Email          string  `mapstructure:"email" envconfig:"CLINICHUB_EMAIL"`
	Password       string  `mapstructure:"password" envconfig:"CLINICHUB_PASSWORD"`
	TimeoutSeconds int     `mapstructure:"timeout_seconds" envconfig:"CLINICHUB_TIMEOUT_SECONDS"`
	RateLimit      float64 `mapstructure:"rate_limit" envconfig:"CLINICHUB_RATE_LIMIT"`
	Burst          int     `mapstructure:"burst" envconfig:"CLINICHUB_BURST"`
}

func (t TargetConfig) Timeout() time.Duration {
	if t.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(t.TimeoutSeconds) * time.Second
}

type RunnerConfig struct {
	Suites        []string `mapstructure:"suites" envconfig:"APICHECK_SUITES"`
	StopOnFailure bool     `mapstructure:"stop_on_failure" envconfig:"APICHECK_STOP_ON_FAILURE"`
	// Server-reachability retries before the run starts.
	StartupRetries int `mapstructure:"startup_retries" envconfig:"APICHECK_STARTUP_RETRIES"`
}

type ReportConfig struct {
	MetricsAddr string   `mapstructure:"metrics_addr" envconfig:"APICHECK_METRICS_ADDR"`
	SMTPHost    string   `mapstructure:"smtp_host" envconfig:"APICHECK_SMTP_HOST"`
	SMTPPort    int      `mapstructure:"smtp_port" envconfig:"APICHECK_SMTP_PORT"`
	SMTPUser    string   `mapstructure:"smtp_user" envconfig:"APICHECK_SMTP_USER"`
	SMTPPass    string   `mapstructure:"smtp_pass" envconfig:"APICHECK_SMTP_PASS"`
	EmailFrom   string   `mapstructure:"email_from" envconfig:"APICHECK_EMAIL_FROM"`
	EmailTo     []string `mapstructure:"email_to" envconfig:"APICHECK_EMAIL_TO"`
}

type HistoryConfig struct {
	DSN string `mapstructure:"dsn" envconfig:"APICHECK_HISTORY_DSN"`
}

type LockConfig struct {
	RedisURL   string `mapstructure:"redis_url" envconfig:"APICHECK_LOCK_REDIS_URL"`
	TTLSeconds int    `mapstructure:"ttl_seconds" envconfig:"APICHECK_LOCK_TTL_SECONDS"`
}

func (l LockConfig) TTL() time.Duration {
	if l.TTLSeconds <= 0 {
		return 10 * time.Minute
	}
	return time.Duration(l.TTLSeconds) * time.Second
}

type Config struct {
	LogLevel string        `mapstructure:"log_level" envconfig:"APICHECK_LOG_LEVEL"`
	Target   TargetConfig  `mapstructure:"target"`
	Runner   RunnerConfig  `mapstructure:"runner"`
	Report   ReportConfig  `mapstructure:"report"`
	History  HistoryConfig `mapstructure:"history"`
	Lock     LockConfig    `mapstructure:"lock"`
}

// Load reads config.yaml from the working directory or ./config, then
// applies environment overrides. The file is optional; environment alone
// is enough to point the harness at a target.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	var config Config
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	applyDefaults(&config)
	return &config, nil
}

func applyDefaults(config *Config) {
	if config.Target.BaseURL == "" {
		config.Target.BaseURL = "http://localhost:8080"
	}
	if config.Target.Email == "" {
		config.Target.Email = "admin@clinichub.local"
	}
	if config.Runner.StartupRetries <= 0 {
		config.Runner.StartupRetries = 5
	}
	if config.Report.SMTPPort == 0 {
		config.Report.SMTPPort = 587
	}
}
