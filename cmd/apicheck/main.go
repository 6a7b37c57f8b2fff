package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/clinichub/apicheck/internal/client"
	"github.com/clinichub/apicheck/internal/config"
	"github.com/clinichub/apicheck/internal/fixture"
	"github.com/clinichub/apicheck/internal/history"
	"github.com/clinichub/apicheck/internal/lock"
	"github.com/clinichub/apicheck/internal/report"
	"github.com/clinichub/apicheck/internal/suite"
	"github.com/clinichub/apicheck/pkg/logger"
)

func main() {
	var (
		suitesFlag = flag.String("suites", "", "comma-separated suite names to run (default: all)")
		stopFlag   = flag.Bool("stop-on-failure", false, "skip the rest of a suite after its first failure")
		targetFlag = flag.String("target", "", "base URL of the API under test (overrides config)")
	)
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	if *targetFlag != "" {
		cfg.Target.BaseURL = *targetFlag
	}
	if *suitesFlag != "" {
		cfg.Runner.Suites = strings.Split(*suitesFlag, ",")
	}
	if *stopFlag {
		cfg.Runner.StopOnFailure = true
	}

	logg := logger.New(&logger.Config{Level: logger.ParseLevel(cfg.LogLevel)})

	suites, err := suite.Select(cfg.Runner.Suites)
	if err != nil {
		logg.Fatal().Err(err).Msg("invalid suite selection")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	api, err := client.New(client.Config{
		BaseURL:   cfg.Target.BaseURL,
		Timeout:   cfg.Target.Timeout(),
		RateLimit: cfg.Target.RateLimit,
		Burst:     cfg.Target.Burst,
		Logger:    logg,
	})
	if err != nil {
		logg.Fatal().Err(err).Msg("failed to build API client")
	}

	// Wait for the target to come up before burning checks on it
	if err := waitForTarget(ctx, api, cfg.Runner.StartupRetries, logg); err != nil {
		logg.Fatal().Err(err).Str("target", cfg.Target.BaseURL).Msg("target unreachable")
	}

	// Serialize runs that share a tenant
	if cfg.Lock.RedisURL != "" {
		runLock, err := lock.New(cfg.Lock.RedisURL, cfg.Target.BaseURL, cfg.Lock.TTL())
		if err != nil {
			logg.Fatal().Err(err).Msg("failed to build run lock")
		}
		if err := runLock.Acquire(ctx); err != nil {
			logg.Fatal().Err(err).Msg("failed to acquire run lock")
		}
		defer func() {
			if err := runLock.Release(context.Background()); err != nil {
				logg.Warn().Err(err).Msg("failed to release run lock")
			}
		}()
	}

	if _, err := api.Login(ctx, cfg.Target.Email, cfg.Target.Password); err != nil {
		logg.Fatal().Err(err).Msg("login failed")
	}

	var metrics *report.Metrics
	if cfg.Report.MetricsAddr != "" {
		metrics = report.NewMetrics("apicheck")
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		go func() {
			if err := http.ListenAndServe(cfg.Report.MetricsAddr, mux); err != nil {
				logg.Warn().Err(err).Msg("metrics listener stopped")
			}
		}()
	}

	rec := report.NewRecorder(cfg.Target.BaseURL, metrics)
	env := &suite.Env{
		Client: api,
		Fix:    fixture.NewFactory(),
		Log:    logg,
	}

	suite.Run(ctx, suites, env, rec, cfg.Runner.StopOnFailure)
	summary := rec.Summarize()

	emailCfg := report.EmailConfig{
		Host:     cfg.Report.SMTPHost,
		Port:     cfg.Report.SMTPPort,
		Username: cfg.Report.SMTPUser,
		Password: cfg.Report.SMTPPass,
		From:     cfg.Report.EmailFrom,
		To:       cfg.Report.EmailTo,
	}
	if emailCfg.Enabled() {
		if err := report.NewMailer(emailCfg).Send(summary); err != nil {
			logg.Warn().Err(err).Msg("failed to send summary mail")
		}
	}

	if cfg.History.DSN != "" {
		store, err := history.Open(ctx, cfg.History.DSN)
		if err != nil {
			logg.Warn().Err(err).Msg("failed to open history store")
		} else {
			if err := store.SaveRun(ctx, summary); err != nil {
				logg.Warn().Err(err).Msg("failed to persist run history")
			}
			store.Close()
		}
	}

	if !summary.Ok() {
		os.Exit(1)
	}
}

// waitForTarget pings until the API answers, matching CI jobs that start
// the server and the harness together.
func waitForTarget(ctx context.Context, api *client.Client, retries int, logg zerolog.Logger) error {
	var err error
	for i := 0; i < retries; i++ {
		if err = api.Ping(ctx); err == nil {
			return nil
		}
		logg.Info().Err(err).Int("attempt", i+1).Int("retries", retries).Msg("waiting for target")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(2 * time.Second):
		}
	}
	return err
}
