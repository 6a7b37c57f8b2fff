// Command stubserver runs the in-memory ClinicHub emulator, useful for
// developing new checks without a real backend.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/clinichub/apicheck/internal/stub"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	server, err := stub.New(stub.Options{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build stub server")
	}

	httpServer := &http.Server{
		Addr:         *addr,
		Handler:      server.Engine(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("addr", *addr).Msg("stub server listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("stub server failed")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
