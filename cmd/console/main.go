package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tedcar/rental-console/internal/api"
	"github.com/tedcar/rental-console/internal/app"
	"github.com/tedcar/rental-console/internal/core/domain"
	"github.com/tedcar/rental-console/internal/core/ports"
	"github.com/tedcar/rental-console/internal/infrastructure/http/handlers"
	"github.com/tedcar/rental-console/internal/pkg/config"
	"github.com/tedcar/rental-console/pkg/logger"
)

// @title        TedCar Rental Console
// @version      1.0
// @description  Local console over the TedCar rental backend: session, public listing and owner dashboard.
// @BasePath     /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		l := logger.Init(logger.Options{Pretty: true})
		l.Fatal().Err(err).Msg("load config")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.Production(),
		App:    "tedcar-console",
	})

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("wire application")
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.Close(closeCtx); err != nil {
			log.Warn().Err(err).Msg("close session store")
		}
	}()

	router := api.NewRouter(api.Dependencies{
		Auth:     a.Auth,
		Vehicles: a.Vehicles,
		Guard:    a.Guard,
		Checks: map[string]handlers.Check{
			"backend": a.Backend.Ping,
			"session": sessionCheck(a.Store),
		},
		Logger: logger.Component("http"),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().
			Str("addr", srv.Addr).
			Str("backend", cfg.Backend.URL).
			Str("session_driver", cfg.Session.Driver).
			Msg("console listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown")
	}
}

// sessionCheck pings networked stores and otherwise tries a read. An empty
// slot is healthy.
func sessionCheck(store ports.SessionStore) handlers.Check {
	if p, ok := store.(ports.Pinger); ok {
		return p.Ping
	}
	return func(ctx context.Context) error {
		_, err := store.Get(ctx)
		if errors.Is(err, domain.ErrNoCredential) {
			return nil
		}
		return err
	}
}
