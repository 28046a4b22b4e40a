// Vestra - Wardrobe Management and Marketplace Backend
// Copyright 2026 Vestra Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vestra-app/vestra

// Command server runs the Vestra HTTP API.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vestra-app/vestra/internal/api"
	"github.com/vestra-app/vestra/internal/auth"
	"github.com/vestra-app/vestra/internal/config"
	"github.com/vestra-app/vestra/internal/logging"
	"github.com/vestra-app/vestra/internal/recommend"
	"github.com/vestra-app/vestra/internal/store"
	"github.com/vestra-app/vestra/internal/weather"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", version).
		Str("db_path", cfg.Database.Path).
		Bool("weather_lookup", cfg.Weather.Enabled).
		Msg("Starting Vestra")

	s, err := store.Open(store.Options{
		Path:     cfg.Database.Path,
		InMemory: cfg.Database.InMemory,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open store")
	}
	defer func() {
		if err := s.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing store")
		}
	}()
	logging.Info().Msg("Store opened")

	jwtManager, err := auth.NewJWTManager(&cfg.Security)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize JWT manager")
	}
	authn := auth.NewAuthenticator(&cfg.Security, jwtManager)

	engine := recommend.New(recommend.Config{
		BaseScore:                cfg.Recommend.BaseScore,
		WeatherExactBoost:        cfg.Recommend.WeatherExactBoost,
		WeatherCompatBoost:       cfg.Recommend.WeatherCompatBoost,
		OccasionBoost:            cfg.Recommend.OccasionBoost,
		StyleBoost:               cfg.Recommend.StyleBoost,
		MaxCandidates:            cfg.Recommend.MaxCandidates,
		MaxAccessories:           cfg.Recommend.MaxAccessories,
		WeatherConfidenceWeight:  cfg.Recommend.WeatherConfidenceWeight,
		StyleConfidenceWeight:    cfg.Recommend.StyleConfidenceWeight,
		OccasionConfidenceWeight: cfg.Recommend.OccasionConfidenceWeight,
	}, s)

	var weatherProvider weather.Provider
	if cfg.Weather.Enabled {
		weatherProvider = weather.NewHTTPProvider(&cfg.Weather)
		logging.Info().Str("url", cfg.Weather.URL).Msg("Weather lookup enabled")
	}

	handler := api.NewHandler(s, engine, authn, weatherProvider, version)
	router := api.NewRouter(handler, &cfg.Security, jwtManager)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logging.Info().Msg("Received shutdown signal")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("HTTP server failed")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("Graceful shutdown failed")
	}

	logging.Info().Msg("Application stopped gracefully")
}
