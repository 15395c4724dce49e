// Reelist - Personal Movie Watchlist Tracker
// Copyright 2026 Reelist Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

// Package main is the entry point for the Reelist server.
//
// Reelist is a self-hosted watchlist tracker for a personal movie
// collection. It loads a ratings CSV (a local file, or the public starter
// dataset when none is configured), then serves browsing, fuzzy title
// search, rating and watched-flag updates, statistics, and a random
// "what should I watch tonight" pick over a REST API.
//
// The server initializes in the following order:
//
//  1. Configuration: Koanf v2 layering of defaults, config.yaml, and
//     REELIST_* environment variables
//  2. Logging: global zerolog logger
//  3. Dataset: load the watchlist table from file or remote CSV
//  4. HTTP server: Chi router under suture supervision
//
// Shutdown is graceful on SIGINT and SIGTERM: the listener stops accepting
// connections and in-flight requests get the configured drain timeout.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/reelist/reelist/internal/api"
	"github.com/reelist/reelist/internal/config"
	"github.com/reelist/reelist/internal/dataset"
	"github.com/reelist/reelist/internal/logging"
	"github.com/reelist/reelist/internal/supervisor"
	"github.com/reelist/reelist/internal/supervisor/services"
	"github.com/reelist/reelist/internal/watchlist"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("addr", cfg.Server.Addr()).
		Msg("Starting Reelist")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	table, err := loadTable(ctx, cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load dataset")
	}

	handler := api.NewHandler(cfg, table)
	router := api.NewRouter(cfg, handler)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Bridge zerolog to slog for sutureslog.
	tree, err := supervisor.NewTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Application stopped gracefully")
}

// loadTable builds the initial watchlist table: a configured local file
// wins, otherwise the public starter dataset is fetched.
func loadTable(ctx context.Context, cfg *config.Config) (*watchlist.Table, error) {
	if cfg.Dataset.Path != "" {
		return dataset.LoadFile(cfg.Dataset.Path)
	}
	return dataset.Fetch(ctx, cfg.Dataset.DefaultURL, cfg.Dataset.FetchTimeout)
}
