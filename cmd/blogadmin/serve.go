// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"blogadmin/internal/cache"
	"blogadmin/internal/config"
	"blogadmin/internal/fixtures"
	"blogadmin/internal/handlers"
	"blogadmin/internal/middleware"
	"blogadmin/internal/render"
	"blogadmin/internal/router"
	"blogadmin/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server (default)",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	setupLogger(cfg)
	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"cache", cfg.CacheEnabled(),
	)

	st, err := seededStore(cfg.FixturesFile)
	if err != nil {
		slog.Error("failed to seed store", "error", err)
		return err
	}
	stats := st.Stats()
	slog.Info("store seeded", "categories", stats.Categories, "posts", stats.Posts)

	// Listing cache is optional; without Valkey every request hits the store.
	var listings *cache.ListingCache
	if cfg.CacheEnabled() {
		client, err := cache.ConnectValkey(cmd.Context(), cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			slog.Error("failed to connect to valkey", "error", err)
			return err
		}
		defer client.Close()

		// The store lives in this process, so its listings get their own namespace.
		namespace := uuid.NewString()
		listings = cache.NewListingCache(client, cfg.CacheTTL, namespace)
		defer listings.InvalidateAll(context.Background())
		slog.Info("valkey connected", "namespace", namespace, "ttl", cfg.CacheTTL.String())
	} else {
		slog.Warn("valkey not configured, listing cache disabled")
	}

	ctx, stop := context.WithCancel(cmd.Context())
	defer stop()

	var limiter *middleware.WriteLimiter
	if cfg.WriteRateLimit > 0 {
		limiter = middleware.NewWriteLimiter(ctx, cfg.WriteRateLimit, time.Minute)
	}

	renderer, err := render.New()
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		return err
	}

	r := router.New(
		handlers.NewAdmin(renderer, st, listings),
		handlers.NewAPI(st, listings),
		router.Options{
			SecureCookies: !cfg.IsDev(),
			CORSOrigins:   cfg.CORSOrigins,
			WriteLimiter:  limiter,
		},
	)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("server failed to start", "error", err)
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		return err
	}

	slog.Info("server stopped gracefully")
	return nil
}

// setupLogger installs the default slog logger: text in development,
// JSON otherwise, at the configured level.
func setupLogger(cfg *config.Config) {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}

	var h slog.Handler
	if cfg.IsDev() {
		h = slog.NewTextHandler(os.Stdout, opts)
	} else {
		h = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(h))
}

// seededStore returns a store loaded from path, or from the built-in
// fixtures when path is empty.
func seededStore(path string) (*store.Store, error) {
	set := fixtures.Default()
	if path != "" {
		var err error
		set, err = fixtures.LoadFile(path)
		if err != nil {
			return nil, err
		}
	}

	st := store.New()
	if err := st.Seed(set.Categories, set.Posts); err != nil {
		return nil, fmt.Errorf("seed store: %w", err)
	}
	return st, nil
}
