// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the portfolio site server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nanamelab/internal/config"
	"nanamelab/internal/contact"
	"nanamelab/internal/handlers"
	"nanamelab/internal/middleware"
	"nanamelab/internal/render"
	"nanamelab/internal/router"
	"nanamelab/internal/session"
	"nanamelab/internal/wordpress"
	"nanamelab/web"
)

func main() {
	// Load configuration from environment variables and .env.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Structured logger: JSON in production, text in development.
	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	slog.SetDefault(slog.New(handler))

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"wordpress", cfg.WPBaseURL,
	)

	secureCookies := !cfg.IsDev()

	// Connect to Valkey for visitor sessions. The site runs without it;
	// the opening animation is then skipped.
	var visitors middleware.IntroTracker
	valkeyClient, err := session.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Warn("valkey unavailable, intro animation disabled", "error", err)
	} else {
		defer valkeyClient.Close()
		visitors = session.NewStore(valkeyClient, secureCookies, cfg.SessionTTL)
	}

	// WordPress REST client. The timeout is the only bound on a fetch.
	wp := wordpress.New(cfg.WPBaseURL,
		&http.Client{Timeout: cfg.WPTimeout},
		wordpress.WithTaxonomy(cfg.WPTaxonomy),
		wordpress.WithWorkType(cfg.WPWorkType),
	)

	renderer, err := render.New(render.Config{
		SiteName:      cfg.SiteName,
		IntroDuration: cfg.IntroDuration,
		DevMode:       cfg.IsDev(),
	})
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		os.Exit(1)
	}

	// Contact relay (optional).
	var mailer contact.Mailer
	if cfg.ContactEnabled() {
		resendMailer, err := contact.NewResend(contact.ResendConfig{
			APIKey: cfg.ResendAPIKey,
			From:   cfg.ContactFrom,
			To:     cfg.ContactTo,
		})
		if err != nil {
			slog.Error("failed to initialize contact relay", "error", err)
			os.Exit(1)
		}
		mailer = resendMailer
		slog.Info("contact relay enabled", "recipients", len(cfg.ContactTo))
	} else {
		slog.Warn("contact relay not configured, contact form disabled")
	}

	static, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		slog.Error("failed to open embedded static assets", "error", err)
		os.Exit(1)
	}

	unlockLimiter := middleware.NewRateLimiter("unlock", cfg.UnlockRateLimit, time.Minute)
	defer unlockLimiter.Stop()
	contactLimiter := middleware.NewRateLimiter("contact", cfg.ContactRateLimit, time.Minute)
	defer contactLimiter.Stop()

	r := router.New(router.Deps{
		Site:           handlers.NewSite(wp, renderer, mailer, cfg.FeaturedCategories),
		Visitors:       visitors,
		UnlockLimiter:  unlockLimiter,
		ContactLimiter: contactLimiter,
		Static:         static,
		SecureCookies:  secureCookies,
	})

	// WriteTimeout must cover the slowest page: two concurrent backend
	// fetches, each bounded by the WordPress timeout.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 2*cfg.WPTimeout + 10*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
