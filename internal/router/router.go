// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// portfolio site. It organizes routes into the HTML site and the JSON API
// with appropriate middleware stacks.
package router

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"nanamelab/internal/handlers"
	"nanamelab/internal/middleware"
)

// Deps are the handlers and middleware the routes are built from.
type Deps struct {
	Site *handlers.Site

	// Visitors tracks the opening animation. Nil disables it.
	Visitors middleware.IntroTracker

	// UnlockLimiter and ContactLimiter throttle credential and contact
	// form submissions per client IP.
	UnlockLimiter  *middleware.RateLimiter
	ContactLimiter *middleware.RateLimiter

	// Static serves /static/. Nil disables the route.
	Static fs.FS

	SecureCookies bool
}

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(d Deps) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	r.NotFound(d.Site.NotFound)

	// Health check, no CSRF.
	r.Get("/health", healthHandler)

	if d.Static != nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(d.Static))))
	}

	// JSON API. Unlock takes a JSON body only, which a cross-site form
	// cannot send, so it is rate limited instead of CSRF protected.
	r.Route("/api", func(r chi.Router) {
		r.Get("/categories", d.Site.APICategories)
		r.Get("/categories/{slug}", d.Site.APICategory)
		r.Get("/categories/{slug}/works", d.Site.APICategoryWorks)
		r.Get("/works/{slug}", d.Site.APIWork)
		r.With(d.UnlockLimiter.Middleware).Post("/works/{slug}/unlock", d.Site.APIUnlock)
		r.Get("/pages/{slug}", d.Site.APIPage)
	})

	// HTML site, CSRF protected and visitor aware.
	r.Group(func(r chi.Router) {
		r.Use(middleware.NewCSRF(d.SecureCookies))
		r.Use(middleware.LoadVisitor(d.Visitors))

		r.Get("/", d.Site.Home)
		r.Get("/about", d.Site.About)

		r.Route("/works", func(r chi.Router) {
			r.Get("/", d.Site.Works)
			r.Get("/{category}", d.Site.Category)
			r.Get("/{category}/{slug}", d.Site.Work)
			r.With(d.UnlockLimiter.Middleware).Post("/{category}/{slug}/unlock", d.Site.Unlock)
		})

		r.Get("/contact", d.Site.Contact)
		r.With(d.ContactLimiter.Middleware).Post("/contact", d.Site.ContactSubmit)
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
