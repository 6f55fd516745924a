// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"log/slog"
	"net/http"
)

const visitorKey contextKey = "visitor"

// Visitor is the per-request view of the visitor session.
type Visitor struct {
	// ShowIntro is true on the first page view of a session.
	ShowIntro bool
}

// IntroTracker records page views and reports whether the opening intro
// should play. *session.Store satisfies it.
type IntroTracker interface {
	Visit(ctx context.Context, w http.ResponseWriter, r *http.Request) (bool, error)
}

// LoadVisitor records each full-page GET with the tracker and stores the
// result in the request context. HTMX partial requests are not page views.
// A nil tracker, or a failing one, means the intro is skipped; a session
// outage never blocks the page.
func LoadVisitor(tracker IntroTracker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			v := &Visitor{}
			if tracker != nil && r.Method == http.MethodGet && r.Header.Get("HX-Request") != "true" {
				show, err := tracker.Visit(r.Context(), w, r)
				if err != nil {
					slog.Warn("visitor session unavailable, skipping intro", "error", err)
				}
				v.ShowIntro = show && err == nil
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), visitorKey, v)))
		})
	}
}

// VisitorFromCtx returns the visitor loaded by LoadVisitor. It never
// returns nil.
func VisitorFromCtx(ctx context.Context) *Visitor {
	if v, ok := ctx.Value(visitorKey).(*Visitor); ok {
		return v
	}
	return &Visitor{}
}
