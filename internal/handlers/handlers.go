// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers serves the public portfolio site, the credential unlock
// flow, the contact form and the JSON API. Content is fetched from the
// remote CMS on every request; nothing is cached.
package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"nanamelab/internal/contact"
	"nanamelab/internal/models"
	"nanamelab/internal/render"
	"nanamelab/internal/slug"
)

// Slugs of the fixed pages the site reads.
const (
	aboutPageSlug = "about"
	worksPageSlug = "achievement_cat"
)

// ContentSource is the read side of the content API. *wordpress.Client
// satisfies it.
type ContentSource interface {
	ResolveCategoryID(ctx context.Context, slug string) (int, error)
	ListItemsByCategory(ctx context.Context, slug string) ([]models.Work, error)
	GetItemBySlug(ctx context.Context, slug string) (*models.Work, error)
	GetItemBySlugWithCredential(ctx context.Context, slug, credential string) (*models.Work, error)
	ListAllCategories(ctx context.Context) ([]models.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error)
	GetStaticPageBySlug(ctx context.Context, slug string) (*models.Page, error)
}

// Site groups the handlers of the public site and the JSON API.
type Site struct {
	content  ContentSource
	renderer *render.Renderer
	mailer   contact.Mailer
	featured []string
}

// NewSite creates the handler group. featured lists the category slugs
// shown on the home page, in display order. A nil mailer disables the
// contact form.
func NewSite(content ContentSource, renderer *render.Renderer, mailer contact.Mailer, featured []string) *Site {
	if mailer == nil {
		mailer = contact.Disabled{}
	}
	return &Site{
		content:  content,
		renderer: renderer,
		mailer:   mailer,
		featured: featured,
	}
}

// contactEnabled reports whether messages can actually be delivered.
func (s *Site) contactEnabled() bool {
	_, disabled := s.mailer.(contact.Disabled)
	return !disabled
}

// slugParam returns the decoded URL parameter, or "" if it is not a
// plausible slug.
func slugParam(r *http.Request, name string) string {
	s := slug.Decode(chi.URLParam(r, name))
	if !slug.Valid(s) {
		return ""
	}
	return s
}

// NotFound renders the 404 page. It is also the router's NotFound handler.
func (s *Site) NotFound(w http.ResponseWriter, r *http.Request) {
	s.renderer.Page(w, r, http.StatusNotFound, "notfound", &render.PageData{
		Title: "Not Found",
	})
}

// serverError logs err and renders the generic error page with status.
func (s *Site) serverError(w http.ResponseWriter, r *http.Request, status int, msg string, err error) {
	slog.Error(msg, "error", err, "path", r.URL.Path)
	s.renderer.Page(w, r, status, "error", &render.PageData{
		Title: "Error",
		Data:  status,
	})
}
