// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the public site.
// It supports full-page and HTMX partial rendering, automatically detecting
// the request type via the HX-Request header.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"nanamelab/internal/htmltext"
	"nanamelab/internal/markdown"
	"nanamelab/internal/middleware"
	"nanamelab/internal/slug"
)

//go:embed templates/site/*.html
var siteFS embed.FS

// PageData holds all data passed to site templates.
type PageData struct {
	Title       string // Page title for <title> tag; the site name is appended
	Description string // Meta description
	Section     string // Active navigation section ("works", "about", ...)
	SiteName    string
	CSRFToken   string // CSRF token for forms and HTMX headers
	RequestID   string
	ShowIntro   bool  // Play the opening animation on this view
	IntroMS     int64 // Opening animation length in milliseconds
	Year        int
	DevMode     bool
	Data        any     // Page-specific view model
	Flashes     []Flash // One-time notification messages
}

// Flash represents a one-time notification message displayed to the user.
type Flash struct {
	Type    string // "success", "error", "info"
	Message string
}

// Config configures a Renderer.
type Config struct {
	SiteName      string
	IntroDuration time.Duration
	DevMode       bool
}

// Renderer handles template parsing and execution for site pages.
type Renderer struct {
	cfg       Config
	templates map[string]*template.Template
	funcMap   template.FuncMap
}

// New creates a Renderer by parsing all site templates from the embedded
// filesystem. Each page template is paired with the base layout.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		cfg:       cfg,
		templates: make(map[string]*template.Template),
		funcMap: template.FuncMap{
			// markdown renders a narrative field typed in the CMS.
			"markdown": markdown.Render,
			// rawHTML marks backend-rendered post content as safe. The
			// WordPress host is the only source of these strings.
			"rawHTML": func(s string) template.HTML {
				return template.HTML(s)
			},
			"plainText": htmltext.PlainText,
			"truncate":  htmltext.Truncate,
			// slugPath escapes a decoded slug for use in a URL path.
			"slugPath": slug.Path,
			"date": func(t time.Time) string {
				if t.IsZero() {
					return ""
				}
				return t.Format("2006.01.02")
			},
			"upper": strings.ToUpper,
			"add":   func(a, b int) int { return a + b },
		},
	}

	entries, err := siteFS.ReadDir("templates/site")
	if err != nil {
		return nil, fmt.Errorf("read embedded templates: %w", err)
	}

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".html") || name == "base.html" {
			continue
		}
		tmplName := strings.TrimSuffix(name, ".html")

		tmpl, err := template.New("base.html").Funcs(r.funcMap).ParseFS(
			siteFS, "templates/site/base.html", "templates/site/"+name,
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.templates[tmplName] = tmpl
	}

	return r, nil
}

// Page renders a full page or, for HTMX requests, only its "content"
// block, with the given status code.
func (rn *Renderer) Page(w http.ResponseWriter, r *http.Request, status int, name string, data *PageData) {
	block := "base.html"
	if isHTMX(r) {
		block = "content"
	}
	rn.execute(w, r, status, name, block, data)
}

// Fragment renders one named block of a page template regardless of the
// request type. Used for HTMX swaps of a page region (the unlock form, the
// contact form).
func (rn *Renderer) Fragment(w http.ResponseWriter, r *http.Request, status int, name, block string, data *PageData) {
	rn.execute(w, r, status, name, block, data)
}

// Has reports whether a page template exists.
func (rn *Renderer) Has(name string) bool {
	_, ok := rn.templates[name]
	return ok
}

func (rn *Renderer) execute(w http.ResponseWriter, r *http.Request, status int, name, block string, data *PageData) {
	tmpl, ok := rn.templates[name]
	if !ok {
		slog.Error("template not found", "template", name)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if data == nil {
		data = &PageData{}
	}
	rn.fill(r, data)

	// Render into a buffer so a template error never leaves a half-written
	// page behind a 200 status.
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, block, data); err != nil {
		slog.Error("template execution failed", "template", name, "block", block, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if isHTMX(r) {
		w.Header().Set("Vary", "HX-Request")
	}
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// fill injects the request-scoped and site-wide fields.
func (rn *Renderer) fill(r *http.Request, data *PageData) {
	ctx := r.Context()
	data.CSRFToken = middleware.CSRFTokenFromCtx(ctx)
	data.RequestID = middleware.RequestID(ctx)
	data.ShowIntro = middleware.VisitorFromCtx(ctx).ShowIntro
	data.IntroMS = rn.cfg.IntroDuration.Milliseconds()
	data.DevMode = rn.cfg.DevMode
	if data.SiteName == "" {
		data.SiteName = rn.cfg.SiteName
	}
	if data.Year == 0 {
		data.Year = time.Now().Year()
	}
}

// isHTMX returns true if the request was made by HTMX (has HX-Request header).
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
