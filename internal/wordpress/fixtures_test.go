// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package wordpress

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
)

// ---------- Fake REST backend ----------

// route answers one collection request given its query string.
type route func(q url.Values) (status int, body string)

// fakeWP is an httptest server standing in for the WordPress REST API.
// It records every request so tests can assert round-trip counts.
type fakeWP struct {
	srv *httptest.Server

	mu       sync.Mutex
	requests []*http.Request
}

// newFakeWP serves routes keyed by collection path ("/achievement_cat").
// Unknown paths answer 404 with a WordPress-style error object.
func newFakeWP(t *testing.T, routes map[string]route) *fakeWP {
	t.Helper()
	f := &fakeWP{}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.requests = append(f.requests, r.Clone(r.Context()))
		f.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		handler, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"code":"rest_no_route","message":"No route was found","data":{"status":404}}`))
			return
		}
		status, body := handler(r.URL.Query())
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeWP) client() *Client {
	return New(f.srv.URL, f.srv.Client())
}

func (f *fakeWP) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func (f *fakeWP) request(i int) *http.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[i]
}

// bySlug answers with records[slug] wrapped in an array, or [] on miss.
func bySlug(records map[string]string) route {
	return func(q url.Values) (int, string) {
		if rec, ok := records[q.Get("slug")]; ok {
			return http.StatusOK, "[" + rec + "]"
		}
		return http.StatusOK, "[]"
	}
}

// static answers every request with the same body.
func static(status int, body string) route {
	return func(url.Values) (int, string) { return status, body }
}

// ---------- Fixtures ----------

const designCategoryJSON = `{
	"id": 7,
	"name": "Design",
	"slug": "design",
	"description": "Logos, identities and print.",
	"acf": {
		"term_image": 12,
		"term_image_api": "https://naname-lab.net/img/design-mv.jpg",
		"term_title": "Graphic Design",
		"mv_title": "DESIGN",
		"mv_subtitle": "Visual identity",
		"next_image": "https://naname-lab.net/img/design.jpg",
		"next_title": "DESIGN",
		"next_desc": "Brand building",
		"next_cta": "See works"
	}
}`

// workJSON builds a work record tagged with the design category.
func workJSON(id int, slugValue, title string, protected bool, body string) string {
	return fmt.Sprintf(`{
	"id": %d,
	"slug": %q,
	"date": "2025-03-14T09:30:00",
	"title": {"rendered": %q},
	"excerpt": {"rendered": "<p>Short summary &hellip;</p>\n", "protected": %t},
	"content": {"rendered": %q, "protected": %t},
	"acf": {
		"work_detail": {
			"period": "3 months",
			"role": "Design, Coding",
			"tools_design": "Figma",
			"tools_coding": "WordPress",
			"background": "The client needed a refresh.",
			"design_intent": "Calm and trustworthy.",
			"creative_logic": "Grid first.",
			"results": "Inquiries doubled.",
			"site_url": "https://example.com",
			"sub_image_01": "https://naname-lab.net/img/%s-1.jpg",
			"sub_image_02": "",
			"sub_image_03": false
		}
	},
	"_embedded": {
		"wp:featuredmedia": [{"source_url": "https://naname-lab.net/img/%s.jpg", "alt_text": ""}],
		"wp:term": [[{"id": 7, "name": "Design", "slug": "design", "taxonomy": "achievement_cat"}]]
	}
}`, id, slugValue, title, protected, body, protected, slugValue, slugValue)
}

const aboutPageJSON = `{
	"id": 2,
	"slug": "about",
	"title": {"rendered": "About &amp; Story"},
	"acf": {
		"about_hero_main": "https://naname-lab.net/img/about-main.jpg",
		"about_hero_sub": "https://naname-lab.net/img/about-sub.jpg",
		"about_hero_title": "Who we are",
		"about_hero_subtitle": "ABOUT US",
		"about_hero_desc": "A small studio.",
		"about_identity": {"next_title": "IDENTITY", "next_ja_title": "アイデンティティ", "next_desc": "Who", "next_image": "https://naname-lab.net/img/id.jpg"},
		"about_capabilities": {"next_title": "CAPABILITIES", "next_ja_title": "ケイパビリティ", "next_desc": "What", "next_image": "https://naname-lab.net/img/cap.jpg"},
		"about_expertise": false
	}
}`
