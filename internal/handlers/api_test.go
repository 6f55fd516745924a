// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"nanamelab/internal/models"
)

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if ct := w.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("Content-Type: got %q", ct)
	}
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}

func postJSON(t *testing.T, h http.Handler, target, contentType, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestAPICategories(t *testing.T) {
	fc := newFixture()
	h := newTestSite(t, fc, nil)

	w := get(t, h, "/api/categories")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got []models.Category
	decodeJSON(t, w, &got)
	if diff := cmp.Diff(fc.categories, got); diff != "" {
		t.Errorf("categories mismatch (-want +got):\n%s", diff)
	}
}

func TestAPIStatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		backendErr bool
		want       int
	}{
		{"categories", "/api/categories", false, http.StatusOK},
		{"categories backend down", "/api/categories", true, http.StatusBadGateway},
		{"category", "/api/categories/design", false, http.StatusOK},
		{"category missing", "/api/categories/nope", false, http.StatusNotFound},
		{"category backend down", "/api/categories/design", true, http.StatusBadGateway},
		{"category works", "/api/categories/design/works", false, http.StatusOK},
		{"category works unknown category", "/api/categories/nope/works", false, http.StatusNotFound},
		{"category works backend down", "/api/categories/design/works", true, http.StatusBadGateway},
		{"work", "/api/works/logo", false, http.StatusOK},
		{"work missing", "/api/works/nope", false, http.StatusNotFound},
		{"work backend down", "/api/works/logo", true, http.StatusBadGateway},
		{"page", "/api/pages/about", false, http.StatusOK},
		{"page missing", "/api/pages/nope", false, http.StatusNotFound},
		{"page backend down", "/api/pages/about", true, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := newFixture()
			if tt.backendErr {
				fc.err = errUnreachable
			}
			h := newTestSite(t, fc, nil)

			w := get(t, h, tt.target)
			if w.Code != tt.want {
				t.Errorf("status: got %d, want %d", w.Code, tt.want)
			}
			if w.Code >= 400 {
				var e apiError
				decodeJSON(t, w, &e)
				if e.Error == "" {
					t.Error("error body should carry a message")
				}
				if strings.Contains(e.Error, "connection refused") {
					t.Errorf("error body leaks transport detail: %q", e.Error)
				}
			}
		})
	}
}

func TestAPIEmptyCategoryIsNotAnError(t *testing.T) {
	h := newTestSite(t, newFixture(), nil)

	w := get(t, h, "/api/categories/empty/works")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body := strings.TrimSpace(w.Body.String()); body != "[]" {
		t.Errorf("body: got %q, want %q", body, "[]")
	}
}

func TestAPIRedactsProtectedBody(t *testing.T) {
	h := newTestSite(t, newFixture(), nil)

	w := get(t, h, "/api/categories/design/works")
	var works []models.Work
	decodeJSON(t, w, &works)
	for _, wk := range works {
		if wk.Protected && wk.Body != "" {
			t.Errorf("protected work %q leaked its body", wk.Slug)
		}
		if wk.Protected && !lockedDetail(wk.Detail) {
			t.Errorf("protected work %q leaked its detail: %+v", wk.Slug, wk.Detail)
		}
		if !wk.Protected && wk.Body == "" {
			t.Errorf("unprotected work %q lost its body", wk.Slug)
		}
	}

	w = get(t, h, "/api/works/secret")
	var work models.Work
	decodeJSON(t, w, &work)
	if work.Body != "" {
		t.Errorf("protected work body: got %q, want empty", work.Body)
	}
	if !lockedDetail(work.Detail) {
		t.Errorf("protected work detail leaked: %+v", work.Detail)
	}
	if work.Detail.APIImage != "https://cdn.test/secret.jpg" {
		t.Errorf("cover image: got %q, want it kept", work.Detail.APIImage)
	}
	for _, leaked := range []string{"Launched on time.", "https://secret.test", "secret-1.jpg"} {
		if strings.Contains(w.Body.String(), leaked) {
			t.Errorf("response contains gated value %q", leaked)
		}
	}
}

// lockedDetail reports whether d carries nothing but the cover image.
func lockedDetail(d models.WorkDetail) bool {
	d.APIImage = ""
	return d.IsEmpty()
}

func TestAPIUnlock(t *testing.T) {
	tests := []struct {
		name        string
		slug        string
		contentType string
		body        string
		verifyErr   error
		wantStatus  int
		wantState   string
		wantBody    string
	}{
		{"correct", "secret", "application/json", `{"password":"open-sesame"}`, nil, http.StatusOK, "unlocked", "<p>Hidden body</p>"},
		{"wrong", "secret", "application/json", `{"password":"nope"}`, nil, http.StatusUnauthorized, "denied", ""},
		{"backend down", "secret", "application/json", `{"password":"open-sesame"}`, errUnreachable, http.StatusBadGateway, "denied", ""},
		{"unprotected", "logo", "application/json; charset=utf-8", `{"password":"x"}`, nil, http.StatusOK, "unlocked", "<p>Logo body</p>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := newFixture()
			fc.verifyErr = tt.verifyErr
			h := newTestSite(t, fc, nil)

			w := postJSON(t, h, "/api/works/"+tt.slug+"/unlock", tt.contentType, tt.body)
			if w.Code != tt.wantStatus {
				t.Errorf("status: got %d, want %d", w.Code, tt.wantStatus)
			}
			var resp unlockResponse
			decodeJSON(t, w, &resp)
			if resp.State != tt.wantState {
				t.Errorf("state: got %q, want %q", resp.State, tt.wantState)
			}
			gotBody := ""
			if resp.Work != nil {
				gotBody = resp.Work.Body
			}
			if gotBody != tt.wantBody {
				t.Errorf("body: got %q, want %q", gotBody, tt.wantBody)
			}
			if tt.slug == "secret" && resp.Work != nil && resp.Work.Detail.Results != "Launched on time." {
				t.Errorf("unlocked detail: got %+v", resp.Work.Detail)
			}
		})
	}
}

func TestAPIUnlockRejectsBadRequests(t *testing.T) {
	tests := []struct {
		name        string
		target      string
		contentType string
		body        string
		want        int
	}{
		{"form encoded", "/api/works/secret/unlock", "application/x-www-form-urlencoded", "password=open-sesame", http.StatusUnsupportedMediaType},
		{"invalid json", "/api/works/secret/unlock", "application/json", "{", http.StatusBadRequest},
		{"empty password", "/api/works/secret/unlock", "application/json", `{"password":"  "}`, http.StatusUnprocessableEntity},
		{"unknown work", "/api/works/nope/unlock", "application/json", `{"password":"x"}`, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := newFixture()
			h := newTestSite(t, fc, nil)

			w := postJSON(t, h, tt.target, tt.contentType, tt.body)
			if w.Code != tt.want {
				t.Errorf("status: got %d, want %d", w.Code, tt.want)
			}
			if fc.called("verify") != 0 {
				t.Error("a rejected request must not reach the verifier")
			}
		})
	}
}
