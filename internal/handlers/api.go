// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"mime"
	"net/http"

	"nanamelab/internal/gate"
	"nanamelab/internal/models"
)

// apiError is the body of every non-2xx API response.
type apiError struct {
	Error string `json:"error"`
}

// unlockRequest is the body of POST /api/works/{slug}/unlock.
type unlockRequest struct {
	Password string `json:"password"`
}

// unlockResponse reports the gate state after an unlock attempt. Work is
// set only when the state is "unlocked".
type unlockResponse struct {
	State string       `json:"state"`
	Work  *models.Work `json:"work,omitempty"`
	Error string       `json:"error,omitempty"`
}

// APICategories lists all categories.
func (s *Site) APICategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.content.ListAllCategories(r.Context())
	if err != nil {
		s.apiFailure(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

// APICategory returns one category by slug.
func (s *Site) APICategory(w http.ResponseWriter, r *http.Request) {
	categorySlug := slugParam(r, "slug")
	if categorySlug == "" {
		writeJSON(w, http.StatusNotFound, apiError{Error: "category not found"})
		return
	}
	cat, err := s.content.GetCategoryBySlug(r.Context(), categorySlug)
	if err != nil {
		s.apiFailure(w, r, err)
		return
	}
	if cat == nil {
		writeJSON(w, http.StatusNotFound, apiError{Error: "category not found"})
		return
	}
	writeJSON(w, http.StatusOK, cat)
}

// APICategoryWorks lists the works of a category. Unlike the HTML page, a
// failed listing is a 502 so callers can tell it from an empty category.
func (s *Site) APICategoryWorks(w http.ResponseWriter, r *http.Request) {
	categorySlug := slugParam(r, "slug")
	if categorySlug == "" {
		writeJSON(w, http.StatusNotFound, apiError{Error: "category not found"})
		return
	}
	works, err := s.content.ListItemsByCategory(r.Context(), categorySlug)
	if err != nil {
		s.apiFailure(w, r, err)
		return
	}
	for i := range works {
		redactLocked(&works[i])
	}
	writeJSON(w, http.StatusOK, works)
}

// APIWork returns one work by slug. The body of a protected work is never
// included; use the unlock endpoint.
func (s *Site) APIWork(w http.ResponseWriter, r *http.Request) {
	workSlug := slugParam(r, "slug")
	if workSlug == "" {
		writeJSON(w, http.StatusNotFound, apiError{Error: "work not found"})
		return
	}
	work, err := s.content.GetItemBySlug(r.Context(), workSlug)
	if err != nil {
		s.apiFailure(w, r, err)
		return
	}
	if work == nil {
		writeJSON(w, http.StatusNotFound, apiError{Error: "work not found"})
		return
	}
	redactLocked(work)
	writeJSON(w, http.StatusOK, work)
}

// APIUnlock verifies a credential for a protected work and returns the
// full work on success.
func (s *Site) APIUnlock(w http.ResponseWriter, r *http.Request) {
	if mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type")); mt != "application/json" {
		writeJSON(w, http.StatusUnsupportedMediaType, apiError{Error: "content type must be application/json"})
		return
	}

	var req unlockRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxFormBytes)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "invalid JSON body"})
		return
	}
	if msg := validateCredential(req.Password); msg != "" {
		writeJSON(w, http.StatusUnprocessableEntity, apiError{Error: msg})
		return
	}

	workSlug := slugParam(r, "slug")
	if workSlug == "" {
		writeJSON(w, http.StatusNotFound, apiError{Error: "work not found"})
		return
	}
	work, err := s.content.GetItemBySlug(r.Context(), workSlug)
	if err != nil {
		s.apiFailure(w, r, err)
		return
	}
	if work == nil {
		writeJSON(w, http.StatusNotFound, apiError{Error: "work not found"})
		return
	}

	ctl := gate.New(work, s.content, gate.WithLogger(requestLogger(r)))
	state, err := ctl.Submit(r.Context(), req.Password)
	switch {
	case state == gate.Unlocked:
		content, _ := ctl.Content()
		writeJSON(w, http.StatusOK, unlockResponse{State: state.String(), Work: content})
	case errors.Is(err, gate.ErrBusy):
		writeJSON(w, http.StatusConflict, unlockResponse{State: state.String(), Error: err.Error()})
	case err != nil:
		writeJSON(w, http.StatusBadGateway, unlockResponse{State: state.String(), Error: "password is incorrect"})
	default:
		writeJSON(w, http.StatusUnauthorized, unlockResponse{State: state.String(), Error: "password is incorrect"})
	}
}

// APIPage returns a fixed page by slug.
func (s *Site) APIPage(w http.ResponseWriter, r *http.Request) {
	pageSlug := slugParam(r, "slug")
	if pageSlug == "" {
		writeJSON(w, http.StatusNotFound, apiError{Error: "page not found"})
		return
	}
	page, err := s.content.GetStaticPageBySlug(r.Context(), pageSlug)
	if err != nil {
		s.apiFailure(w, r, err)
		return
	}
	if page == nil {
		writeJSON(w, http.StatusNotFound, apiError{Error: "page not found"})
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// apiFailure logs err and writes the matching status.
func (s *Site) apiFailure(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusNotFound {
		writeJSON(w, status, apiError{Error: "not found"})
		return
	}
	slog.Error("content api request failed", "error", err, "path", r.URL.Path, "request_id", requestID(r))
	writeJSON(w, status, apiError{Error: http.StatusText(status)})
}

// redactLocked strips the gated content of a protected work that has not
// been verified in this request: the body and the case-study detail. The
// cover image stays, as on the locked HTML page.
func redactLocked(w *models.Work) {
	if !w.Protected {
		return
	}
	w.Body = ""
	w.Detail = models.WorkDetail{APIImage: w.Detail.APIImage, SubImages: []string{}}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode json response failed", "error", err)
	}
}
