// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"net/http"

	"nanamelab/internal/gate"
)

// deniedMessage is shown for every failed unlock. Wrong credentials and
// backend failures are indistinguishable to the visitor.
const deniedMessage = "パスワードが正しくありません。 The password is incorrect."

// maxFormBytes bounds the size of urlencoded form bodies.
const maxFormBytes = 64 << 10

// Unlock handles the credential form of a protected work. On success the
// full work is rendered; otherwise the form is rendered again with a
// generic message. HTMX requests receive only the gate region.
func (s *Site) Unlock(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	view, status, err := s.loadWork(r)
	if err != nil {
		s.serverError(w, r, status, "load work failed", err)
		return
	}
	if view == nil {
		s.NotFound(w, r)
		return
	}

	fragment := isHTMX(r)
	ctl := gate.New(view.Work, s.content, gate.WithLogger(requestLogger(r)))
	if ctl.State() == gate.Unlocked {
		s.renderWork(w, r, http.StatusOK, view, ctl, fragment)
		return
	}

	credential := r.PostFormValue("password")
	if msg := validateCredential(credential); msg != "" {
		view.Message = msg
		s.renderWork(w, r, http.StatusUnprocessableEntity, view, ctl, fragment)
		return
	}

	state, err := ctl.Submit(r.Context(), credential)
	switch {
	case state == gate.Unlocked:
		s.renderWork(w, r, http.StatusOK, view, ctl, fragment)
	case errors.Is(err, gate.ErrBusy):
		http.Error(w, "Conflict", http.StatusConflict)
	default:
		status := http.StatusUnauthorized
		if err != nil {
			status = http.StatusBadGateway
		}
		view.Denied = true
		view.Message = deniedMessage
		ctl.Dismiss()
		s.renderWork(w, r, status, view, ctl, fragment)
	}
}

// isHTMX reports whether the request was made by HTMX.
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
