// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"nanamelab/internal/contact"
	"nanamelab/internal/render"
)

const sendFailedMessage = "Your message could not be sent. Please try again later."

// Contact renders the contact form.
func (s *Site) Contact(w http.ResponseWriter, r *http.Request) {
	s.renderContact(w, r, http.StatusOK, ContactView{Enabled: s.contactEnabled()})
}

// ContactSubmit validates the contact form and relays it to the mailer.
// HTMX requests receive only the form region.
func (s *Site) ContactSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	view := ContactView{
		Enabled: s.contactEnabled(),
		Form: contact.Message{
			Name:  r.PostFormValue("name"),
			Email: r.PostFormValue("email"),
			Body:  r.PostFormValue("message"),
		}.Normalize(),
	}

	if msg := view.Form.Validate(); msg != "" {
		view.Error = msg
		s.renderContact(w, r, http.StatusUnprocessableEntity, view)
		return
	}

	if err := s.mailer.Send(r.Context(), view.Form); err != nil {
		slog.Error("send contact message failed", "error", err, "request_id", requestID(r))
		view.Error = sendFailedMessage
		status := http.StatusBadGateway
		if errors.Is(err, contact.ErrDisabled) {
			status = http.StatusServiceUnavailable
		}
		s.renderContact(w, r, status, view)
		return
	}

	slog.Info("contact message sent", "request_id", requestID(r))
	s.renderContact(w, r, http.StatusOK, ContactView{Enabled: true, Sent: true})
}

func (s *Site) renderContact(w http.ResponseWriter, r *http.Request, status int, view ContactView) {
	data := &render.PageData{
		Title:   "Contact",
		Section: "contact",
		Data:    view,
	}
	if isHTMX(r) && r.Method == http.MethodPost {
		s.renderer.Fragment(w, r, status, "contact", "contact-form", data)
		return
	}
	s.renderer.Page(w, r, status, "contact", data)
}
