// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package contact relays contact-form messages to the site owner through
// the Resend email API.
package contact

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"unicode/utf8"
)

// Validation limits for contact form fields.
const (
	maxNameLen    = 100
	maxEmailLen   = 254
	maxMessageLen = 5_000
)

// ErrDisabled is returned by a Mailer that has no delivery configured.
var ErrDisabled = errors.New("contact: mail delivery not configured")

// Message is one contact-form submission.
type Message struct {
	Name  string
	Email string
	Body  string
}

// Normalize trims surrounding whitespace from every field.
func (m Message) Normalize() Message {
	return Message{
		Name:  strings.TrimSpace(m.Name),
		Email: strings.TrimSpace(m.Email),
		Body:  strings.TrimSpace(m.Body),
	}
}

// Validate checks a normalized message and returns the first error found,
// or "" when it is valid.
func (m Message) Validate() string {
	if m.Name == "" {
		return "Name is required."
	}
	if utf8.RuneCountInString(m.Name) > maxNameLen {
		return "Name is too long (max 100 characters)."
	}
	if strings.ContainsAny(m.Name, "\r\n") {
		return "Name must be a single line."
	}
	if m.Email == "" {
		return "Email is required."
	}
	if len(m.Email) > maxEmailLen || !validEmail(m.Email) {
		return "Please enter a valid email address."
	}
	if m.Body == "" {
		return "Message is required."
	}
	if utf8.RuneCountInString(m.Body) > maxMessageLen {
		return "Message is too long (max 5,000 characters)."
	}
	return ""
}

// Subject is the email subject line for the message.
func (m Message) Subject() string {
	return "Contact from " + m.Name
}

// validEmail accepts a bare address with a dotted domain.
func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s || addr.Name != "" {
		return false
	}
	at := strings.LastIndexByte(s, '@')
	return at > 0 && strings.Contains(s[at+1:], ".")
}

// Mailer delivers contact messages.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// Disabled is the Mailer used when no API key is configured.
type Disabled struct{}

// Send always fails with ErrDisabled.
func (Disabled) Send(context.Context, Message) error { return ErrDisabled }
