// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package contact

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/resend/resend-go/v2"
)

// DefaultResendURL is the Resend API root.
const DefaultResendURL = "https://api.resend.com/"

// ResendConfig holds the settings for the Resend mailer.
type ResendConfig struct {
	APIKey  string
	From    string
	To      []string
	BaseURL string // Override for testing; defaults to DefaultResendURL.
}

// ResendMailer implements Mailer on the Resend SDK.
type ResendMailer struct {
	config ResendConfig
	client *resend.Client
}

// NewResend creates a Resend mailer. It fails only on an unparsable
// BaseURL.
func NewResend(cfg ResendConfig) (*ResendMailer, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultResendURL
	}
	// The SDK resolves "emails" against the base, so it must end in a slash.
	if !strings.HasSuffix(cfg.BaseURL, "/") {
		cfg.BaseURL += "/"
	}
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("resend base url: %w", err)
	}

	client := resend.NewCustomClient(&http.Client{Timeout: 15 * time.Second}, cfg.APIKey)
	client.BaseURL = base
	return &ResendMailer{config: cfg, client: client}, nil
}

// Send delivers the message as a plain-text email with reply-to set to
// the visitor's address.
func (m *ResendMailer) Send(ctx context.Context, msg Message) error {
	sent, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.config.From,
		To:      m.config.To,
		Subject: msg.Subject(),
		ReplyTo: msg.Email,
		Text:    msg.Body,
	})
	if err != nil {
		return fmt.Errorf("resend send: %w", err)
	}
	if sent == nil || sent.Id == "" {
		return errors.New("resend send: no message id returned")
	}
	return nil
}
