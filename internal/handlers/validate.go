// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"strings"
	"unicode/utf8"
)

// maxCredentialLen bounds the password field of the unlock form.
const maxCredentialLen = 200

// validateCredential checks the unlock form input and returns the first
// error found. The credential itself never appears in the message.
func validateCredential(credential string) string {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return "Password is required."
	}
	if utf8.RuneCountInString(credential) > maxCredentialLen {
		return "Password is too long (max 200 characters)."
	}
	if strings.ContainsAny(credential, "\r\n") {
		return "Password must be a single line."
	}
	return ""
}
