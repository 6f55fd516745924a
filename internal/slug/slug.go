// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug normalizes content slugs between their URL form and the
// human form. WordPress stores non-ASCII slugs percent-encoded
// ("%e3%83%ad%e3%82%b4"), while visitors and templates use the decoded text.
package slug

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// MaxLen is the longest slug accepted from a URL, in runes.
const MaxLen = 200

var (
	// forbidden matches characters that can never appear in a slug.
	forbidden = regexp.MustCompile(`[\x00-\x1f\x7f/?#\s]`)
	// percentTriplet matches a single percent-encoded byte.
	percentTriplet = regexp.MustCompile(`%[0-9a-fA-F]{2}`)
)

// Decode turns a possibly percent-encoded slug into its human form,
// normalized to NFC so that decomposed kana typed on some systems matches
// the backend's composed form. Already-decoded input is only normalized,
// so Decode is idempotent for slugs that do not themselves contain literal
// "%XX" sequences. Undecodable input is returned as-is.
func Decode(s string) string {
	s = strings.TrimSpace(s)
	if !percentTriplet.MatchString(s) {
		return norm.NFC.String(s)
	}
	decoded, err := url.PathUnescape(s)
	if err != nil || !utf8.ValidString(decoded) {
		return s
	}
	return norm.NFC.String(decoded)
}

// Valid reports whether s, in decoded form, is acceptable as a slug.
func Valid(s string) bool {
	if s == "" || utf8.RuneCountInString(s) > MaxLen {
		return false
	}
	return !forbidden.MatchString(s)
}

// Path returns s escaped for use as a single URL path segment.
func Path(s string) string {
	return url.PathEscape(s)
}
