// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package wordpress

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a lookup that must succeed finds nothing.
	// Only category id resolution uses it; other lookups return nil results.
	ErrNotFound = errors.New("not found")

	// ErrMalformed marks a response body that is not the expected JSON shape.
	ErrMalformed = errors.New("malformed payload")

	// ErrStatus marks a non-2xx response.
	ErrStatus = errors.New("unexpected status")
)

// TransportError reports a failed round-trip to the content API: the host
// was unreachable, answered with a non-2xx status, or sent a payload that
// could not be decoded. URL never includes credentials.
type TransportError struct {
	Op         string
	URL        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("wordpress %s: %s: status %d: %v", e.Op, e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("wordpress %s: %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// IsTransport reports whether err is (or wraps) a *TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsNotFound reports whether err wraps ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
