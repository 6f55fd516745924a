// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package gate controls the reveal state of one password-protected work
// during a single page view.
//
// The remote backend is the only judge of a credential: the controller
// forwards it once per submission and trusts any populated body it gets
// back. Nothing here stores or compares credentials.
package gate

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"nanamelab/internal/models"
)

// State is the reveal state of a gated work.
type State int

const (
	// Locked shows metadata and the credential form, never the body.
	Locked State = iota
	// Verifying has exactly one credential check in flight.
	Verifying
	// Unlocked is terminal: the full work is available.
	Unlocked
	// Denied follows a rejected or failed check and returns to Locked.
	Denied
)

func (s State) String() string {
	switch s {
	case Locked:
		return "locked"
	case Verifying:
		return "verifying"
	case Unlocked:
		return "unlocked"
	case Denied:
		return "denied"
	}
	return "unknown"
}

// ErrBusy is returned when a submission arrives while another one is
// still being verified.
var ErrBusy = errors.New("gate: verification already in progress")

// ErrNoWork is returned by Submit when the controller holds no work.
var ErrNoWork = errors.New("gate: no work loaded")

// Verifier re-fetches a work with a credential. It returns nil or a
// body-less work when the credential is rejected. *wordpress.Client
// satisfies it.
type Verifier interface {
	GetItemBySlugWithCredential(ctx context.Context, slug, credential string) (*models.Work, error)
}

// VerifierFunc adapts a function to the Verifier interface.
type VerifierFunc func(ctx context.Context, slug, credential string) (*models.Work, error)

// GetItemBySlugWithCredential calls f.
func (f VerifierFunc) GetItemBySlugWithCredential(ctx context.Context, slug, credential string) (*models.Work, error) {
	return f(ctx, slug, credential)
}

// Transition is reported to the hook on every state change.
type Transition struct {
	Attempt string
	Slug    string
	From    State
	To      State
}

// Option configures a Controller.
type Option func(*Controller)

// WithHook registers a function called on every transition, in order,
// from the goroutine that caused it and after the controller's lock is
// released.
func WithHook(fn func(Transition)) Option {
	return func(c *Controller) { c.hook = fn }
}

// WithLogger replaces the default slog logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// Controller holds one work and its reveal state. It is safe for
// concurrent use; overlapping submissions are rejected, not queued.
type Controller struct {
	verifier Verifier
	hook     func(Transition)
	log      *slog.Logger

	mu      sync.Mutex
	state   State
	work    *models.Work
	busy    bool
	pending []Transition
}

// New creates a controller for the work as first loaded. A work that is
// not protected starts Unlocked and never reaches the verifier; a nil
// work starts Locked.
func New(initial *models.Work, v Verifier, opts ...Option) *Controller {
	c := &Controller{
		verifier: v,
		log:      slog.Default(),
		state:    Locked,
		work:     initial,
	}
	for _, opt := range opts {
		opt(c)
	}
	if initial != nil && !initial.Protected {
		c.state = Unlocked
	}
	return c
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Work returns the held work. Before unlocking it is the work as first
// loaded; its body must not be rendered.
func (c *Controller) Work() *models.Work {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.work
}

// Content returns the work to render in full. ok is false unless the
// controller is Unlocked.
func (c *Controller) Content() (*models.Work, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Unlocked {
		return nil, false
	}
	return c.work, true
}

// Submit verifies credential against the backend. It returns Unlocked on
// success and Denied otherwise; a transport failure is returned alongside
// Denied. Submitting to an unlocked controller is a no-op.
func (c *Controller) Submit(ctx context.Context, credential string) (State, error) {
	attempt := uuid.NewString()

	c.mu.Lock()
	switch {
	case c.state == Unlocked:
		c.mu.Unlock()
		return Unlocked, nil
	case c.busy:
		c.mu.Unlock()
		return Verifying, ErrBusy
	case c.work == nil:
		state := c.state
		c.mu.Unlock()
		return state, ErrNoWork
	}
	if c.state == Denied {
		c.transition(attempt, Locked)
	}
	c.busy = true
	c.transition(attempt, Verifying)
	workSlug := c.work.Slug
	c.unlockAndFire()

	unlocked, err := c.verifier.GetItemBySlugWithCredential(ctx, workSlug, credential)

	c.mu.Lock()
	defer c.unlockAndFire()
	c.busy = false

	switch {
	case err != nil:
		c.log.Warn("unlock verification failed", "attempt", attempt, "slug", workSlug, "error", err)
		c.transition(attempt, Denied)
		return Denied, err
	case unlocked == nil || unlocked.Body == "":
		c.log.Info("unlock denied", "attempt", attempt, "slug", workSlug)
		c.transition(attempt, Denied)
		return Denied, nil
	}

	c.work = unlocked
	c.log.Info("unlock granted", "attempt", attempt, "slug", workSlug)
	c.transition(attempt, Unlocked)
	return Unlocked, nil
}

// Dismiss acknowledges a denial and returns to Locked. It does nothing in
// any other state.
func (c *Controller) Dismiss() {
	c.mu.Lock()
	defer c.unlockAndFire()
	if c.state == Denied {
		c.transition("", Locked)
	}
}

// transition changes the state and queues the hook call. It must be
// called with c.mu held.
func (c *Controller) transition(attempt string, to State) {
	from := c.state
	c.state = to
	if c.hook != nil {
		c.pending = append(c.pending, Transition{Attempt: attempt, Slug: c.slug(), From: from, To: to})
	}
}

// unlockAndFire releases c.mu, then runs the hook for the queued
// transitions so a hook may call back into the controller.
func (c *Controller) unlockAndFire() {
	pending := c.pending
	c.pending = nil
	c.mu.Unlock()
	for _, t := range pending {
		c.hook(t)
	}
}

func (c *Controller) slug() string {
	if c.work == nil {
		return ""
	}
	return c.work.Slug
}
