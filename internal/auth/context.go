package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/loganlanou/popx/internal/identity"
)

// ErrBusy is returned when a login or signup is submitted while another one is pending
var ErrBusy = errors.New("authentication already in progress")

// State is a snapshot of one browser's authentication state
type State struct {
	User      *identity.User `json:"user"`
	IsLoading bool           `json:"isLoading"`
}

// Authenticated reports whether a user is signed in
func (s State) Authenticated() bool {
	return s.User != nil
}

// Context owns the session state of a single browser and is the only
// place it is mutated. Views read it through State and Subscribe.
type Context struct {
	provider identity.Provider

	mu        sync.Mutex
	user      *identity.User
	isLoading bool
	listeners []*listener

	// publishMu orders deliveries so the last one a listener sees is the latest state
	publishMu sync.Mutex
}

type listener struct {
	fn func(State)
}

// NewContext creates a signed-out context backed by provider
func NewContext(provider identity.Provider) *Context {
	return &Context{provider: provider}
}

// State returns a copy of the current state
func (a *Context) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.snapshotLocked()
}

// User returns the signed-in user or nil
func (a *Context) User() *identity.User {
	return a.State().User
}

// Login verifies credentials with the identity provider and signs the user in.
// On failure the current user is left untouched.
func (a *Context) Login(ctx context.Context, email, password string) error {
	return a.run(ctx, "login", func(ctx context.Context) (*identity.User, error) {
		return a.provider.Login(ctx, email, password)
	})
}

// Signup registers a new account and signs it in
func (a *Context) Signup(ctx context.Context, params identity.SignupParams) error {
	return a.run(ctx, "signup", func(ctx context.Context) (*identity.User, error) {
		return a.provider.Signup(ctx, params)
	})
}

// Logout clears the current user
func (a *Context) Logout() {
	a.mu.Lock()
	prev := a.user
	a.user = nil
	a.mu.Unlock()

	if prev != nil {
		slog.Info("user logged out", "user_id", prev.ID)
	}
	a.publish()
}

// Subscribe registers fn to receive every state change.
// The returned function removes the subscription. fn must not call
// Login, Signup or Logout.
func (a *Context) Subscribe(fn func(State)) func() {
	l := &listener{fn: fn}

	a.mu.Lock()
	a.listeners = append(a.listeners, l)
	a.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			a.mu.Lock()
			defer a.mu.Unlock()
			for i, existing := range a.listeners {
				if existing == l {
					a.listeners = append(a.listeners[:i:i], a.listeners[i+1:]...)
					break
				}
			}
		})
	}
}

func (a *Context) run(ctx context.Context, op string, call func(context.Context) (*identity.User, error)) error {
	a.mu.Lock()
	if a.isLoading {
		a.mu.Unlock()
		slog.Warn("rejected concurrent auth request", "op", op)
		return fmt.Errorf("%s: %w", op, ErrBusy)
	}
	a.isLoading = true
	a.mu.Unlock()
	a.publish()

	user, err := call(ctx)

	a.mu.Lock()
	a.isLoading = false
	if err == nil {
		a.user = user
	}
	a.mu.Unlock()
	a.publish()

	if err != nil {
		if !errors.Is(err, identity.ErrAuth) {
			slog.Error("identity provider failed", "op", op, "error", err)
			return fmt.Errorf("%s: %w: %w", op, identity.ErrAuth, err)
		}
		slog.Info("auth request rejected", "op", op)
		return fmt.Errorf("%s: %w", op, err)
	}

	slog.Info("user authenticated", "op", op, "user_id", user.ID)
	return nil
}

func (a *Context) snapshotLocked() State {
	state := State{IsLoading: a.isLoading}
	if a.user != nil {
		user := *a.user
		state.User = &user
	}
	return state
}

// publish delivers the current state to every listener in registration order
func (a *Context) publish() {
	a.publishMu.Lock()
	defer a.publishMu.Unlock()

	a.mu.Lock()
	state := a.snapshotLocked()
	listeners := make([]*listener, len(a.listeners))
	copy(listeners, a.listeners)
	a.mu.Unlock()

	for _, l := range listeners {
		l.fn(state)
	}
}
