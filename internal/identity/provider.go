package identity

import (
	"context"
	"errors"
	"strings"
)

// ErrAuth is returned for rejected credentials and failed signups.
var ErrAuth = errors.New("authentication failed")

// User is the account record handed to the auth context after login or signup
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Company  string `json:"company"`
	IsAgency bool   `json:"isAgency"`
	Avatar   string `json:"avatar,omitempty"`
}

// SignupParams carries every field of the signup form
type SignupParams struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Company  string
	IsAgency bool
}

// Provider verifies credentials and registers new accounts.
// Implementations return errors that match ErrAuth for every rejection.
type Provider interface {
	Login(ctx context.Context, email, password string) (*User, error)
	Signup(ctx context.Context, params SignupParams) (*User, error)
}

// normalizeEmail lowercases and trims an address so lookups are case-insensitive
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
