package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/clerk/clerk-sdk-go/v2"
	"github.com/clerk/clerk-sdk-go/v2/user"
)

// clerkProfile holds the signup fields Clerk has no native attribute for
type clerkProfile struct {
	Phone    string `json:"phone,omitempty"`
	Company  string `json:"company,omitempty"`
	IsAgency bool   `json:"is_agency"`
}

// ClerkProvider authenticates against the Clerk Backend API
type ClerkProvider struct{}

var _ Provider = (*ClerkProvider)(nil)

// NewClerkProvider configures the default Clerk backend with secretKey
func NewClerkProvider(secretKey string) *ClerkProvider {
	clerk.SetKey(secretKey)
	return &ClerkProvider{}
}

func (p *ClerkProvider) Login(ctx context.Context, email, password string) (*User, error) {
	list, err := user.List(ctx, &user.ListParams{
		EmailAddresses: []string{strings.TrimSpace(email)},
	})
	if err != nil {
		return nil, clerkError("list users", err)
	}
	if len(list.Users) == 0 {
		return nil, fmt.Errorf("invalid credentials: %w", ErrAuth)
	}

	clerkUser := list.Users[0]
	if _, err := user.VerifyPassword(ctx, &user.VerifyPasswordParams{
		UserID:   clerkUser.ID,
		Password: password,
	}); err != nil {
		slog.Debug("clerk password verification failed", "user_id", clerkUser.ID, "error", err)
		return nil, fmt.Errorf("invalid credentials: %w", ErrAuth)
	}

	return mapClerkUser(clerkUser), nil
}

func (p *ClerkProvider) Signup(ctx context.Context, params SignupParams) (*User, error) {
	metadata, err := json.Marshal(clerkProfile{
		Phone:    params.Phone,
		Company:  params.Company,
		IsAgency: params.IsAgency,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode profile metadata: %w", err)
	}
	raw := json.RawMessage(metadata)

	firstName, lastName := splitName(params.Name)
	createParams := &user.CreateParams{
		EmailAddresses: &[]string{strings.TrimSpace(params.Email)},
		Password:       clerk.String(params.Password),
		PublicMetadata: &raw,
	}
	if firstName != "" {
		createParams.FirstName = clerk.String(firstName)
	}
	if lastName != "" {
		createParams.LastName = clerk.String(lastName)
	}

	clerkUser, err := user.Create(ctx, createParams)
	if err != nil {
		return nil, clerkError("create user", err)
	}

	slog.Info("clerk user created", "user_id", clerkUser.ID)
	return mapClerkUser(clerkUser), nil
}

// clerkError maps client-side API failures to ErrAuth and keeps transport errors as-is
func clerkError(op string, err error) error {
	var apiErr *clerk.APIErrorResponse
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode < 500 {
		return fmt.Errorf("clerk %s: %w: %w", op, ErrAuth, err)
	}
	return fmt.Errorf("clerk %s: %w", op, err)
}

func mapClerkUser(clerkUser *clerk.User) *User {
	u := &User{
		ID:   clerkUser.ID,
		Name: strings.TrimSpace(stringValue(clerkUser.FirstName) + " " + stringValue(clerkUser.LastName)),
	}

	for _, addr := range clerkUser.EmailAddresses {
		if addr.ID == stringValue(clerkUser.PrimaryEmailAddressID) {
			u.Email = addr.EmailAddress
			break
		}
	}
	if u.Email == "" && len(clerkUser.EmailAddresses) > 0 {
		u.Email = clerkUser.EmailAddresses[0].EmailAddress
	}

	if clerkUser.HasImage {
		u.Avatar = stringValue(clerkUser.ImageURL)
	}

	var profile clerkProfile
	if len(clerkUser.PublicMetadata) > 0 {
		if err := json.Unmarshal(clerkUser.PublicMetadata, &profile); err != nil {
			slog.Warn("failed to decode clerk public metadata", "user_id", clerkUser.ID, "error", err)
		}
	}
	u.Phone = profile.Phone
	u.Company = profile.Company
	u.IsAgency = profile.IsAgency

	return u
}

// splitName puts the first word in first name and the rest in last name
func splitName(name string) (string, string) {
	fields := strings.Fields(name)
	switch len(fields) {
	case 0:
		return "", ""
	case 1:
		return fields[0], ""
	default:
		return fields[0], strings.Join(fields[1:], " ")
	}
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
