package identity

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/loganlanou/popx/storage/db"
	"github.com/oklog/ulid/v2"
	"golang.org/x/crypto/bcrypt"
)

// StoreProvider keeps accounts in the SQLite users table with bcrypt password hashes
type StoreProvider struct {
	queries *db.Queries
	cost    int
}

var _ Provider = (*StoreProvider)(nil)

// NewStoreProvider creates a provider backed by the given queries
func NewStoreProvider(queries *db.Queries) *StoreProvider {
	return &StoreProvider{
		queries: queries,
		cost:    bcrypt.DefaultCost,
	}
}

// WithCost overrides the bcrypt cost, mostly so tests can use bcrypt.MinCost
func (p *StoreProvider) WithCost(cost int) *StoreProvider {
	p.cost = cost
	return p
}

func (p *StoreProvider) Login(ctx context.Context, email, password string) (*User, error) {
	row, err := p.queries.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("invalid credentials: %w", ErrAuth)
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(row.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid credentials: %w", ErrAuth)
	}

	return userFromRow(row), nil
}

func (p *StoreProvider) Signup(ctx context.Context, params SignupParams) (*User, error) {
	// the address is stored as submitted, lookups go through the normalized key
	key := normalizeEmail(params.Email)

	if _, err := p.queries.GetUserByEmail(ctx, key); err == nil {
		return nil, fmt.Errorf("email already registered: %w", ErrAuth)
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), p.cost)
	if err != nil {
		// bcrypt rejects passwords longer than 72 bytes
		return nil, fmt.Errorf("failed to hash password: %w: %w", ErrAuth, err)
	}

	id := ulid.Make().String()
	err = p.queries.CreateUser(ctx, db.CreateUserParams{
		ID:           id,
		Name:         params.Name,
		Email:        params.Email,
		EmailKey:     key,
		PasswordHash: string(hash),
		Phone:        params.Phone,
		Company:      params.Company,
		IsAgency:     params.IsAgency,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("email already registered: %w", ErrAuth)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	row, err := p.queries.GetUserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load created user: %w", err)
	}

	slog.Info("user registered", "user_id", row.ID)
	return userFromRow(row), nil
}

func userFromRow(row db.User) *User {
	user := &User{
		ID:       row.ID,
		Name:     row.Name,
		Email:    row.Email,
		Phone:    row.Phone,
		Company:  row.Company,
		IsAgency: row.IsAgency,
	}
	if row.AvatarUrl.Valid {
		user.Avatar = row.AvatarUrl.String
	}
	return user
}

// isUniqueViolation matches the constraint message of both SQLite drivers
func isUniqueViolation(err error) bool {
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
