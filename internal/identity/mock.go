package identity

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

type mockRecord struct {
	user     User
	password string
}

// MockProvider is an in-memory account store with a simulated network delay.
// Login succeeds only for a registered email with the matching password,
// and signup fails when the email is already taken.
type MockProvider struct {
	mu    sync.RWMutex
	delay time.Duration
	users map[string]*mockRecord
}

var _ Provider = (*MockProvider)(nil)

// NewMockProvider creates an empty mock store that waits delay before answering
func NewMockProvider(delay time.Duration) *MockProvider {
	return &MockProvider{
		delay: delay,
		users: make(map[string]*mockRecord),
	}
}

// Seed registers an account without the simulated delay
func (m *MockProvider) Seed(params SignupParams) (*User, error) {
	return m.register(params)
}

func (m *MockProvider) Login(ctx context.Context, email, password string) (*User, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.users[normalizeEmail(email)]
	if !ok {
		slog.Debug("mock login rejected: unknown email")
		return nil, fmt.Errorf("invalid credentials: %w", ErrAuth)
	}
	if subtle.ConstantTimeCompare([]byte(rec.password), []byte(password)) != 1 {
		slog.Debug("mock login rejected: wrong password", "user_id", rec.user.ID)
		return nil, fmt.Errorf("invalid credentials: %w", ErrAuth)
	}

	user := rec.user
	return &user, nil
}

func (m *MockProvider) Signup(ctx context.Context, params SignupParams) (*User, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	return m.register(params)
}

// Len reports how many accounts the store holds
func (m *MockProvider) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.users)
}

func (m *MockProvider) register(params SignupParams) (*User, error) {
	key := normalizeEmail(params.Email)

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.users[key]; exists {
		return nil, fmt.Errorf("email already registered: %w", ErrAuth)
	}

	rec := &mockRecord{
		user: User{
			ID:       ulid.Make().String(),
			Name:     params.Name,
			Email:    params.Email,
			Phone:    params.Phone,
			Company:  params.Company,
			IsAgency: params.IsAgency,
		},
		password: params.Password,
	}
	m.users[key] = rec

	user := rec.user
	return &user, nil
}

// wait simulates the round trip of a remote identity service
func (m *MockProvider) wait(ctx context.Context) error {
	if m.delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(m.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("identity request cancelled: %w", ctx.Err())
	}
}
