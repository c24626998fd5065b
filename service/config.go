package service

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Identity provider names accepted by IDENTITY_PROVIDER
const (
	ProviderMock  = "mock"
	ProviderStore = "store"
	ProviderClerk = "clerk"
)

const devSessionSecret = "development-session-secret"

type Config struct {
	Environment string
	Port        string
	BaseURL     string
	DBPath      string
	LogLevel    string

	Session struct {
		Secret string
		TTL    time.Duration
	}

	Identity struct {
		Provider  string
		MockDelay time.Duration
	}

	Demo struct {
		Name     string
		Email    string
		Password string
	}

	Clerk struct {
		SecretKey string
	}
}

// LoadConfig reads the configuration from the environment, loading .env first when present
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env file", "error", err)
	}

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Port:        getEnv("PORT", "8000"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8000"),
		DBPath:      getEnv("DB_PATH", "./db/popx.db"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}

	// Session
	config.Session.Secret = getEnv("SESSION_SECRET", devSessionSecret)
	ttl, err := getDuration("SESSION_TTL", 24*time.Hour)
	if err != nil {
		return nil, err
	}
	config.Session.TTL = ttl

	// Identity
	config.Identity.Provider = strings.ToLower(getEnv("IDENTITY_PROVIDER", ProviderMock))
	delay, err := getDuration("MOCK_DELAY", time.Second)
	if err != nil {
		return nil, err
	}
	config.Identity.MockDelay = delay

	// Demo account seeded into the mock provider
	config.Demo.Name = getEnv("DEMO_NAME", "Marry Doe")
	config.Demo.Email = getEnv("DEMO_EMAIL", "marry@popx.dev")
	config.Demo.Password = getEnv("DEMO_PASSWORD", "popx1234")

	// Clerk
	config.Clerk.SecretKey = getEnv("CLERK_SECRET_KEY", "")

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// IsProduction reports whether cookies should be marked secure
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) validate() error {
	switch c.Identity.Provider {
	case ProviderMock, ProviderStore:
	case ProviderClerk:
		if c.Clerk.SecretKey == "" {
			return fmt.Errorf("CLERK_SECRET_KEY is required when IDENTITY_PROVIDER=clerk")
		}
	default:
		return fmt.Errorf("unknown IDENTITY_PROVIDER %q", c.Identity.Provider)
	}

	if c.IsProduction() && c.Session.Secret == devSessionSecret {
		return fmt.Errorf("SESSION_SECRET must be set in production")
	}

	if c.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive, got %s", c.Session.TTL)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
