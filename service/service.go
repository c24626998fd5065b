package service

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/loganlanou/popx/internal/auth"
	"github.com/loganlanou/popx/internal/authform"
	"github.com/loganlanou/popx/internal/handlers"
	"github.com/loganlanou/popx/internal/identity"
	"github.com/loganlanou/popx/internal/middleware"
	"github.com/loganlanou/popx/internal/session"
	"github.com/loganlanou/popx/storage"
)

type Service struct {
	config   *Config
	provider identity.Provider

	sessions *session.Manager
	contexts *session.Registry[*auth.Context]
	forms    *session.Registry[*authform.Form]

	authHandler *handlers.AuthHandler
	apiHandler  *handlers.APIHandler
	liveHandler *handlers.LiveHandler
}

// New wires the per-browser state registries and handlers around provider
func New(config *Config, provider identity.Provider) *Service {
	sessions := session.NewManager(config.Session.Secret, int(config.Session.TTL.Seconds()), config.IsProduction())

	return &Service{
		config:   config,
		provider: provider,
		sessions: sessions,
		contexts: session.NewRegistry(config.Session.TTL, func() *auth.Context {
			return auth.NewContext(provider)
		}),
		forms:       session.NewRegistry(config.Session.TTL, authform.New),
		authHandler: handlers.NewAuthHandler(sessions, config.BaseURL),
		apiHandler:  handlers.NewAPIHandler(),
		liveHandler: handlers.NewLiveHandler(),
	}
}

// NewProvider builds the identity provider selected by IDENTITY_PROVIDER.
// store is only used by the store provider and may be nil otherwise.
func NewProvider(config *Config, store *storage.Storage) (identity.Provider, error) {
	switch config.Identity.Provider {
	case ProviderMock:
		provider := identity.NewMockProvider(config.Identity.MockDelay)
		if config.Demo.Email != "" {
			if _, err := provider.Seed(identity.SignupParams{
				Name:     config.Demo.Name,
				Email:    config.Demo.Email,
				Password: config.Demo.Password,
			}); err != nil {
				return nil, fmt.Errorf("failed to seed demo account: %w", err)
			}
			slog.Info("seeded demo account", "email", config.Demo.Email)
		}
		return provider, nil

	case ProviderStore:
		if store == nil {
			return nil, fmt.Errorf("store provider requires a database")
		}
		return identity.NewStoreProvider(store.Queries), nil

	case ProviderClerk:
		return identity.NewClerkProvider(config.Clerk.SecretKey), nil
	}

	return nil, fmt.Errorf("unknown identity provider %q", config.Identity.Provider)
}

func (s *Service) RegisterRoutes(e *echo.Echo) {
	// Health check - no session
	e.GET("/health", s.handleHealth)

	// Everything else is scoped to the browser session
	browser := e.Group("")
	browser.Use(middleware.LoadSession(s.sessions, s.contexts, s.forms))

	// Root composition
	browser.GET("/", s.authHandler.HandleIndex)

	// Form posts
	authGroup := browser.Group("/auth")
	authGroup.POST("/mode", s.authHandler.HandleMode)
	authGroup.POST("/password-visibility", s.authHandler.HandlePasswordVisibility)
	authGroup.POST("/login", s.authHandler.HandleLogin)
	authGroup.POST("/signup", s.authHandler.HandleSignup)
	authGroup.POST("/logout", s.authHandler.HandleLogout)

	browser.GET("/account/avatar.png", handlers.HandleAvatar)

	// JSON API
	api := browser.Group("/api")
	api.GET("/session", s.apiHandler.HandleSession)
	api.POST("/login", s.apiHandler.HandleLogin)
	api.POST("/signup", s.apiHandler.HandleSignup)
	api.POST("/logout", s.apiHandler.HandleLogout)
	api.GET("/form", s.apiHandler.HandleGetForm)
	api.POST("/form/mode", s.apiHandler.HandleFormMode)
	api.POST("/form/field", s.apiHandler.HandleFormField)
	api.POST("/form/password-visibility", s.apiHandler.HandleFormPasswordVisibility)

	// Live state push
	browser.GET("/ws/session", s.liveHandler.HandleSession)
}

// Close stops the registry cleanup goroutines
func (s *Service) Close() {
	s.contexts.Close()
	s.forms.Close()
}

func (s *Service) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":           "healthy",
		"environment":      s.config.Environment,
		"identityProvider": s.config.Identity.Provider,
		"sessions":         s.contexts.Len(),
	})
}
