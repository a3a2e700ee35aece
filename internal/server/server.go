package server

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/planwise/planwise/internal/auth"
	"github.com/planwise/planwise/internal/config"
	"github.com/planwise/planwise/internal/domain"
	"github.com/planwise/planwise/web"
)

// registryService is what the app-store handlers need from the registry.
type registryService interface {
	BuildRegistry(ctx context.Context) ([]domain.App, error)
	BuildRegistryWithCredentials(ctx context.Context, userID string) ([]domain.AppWithCredentials, error)
	ListByCategory(ctx context.Context, category string) ([]domain.App, error)
}

// userService is what the login flow needs from persisted users.
type userService interface {
	Count(ctx context.Context) (int64, error)
}

// postgresHealthChecker is a minimal interface for database health checks.
type postgresHealthChecker interface {
	Ping(ctx context.Context) error
}

type Server struct {
	echo   *echo.Echo
	config *config.Config

	registry registryService
	users    userService

	tokenVerifier *auth.TokenVerifier
	sessionIssuer auth.SessionIssuer
	sanitizer     *auth.RedirectSanitizer
	sessionStore  *sessions.CookieStore

	templates *template.Template
	dbHealth  postgresHealthChecker
	clock     clockwork.Clock
	startTime time.Time
}

func NewServer(cfg *config.Config, registry registryService, users userService, dbHealth postgresHealthChecker, clock clockwork.Clock) (*Server, error) {
	templates, err := template.ParseFS(web.TemplateFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	srv := &Server{
		echo:          e,
		config:        cfg,
		registry:      registry,
		users:         users,
		tokenVerifier: auth.NewTokenVerifier(cfg.EncryptionKey, cfg.WebsiteURL, clock),
		sessionIssuer: auth.NewSessionClient(cfg.AuthEndpoint),
		sanitizer:     auth.NewRedirectSanitizer(cfg.WebAppURL, cfg.WebsiteURL),
		sessionStore:  setupSessionStore(cfg),
		templates:     templates,
		dbHealth:      dbHealth,
		clock:         clock,
		startTime:     clock.Now(),
	}

	srv.registerRoutes()

	return srv, nil
}

func (s *Server) Start() error {
	slog.Info("Starting server", "port", s.config.Port)
	if err := s.echo.Start(":" + s.config.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return nil
}

// Session keys
const (
	sessionName      = "planwise-session"
	sessionKeyUserID = "user_id"
	sessionKeyEmail  = "email"
)

func (s *Server) renderTemplate(c echo.Context, name string, data any) error {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		slog.Error("Template execution failed", "path", c.Request().URL.Path, "error", err)
		if err := c.String(http.StatusInternalServerError, "Failed to render page"); err != nil {
			return fmt.Errorf("failed to send error response: %w", err)
		}
		return nil
	}
	if err := c.HTMLBlob(http.StatusOK, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to send HTML response: %w", err)
	}
	return nil
}

func setupSessionStore(cfg *config.Config) *sessions.CookieStore {
	sessionStore := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.SessionMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   cfg.AppEnv == "production",
		SameSite: http.SameSiteLaxMode,
	}
	return sessionStore
}
