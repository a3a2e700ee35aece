package server

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/sessions"
	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/planwise/planwise/internal/auth"
	"github.com/planwise/planwise/internal/config"
	"github.com/planwise/planwise/internal/domain"
	"github.com/stretchr/testify/require"
)

const (
	testSecret  = "test-encryption-key-32-characters!!"
	testWebApp  = "https://app.planwise.example"
	testWebsite = "https://planwise.example"
)

// --- Mock implementations ---

type mockRegistryService struct {
	buildRegistryFn   func(ctx context.Context) ([]domain.App, error)
	buildCredentialFn func(ctx context.Context, userID string) ([]domain.AppWithCredentials, error)
	listByCategoryFn  func(ctx context.Context, category string) ([]domain.App, error)
}

func (m *mockRegistryService) BuildRegistry(ctx context.Context) ([]domain.App, error) {
	if m.buildRegistryFn != nil {
		return m.buildRegistryFn(ctx)
	}
	return nil, nil
}

func (m *mockRegistryService) BuildRegistryWithCredentials(ctx context.Context, userID string) ([]domain.AppWithCredentials, error) {
	if m.buildCredentialFn != nil {
		return m.buildCredentialFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockRegistryService) ListByCategory(ctx context.Context, category string) ([]domain.App, error) {
	if m.listByCategoryFn != nil {
		return m.listByCategoryFn(ctx, category)
	}
	return nil, nil
}

type mockUserService struct {
	countFn func(ctx context.Context) (int64, error)
}

func (m *mockUserService) Count(ctx context.Context) (int64, error) {
	if m.countFn != nil {
		return m.countFn(ctx)
	}
	return 1, nil
}

type mockSessionIssuer struct {
	result *auth.SessionResult
	err    error
}

func (m *mockSessionIssuer) IssueSession(_ context.Context, _ auth.SessionRequest) (*auth.SessionResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.result != nil {
		return m.result, nil
	}
	return nil, errors.New("not implemented")
}

// --- Test helpers ---

func newTestServer(t *testing.T, opts ...func(*Server)) *Server {
	t.Helper()

	tmpl := template.Must(template.New("login.html").Parse(
		`Login {{.ErrorMessage}}{{if .TwoFactorRequired}} [2FA]{{end}} totp={{.TotpEmail}} email={{.Email}} cb={{.CallbackURL}}`))
	template.Must(tmpl.New("apps.html").Parse(`Apps count={{len .Apps}} loggedin={{.LoggedIn}}`))
	template.Must(tmpl.New("category.html").Parse(`Category {{.Category}} count={{len .Apps}}`))

	store := sessions.NewCookieStore([]byte("test-secret-key-32-bytes-long!!!"))
	store.Options = &sessions.Options{
		Path:   "/",
		MaxAge: 3600,
	}

	clock := clockwork.NewFakeClock()

	e := echo.New()

	srv := &Server{
		echo: e,
		config: &config.Config{
			AppEnv:        "test",
			WebAppURL:     testWebApp,
			WebsiteURL:    testWebsite,
			SessionMaxAge: time.Hour,
		},
		registry:      &mockRegistryService{},
		users:         &mockUserService{},
		tokenVerifier: auth.NewTokenVerifier(testSecret, testWebsite, clock),
		sessionIssuer: &mockSessionIssuer{},
		sanitizer:     auth.NewRedirectSanitizer(testWebApp, testWebsite),
		sessionStore:  store,
		templates:     tmpl,
		clock:         clock,
		startTime:     clock.Now(),
	}

	for _, opt := range opts {
		opt(srv)
	}

	srv.registerRoutes()

	return srv
}

func withRegistry(reg registryService) func(*Server) {
	return func(s *Server) { s.registry = reg }
}

func withUsers(users userService) func(*Server) {
	return func(s *Server) { s.users = users }
}

func withIssuer(issuer auth.SessionIssuer) func(*Server) {
	return func(s *Server) { s.sessionIssuer = issuer }
}

// loggedInRequest returns a request carrying a valid session cookie for userID.
func loggedInRequest(t *testing.T, srv *Server, method, target string) *http.Request {
	t.Helper()

	seed := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	session, err := srv.sessionStore.Get(seed, sessionName)
	require.NoError(t, err)
	session.Values[sessionKeyUserID] = "2f5c3a6e-0000-4000-8000-000000000001"
	session.Values[sessionKeyEmail] = "jane@example.com"
	require.NoError(t, session.Save(seed, rec))

	req := httptest.NewRequest(method, target, nil)
	for _, cookie := range rec.Result().Cookies() {
		req.AddCookie(cookie)
	}
	return req
}
