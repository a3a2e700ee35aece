package server

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/planwise/planwise/internal/auth"
	"github.com/planwise/planwise/internal/logging"
	"github.com/planwise/planwise/internal/metrics"
)

const (
	sessionCallTimeout = 10 * time.Second

	redirectHome         = "/"
	redirectSetup        = "/auth/setup"
	errInvalidJWT        = "Invalid JWT: Please try again"
	errInvalidJWTPayload = "JWT Invalid Payload"
)

func errorRedirect(reason string) string {
	return "/auth/error?error=" + url.QueryEscape(reason)
}

// handleLoginPage runs the login flow: verification-token check, session
// check, first-run bootstrap check, then the form render. Each check either
// short-circuits with a soft redirect or falls through to the next.
func (s *Server) handleLoginPage(c echo.Context) error {
	ctx := c.Request().Context()

	totpEmail := ""
	if token := c.QueryParam("totp"); token != "" {
		email, err := s.tokenVerifier.VerifyLoginToken(token)
		if errors.Is(err, auth.ErrMissingEmailClaim) {
			return c.Redirect(302, errorRedirect(errInvalidJWTPayload))
		}
		if err != nil {
			slog.Info("Login token rejected", "error", err)
			return c.Redirect(302, errorRedirect(errInvalidJWT))
		}
		totpEmail = email
	}

	if s.hasActiveSession(c) {
		return c.Redirect(302, redirectHome)
	}

	userCount, err := s.users.Count(ctx)
	if err != nil {
		slog.Error("Failed to count users for login", "error", err)
		return c.String(500, "Failed to load login page")
	}
	if userCount == 0 {
		// First run: send to admin bootstrap
		return c.Redirect(302, redirectSetup)
	}

	return s.renderLoginForm(c, loginFormState{
		TotpEmail:   totpEmail,
		CallbackURL: c.QueryParam("callbackUrl"),
	})
}

// loginFormState carries everything the login template needs beyond config
// flags.
type loginFormState struct {
	TotpEmail    string
	ErrorMessage string
	TwoFactor    bool
	Email        string
	CallbackURL  string
}

func (s *Server) renderLoginForm(c echo.Context, state loginFormState) error {
	data := map[string]any{
		"CSRFToken":            c.Get("csrf"),
		"TotpEmail":            state.TotpEmail,
		"Email":                state.Email,
		"ErrorMessage":         state.ErrorMessage,
		"TwoFactorRequired":    state.TwoFactor || state.TotpEmail != "",
		"CallbackURL":          state.CallbackURL,
		"IsGoogleLoginEnabled": s.config.GoogleLoginEnabled,
		"IsSAMLLoginEnabled":   s.config.SAMLLoginEnabled,
		"SAMLTenantID":         s.config.SAMLTenantID,
		"SAMLProductID":        s.config.SAMLProductID,
		"SignupDisabled":       s.config.SignupDisabled,
		"WebsiteURL":           s.config.WebsiteURL,
	}
	return s.renderTemplate(c, "login.html", data)
}

// handleLoginSubmit forwards credentials to the session issuer and maps the
// outcome: success redirects to the sanitized callback URL, a pending second
// factor re-renders the form with the code field, and rejections map to
// user-facing messages. One attempt per submission, no retries.
func (s *Server) handleLoginSubmit(c echo.Context) error {
	email := c.FormValue("email")
	password := c.FormValue("password")
	totpCode := c.FormValue("totp_code")
	callbackURL := c.FormValue("callback_url")

	ctx, cancel := context.WithTimeout(c.Request().Context(), sessionCallTimeout)
	defer cancel()

	result, err := s.sessionIssuer.IssueSession(ctx, auth.SessionRequest{
		Email:    email,
		Password: password,
		TOTPCode: totpCode,
	})
	if err != nil {
		logging.WithError(err).Error("Session issuance failed")
		metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		return s.renderLoginForm(c, loginFormState{
			Email:        email,
			CallbackURL:  callbackURL,
			ErrorMessage: auth.MessageFor(auth.ErrorCodeInternalServerError),
		})
	}

	if result.Succeeded() {
		if err := s.saveSession(c, result.UserID, email); err != nil {
			slog.Error("Failed to save session", "error", err)
			return c.String(500, "Failed to save session")
		}
		metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
		return c.Redirect(302, s.sanitizer.SafeRedirectURL(callbackURL))
	}

	if result.Error == auth.ErrorCodeSecondFactorRequired {
		metrics.LoginAttemptsTotal.WithLabelValues("second_factor").Inc()
		return s.renderLoginForm(c, loginFormState{
			Email:       email,
			CallbackURL: callbackURL,
			TwoFactor:   true,
		})
	}

	metrics.LoginAttemptsTotal.WithLabelValues("rejected").Inc()
	return s.renderLoginForm(c, loginFormState{
		Email:        email,
		CallbackURL:  callbackURL,
		ErrorMessage: auth.MessageFor(result.Error),
	})
}

func (s *Server) handleLogout(c echo.Context) error {
	session, err := s.sessionStore.Get(c.Request(), sessionName)
	if err != nil {
		slog.Warn("Failed to get session during logout", "error", err)
		session, err = s.sessionStore.New(c.Request(), sessionName)
		if err != nil {
			slog.Error("Failed to create new session during logout", "error", err)
		}
	}
	session.Options.MaxAge = -1

	if err := session.Save(c.Request(), c.Response().Writer); err != nil {
		slog.Error("Failed to save logout session", "error", err)
		return c.String(500, "Failed to logout due to session error. Please try again or clear your browser cookies.")
	}

	return c.Redirect(302, "/auth/login")
}

func (s *Server) hasActiveSession(c echo.Context) bool {
	session, err := s.sessionStore.Get(c.Request(), sessionName)
	if err != nil {
		return false
	}
	userID, ok := session.Values[sessionKeyUserID].(string)
	return ok && userID != ""
}

func (s *Server) saveSession(c echo.Context, userID, email string) error {
	session, err := s.sessionStore.Get(c.Request(), sessionName)
	if err != nil {
		session, err = s.sessionStore.New(c.Request(), sessionName)
		if err != nil {
			return err
		}
	}
	session.Values[sessionKeyUserID] = userID
	session.Values[sessionKeyEmail] = email
	return session.Save(c.Request(), c.Response().Writer)
}
