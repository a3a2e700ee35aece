package server

import (
	"log/slog"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/planwise/planwise/internal/catalog"
	"github.com/planwise/planwise/internal/logging"
	"github.com/planwise/planwise/internal/metrics"
)

// handleApps renders the full app store. Logged-in visitors get the
// credential-aware registry (apps with their connections first); anonymous
// visitors get the plain registry with the fallback calendars appended.
func (s *Server) handleApps(c echo.Context) error {
	ctx := c.Request().Context()

	if userID := s.sessionUserID(c); userID != "" {
		apps, err := s.registry.BuildRegistryWithCredentials(ctx, userID)
		if err != nil {
			logging.WithUser(userID).Error("Failed to build credentialed registry", "error", err)
			metrics.RegistryBuildsTotal.WithLabelValues("credentials", "error").Inc()
			return c.String(500, "Failed to load apps")
		}
		metrics.RegistryBuildsTotal.WithLabelValues("credentials", "ok").Inc()

		return s.renderTemplate(c, "apps.html", map[string]any{
			"Apps":       apps,
			"Categories": catalog.Categories(),
			"LoggedIn":   true,
		})
	}

	apps, err := s.registry.BuildRegistry(ctx)
	if err != nil {
		slog.Error("Failed to build registry", "error", err)
		metrics.RegistryBuildsTotal.WithLabelValues("plain", "error").Inc()
		return c.String(500, "Failed to load apps")
	}
	metrics.RegistryBuildsTotal.WithLabelValues("plain", "ok").Inc()

	return s.renderTemplate(c, "apps.html", map[string]any{
		"Apps":       apps,
		"Categories": catalog.Categories(),
		"LoggedIn":   false,
	})
}

// handleAppsByCategory renders one category listing page. The category set
// is fixed at build time; anything outside it fails closed with a 404.
func (s *Server) handleAppsByCategory(c echo.Context) error {
	category := c.Param("category")
	if !catalog.ValidCategory(category) {
		return echo.NewHTTPError(404, "unknown category")
	}

	apps, err := s.registry.ListByCategory(c.Request().Context(), category)
	if err != nil {
		slog.Error("Failed to list apps by category", "category", category, "error", err)
		metrics.RegistryBuildsTotal.WithLabelValues("category", "error").Inc()
		return c.String(500, "Failed to load apps")
	}
	metrics.RegistryBuildsTotal.WithLabelValues("category", "ok").Inc()

	return s.renderTemplate(c, "category.html", map[string]any{
		"Category":      category,
		"CategoryTitle": strings.ToUpper(category[:1]) + category[1:],
		"Apps":          apps,
	})
}

// handleAppsJSON serves the registry to the client-side grid.
func (s *Server) handleAppsJSON(c echo.Context) error {
	apps, err := s.registry.BuildRegistry(c.Request().Context())
	if err != nil {
		slog.Error("Failed to build registry", "error", err)
		return echo.NewHTTPError(500, "failed to load apps")
	}
	return c.JSON(200, apps)
}

func (s *Server) sessionUserID(c echo.Context) string {
	session, err := s.sessionStore.Get(c.Request(), sessionName)
	if err != nil {
		return ""
	}
	userID, _ := session.Values[sessionKeyUserID].(string)
	return userID
}
