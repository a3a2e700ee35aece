package server

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/planwise/planwise/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestCount(method, route, status string) float64 {
	return testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues(method, route, status))
}

func TestMetricsMiddleware_PlainErrorCountsAs500(t *testing.T) {
	srv := newTestServer(t)

	handler := srv.metricsMiddleware()(func(echo.Context) error {
		return errors.New("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/broken", nil)
	rec := httptest.NewRecorder()
	c := srv.echo.NewContext(req, rec)
	c.SetPath("/broken")

	before := requestCount(http.MethodGet, "/broken", "500")
	require.Error(t, handler(c))
	assert.Equal(t, before+1, requestCount(http.MethodGet, "/broken", "500"))
}

func TestMetricsMiddleware_HTTPErrorKeepsItsCode(t *testing.T) {
	srv := newTestServer(t)

	handler := srv.metricsMiddleware()(func(echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "nope")
	})

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	rec := httptest.NewRecorder()
	c := srv.echo.NewContext(req, rec)
	c.SetPath("/missing")

	before := requestCount(http.MethodGet, "/missing", "404")
	require.Error(t, handler(c))
	assert.Equal(t, before+1, requestCount(http.MethodGet, "/missing", "404"))
}
