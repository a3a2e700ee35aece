package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockHealthChecker struct {
	err error
}

func (m *mockHealthChecker) Ping(context.Context) error { return m.err }

func TestLiveness(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	rec := httptest.NewRecorder()
	c := srv.echo.NewContext(req, rec)

	require.NoError(t, srv.handleLiveness(c))
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestReadiness_DatabaseHealthy(t *testing.T) {
	srv := newTestServer(t, func(s *Server) {
		s.dbHealth = &mockHealthChecker{}
	})

	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec := httptest.NewRecorder()
	c := srv.echo.NewContext(req, rec)

	require.NoError(t, srv.handleReadiness(c))
	assert.Equal(t, 200, rec.Code)
}

func TestReadiness_DatabaseDown(t *testing.T) {
	srv := newTestServer(t, func(s *Server) {
		s.dbHealth = &mockHealthChecker{err: errors.New("connection refused")}
	})

	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec := httptest.NewRecorder()
	c := srv.echo.NewContext(req, rec)

	require.NoError(t, srv.handleReadiness(c))
	assert.Equal(t, 503, rec.Code)
	assert.Contains(t, rec.Body.String(), "postgres")
}
