package server

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/planwise/planwise/internal/metrics"
)

// metricsMiddleware records request counts and latency per route. The route
// pattern (not the raw URI) keeps label cardinality bounded.
func (s *Server) metricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := s.clock.Now()
			err := next(c)
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}

			status := c.Response().Status
			if err != nil {
				// echo's error handler has not run yet, so the response
				// status is still the pre-write default for plain errors.
				status = http.StatusInternalServerError
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}

			metrics.HTTPRequestsTotal.WithLabelValues(c.Request().Method, route, strconv.Itoa(status)).Inc()
			metrics.HTTPRequestDuration.WithLabelValues(c.Request().Method, route).Observe(s.clock.Since(start).Seconds())
			return err
		}
	}
}
