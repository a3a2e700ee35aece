// Package server implements the HTTP server using Echo framework.
//
// Routes: auth (login flow), app store (registry and category listings),
// health, metrics. Handlers split by domain: handlers_auth.go,
// handlers_apps.go, handlers_health.go.
package server
