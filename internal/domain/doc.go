// Package domain holds the core entities and repository interfaces shared
// across the application: app metadata, aggregated registry entries,
// credentials, and users.
package domain
