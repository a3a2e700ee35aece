// Package registry builds the app-store registry: catalog metadata merged
// with persisted enable/credential state, normalized, with the built-in
// fallback calendars appended.
package registry
