// Package catalog provides the static app-store metadata: the build-time
// catalog keyed by directory name, the category taxonomy, and the built-in
// fallback calendar entries.
package catalog
