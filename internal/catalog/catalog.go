package catalog

import (
	"strings"

	"github.com/planwise/planwise/internal/domain"
)

// assetPrefix is where app-store assets are served from. Catalog logo paths
// that are still relative get namespaced under it.
const assetPrefix = "/api/app-store/"

// Catalog is the static app metadata table, built once at startup and
// read-only afterwards. Safe for concurrent reads without synchronization.
type Catalog struct {
	entries map[string]domain.AppMetadata
}

// New builds the catalog from the built-in seed set.
func New() *Catalog {
	entries := make(map[string]domain.AppMetadata, len(seed))
	for _, meta := range seed {
		entries[meta.DirName] = meta
	}
	return &Catalog{entries: entries}
}

// Get looks up an app's metadata by directory name. The returned metadata
// still carries the Key field; callers that build client payloads must go
// through the registry, which strips it.
func (c *Catalog) Get(dirName string) (domain.AppMetadata, bool) {
	meta, ok := c.entries[dirName]
	if !ok {
		return domain.AppMetadata{}, false
	}
	meta.Logo = NamespaceLogo(meta.Logo, dirName)
	return meta, true
}

// Len reports the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// NamespaceLogo rewrites a relative logo path to its app-store asset URL.
// Paths already under the asset prefix are left alone.
func NamespaceLogo(logo, dirName string) string {
	if logo == "" || strings.Contains(logo, assetPrefix) {
		return logo
	}
	return assetPrefix + dirName + "/" + strings.TrimPrefix(logo, "/")
}
