package domain

import "context"

// AppMetadata is the static descriptor for an app, keyed by its directory
// name in the app store. Key holds provider secrets and must never reach a
// client-facing payload.
type AppMetadata struct {
	Name        string
	Description string
	Type        string
	Title       string
	Variant     string
	Category    string
	Categories  []string
	Logo        string
	ImageSrc    string
	Publisher   string
	Slug        string
	URL         string
	Email       string
	DirName     string
	Key         map[string]string
	Rating      int
	Reviews     int
	Trending    bool
	Verified    bool
	Installed   bool
}

// App is the aggregated, client-safe registry entry: catalog metadata merged
// with persisted state, defaults applied, secrets stripped.
type App struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
	Title       string   `json:"title,omitempty"`
	Variant     string   `json:"variant,omitempty"`
	Category    string   `json:"category"`
	Categories  []string `json:"categories"`
	Logo        string   `json:"logo"`
	ImageSrc    string   `json:"imageSrc"`
	Publisher   string   `json:"publisher"`
	Slug        string   `json:"slug"`
	URL         string   `json:"url"`
	Email       string   `json:"email"`
	DirName     string   `json:"dirName"`
	Rating      int      `json:"rating"`
	Reviews     int      `json:"reviews"`
	Trending    bool     `json:"trending"`
	Verified    bool     `json:"verified"`
	Installed   bool     `json:"installed"`
}

// AppWithCredentials extends App with the requesting user's stored
// connections for that app.
type AppWithCredentials struct {
	App
	Credentials []Credential `json:"credentials"`
}

// AppRow is the persisted projection of an app: whether it is enabled and
// how it is categorized. Credentials is populated only by the
// credential-aware listing.
type AppRow struct {
	DirName     string
	Slug        string
	Categories  []string
	Enabled     bool
	Credentials []Credential
}

// AppRepository reads persisted app state.
type AppRepository interface {
	ListEnabled(ctx context.Context) ([]AppRow, error)
	ListEnabledWithCredentials(ctx context.Context, userID string) ([]AppRow, error)
	ListSlugsByCategory(ctx context.Context, category string) ([]string, error)
}
