package registry

import (
	"context"
	"fmt"

	"github.com/planwise/planwise/internal/catalog"
	"github.com/planwise/planwise/internal/domain"
)

// Service aggregates the static catalog with persisted app state into the
// client-facing registry. Stateless; every call reads fresh.
type Service struct {
	catalog *catalog.Catalog
	apps    domain.AppRepository
}

func NewService(cat *catalog.Catalog, apps domain.AppRepository) *Service {
	return &Service{catalog: cat, apps: apps}
}

// BuildRegistry joins enabled app rows with catalog metadata, normalizes
// each entry, and appends the built-in fallback calendars last. Rows with no
// catalog entry are skipped silently.
func (s *Service) BuildRegistry(ctx context.Context) ([]domain.App, error) {
	rows, err := s.apps.ListEnabled(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list enabled apps: %w", err)
	}

	apps := make([]domain.App, 0, len(rows)+3)
	for _, row := range rows {
		meta, ok := s.catalog.Get(row.DirName)
		if !ok {
			continue
		}
		apps = append(apps, normalize(meta))
	}

	apps = append(apps, catalog.FallbackCalendars()...)
	return apps, nil
}

// BuildRegistryWithCredentials is the credential-aware variant: rows arrive
// ordered by descending credential count for userID, categories come from
// the row rather than the catalog, and each entry carries the user's safe
// credential projections. Apps with no credentials still appear with an
// empty set.
func (s *Service) BuildRegistryWithCredentials(ctx context.Context, userID string) ([]domain.AppWithCredentials, error) {
	rows, err := s.apps.ListEnabledWithCredentials(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list apps with credentials: %w", err)
	}

	apps := make([]domain.AppWithCredentials, 0, len(rows))
	for _, row := range rows {
		meta, ok := s.catalog.Get(row.DirName)
		if !ok {
			continue
		}

		app := normalize(meta)
		app.Categories = row.Categories

		creds := row.Credentials
		if creds == nil {
			creds = []domain.Credential{}
		}
		apps = append(apps, domain.AppWithCredentials{App: app, Credentials: creds})
	}

	return apps, nil
}

// ListByCategory filters the full registry down to apps whose slug belongs
// to a persisted row tagged with the category. Fallback entries survive only
// when a matching row exists, since the slug set is the sole gate here.
func (s *Service) ListByCategory(ctx context.Context, category string) ([]domain.App, error) {
	slugs, err := s.apps.ListSlugsByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list slugs for category %q: %w", category, err)
	}

	inCategory := make(map[string]struct{}, len(slugs))
	for _, slug := range slugs {
		inCategory[slug] = struct{}{}
	}

	all, err := s.BuildRegistry(ctx)
	if err != nil {
		return nil, err
	}

	apps := make([]domain.App, 0, len(slugs))
	for _, app := range all {
		if _, ok := inCategory[app.Slug]; ok {
			apps = append(apps, app)
		}
	}

	return apps, nil
}
