package registry

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/google/uuid"
	"github.com/planwise/planwise/internal/catalog"
	"github.com/planwise/planwise/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mock repository ---

type mockAppRepo struct {
	listEnabledFn         func(ctx context.Context) ([]domain.AppRow, error)
	listWithCredentialsFn func(ctx context.Context, userID string) ([]domain.AppRow, error)
	listSlugsByCategoryFn func(ctx context.Context, category string) ([]string, error)
}

func (m *mockAppRepo) ListEnabled(ctx context.Context) ([]domain.AppRow, error) {
	if m.listEnabledFn != nil {
		return m.listEnabledFn(ctx)
	}
	return nil, nil
}

func (m *mockAppRepo) ListEnabledWithCredentials(ctx context.Context, userID string) ([]domain.AppRow, error) {
	if m.listWithCredentialsFn != nil {
		return m.listWithCredentialsFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockAppRepo) ListSlugsByCategory(ctx context.Context, category string) ([]string, error) {
	if m.listSlugsByCategoryFn != nil {
		return m.listSlugsByCategoryFn(ctx, category)
	}
	return nil, nil
}

func enabledRow(dirName, slug string, categories ...string) domain.AppRow {
	return domain.AppRow{DirName: dirName, Slug: slug, Categories: categories, Enabled: true}
}

// --- BuildRegistry ---

func TestBuildRegistry_MergesRowsWithCatalog(t *testing.T) {
	repo := &mockAppRepo{
		listEnabledFn: func(context.Context) ([]domain.AppRow, error) {
			return []domain.AppRow{
				enabledRow("zoomvideo", "zoom", "video"),
				enabledRow("stripepayment", "stripe", "payment"),
			}, nil
		},
	}
	svc := NewService(catalog.New(), repo)

	apps, err := svc.BuildRegistry(context.Background())
	require.NoError(t, err)

	// Two catalog-backed entries plus the three fallback calendars.
	require.Len(t, apps, 5)
	assert.Equal(t, "zoom", apps[0].Slug)
	assert.Equal(t, "stripe", apps[1].Slug)
}

func TestBuildRegistry_AlwaysAppendsFallbackCalendars(t *testing.T) {
	repo := &mockAppRepo{
		listEnabledFn: func(context.Context) ([]domain.AppRow, error) {
			return nil, nil // empty persistence
		},
	}
	svc := NewService(catalog.New(), repo)

	apps, err := svc.BuildRegistry(context.Background())
	require.NoError(t, err)

	require.Len(t, apps, 3)
	assert.Equal(t, "office365-calendar", apps[0].Slug)
	assert.Equal(t, "lark-calendar", apps[1].Slug)
	assert.Equal(t, "google-calendar", apps[2].Slug)
}

func TestBuildRegistry_SkipsRowsWithoutCatalogEntry(t *testing.T) {
	repo := &mockAppRepo{
		listEnabledFn: func(context.Context) ([]domain.AppRow, error) {
			return []domain.AppRow{
				enabledRow("nonexistent", "nonexistent"),
				enabledRow("zoomvideo", "zoom", "video"),
			}, nil
		},
	}
	svc := NewService(catalog.New(), repo)

	apps, err := svc.BuildRegistry(context.Background())
	require.NoError(t, err)

	require.Len(t, apps, 4) // zoom + 3 fallbacks, unknown row dropped silently
	assert.Equal(t, "zoom", apps[0].Slug)
}

func TestBuildRegistry_CategoryNeverEmpty(t *testing.T) {
	repo := &mockAppRepo{
		listEnabledFn: func(context.Context) ([]domain.AppRow, error) {
			return []domain.AppRow{
				// larkcalendar's catalog category is "other" already;
				// dailyvideo exercises the normal path.
				enabledRow("larkcalendar", "lark-calendar", "calendar"),
				enabledRow("dailyvideo", "dailyvideo", "video"),
			}, nil
		},
	}
	svc := NewService(catalog.New(), repo)

	apps, err := svc.BuildRegistry(context.Background())
	require.NoError(t, err)

	for _, app := range apps {
		assert.NotEmpty(t, app.Category, "app %s has empty category", app.Slug)
	}
}

func TestBuildRegistry_AppliesDefaults(t *testing.T) {
	repo := &mockAppRepo{
		listEnabledFn: func(context.Context) ([]domain.AppRow, error) {
			return []domain.AppRow{enabledRow("dailyvideo", "dailyvideo", "video")}, nil
		},
	}
	svc := NewService(catalog.New(), repo)

	apps, err := svc.BuildRegistry(context.Background())
	require.NoError(t, err)

	daily := apps[0]
	assert.Equal(t, 0, daily.Rating)
	assert.Equal(t, 0, daily.Reviews)
	assert.True(t, daily.Trending)
	assert.True(t, daily.Verified)
	assert.True(t, daily.Installed)
}

func TestBuildRegistry_PropagatesStoreErrors(t *testing.T) {
	storeErr := errors.New("connection refused")
	repo := &mockAppRepo{
		listEnabledFn: func(context.Context) ([]domain.AppRow, error) {
			return nil, storeErr
		},
	}
	svc := NewService(catalog.New(), repo)

	_, err := svc.BuildRegistry(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
}

func TestBuildRegistry_NeverExposesKeys(t *testing.T) {
	repo := &mockAppRepo{
		listEnabledFn: func(context.Context) ([]domain.AppRow, error) {
			return []domain.AppRow{
				enabledRow("zoomvideo", "zoom", "video"),
				enabledRow("stripepayment", "stripe", "payment"),
				enabledRow("slackmessaging", "slack", "messaging"),
			}, nil
		},
	}
	svc := NewService(catalog.New(), repo)

	apps, err := svc.BuildRegistry(context.Background())
	require.NoError(t, err)

	// domain.App has no Key field by construction; pin the payload shape so
	// a future refactor cannot reintroduce it.
	for _, app := range apps {
		assert.NotContains(t, structFields(t, app), "Key")
	}
}

func structFields(t *testing.T, v any) []string {
	t.Helper()
	typ := reflect.TypeOf(v)
	fields := make([]string, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		fields = append(fields, typ.Field(i).Name)
	}
	return fields
}

// --- BuildRegistryWithCredentials ---

func TestBuildRegistryWithCredentials_OrderAndOverrides(t *testing.T) {
	userID := uuid.NewString()
	credID := uuid.New()

	repo := &mockAppRepo{
		listWithCredentialsFn: func(_ context.Context, gotUserID string) ([]domain.AppRow, error) {
			assert.Equal(t, userID, gotUserID)
			// Repository returns rows ordered by descending credential count.
			return []domain.AppRow{
				{
					DirName:    "googlecalendar",
					Slug:       "google-calendar",
					Categories: []string{"calendar", "other"},
					Enabled:    true,
					Credentials: []domain.Credential{
						{ID: credID, Type: "google_calendar", AppSlug: "google-calendar"},
						{ID: uuid.New(), Type: "google_calendar", AppSlug: "google-calendar"},
						{ID: uuid.New(), Type: "google_calendar", AppSlug: "google-calendar"},
					},
				},
				{
					DirName:    "zoomvideo",
					Slug:       "zoom",
					Categories: []string{"video"},
					Enabled:    true,
					Credentials: []domain.Credential{
						{ID: uuid.New(), Type: "zoom_video", AppSlug: "zoom"},
					},
				},
				enabledRow("stripepayment", "stripe", "payment"),
			}, nil
		},
	}
	svc := NewService(catalog.New(), repo)

	apps, err := svc.BuildRegistryWithCredentials(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, apps, 3)

	// Descending credential count: 3, 1, 0.
	assert.Equal(t, "google-calendar", apps[0].Slug)
	assert.Len(t, apps[0].Credentials, 3)
	assert.Equal(t, "zoom", apps[1].Slug)
	assert.Len(t, apps[1].Credentials, 1)
	assert.Equal(t, "stripe", apps[2].Slug)
	assert.NotNil(t, apps[2].Credentials)
	assert.Empty(t, apps[2].Credentials)

	// Categories come from the row, not the catalog.
	assert.Equal(t, []string{"calendar", "other"}, apps[0].Categories)
}

func TestBuildRegistryWithCredentials_NoFallbackEntries(t *testing.T) {
	repo := &mockAppRepo{
		listWithCredentialsFn: func(context.Context, string) ([]domain.AppRow, error) {
			return nil, nil
		},
	}
	svc := NewService(catalog.New(), repo)

	apps, err := svc.BuildRegistryWithCredentials(context.Background(), uuid.NewString())
	require.NoError(t, err)
	assert.Empty(t, apps)
}

// --- ListByCategory ---

func TestListByCategory_FiltersBySlugSet(t *testing.T) {
	repo := &mockAppRepo{
		listEnabledFn: func(context.Context) ([]domain.AppRow, error) {
			return []domain.AppRow{
				enabledRow("googlecalendar", "google-calendar", "calendar"),
				enabledRow("zoomvideo", "zoom", "video"),
			}, nil
		},
		listSlugsByCategoryFn: func(_ context.Context, category string) ([]string, error) {
			assert.Equal(t, "calendar", category)
			return []string{"google-calendar"}, nil
		},
	}
	svc := NewService(catalog.New(), repo)

	apps, err := svc.ListByCategory(context.Background(), "calendar")
	require.NoError(t, err)

	// Only Google Calendar has a calendar-tagged row: the catalog-backed
	// entry and its fallback twin both carry that slug, Outlook and Lark
	// fallbacks do not survive.
	require.Len(t, apps, 2)
	for _, app := range apps {
		assert.Equal(t, "google-calendar", app.Slug)
	}
}

func TestListByCategory_FallbackNeedsMatchingRow(t *testing.T) {
	// The fallback calendars are appended to the registry unconditionally,
	// but the category filter gates them on the persisted slug set alone.
	// A lark-calendar row tagged "calendar" lets the Lark fallback through
	// even though no catalog-backed entry produced it.
	repo := &mockAppRepo{
		listEnabledFn: func(context.Context) ([]domain.AppRow, error) {
			return nil, nil
		},
		listSlugsByCategoryFn: func(context.Context, string) ([]string, error) {
			return []string{"lark-calendar"}, nil
		},
	}
	svc := NewService(catalog.New(), repo)

	apps, err := svc.ListByCategory(context.Background(), "calendar")
	require.NoError(t, err)

	require.Len(t, apps, 1)
	assert.Equal(t, "lark-calendar", apps[0].Slug)
}

func TestListByCategory_EmptySlugSet(t *testing.T) {
	repo := &mockAppRepo{
		listEnabledFn: func(context.Context) ([]domain.AppRow, error) {
			return []domain.AppRow{enabledRow("zoomvideo", "zoom", "video")}, nil
		},
		listSlugsByCategoryFn: func(context.Context, string) ([]string, error) {
			return nil, nil
		},
	}
	svc := NewService(catalog.New(), repo)

	apps, err := svc.ListByCategory(context.Background(), "web3")
	require.NoError(t, err)
	assert.Empty(t, apps)
}

func TestListByCategory_PropagatesSlugQueryErrors(t *testing.T) {
	repo := &mockAppRepo{
		listSlugsByCategoryFn: func(context.Context, string) ([]string, error) {
			return nil, errors.New("timeout")
		},
	}
	svc := NewService(catalog.New(), repo)

	_, err := svc.ListByCategory(context.Background(), "calendar")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "calendar")
}
