package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/planwise/planwise/internal/domain"
)

// AppRepo implements domain.AppRepository backed by PostgreSQL.
type AppRepo struct {
	pool *pgxpool.Pool
}

func NewAppRepo(pool *pgxpool.Pool) *AppRepo {
	return &AppRepo{pool: pool}
}

// ListEnabled returns all enabled app rows. The keys column is deliberately
// not part of the projection.
func (r *AppRepo) ListEnabled(ctx context.Context) ([]domain.AppRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT dir_name, slug, categories, enabled
		FROM apps
		WHERE enabled = TRUE
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list enabled apps: %w", err)
	}
	defer rows.Close()

	var apps []domain.AppRow
	for rows.Next() {
		var app domain.AppRow
		if err := rows.Scan(&app.DirName, &app.Slug, &app.Categories, &app.Enabled); err != nil {
			return nil, fmt.Errorf("failed to scan app row: %w", err)
		}
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read app rows: %w", err)
	}

	return apps, nil
}

// ListEnabledWithCredentials returns enabled app rows ordered by descending
// credential count for userID, each carrying the user's safe credential
// projections. Credential payloads never leave the database.
func (r *AppRepo) ListEnabledWithCredentials(ctx context.Context, userID string) ([]domain.AppRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT a.dir_name, a.slug, a.categories, a.enabled,
		       COALESCE(
		           JSONB_AGG(JSONB_BUILD_OBJECT('id', c.id, 'type', c.type, 'appSlug', a.slug))
		               FILTER (WHERE c.id IS NOT NULL),
		           '[]'
		       ) AS credentials
		FROM apps a
		LEFT JOIN credentials c ON c.app_dir_name = a.dir_name AND c.user_id = $1
		WHERE a.enabled = TRUE
		GROUP BY a.dir_name, a.slug, a.categories, a.enabled
		ORDER BY COUNT(c.id) DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list apps with credentials: %w", err)
	}
	defer rows.Close()

	var apps []domain.AppRow
	for rows.Next() {
		var app domain.AppRow
		if err := rows.Scan(&app.DirName, &app.Slug, &app.Categories, &app.Enabled, &app.Credentials); err != nil {
			return nil, fmt.Errorf("failed to scan app row: %w", err)
		}
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read app rows: %w", err)
	}

	return apps, nil
}

// ListSlugsByCategory returns the slugs of rows tagged with the category.
// No enabled gate here: the registry build already excludes disabled apps,
// and the built-in fallback entries are gated by this slug set alone.
func (r *AppRepo) ListSlugsByCategory(ctx context.Context, category string) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT slug FROM apps WHERE $1 = ANY(categories)
	`, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list slugs by category: %w", err)
	}
	defer rows.Close()

	var slugs []string
	for rows.Next() {
		var slug string
		if err := rows.Scan(&slug); err != nil {
			return nil, fmt.Errorf("failed to scan slug: %w", err)
		}
		slugs = append(slugs, slug)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read slugs: %w", err)
	}

	return slugs, nil
}
