package registry

import "github.com/planwise/planwise/internal/domain"

// normalize converts catalog metadata into a client-safe registry entry.
// The Key field is dropped entirely. Field defaults:
//
//	Rating    -> 0 when unset
//	Reviews   -> 0 when unset
//	Trending  -> true when unset
//	Verified  -> true when unset
//	Category  -> "other" when empty
//	Installed -> always true (presence of an enabled row means installed)
func normalize(meta domain.AppMetadata) domain.App {
	return domain.App{
		Name:        meta.Name,
		Description: meta.Description,
		Type:        meta.Type,
		Title:       meta.Title,
		Variant:     meta.Variant,
		Category:    defaultString(meta.Category, "other"),
		Categories:  meta.Categories,
		Logo:        meta.Logo,
		ImageSrc:    meta.ImageSrc,
		Publisher:   meta.Publisher,
		Slug:        meta.Slug,
		URL:         meta.URL,
		Email:       meta.Email,
		DirName:     meta.DirName,
		Rating:      meta.Rating,
		Reviews:     meta.Reviews,
		Trending:    defaultBool(meta.Trending, true),
		Verified:    defaultBool(meta.Verified, true),
		Installed:   true,
	}
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// defaultBool mirrors the observed `value || true` semantics: a false value
// is treated as unset and replaced by the fallback.
func defaultBool(v, fallback bool) bool {
	if !v {
		return fallback
	}
	return v
}
