package postgres

import (
	"github.com/Apurer/groomer-directory/internal/catalog"
	"github.com/Apurer/groomer-directory/internal/domains/listings/domain"
)

// displayOrder matches domain.Less: rated listings by rating, then review
// count with NULL as zero, then id.
const displayOrder = "rating DESC NULLS LAST, COALESCE(reviews_count, 0) DESC, id ASC"

type condition struct {
	query string
	args  []any
}

// buildConditions translates a filter into WHERE fragments. Service column
// names come only from the catalog; ok is false when the filter names an
// unknown service or breed size and therefore cannot match anything.
func buildConditions(f domain.Filter) (conds []condition, ok bool) {
	f = f.Normalize()
	if f.HasUnknownService() || f.HasUnknownBreedSize() {
		return nil, false
	}
	add := func(query string, args ...any) {
		conds = append(conds, condition{query: query, args: args})
	}
	if f.Search != "" {
		add("fts @@ websearch_to_tsquery('simple', ?)", f.Search)
	}
	if f.State != "" {
		add("state = ?", f.State)
	}
	if f.City != "" {
		add("lower(city) = lower(?)", f.City)
	}
	if f.AcceptsCats != nil {
		add(catalog.AcceptsCats+" = ?", *f.AcceptsCats)
	}
	if f.FearFree != nil {
		add(catalog.FeatureFearFree+" = ?", *f.FearFree)
	}
	if f.BreedSize != "" {
		add("breed_sizes @> ARRAY[?]::text[]", f.BreedSize)
	}
	if f.MinRating != nil {
		add("rating >= ?", *f.MinRating)
	}
	for _, svc := range f.Services {
		add(svc + " = true")
	}
	return conds, true
}
