package memory

import (
	"context"
	"sort"

	"github.com/Apurer/groomer-directory/internal/catalog"
	"github.com/Apurer/groomer-directory/internal/domains/listings/domain"
	"github.com/Apurer/groomer-directory/internal/domains/listings/ports"
	"github.com/Apurer/groomer-directory/internal/shared/projection"
)

var _ ports.Repository = (*Repository)(nil)

// Repository serves listings from a fixed in-memory data set. The data is
// sorted once at construction and never mutated afterwards, so concurrent
// readers need no locking.
type Repository struct {
	listings []*domain.Listing
	bySlug   map[string]*domain.Listing
}

// NewRepository copies listings into an immutable, pre-sorted store.
func NewRepository(listings []*domain.Listing) *Repository {
	sorted := make([]*domain.Listing, 0, len(listings))
	bySlug := make(map[string]*domain.Listing, len(listings))
	for _, l := range listings {
		if l == nil {
			continue
		}
		clone := l.Clone()
		sorted = append(sorted, clone)
		if _, ok := bySlug[clone.Slug]; !ok {
			bySlug[clone.Slug] = clone
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool { return domain.Less(sorted[i], sorted[j]) })
	return &Repository{listings: sorted, bySlug: bySlug}
}

// Query filters, orders and slices the data set for the requested page.
func (r *Repository) Query(ctx context.Context, filter domain.Filter) (domain.Page, error) {
	filter = filter.Normalize()
	matches, err := r.QueryAll(ctx, filter)
	if err != nil {
		return domain.EmptyPage(filter), err
	}
	window := projection.Window(matches, filter.Offset(), catalog.PageSize)
	return domain.NewPage(window, int64(len(matches)), filter), nil
}

// QueryAll returns every listing matching the filter, in display order.
func (r *Repository) QueryAll(ctx context.Context, filter domain.Filter) ([]*domain.Listing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	filter = filter.Normalize()
	matches := []*domain.Listing{}
	if filter.HasUnknownService() || filter.HasUnknownBreedSize() {
		return matches, nil
	}
	for _, l := range r.listings {
		if filter.Matches(l) {
			matches = append(matches, l.Clone())
		}
	}
	return matches, nil
}

// GetBySlug fetches a listing by its URL identifier.
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*domain.Listing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	l, ok := r.bySlug[slug]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return l.Clone(), nil
}

// ListSlugs returns every slug in display order.
func (r *Repository) ListSlugs(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	slugs := make([]string, 0, len(r.listings))
	for _, l := range r.listings {
		slugs = append(slugs, l.Slug)
	}
	return slugs, nil
}

// DistinctStates returns the sorted set of states with at least one listing.
func (r *Repository) DistinctStates(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return distinct(r.listings, func(l *domain.Listing) (string, bool) { return l.State, true }), nil
}

// DistinctCities returns the sorted cities within state.
func (r *Repository) DistinctCities(ctx context.Context, state string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return distinct(r.listings, func(l *domain.Listing) (string, bool) { return l.City, l.State == state }), nil
}

// Count is the total number of listings.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return int64(len(r.listings)), nil
}

// CountDistinctStates is the number of states with at least one listing.
func (r *Repository) CountDistinctStates(ctx context.Context) (int64, error) {
	states, err := r.DistinctStates(ctx)
	if err != nil {
		return 0, err
	}
	return int64(len(states)), nil
}

func distinct(listings []*domain.Listing, key func(*domain.Listing) (string, bool)) []string {
	seen := map[string]struct{}{}
	values := []string{}
	for _, l := range listings {
		v, ok := key(l)
		if !ok || v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
