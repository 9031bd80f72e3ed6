package ports

import (
	"context"
	"errors"

	"github.com/Apurer/groomer-directory/internal/domains/listings/domain"
)

var ErrNotFound = errors.New("listing not found")

// Repository is the outbound listing store. Implementations share filter and
// ordering semantics so the backend can be swapped without changing results.
type Repository interface {
	// Query returns the requested page plus the number of matches before pagination.
	Query(ctx context.Context, filter domain.Filter) (domain.Page, error)
	// QueryAll returns every match, in page order, without pagination.
	QueryAll(ctx context.Context, filter domain.Filter) ([]*domain.Listing, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Listing, error)
	ListSlugs(ctx context.Context) ([]string, error)
	DistinctStates(ctx context.Context) ([]string, error)
	DistinctCities(ctx context.Context, state string) ([]string, error)
	Count(ctx context.Context) (int64, error)
	CountDistinctStates(ctx context.Context) (int64, error)
}
