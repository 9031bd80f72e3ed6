package ports

import (
	"context"

	"github.com/Apurer/groomer-directory/internal/domains/listings/domain"
)

// Service defines the directory use cases exposed to adapters (inbound/driving port).
// Read failures degrade to empty results instead of surfacing errors.
type Service interface {
	Query(ctx context.Context, filter domain.Filter) domain.Page
	GetBySlug(ctx context.Context, slug string) (*domain.Listing, bool)
	ListAllSlugs(ctx context.Context) []string
	ListDistinctStates(ctx context.Context) []string
	ListDistinctCities(ctx context.Context, state string) []string
	Count(ctx context.Context) int64
	CountDistinctStates(ctx context.Context) int64
	GetMarketInsights(ctx context.Context, state, city string) domain.MarketInsights
}
