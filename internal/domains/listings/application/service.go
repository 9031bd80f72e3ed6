package application

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/Apurer/groomer-directory/internal/domains/listings/domain"
	"github.com/Apurer/groomer-directory/internal/domains/listings/ports"
)

var _ ports.Service = (*Service)(nil)

// Service orchestrates the directory read use cases. Backend failures are
// logged and degrade to empty results so pages always render.
type Service struct {
	repo   ports.Repository
	logger *slog.Logger
}

type Option func(*Service)

// WithLogger injects the logger used to report degraded reads.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService wires the listings service with its repository.
func NewService(repo ports.Repository, opts ...Option) *Service {
	s := &Service{repo: repo}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s
}

// Query returns the requested page, or an empty page when the backend fails.
func (s *Service) Query(ctx context.Context, filter domain.Filter) domain.Page {
	filter = filter.Normalize()
	page, err := s.repo.Query(ctx, filter)
	if err != nil {
		s.degraded(ctx, "query listings", err, slog.Int("page", filter.Page))
		return domain.EmptyPage(filter)
	}
	return page
}

// GetBySlug reports false both when the slug is unknown and when the lookup fails.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*domain.Listing, bool) {
	listing, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		if !errors.Is(err, ports.ErrNotFound) {
			s.degraded(ctx, "get listing by slug", err, slog.String("slug", slug))
		}
		return nil, false
	}
	return listing, true
}

// ListAllSlugs feeds sitemap generation.
func (s *Service) ListAllSlugs(ctx context.Context) []string {
	slugs, err := s.repo.ListSlugs(ctx)
	if err != nil {
		s.degraded(ctx, "list slugs", err)
		return []string{}
	}
	return slugs
}

func (s *Service) ListDistinctStates(ctx context.Context) []string {
	states, err := s.repo.DistinctStates(ctx)
	if err != nil {
		s.degraded(ctx, "list states", err)
		return []string{}
	}
	return states
}

func (s *Service) ListDistinctCities(ctx context.Context, state string) []string {
	cities, err := s.repo.DistinctCities(ctx, state)
	if err != nil {
		s.degraded(ctx, "list cities", err, slog.String("state", state))
		return []string{}
	}
	return cities
}

func (s *Service) Count(ctx context.Context) int64 {
	total, err := s.repo.Count(ctx)
	if err != nil {
		s.degraded(ctx, "count listings", err)
		return 0
	}
	return total
}

func (s *Service) CountDistinctStates(ctx context.Context) int64 {
	total, err := s.repo.CountDistinctStates(ctx)
	if err != nil {
		s.degraded(ctx, "count states", err)
		return 0
	}
	return total
}

// GetMarketInsights aggregates every listing in the area, ignoring pagination.
// A failed read yields insights over an empty area.
func (s *Service) GetMarketInsights(ctx context.Context, state, city string) domain.MarketInsights {
	label := domain.AreaLabel(state, city)
	listings, err := s.repo.QueryAll(ctx, domain.Area(state, city))
	if err != nil {
		s.degraded(ctx, "load area listings", err, slog.String("area", label))
		listings = nil
	}
	return domain.ComputeInsights(listings, label)
}

func (s *Service) degraded(ctx context.Context, op string, err error, attrs ...slog.Attr) {
	attrs = append(attrs, slog.String("op", op), slog.String("error", err.Error()))
	s.logger.LogAttrs(ctx, slog.LevelError, "listing backend read failed", attrs...)
}
