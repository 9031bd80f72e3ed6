package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/Apurer/groomer-directory/internal/domains/listings/domain"
	"github.com/Apurer/groomer-directory/internal/domains/listings/ports"
)

const tracerName = "github.com/Apurer/groomer-directory/internal/domains/listings/adapters/observability/service"

// Service decorates the listings port with tracing, logging, and metrics.
type Service struct {
	inner   ports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

// WithLogger injects a slog logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithTracer injects a tracer implementation.
func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

// WithMeter injects the meter used to create service metrics instruments.
func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wires a decorator around the core service.
func New(inner ports.Service, opts ...Option) ports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  defaultLogger(),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if s.logger == nil {
		s.logger = defaultLogger()
	}
	return s
}

func (s *Service) Query(ctx context.Context, filter domain.Filter) domain.Page {
	ctx, span := s.startSpan(ctx, "Service.Query", filterAttributes(filter)...)
	defer span.End()

	page := s.inner.Query(ctx, filter)
	span.SetAttributes(
		attribute.Int64("listings.result.total", page.Total),
		attribute.Int("listings.result.count", len(page.Items)),
	)
	s.metrics.recordQuery(ctx, page.Total)
	s.logDebug(ctx, "queried listings",
		slog.Int("page", page.Number),
		slog.Int64("total", page.Total),
		slog.Int("count", len(page.Items)),
	)
	return page
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (*domain.Listing, bool) {
	ctx, span := s.startSpan(ctx, "Service.GetBySlug", attribute.String("listing.slug", slug))
	defer span.End()

	listing, ok := s.inner.GetBySlug(ctx, slug)
	span.SetAttributes(attribute.Bool("listing.found", ok))
	if !ok {
		s.metrics.recordSlugMiss(ctx)
		s.logInfo(ctx, "listing not found", slog.String("slug", slug))
		return nil, false
	}
	return listing, true
}

func (s *Service) ListAllSlugs(ctx context.Context) []string {
	ctx, span := s.startSpan(ctx, "Service.ListAllSlugs")
	defer span.End()

	slugs := s.inner.ListAllSlugs(ctx)
	span.SetAttributes(attribute.Int("listings.slugs.count", len(slugs)))
	return slugs
}

func (s *Service) ListDistinctStates(ctx context.Context) []string {
	ctx, span := s.startSpan(ctx, "Service.ListDistinctStates")
	defer span.End()

	states := s.inner.ListDistinctStates(ctx)
	span.SetAttributes(attribute.Int("listings.states.count", len(states)))
	return states
}

func (s *Service) ListDistinctCities(ctx context.Context, state string) []string {
	ctx, span := s.startSpan(ctx, "Service.ListDistinctCities", attribute.String("listing.state", state))
	defer span.End()

	cities := s.inner.ListDistinctCities(ctx, state)
	span.SetAttributes(attribute.Int("listings.cities.count", len(cities)))
	return cities
}

func (s *Service) Count(ctx context.Context) int64 {
	ctx, span := s.startSpan(ctx, "Service.Count")
	defer span.End()

	total := s.inner.Count(ctx)
	span.SetAttributes(attribute.Int64("listings.count", total))
	return total
}

func (s *Service) CountDistinctStates(ctx context.Context) int64 {
	ctx, span := s.startSpan(ctx, "Service.CountDistinctStates")
	defer span.End()

	total := s.inner.CountDistinctStates(ctx)
	span.SetAttributes(attribute.Int64("listings.states.count", total))
	return total
}

func (s *Service) GetMarketInsights(ctx context.Context, state, city string) domain.MarketInsights {
	ctx, span := s.startSpan(ctx, "Service.GetMarketInsights",
		attribute.String("listing.state", state),
		attribute.String("listing.city", city),
	)
	defer span.End()

	insights := s.inner.GetMarketInsights(ctx, state, city)
	span.SetAttributes(
		attribute.Int("insights.total", insights.TotalInArea),
		attribute.Int("insights.gaps", len(insights.Gaps)),
		attribute.Int("insights.weak_spots", len(insights.WeakSpots)),
	)
	s.metrics.recordInsights(ctx, insights.AreaLabel)
	s.logInfo(ctx, "computed market insights",
		slog.String("area", insights.AreaLabel),
		slog.Int("total", insights.TotalInArea),
		slog.Any("gaps", insights.Gaps),
	)
	return insights
}

func filterAttributes(f domain.Filter) []attribute.KeyValue {
	attrs := []attribute.KeyValue{attribute.Int("listings.page", f.Page)}
	if f.Search != "" {
		attrs = append(attrs, attribute.String("listings.search", f.Search))
	}
	if f.State != "" {
		attrs = append(attrs, attribute.String("listing.state", f.State))
	}
	if f.City != "" {
		attrs = append(attrs, attribute.String("listing.city", f.City))
	}
	if len(f.Services) > 0 {
		attrs = append(attrs, attribute.StringSlice("listings.services", f.Services))
	}
	return attrs
}

func (s *Service) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	tracer := s.tracer
	if tracer == nil {
		tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logDebug(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelDebug, msg, attrs...)
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type serviceMetrics struct {
	queries      metric.Int64Counter
	queryMatches metric.Int64Histogram
	slugMisses   metric.Int64Counter
	insights     metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	queries, _ := m.Int64Counter("listings.service.queries", metric.WithDescription("Number of listing queries served"))
	queryMatches, _ := m.Int64Histogram("listings.service.query_matches", metric.WithDescription("Matches per listing query before pagination"))
	slugMisses, _ := m.Int64Counter("listings.service.slug_misses", metric.WithDescription("Detail lookups that found no listing"))
	insights, _ := m.Int64Counter("listings.service.insights", metric.WithDescription("Market insight computations"))
	return serviceMetrics{
		queries:      queries,
		queryMatches: queryMatches,
		slugMisses:   slugMisses,
		insights:     insights,
	}
}

func (m serviceMetrics) recordQuery(ctx context.Context, total int64) {
	addCounter(ctx, m.queries, 1)
	if m.queryMatches != nil {
		m.queryMatches.Record(ctx, total)
	}
}

func (m serviceMetrics) recordSlugMiss(ctx context.Context) {
	addCounter(ctx, m.slugMisses, 1)
}

func (m serviceMetrics) recordInsights(ctx context.Context, area string) {
	addCounter(ctx, m.insights, 1, attribute.String("insights.area", area))
}

func addCounter(ctx context.Context, counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if counter == nil {
		return
	}
	counter.Add(ctx, value, metric.WithAttributes(attrs...))
}

var _ ports.Service = (*Service)(nil)
