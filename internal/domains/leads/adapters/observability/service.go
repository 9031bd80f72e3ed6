package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/Apurer/groomer-directory/internal/domains/leads/ports"
)

const tracerName = "github.com/Apurer/groomer-directory/internal/domains/leads/adapters/observability/service"

var _ ports.Service = (*Service)(nil)

// Service decorates lead capture with a span and an outcome counter.
type Service struct {
	inner     ports.Service
	tracer    trace.Tracer
	logger    *slog.Logger
	submitted metric.Int64Counter
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) { s.tracer = tr }
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		if m == nil {
			return
		}
		s.submitted, _ = m.Int64Counter("leads.service.submitted", metric.WithDescription("Lead submissions by outcome"))
	}
}

func New(inner ports.Service, opts ...Option) ports.Service {
	s := &Service{inner: inner}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s
}

func (s *Service) Submit(ctx context.Context, input ports.SubmitLeadInput) bool {
	ctx, span := s.tracer.Start(ctx, "Service.Submit", trace.WithAttributes(
		attribute.Int64("listing.id", input.ListingID),
		attribute.Bool("lead.keyed", input.SubmissionKey != ""),
	))
	defer span.End()

	ok := s.inner.Submit(ctx, input)
	outcome := "recorded"
	if !ok {
		outcome = "failed"
		span.SetStatus(codes.Error, "lead not recorded")
	}
	span.SetAttributes(attribute.String("lead.outcome", outcome))
	if s.submitted != nil {
		s.submitted.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "lead submission handled",
		slog.Int64("listing.id", input.ListingID),
		slog.String("outcome", outcome),
	)
	return ok
}
