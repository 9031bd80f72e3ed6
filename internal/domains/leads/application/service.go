package application

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/Apurer/groomer-directory/internal/domains/leads/domain"
	"github.com/Apurer/groomer-directory/internal/domains/leads/ports"
)

var _ ports.Service = (*Service)(nil)

// Service validates contact requests and hands them to the configured sink.
type Service struct {
	sink   ports.Sink
	logger *slog.Logger
	now    func() time.Time
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithClock overrides the timestamp source, primarily for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService wires the leads service with its sink.
func NewService(sink ports.Sink, opts ...Option) *Service {
	s := &Service{sink: sink, now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// Submit records a lead and reports success.
func (s *Service) Submit(ctx context.Context, input ports.SubmitLeadInput) bool {
	lead, err := domain.NewLead(input.ListingID, input.Name, input.Email, input.Phone, domain.PetType(input.PetType), input.Message)
	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "rejected lead",
			slog.Int64("listing.id", input.ListingID),
			slog.String("error", err.Error()),
		)
		return false
	}
	lead.SubmissionKey = input.SubmissionKey
	lead.CreatedAt = s.now().UTC()

	if s.sink == nil {
		s.logger.LogAttrs(ctx, slog.LevelError, "lead sink not configured", slog.Int64("listing.id", lead.ListingID))
		return false
	}
	saved, err := s.sink.Append(ctx, lead)
	if err != nil {
		level := slog.LevelError
		if errors.Is(err, context.Canceled) {
			level = slog.LevelWarn
		}
		s.logger.LogAttrs(ctx, level, "failed to record lead",
			slog.Int64("listing.id", lead.ListingID),
			slog.String("error", err.Error()),
		)
		return false
	}
	if saved != nil {
		s.logger.LogAttrs(ctx, slog.LevelInfo, "lead recorded",
			slog.Int64("lead.id", saved.ID),
			slog.Int64("listing.id", saved.ListingID),
		)
	}
	return true
}
