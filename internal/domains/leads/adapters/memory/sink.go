package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/Apurer/groomer-directory/internal/domains/leads/domain"
	"github.com/Apurer/groomer-directory/internal/domains/leads/ports"
)

var _ ports.Sink = (*Sink)(nil)

// Sink keeps leads in process memory for demos and tests.
type Sink struct {
	mu     sync.Mutex
	leads  []domain.Lead
	nextID int64
	byKey  map[string]int64
}

func NewSink() *Sink {
	return &Sink{nextID: 1, byKey: map[string]int64{}}
}

// Append stores a copy of lead and assigns its id.
func (s *Sink) Append(ctx context.Context, lead *domain.Lead) (*domain.Lead, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, errors.New("cannot append nil lead")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if lead.SubmissionKey != "" {
		if id, ok := s.byKey[lead.SubmissionKey]; ok {
			existing := s.leads[id-1]
			if !lead.SameSubmission(&existing) {
				return &existing, ports.ErrSubmissionConflict
			}
			return &existing, nil
		}
	}
	stored := *lead
	stored.ID = s.nextID
	s.nextID++
	s.leads = append(s.leads, stored)
	if stored.SubmissionKey != "" {
		s.byKey[stored.SubmissionKey] = stored.ID
	}
	return &stored, nil
}

// Leads returns a snapshot of everything appended so far.
func (s *Sink) Leads() []domain.Lead {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Lead(nil), s.leads...)
}
