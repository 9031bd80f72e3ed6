package ports

import (
	"context"
	"errors"

	"github.com/Apurer/groomer-directory/internal/domains/leads/domain"
)

// ErrSubmissionConflict means a submission key was reused for a different contact request.
var ErrSubmissionConflict = errors.New("submission key already used for a different lead")

// Sink is the append-only destination for captured leads.
type Sink interface {
	// Append records lead. A repeated submission key returns the lead recorded
	// first, or ErrSubmissionConflict when the contact request differs.
	Append(ctx context.Context, lead *domain.Lead) (*domain.Lead, error)
}
