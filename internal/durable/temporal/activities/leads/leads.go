package leads

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"github.com/Apurer/groomer-directory/internal/domains/leads/domain"
	"github.com/Apurer/groomer-directory/internal/domains/leads/ports"
)

// PersistLeadActivityName appends a validated lead to the worker's sink.
const PersistLeadActivityName = "leads.activities.PersistLead"

// Activities groups activities that operate on the leads bounded context.
type Activities struct {
	sink ports.Sink
}

// NewActivities wires the lead sink into the Temporal activities bundle.
func NewActivities(sink ports.Sink) *Activities {
	return &Activities{sink: sink}
}

// PersistLead stores a lead. Invalid leads fail without retry.
func (a *Activities) PersistLead(ctx context.Context, lead domain.Lead) (*domain.Lead, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.sink == nil {
		logger.Error("lead persist activity not initialized", "listingId", lead.ListingID)
		return nil, errors.New("lead persist activity not initialized")
	}
	if err := lead.Validate(); err != nil {
		logger.Error("PersistLead rejected invalid lead", "listingId", lead.ListingID, "error", err)
		return nil, temporal.NewNonRetryableApplicationError(err.Error(), "InvalidLead", err)
	}
	logger.Info("PersistLead activity started", "listingId", lead.ListingID)
	saved, err := a.sink.Append(ctx, &lead)
	if errors.Is(err, ports.ErrSubmissionConflict) {
		logger.Error("PersistLead submission key conflict", "listingId", lead.ListingID)
		return nil, temporal.NewNonRetryableApplicationError(err.Error(), "SubmissionConflict", err)
	}
	if err != nil {
		logger.Error("PersistLead activity failed", "listingId", lead.ListingID, "error", err)
		return nil, err
	}
	logger.Info("PersistLead activity completed", "leadId", saved.ID, "listingId", saved.ListingID)
	return saved, nil
}
