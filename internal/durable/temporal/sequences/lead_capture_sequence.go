package sequences

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/Apurer/groomer-directory/internal/domains/leads/domain"
	leadactivities "github.com/Apurer/groomer-directory/internal/durable/temporal/activities/leads"
)

// RunLeadCaptureSequence executes the ordered set of activities needed to record a lead.
func RunLeadCaptureSequence(ctx workflow.Context, lead domain.Lead) (*domain.Lead, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("lead capture sequence started", "listingId", lead.ListingID)
	options := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:        2 * time.Second,
			BackoffCoefficient:     2.0,
			MaximumInterval:        10 * time.Second,
			MaximumAttempts:        5,
			NonRetryableErrorTypes: []string{"InvalidLead", "SubmissionConflict"},
		},
	}
	ctx = workflow.WithActivityOptions(ctx, options)

	var saved domain.Lead
	err := workflow.ExecuteActivity(ctx, leadactivities.PersistLeadActivityName, lead).Get(ctx, &saved)
	if err != nil {
		logger.Error("lead capture sequence failed", "listingId", lead.ListingID, "error", err)
		return nil, err
	}
	logger.Info("lead capture sequence completed", "leadId", saved.ID)
	return &saved, nil
}
