package leads

import (
	"go.temporal.io/sdk/workflow"

	"github.com/Apurer/groomer-directory/internal/domains/leads/domain"
	"github.com/Apurer/groomer-directory/internal/durable/temporal/sequences"
)

const (
	// LeadCaptureWorkflowName is the public identifier for registering the workflow.
	LeadCaptureWorkflowName = "leads.workflows.Capture"
	// LeadCaptureTaskQueue is the queue consumed by the worker processing lead workflows.
	LeadCaptureTaskQueue = "LEAD_CAPTURE"
)

// LeadCaptureWorkflowInput carries a validated lead plus the originating trace.
type LeadCaptureWorkflowInput struct {
	Lead    domain.Lead
	TraceID string
}

// LeadCaptureWorkflow durably records a lead, retrying the sink until it accepts.
func LeadCaptureWorkflow(ctx workflow.Context, input LeadCaptureWorkflowInput) (*domain.Lead, error) {
	logger := workflow.GetLogger(ctx)
	listingID := input.Lead.ListingID
	logger.Info("LeadCaptureWorkflow started", withTraceID(input.TraceID, "listingId", listingID)...)
	saved, err := sequences.RunLeadCaptureSequence(ctx, input.Lead)
	if err != nil {
		logger.Error("LeadCaptureWorkflow failed", withTraceID(input.TraceID, "listingId", listingID, "error", err)...)
		return nil, err
	}
	logger.Info("LeadCaptureWorkflow completed", withTraceID(input.TraceID, "leadId", saved.ID)...)
	return saved, nil
}

func withTraceID(traceID string, keyvals ...interface{}) []interface{} {
	if traceID == "" {
		return keyvals
	}
	return append(keyvals, "traceId", traceID)
}
