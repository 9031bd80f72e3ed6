package workflows

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"

	"github.com/Apurer/groomer-directory/internal/domains/leads/domain"
	"github.com/Apurer/groomer-directory/internal/domains/leads/ports"
	leadworkflows "github.com/Apurer/groomer-directory/internal/durable/temporal/workflows/leads"
)

var _ ports.Sink = (*TemporalSink)(nil)

// TemporalSink records leads by running the capture workflow on a Temporal
// cluster. The worker owns the real sink.
type TemporalSink struct {
	client    client.Client
	taskQueue string
}

// NewTemporalSink wires a Temporal client into the sink.
func NewTemporalSink(c client.Client) *TemporalSink {
	return &TemporalSink{client: c, taskQueue: leadworkflows.LeadCaptureTaskQueue}
}

// Append starts the capture workflow and waits for its result. A resubmitted
// key joins the workflow already running for it.
func (s *TemporalSink) Append(ctx context.Context, lead *domain.Lead) (*domain.Lead, error) {
	if s == nil || s.client == nil {
		return nil, errors.New("temporal lead sink not configured")
	}
	if lead == nil {
		return nil, errors.New("cannot append nil lead")
	}
	traceComponent := workflowTraceComponent(ctx)
	workflowID := buildLeadCaptureWorkflowID(lead, traceComponent)
	options := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: s.taskQueue,
	}
	run, err := s.client.ExecuteWorkflow(
		ctx,
		options,
		leadworkflows.LeadCaptureWorkflowName,
		leadworkflows.LeadCaptureWorkflowInput{Lead: *lead, TraceID: traceComponent},
	)
	if err != nil {
		var alreadyStarted *serviceerror.WorkflowExecutionAlreadyStarted
		if errors.As(err, &alreadyStarted) && strings.TrimSpace(lead.SubmissionKey) != "" {
			existing := s.client.GetWorkflow(ctx, workflowID, alreadyStarted.RunId)
			var saved domain.Lead
			if err := existing.Get(ctx, &saved); err != nil {
				return nil, err
			}
			return &saved, nil
		}
		return nil, err
	}
	var saved domain.Lead
	if err := run.Get(ctx, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

func buildLeadCaptureWorkflowID(lead *domain.Lead, traceComponent string) string {
	if key := strings.TrimSpace(lead.SubmissionKey); key != "" {
		return fmt.Sprintf("lead-capture-idem-%s", hashSubmissionKey(key))
	}
	return fmt.Sprintf("lead-capture-%d-%s", lead.ListingID, traceComponent)
}

// hashSubmissionKey keeps workflow IDs short while remaining deterministic.
func hashSubmissionKey(key string) string {
	return domain.HashSubmissionKey(key)[:16]
}

func workflowTraceComponent(ctx context.Context) string {
	if traceID := workflowTraceID(ctx); traceID != "" {
		return traceID
	}
	return "fallback-" + uuid.NewString()
}

func workflowTraceID(ctx context.Context) string {
	spanCtx := oteltrace.SpanContextFromContext(ctx)
	if !spanCtx.IsValid() {
		return ""
	}
	return spanCtx.TraceID().String()
}
