package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	"github.com/Apurer/groomer-directory/internal/app/api"
	leadactivities "github.com/Apurer/groomer-directory/internal/durable/temporal/activities/leads"
	leadworkflows "github.com/Apurer/groomer-directory/internal/durable/temporal/workflows/leads"
	platformobservability "github.com/Apurer/groomer-directory/internal/platform/observability"
)

func main() {
	_ = godotenv.Load()
	cfg, err := api.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	level, _ := cfg.SlogLevel()

	ctx := context.Background()
	const serviceName = "groomer-directory-worker"
	instruments, shutdown, err := platformobservability.Init(ctx, platformobservability.Settings{
		ServiceName:  serviceName,
		Environment:  cfg.Environment,
		LogLevel:     level,
		OTLPEndpoint: cfg.OTLPEndpoint,
		OTLPInsecure: cfg.OTLPInsecure,
	})
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	db, cleanupDB := api.OpenDatabase(ctx, cfg, logger)
	defer cleanupDB()
	leadActivities := leadactivities.NewActivities(api.BuildLeadSink(db, logger))

	// The worker always needs Temporal, whatever TEMPORAL_DISABLED says for the API.
	cfg.TemporalDisabled = false
	temporalClient, err := api.ConnectTemporalClient(cfg, instruments)
	if err != nil {
		logger.Error("failed to create Temporal client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer temporalClient.Close()

	w := worker.New(temporalClient, leadworkflows.LeadCaptureTaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(leadworkflows.LeadCaptureWorkflow, workflow.RegisterOptions{Name: leadworkflows.LeadCaptureWorkflowName})
	w.RegisterActivityWithOptions(leadActivities.PersistLead, activity.RegisterOptions{Name: leadactivities.PersistLeadActivityName})

	logger.Info("worker listening", slog.String("taskQueue", leadworkflows.LeadCaptureTaskQueue), slog.String("namespace", cfg.TemporalNamespace))
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return
	}
	logger.Info("Temporal worker stopped")
}
