package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	directoryserver "github.com/Apurer/groomer-directory/go"

	leadsmemory "github.com/Apurer/groomer-directory/internal/domains/leads/adapters/memory"
	leadsobs "github.com/Apurer/groomer-directory/internal/domains/leads/adapters/observability"
	leadspostgres "github.com/Apurer/groomer-directory/internal/domains/leads/adapters/persistence/postgres"
	leadsworkflows "github.com/Apurer/groomer-directory/internal/domains/leads/adapters/workflows"
	leadsapp "github.com/Apurer/groomer-directory/internal/domains/leads/application"
	leadsports "github.com/Apurer/groomer-directory/internal/domains/leads/ports"
	listingsmemory "github.com/Apurer/groomer-directory/internal/domains/listings/adapters/memory"
	listingsobs "github.com/Apurer/groomer-directory/internal/domains/listings/adapters/observability"
	listingspostgres "github.com/Apurer/groomer-directory/internal/domains/listings/adapters/persistence/postgres"
	listingsapp "github.com/Apurer/groomer-directory/internal/domains/listings/application"
	"github.com/Apurer/groomer-directory/internal/domains/listings/fixture"
	listingsports "github.com/Apurer/groomer-directory/internal/domains/listings/ports"
	"github.com/Apurer/groomer-directory/internal/platform/migrations"
	platformobservability "github.com/Apurer/groomer-directory/internal/platform/observability"
	platformpostgres "github.com/Apurer/groomer-directory/internal/platform/postgres"
)

const serviceName = "groomer-directory-api"

// Run boots the directory HTTP API with observability, stores, and lead capture wired.
// It returns when ctx is canceled and the server has drained.
func Run(ctx context.Context, cfg Config) error {
	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	instruments, shutdown, err := platformobservability.Init(ctx, platformobservability.Settings{
		ServiceName:  serviceName,
		Environment:  cfg.Environment,
		LogLevel:     level,
		OTLPEndpoint: cfg.OTLPEndpoint,
		OTLPInsecure: cfg.OTLPInsecure,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	db, cleanupDB := OpenDatabase(ctx, cfg, logger)
	defer cleanupDB()

	listingService := listingsobs.New(
		listingsapp.NewService(BuildListingRepository(ctx, db, cfg, logger), listingsapp.WithLogger(logger)),
		listingsobs.WithLogger(logger),
		listingsobs.WithTracer(instruments.Tracer("internal.listings.application")),
		listingsobs.WithMeter(instruments.Meter("internal.listings.application")),
	)

	var sink leadsports.Sink = BuildLeadSink(db, logger)
	if temporalClient, err := ConnectTemporalClient(cfg, instruments); err != nil {
		logger.Warn("Temporal workflows unavailable, recording leads inline", slog.String("error", err.Error()))
	} else {
		defer temporalClient.Close()
		sink = leadsworkflows.NewTemporalSink(temporalClient)
		logger.Info("Temporal lead capture enabled", slog.String("namespace", cfg.TemporalNamespace))
	}
	leadService := leadsobs.New(
		leadsapp.NewService(sink, leadsapp.WithLogger(logger)),
		leadsobs.WithLogger(logger),
		leadsobs.WithTracer(instruments.Tracer("internal.leads.application")),
		leadsobs.WithMeter(instruments.Meter("internal.leads.application")),
	)

	if cfg.ProblemBaseURI != "" {
		directoryserver.SetProblemBaseURI(cfg.ProblemBaseURI)
	}
	handlers := directoryserver.ApiHandleFunctions{
		DirectoryAPI: directoryserver.NewDirectoryAPI(listingService),
		LeadAPI:      directoryserver.NewLeadAPI(leadService),
	}
	router := gin.New()
	router.Use(gin.Recovery(), otelgin.Middleware(serviceName), requestLogger(logger))
	router = directoryserver.NewRouterWithGinEngine(router, handlers)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("directory API listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down directory API")
		drainCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(drainCtx)
	})
	if err := g.Wait(); err != nil {
		logger.Error("directory API server exited", slog.String("addr", srv.Addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

// OpenDatabase connects to Postgres when configured and applies migrations.
// A nil DB means the process runs on in-memory stores.
func OpenDatabase(ctx context.Context, cfg Config, logger *slog.Logger) (*gorm.DB, func()) {
	db, cleanup := platformpostgres.ConnectOrFallback(ctx, cfg.PostgresDSN, logger,
		platformpostgres.WithPool(cfg.DBMaxOpenConns, cfg.DBMaxIdleConns, cfg.DBConnMaxLifetime),
	)
	if db == nil {
		return nil, cleanup
	}
	if err := migrations.Run(ctx, db); err != nil {
		logger.Warn("failed to apply migrations, falling back to in-memory stores", slog.String("error", err.Error()))
		cleanup()
		return nil, func() {}
	}
	return db, cleanup
}

// BuildListingRepository selects the listing store once at startup.
func BuildListingRepository(ctx context.Context, db *gorm.DB, cfg Config, logger *slog.Logger) listingsports.Repository {
	if db != nil {
		logger.Info("listing repository configured with postgres")
		return listingspostgres.NewRepository(db)
	}
	logger.Info("listing repository configured with generated fixture", slog.Int("size", cfg.FixtureSize))
	return listingsmemory.NewRepository(fixture.Generate(cfg.FixtureSize))
}

// BuildLeadSink picks the direct sink used inline or by the worker.
func BuildLeadSink(db *gorm.DB, logger *slog.Logger) leadsports.Sink {
	if db != nil {
		logger.Info("lead sink configured with postgres")
		return leadspostgres.NewSink(db)
	}
	logger.Warn("lead sink configured in memory, leads are lost on restart")
	return leadsmemory.NewSink()
}

// ConnectTemporalClient dials Temporal with tracing and structured logging.
func ConnectTemporalClient(cfg Config, instruments *platformobservability.Instruments) (client.Client, error) {
	if cfg.TemporalDisabled {
		return nil, errors.New("temporal disabled via TEMPORAL_DISABLED env")
	}
	tracerOptions := temporalotel.TracerOptions{}
	if instruments != nil {
		tracerOptions.Tracer = instruments.Tracer("temporal-client")
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		return nil, err
	}
	options := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    workerlog.NewStructuredLogger(effectiveLogger(instruments)),
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}

func effectiveLogger(instruments *platformobservability.Instruments) *slog.Logger {
	if instruments != nil && instruments.Logger != nil {
		return instruments.Logger
	}
	return slog.Default()
}

// requestLogger writes one structured line per request.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		level := slog.LevelInfo
		if c.Writer.Status() >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.LogAttrs(c.Request.Context(), level, "http request",
			slog.String("method", c.Request.Method),
			slog.String("route", c.FullPath()),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", time.Since(start)),
		)
	}
}
