// Command seed applies migrations and loads the generated listing fixture into
// Postgres so both listing backends serve the same data.
package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Apurer/groomer-directory/internal/app/api"
	listingspostgres "github.com/Apurer/groomer-directory/internal/domains/listings/adapters/persistence/postgres"
	"github.com/Apurer/groomer-directory/internal/domains/listings/fixture"
	"github.com/Apurer/groomer-directory/internal/platform/migrations"
	platformobservability "github.com/Apurer/groomer-directory/internal/platform/observability"
	platformpostgres "github.com/Apurer/groomer-directory/internal/platform/postgres"
)

func main() {
	_ = godotenv.Load()
	cfg, err := api.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	size := flag.Int("size", cfg.FixtureSize, "number of listings to generate")
	flag.Parse()

	level, _ := cfg.SlogLevel()
	logger := platformobservability.NewLogger(nil, level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	db, err := platformpostgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}
	if err := migrations.Run(ctx, db); err != nil {
		log.Fatalf("failed to apply migrations: %v", err)
	}

	listings := fixture.Generate(*size)
	if err := listingspostgres.NewRepository(db).Upsert(ctx, listings); err != nil {
		log.Fatalf("failed to seed listings: %v", err)
	}
	logger.Info("seeded listings", "count", len(listings))
}
