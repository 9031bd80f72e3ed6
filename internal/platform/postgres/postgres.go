package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type options struct {
	maxOpenConns    int
	maxIdleConns    int
	connMaxLifetime time.Duration
	logLevel        gormlogger.LogLevel
	pingTimeout     time.Duration
}

// Option tunes the connection pool and GORM behaviour.
type Option func(*options)

// WithPool sets the database/sql pool limits. Zero values keep driver defaults.
func WithPool(maxOpen, maxIdle int, maxLifetime time.Duration) Option {
	return func(o *options) {
		o.maxOpenConns = maxOpen
		o.maxIdleConns = maxIdle
		o.connMaxLifetime = maxLifetime
	}
}

// WithLogLevel sets GORM's statement logging level.
func WithLogLevel(level gormlogger.LogLevel) Option {
	return func(o *options) {
		o.logLevel = level
	}
}

func defaultOptions() options {
	return options{logLevel: gormlogger.Warn, pingTimeout: 5 * time.Second}
}

// Connect opens a PostgreSQL connection via GORM and verifies connectivity.
func Connect(ctx context.Context, dsn string, opts ...Option) (*gorm.DB, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("postgres DSN is empty")
	}
	cfg := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(cfg.logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cfg.maxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.maxOpenConns)
	}
	if cfg.maxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.maxIdleConns)
	}
	if cfg.connMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.connMaxLifetime)
	}
	ctx, cancel := context.WithTimeout(ctx, cfg.pingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// ConnectOrFallback dials PostgreSQL and returns the DB plus a cleanup function.
// When dsn is empty or the connection fails, it logs and returns nil with a no-op
// cleanup so the caller can fall back to the in-memory store.
func ConnectOrFallback(ctx context.Context, dsn string, logger *slog.Logger, opts ...Option) (*gorm.DB, func()) {
	if strings.TrimSpace(dsn) == "" {
		if logger != nil {
			logger.Warn("POSTGRES_DSN not set, falling back to in-memory listings")
		}
		return nil, func() {}
	}
	db, err := Connect(ctx, dsn, opts...)
	if err != nil {
		if logger != nil {
			logger.Warn("failed to connect to postgres, falling back to in-memory listings", slog.String("error", err.Error()))
		}
		return nil, func() {}
	}
	sqlDB, err := db.DB()
	if err != nil {
		if logger != nil {
			logger.Warn("failed to unwrap postgres connection, falling back to in-memory listings", slog.String("error", err.Error()))
		}
		return nil, func() {}
	}
	if logger != nil {
		logger.Info("postgres connection established")
	}
	return db, func() { _ = sqlDB.Close() }
}
