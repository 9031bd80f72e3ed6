package api

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config carries environment-driven settings shared by the API, worker and seeder.
type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	Environment string `envconfig:"ENVIRONMENT" default:"local"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	PostgresDSN       string        `envconfig:"POSTGRES_DSN"`
	DBMaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"10"`
	DBMaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	DBConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"30m"`

	// FixtureSize is how many generated listings back the in-memory store and the seeder.
	FixtureSize int `envconfig:"FIXTURE_SIZE" default:"100"`

	TemporalAddress   string `envconfig:"TEMPORAL_ADDRESS" default:"localhost:7233"`
	TemporalNamespace string `envconfig:"TEMPORAL_NAMESPACE" default:"default"`
	TemporalDisabled  bool   `envconfig:"TEMPORAL_DISABLED" default:"false"`

	OTLPEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTLPInsecure bool   `envconfig:"OTEL_EXPORTER_OTLP_INSECURE" default:"true"`

	// ProblemBaseURI prefixes relative RFC 7807 problem types when set.
	ProblemBaseURI string `envconfig:"PROBLEM_BASE_URI"`
}

// LoadConfig reads environment variables, applies defaults, and validates basic constraints.
// Callers load any .env file beforehand.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	cfg.PostgresDSN = strings.TrimSpace(cfg.PostgresDSN)
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if port, err := strconv.Atoi(c.Port); err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("PORT must be a valid TCP port, got %q", c.Port)
	}
	if c.FixtureSize <= 0 {
		return fmt.Errorf("FIXTURE_SIZE must be a positive integer")
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses LOG_LEVEL.
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}
