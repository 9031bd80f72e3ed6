// Package migrations embeds the SQL schema and applies it with goose.
package migrations

import (
	"context"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

//go:embed sql/*.sql
var FS embed.FS

const dir = "sql"

// Run applies every pending migration. A nil DB is a no-op so callers running
// on the in-memory backend can call it unconditionally.
func Run(ctx context.Context, db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("extracting sql.DB: %w", err)
	}
	goose.SetBaseFS(FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, sqlDB, dir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}
