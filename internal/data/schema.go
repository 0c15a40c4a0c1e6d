package data

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aoideee/book-catalog/internal/data/migrations"
	"github.com/pressly/goose/v3"
)

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// EnsureSchema creates the books table if it does not exist yet. The
// migration itself uses CREATE TABLE IF NOT EXISTS, so running it against a
// database bootstrapped by other means is harmless.
func (m BookModel) EnsureSchema(ctx context.Context) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	if err := gooseUpContext(ctx, m.DB, "."); err != nil {
		return classifyError("ensure schema", err)
	}
	return nil
}
