// Package migrations provides embedded SQL migration files.
package migrations

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
)

//go:embed sql/001_catalog.sql
var CatalogSQL string

//go:embed sql/002_catalog_title_index.sql
var Migration002TitleIndex string

// All lists the migrations in the order they must run. Every statement is
// idempotent, so applying the list to an up-to-date database is a no-op.
func All() []string {
	return []string{CatalogSQL, Migration002TitleIndex}
}

// Apply runs every migration against db.
func Apply(ctx context.Context, db *sql.DB) error {
	for i, m := range All() {
		if _, err := db.ExecContext(ctx, m); err != nil {
			return fmt.Errorf("migration %03d: %w", i+1, err)
		}
	}
	return nil
}
