package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These enable efficient full-text search on cached summaries and extracted
// text, which the dashboard search uses.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_summary_caches_extracted_text_gin
		ON summary_caches USING gin(to_tsvector('english', extracted_text))`)
	if err != nil {
		return fmt.Errorf("failed to create extracted_text GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_summary_caches_summary_gin
		ON summary_caches USING gin(to_tsvector('english', summary))`)
	if err != nil {
		return fmt.Errorf("failed to create summary GIN index: %w", err)
	}

	return nil
}
