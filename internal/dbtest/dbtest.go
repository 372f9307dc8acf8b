// Package dbtest provides an in-memory SQLite store with the production schema for tests.
package dbtest

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"

	"king_backend/internal/config"
	"king_backend/internal/database"
	"king_backend/internal/migrations"
)

// New opens a fresh in-memory database, applies the schema and closes it when the test ends.
func New(t *testing.T) *sqlx.DB {
	t.Helper()

	ctx := context.Background()
	db, err := database.Open(ctx, config.Database{Driver: "sqlite", DSN: ":memory:"})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := migrations.Run(ctx, db); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	return db
}
