// Package migrations embeds the goose migrations for the SQL-hosted sheets.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed sqlite/*.sql postgres/*.sql
var Migrations embed.FS

// UpSQLite applies the SQLite migrations.
func UpSQLite(ctx context.Context, db *sql.DB) error {
	return up(ctx, db, "sqlite3", "sqlite")
}

// UpPostgres applies the PostgreSQL migrations.
func UpPostgres(ctx context.Context, db *sql.DB) error {
	return up(ctx, db, "postgres", "postgres")
}

func up(ctx context.Context, db *sql.DB, dialect, dir string) error {
	goose.SetBaseFS(Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("goose dialect %s: %w", dialect, err)
	}

	if err := goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("migrate %s: %w", dir, err)
	}
	return nil
}
