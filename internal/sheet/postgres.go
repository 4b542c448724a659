package sheet

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/washledger/internal/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// PostgresStore is a sheet kept on a PostgreSQL server shared by every till.
type PostgresStore struct {
	*sqlStore
}

// NewPostgresStore wraps an already migrated database.
func NewPostgresStore(db *sql.DB, sheet string, header []string) *PostgresStore {
	return &PostgresStore{sqlStore: newSQLStore(db, "pgx", sheet, header)}
}

// OpenPostgres connects through pgx, applies migrations and makes sure the
// sheet has its header row.
func OpenPostgres(ctx context.Context, dsn, sheet string, header []string) (*PostgresStore, *sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("db open error: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, unavailable("connect", err)
	}

	if err := migrations.UpPostgres(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("migration error: %w", err)
	}

	s := NewPostgresStore(db, sheet, header)
	if err := s.ensureHeader(ctx, header); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return s, db, nil
}
