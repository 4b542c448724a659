package sheet

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/washledger/internal/migrations"
	_ "modernc.org/sqlite"
)

// SQLiteStore is a sheet kept in a local SQLite file.
type SQLiteStore struct {
	*sqlStore
}

// NewSQLiteStore wraps an already migrated database.
func NewSQLiteStore(db *sql.DB, sheet string, header []string) *SQLiteStore {
	return &SQLiteStore{sqlStore: newSQLStore(db, "sqlite", sheet, header)}
}

// OpenSQLite opens (creating if needed) the database file at path, applies
// migrations and makes sure the sheet has its header row.
func OpenSQLite(ctx context.Context, path, sheet string, header []string) (*SQLiteStore, *sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	if err := migrations.UpSQLite(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	// SQLite locks the whole file on write
	db.SetMaxOpenConns(1)

	s := NewSQLiteStore(db, sheet, header)
	if err := s.ensureHeader(ctx, header); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return s, db, nil
}
