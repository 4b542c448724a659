package sheet

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/washledger/internal/common"
	"github.com/dmitrijs2005/washledger/internal/dbx"
	"github.com/jmoiron/sqlx"
)

// sqlStore keeps a sheet in the sheet_cells table, one table row per grid
// cell. Queries are written with '?' and rebound to the driver's
// placeholder style.
type sqlStore struct {
	db    *sqlx.DB
	sheet string
	width int
}

type cellRow struct {
	Row   int    `db:"row_num"`
	Col   int    `db:"col_num"`
	Value string `db:"value"`
}

func newSQLStore(db *sql.DB, driver, sheet string, header []string) *sqlStore {
	return &sqlStore{db: sqlx.NewDb(db, driver), sheet: sheet, width: len(header)}
}

// ensureHeader writes header into row 1 unless the sheet already has one.
func (s *sqlStore) ensureHeader(ctx context.Context, header []string) error {
	return dbx.WithTx(ctx, s.db.DB, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var n int
		q := s.db.Rebind(`SELECT COUNT(*) FROM sheet_cells WHERE sheet = ? AND row_num = 1`)
		if err := tx.QueryRowContext(ctx, q, s.sheet).Scan(&n); err != nil {
			return unavailable("read header", err)
		}
		if n > 0 {
			return nil
		}
		return s.insertRow(ctx, tx, 1, header)
	})
}

func (s *sqlStore) insertRow(ctx context.Context, tx dbx.DBTX, row int, values []string) error {
	q := s.db.Rebind(`INSERT INTO sheet_cells (sheet, row_num, col_num, value) VALUES (?, ?, ?, ?)`)
	for i, v := range values {
		if _, err := tx.ExecContext(ctx, q, s.sheet, row, i+1, v); err != nil {
			return unavailable("insert cell", err)
		}
	}
	return nil
}

func (s *sqlStore) load(ctx context.Context) (grid, error) {
	var cells []cellRow
	q := s.db.Rebind(`SELECT row_num, col_num, value FROM sheet_cells WHERE sheet = ? ORDER BY row_num, col_num`)
	if err := s.db.SelectContext(ctx, &cells, q, s.sheet); err != nil {
		return nil, unavailable("read sheet", err)
	}

	var g grid
	for _, c := range cells {
		if c.Row < 1 || c.Col < 1 {
			continue
		}
		for len(g) < c.Row {
			g = append(g, nil)
		}
		line := g[c.Row-1]
		for len(line) < c.Col {
			line = append(line, "")
		}
		line[c.Col-1] = c.Value
		g[c.Row-1] = line
	}
	return g, nil
}

func (s *sqlStore) ReadAllRows(ctx context.Context) ([]Row, error) {
	g, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return g.rows(), nil
}

func (s *sqlStore) AppendRow(ctx context.Context, values []string) error {
	if len(values) > s.width {
		return outOfRange(0, len(values))
	}
	line := make([]string, s.width)
	copy(line, values)

	return dbx.WithTx(ctx, s.db.DB, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var last int
		q := s.db.Rebind(`SELECT COALESCE(MAX(row_num), 0) FROM sheet_cells WHERE sheet = ?`)
		if err := tx.QueryRowContext(ctx, q, s.sheet).Scan(&last); err != nil {
			return unavailable("append row", err)
		}
		return s.insertRow(ctx, tx, last+1, line)
	})
}

func (s *sqlStore) FindCells(ctx context.Context, value string) ([]Cell, error) {
	var cells []cellRow
	q := s.db.Rebind(`SELECT row_num, col_num, value FROM sheet_cells WHERE sheet = ? AND value = ? ORDER BY row_num, col_num`)
	if err := s.db.SelectContext(ctx, &cells, q, s.sheet, value); err != nil {
		return nil, unavailable("find cells", err)
	}

	out := make([]Cell, 0, len(cells))
	for _, c := range cells {
		out = append(out, Cell{Row: c.Row, Col: c.Col})
	}
	return out, nil
}

func (s *sqlStore) ReadCell(ctx context.Context, row, col int) (string, error) {
	if row < 1 || col < 1 || col > s.width {
		return "", outOfRange(row, col)
	}

	var v string
	q := s.db.Rebind(`SELECT value FROM sheet_cells WHERE sheet = ? AND row_num = ? AND col_num = ?`)
	err := s.db.GetContext(ctx, &v, q, s.sheet, row, col)
	if errors.Is(err, sql.ErrNoRows) {
		return "", outOfRange(row, col)
	}
	if err != nil {
		return "", unavailable("read cell", err)
	}
	return v, nil
}

func (s *sqlStore) WriteCell(ctx context.Context, row, col int, value string) error {
	if row <= common.HeaderRows || col < 1 || col > s.width {
		return outOfRange(row, col)
	}

	q := s.db.Rebind(`UPDATE sheet_cells SET value = ? WHERE sheet = ? AND row_num = ? AND col_num = ?`)
	n, err := dbx.ExecAffected(ctx, s.db, q, value, s.sheet, row, col)
	if err != nil {
		return unavailable("write cell", err)
	}
	if n == 0 {
		return outOfRange(row, col)
	}
	return nil
}

// DeleteRow removes the row and renumbers the rows below it. Renumbering goes
// through negative positions so the primary key is never violated midway.
func (s *sqlStore) DeleteRow(ctx context.Context, row int) error {
	if row <= common.HeaderRows {
		return outOfRange(row, 1)
	}

	return dbx.WithTx(ctx, s.db.DB, nil, func(ctx context.Context, tx dbx.DBTX) error {
		n, err := dbx.ExecAffected(ctx, tx, s.db.Rebind(`DELETE FROM sheet_cells WHERE sheet = ? AND row_num = ?`), s.sheet, row)
		if err != nil {
			return unavailable("delete row", err)
		}
		if n == 0 {
			return outOfRange(row, 1)
		}

		if _, err := tx.ExecContext(ctx,
			s.db.Rebind(`UPDATE sheet_cells SET row_num = -(row_num - 1) WHERE sheet = ? AND row_num > ?`),
			s.sheet, row); err != nil {
			return unavailable("shift rows", err)
		}
		if _, err := tx.ExecContext(ctx,
			s.db.Rebind(`UPDATE sheet_cells SET row_num = -row_num WHERE sheet = ? AND row_num < 0`),
			s.sheet); err != nil {
			return unavailable("shift rows", err)
		}
		return nil
	})
}
