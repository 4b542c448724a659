package sheet

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/washledger/internal/common"
)

// Row is one data row keyed by column title.
type Row map[string]string

// Cell is a 1-based grid position.
type Cell struct {
	Row int
	Col int
}

// Store is the row-level capability every backend provides. Rows returned
// by ReadAllRows and positions returned by FindCells are in physical order.
// Row positions are only valid until the next DeleteRow.
type Store interface {
	// ReadAllRows returns every data row below the header.
	ReadAllRows(ctx context.Context) ([]Row, error)

	// AppendRow writes values as a new last row.
	AppendRow(ctx context.Context, values []string) error

	// FindCells returns the positions of all cells whose text equals value.
	FindCells(ctx context.Context, value string) ([]Cell, error)

	ReadCell(ctx context.Context, row, col int) (string, error)
	WriteCell(ctx context.Context, row, col int, value string) error

	// DeleteRow removes a data row; every row below it moves up by one.
	DeleteRow(ctx context.Context, row int) error
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, common.ErrUnavailable, err)
}

func outOfRange(row, col int) error {
	return fmt.Errorf("cell (%d,%d): %w", row, col, common.ErrOutOfRange)
}
