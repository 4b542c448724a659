package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/washledger/internal/common"
	"github.com/dmitrijs2005/washledger/internal/models"
	"github.com/dmitrijs2005/washledger/internal/sheet"
)

// Resolver finds the current row of a record by its composite key.
// It always asks the store, so a position is never reused across writes.
type Resolver struct {
	store sheet.Store
}

func NewResolver(store sheet.Store) *Resolver {
	return &Resolver{store: store}
}

// Resolve returns the first row, in physical order, whose registered time,
// brand and wash type equal the key's (and whose date does, when the key
// carries one). Zero matches yield common.ErrorNotFound.
func (r *Resolver) Resolve(ctx context.Context, key models.Key) (int, error) {
	cells, err := r.store.FindCells(ctx, key.CreatedTime)
	if err != nil {
		return 0, fmt.Errorf("resolve %s: %w", key, err)
	}

	timeCol := models.ColumnIndex(models.ColCreatedTime)
	for _, c := range cells {
		if c.Col != timeCol || c.Row <= common.HeaderRows {
			continue
		}

		ok, err := r.matches(ctx, c.Row, key)
		if err != nil {
			return 0, fmt.Errorf("resolve %s: %w", key, err)
		}
		if ok {
			return c.Row, nil
		}
	}

	return 0, fmt.Errorf("resolve %s: %w", key, common.ErrorNotFound)
}

func (r *Resolver) matches(ctx context.Context, row int, key models.Key) (bool, error) {
	want := []struct {
		col   string
		value string
	}{
		{models.ColBrand, key.Brand},
		{models.ColWashType, key.WashType},
	}

	for _, w := range want {
		v, err := r.store.ReadCell(ctx, row, models.ColumnIndex(w.col))
		if err != nil {
			return false, err
		}
		if strings.TrimSpace(v) != w.value {
			return false, nil
		}
	}

	if key.Date.IsZero() {
		return true, nil
	}

	v, err := r.store.ReadCell(ctx, row, models.ColumnIndex(models.ColDate))
	if err != nil {
		return false, err
	}
	d, err := models.ParseDate(v)
	if err != nil {
		return false, nil
	}
	return d.Equal(models.Day(key.Date)), nil
}
