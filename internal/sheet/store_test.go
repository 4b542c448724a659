package sheet

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/washledger/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testHeader = []string{"Date", "RegisteredTime", "Brand", "WashType", "DeliveryTime", "Price", "PaymentMethod"}

// storeContract exercises the behaviour every backend must share.
func storeContract(t *testing.T, newStore func(t *testing.T) Store) {
	ctx := context.Background()

	t.Run("empty sheet has no rows", func(t *testing.T) {
		s := newStore(t)
		rows, err := s.ReadAllRows(ctx)
		require.NoError(t, err)
		assert.Empty(t, rows)

		v, err := s.ReadCell(ctx, 1, 3)
		require.NoError(t, err)
		assert.Equal(t, "Brand", v)
	})

	t.Run("append then read keyed by header", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.AppendRow(ctx, []string{"15/10/2026", "09:00", "Fiat", "Outside only", "", "10.00", ""}))
		require.NoError(t, s.AppendRow(ctx, []string{"15/10/2026", "09:30", "Kia"}))

		rows, err := s.ReadAllRows(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "Fiat", rows[0]["Brand"])
		assert.Equal(t, "10.00", rows[0]["Price"])
		assert.Equal(t, "Kia", rows[1]["Brand"])
		assert.Equal(t, "", rows[1]["Price"])
	})

	t.Run("append wider than header fails", func(t *testing.T) {
		s := newStore(t)
		err := s.AppendRow(ctx, make([]string, len(testHeader)+1))
		assert.ErrorIs(t, err, common.ErrOutOfRange)
	})

	t.Run("find cells in physical order", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.AppendRow(ctx, []string{"15/10/2026", "09:00", "Fiat", "Outside only"}))
		require.NoError(t, s.AppendRow(ctx, []string{"15/10/2026", "10:00", "Fiat", "Inside only"}))
		require.NoError(t, s.AppendRow(ctx, []string{"15/10/2026", "09:00", "Kia", "Outside only"}))

		cells, err := s.FindCells(ctx, "09:00")
		require.NoError(t, err)
		assert.Equal(t, []Cell{{Row: 2, Col: 2}, {Row: 4, Col: 2}}, cells)

		cells, err = s.FindCells(ctx, "Fiat")
		require.NoError(t, err)
		assert.Equal(t, []Cell{{Row: 2, Col: 3}, {Row: 3, Col: 3}}, cells)

		cells, err = s.FindCells(ctx, "nothing")
		require.NoError(t, err)
		assert.Empty(t, cells)
	})

	t.Run("write and read a cell", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.AppendRow(ctx, []string{"15/10/2026", "09:00", "Fiat", "Outside only", "", "10.00", ""}))

		require.NoError(t, s.WriteCell(ctx, 2, 7, "Cash"))
		v, err := s.ReadCell(ctx, 2, 7)
		require.NoError(t, err)
		assert.Equal(t, "Cash", v)
	})

	t.Run("out of range addressing", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.AppendRow(ctx, []string{"15/10/2026", "09:00"}))

		_, err := s.ReadCell(ctx, 3, 1)
		assert.ErrorIs(t, err, common.ErrOutOfRange)
		_, err = s.ReadCell(ctx, 2, len(testHeader)+1)
		assert.ErrorIs(t, err, common.ErrOutOfRange)
		assert.ErrorIs(t, s.WriteCell(ctx, 1, 1, "x"), common.ErrOutOfRange)
		assert.ErrorIs(t, s.WriteCell(ctx, 5, 1, "x"), common.ErrOutOfRange)
		assert.ErrorIs(t, s.DeleteRow(ctx, 1), common.ErrOutOfRange)
		assert.ErrorIs(t, s.DeleteRow(ctx, 9), common.ErrOutOfRange)
	})

	t.Run("delete shifts following rows up", func(t *testing.T) {
		s := newStore(t)
		for _, b := range []string{"Fiat", "Kia", "Mini"} {
			require.NoError(t, s.AppendRow(ctx, []string{"15/10/2026", "09:00", b, "Outside only"}))
		}

		require.NoError(t, s.DeleteRow(ctx, 2))

		rows, err := s.ReadAllRows(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "Kia", rows[0]["Brand"])
		assert.Equal(t, "Mini", rows[1]["Brand"])

		v, err := s.ReadCell(ctx, 3, 3)
		require.NoError(t, err)
		assert.Equal(t, "Mini", v)

		_, err = s.ReadCell(ctx, 4, 3)
		assert.ErrorIs(t, err, common.ErrOutOfRange)

		require.NoError(t, s.AppendRow(ctx, []string{"15/10/2026", "11:00", "Opel"}))
		v, err = s.ReadCell(ctx, 4, 3)
		require.NoError(t, err)
		assert.Equal(t, "Opel", v)
	})
}

func TestMemoryStore(t *testing.T) {
	storeContract(t, func(t *testing.T) Store { return NewMemoryStore(testHeader) })
}

func TestSQLiteStore(t *testing.T) {
	storeContract(t, func(t *testing.T) Store {
		s, db, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "sheet.db"), "Washes", testHeader)
		require.NoError(t, err)
		t.Cleanup(func() { _ = db.Close() })
		return s
	})
}

func TestS3Store(t *testing.T) {
	storeContract(t, func(t *testing.T) Store {
		return NewS3Store(newFakeObjects(), "bucket", "Washes.csv", testHeader)
	})
}

func TestSQLiteStore_SheetsAreIsolatedAndHeaderWrittenOnce(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "sheet.db")

	a, db, err := OpenSQLite(ctx, path, "A", testHeader)
	require.NoError(t, err)
	require.NoError(t, a.AppendRow(ctx, []string{"15/10/2026", "09:00", "Fiat"}))
	require.NoError(t, db.Close())

	a, db, err = OpenSQLite(ctx, path, "A", testHeader)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	rows, err := a.ReadAllRows(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	b := NewSQLiteStore(db, "B", testHeader)
	require.NoError(t, b.ensureHeader(ctx, testHeader))
	rows, err = b.ReadAllRows(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestMemoryStore_SnapshotIsACopy(t *testing.T) {
	s := NewMemoryStore(testHeader)
	require.NoError(t, s.AppendRow(context.Background(), []string{"15/10/2026"}))

	snap := s.Snapshot()
	snap[1][0] = "changed"

	v, err := s.ReadCell(context.Background(), 2, 1)
	require.NoError(t, err)
	assert.Equal(t, "15/10/2026", v)
}

func TestGridRows_TrimsHeaderTitles(t *testing.T) {
	g := grid{{" Date ", "Brand", ""}, {"15/10/2026", "Fiat", "stray"}}
	rows := g.rows()
	require.Len(t, rows, 1)
	assert.Equal(t, Row{"Date": "15/10/2026", "Brand": "Fiat"}, rows[0])
}
