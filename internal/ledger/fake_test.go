package ledger

import (
	"context"

	"github.com/dmitrijs2005/washledger/internal/models"
	"github.com/dmitrijs2005/washledger/internal/sheet"
)

// fakeStore wraps a MemoryStore, counting full reads and failing on demand.
type fakeStore struct {
	*sheet.MemoryStore
	reads    int
	readErr  error
	writeErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{MemoryStore: sheet.NewMemoryStore(models.Columns)}
}

func (s *fakeStore) ReadAllRows(ctx context.Context) ([]sheet.Row, error) {
	s.reads++
	if s.readErr != nil {
		return nil, s.readErr
	}
	return s.MemoryStore.ReadAllRows(ctx)
}

func (s *fakeStore) FindCells(ctx context.Context, value string) ([]sheet.Cell, error) {
	if s.readErr != nil {
		return nil, s.readErr
	}
	return s.MemoryStore.FindCells(ctx, value)
}

func (s *fakeStore) AppendRow(ctx context.Context, values []string) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	return s.MemoryStore.AppendRow(ctx, values)
}

func (s *fakeStore) WriteCell(ctx context.Context, row, col int, value string) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	return s.MemoryStore.WriteCell(ctx, row, col, value)
}

func (s *fakeStore) DeleteRow(ctx context.Context, row int) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	return s.MemoryStore.DeleteRow(ctx, row)
}
