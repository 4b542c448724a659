package sheet

import (
	"context"
	"sync"
)

// MemoryStore keeps the sheet in process memory. It is safe for concurrent
// use and is what tests and the demo backend run against.
type MemoryStore struct {
	mu   sync.RWMutex
	grid grid
}

func NewMemoryStore(header []string) *MemoryStore {
	return &MemoryStore{grid: newGrid(header)}
}

func (m *MemoryStore) ReadAllRows(ctx context.Context) ([]Row, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.grid.rows(), nil
}

func (m *MemoryStore) AppendRow(ctx context.Context, values []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.grid.appendRow(values)
}

func (m *MemoryStore) FindCells(ctx context.Context, value string) ([]Cell, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.grid.find(value), nil
}

func (m *MemoryStore) ReadCell(ctx context.Context, row, col int) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.grid.cell(row, col)
}

func (m *MemoryStore) WriteCell(ctx context.Context, row, col int, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.grid.set(row, col, value)
}

func (m *MemoryStore) DeleteRow(ctx context.Context, row int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.grid.deleteRow(row)
}

// Snapshot returns a copy of the whole grid, header included.
func (m *MemoryStore) Snapshot() [][]string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.grid.clone()
}
