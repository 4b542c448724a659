package ledger

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/washledger/internal/common"
	"github.com/dmitrijs2005/washledger/internal/logging"
	"github.com/dmitrijs2005/washledger/internal/models"
	"github.com/dmitrijs2005/washledger/internal/sheet"
)

// DefaultTTL is how long a snapshot is served before the sheet is read again.
const DefaultTTL = 5 * time.Second

// SnapshotCache memoizes a full read of the store for a fixed TTL.
// A failed read is returned to the caller; an expired snapshot is never
// served in its place.
type SnapshotCache struct {
	mu    sync.Mutex
	store sheet.Store
	ttl   time.Duration
	now   func() time.Time
	log   logging.Logger

	records   []models.Record
	fetchedAt time.Time
	valid     bool
}

func NewSnapshotCache(store sheet.Store, ttl time.Duration, log logging.Logger) *SnapshotCache {
	if log == nil {
		log = logging.Nop()
	}
	return &SnapshotCache{store: store, ttl: ttl, now: time.Now, log: log}
}

// Get returns the cached records and the store they were read from,
// refreshing them first when the snapshot is missing or older than the TTL.
// The returned slice is the caller's to keep.
func (c *SnapshotCache) Get(ctx context.Context) ([]models.Record, sheet.Store, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.valid && c.now().Sub(c.fetchedAt) < c.ttl {
		return c.copyRecords(), c.store, nil
	}

	c.valid = false
	rows, err := c.store.ReadAllRows(ctx)
	if err != nil {
		return nil, nil, err
	}

	records := make([]models.Record, 0, len(rows))
	for i, row := range rows {
		r, err := models.FromRow(row)
		if err != nil {
			c.log.Warn(ctx, "unreadable date in sheet row", "row", i+common.HeaderRows+1, "error", err)
		}
		if raw := strings.TrimSpace(row[models.ColPrice]); raw != "" && r.Price == 0 && strings.Trim(raw, "0.,") != "" {
			c.log.Warn(ctx, "price not understood, read as zero", "row", i+common.HeaderRows+1, "raw", raw)
		}
		records = append(records, r)
	}

	c.records = records
	c.fetchedAt = c.now()
	c.valid = true
	c.log.Debug(ctx, "snapshot refreshed", "records", len(records))

	return c.copyRecords(), c.store, nil
}

// Invalidate forces the next Get to read the store regardless of the TTL.
func (c *SnapshotCache) Invalidate() {
	c.mu.Lock()
	c.valid = false
	c.records = nil
	c.mu.Unlock()
}

func (c *SnapshotCache) copyRecords() []models.Record {
	return append([]models.Record(nil), c.records...)
}
