package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/washledger/internal/common"
	"github.com/dmitrijs2005/washledger/internal/logging"
	"github.com/dmitrijs2005/washledger/internal/models"
	"github.com/dmitrijs2005/washledger/internal/sheet"
	"github.com/google/uuid"
)

// Options tunes a Ledger. Zero values fall back to DefaultTTL, a discarding
// logger and time.Now.
type Options struct {
	TTL    time.Duration
	Logger logging.Logger
	Now    func() time.Time
}

// Ledger is the only way records are created, changed or removed.
// Each operation runs to completion before the next one starts.
type Ledger struct {
	store    sheet.Store
	cache    *SnapshotCache
	resolver *Resolver
	log      logging.Logger
}

func New(store sheet.Store, opts Options) *Ledger {
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}

	cache := NewSnapshotCache(store, opts.TTL, opts.Logger)
	if opts.Now != nil {
		cache.now = opts.Now
	}

	return &Ledger{
		store:    store,
		cache:    cache,
		resolver: NewResolver(store),
		log:      opts.Logger,
	}
}

func (l *Ledger) opLogger(op string, key models.Key) logging.Logger {
	return l.log.With("op", op, "op_id", uuid.NewString(), "key", key.String())
}

// Create appends r as the last row of the sheet. A record whose key already
// resolves (on the same date) is refused with common.ErrDuplicateKey.
func (l *Ledger) Create(ctx context.Context, r models.Record) error {
	log := l.opLogger("create", r.Key())
	defer l.cache.Invalidate()

	_, err := l.resolver.Resolve(ctx, r.Key())
	switch {
	case err == nil:
		log.Warn(ctx, "record already registered")
		return fmt.Errorf("create %s: %w", r.Key(), common.ErrDuplicateKey)
	case !errors.Is(err, common.ErrorNotFound):
		log.Error(ctx, "duplicate check failed", "error", err)
		return fmt.Errorf("create: %w", err)
	}

	if err := l.store.AppendRow(ctx, r.ToRow()); err != nil {
		log.Error(ctx, "append failed", "error", err)
		return fmt.Errorf("create %s: %w", r.Key(), err)
	}

	log.Info(ctx, "record created", "price", models.FormatPrice(r.Price), "payment", r.PaymentMethod)
	return nil
}

// List returns the records accepted by f in sheet order. A nil filter
// accepts everything. Repeated calls within the TTL do not touch the store.
func (l *Ledger) List(ctx context.Context, f Filter) ([]models.Record, error) {
	records, _, err := l.cache.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	if f == nil {
		return records, nil
	}

	out := make([]models.Record, 0, len(records))
	for _, r := range records {
		if f(r) {
			out = append(out, r)
		}
	}
	return out, nil
}

// UpdateField re-locates key in the store and overwrites one cell. Only
// price, payment method and delivery time can be changed.
func (l *Ledger) UpdateField(ctx context.Context, key models.Key, field models.Field, value string) error {
	col, ok := models.FieldColumn(field)
	if !ok {
		return fmt.Errorf("update %q: %w", field, common.ErrInvalidField)
	}

	log := l.opLogger("update", key)
	defer l.cache.Invalidate()

	row, err := l.resolver.Resolve(ctx, key)
	if err != nil {
		log.Warn(ctx, "update not applied", "field", field, "error", err)
		return fmt.Errorf("update: %w", err)
	}

	cell := models.FieldValue(field, value)
	if err := l.store.WriteCell(ctx, row, col, cell); err != nil {
		log.Error(ctx, "write failed", "row", row, "field", field, "error", err)
		return fmt.Errorf("update %s: %w", key, err)
	}

	log.Info(ctx, "record updated", "row", row, "field", field, "value", cell)
	return nil
}

// Delete re-locates key and removes its row. Rows below it move up, so any
// row number read before the call is stale afterwards.
func (l *Ledger) Delete(ctx context.Context, key models.Key) error {
	log := l.opLogger("delete", key)
	defer l.cache.Invalidate()

	row, err := l.resolver.Resolve(ctx, key)
	if err != nil {
		log.Warn(ctx, "delete not applied", "error", err)
		return fmt.Errorf("delete: %w", err)
	}

	if err := l.store.DeleteRow(ctx, row); err != nil {
		log.Error(ctx, "delete failed", "row", row, "error", err)
		return fmt.Errorf("delete %s: %w", key, err)
	}

	log.Info(ctx, "record deleted", "row", row)
	return nil
}

// Invalidate drops the current snapshot.
func (l *Ledger) Invalidate() {
	l.cache.Invalidate()
}
