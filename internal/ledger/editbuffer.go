package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/washledger/internal/common"
	"github.com/dmitrijs2005/washledger/internal/models"
)

// Edit is a change staged by the operator but not yet written.
type Edit struct {
	Key   models.Key
	Field models.Field
	Value string
}

// Mutator is what an EditBuffer writes through; *Ledger satisfies it.
type Mutator interface {
	UpdateField(ctx context.Context, key models.Key, field models.Field, value string) error
	Delete(ctx context.Context, key models.Key) error
}

// EditBuffer holds at most one pending edit per record, keyed by the
// record's composite key and never by its row.
type EditBuffer struct {
	target Mutator
	edits  map[string]Edit
	order  []string
}

func NewEditBuffer(target Mutator) *EditBuffer {
	return &EditBuffer{target: target, edits: map[string]Edit{}}
}

// Stage records an edit, replacing any earlier one for the same record.
func (b *EditBuffer) Stage(key models.Key, field models.Field, value string) error {
	if _, ok := models.FieldColumn(field); !ok {
		return fmt.Errorf("stage %q: %w", field, common.ErrInvalidField)
	}

	id := key.String()
	if _, ok := b.edits[id]; !ok {
		b.order = append(b.order, id)
	}
	b.edits[id] = Edit{Key: key, Field: field, Value: value}
	return nil
}

// Staged returns the edit currently staged for key, if any.
func (b *EditBuffer) Staged(key models.Key) (Edit, bool) {
	e, ok := b.edits[key.String()]
	return e, ok
}

// Pending lists staged edits in the order their records were first staged.
func (b *EditBuffer) Pending() []Edit {
	out := make([]Edit, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, b.edits[id])
	}
	return out
}

// Discard drops the edit staged for key, reporting whether there was one.
func (b *EditBuffer) Discard(key models.Key) bool {
	id := key.String()
	if _, ok := b.edits[id]; !ok {
		return false
	}
	delete(b.edits, id)
	for i, o := range b.order {
		if o == id {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return true
}

// Flush writes every staged edit. Edits that fail stay staged and their
// errors are joined into the result.
func (b *EditBuffer) Flush(ctx context.Context) (int, error) {
	var (
		applied int
		errs    []error
	)
	for _, e := range b.Pending() {
		if err := b.target.UpdateField(ctx, e.Key, e.Field, e.Value); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", e.Key, err))
			continue
		}
		b.Discard(e.Key)
		applied++
	}
	return applied, errors.Join(errs...)
}

// Delete removes the record and whatever edit was staged for it. The edit
// is also dropped when the record no longer exists.
func (b *EditBuffer) Delete(ctx context.Context, key models.Key) error {
	err := b.target.Delete(ctx, key)
	if err == nil || errors.Is(err, common.ErrorNotFound) {
		b.Discard(key)
	}
	return err
}
