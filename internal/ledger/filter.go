package ledger

import (
	"time"

	"github.com/dmitrijs2005/washledger/internal/models"
)

// Filter selects records for List.
type Filter func(models.Record) bool

func All() Filter {
	return func(models.Record) bool { return true }
}

// OnDate keeps records registered on the calendar day of day.
func OnDate(day time.Time) Filter {
	d := models.Day(day)
	return func(r models.Record) bool { return r.Date.Equal(d) }
}

// Between keeps records dated from..to, both days included.
func Between(from, to time.Time) Filter {
	f, t := models.Day(from), models.Day(to)
	return func(r models.Record) bool {
		return !r.Date.IsZero() && !r.Date.Before(f) && !r.Date.After(t)
	}
}
