// Package report computes the till's daily and weekly figures. Every
// function is pure: it only reads the records it is given.
//
// Sums are plain float64 additions over prices that were already rounded
// to cents when read.
package report

import (
	"sort"
	"time"

	"github.com/dmitrijs2005/washledger/internal/models"
)

// WeekDays is the length of the trailing weekly window, as_of included.
const WeekDays = 7

type Totals struct {
	Count int
	Sum   float64
}

func (t *Totals) add(r models.Record) {
	t.Count++
	t.Sum += r.Price
}

// DayTotals is one calendar day of a weekly breakdown.
type DayTotals struct {
	Date time.Time
	Totals
}

// DailyTotals counts and sums the records registered on date. Records are
// matched by the calendar date their Date shows, whatever its clock or zone.
func DailyTotals(records []models.Record, date time.Time) Totals {
	day := models.Day(date)
	var t Totals
	for _, r := range records {
		if models.Day(r.Date).Equal(day) {
			t.add(r)
		}
	}
	return t
}

// TotalsByPaymentMethod sums the prices of date's records per payment
// method. Every known method is present, zero when unused; methods seen in
// the records but not known are added so the figures reconcile with
// DailyTotals.
func TotalsByPaymentMethod(records []models.Record, date time.Time, known []string) map[string]float64 {
	day := models.Day(date)
	out := make(map[string]float64, len(known))
	for _, m := range known {
		out[m] = 0
	}
	for _, r := range records {
		if models.Day(r.Date).Equal(day) {
			out[r.PaymentMethod] += r.Price
		}
	}
	return out
}

// Methods returns the keys of a by-method mapping: the known ones in their
// given order followed by any others sorted by name.
func Methods(byMethod map[string]float64, known []string) []string {
	out := make([]string, 0, len(byMethod))
	seen := make(map[string]bool, len(known))
	for _, m := range known {
		if _, ok := byMethod[m]; ok && !seen[m] {
			out = append(out, m)
			seen[m] = true
		}
	}

	var extra []string
	for m := range byMethod {
		if !seen[m] {
			extra = append(extra, m)
		}
	}
	sort.Strings(extra)
	return append(out, extra...)
}

// WeeklyTotals covers the seven days ending on asOf, both ends included.
func WeeklyTotals(records []models.Record, asOf time.Time) Totals {
	var t Totals
	for _, d := range WeeklyBreakdown(records, asOf) {
		t.Count += d.Count
		t.Sum += d.Sum
	}
	return t
}

// WeeklyBreakdown returns one entry per day of the window ending on asOf,
// oldest first.
func WeeklyBreakdown(records []models.Record, asOf time.Time) []DayTotals {
	end := models.Day(asOf)
	start := end.AddDate(0, 0, -(WeekDays - 1))

	days := make([]DayTotals, WeekDays)
	for i := range days {
		days[i].Date = start.AddDate(0, 0, i)
	}

	for _, r := range records {
		d := models.Day(r.Date)
		if d.IsZero() || d.Before(start) || d.After(end) {
			continue
		}
		i := int(d.Sub(start).Hours() / 24)
		days[i].add(r)
	}
	return days
}
