// Package export writes a day's records and totals to files the owner can
// keep: a CSV table and a paginated plain-text document.
package export

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/washledger/internal/models"
	"github.com/dmitrijs2005/washledger/internal/report"
)

// DayReport is everything an export needs about one day.
type DayReport struct {
	Date     time.Time
	Records  []models.Record
	Totals   report.Totals
	ByMethod map[string]float64
	Methods  []string
}

// NewDayReport keeps the records of date and computes its totals.
func NewDayReport(records []models.Record, date time.Time) DayReport {
	day := models.Day(date)
	known := append(append([]string(nil), models.PaymentMethods...), models.PaymentPending)

	var own []models.Record
	for _, r := range records {
		if r.Date.Equal(day) {
			own = append(own, r)
		}
	}

	byMethod := report.TotalsByPaymentMethod(own, day, known)
	return DayReport{
		Date:     day,
		Records:  own,
		Totals:   report.DailyTotals(own, day),
		ByMethod: byMethod,
		Methods:  report.Methods(byMethod, known),
	}
}

// FileName is the conventional name of an export, e.g. washes-2026-10-15.csv.
func FileName(date time.Time, ext string) string {
	return fmt.Sprintf("washes-%s.%s", date.Format("2006-01-02"), ext)
}
