package models

import (
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout  = "02/01/2006"
	ClockLayout = "15:04"
)

// Record is one wash job. Values are only changed through the ledger.
type Record struct {
	// Date is the calendar day the job was registered, at midnight UTC.
	Date time.Time

	// CreatedTime is the registration time-of-day (HH:MM).
	CreatedTime string

	Brand    string
	WashType string

	// DeliveryTime is the promised completion time (HH:MM), empty if none.
	DeliveryTime string

	Price float64

	// PaymentMethod is PaymentPending until the job is closed out.
	PaymentMethod string
}

// NewRecord builds a record from operator input. The price is normalized
// and a missing payment method becomes PaymentPending; nothing else is
// validated here.
func NewRecord(date time.Time, createdTime, brand, washType, deliveryTime, price, paymentMethod string) Record {
	return Record{
		Date:          Day(date),
		CreatedTime:   strings.TrimSpace(createdTime),
		Brand:         strings.TrimSpace(brand),
		WashType:      strings.TrimSpace(washType),
		DeliveryTime:  strings.TrimSpace(deliveryTime),
		Price:         NormalizePrice(price),
		PaymentMethod: normalizePayment(paymentMethod),
	}
}

// Key returns the record's composite natural key scoped to its date.
func (r Record) Key() Key {
	return Key{Date: r.Date, CreatedTime: r.CreatedTime, Brand: r.Brand, WashType: r.WashType}
}

// IsPaid reports whether a payment method has been recorded.
func (r Record) IsPaid() bool {
	return r.PaymentMethod != PaymentPending
}

func (r Record) String() string {
	return fmt.Sprintf("%s %s %s / %s %s [%s]",
		r.Date.Format(DateLayout), r.CreatedTime, r.Brand, r.WashType, FormatPrice(r.Price), r.PaymentMethod)
}

// Day truncates t to its calendar date at midnight UTC, keeping the
// year/month/day t shows in its own location.
func Day(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a dd/mm/yyyy date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// ParseClock validates an H:MM or HH:MM time and returns it zero-padded.
func ParseClock(s string) (string, bool) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return "", false
	}
	return t.Format(ClockLayout), true
}

func normalizePayment(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, PaymentPending) {
		return PaymentPending
	}
	return s
}
