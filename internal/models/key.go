package models

import (
	"fmt"
	"time"
)

// Key is the composite natural key (registered time, brand, wash type) that
// re-locates a record in a grid without row ids. Date is optional: when set,
// only rows of that calendar day match.
type Key struct {
	Date        time.Time
	CreatedTime string
	Brand       string
	WashType    string
}

// Matches reports whether r carries this key.
func (k Key) Matches(r Record) bool {
	if r.CreatedTime != k.CreatedTime || r.Brand != k.Brand || r.WashType != k.WashType {
		return false
	}
	return k.Date.IsZero() || Day(k.Date).Equal(r.Date)
}

func (k Key) String() string {
	if k.Date.IsZero() {
		return fmt.Sprintf("%s/%s/%s", k.CreatedTime, k.Brand, k.WashType)
	}
	return fmt.Sprintf("%s %s/%s/%s", k.Date.Format(DateLayout), k.CreatedTime, k.Brand, k.WashType)
}

// Field names an editable record attribute.
type Field string

const (
	FieldPrice         Field = "price"
	FieldPaymentMethod Field = "payment_method"
	FieldDeliveryTime  Field = "delivery_time"
)
