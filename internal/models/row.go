package models

import "strings"

// Grid column titles, in wire order.
const (
	ColDate          = "Date"
	ColCreatedTime   = "RegisteredTime"
	ColBrand         = "Brand"
	ColWashType      = "WashType"
	ColDeliveryTime  = "DeliveryTime"
	ColPrice         = "Price"
	ColPaymentMethod = "PaymentMethod"
)

// Columns is the fixed row schema of the ledger grid.
var Columns = []string{ColDate, ColCreatedTime, ColBrand, ColWashType, ColDeliveryTime, ColPrice, ColPaymentMethod}

// ColumnIndex returns the 1-based grid column of a title, or 0.
func ColumnIndex(title string) int {
	for i, c := range Columns {
		if c == title {
			return i + 1
		}
	}
	return 0
}

// FieldColumn maps an editable field to its 1-based grid column.
func FieldColumn(f Field) (int, bool) {
	switch f {
	case FieldPrice:
		return ColumnIndex(ColPrice), true
	case FieldPaymentMethod:
		return ColumnIndex(ColPaymentMethod), true
	case FieldDeliveryTime:
		return ColumnIndex(ColDeliveryTime), true
	default:
		return 0, false
	}
}

// FieldValue returns the cell text written for a field update.
func FieldValue(f Field, v string) string {
	switch f {
	case FieldPrice:
		return FormatPrice(NormalizePrice(v))
	case FieldPaymentMethod:
		if p := normalizePayment(v); p != PaymentPending {
			return p
		}
		return ""
	default:
		return strings.TrimSpace(v)
	}
}

// ToRow encodes r as grid cell values in Columns order.
func (r Record) ToRow() []string {
	date := ""
	if !r.Date.IsZero() {
		date = r.Date.Format(DateLayout)
	}
	pay := r.PaymentMethod
	if pay == PaymentPending {
		pay = ""
	}
	return []string{date, r.CreatedTime, r.Brand, r.WashType, r.DeliveryTime, FormatPrice(r.Price), pay}
}

// FromRow decodes a header-keyed row. Price and payment method are
// normalized; an unparsable date leaves Date zero and is reported through
// the returned error, which callers may treat as a warning.
func FromRow(row map[string]string) (Record, error) {
	r := Record{
		CreatedTime:   strings.TrimSpace(row[ColCreatedTime]),
		Brand:         strings.TrimSpace(row[ColBrand]),
		WashType:      strings.TrimSpace(row[ColWashType]),
		DeliveryTime:  strings.TrimSpace(row[ColDeliveryTime]),
		Price:         NormalizePrice(row[ColPrice]),
		PaymentMethod: normalizePayment(row[ColPaymentMethod]),
	}

	if raw := strings.TrimSpace(row[ColDate]); raw != "" {
		d, err := ParseDate(raw)
		if err != nil {
			return r, err
		}
		r.Date = d
	}
	return r, nil
}
