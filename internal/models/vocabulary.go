package models

import "strings"

// Brands is the list of vehicle makes offered by the registration form.
// BrandOther is the catch-all for anything not listed.
var Brands = []string{
	"Abarth", "Acura", "Alfa Romeo", "Aston Martin", "Audi", "Bentley", "BMW", "Bugatti",
	"Cadillac", "Chevrolet", "Chrysler", "Citroën", "Cupra", "Dacia", "Daewoo", "Daihatsu",
	"Dodge", "DS", "Ferrari", "Fiat", "Ford", "Genesis", "GMC", "Honda", "Hummer", "Hyundai",
	"Infiniti", "Isuzu", "Jaguar", "Jeep", "Kia", "Koenigsegg", "Lamborghini", "Lancia",
	"Land Rover", "Lexus", "Lotus", "Maserati", "Maybach", "Mazda", "McLaren", "Mercedes-Benz",
	"Mini", "Mitsubishi", "Nissan", "Opel", "Pagani", "Peugeot", "Porsche", "Ram", "Renault",
	"Rolls-Royce", "Saab", "Seat", "Skoda", "Smart", "SsangYong", "Subaru", "Suzuki", "Tesla",
	"Toyota", "Volkswagen", "Volvo", "BYD", "Chery", "Geely", "Great Wall", "MG", "Nio",
	"Polestar", "Xpeng", BrandOther,
}

const BrandOther = "Other"

// Wash types.
const (
	WashOutside       = "Outside only"
	WashInside        = "Inside only"
	WashFull          = "Inside and outside"
	WashSeatSanitizer = "Seat sanitizing"
)

var WashTypes = []string{WashOutside, WashInside, WashFull, WashSeatSanitizer}

// Payment methods. PaymentPending marks a job that has not been closed out;
// it is stored as an empty cell.
const (
	PaymentCash       = "Cash"
	PaymentSatispay   = "Satispay"
	PaymentCreditCard = "Credit card"

	PaymentPending = "Pending"
)

var PaymentMethods = []string{PaymentCash, PaymentSatispay, PaymentCreditCard}

// PricePresets are the amounts offered as one-tap choices; any other
// non-negative amount may be typed in.
var PricePresets = []float64{5, 8, 10, 15, 17, 18, 20, 25, 30, 40, 80, 90}

// Operating hours bound the delivery times the form accepts.
const (
	OpeningTime = "08:00"
	ClosingTime = "20:00"
)

// MatchBrand returns the canonical spelling of a brand, ignoring case and
// surrounding spaces.
func MatchBrand(s string) (string, bool) {
	return match(Brands, s)
}

// MatchWashType returns the canonical wash type for s.
func MatchWashType(s string) (string, bool) {
	return match(WashTypes, s)
}

// MatchPaymentMethod returns the canonical payment method for s. An empty
// input or "pending" maps to PaymentPending.
func MatchPaymentMethod(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, PaymentPending) {
		return PaymentPending, true
	}
	return match(PaymentMethods, s)
}

// WithinOpeningHours reports whether an HH:MM time falls inside the
// operating window, bounds included.
func WithinOpeningHours(hhmm string) bool {
	t, ok := ParseClock(hhmm)
	if !ok {
		return false
	}
	return t >= OpeningTime && t <= ClosingTime
}

func match(list []string, s string) (string, bool) {
	s = strings.TrimSpace(s)
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return v, true
		}
	}
	return "", false
}
