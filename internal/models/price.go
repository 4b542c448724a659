package models

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var priceNoise = regexp.MustCompile(`[^0-9.,]`)

// NormalizePrice turns a free-form amount such as "12,50 €" into a float with
// two-decimal semantics. It never fails: empty or unparsable input yields 0.
//
// Every character other than digits, '.' and ',' is dropped. The right-most
// separator is the decimal mark; earlier ones are thousands separators.
func NormalizePrice(raw string) float64 {
	s := priceNoise.ReplaceAllString(raw, "")
	if s == "" {
		return 0
	}

	if i := strings.LastIndexAny(s, ".,"); i >= 0 {
		intPart := strings.NewReplacer(".", "", ",", "").Replace(s[:i])
		frac := s[i+1:]
		if intPart == "" {
			intPart = "0"
		}
		s = intPart
		if frac != "" {
			s += "." + frac
		}
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}

	f, _ := d.Round(2).Float64()
	return f
}

// FormatPrice renders a price the way it is written to the grid.
func FormatPrice(p float64) string {
	return decimal.NewFromFloat(p).StringFixed(2)
}
