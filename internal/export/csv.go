package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/dmitrijs2005/washledger/internal/models"
)

// WriteCSV writes the day's rows in sheet column order followed by a blank
// line, a totals line and one line per payment method.
func WriteCSV(w io.Writer, d DayReport) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(models.Columns); err != nil {
		return fmt.Errorf("csv header: %w", err)
	}
	for _, r := range d.Records {
		row := r.ToRow()
		if !r.IsPaid() {
			row[len(row)-1] = models.PaymentPending
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("csv row: %w", err)
		}
	}

	footer := [][]string{
		{},
		{"Total", strconv.Itoa(d.Totals.Count), models.FormatPrice(d.Totals.Sum)},
	}
	for _, m := range d.Methods {
		footer = append(footer, []string{m, "", models.FormatPrice(d.ByMethod[m])})
	}
	if err := cw.WriteAll(footer); err != nil {
		return fmt.Errorf("csv totals: %w", err)
	}
	return nil
}
