package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/washledger/internal/models"
)

// DefaultPageLines is the page length used when none is configured.
const DefaultPageLines = 60

const minPageLines = 8

// WriteDocument renders the day as fixed-width text split into pages of
// pageLines lines. Each page ends with a "Page i of n" footer and pages
// are separated by a form feed.
func WriteDocument(w io.Writer, d DayReport, pageLines int) error {
	if pageLines <= 0 {
		pageLines = DefaultPageLines
	}
	if pageLines < minPageLines {
		pageLines = minPageLines
	}

	body := documentLines(d)
	per := pageLines - 2
	pages := (len(body) + per - 1) / per

	bw := bufio.NewWriter(w)
	for p := 0; p < pages; p++ {
		if p > 0 {
			bw.WriteString("\f")
		}
		end := min((p+1)*per, len(body))
		for _, line := range body[p*per : end] {
			bw.WriteString(line)
			bw.WriteString("\n")
		}
		fmt.Fprintf(bw, "\nPage %d of %d\n", p+1, pages)
	}
	return bw.Flush()
}

const lineFormat = "%-5s  %-16s  %-18s  %-8s  %9s  %-11s"

func documentLines(d DayReport) []string {
	lines := []string{
		fmt.Sprintf("Car wash daily report  %s", d.Date.Format(models.DateLayout)),
		"",
		fmt.Sprintf(lineFormat, "Time", "Brand", "Wash", "Delivery", "Price", "Payment"),
		strings.Repeat("-", 78),
	}

	for _, r := range d.Records {
		lines = append(lines, fmt.Sprintf(lineFormat,
			r.CreatedTime, clip(r.Brand, 16), clip(r.WashType, 18), r.DeliveryTime,
			models.FormatPrice(r.Price), r.PaymentMethod))
	}

	lines = append(lines,
		strings.Repeat("-", 78),
		fmt.Sprintf("Washes: %d", d.Totals.Count),
		fmt.Sprintf("Total:  %s", models.FormatPrice(d.Totals.Sum)),
		"",
	)
	for _, m := range d.Methods {
		lines = append(lines, fmt.Sprintf("  %-12s %9s", m, models.FormatPrice(d.ByMethod[m])))
	}
	return lines
}

func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
