package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/washledger/internal/export"
	"github.com/dmitrijs2005/washledger/internal/filex"
	"github.com/dmitrijs2005/washledger/internal/ledger"
	"github.com/dmitrijs2005/washledger/internal/models"
	"github.com/dmitrijs2005/washledger/internal/report"
)

// Add asks for the wash details and registers the wash at the current time.
func (a *App) Add(ctx context.Context) error {
	brand, err := GetSimpleText(a.reader, "Brand (or 'Other')", a.out)
	if err != nil {
		return err
	}
	canonical, ok := models.MatchBrand(brand)
	if !ok {
		return fmt.Errorf("unknown brand %q, use 'Other'", brand)
	}

	washType, err := GetChoice(a.reader, "Wash type", models.WashTypes, models.MatchWashType, false, a.out)
	if err != nil {
		return err
	}

	price, err := GetSimpleText(a.reader, "Price ("+presetList()+" or any amount)", a.out)
	if err != nil {
		return err
	}

	delivery, err := GetSimpleText(a.reader, fmt.Sprintf("Delivery time HH:MM, %s-%s (empty for none)", models.OpeningTime, models.ClosingTime), a.out)
	if err != nil {
		return err
	}
	if delivery, err = checkDelivery(delivery); err != nil {
		return err
	}

	pay, err := GetChoice(a.reader, "Payment (empty if not paid yet)", models.PaymentMethods, models.MatchPaymentMethod, true, a.out)
	if err != nil {
		return err
	}

	now := a.now()
	r := models.NewRecord(now, now.Format(models.ClockLayout), canonical, washType, delivery, price, pay)
	if err := a.ledger.Create(ctx, r); err != nil {
		return err
	}

	a.println("Registered:", r)
	return a.list(ctx, a.today())
}

// Today lists the washes registered today.
func (a *App) Today(ctx context.Context) error {
	return a.list(ctx, a.today())
}

// Day lists the washes of the given date.
func (a *App) Day(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: day <dd/mm/yyyy>")
	}
	d, err := models.ParseDate(args[0])
	if err != nil {
		return err
	}
	return a.list(ctx, d)
}

func (a *App) list(ctx context.Context, day time.Time) error {
	records, err := a.ledger.List(ctx, ledger.OnDate(day))
	if err != nil {
		return err
	}

	a.shown = records
	a.shownDate = day

	a.printf("Washes on %s\n", day.Format(models.DateLayout))
	if len(records) == 0 {
		a.println("  none")
		return nil
	}
	for i, r := range records {
		a.printf("%3d  %-5s  %-16s  %-18s  %-5s  %8s  %s\n",
			i+1, r.CreatedTime, r.Brand, r.WashType, r.DeliveryTime, models.FormatPrice(r.Price), r.PaymentMethod)
	}
	return nil
}

// keyAt maps a display number of the last listing to the record's key.
func (a *App) keyAt(arg string) (models.Key, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(a.shown) {
		return models.Key{}, fmt.Errorf("no row %q in the last listing", arg)
	}
	return a.shown[n-1].Key(), nil
}

// Edit stages one change for a listed row; it is written by Save.
func (a *App) Edit(ctx context.Context, args []string) error {
	if len(args) < 3 {
		return errors.New("usage: edit <n> <price|pay|delivery> <value>")
	}
	key, err := a.keyAt(args[0])
	if err != nil {
		return err
	}
	value := strings.Join(args[2:], " ")

	var field models.Field
	switch strings.ToLower(args[1]) {
	case "price":
		field = models.FieldPrice
		value = models.FormatPrice(models.NormalizePrice(value))
	case "pay", "payment":
		field = models.FieldPaymentMethod
		m, ok := models.MatchPaymentMethod(value)
		if !ok {
			return fmt.Errorf("unknown payment method %q", value)
		}
		value = m
	case "delivery":
		field = models.FieldDeliveryTime
		if value, err = checkDelivery(value); err != nil {
			return err
		}
	default:
		return fmt.Errorf("cannot edit %q: %w", args[1], errInvalidEdit)
	}

	prev, replaced := a.edits.Staged(key)
	if err := a.edits.Stage(key, field, value); err != nil {
		return err
	}
	if replaced && prev.Field != field {
		a.printf("Replaced staged %s = %s for %s\n", prev.Field, prev.Value, key)
	}
	a.printf("Staged %s = %s for %s (type 'save' to write)\n", field, value, key)
	return nil
}

var errInvalidEdit = errors.New("use price, pay or delivery")

// Pending shows the staged changes.
func (a *App) Pending(ctx context.Context) error {
	edits := a.edits.Pending()
	if len(edits) == 0 {
		a.println("No unsaved changes")
		return nil
	}
	for _, e := range edits {
		a.printf("  %s: %s = %s\n", e.Key, e.Field, e.Value)
	}
	return nil
}

// Unsaved is the number of staged changes.
func (a *App) Unsaved() int {
	return len(a.edits.Pending())
}

// Save writes every staged change and lists the day again.
func (a *App) Save(ctx context.Context) error {
	n, err := a.edits.Flush(ctx)
	a.printf("%d change(s) saved\n", n)
	if err != nil {
		return err
	}
	return a.relist(ctx)
}

// Discard drops the staged change of a listed row.
func (a *App) Discard(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: discard <n>")
	}
	key, err := a.keyAt(args[0])
	if err != nil {
		return err
	}
	if !a.edits.Discard(key) {
		a.println("Nothing staged for", key)
		return nil
	}
	a.println("Dropped change for", key)
	return nil
}

// Delete removes a listed row after confirmation. The listing is refreshed
// because every row below the deleted one has moved.
func (a *App) Delete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: delete <n>")
	}
	key, err := a.keyAt(args[0])
	if err != nil {
		return err
	}

	answer, err := GetSimpleText(a.reader, fmt.Sprintf("Delete %s? (y/N)", key), a.out)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
		a.println("Not deleted")
		return nil
	}

	err = a.edits.Delete(ctx, key)
	a.shown = nil
	if err != nil {
		return err
	}
	a.println("Deleted", key)
	return a.relist(ctx)
}

func (a *App) relist(ctx context.Context) error {
	day := a.shownDate
	if day.IsZero() {
		day = a.today()
	}
	return a.list(ctx, day)
}

// DailyClose prints today's count, total and per-method totals.
func (a *App) DailyClose(ctx context.Context) error {
	records, err := a.ledger.List(ctx, ledger.OnDate(a.today()))
	if err != nil {
		return err
	}

	d := export.NewDayReport(records, a.today())
	a.printf("Closing %s\n", d.Date.Format(models.DateLayout))
	a.printf("  Washes: %d\n  Total:  %s\n", d.Totals.Count, models.FormatPrice(d.Totals.Sum))
	for _, m := range d.Methods {
		a.printf("  %-12s %9s\n", m, models.FormatPrice(d.ByMethod[m]))
	}

	if unpaid := countUnpaid(d.Records); unpaid > 0 {
		a.printf("Warning: %d wash(es) still without payment\n", unpaid)
	}
	return nil
}

// Week prints each of the last seven days and their total.
func (a *App) Week(ctx context.Context) error {
	end := a.today()
	records, err := a.ledger.List(ctx, ledger.Between(end.AddDate(0, 0, -(report.WeekDays-1)), end))
	if err != nil {
		return err
	}

	for _, d := range report.WeeklyBreakdown(records, end) {
		a.printf("  %s %s  %3d  %9s\n", d.Date.Format("Mon"), d.Date.Format(models.DateLayout), d.Count, models.FormatPrice(d.Sum))
	}
	t := report.WeeklyTotals(records, end)
	a.printf("  Week total      %3d  %9s\n", t.Count, models.FormatPrice(t.Sum))
	return nil
}

// Export writes a day's report into the export directory.
func (a *App) Export(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return errors.New("usage: export <csv|doc> [dd/mm/yyyy]")
	}

	day := a.today()
	if len(args) == 2 {
		d, err := models.ParseDate(args[1])
		if err != nil {
			return err
		}
		day = d
	}

	format := strings.ToLower(args[0])
	ext, ok := map[string]string{"csv": "csv", "doc": "txt"}[format]
	if !ok {
		return fmt.Errorf("unknown export format %q", args[0])
	}

	records, err := a.ledger.List(ctx, ledger.OnDate(day))
	if err != nil {
		return err
	}
	d := export.NewDayReport(records, day)

	dir, err := filex.EnsureDir(a.config.ExportDir)
	if err != nil {
		return err
	}
	path := filepath.Join(dir, export.FileName(day, ext))

	err = filex.WriteFile(path, func(w io.Writer) error {
		if format == "csv" {
			return export.WriteCSV(w, d)
		}
		return export.WriteDocument(w, d, a.config.PageLines)
	})
	if err != nil {
		return err
	}
	a.println("Written", path)
	return nil
}

func checkDelivery(s string) (string, error) {
	if strings.TrimSpace(s) == "" {
		return "", nil
	}
	t, ok := models.ParseClock(s)
	if !ok {
		return "", fmt.Errorf("delivery time %q is not HH:MM", s)
	}
	if !models.WithinOpeningHours(t) {
		return "", fmt.Errorf("delivery time %s is outside %s-%s", t, models.OpeningTime, models.ClosingTime)
	}
	return t, nil
}

func presetList() string {
	parts := make([]string, len(models.PricePresets))
	for i, p := range models.PricePresets {
		parts[i] = strconv.FormatFloat(p, 'f', -1, 64)
	}
	return strings.Join(parts, ", ")
}

func countUnpaid(records []models.Record) int {
	n := 0
	for _, r := range records {
		if !r.IsPaid() {
			n++
		}
	}
	return n
}
