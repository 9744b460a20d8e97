package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexacafe/pos-api/internal/application/state"
	"github.com/alexacafe/pos-api/internal/domain/entity"
	"github.com/alexacafe/pos-api/pkg/apperror"
)

const (
	reportHeader = "Date | Order ID | Customer Name | Total\n"
	csvHeader    = "Date,Order ID,Customer Name,Total\n"
)

// ExportService renders the purchase history as CSV or a fixed-width text
// report, and imports previously exported CSV files back into history.
type ExportService struct {
	state          *state.Store
	currencySymbol string
	now            func() time.Time
}

// NewExportService creates a new export service
func NewExportService(st *state.Store, currencySymbol string) *ExportService {
	return &ExportService{state: st, currencySymbol: currencySymbol, now: time.Now}
}

// Revenue sums receipt totals for the export summary row. Unlike the sales
// aggregation it accepts any history, so an empty or degenerate history still
// exports a report with a zero summary.
func Revenue(history []entity.Receipt) entity.Money {
	var total entity.Money
	for i := range history {
		total += history[i].Total
	}
	return total
}

// ToCSV serializes purchases plus a trailing revenue summary row.
func (s *ExportService) ToCSV(history []entity.Receipt, totalRevenue entity.Money) (string, error) {
	if err := validateExportRecords(history); err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString(csvHeader)
	for i := range history {
		r := &history[i]
		fmt.Fprintf(&b, "%s,%s,%s,%s\n",
			r.Date.Format("2006-01-02"), r.OrderNumber, r.CustomerName, r.Total.Format())
	}
	fmt.Fprintf(&b, "\nTotal Revenue,,,%s\n", totalRevenue.Format())
	return b.String(), nil
}

// ToText renders a fixed-width table with a right-aligned revenue summary.
// Column widths are 10, 8, 20 and 10 characters; long values overflow their
// column rather than being truncated.
func (s *ExportService) ToText(history []entity.Receipt, totalRevenue entity.Money) (string, error) {
	if err := validateExportRecords(history); err != nil {
		return "", err
	}
	separator := strings.Repeat("-", len(reportHeader)) + "\n"
	var b strings.Builder
	b.WriteString("Sales Report\n\n")
	b.WriteString(reportHeader)
	b.WriteString(separator)
	for i := range history {
		r := &history[i]
		fmt.Fprintf(&b, "%-10s | %-8s | %-20s | %s%10s\n",
			r.Date.Format("2006-01-02"), r.OrderNumber, r.CustomerName,
			s.currencySymbol, r.Total.Format())
	}
	b.WriteString(separator)
	fmt.Fprintf(&b, "Total Revenue:%s%s%10s\n",
		strings.Repeat(" ", 44), s.currencySymbol, totalRevenue.Format())
	return b.String(), nil
}

// FileName builds the dated export file name for a format ("csv" or "txt").
func (s *ExportService) FileName(format string) string {
	return fmt.Sprintf("sales_report_%s.%s", s.now().Format("2006-01-02"), format)
}

// ImportCSV parses an exported CSV and appends its records to the purchase
// history. Imported receipts carry no line items; only the order number,
// customer name, total and date survive a CSV round trip. The whole import
// fails on the first malformed row. Blank lines and the trailing revenue
// summary row are skipped so our own exports re-import cleanly. No
// de-duplication by order number is attempted.
func (s *ExportService) ImportCSV(ctx context.Context, text string) ([]entity.Receipt, error) {
	rows := strings.Split(text, "\n")
	if len(rows) > 0 {
		rows = rows[1:] // header
	}

	var imported []entity.Receipt
	for _, row := range rows {
		if strings.TrimSpace(row) == "" || strings.HasPrefix(row, "Total Revenue,") {
			continue
		}
		fields := strings.Split(row, ",")
		if len(fields) < 4 || fields[0] == "" || fields[1] == "" || fields[2] == "" {
			return nil, apperror.NewFormatError("Invalid CSV data format")
		}
		total, err := entity.ParseMoney(fields[3])
		if err != nil {
			return nil, apperror.NewFormatError("Invalid CSV data format")
		}
		date, err := time.ParseInLocation("2006-01-02", fields[0], time.Local)
		if err != nil {
			return nil, apperror.NewFormatError("Invalid date in CSV data")
		}
		imported = append(imported, entity.Receipt{
			OrderNumber:   fields[1],
			CustomerName:  fields[2],
			Total:         total,
			Date:          date,
			Items:         []entity.ReceiptItem{},
			PaymentMethod: entity.PaymentMethodCash,
		})
	}

	for _, r := range imported {
		s.state.AppendPurchase(ctx, r)
	}
	return imported, nil
}

func validateExportRecords(history []entity.Receipt) error {
	for i := range history {
		r := &history[i]
		if r.OrderNumber == "" || r.CustomerName == "" || r.Date.IsZero() {
			return apperror.NewValidationError("Purchase record is missing an order number, customer name, or date")
		}
	}
	return nil
}
