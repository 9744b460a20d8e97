package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alexacafe/pos-api/internal/application/state"
	"github.com/alexacafe/pos-api/internal/domain/entity"
	infraRepo "github.com/alexacafe/pos-api/internal/infrastructure/repository"
	"github.com/alexacafe/pos-api/pkg/apperror"
)

func newTestExportService() (*state.Store, *ExportService) {
	store := state.New(infraRepo.NewMemoryStore())
	return store, NewExportService(store, "₱")
}

func exportHistory() []entity.Receipt {
	return []entity.Receipt{
		{
			OrderNumber:  "AB12CD",
			CustomerName: "Ana",
			Items:        []entity.ReceiptItem{{Name: "Iced Coffee", Size: "12 oz", UnitPrice: 12000, Quantity: 1}},
			Total:        12000,
			Date:         time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local),
		},
		{
			OrderNumber:  "EF34GH",
			CustomerName: "Ben",
			Items:        []entity.ReceiptItem{{Name: "Matcha", Size: "16 oz", UnitPrice: 16000, Quantity: 1}},
			Total:        16000,
			Date:         time.Date(2024, time.March, 2, 0, 0, 0, 0, time.Local),
		},
	}
}

func TestRevenueSumsAnyHistory(t *testing.T) {
	if got := Revenue(nil); got != 0 {
		t.Fatalf("expected 0 for empty history, got %s", got.Format())
	}

	// Zero-total receipts count toward the sum without failing anything.
	history := append(exportHistory(), entity.Receipt{
		OrderNumber:  "IJ56KL",
		CustomerName: "Cara",
		Total:        0,
		Date:         time.Date(2024, time.March, 3, 0, 0, 0, 0, time.Local),
	})
	if got := Revenue(history); got != 28000 {
		t.Fatalf("expected 280.00, got %s", got.Format())
	}
}

func TestToCSVEmptyHistory(t *testing.T) {
	_, svc := newTestExportService()

	got, err := svc.ToCSV(nil, 0)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if got != "Date,Order ID,Customer Name,Total\n\nTotal Revenue,,,0.00\n" {
		t.Fatalf("unexpected CSV: %q", got)
	}
}

func TestToCSVFormat(t *testing.T) {
	_, svc := newTestExportService()

	got, err := svc.ToCSV(exportHistory(), 28000)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	want := "Date,Order ID,Customer Name,Total\n" +
		"2024-03-01,AB12CD,Ana,120.00\n" +
		"2024-03-02,EF34GH,Ben,160.00\n" +
		"\nTotal Revenue,,,280.00\n"
	if got != want {
		t.Fatalf("CSV mismatch:\n got: %q\nwant: %q", got, want)
	}
}

func TestToTextFormat(t *testing.T) {
	_, svc := newTestExportService()

	got, err := svc.ToText(exportHistory(), 28000)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	separator := strings.Repeat("-", 40) + "\n"
	want := "Sales Report\n\n" +
		"Date | Order ID | Customer Name | Total\n" +
		separator +
		"2024-03-01 | AB12CD   | Ana                  | ₱    120.00\n" +
		"2024-03-02 | EF34GH   | Ben                  | ₱    160.00\n" +
		separator +
		"Total Revenue:" + strings.Repeat(" ", 44) + "₱    280.00\n"
	if got != want {
		t.Fatalf("text report mismatch:\n got: %q\nwant: %q", got, want)
	}
}

func TestExportRejectsIncompleteRecords(t *testing.T) {
	_, svc := newTestExportService()

	broken := exportHistory()
	broken[1].OrderNumber = ""

	if _, err := svc.ToCSV(broken, 28000); !apperror.IsKind(err, apperror.KindValidation) {
		t.Fatalf("expected validation error from ToCSV, got %v", err)
	}
	if _, err := svc.ToText(broken, 28000); !apperror.IsKind(err, apperror.KindValidation) {
		t.Fatalf("expected validation error from ToText, got %v", err)
	}
}

func TestCSVRoundTrip(t *testing.T) {
	store, svc := newTestExportService()
	ctx := context.Background()

	original := exportHistory()
	csv, err := svc.ToCSV(original, 28000)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	imported, err := svc.ImportCSV(ctx, csv)
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if len(imported) != len(original) {
		t.Fatalf("expected %d records, got %d", len(original), len(imported))
	}

	for i, r := range imported {
		want := original[i]
		if r.OrderNumber != want.OrderNumber || r.CustomerName != want.CustomerName || r.Total != want.Total {
			t.Fatalf("record %d mismatch: got %+v", i, r)
		}
		if len(r.Items) != 0 {
			t.Fatalf("imported records must carry no line items")
		}
	}

	if len(store.PurchaseHistory()) != len(original) {
		t.Fatalf("imported records must be appended to history")
	}
}

func TestImportCSVRejectsMalformedRows(t *testing.T) {
	_, svc := newTestExportService()
	ctx := context.Background()

	cases := []string{
		"Date,Order ID,Customer Name,Total\n2024-03-01,AB12CD,Ana,not-a-number\n",
		"Date,Order ID,Customer Name,Total\n2024-03-01,,Ana,120.00\n",
		"Date,Order ID,Customer Name,Total\n2024-03-01,AB12CD,Ana\n",
	}
	for _, text := range cases {
		if _, err := svc.ImportCSV(ctx, text); !apperror.IsKind(err, apperror.KindFormat) {
			t.Fatalf("expected format error for %q, got %v", text, err)
		}
	}
}

func TestImportCSVNoDedup(t *testing.T) {
	store, svc := newTestExportService()
	ctx := context.Background()

	text := "Date,Order ID,Customer Name,Total\n" +
		"2024-03-01,AB12CD,Ana,120.00\n" +
		"2024-03-01,AB12CD,Ana,120.00\n"
	imported, err := svc.ImportCSV(ctx, text)
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if len(imported) != 2 || len(store.PurchaseHistory()) != 2 {
		t.Fatalf("duplicate order numbers must both import")
	}
}

func TestFileNameCarriesDateAndFormat(t *testing.T) {
	_, svc := newTestExportService()
	svc.now = func() time.Time { return time.Date(2024, time.March, 5, 14, 30, 0, 0, time.Local) }

	if got := svc.FileName("csv"); got != "sales_report_2024-03-05.csv" {
		t.Fatalf("unexpected file name %q", got)
	}
}
