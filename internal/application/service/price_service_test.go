package service

import (
	"context"
	"testing"

	"github.com/alexacafe/pos-api/internal/application/state"
	"github.com/alexacafe/pos-api/internal/domain/entity"
	"github.com/alexacafe/pos-api/internal/domain/enum"
	infraRepo "github.com/alexacafe/pos-api/internal/infrastructure/repository"
	"github.com/alexacafe/pos-api/pkg/apperror"
)

func newTestPrices() *PriceService {
	return NewPriceService(state.New(infraRepo.NewMemoryStore()))
}

func TestReplaceSwapsWholeTable(t *testing.T) {
	svc := newTestPrices()
	ctx := context.Background()

	table := entity.PriceTable{}
	table.Set("Coffee", "Iced Coffee", enum.Size12oz, 13500)
	table.Set("Smoothies", "Mango Shake", enum.Size16oz, 17000)

	clamped, err := svc.Replace(ctx, table)
	if err != nil {
		t.Fatalf("replace failed: %v", err)
	}
	if clamped {
		t.Fatal("no negative entries, clamp flag should be false")
	}

	if got := svc.Price(ctx, "Coffee", "Iced Coffee", enum.Size12oz); got != 13500 {
		t.Fatalf("expected 135.00, got %s", got.Format())
	}
	if got := svc.Price(ctx, "Smoothies", "Mango Shake", enum.Size16oz); got != 17000 {
		t.Fatalf("expected 170.00, got %s", got.Format())
	}
	// Seeded entries not present in the replacement are gone.
	if got := svc.Price(ctx, "Milk Tea", "Wintermelon", enum.Size12oz); got != 0 {
		t.Fatalf("expected replaced table to drop old entries, got %s", got.Format())
	}
}

func TestReplaceClampsNegativeEntries(t *testing.T) {
	svc := newTestPrices()
	ctx := context.Background()

	table := entity.PriceTable{
		"Coffee": {"Iced Coffee": {enum.Size12oz: -500}},
	}
	clamped, err := svc.Replace(ctx, table)
	if err != nil {
		t.Fatalf("replace failed: %v", err)
	}
	if !clamped {
		t.Fatal("expected clamp flag for negative price")
	}
	if got := svc.Price(ctx, "Coffee", "Iced Coffee", enum.Size12oz); got != 0 {
		t.Fatalf("expected clamped zero, got %s", got.Format())
	}
}

func TestReplaceRejectsNilTableAndUnknownSize(t *testing.T) {
	svc := newTestPrices()
	ctx := context.Background()

	if _, err := svc.Replace(ctx, nil); !apperror.IsKind(err, apperror.KindValidation) {
		t.Fatalf("expected validation error for nil table, got %v", err)
	}

	table := entity.PriceTable{
		"Coffee": {"Iced Coffee": {enum.Size("2 gal"): 1000}},
	}
	if _, err := svc.Replace(ctx, table); !apperror.IsKind(err, apperror.KindValidation) {
		t.Fatalf("expected validation error for unknown size, got %v", err)
	}
	// A rejected replace must not touch the current table.
	if got := svc.Price(ctx, "Coffee", "Iced Coffee", enum.Size12oz); got != 12000 {
		t.Fatalf("expected seeded price intact, got %s", got.Format())
	}
}
