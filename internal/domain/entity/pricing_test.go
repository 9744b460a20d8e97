package entity

import (
	"testing"

	"github.com/alexacafe/pos-api/internal/domain/enum"
)

func TestGetAbsentPriceIsZero(t *testing.T) {
	table := PriceTable{}
	if got := table.Get("Coffee", "Iced Coffee", enum.Size12oz); got != 0 {
		t.Fatalf("absent price must be zero, got %s", got.Format())
	}
}

func TestSetClampsNegativePrices(t *testing.T) {
	table := PriceTable{}
	clamped := table.Set("Coffee", "Iced Coffee", enum.Size12oz, -500)
	if !clamped {
		t.Fatalf("negative price must report a clamp")
	}
	if got := table.Get("Coffee", "Iced Coffee", enum.Size12oz); got != 0 {
		t.Fatalf("clamped price must be zero, got %s", got.Format())
	}

	if table.Set("Coffee", "Iced Coffee", enum.Size12oz, 12000) {
		t.Fatalf("valid price must not report a clamp")
	}
}

func TestInitItemSeedsAllThreeSizes(t *testing.T) {
	table := PriceTable{}
	table.InitItem("Coffee", "Iced Coffee")

	prices := table["Coffee"]["Iced Coffee"]
	if len(prices) != 3 {
		t.Fatalf("expected three sizes, got %d", len(prices))
	}
	for _, size := range enum.Sizes() {
		if price, ok := prices[size]; !ok || price != 0 {
			t.Fatalf("size %s must default to zero", size)
		}
	}

	// Re-init must not wipe existing prices.
	table.Set("Coffee", "Iced Coffee", enum.Size16oz, 14000)
	table.InitItem("Coffee", "Iced Coffee")
	if got := table.Get("Coffee", "Iced Coffee", enum.Size16oz); got != 14000 {
		t.Fatalf("re-init wiped the price, got %s", got.Format())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	table := PriceTable{}
	table.Set("Coffee", "Iced Coffee", enum.Size12oz, 12000)

	clone := table.Clone()
	clone.Set("Coffee", "Iced Coffee", enum.Size12oz, 99900)

	if got := table.Get("Coffee", "Iced Coffee", enum.Size12oz); got != 12000 {
		t.Fatalf("clone mutation leaked into the original: %s", got.Format())
	}
}
