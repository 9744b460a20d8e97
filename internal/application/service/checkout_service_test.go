package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alexacafe/pos-api/internal/application/state"
	"github.com/alexacafe/pos-api/internal/domain/entity"
	"github.com/alexacafe/pos-api/internal/domain/enum"
	infraRepo "github.com/alexacafe/pos-api/internal/infrastructure/repository"
	"github.com/alexacafe/pos-api/pkg/apperror"
)

func newTestCheckout(t *testing.T) (*state.Store, *CartService, *CheckoutService) {
	t.Helper()
	store := state.New(infraRepo.NewMemoryStore())
	prices := NewPriceService(store)
	cart := NewCartService(prices)
	checkout := NewCheckoutService(store, cart, 0)
	return store, cart, checkout
}

func addToCart(t *testing.T, cart *CartService, category, name string, size enum.Size, qty int) *entity.CartLine {
	t.Helper()
	line, err := cart.AddItem(context.Background(), &AddItemInput{
		Category: category,
		Name:     name,
		Size:     size,
		Quantity: qty,
	})
	if err != nil {
		t.Fatalf("add to cart failed: %v", err)
	}
	return line
}

func TestCheckoutCommitsReceiptAndClearsCart(t *testing.T) {
	store, cart, checkout := newTestCheckout(t)
	ctx := context.Background()

	addToCart(t, cart, "Coffee", "Iced Coffee", enum.Size12oz, 2)
	addToCart(t, cart, "Milk Tea", "Wintermelon", enum.Size16oz, 1)

	total := cart.Total(ctx)
	if total != 2*12000+16000 {
		t.Fatalf("unexpected cart total %s", total.Format())
	}

	receipt, err := checkout.Checkout(ctx, &CheckoutInput{
		CustomerName: "Ana",
		CashAmount:   50000,
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	if receipt.Total != total {
		t.Fatalf("receipt total %s does not match cart total %s", receipt.Total.Format(), total.Format())
	}
	if receipt.Balance != 50000-total {
		t.Fatalf("expected balance %s, got %s", (50000 - total).Format(), receipt.Balance.Format())
	}
	if receipt.PaymentMethod != entity.PaymentMethodCash {
		t.Fatalf("expected cash payment, got %s", receipt.PaymentMethod)
	}
	if receipt.IsEdited {
		t.Fatalf("fresh receipt must not be marked edited")
	}
	if h, m, s := receipt.Date.Clock(); h != 0 || m != 0 || s != 0 {
		t.Fatalf("receipt date must be midnight, got %v", receipt.Date)
	}

	if len(cart.Lines(ctx)) != 0 {
		t.Fatalf("cart must be cleared after checkout")
	}
	history := store.PurchaseHistory()
	if len(history) != 1 || history[0].OrderNumber != receipt.OrderNumber {
		t.Fatalf("receipt not committed to purchase history")
	}
	orders := store.Orders()
	if len(orders) != 1 || orders[0].Price != receipt.Total {
		t.Fatalf("order summary not recorded alongside receipt")
	}
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	store, _, checkout := newTestCheckout(t)

	_, err := checkout.Checkout(context.Background(), &CheckoutInput{CashAmount: 10000})
	if !apperror.IsKind(err, apperror.KindValidation) {
		t.Fatalf("expected validation error for empty cart, got %v", err)
	}
	if !strings.Contains(err.Error(), "cart is empty") {
		t.Fatalf("unexpected rejection reason: %v", err)
	}
	if len(store.PurchaseHistory()) != 0 {
		t.Fatalf("purchase history must stay empty after a rejected checkout")
	}
}

func TestCheckoutRejectsInsufficientCash(t *testing.T) {
	store, cart, checkout := newTestCheckout(t)

	addToCart(t, cart, "Coffee", "Iced Coffee", enum.Size12oz, 1) // 120.00

	_, err := checkout.Checkout(context.Background(), &CheckoutInput{
		CustomerName: "Ben",
		CashAmount:   10000, // 100.00
	})
	if !apperror.IsKind(err, apperror.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !strings.Contains(err.Error(), "cash amount that covers the total") {
		t.Fatalf("unexpected rejection reason: %v", err)
	}
	if len(store.PurchaseHistory()) != 0 {
		t.Fatalf("no receipt may be created on rejection")
	}
	if len(cart.Lines(context.Background())) != 1 {
		t.Fatalf("cart must survive a rejected checkout")
	}
}

func TestCheckoutDefaultsCustomerName(t *testing.T) {
	_, cart, checkout := newTestCheckout(t)

	addToCart(t, cart, "Coffee", "Iced Coffee", enum.Size12oz, 1)

	receipt, err := checkout.Checkout(context.Background(), &CheckoutInput{
		CustomerName: "   ",
		CashAmount:   20000,
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if receipt.CustomerName != "Guest" {
		t.Fatalf("expected Guest fallback, got %q", receipt.CustomerName)
	}
}

func TestGenerateOrderNumberShape(t *testing.T) {
	now := time.Now()
	for i := 0; i < 20; i++ {
		code := GenerateOrderNumber(now)
		if len(code) != 6 {
			t.Fatalf("expected 6-character code, got %q", code)
		}
		if code != strings.ToUpper(code) {
			t.Fatalf("expected uppercase code, got %q", code)
		}
	}
}
