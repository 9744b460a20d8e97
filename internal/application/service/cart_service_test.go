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

func newTestCart() (*PriceService, *CartService) {
	store := state.New(infraRepo.NewMemoryStore())
	prices := NewPriceService(store)
	return prices, NewCartService(prices)
}

func TestAddItemSnapshotsPriceAtAddTime(t *testing.T) {
	prices, cart := newTestCart()
	ctx := context.Background()

	line, err := cart.AddItem(ctx, &AddItemInput{
		Category: "Coffee", Name: "Iced Coffee", Size: enum.Size12oz, Quantity: 1,
	})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if line.UnitPrice != 12000 {
		t.Fatalf("expected unit price 120.00, got %s", line.UnitPrice.Format())
	}

	// A later price change must not touch the existing line.
	if _, err := prices.UpdatePrice(ctx, &UpdatePriceInput{
		Category: "Coffee", Item: "Iced Coffee", Size: enum.Size12oz, Price: 99900,
	}); err != nil {
		t.Fatalf("price update failed: %v", err)
	}
	if got := cart.Lines(ctx)[0].UnitPrice; got != 12000 {
		t.Fatalf("line price changed after table update: %s", got.Format())
	}
}

func TestAddItemRejectsUnknownSize(t *testing.T) {
	_, cart := newTestCart()

	_, err := cart.AddItem(context.Background(), &AddItemInput{
		Category: "Coffee", Name: "Iced Coffee", Size: "32 oz", Quantity: 1,
	})
	if !apperror.IsKind(err, apperror.KindValidation) {
		t.Fatalf("expected validation error for unknown size, got %v", err)
	}
}

func TestAddItemNeverMergesLines(t *testing.T) {
	_, cart := newTestCart()
	ctx := context.Background()

	input := &AddItemInput{Category: "Coffee", Name: "Iced Coffee", Size: enum.Size12oz, Quantity: 1}
	a, _ := cart.AddItem(ctx, input)
	b, _ := cart.AddItem(ctx, input)

	lines := cart.Lines(ctx)
	if len(lines) != 2 {
		t.Fatalf("expected two distinct lines, got %d", len(lines))
	}
	if a.ID == b.ID {
		t.Fatalf("line ids must be unique, both are %s", a.ID)
	}
}

func TestUpdateQuantityRemovesLineAtZero(t *testing.T) {
	_, cart := newTestCart()
	ctx := context.Background()

	line, _ := cart.AddItem(ctx, &AddItemInput{
		Category: "Coffee", Name: "Iced Coffee", Size: enum.Size12oz, Quantity: 2,
	})

	if err := cart.UpdateQuantity(ctx, line.ID, -1); err != nil {
		t.Fatalf("decrement failed: %v", err)
	}
	if got := cart.Lines(ctx)[0].Quantity; got != 1 {
		t.Fatalf("expected quantity 1, got %d", got)
	}

	if err := cart.UpdateQuantity(ctx, line.ID, -1); err != nil {
		t.Fatalf("decrement failed: %v", err)
	}
	if len(cart.Lines(ctx)) != 0 {
		t.Fatalf("line must be removed when quantity reaches zero")
	}
}

func TestRemoveAbsentLineIsNoOp(t *testing.T) {
	_, cart := newTestCart()
	ctx := context.Background()

	cart.RemoveLine(ctx, "no-such-line")
	if len(cart.Lines(ctx)) != 0 {
		t.Fatalf("cart must stay empty")
	}
}

func TestCartTotalMatchesLineSums(t *testing.T) {
	_, cart := newTestCart()
	ctx := context.Background()

	cart.AddItem(ctx, &AddItemInput{Category: "Coffee", Name: "Iced Coffee", Size: enum.Size12oz, Quantity: 3})
	cart.AddItem(ctx, &AddItemInput{Category: "Milk Tea", Name: "Matcha", Size: enum.Size20oz, Quantity: 2})

	var want entity.Money
	for _, line := range cart.Lines(ctx) {
		want += line.LineTotal()
	}
	if got := cart.Total(ctx); got != want {
		t.Fatalf("total %s does not match line sum %s", got.Format(), want.Format())
	}
}

func TestUnpricedItemFallsBackToZero(t *testing.T) {
	_, cart := newTestCart()
	ctx := context.Background()

	line, err := cart.AddItem(ctx, &AddItemInput{
		Category: "Coffee", Name: "Mystery Drink", Size: enum.Size12oz, Quantity: 1,
	})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if line.UnitPrice != 0 {
		t.Fatalf("absent price must default to zero, got %s", line.UnitPrice.Format())
	}
}
