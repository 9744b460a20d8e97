package service

import (
	"context"
	"testing"

	"github.com/alexacafe/pos-api/internal/application/state"
	"github.com/alexacafe/pos-api/internal/domain/enum"
	infraRepo "github.com/alexacafe/pos-api/internal/infrastructure/repository"
)

func newTestMenuService() (*state.Store, *MenuService) {
	store := state.New(infraRepo.NewMemoryStore())
	prices := NewPriceService(store)
	stock := NewStockService(store)
	return store, NewMenuService(store, prices, stock)
}

func TestAddItemSeedsPricesAndStock(t *testing.T) {
	store, svc := newTestMenuService()
	ctx := context.Background()

	item, err := svc.AddItem(ctx, &AddItemToMenuInput{Category: "Coffee", Name: "Flat White"})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if item.ID == "" {
		t.Fatalf("item must get an id")
	}

	prices := store.Prices()["Coffee"]["Flat White"]
	if len(prices) != 3 {
		t.Fatalf("new item must carry all three sizes, got %v", prices)
	}
	if count, ok := store.Stock()["Coffee"]["Flat White"]; !ok || count != 0 {
		t.Fatalf("new item must start with zero stock")
	}
}

func TestAddItemRejectsDuplicates(t *testing.T) {
	_, svc := newTestMenuService()

	if _, err := svc.AddItem(context.Background(), &AddItemToMenuInput{Category: "Coffee", Name: "Iced Coffee"}); err == nil {
		t.Fatalf("duplicate item must be rejected")
	}
	if _, err := svc.AddItem(context.Background(), &AddItemToMenuInput{Category: "No Such", Name: "X"}); err == nil {
		t.Fatalf("unknown category must be rejected")
	}
}

func TestRemoveItemCascades(t *testing.T) {
	store, svc := newTestMenuService()
	ctx := context.Background()

	if err := svc.RemoveItem(ctx, "Coffee", "Iced Coffee"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	for _, it := range store.Menu()["Coffee"] {
		if it.Name == "Iced Coffee" {
			t.Fatalf("item still on the menu")
		}
	}
	if store.Prices().Get("Coffee", "Iced Coffee", enum.Size12oz) != 0 {
		t.Fatalf("prices must be dropped with the item")
	}
	if _, ok := store.Stock()["Coffee"]["Iced Coffee"]; ok {
		t.Fatalf("stock count must be dropped with the item")
	}
}

func TestRemoveCategoryCascades(t *testing.T) {
	store, svc := newTestMenuService()
	ctx := context.Background()

	if err := svc.RemoveCategory(ctx, "Milk Tea"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if _, ok := store.Menu()["Milk Tea"]; ok {
		t.Fatalf("category still on the menu")
	}
	if _, ok := store.Stock()["Milk Tea"]; ok {
		t.Fatalf("stock counts must be dropped with the category")
	}
	if _, ok := store.Prices()["Milk Tea"]; ok {
		t.Fatalf("prices must be dropped with the category")
	}
}

func TestSetItemImagePersistsByID(t *testing.T) {
	store, svc := newTestMenuService()
	ctx := context.Background()

	if err := svc.SetItemImage(ctx, "Coffee", "Iced Coffee", "data:image/png;base64,AAA"); err != nil {
		t.Fatalf("set image failed: %v", err)
	}

	var id string
	for _, it := range store.Menu()["Coffee"] {
		if it.Name == "Iced Coffee" {
			id = it.ID
		}
	}
	if store.Images()[id] != "data:image/png;base64,AAA" {
		t.Fatalf("image not stored under the item id")
	}
}
