package state

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexacafe/pos-api/internal/domain/entity"
	"github.com/alexacafe/pos-api/internal/domain/repository"
	infraRepo "github.com/alexacafe/pos-api/internal/infrastructure/repository"
)

func TestLoadKeepsDefaultsWhenStoreIsEmpty(t *testing.T) {
	store := New(infraRepo.NewMemoryStore())
	store.Load(context.Background())

	menu := store.Menu()
	if len(menu["Coffee"]) != 6 || len(menu["Milk Tea"]) != 9 || len(menu["Fresh Fruits"]) != 4 {
		t.Fatalf("seed menu not loaded: %v", menu)
	}
	if store.Inventory()["Straws"] != 200 {
		t.Fatalf("seed inventory not loaded")
	}
	if len(store.PurchaseHistory()) != 0 {
		t.Fatalf("purchase history must start empty")
	}
}

func TestPurchaseHistorySurvivesReload(t *testing.T) {
	kv := infraRepo.NewMemoryStore()
	ctx := context.Background()

	first := New(kv)
	first.AppendPurchase(ctx, entity.Receipt{
		OrderNumber:  "AB12CD",
		CustomerName: "Ana",
		Items:        []entity.ReceiptItem{{Name: "Iced Coffee", Size: "12 oz", UnitPrice: 12000, Quantity: 1}},
		Total:        12000,
		CashAmount:   15000,
		Balance:      3000,
		Date:         time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
	})

	second := New(kv)
	second.Load(ctx)

	history := second.PurchaseHistory()
	if len(history) != 1 {
		t.Fatalf("expected one receipt after reload, got %d", len(history))
	}
	r := history[0]
	if r.OrderNumber != "AB12CD" || r.Total != 12000 || r.Items[0].UnitPrice != 12000 {
		t.Fatalf("receipt did not survive the round trip: %+v", r)
	}
}

func TestCorruptSnapshotFallsBackToDefaults(t *testing.T) {
	kv := infraRepo.NewMemoryStore()
	ctx := context.Background()
	if err := kv.Set(ctx, repository.KeyMenu, "{not json"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	store := New(kv)
	store.Load(ctx)

	if len(store.Menu()["Coffee"]) != 6 {
		t.Fatalf("corrupt snapshot must fall back to the seed menu")
	}
}

type failingKV struct{}

func (failingKV) Get(ctx context.Context, key string) (string, bool, error) {
	return "", false, errors.New("store offline")
}

func (failingKV) Set(ctx context.Context, key, value string) error {
	return errors.New("store offline")
}

func TestPersistenceErrorsAreSwallowed(t *testing.T) {
	store := New(failingKV{})
	ctx := context.Background()
	store.Load(ctx)

	store.AppendPurchase(ctx, entity.Receipt{OrderNumber: "AB12CD", Total: 12000})
	if len(store.PurchaseHistory()) != 1 {
		t.Fatalf("in-memory state must win when persistence fails")
	}
}

func TestReplacePurchaseKeepsPosition(t *testing.T) {
	store := New(infraRepo.NewMemoryStore())
	ctx := context.Background()

	store.AppendPurchase(ctx, entity.Receipt{OrderNumber: "A", Total: 100})
	store.AppendPurchase(ctx, entity.Receipt{OrderNumber: "B", Total: 200})

	if !store.ReplacePurchase(ctx, entity.Receipt{OrderNumber: "A", Total: 150}) {
		t.Fatalf("replace must find the receipt")
	}
	history := store.PurchaseHistory()
	if history[0].OrderNumber != "A" || history[0].Total != 150 {
		t.Fatalf("replace must keep position, got %+v", history)
	}
	if store.ReplacePurchase(ctx, entity.Receipt{OrderNumber: "Z"}) {
		t.Fatalf("replace of unknown order must report false")
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	store := New(infraRepo.NewMemoryStore())

	menu := store.Menu()
	menu["Coffee"] = nil
	if len(store.Menu()["Coffee"]) != 6 {
		t.Fatalf("mutating a returned menu must not touch the store")
	}

	prices := store.Prices()
	prices.Set("Coffee", "Iced Coffee", "12 oz", 1)
	if store.Prices().Get("Coffee", "Iced Coffee", "12 oz") == 1 {
		t.Fatalf("mutating a returned price table must not touch the store")
	}
}
