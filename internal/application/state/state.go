package state

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/alexacafe/pos-api/internal/domain/entity"
	"github.com/alexacafe/pos-api/internal/domain/repository"
)

// Store owns all mutable shop state: menu, prices, stock, inventory, images,
// purchase history and order history. It is the single writer; services
// mutate it only through its setter methods, which replace whole structures
// and persist the snapshot before releasing the lock. That serialization
// guarantees a checkout or edit can never start while a previous write for
// the same key is still pending.
//
// Persistence failures are logged and swallowed: the in-memory state wins
// and the worst case is stale data on the next restart.
type Store struct {
	mu sync.Mutex
	kv repository.KVStore

	menu      entity.Menu
	prices    entity.PriceTable
	stock     entity.Stock
	inventory entity.Inventory
	images    entity.ImageSet
	purchases []entity.Receipt
	orders    []entity.OrderSummary
}

// New creates a Store over the given snapshot store, seeded with defaults.
// Call Load to replace the defaults with persisted snapshots.
func New(kv repository.KVStore) *Store {
	return &Store{
		kv:        kv,
		menu:      SeedMenu(),
		prices:    SeedPrices(),
		stock:     SeedStock(),
		inventory: SeedInventory(),
		images:    entity.ImageSet{},
		purchases: []entity.Receipt{},
		orders:    []entity.OrderSummary{},
	}
}

// Load reads the persisted snapshots. Missing keys keep their seeded
// defaults; unreadable snapshots are logged and reset to defaults, never
// fatal.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loadKey(ctx, s.kv, repository.KeyMenu, &s.menu)
	loadKey(ctx, s.kv, repository.KeyPurchaseHistory, &s.purchases)
	loadKey(ctx, s.kv, repository.KeyOrders, &s.orders)
	loadKey(ctx, s.kv, repository.KeyImages, &s.images)
}

func loadKey[T any](ctx context.Context, kv repository.KVStore, key string, dst *T) {
	raw, ok, err := kv.Get(ctx, key)
	if err != nil {
		log.Printf("Error loading %q snapshot: %v", key, err)
		return
	}
	if !ok {
		return
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		log.Printf("Error parsing %q snapshot, keeping defaults: %v", key, err)
	}
}

// persist writes one snapshot; errors are logged and swallowed.
func (s *Store) persist(ctx context.Context, key string, v interface{}) {
	raw, err := json.Marshal(v)
	if err != nil {
		log.Printf("Error serializing %q snapshot: %v", key, err)
		return
	}
	if err := s.kv.Set(ctx, key, string(raw)); err != nil {
		log.Printf("Error saving %q snapshot: %v", key, err)
	}
}

// --- Menu and images ---

func (s *Store) Menu() entity.Menu {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.menu.Clone()
}

func (s *Store) SetMenu(ctx context.Context, menu entity.Menu) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.menu = menu.Clone()
	s.persist(ctx, repository.KeyMenu, s.menu)
}

func (s *Store) Images() entity.ImageSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.images.Clone()
}

func (s *Store) SetImages(ctx context.Context, images entity.ImageSet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.images = images.Clone()
	s.persist(ctx, repository.KeyImages, s.images)
}

// --- Prices, stock, inventory (in-memory only, reseeded on start) ---

func (s *Store) Prices() entity.PriceTable {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prices.Clone()
}

func (s *Store) SetPrices(_ context.Context, prices entity.PriceTable) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prices = prices.Clone()
}

func (s *Store) Stock() entity.Stock {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stock.Clone()
}

func (s *Store) SetStock(_ context.Context, stock entity.Stock) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stock = stock.Clone()
}

func (s *Store) Inventory() entity.Inventory {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inventory.Clone()
}

func (s *Store) SetInventory(_ context.Context, inventory entity.Inventory) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inventory = inventory.Clone()
}

// --- Purchase history ---

func (s *Store) PurchaseHistory() []entity.Receipt {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Receipt, len(s.purchases))
	for i, r := range s.purchases {
		out[i] = r.Clone()
	}
	return out
}

func (s *Store) SetPurchaseHistory(ctx context.Context, history []entity.Receipt) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purchases = history
	s.persist(ctx, repository.KeyPurchaseHistory, s.purchases)
}

func (s *Store) AppendPurchase(ctx context.Context, r entity.Receipt) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purchases = append(s.purchases, r)
	s.persist(ctx, repository.KeyPurchaseHistory, s.purchases)
}

// ReplacePurchase swaps the receipt with the same order number in place,
// preserving its position in the history. Returns false when no receipt
// matches.
func (s *Store) ReplacePurchase(ctx context.Context, r entity.Receipt) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.purchases {
		if s.purchases[i].OrderNumber == r.OrderNumber {
			s.purchases[i] = r
			s.persist(ctx, repository.KeyPurchaseHistory, s.purchases)
			return true
		}
	}
	return false
}

// RemovePurchase deletes the receipt with the given order number. Returns
// false when no receipt matches.
func (s *Store) RemovePurchase(ctx context.Context, orderNumber string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.purchases {
		if s.purchases[i].OrderNumber == orderNumber {
			s.purchases = append(s.purchases[:i], s.purchases[i+1:]...)
			s.persist(ctx, repository.KeyPurchaseHistory, s.purchases)
			return true
		}
	}
	return false
}

// FindPurchase returns a copy of the receipt with the given order number.
func (s *Store) FindPurchase(orderNumber string) (entity.Receipt, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.purchases {
		if s.purchases[i].OrderNumber == orderNumber {
			return s.purchases[i].Clone(), true
		}
	}
	return entity.Receipt{}, false
}

// --- Order history ---

func (s *Store) Orders() []entity.OrderSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.OrderSummary, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *Store) AppendOrder(ctx context.Context, o entity.OrderSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, o)
	s.persist(ctx, repository.KeyOrders, s.orders)
}

// UpdateOrderPrice rewrites the recorded total for an order in place.
func (s *Store) UpdateOrderPrice(ctx context.Context, orderNumber string, price entity.Money) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].OrderNumber == orderNumber {
			s.orders[i].Price = price
			s.persist(ctx, repository.KeyOrders, s.orders)
			return true
		}
	}
	return false
}

// RemoveOrder deletes the order summary with the given order number.
// Returns false when no order matches.
func (s *Store) RemoveOrder(ctx context.Context, orderNumber string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].OrderNumber == orderNumber {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			s.persist(ctx, repository.KeyOrders, s.orders)
			return true
		}
	}
	return false
}
