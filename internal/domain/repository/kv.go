package repository

import "context"

// Snapshot keys. Only these four are persisted; prices, stock and inventory
// are seeded defaults held in memory.
const (
	KeyMenu            = "menu"
	KeyOrders          = "orders"
	KeyPurchaseHistory = "purchaseHistory"
	KeyImages          = "images"
)

// KVStore is the persistence collaborator: an async key-value store holding
// JSON-serialized snapshots of the in-memory structures.
type KVStore interface {
	// Get returns the value for key, and false when the key has never been
	// written.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
}
