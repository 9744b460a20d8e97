package entity

import "github.com/alexacafe/pos-api/internal/domain/enum"

// PriceTable is the nested category -> item -> size -> price lookup used by
// the menu and the cart. A missing entry is priced at zero rather than being
// an error; the seed data and InitItem keep every item populated with all
// three sizes so absence stays a tolerated degenerate case.
type PriceTable map[string]map[string]map[enum.Size]Money

// Get returns the stored price, or 0 when the category, item or size is
// absent.
func (t PriceTable) Get(category, item string, size enum.Size) Money {
	items, ok := t[category]
	if !ok {
		return 0
	}
	prices, ok := items[item]
	if !ok {
		return 0
	}
	return prices[size]
}

// Set stores a price. Negative values are clamped to zero; the returned flag
// tells the caller a clamp happened so it can surface a warning.
func (t PriceTable) Set(category, item string, size enum.Size, price Money) (clamped bool) {
	if price < 0 {
		price = 0
		clamped = true
	}
	t.InitItem(category, item)
	t[category][item][size] = price
	return clamped
}

// InitCategory creates an empty item map for a new category. Existing
// categories are left untouched.
func (t PriceTable) InitCategory(category string) {
	if _, ok := t[category]; !ok {
		t[category] = make(map[string]map[enum.Size]Money)
	}
}

// InitItem creates a new item with all three sizes defaulted to zero.
// Existing items keep their prices.
func (t PriceTable) InitItem(category, item string) {
	t.InitCategory(category)
	if _, ok := t[category][item]; !ok {
		prices := make(map[enum.Size]Money, len(enum.Sizes()))
		for _, size := range enum.Sizes() {
			prices[size] = 0
		}
		t[category][item] = prices
	}
}

// Remove deletes an item; the category is kept even when it becomes empty.
func (t PriceTable) Remove(category, item string) {
	if items, ok := t[category]; ok {
		delete(items, item)
	}
}

// RemoveCategory deletes a whole category.
func (t PriceTable) RemoveCategory(category string) {
	delete(t, category)
}

// Clone returns a deep copy so callers can hand out snapshots without
// sharing the underlying maps.
func (t PriceTable) Clone() PriceTable {
	out := make(PriceTable, len(t))
	for category, items := range t {
		out[category] = make(map[string]map[enum.Size]Money, len(items))
		for item, prices := range items {
			sizes := make(map[enum.Size]Money, len(prices))
			for size, price := range prices {
				sizes[size] = price
			}
			out[category][item] = sizes
		}
	}
	return out
}
