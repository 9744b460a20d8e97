package service

import (
	"context"

	"github.com/alexacafe/pos-api/internal/application/state"
	"github.com/alexacafe/pos-api/internal/domain/entity"
	"github.com/alexacafe/pos-api/pkg/apperror"
)

// Stock and inventory counts are clamped to this range.
const (
	minCount = 0
	maxCount = 500
)

// StockService tracks per-item stock counts
type StockService struct {
	state *state.Store
}

// NewStockService creates a new stock service
func NewStockService(st *state.Store) *StockService {
	return &StockService{state: st}
}

// Stock returns all stock counts keyed by category and item.
func (s *StockService) Stock(ctx context.Context) entity.Stock {
	return s.state.Stock()
}

// Adjust changes an item's count by delta, clamped to 0..500. Returns the
// new count.
func (s *StockService) Adjust(ctx context.Context, category, item string, delta int) (int, error) {
	stock := s.state.Stock()
	items, ok := stock[category]
	if !ok {
		return 0, apperror.NewNotFoundError("Category not found")
	}
	count, ok := items[item]
	if !ok {
		return 0, apperror.NewNotFoundError("Item not found")
	}
	count = clampCount(count + delta)
	items[item] = count
	s.state.SetStock(ctx, stock)
	return count, nil
}

// SetCount pins an item's count directly, clamped to 0..500.
func (s *StockService) SetCount(ctx context.Context, category, item string, count int) (int, error) {
	stock := s.state.Stock()
	items, ok := stock[category]
	if !ok {
		return 0, apperror.NewNotFoundError("Category not found")
	}
	if _, ok := items[item]; !ok {
		return 0, apperror.NewNotFoundError("Item not found")
	}
	count = clampCount(count)
	items[item] = count
	s.state.SetStock(ctx, stock)
	return count, nil
}

// EnsureItem registers a zero count for a new menu item.
func (s *StockService) EnsureItem(ctx context.Context, category, item string) {
	stock := s.state.Stock()
	if stock[category] == nil {
		stock[category] = map[string]int{}
	}
	if _, ok := stock[category][item]; !ok {
		stock[category][item] = 0
	}
	s.state.SetStock(ctx, stock)
}

// RemoveItem drops an item's count.
func (s *StockService) RemoveItem(ctx context.Context, category, item string) {
	stock := s.state.Stock()
	if items, ok := stock[category]; ok {
		delete(items, item)
		s.state.SetStock(ctx, stock)
	}
}

// RemoveCategory drops a whole category of counts.
func (s *StockService) RemoveCategory(ctx context.Context, category string) {
	stock := s.state.Stock()
	delete(stock, category)
	s.state.SetStock(ctx, stock)
}

func clampCount(n int) int {
	if n < minCount {
		return minCount
	}
	if n > maxCount {
		return maxCount
	}
	return n
}
