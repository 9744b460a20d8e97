package service

import (
	"context"

	"github.com/alexacafe/pos-api/internal/application/state"
	"github.com/alexacafe/pos-api/internal/domain/entity"
	"github.com/alexacafe/pos-api/internal/domain/enum"
	"github.com/alexacafe/pos-api/pkg/apperror"
)

// PriceService manages the category/item/size price table
type PriceService struct {
	state *state.Store
}

// NewPriceService creates a new price service
func NewPriceService(st *state.Store) *PriceService {
	return &PriceService{state: st}
}

// Table returns a copy of the full price table
func (s *PriceService) Table(ctx context.Context) entity.PriceTable {
	return s.state.Prices()
}

// Price looks up a single price, returning zero for any unknown
// category, item or size.
func (s *PriceService) Price(ctx context.Context, category, item string, size enum.Size) entity.Money {
	return s.state.Prices().Get(category, item, size)
}

// UpdatePriceInput represents a single price update
type UpdatePriceInput struct {
	Category string
	Item     string
	Size     enum.Size
	Price    entity.Money
}

// UpdatePrice sets one price. Negative values are clamped to zero and the
// clamp is reported so callers can surface it.
func (s *PriceService) UpdatePrice(ctx context.Context, input *UpdatePriceInput) (clamped bool, err error) {
	if input.Category == "" || input.Item == "" {
		return false, apperror.NewValidationError("Category and item are required")
	}
	if !input.Size.Valid() {
		return false, apperror.NewValidationError("Unknown size: " + string(input.Size))
	}
	prices := s.state.Prices()
	clamped = prices.Set(input.Category, input.Item, input.Size, input.Price)
	s.state.SetPrices(ctx, prices)
	return clamped, nil
}

// Replace swaps in a whole edited price table at once. Negative entries are
// clamped to zero; the returned flag reports whether any clamp happened.
func (s *PriceService) Replace(ctx context.Context, table entity.PriceTable) (clamped bool, err error) {
	if table == nil {
		return false, apperror.NewValidationError("Price table is required")
	}
	next := make(entity.PriceTable, len(table))
	for category, items := range table {
		for item, prices := range items {
			for size, price := range prices {
				if !size.Valid() {
					return false, apperror.NewValidationError("Unknown size: " + string(size))
				}
				if next.Set(category, item, size, price) {
					clamped = true
				}
			}
		}
	}
	s.state.SetPrices(ctx, next)
	return clamped, nil
}

// EnsureItem registers an item with all sizes priced at zero, leaving
// existing prices untouched.
func (s *PriceService) EnsureItem(ctx context.Context, category, item string) error {
	if category == "" || item == "" {
		return apperror.NewValidationError("Category and item are required")
	}
	prices := s.state.Prices()
	prices.InitItem(category, item)
	s.state.SetPrices(ctx, prices)
	return nil
}

// RemoveItem drops an item's prices. Removing an absent item is a no-op.
func (s *PriceService) RemoveItem(ctx context.Context, category, item string) {
	prices := s.state.Prices()
	prices.Remove(category, item)
	s.state.SetPrices(ctx, prices)
}

// RemoveCategory drops a whole category of prices.
func (s *PriceService) RemoveCategory(ctx context.Context, category string) {
	prices := s.state.Prices()
	prices.RemoveCategory(category)
	s.state.SetPrices(ctx, prices)
}
