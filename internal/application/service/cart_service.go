package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/alexacafe/pos-api/internal/domain/entity"
	"github.com/alexacafe/pos-api/internal/domain/enum"
	"github.com/alexacafe/pos-api/pkg/apperror"
)

// CartService manages the active order being built at the counter. The cart
// is a single shared session, mirroring a one-terminal shop.
type CartService struct {
	mu     sync.Mutex
	lines  []entity.CartLine
	prices *PriceService
}

// NewCartService creates a new cart service
func NewCartService(prices *PriceService) *CartService {
	return &CartService{prices: prices}
}

// AddItemInput represents an add-to-cart request
type AddItemInput struct {
	Category string
	Name     string
	Size     enum.Size
	Quantity int
}

// AddItem appends a new line to the cart. Every add creates a distinct line
// even when an identical item/size already exists; lines are never merged.
// The unit price is captured from the price table at add time and stays
// fixed for the life of the line.
func (s *CartService) AddItem(ctx context.Context, input *AddItemInput) (*entity.CartLine, error) {
	if input.Name == "" || input.Category == "" {
		return nil, apperror.NewValidationError("Category and item name are required")
	}
	if !input.Size.Valid() {
		return nil, apperror.NewValidationError("Unknown size: " + string(input.Size))
	}
	if input.Quantity <= 0 {
		return nil, apperror.NewValidationError("Quantity must be at least 1")
	}

	line := entity.CartLine{
		ID:        newLineID(),
		Name:      input.Name,
		Category:  input.Category,
		Size:      input.Size,
		UnitPrice: s.prices.Price(ctx, input.Category, input.Name, input.Size),
		Quantity:  input.Quantity,
	}

	s.mu.Lock()
	s.lines = append(s.lines, line)
	s.mu.Unlock()
	return &line, nil
}

// UpdateQuantity adjusts a line's quantity by delta. A result of zero or
// less removes the line from the cart.
func (s *CartService) UpdateQuantity(ctx context.Context, lineID string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lines {
		if s.lines[i].ID != lineID {
			continue
		}
		s.lines[i].Quantity += delta
		if s.lines[i].Quantity <= 0 {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
		}
		return nil
	}
	return apperror.NewNotFoundError("Cart line not found")
}

// RemoveLine deletes a line outright regardless of quantity. Removing an
// absent line is a no-op, not an error.
func (s *CartService) RemoveLine(ctx context.Context, lineID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lines {
		if s.lines[i].ID == lineID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return
		}
	}
}

// Lines returns a copy of the current cart in insertion order.
func (s *CartService) Lines(ctx context.Context) []entity.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// Total returns the sum of line totals across the cart.
func (s *CartService) Total(ctx context.Context) entity.Money {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total entity.Money
	for i := range s.lines {
		total += s.lines[i].LineTotal()
	}
	return total
}

// Clear empties the cart.
func (s *CartService) Clear(ctx context.Context) {
	s.mu.Lock()
	s.lines = nil
	s.mu.Unlock()
}

// newLineID builds a unique cart line id from the current timestamp plus a
// short random suffix, so rapid adds in the same millisecond stay distinct.
func newLineID() string {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), hex.EncodeToString(b[:]))
}
