package service

import (
	"context"

	"github.com/alexacafe/pos-api/internal/application/state"
	"github.com/alexacafe/pos-api/internal/domain/entity"
	"github.com/alexacafe/pos-api/pkg/apperror"
)

// InventoryService tracks raw supply counts (cups, straws, syrups)
type InventoryService struct {
	state *state.Store
}

// NewInventoryService creates a new inventory service
func NewInventoryService(st *state.Store) *InventoryService {
	return &InventoryService{state: st}
}

// Inventory returns all supply counts.
func (s *InventoryService) Inventory(ctx context.Context) entity.Inventory {
	return s.state.Inventory()
}

// Adjust changes a supply's count by delta, clamped to 0..500. Returns the
// new count.
func (s *InventoryService) Adjust(ctx context.Context, name string, delta int) (int, error) {
	inv := s.state.Inventory()
	count, ok := inv[name]
	if !ok {
		return 0, apperror.NewNotFoundError("Supply item not found")
	}
	count = clampCount(count + delta)
	inv[name] = count
	s.state.SetInventory(ctx, inv)
	return count, nil
}

// AddSupply registers a new supply with an initial count, clamped to 0..500.
func (s *InventoryService) AddSupply(ctx context.Context, name string, count int) error {
	if name == "" {
		return apperror.NewValidationError("Supply name is required")
	}
	inv := s.state.Inventory()
	if _, exists := inv[name]; exists {
		return apperror.NewValidationError("Supply already exists")
	}
	inv[name] = clampCount(count)
	s.state.SetInventory(ctx, inv)
	return nil
}

// RemoveSupply deletes a supply.
func (s *InventoryService) RemoveSupply(ctx context.Context, name string) error {
	inv := s.state.Inventory()
	if _, ok := inv[name]; !ok {
		return apperror.NewNotFoundError("Supply item not found")
	}
	delete(inv, name)
	s.state.SetInventory(ctx, inv)
	return nil
}
