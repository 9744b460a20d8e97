package service

import (
	"context"

	"github.com/alexacafe/pos-api/internal/application/state"
	"github.com/alexacafe/pos-api/internal/domain/entity"
	"github.com/alexacafe/pos-api/pkg/apperror"
)

// ReceiptService applies post-sale corrections to committed receipts. Every
// edit recomputes the total and balance and marks the receipt as edited; the
// linked order summary is kept in sync with the corrected total.
type ReceiptService struct {
	state *state.Store
}

// NewReceiptService creates a new receipt service
func NewReceiptService(st *state.Store) *ReceiptService {
	return &ReceiptService{state: st}
}

// Get returns a committed receipt by order number.
func (s *ReceiptService) Get(ctx context.Context, orderNumber string) (*entity.Receipt, error) {
	r, ok := s.state.FindPurchase(orderNumber)
	if !ok {
		return nil, apperror.NewNotFoundError("Receipt not found")
	}
	return &r, nil
}

// List returns the full purchase history in commit order.
func (s *ReceiptService) List(ctx context.Context) []entity.Receipt {
	return s.state.PurchaseHistory()
}

// EditCashAmount corrects the tendered cash on a receipt. The new amount
// must still cover the total.
func (s *ReceiptService) EditCashAmount(ctx context.Context, orderNumber string, cash entity.Money) (*entity.Receipt, error) {
	r, ok := s.state.FindPurchase(orderNumber)
	if !ok {
		return nil, apperror.NewNotFoundError("Receipt not found")
	}
	if cash < r.Total {
		return nil, apperror.NewValidationError("Cash amount must cover the receipt total.")
	}
	r.CashAmount = cash
	r.Recompute()
	r.IsEdited = true
	return s.commit(ctx, r)
}

// RemoveLineItem deletes one line from a receipt by index. Removing the
// only line is allowed and leaves an empty receipt with a zero total.
func (s *ReceiptService) RemoveLineItem(ctx context.Context, orderNumber string, index int) (*entity.Receipt, error) {
	r, ok := s.state.FindPurchase(orderNumber)
	if !ok {
		return nil, apperror.NewNotFoundError("Receipt not found")
	}
	if index < 0 || index >= len(r.Items) {
		return nil, apperror.NewIndexError("Line item index out of range")
	}
	r.Items = append(r.Items[:index], r.Items[index+1:]...)
	r.Recompute()
	r.IsEdited = true
	return s.commit(ctx, r)
}

// AddLineItems merges candidate items into a receipt. An item matching an
// existing line by name and size bumps that line's quantity by one; anything
// else is appended as a new line with quantity one.
func (s *ReceiptService) AddLineItems(ctx context.Context, orderNumber string, items []entity.ReceiptItem) (*entity.Receipt, error) {
	if len(items) == 0 {
		return nil, apperror.NewValidationError("At least one item is required")
	}
	for _, it := range items {
		if it.Name == "" {
			return nil, apperror.NewValidationError("Each item needs a name")
		}
	}
	r, ok := s.state.FindPurchase(orderNumber)
	if !ok {
		return nil, apperror.NewNotFoundError("Receipt not found")
	}
	for _, it := range items {
		merged := false
		for i := range r.Items {
			if r.Items[i].Name == it.Name && r.Items[i].Size == it.Size {
				r.Items[i].Quantity++
				merged = true
				break
			}
		}
		if !merged {
			it.Quantity = 1
			r.Items = append(r.Items, it)
		}
	}
	r.Recompute()
	r.IsEdited = true
	return s.commit(ctx, r)
}

// Commit finalizes an edited receipt with a corrected customer name and a
// freshly recomputed total, replacing the stored entry by order number.
func (s *ReceiptService) Commit(ctx context.Context, orderNumber, customerName string) (*entity.Receipt, error) {
	r, ok := s.state.FindPurchase(orderNumber)
	if !ok {
		return nil, apperror.NewNotFoundError("Receipt not found")
	}
	if customerName != "" {
		r.CustomerName = customerName
	}
	r.Recompute()
	return s.commit(ctx, r)
}

// Delete removes a receipt and its order summary entirely.
func (s *ReceiptService) Delete(ctx context.Context, orderNumber string) error {
	if !s.state.RemovePurchase(ctx, orderNumber) {
		return apperror.NewNotFoundError("Receipt not found")
	}
	s.state.RemoveOrder(ctx, orderNumber)
	return nil
}

// commit writes an edited receipt back to history and syncs the order
// summary's total. The edited cash amount never needs to re-cover the new
// total after item removal; the balance simply grows.
func (s *ReceiptService) commit(ctx context.Context, r entity.Receipt) (*entity.Receipt, error) {
	if !s.state.ReplacePurchase(ctx, r) {
		return nil, apperror.NewNotFoundError("Receipt not found")
	}
	s.state.UpdateOrderPrice(ctx, r.OrderNumber, r.Total)
	out := r.Clone()
	return &out, nil
}
