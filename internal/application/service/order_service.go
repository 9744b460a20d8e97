package service

import (
	"context"
	"time"

	"github.com/alexacafe/pos-api/internal/application/state"
	"github.com/alexacafe/pos-api/internal/domain/entity"
	"github.com/alexacafe/pos-api/pkg/apperror"
)

// Financials summarizes order income over the trailing week and all time.
type Financials struct {
	WeeklyIncome  entity.Money `json:"weeklyIncome"`
	AllTimeIncome entity.Money `json:"allTimeIncome"`
	OrderCount    int          `json:"orderCount"`
}

// OrderService manages the lightweight order history that backs income
// summaries. Order summaries are created alongside receipts at checkout but
// are removable on their own.
type OrderService struct {
	state *state.Store
	now   func() time.Time
}

// NewOrderService creates a new order service
func NewOrderService(st *state.Store) *OrderService {
	return &OrderService{state: st, now: time.Now}
}

// List returns the order history in commit order.
func (s *OrderService) List(ctx context.Context) []entity.OrderSummary {
	return s.state.Orders()
}

// Financials computes weekly and all-time income. Weekly covers the seven
// days up to now, inclusive of both ends.
func (s *OrderService) Financials(ctx context.Context) Financials {
	orders := s.state.Orders()
	now := s.now()
	oneWeekAgo := now.Add(-7 * 24 * time.Hour)

	var f Financials
	f.OrderCount = len(orders)
	for _, o := range orders {
		f.AllTimeIncome += o.Price
		if !o.Date.Before(oneWeekAgo) && !o.Date.After(now) {
			f.WeeklyIncome += o.Price
		}
	}
	return f
}

// Remove deletes one order summary by order number. The matching receipt in
// purchase history is untouched.
func (s *OrderService) Remove(ctx context.Context, orderNumber string) error {
	if !s.state.RemoveOrder(ctx, orderNumber) {
		return apperror.NewNotFoundError("Order not found")
	}
	return nil
}
