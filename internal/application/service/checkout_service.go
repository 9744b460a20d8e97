package service

import (
	"context"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/alexacafe/pos-api/internal/application/state"
	"github.com/alexacafe/pos-api/internal/domain/entity"
	"github.com/alexacafe/pos-api/pkg/apperror"
)

// CheckoutService converts the active cart into a committed receipt
type CheckoutService struct {
	state *state.Store
	cart  *CartService
	delay time.Duration
	now   func() time.Time
}

// NewCheckoutService creates a new checkout service. delay simulates the
// terminal's processing pause between validation and commit.
func NewCheckoutService(st *state.Store, cart *CartService, delay time.Duration) *CheckoutService {
	return &CheckoutService{state: st, cart: cart, delay: delay, now: time.Now}
}

// CheckoutInput represents a checkout request
type CheckoutInput struct {
	CustomerName string
	CashAmount   entity.Money
}

// Checkout validates the cart and tendered cash, waits out the processing
// delay, then commits the sale: builds the receipt, appends it to purchase
// history, records the order summary and clears the cart. Validation runs
// before the delay so a rejected checkout returns immediately.
func (s *CheckoutService) Checkout(ctx context.Context, input *CheckoutInput) (*entity.Receipt, error) {
	lines := s.cart.Lines(ctx)
	if len(lines) == 0 {
		return nil, apperror.NewValidationError("Your cart is empty. Please add items before checking out.")
	}

	var total entity.Money
	for i := range lines {
		total += lines[i].LineTotal()
	}
	if input.CashAmount < total {
		return nil, apperror.NewValidationError("Please enter a valid cash amount that covers the total.")
	}

	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	now := s.now()
	items := make([]entity.ReceiptItem, len(lines))
	for i, line := range lines {
		items[i] = line.ReceiptItem()
	}

	customer := strings.TrimSpace(input.CustomerName)
	if customer == "" {
		customer = "Guest"
	}

	receipt := entity.Receipt{
		OrderNumber:   GenerateOrderNumber(now),
		CustomerName:  customer,
		Items:         items,
		Total:         total,
		CashAmount:    input.CashAmount,
		Balance:       input.CashAmount - total,
		Date:          midnight(now),
		PaymentMethod: entity.PaymentMethodCash,
	}

	s.state.AppendPurchase(ctx, receipt)
	s.state.AppendOrder(ctx, entity.OrderSummary{
		OrderNumber:  receipt.OrderNumber,
		CustomerName: receipt.CustomerName,
		Price:        receipt.Total,
		Date:         now,
	})
	s.cart.Clear(ctx)

	return &receipt, nil
}

// GenerateOrderNumber derives a short order code from the timestamp: the
// last four characters of the millisecond clock in base 36 plus two random
// base-36 characters, uppercased. Codes are short by design and not
// guaranteed unique.
func GenerateOrderNumber(now time.Time) string {
	const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	ts := strconv.FormatInt(now.UnixMilli(), 36)
	if len(ts) > 4 {
		ts = ts[len(ts)-4:]
	}
	suffix := []byte{
		alphabet[rand.Intn(len(alphabet))],
		alphabet[rand.Intn(len(alphabet))],
	}
	return strings.ToUpper(ts + string(suffix))
}

// midnight truncates a timestamp to the start of its local day.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
