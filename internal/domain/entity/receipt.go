package entity

import (
	"time"

	"github.com/alexacafe/pos-api/internal/domain/enum"
)

// PaymentMethodCash is the only payment method the shop takes.
const PaymentMethodCash = "cash"

// ReceiptItem is one line on a receipt: a drink at a size, with the unit
// price that was charged at checkout time.
type ReceiptItem struct {
	Name      string    `json:"name"`
	Size      enum.Size `json:"size"`
	UnitPrice Money     `json:"price"`
	Quantity  int       `json:"quantity"`
}

// LineTotal returns unit price times quantity.
func (i ReceiptItem) LineTotal() Money {
	return i.UnitPrice * Money(i.Quantity)
}

// Receipt is the record of a completed sale. The order number is its
// immutable identity; the content can be edited after the fact, in which
// case IsEdited is set and the total is recomputed from the items.
//
// JSON field names match the snapshots the mobile app wrote to storage, so
// existing purchaseHistory data loads unchanged.
type Receipt struct {
	OrderNumber   string        `json:"orderNumber"`
	CustomerName  string        `json:"customerName"`
	Items         []ReceiptItem `json:"items"`
	Total         Money         `json:"total"`
	CashAmount    Money         `json:"cashAmount"`
	Balance       Money         `json:"balance"`
	Date          time.Time     `json:"date"`
	PaymentMethod string        `json:"paymentMethod"`
	IsEdited      bool          `json:"isEdited"`
}

// Recompute derives Total from the items and Balance from the cash amount.
// Every mutation goes through here; the receipt never carries a stale total.
func (r *Receipt) Recompute() {
	var total Money
	for _, item := range r.Items {
		total += item.LineTotal()
	}
	r.Total = total
	r.Balance = r.CashAmount - total
}

// Clone returns a deep copy, so edits can be staged without touching the
// stored receipt until they are committed.
func (r Receipt) Clone() Receipt {
	items := make([]ReceiptItem, len(r.Items))
	copy(items, r.Items)
	r.Items = items
	return r
}
