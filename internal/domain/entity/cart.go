package entity

import "github.com/alexacafe/pos-api/internal/domain/enum"

// CartLine is one selected drink in the active cart. The unit price is a
// snapshot taken when the line was added; later price-table edits do not
// reprice a cart in progress.
type CartLine struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Size      enum.Size `json:"size"`
	UnitPrice Money     `json:"unit_price"`
	Quantity  int       `json:"quantity"`
}

// LineTotal returns unit price times quantity.
func (l CartLine) LineTotal() Money {
	return l.UnitPrice * Money(l.Quantity)
}

// ReceiptItem converts the cart line into the receipt representation.
func (l CartLine) ReceiptItem() ReceiptItem {
	return ReceiptItem{
		Name:      l.Name,
		Size:      l.Size,
		UnitPrice: l.UnitPrice,
		Quantity:  l.Quantity,
	}
}
