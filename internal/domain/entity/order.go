package entity

import "time"

// OrderSummary is the lightweight order record kept alongside each receipt.
// It feeds the weekly/all-time income figures and can be removed on its own
// without touching purchase history.
type OrderSummary struct {
	OrderNumber  string    `json:"orderNumber"`
	CustomerName string    `json:"customerName"`
	Price        Money     `json:"price"`
	Date         time.Time `json:"date"`
}
