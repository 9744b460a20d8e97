package request

// AddCartItemRequest represents an add-to-cart request
type AddCartItemRequest struct {
	Category string `json:"category" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Size     string `json:"size" binding:"required"`
	Quantity int    `json:"quantity" binding:"omitempty,min=1"`
}

// UpdateCartQuantityRequest adjusts a cart line quantity by a delta
type UpdateCartQuantityRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// CheckoutRequest represents a checkout request. CashAmount arrives as a
// string, the way the terminal's numeric field submits it.
type CheckoutRequest struct {
	CustomerName string `json:"customerName"`
	CashAmount   string `json:"cashAmount"`
}
