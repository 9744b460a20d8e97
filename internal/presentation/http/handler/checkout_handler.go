package handler

import (
	"github.com/alexacafe/pos-api/internal/application/service"
	"github.com/alexacafe/pos-api/internal/domain/entity"
	"github.com/alexacafe/pos-api/internal/presentation/http/dto/request"
	"github.com/alexacafe/pos-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// CheckoutHandler handles checkout HTTP requests
type CheckoutHandler struct {
	checkoutService *service.CheckoutService
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// Checkout converts the cart into a committed receipt. The cash amount
// arrives as a string; a value that does not parse is rejected the same way
// as one that does not cover the total.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req request.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	cash, err := entity.ParseMoney(req.CashAmount)
	if err != nil {
		response.ErrorWithCode(c, 422, "Please enter a valid cash amount that covers the total.")
		return
	}

	receipt, err := h.checkoutService.Checkout(c.Request.Context(), &service.CheckoutInput{
		CustomerName: req.CustomerName,
		CashAmount:   cash,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Checkout completed successfully", receipt)
}
