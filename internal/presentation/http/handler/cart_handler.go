package handler

import (
	"github.com/alexacafe/pos-api/internal/application/service"
	"github.com/alexacafe/pos-api/internal/domain/enum"
	"github.com/alexacafe/pos-api/internal/presentation/http/dto/request"
	"github.com/alexacafe/pos-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// CartHandler handles cart-related HTTP requests
type CartHandler struct {
	cartService *service.CartService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// Get returns the current cart lines and total
func (h *CartHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	response.OK(c, "Cart retrieved successfully", gin.H{
		"lines": h.cartService.Lines(ctx),
		"total": h.cartService.Total(ctx),
	})
}

// AddItem appends a line to the cart
func (h *CartHandler) AddItem(c *gin.Context) {
	var req request.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	line, err := h.cartService.AddItem(c.Request.Context(), &service.AddItemInput{
		Category: req.Category,
		Name:     req.Name,
		Size:     enum.Size(req.Size),
		Quantity: quantity,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Item added to cart", line)
}

// UpdateQuantity adjusts a line's quantity by a delta
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var req request.UpdateCartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.cartService.UpdateQuantity(c.Request.Context(), c.Param("id"), req.Delta); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Cart updated", gin.H{
		"lines": h.cartService.Lines(c.Request.Context()),
		"total": h.cartService.Total(c.Request.Context()),
	})
}

// RemoveLine deletes a line from the cart
func (h *CartHandler) RemoveLine(c *gin.Context) {
	h.cartService.RemoveLine(c.Request.Context(), c.Param("id"))
	response.NoContent(c)
}

// Clear empties the cart
func (h *CartHandler) Clear(c *gin.Context) {
	h.cartService.Clear(c.Request.Context())
	response.NoContent(c)
}
