package handler

import (
	"strconv"

	"github.com/alexacafe/pos-api/internal/application/service"
	"github.com/alexacafe/pos-api/internal/presentation/http/dto/response"
	"github.com/alexacafe/pos-api/pkg/pagination"
	"github.com/gin-gonic/gin"
)

// OrderHandler handles order-history HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// List returns the order history, paginated
func (h *OrderHandler) List(c *gin.Context) {
	params := &pagination.PaginationParams{}
	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		params.Page = page
	}
	if perPage, err := strconv.Atoi(c.DefaultQuery("per_page", "20")); err == nil {
		params.PerPage = perPage
	}

	orders := h.orderService.List(c.Request.Context())
	result, _ := pagination.Page(orders, params)
	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", result)
}

// Financials returns weekly and all-time income totals
func (h *OrderHandler) Financials(c *gin.Context) {
	response.OK(c, "Financials calculated successfully", h.orderService.Financials(c.Request.Context()))
}

// Delete removes one order summary
func (h *OrderHandler) Delete(c *gin.Context) {
	if err := h.orderService.Remove(c.Request.Context(), c.Param("orderNumber")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
