package handler

import (
	"github.com/alexacafe/pos-api/internal/application/service"
	"github.com/alexacafe/pos-api/internal/presentation/http/dto/request"
	"github.com/alexacafe/pos-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// StockHandler handles stock-count HTTP requests
type StockHandler struct {
	stockService *service.StockService
}

// NewStockHandler creates a new stock handler
func NewStockHandler(stockService *service.StockService) *StockHandler {
	return &StockHandler{stockService: stockService}
}

// Get returns all stock counts
func (h *StockHandler) Get(c *gin.Context) {
	response.OK(c, "Stock retrieved successfully", h.stockService.Stock(c.Request.Context()))
}

// Adjust changes an item's count by a delta
func (h *StockHandler) Adjust(c *gin.Context) {
	var req request.AdjustCountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	count, err := h.stockService.Adjust(c.Request.Context(), c.Param("category"), c.Param("item"), req.Delta)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Stock updated", gin.H{"count": count})
}

// SetCount pins an item's count to an exact value
func (h *StockHandler) SetCount(c *gin.Context) {
	var req request.SetCountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	count, err := h.stockService.SetCount(c.Request.Context(), c.Param("category"), c.Param("item"), req.Count)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Stock updated", gin.H{"count": count})
}
