package handler

import (
	"github.com/alexacafe/pos-api/internal/application/service"
	"github.com/alexacafe/pos-api/internal/domain/entity"
	"github.com/alexacafe/pos-api/internal/domain/enum"
	"github.com/alexacafe/pos-api/internal/presentation/http/dto/request"
	"github.com/alexacafe/pos-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// PriceHandler handles price-table HTTP requests
type PriceHandler struct {
	priceService *service.PriceService
}

// NewPriceHandler creates a new price handler
func NewPriceHandler(priceService *service.PriceService) *PriceHandler {
	return &PriceHandler{priceService: priceService}
}

// Get returns the full price table
func (h *PriceHandler) Get(c *gin.Context) {
	response.OK(c, "Prices retrieved successfully", h.priceService.Table(c.Request.Context()))
}

// Update sets one price. A negative value is clamped to zero and the
// response says so rather than failing.
func (h *PriceHandler) Update(c *gin.Context) {
	var req request.UpdatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	clamped, err := h.priceService.UpdatePrice(c.Request.Context(), &service.UpdatePriceInput{
		Category: req.Category,
		Item:     req.Item,
		Size:     enum.Size(req.Size),
		Price:    entity.MoneyFromDecimal(req.Price),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	message := "Price updated"
	if clamped {
		message = "Price updated, negative value clamped to zero"
	}
	response.OK(c, message, gin.H{
		"price":   h.priceService.Price(c.Request.Context(), req.Category, req.Item, enum.Size(req.Size)),
		"clamped": clamped,
	})
}

// Replace swaps in a whole edited price table at once
func (h *PriceHandler) Replace(c *gin.Context) {
	var req request.ReplacePricesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	table := make(entity.PriceTable, len(req.Prices))
	for category, items := range req.Prices {
		table[category] = make(map[string]map[enum.Size]entity.Money, len(items))
		for item, prices := range items {
			sizes := make(map[enum.Size]entity.Money, len(prices))
			for size, price := range prices {
				sizes[enum.Size(size)] = entity.MoneyFromDecimal(price)
			}
			table[category][item] = sizes
		}
	}

	clamped, err := h.priceService.Replace(c.Request.Context(), table)
	if err != nil {
		response.Error(c, err)
		return
	}

	message := "Prices saved"
	if clamped {
		message = "Prices saved, negative values clamped to zero"
	}
	response.OK(c, message, gin.H{
		"prices":  h.priceService.Table(c.Request.Context()),
		"clamped": clamped,
	})
}
