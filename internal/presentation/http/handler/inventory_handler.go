package handler

import (
	"github.com/alexacafe/pos-api/internal/application/service"
	"github.com/alexacafe/pos-api/internal/presentation/http/dto/request"
	"github.com/alexacafe/pos-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// InventoryHandler handles supply-inventory HTTP requests
type InventoryHandler struct {
	inventoryService *service.InventoryService
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryService *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// Get returns all supply counts
func (h *InventoryHandler) Get(c *gin.Context) {
	response.OK(c, "Inventory retrieved successfully", h.inventoryService.Inventory(c.Request.Context()))
}

// AddSupply registers a new supply
func (h *InventoryHandler) AddSupply(c *gin.Context) {
	var req request.AddSupplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.inventoryService.AddSupply(c.Request.Context(), req.Name, req.Count); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Supply created", gin.H{"name": req.Name})
}

// Adjust changes a supply's count by a delta
func (h *InventoryHandler) Adjust(c *gin.Context) {
	var req request.AdjustCountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	count, err := h.inventoryService.Adjust(c.Request.Context(), c.Param("name"), req.Delta)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Inventory updated", gin.H{"count": count})
}

// RemoveSupply deletes a supply
func (h *InventoryHandler) RemoveSupply(c *gin.Context) {
	if err := h.inventoryService.RemoveSupply(c.Request.Context(), c.Param("name")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
