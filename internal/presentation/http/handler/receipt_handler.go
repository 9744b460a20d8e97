package handler

import (
	"strconv"

	"github.com/alexacafe/pos-api/internal/application/service"
	"github.com/alexacafe/pos-api/internal/domain/entity"
	"github.com/alexacafe/pos-api/internal/domain/enum"
	"github.com/alexacafe/pos-api/internal/presentation/http/dto/request"
	"github.com/alexacafe/pos-api/internal/presentation/http/dto/response"
	"github.com/alexacafe/pos-api/pkg/pagination"
	"github.com/gin-gonic/gin"
)

// ReceiptHandler handles purchase-history HTTP requests
type ReceiptHandler struct {
	receiptService *service.ReceiptService
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

// List returns the purchase history, paginated
func (h *ReceiptHandler) List(c *gin.Context) {
	params := &pagination.PaginationParams{}
	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		params.Page = page
	}
	if perPage, err := strconv.Atoi(c.DefaultQuery("per_page", "20")); err == nil {
		params.PerPage = perPage
	}

	history := h.receiptService.List(c.Request.Context())
	result, _ := pagination.Page(history, params)
	response.SuccessWithPagination(c, 200, "Purchase history retrieved successfully", result)
}

// Get returns a single receipt by order number
func (h *ReceiptHandler) Get(c *gin.Context) {
	receipt, err := h.receiptService.Get(c.Request.Context(), c.Param("orderNumber"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Receipt retrieved successfully", receipt)
}

// EditCashAmount corrects the tendered cash on a receipt
func (h *ReceiptHandler) EditCashAmount(c *gin.Context) {
	var req request.EditCashAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	receipt, err := h.receiptService.EditCashAmount(
		c.Request.Context(), c.Param("orderNumber"), entity.MoneyFromDecimal(req.CashAmount))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Cash amount updated", receipt)
}

// RemoveLineItem deletes one line from a receipt by index
func (h *ReceiptHandler) RemoveLineItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.BadRequest(c, "Invalid line item index")
		return
	}

	receipt, err := h.receiptService.RemoveLineItem(c.Request.Context(), c.Param("orderNumber"), index)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Line item removed", receipt)
}

// AddLineItems merges new items into a receipt
func (h *ReceiptHandler) AddLineItems(c *gin.Context) {
	var req request.AddReceiptItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	items := make([]entity.ReceiptItem, len(req.Items))
	for i, it := range req.Items {
		items[i] = entity.ReceiptItem{
			Name:      it.Name,
			Size:      enum.Size(it.Size),
			UnitPrice: entity.MoneyFromDecimal(it.Price),
		}
	}

	receipt, err := h.receiptService.AddLineItems(c.Request.Context(), c.Param("orderNumber"), items)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Items added to receipt", receipt)
}

// Commit finalizes an edit session with a corrected customer name
func (h *ReceiptHandler) Commit(c *gin.Context) {
	var req request.CommitReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	receipt, err := h.receiptService.Commit(c.Request.Context(), c.Param("orderNumber"), req.CustomerName)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Receipt updated", receipt)
}

// Delete removes a receipt and its order summary
func (h *ReceiptHandler) Delete(c *gin.Context) {
	if err := h.receiptService.Delete(c.Request.Context(), c.Param("orderNumber")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
