package handler

import (
	"github.com/alexacafe/pos-api/internal/application/service"
	"github.com/alexacafe/pos-api/internal/presentation/http/dto/request"
	"github.com/alexacafe/pos-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// MenuHandler handles menu HTTP requests
type MenuHandler struct {
	menuService *service.MenuService
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(menuService *service.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// Get returns the full menu
func (h *MenuHandler) Get(c *gin.Context) {
	response.OK(c, "Menu retrieved successfully", h.menuService.Menu(c.Request.Context()))
}

// AddCategory creates a menu category
func (h *MenuHandler) AddCategory(c *gin.Context) {
	var req request.AddCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.menuService.AddCategory(c.Request.Context(), req.Name); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Category created", gin.H{"name": req.Name})
}

// RemoveCategory deletes a category with its items
func (h *MenuHandler) RemoveCategory(c *gin.Context) {
	if err := h.menuService.RemoveCategory(c.Request.Context(), c.Param("category")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// AddItem adds an item to a category
func (h *MenuHandler) AddItem(c *gin.Context) {
	var req request.AddMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.menuService.AddItem(c.Request.Context(), &service.AddItemToMenuInput{
		Category: c.Param("category"),
		Name:     req.Name,
		Image:    req.Image,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Menu item created", item)
}

// RemoveItem deletes an item from a category
func (h *MenuHandler) RemoveItem(c *gin.Context) {
	if err := h.menuService.RemoveItem(c.Request.Context(), c.Param("category"), c.Param("item")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// SetItemImage stores an item's image payload
func (h *MenuHandler) SetItemImage(c *gin.Context) {
	var req request.SetItemImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.menuService.SetItemImage(c.Request.Context(), c.Param("category"), c.Param("item"), req.Image); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item image updated", nil)
}
