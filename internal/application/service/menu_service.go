package service

import (
	"context"
	"strconv"
	"time"

	"github.com/alexacafe/pos-api/internal/application/state"
	"github.com/alexacafe/pos-api/internal/domain/entity"
	"github.com/alexacafe/pos-api/pkg/apperror"
)

// MenuService manages categories and menu items. Menu edits keep the price
// table, stock counts and stored images in step so the other screens never
// see an item the menu no longer has.
type MenuService struct {
	state  *state.Store
	prices *PriceService
	stock  *StockService
}

// NewMenuService creates a new menu service
func NewMenuService(st *state.Store, prices *PriceService, stock *StockService) *MenuService {
	return &MenuService{state: st, prices: prices, stock: stock}
}

// Menu returns the full menu keyed by category.
func (s *MenuService) Menu(ctx context.Context) entity.Menu {
	return s.state.Menu()
}

// AddCategory creates an empty category.
func (s *MenuService) AddCategory(ctx context.Context, category string) error {
	if category == "" {
		return apperror.NewValidationError("Category name is required")
	}
	menu := s.state.Menu()
	if _, exists := menu[category]; exists {
		return apperror.NewValidationError("Category already exists")
	}
	menu[category] = []entity.MenuItem{}
	s.state.SetMenu(ctx, menu)

	prices := s.state.Prices()
	prices.InitCategory(category)
	s.state.SetPrices(ctx, prices)
	return nil
}

// RemoveCategory deletes a category with its items, prices and stock counts.
func (s *MenuService) RemoveCategory(ctx context.Context, category string) error {
	menu := s.state.Menu()
	if _, exists := menu[category]; !exists {
		return apperror.NewNotFoundError("Category not found")
	}
	delete(menu, category)
	s.state.SetMenu(ctx, menu)

	s.prices.RemoveCategory(ctx, category)
	s.stock.RemoveCategory(ctx, category)
	return nil
}

// AddItemToMenuInput represents a new menu item
type AddItemToMenuInput struct {
	Category string
	Name     string
	Image    string
}

// AddItem appends an item to a category, seeding zero prices for all sizes
// and a zero stock count.
func (s *MenuService) AddItem(ctx context.Context, input *AddItemToMenuInput) (*entity.MenuItem, error) {
	if input.Category == "" || input.Name == "" {
		return nil, apperror.NewValidationError("Category and item name are required")
	}
	menu := s.state.Menu()
	items, exists := menu[input.Category]
	if !exists {
		return nil, apperror.NewNotFoundError("Category not found")
	}
	for _, it := range items {
		if it.Name == input.Name {
			return nil, apperror.NewValidationError("Item already exists in this category")
		}
	}

	item := entity.MenuItem{
		ID:    strconv.FormatInt(time.Now().UnixMilli(), 10),
		Name:  input.Name,
		Image: input.Image,
	}
	menu[input.Category] = append(items, item)
	s.state.SetMenu(ctx, menu)

	if err := s.prices.EnsureItem(ctx, input.Category, input.Name); err != nil {
		return nil, err
	}
	s.stock.EnsureItem(ctx, input.Category, input.Name)
	return &item, nil
}

// RemoveItem deletes an item from a category along with its prices, stock
// count and stored image.
func (s *MenuService) RemoveItem(ctx context.Context, category, name string) error {
	menu := s.state.Menu()
	items, exists := menu[category]
	if !exists {
		return apperror.NewNotFoundError("Category not found")
	}
	var imageKey string
	found := false
	for i, it := range items {
		if it.Name == name {
			imageKey = it.ID
			menu[category] = append(items[:i], items[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return apperror.NewNotFoundError("Item not found")
	}
	s.state.SetMenu(ctx, menu)

	s.prices.RemoveItem(ctx, category, name)
	s.stock.RemoveItem(ctx, category, name)

	if imageKey != "" {
		images := s.state.Images()
		if _, ok := images[imageKey]; ok {
			delete(images, imageKey)
			s.state.SetImages(ctx, images)
		}
	}
	return nil
}

// SetItemImage stores an item's image payload keyed by item id.
func (s *MenuService) SetItemImage(ctx context.Context, category, name, image string) error {
	menu := s.state.Menu()
	items, exists := menu[category]
	if !exists {
		return apperror.NewNotFoundError("Category not found")
	}
	for i, it := range items {
		if it.Name == name {
			items[i].Image = image
			s.state.SetMenu(ctx, menu)

			images := s.state.Images()
			images[it.ID] = image
			s.state.SetImages(ctx, images)
			return nil
		}
	}
	return apperror.NewNotFoundError("Item not found")
}
