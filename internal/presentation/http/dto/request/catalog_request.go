package request

// UpdatePriceRequest sets one price in the price table
type UpdatePriceRequest struct {
	Category string  `json:"category" binding:"required"`
	Item     string  `json:"item" binding:"required"`
	Size     string  `json:"size" binding:"required"`
	Price    float64 `json:"price"`
}

// ReplacePricesRequest swaps in a whole edited price table,
// category -> item -> size -> price in decimal currency units
type ReplacePricesRequest struct {
	Prices map[string]map[string]map[string]float64 `json:"prices" binding:"required"`
}

// AddCategoryRequest creates a menu category
type AddCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// AddMenuItemRequest adds an item to a category
type AddMenuItemRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=100"`
	Image string `json:"image"`
}

// SetItemImageRequest stores an item's image payload
type SetItemImageRequest struct {
	Image string `json:"image" binding:"required"`
}

// AdjustCountRequest changes a stock or supply count by a delta
type AdjustCountRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// SetCountRequest pins a stock count to an exact value
type SetCountRequest struct {
	Count int `json:"count" binding:"min=0"`
}

// AddSupplyRequest registers a new inventory supply
type AddSupplyRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=100"`
	Count int    `json:"count" binding:"min=0"`
}

// ImportCSVRequest carries an exported CSV payload for import
type ImportCSVRequest struct {
	Content string `json:"content" binding:"required"`
}
