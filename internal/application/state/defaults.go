package state

import (
	"github.com/alexacafe/pos-api/internal/domain/entity"
	"github.com/alexacafe/pos-api/internal/domain/enum"
)

// Seed data for a fresh shop. Used when no snapshot exists yet.

func SeedMenu() entity.Menu {
	return entity.Menu{
		"Coffee": {
			{ID: "1", Name: "Iced Coffee"},
			{ID: "2", Name: "Coffee Nutella"},
			{ID: "3", Name: "Spanish Latte"},
			{ID: "4", Name: "Hot Tea Tarik"},
			{ID: "5", Name: "Iced Coffee Oreo"},
			{ID: "6", Name: "Thai Coffee"},
		},
		"Milk Tea": {
			{ID: "11", Name: "Wintermelon"},
			{ID: "12", Name: "Matcha"},
			{ID: "13", Name: "Okinawa"},
			{ID: "14", Name: "Iced Milo"},
			{ID: "15", Name: "Chocolate"},
			{ID: "16", Name: "Cookies & Cream"},
			{ID: "17", Name: "Matcha Berry"},
			{ID: "18", Name: "Nutella Hazelnut"},
			{ID: "19", Name: "Strawberry"},
		},
		"Fresh Fruits": {
			{ID: "25", Name: "Mango Yakult"},
			{ID: "26", Name: "Banana Berry"},
			{ID: "27", Name: "Tropical Mango"},
			{ID: "28", Name: "Blue Lemon"},
		},
	}
}

// SeedPrices builds the default price table: one flat price tier per
// category across every item in it.
func SeedPrices() entity.PriceTable {
	tiers := map[string][3]entity.Money{
		"Coffee":       {12000, 14000, 16000},
		"Milk Tea":     {14000, 16000, 18000},
		"Fresh Fruits": {16000, 18000, 20000},
	}
	table := entity.PriceTable{}
	for category, items := range SeedMenu() {
		t := tiers[category]
		table.InitCategory(category)
		for _, item := range items {
			table.InitItem(category, item.Name)
			table.Set(category, item.Name, enum.Size12oz, t[0])
			table.Set(category, item.Name, enum.Size16oz, t[1])
			table.Set(category, item.Name, enum.Size20oz, t[2])
		}
	}
	return table
}

func SeedStock() entity.Stock {
	stock := entity.Stock{}
	for category, items := range SeedMenu() {
		stock[category] = map[string]int{}
		for _, item := range items {
			stock[category][item.Name] = 50
		}
	}
	return stock
}

func SeedInventory() entity.Inventory {
	return entity.Inventory{
		"Plastic Cups": 100,
		"Straws":       200,
		"Milk":         50,
		"Coffee Beans": 80,
		"Tea Leaves":   90,
		"Sugar":        150,
		"Fruit Syrups": 70,
	}
}
