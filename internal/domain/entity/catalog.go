package entity

// MenuItem is a drink on the menu board. Image names an entry in the image
// set (or an http URL).
type MenuItem struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

// Menu maps category name to its drinks, e.g. "Coffee" -> [Iced Coffee, ...].
type Menu map[string][]MenuItem

// Clone returns a deep copy of the menu.
func (m Menu) Clone() Menu {
	out := make(Menu, len(m))
	for category, items := range m {
		cp := make([]MenuItem, len(items))
		copy(cp, items)
		out[category] = cp
	}
	return out
}

// Stock tracks sellable drink counts per category and item.
type Stock map[string]map[string]int

// Clone returns a deep copy of the stock table.
func (s Stock) Clone() Stock {
	out := make(Stock, len(s))
	for category, items := range s {
		cp := make(map[string]int, len(items))
		for item, count := range items {
			cp[item] = count
		}
		out[category] = cp
	}
	return out
}

// Inventory tracks consumable supplies (cups, straws, beans, ...) by name.
type Inventory map[string]int

// Clone returns a copy of the inventory.
func (i Inventory) Clone() Inventory {
	out := make(Inventory, len(i))
	for item, count := range i {
		out[item] = count
	}
	return out
}

// ImageSet maps image file names to their stored data (a URL or data URI).
type ImageSet map[string]string

// Clone returns a copy of the image set.
func (s ImageSet) Clone() ImageSet {
	out := make(ImageSet, len(s))
	for name, data := range s {
		out[name] = data
	}
	return out
}
