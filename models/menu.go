package models

// Menu item id prefixes. Ids look like BEV003 / FOOD012.
const (
	PrefixBeverage = "BEV"
	PrefixFood     = "FOOD"
)

type MenuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Available   bool    `json:"available"`
	Description string  `json:"description"`
	Inventory   int     `json:"inventory"`
}

// MenuDocument mirrors the on-disk menu file: two sections, one per item type.
type MenuDocument struct {
	Beverages []MenuItem `json:"beverages"`
	Food      []MenuItem `json:"food"`
}

// Section returns the slice for an item type ("beverages" or "food"),
// or nil for anything else.
func (m *MenuDocument) Section(itemType string) *[]MenuItem {
	switch itemType {
	case "beverages":
		return &m.Beverages
	case "food":
		return &m.Food
	}
	return nil
}

// All flattens both sections into a single slice.
func (m MenuDocument) All() []MenuItem {
	items := make([]MenuItem, 0, len(m.Beverages)+len(m.Food))
	items = append(items, m.Beverages...)
	items = append(items, m.Food...)
	return items
}

// PrefixFor maps an item type to its id prefix.
func PrefixFor(itemType string) string {
	if itemType == "beverages" {
		return PrefixBeverage
	}
	return PrefixFood
}
