package models

import "strconv"

// DefaultMenu returns the seed menu written when no menu document exists.
func DefaultMenu() MenuDocument {
	return MenuDocument{
		Beverages: []MenuItem{
			{ID: "BEV001", Name: "Espresso", Price: 2.50, Category: "Coffee", Available: true, Description: "Strong black coffee", Inventory: 50},
			{ID: "BEV002", Name: "Cappuccino", Price: 3.50, Category: "Coffee", Available: true, Description: "Coffee with steamed milk foam", Inventory: 40},
			{ID: "BEV003", Name: "Latte", Price: 4.00, Category: "Coffee", Available: true, Description: "Coffee with steamed milk", Inventory: 40},
			{ID: "BEV004", Name: "Green Tea", Price: 2.00, Category: "Tea", Available: true, Description: "Fresh green tea", Inventory: 30},
			{ID: "BEV005", Name: "Fresh Orange Juice", Price: 3.00, Category: "Juice", Available: true, Description: "Freshly squeezed orange juice", Inventory: 25},
		},
		Food: []MenuItem{
			{ID: "FOOD001", Name: "Croissant", Price: 2.50, Category: "Pastry", Available: true, Description: "Buttery French pastry", Inventory: 40},
			{ID: "FOOD002", Name: "Chocolate Muffin", Price: 3.00, Category: "Pastry", Available: true, Description: "Rich chocolate muffin", Inventory: 35},
			{ID: "FOOD003", Name: "Caesar Salad", Price: 8.50, Category: "Salad", Available: true, Description: "Fresh romaine with caesar dressing", Inventory: 20},
			{ID: "FOOD004", Name: "Club Sandwich", Price: 9.00, Category: "Sandwich", Available: true, Description: "Triple layer sandwich with turkey and bacon", Inventory: 30},
			{ID: "FOOD005", Name: "Margherita Pizza", Price: 12.00, Category: "Pizza", Available: true, Description: "Classic pizza with tomato and mozzarella", Inventory: 15},
		},
	}
}

// DefaultTables returns tables "1" through "10", all available.
func DefaultTables() []Table {
	tables := make([]Table, 0, 10)
	for i := 1; i <= 10; i++ {
		tables = append(tables, Table{TableNumber: strconv.Itoa(i), Status: TableAvailable})
	}
	return tables
}

func DefaultSettings() Settings {
	return Settings{
		CafeName:      "My Cafe",
		MenuURL:       "https://mycafe.com/menu",
		TaxRate:       0.10,
		ServiceCharge: 0.05,
	}
}

func DefaultUsers() []User {
	return []User{
		{Username: "admin", Password: "admin123", Role: RoleAdmin},
		{Username: "staff", Password: "staff123", Role: RoleStaff},
	}
}
