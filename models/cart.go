package models

// CartItem is one uncommitted line of an in-progress order. Carts are
// session-local and discarded on order placement.
type CartItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Subtotal float64 `json:"subtotal"`
}
