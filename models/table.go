package models

// Table statuses. Occupied is derived from active orders during
// reconciliation; Reserved is a sticky manual override.
const (
	TableAvailable = "Available"
	TableOccupied  = "Occupied"
	TableReserved  = "Reserved"
)

var TableStatuses = []string{TableAvailable, TableOccupied, TableReserved}

// ValidTableStatus reports whether s is a known table status.
func ValidTableStatus(s string) bool {
	for _, v := range TableStatuses {
		if v == s {
			return true
		}
	}
	return false
}

type Table struct {
	TableNumber string `json:"table_number"`
	Status      string `json:"status"`
}
