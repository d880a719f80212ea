package models

// Order statuses. Pending/Preparing/Ready count as active for table
// occupancy; Completed and Cancelled are terminal.
const (
	StatusPending   = "Pending"
	StatusPreparing = "Preparing"
	StatusReady     = "Ready"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

// Payment statuses.
const (
	PaymentUnpaid  = "Unpaid"
	PaymentPaid    = "Paid"
	PaymentPartial = "Partial"
)

var OrderStatuses = []string{StatusPending, StatusPreparing, StatusReady, StatusCompleted, StatusCancelled}

var PaymentStatuses = []string{PaymentUnpaid, PaymentPaid, PaymentPartial}

// ValidStatus reports whether s is one of the five order statuses.
func ValidStatus(s string) bool {
	for _, v := range OrderStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// ValidPaymentStatus reports whether s is a known payment status.
func ValidPaymentStatus(s string) bool {
	for _, v := range PaymentStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// ActiveStatus reports whether s keeps a table occupied.
func ActiveStatus(s string) bool {
	return s == StatusPending || s == StatusPreparing || s == StatusReady
}

type OrderItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Subtotal float64 `json:"subtotal"`
}

type Order struct {
	ID            string      `json:"id"`
	CustomerName  string      `json:"customer_name"`
	TableNumber   string      `json:"table_number"`
	Items         []OrderItem `json:"items"`
	Subtotal      float64     `json:"subtotal"`
	Discount      float64     `json:"discount"`
	Tax           float64     `json:"tax"`
	ServiceCharge float64     `json:"service_charge"`
	Total         float64     `json:"total"`
	Date          string      `json:"date"`
	Time          string      `json:"time"`
	Timestamp     string      `json:"timestamp"`
	Status        string      `json:"status"`
	PaymentStatus string      `json:"payment_status"`
}
