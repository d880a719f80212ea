package services

import "fmt"

// ValidationError marks bad or missing input.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NotFoundError marks an unknown item, order or table id.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// DuplicateError marks an id or table number collision.
type DuplicateError struct {
	Kind string
	ID   string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s %s already exists", e.Kind, e.ID)
}

// InsufficientInventoryError names the first cart line whose quantity
// exceeds the item's stock.
type InsufficientInventoryError struct {
	ItemName  string
	Available int
}

func (e *InsufficientInventoryError) Error() string {
	return fmt.Sprintf("not enough inventory for %s (only %d left)", e.ItemName, e.Available)
}
