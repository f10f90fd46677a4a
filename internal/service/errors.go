package service

import (
	"errors"
	"fmt"
)

// The billing workflow reports failures as typed errors rather than bare
// strings so the HTTP boundary can map each kind to a status code.

// ErrEmptyBill is returned when a bill request carries no items.
var ErrEmptyBill = errors.New("no items provided in the bill")

// ValidationError reports a malformed bill request, such as a non-positive
// line quantity.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// ProductNotFoundError reports a line request referencing a product that does
// not exist in the catalog.
type ProductNotFoundError struct {
	ProductID int64
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product with ID %d not found", e.ProductID)
}

// InsufficientStockError reports a line request asking for more units than
// the product has in stock.
type InsufficientStockError struct {
	ProductID int64
	Name      string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock for product %s", e.Name)
}

// IsBusinessError reports whether err is a rule violation the client caused,
// as opposed to a storage or internal fault.
func IsBusinessError(err error) bool {
	var notFound *ProductNotFoundError
	var noStock *InsufficientStockError
	var invalid *ValidationError
	return errors.Is(err, ErrEmptyBill) ||
		errors.As(err, &notFound) ||
		errors.As(err, &noStock) ||
		errors.As(err, &invalid)
}
