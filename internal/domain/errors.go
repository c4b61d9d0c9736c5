package domain

import (
	"errors"
	"fmt"
)

// Caller-correctable failures. Services return these (possibly wrapped);
// the HTTP layer maps them to status codes in one place.
var (
	ErrNotFound  = errors.New("not found")
	ErrConflict  = errors.New("conflict")
	ErrEmptyCart = errors.New("cart is empty")
	ErrForbidden = errors.New("not authorized")
	ErrBadCreds  = errors.New("invalid username or password")
)

// StockError reports a requested quantity exceeding what is on hand,
// naming the offending product.
type StockError struct {
	ProductID   string
	ProductName string
	Requested   int
	Available   int
}

func (e *StockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s (need %d, have %d)", e.ProductName, e.Requested, e.Available)
}
