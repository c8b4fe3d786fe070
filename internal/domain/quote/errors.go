package quote

import (
	"errors"
	"fmt"
)

var ErrEmptySelection = errors.New("selection is empty")

type UnknownProductError struct {
	Name string
}

func (e *UnknownProductError) Error() string {
	return fmt.Sprintf("unknown product %q", e.Name)
}

type InvalidQuantityError struct {
	Product string
	Qty     int
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("quantity %d for %q must be at least 1", e.Qty, e.Product)
}

type InsufficientStockError struct {
	Product   string
	Requested int
	Stock     int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("requested %d of %q but only %d in stock", e.Requested, e.Product, e.Stock)
}

type InvalidDiscountError struct {
	Percent float64
}

func (e *InvalidDiscountError) Error() string {
	return fmt.Sprintf("discount %.2f%% is outside [0, 100]", e.Percent)
}
