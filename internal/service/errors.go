package service

import (
	"errors"
	"fmt"

	"aquarium-storefront/internal/auth"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrOutOfStock      = errors.New("product out of stock")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrOrderNotFound   = errors.New("order not found")
	ErrPersistence     = errors.New("storage unavailable")
	ErrNotLoggedIn     = errors.New("not logged in")

	ErrInvalidCredential      = auth.ErrInvalidCredential
	ErrUnsupportedLoginMethod = auth.ErrUnsupportedMethod
)

func persistenceError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrPersistence, err)
}
