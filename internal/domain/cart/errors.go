package cart

import "errors"

var (
	ErrItemNotFound  = errors.New("cart item not found")
	ErrMalformedCart = errors.New("malformed persisted cart")
	ErrEmptyCart     = errors.New("cart is empty")
	ErrInvalidItem   = errors.New("invalid cart item")

	ErrQuantityTooLarge = errors.New("quantity exceeds the per-line maximum")
	ErrPriceOverflow    = errors.New("price is out of range")
)
