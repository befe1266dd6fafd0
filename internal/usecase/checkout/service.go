// Package checkout is the hand-off point to a payment provider. No provider
// is wired: Checkout validates the cart and reports ErrCheckoutUnavailable
// with the summary that would have been charged.
package checkout

import (
	"context"
	"errors"

	domcart "example.com/denine-prints/internal/domain/cart"
)

var ErrCheckoutUnavailable = errors.New("checkout is not available")

type CartLoader interface {
	Load(ctx context.Context, key string) (domcart.Cart, error)
}

type Service struct {
	carts CartLoader
}

func NewService(carts CartLoader) *Service {
	return &Service{carts: carts}
}

// Checkout never charges and never clears the cart.
func (s *Service) Checkout(ctx context.Context, key string) (domcart.Summary, error) {
	c, err := s.carts.Load(ctx, key)
	if err != nil {
		return domcart.Summary{}, err
	}
	if c.Len() == 0 {
		return domcart.Summary{}, domcart.ErrEmptyCart
	}
	return c.Summary(), ErrCheckoutUnavailable
}
