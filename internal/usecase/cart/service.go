package cart

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	domcart "example.com/denine-prints/internal/domain/cart"
)

// Service binds cart operations to durable storage. Each call loads the
// stored cart, applies one pure operation and writes the whole cart back
// before returning.
type Service struct {
	storage domcart.Storage
	logger  *zap.Logger
	mu      sync.Mutex
}

func NewService(storage domcart.Storage, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// Load returns the cart stored under key. A missing key is an empty cart, and
// so is a value that cannot be decoded.
func (s *Service) Load(ctx context.Context, key string) (domcart.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx, key)
}

// Add refuses an item that would not read back, so a bad line can never
// cost the customer the rest of the cart.
func (s *Service) Add(ctx context.Context, key string, item domcart.Item) (domcart.Cart, error) {
	if err := item.Validate(); err != nil {
		return domcart.Cart{}, err
	}
	return s.mutate(ctx, key, func(c domcart.Cart) (domcart.Cart, error) {
		return c.Add(item), nil
	})
}

// UpdateQuantity changes the quantity of the items carrying itemID. A
// quantity below 1 leaves the stored cart untouched.
func (s *Service) UpdateQuantity(ctx context.Context, key, itemID string, quantity int64) (domcart.Cart, error) {
	if quantity < 1 {
		return s.Load(ctx, key)
	}
	return s.mutate(ctx, key, func(c domcart.Cart) (domcart.Cart, error) {
		return c.UpdateQuantity(itemID, quantity)
	})
}

func (s *Service) Remove(ctx context.Context, key, itemID string) (domcart.Cart, error) {
	return s.mutate(ctx, key, func(c domcart.Cart) (domcart.Cart, error) {
		return c.Remove(itemID), nil
	})
}

// Clear drops the stored value; an absent key reads back as an empty cart.
func (s *Service) Clear(ctx context.Context, key string) (domcart.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Remove(ctx, key); err != nil {
		s.logger.Error("clear cart", zap.String("key", key), zap.Error(err))
		return domcart.Cart{}, fmt.Errorf("clear cart: %w", err)
	}
	return domcart.Cart{}.Clear(), nil
}

func (s *Service) Summary(ctx context.Context, key string) (domcart.Summary, error) {
	c, err := s.Load(ctx, key)
	if err != nil {
		return domcart.Summary{}, err
	}
	return c.Summary(), nil
}

// mutate writes nothing when op fails.
func (s *Service) mutate(ctx context.Context, key string, op func(domcart.Cart) (domcart.Cart, error)) (domcart.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load(ctx, key)
	if err != nil {
		return domcart.Cart{}, err
	}

	next, err := op(current)
	if err != nil {
		return domcart.Cart{}, err
	}
	data, err := domcart.Encode(next)
	if err != nil {
		return domcart.Cart{}, fmt.Errorf("encode cart: %w", err)
	}
	if err := s.storage.Set(ctx, key, data); err != nil {
		s.logger.Error("persist cart", zap.String("key", key), zap.Error(err))
		return domcart.Cart{}, fmt.Errorf("persist cart: %w", err)
	}
	return next, nil
}

func (s *Service) load(ctx context.Context, key string) (domcart.Cart, error) {
	data, ok, err := s.storage.Get(ctx, key)
	if err != nil {
		return domcart.Cart{}, fmt.Errorf("read cart: %w", err)
	}
	if !ok {
		return domcart.Cart{Items: []domcart.Item{}}, nil
	}

	c, err := domcart.Decode(data)
	if err != nil {
		if errors.Is(err, domcart.ErrMalformedCart) {
			s.logger.Warn("discarding malformed cart", zap.String("key", key), zap.Error(err))
			return domcart.Cart{Items: []domcart.Item{}}, nil
		}
		return domcart.Cart{}, err
	}
	return c, nil
}
