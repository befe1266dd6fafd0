package cart

import "context"

// Storage is the durable key-value binding for the cart. Get reports false
// when the key is absent.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}
