package print

import "context"

// Provider is the read side of the external catalog service.
type Provider interface {
	ListPrints(ctx context.Context) ([]Print, error)
}

// Gateway is the external catalog mutation service used by the admin surface.
type Gateway interface {
	Create(ctx context.Context, d Draft) (*Print, error)
	Update(ctx context.Context, id string, u Update) (*Print, error)
}
