package catalog

import "errors"

var (
	ErrCatalogLoading     = errors.New("catalog is still loading")
	ErrCatalogUnavailable = errors.New("catalog could not be loaded")
)
