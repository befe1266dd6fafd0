package print

import "errors"

var (
	ErrPrintNotFound    = errors.New("print not found")
	ErrVariantNotFound  = errors.New("variant not found")
	ErrNoVariants       = errors.New("print has no variants")
	ErrInvalidBasePrice = errors.New("base price must be a non-negative integer")
	ErrInvalidPrintID   = errors.New("print id is required")
	ErrInvalidTheme     = errors.New("theme is required")
)
