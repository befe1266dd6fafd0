package selection

import "errors"

var (
	ErrEmptySelection  = errors.New("at least one variant must be selected")
	ErrTooManyVariants = errors.New("at most three variants can be selected")
	ErrPrintMismatch   = errors.New("selection belongs to a different print")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)
