// Package selection tracks which variants of one print a customer has chosen
// and freezes a choice into a cart item.
//
// Every function takes a State by value and returns the next State. Inputs that
// would break the 1..3 selection rule or drop the quantity below 1 return the
// state unchanged rather than an error.
package selection

import (
	"fmt"
	"sort"
	"strings"

	domcart "example.com/denine-prints/internal/domain/cart"
	domprint "example.com/denine-prints/internal/domain/print"
	"example.com/denine-prints/internal/usecase/pricing"
)

const MaxVariants = 3

type State struct {
	PrintID    string
	VariantIDs []string
	Quantity   int64
}

// Initialize selects the first variant with quantity 1.
func Initialize(p domprint.Print) (State, error) {
	if len(p.Variants) == 0 {
		return State{}, domprint.ErrNoVariants
	}
	return State{
		PrintID:    p.ID,
		VariantIDs: []string{p.Variants[0].ID},
		Quantity:   1,
	}, nil
}

// Toggle flips variantID in or out of the selection. Deselecting the last
// selected variant, selecting a fourth, and unknown ids are no-ops. The
// selection is kept in catalog order.
func Toggle(p domprint.Print, s State, variantID string) State {
	if p.VariantIndex(variantID) < 0 {
		return s
	}

	if s.Has(variantID) {
		if len(s.VariantIDs) <= 1 {
			return s
		}
		next := make([]string, 0, len(s.VariantIDs)-1)
		for _, id := range s.VariantIDs {
			if id != variantID {
				next = append(next, id)
			}
		}
		return s.with(next)
	}

	if len(s.VariantIDs) >= MaxVariants {
		return s
	}
	next := append(append([]string(nil), s.VariantIDs...), variantID)
	return s.with(catalogOrder(p, next))
}

// SelectCardinality replaces the selection with the first n catalog variants.
// n outside 1..3 is a no-op.
func SelectCardinality(p domprint.Print, s State, n int) State {
	if n < 1 || n > MaxVariants || len(p.Variants) == 0 {
		return s
	}
	if n > len(p.Variants) {
		n = len(p.Variants)
	}
	next := make([]string, 0, n)
	for _, v := range p.Variants[:n] {
		next = append(next, v.ID)
	}
	return s.with(next)
}

// SetQuantity is a no-op outside 1..domcart.MaxQuantity.
func SetQuantity(s State, quantity int64) State {
	if quantity < 1 || quantity > domcart.MaxQuantity {
		return s
	}
	s.VariantIDs = append([]string(nil), s.VariantIDs...)
	s.Quantity = quantity
	return s
}

func (s State) Has(variantID string) bool {
	for _, id := range s.VariantIDs {
		if id == variantID {
			return true
		}
	}
	return false
}

// Quote prices the current selection.
func (s State) Quote(p domprint.Print) (pricing.Quote, error) {
	return pricing.QuoteFor(p, s.VariantIDs, s.Quantity)
}

func (s State) with(variantIDs []string) State {
	s.VariantIDs = variantIDs
	return s
}

// FromRequest rebuilds a state sent back by a client. Unlike the toggles it
// reports violations, since a client-supplied state has no previous value to
// fall back to.
func FromRequest(p domprint.Print, variantIDs []string, quantity int64) (State, error) {
	if quantity < 1 {
		return State{}, ErrInvalidQuantity
	}
	if quantity > domcart.MaxQuantity {
		return State{}, domcart.ErrQuantityTooLarge
	}

	seen := make(map[string]bool, len(variantIDs))
	ids := make([]string, 0, len(variantIDs))
	for _, id := range variantIDs {
		if seen[id] {
			continue
		}
		if p.VariantIndex(id) < 0 {
			return State{}, fmt.Errorf("%w: %s", domprint.ErrVariantNotFound, id)
		}
		seen[id] = true
		ids = append(ids, id)
	}

	switch {
	case len(ids) == 0:
		return State{}, ErrEmptySelection
	case len(ids) > MaxVariants:
		return State{}, ErrTooManyVariants
	}

	return State{
		PrintID:    p.ID,
		VariantIDs: catalogOrder(p, ids),
		Quantity:   quantity,
	}, nil
}

// Build freezes s into a cart item. It is the add-to-cart guard: an empty
// selection or one that does not belong to p is refused.
func Build(p domprint.Print, s State) (domcart.Item, error) {
	if s.PrintID != p.ID {
		return domcart.Item{}, ErrPrintMismatch
	}
	if len(s.VariantIDs) == 0 {
		return domcart.Item{}, ErrEmptySelection
	}
	if len(s.VariantIDs) > MaxVariants {
		return domcart.Item{}, ErrTooManyVariants
	}
	if s.Quantity < 1 {
		return domcart.Item{}, ErrInvalidQuantity
	}
	if s.Quantity > domcart.MaxQuantity {
		return domcart.Item{}, domcart.ErrQuantityTooLarge
	}

	variants := make([]domprint.Variant, 0, len(s.VariantIDs))
	for _, id := range s.VariantIDs {
		v, ok := p.Variant(id)
		if !ok {
			return domcart.Item{}, fmt.Errorf("%w: %s", domprint.ErrVariantNotFound, id)
		}
		variants = append(variants, v)
	}

	quote, err := s.Quote(p)
	if err != nil {
		return domcart.Item{}, err
	}
	return domcart.Item{
		ID:          ItemID(p.ID, s.VariantIDs),
		PrintID:     p.ID,
		Theme:       p.Theme,
		Variants:    variants,
		Quantity:    s.Quantity,
		Price:       quote.Total,
		VariantType: quote.Label,
	}, nil
}

// ItemID derives the cart item id from the print id and the sorted variant ids.
func ItemID(printID string, variantIDs []string) string {
	sorted := append([]string(nil), variantIDs...)
	sort.Strings(sorted)
	return printID + "-" + strings.Join(sorted, "-")
}

func catalogOrder(p domprint.Print, ids []string) []string {
	sort.SliceStable(ids, func(i, j int) bool {
		return p.VariantIndex(ids[i]) < p.VariantIndex(ids[j])
	})
	return ids
}
