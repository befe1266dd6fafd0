// Package pricing prices a print configuration. All amounts are integers in
// minor currency units.
package pricing

import (
	domcart "example.com/denine-prints/internal/domain/cart"
	domprint "example.com/denine-prints/internal/domain/print"
)

const (
	LabelSingle   = "Single Print"
	LabelPair     = "Pair"
	LabelTriptych = "Triptych"
)

// Total returns basePrice * selected * quantity, or domcart.ErrPriceOverflow
// when the product does not fit in an int64.
func Total(basePrice int64, selected int, quantity int64) (int64, error) {
	unit, err := domcart.MulPrice(basePrice, int64(selected))
	if err != nil {
		return 0, err
	}
	return domcart.MulPrice(unit, quantity)
}

// Label names a configuration by how many variants it holds. Counts above
// three are still a Triptych.
func Label(selected int) string {
	switch {
	case selected <= 0:
		return ""
	case selected == 1:
		return LabelSingle
	case selected == 2:
		return LabelPair
	default:
		return LabelTriptych
	}
}

type Quote struct {
	UnitPrice int64
	Count     int
	Quantity  int64
	Total     int64
	Label     string
}

func QuoteFor(p domprint.Print, variantIDs []string, quantity int64) (Quote, error) {
	total, err := Total(p.BasePrice, len(variantIDs), quantity)
	if err != nil {
		return Quote{}, err
	}
	return Quote{
		UnitPrice: p.BasePrice,
		Count:     len(variantIDs),
		Quantity:  quantity,
		Total:     total,
		Label:     Label(len(variantIDs)),
	}, nil
}
