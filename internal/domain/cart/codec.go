package cart

import (
	"encoding/json"
	"fmt"

	domprint "example.com/denine-prints/internal/domain/print"
)

// Persisted layout. Field names follow the storefront's browser cart so a
// value written by either side reads back on the other.
type storedItem struct {
	ID          string          `json:"id"`
	PrintID     string          `json:"printId"`
	Theme       string          `json:"theme"`
	Variants    []storedVariant `json:"variants"`
	Quantity    int64           `json:"quantity"`
	Price       int64           `json:"price"`
	VariantType string          `json:"variantType"`
}

type storedVariant struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Image    string `json:"image"`
	Featured bool   `json:"featured"`
}

// Encode serializes the whole cart as a JSON array of items.
func Encode(c Cart) ([]byte, error) {
	out := make([]storedItem, 0, len(c.Items))
	for _, item := range c.Items {
		variants := make([]storedVariant, 0, len(item.Variants))
		for _, v := range item.Variants {
			variants = append(variants, storedVariant{
				ID:       v.ID,
				Name:     v.Name,
				Image:    v.ImageRef,
				Featured: v.Featured,
			})
		}
		out = append(out, storedItem{
			ID:          item.ID,
			PrintID:     item.PrintID,
			Theme:       item.Theme,
			Variants:    variants,
			Quantity:    item.Quantity,
			Price:       item.Price,
			VariantType: item.VariantType,
		})
	}
	return json.Marshal(out)
}

// Decode parses a value written by Encode. Anything that is not a well-formed
// item array yields ErrMalformedCart.
func Decode(data []byte) (Cart, error) {
	var stored []storedItem
	if err := json.Unmarshal(data, &stored); err != nil {
		return Cart{}, fmt.Errorf("%w: %v", ErrMalformedCart, err)
	}

	items := make([]Item, 0, len(stored))
	for i, s := range stored {
		if s.ID == "" || s.Quantity < 1 || s.Price < 0 {
			return Cart{}, fmt.Errorf("%w: item %d is invalid", ErrMalformedCart, i)
		}
		variants := make([]domprint.Variant, 0, len(s.Variants))
		for _, v := range s.Variants {
			variants = append(variants, domprint.Variant{
				ID:       v.ID,
				Name:     v.Name,
				ImageRef: v.Image,
				Featured: v.Featured,
			})
		}
		items = append(items, Item{
			ID:          s.ID,
			PrintID:     s.PrintID,
			Theme:       s.Theme,
			Variants:    variants,
			Quantity:    s.Quantity,
			Price:       s.Price,
			VariantType: s.VariantType,
		})
	}
	return Cart{Items: items}, nil
}
