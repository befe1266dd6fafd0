package cart

import (
	"fmt"
	"math"

	domprint "example.com/denine-prints/internal/domain/print"
)

// Item is a frozen snapshot of a configuration taken when it was added. It
// never refers back to the live catalog. Price is the line total.
type Item struct {
	ID          string
	PrintID     string
	Theme       string
	Variants    []domprint.Variant
	Quantity    int64
	Price       int64
	VariantType string
}

// MaxQuantity bounds the quantity of one line.
const MaxQuantity int64 = 9999

// Validate reports whether item can be stored: a non-empty id, a quantity in
// 1..MaxQuantity and a non-negative price.
func (item Item) Validate() error {
	switch {
	case item.ID == "":
		return fmt.Errorf("%w: empty id", ErrInvalidItem)
	case item.Quantity < 1:
		return fmt.Errorf("%w: quantity %d", ErrInvalidItem, item.Quantity)
	case item.Quantity > MaxQuantity:
		return ErrQuantityTooLarge
	case item.Price < 0:
		return fmt.Errorf("%w: price %d", ErrInvalidItem, item.Price)
	}
	return nil
}

// MulPrice multiplies two amounts, failing with ErrPriceOverflow instead of
// wrapping around.
func MulPrice(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	r := a * b
	if r/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, ErrPriceOverflow
	}
	return r, nil
}

// Cart is an ordered list of items. Items may share an ID; they are never
// merged. All operations return a new Cart and leave the receiver untouched.
type Cart struct {
	Items []Item
}

func (c Cart) Len() int {
	return len(c.Items)
}

// Add appends item, even when an item with the same ID is already present.
func (c Cart) Add(item Item) Cart {
	items := c.clone(len(c.Items) + 1)
	item.Variants = append([]domprint.Variant(nil), item.Variants...)
	return Cart{Items: append(items, item)}
}

// UpdateQuantity sets the quantity of every item carrying id and prorates its
// stored price as price / quantity * newQuantity in integer arithmetic (the
// division truncates). Quantities below 1 leave the cart unchanged, as does an
// unknown id. A quantity above MaxQuantity or a price that does not fit in an
// int64 is refused and the cart is returned as it was.
func (c Cart) UpdateQuantity(id string, quantity int64) (Cart, error) {
	if quantity < 1 {
		return c, nil
	}
	if quantity > MaxQuantity {
		return c, ErrQuantityTooLarge
	}
	items := c.clone(len(c.Items))
	for i := range items {
		if items[i].ID != id {
			continue
		}
		if items[i].Quantity > 0 {
			price, err := MulPrice(items[i].Price/items[i].Quantity, quantity)
			if err != nil {
				return c, err
			}
			items[i].Price = price
		}
		items[i].Quantity = quantity
	}
	return Cart{Items: items}, nil
}

// Remove drops every item carrying id.
func (c Cart) Remove(id string) Cart {
	items := make([]Item, 0, len(c.Items))
	for _, item := range c.Items {
		if item.ID != id {
			items = append(items, item)
		}
	}
	return Cart{Items: items}
}

func (c Cart) Clear() Cart {
	return Cart{Items: []Item{}}
}

func (c Cart) Find(id string) (Item, bool) {
	for _, item := range c.Items {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}

func (c Cart) Subtotal() int64 {
	var sum int64
	for _, item := range c.Items {
		sum += item.Price
	}
	return sum
}

// Shipping is always free.
func (c Cart) Shipping() int64 {
	return 0
}

func (c Cart) Total() int64 {
	return c.Subtotal() + c.Shipping()
}

// Summary is the priced view of a cart.
type Summary struct {
	Items    []Item
	Subtotal int64
	Shipping int64
	Total    int64
}

func (c Cart) Summary() Summary {
	items := c.Items
	if items == nil {
		items = []Item{}
	}
	return Summary{
		Items:    items,
		Subtotal: c.Subtotal(),
		Shipping: c.Shipping(),
		Total:    c.Total(),
	}
}

func (c Cart) clone(capacity int) []Item {
	items := make([]Item, len(c.Items), capacity)
	copy(items, c.Items)
	return items
}
