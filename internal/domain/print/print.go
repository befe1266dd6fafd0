package print

// Print is a themed product sold in a fixed set of variants. BasePrice is in
// minor currency units and applies per selected variant.
type Print struct {
	ID          string
	Theme       string
	Description string
	BasePrice   int64
	Variants    []Variant
}

type Variant struct {
	ID       string
	Name     string
	ImageRef string
	Featured bool
}

// Variant looks up a variant of p by id.
func (p Print) Variant(id string) (Variant, bool) {
	for _, v := range p.Variants {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}

// VariantIndex returns the catalog position of id, or -1.
func (p Print) VariantIndex(id string) int {
	for i, v := range p.Variants {
		if v.ID == id {
			return i
		}
	}
	return -1
}

// FeaturedVariant returns the variant flagged for thumbnails. Catalogs that
// flag none fall back to the first variant.
func (p Print) FeaturedVariant() (Variant, bool) {
	for _, v := range p.Variants {
		if v.Featured {
			return v, true
		}
	}
	if len(p.Variants) > 0 {
		return p.Variants[0], true
	}
	return Variant{}, false
}

// Draft carries the fields accepted when creating a print.
type Draft struct {
	ID          string
	Theme       string
	Description string
	BasePrice   int64
}

func (d Draft) Validate() error {
	if d.ID == "" {
		return ErrInvalidPrintID
	}
	if d.Theme == "" {
		return ErrInvalidTheme
	}
	if d.BasePrice < 0 {
		return ErrInvalidBasePrice
	}
	return nil
}

// Update is a partial update; nil fields are left as they are.
type Update struct {
	Theme       *string
	Description *string
	BasePrice   *int64
}

func (u Update) Validate() error {
	if u.Theme != nil && *u.Theme == "" {
		return ErrInvalidTheme
	}
	if u.BasePrice != nil && *u.BasePrice < 0 {
		return ErrInvalidBasePrice
	}
	return nil
}

func (u Update) Empty() bool {
	return u.Theme == nil && u.Description == nil && u.BasePrice == nil
}
