package domain

// ProductTemplate is one purchasable catalog entry. Templates are loaded at
// startup and never mutated afterwards.
type ProductTemplate struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	UnitPriceCents int64    `json:"unitPriceCents"`
	Image          string   `json:"image,omitempty"`
	Sizes          []string `json:"sizes"`
	Colors         []string `json:"colors"`
}

// HasSize reports whether the template offers the given size.
func (p ProductTemplate) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// HasColor reports whether the template offers the given color.
func (p ProductTemplate) HasColor(color string) bool {
	for _, c := range p.Colors {
		if c == color {
			return true
		}
	}
	return false
}
