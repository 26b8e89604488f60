package catalog

import (
	"fastshop/internal/domain"
)

// Catalog is the immutable set of purchasable templates, keyed by ID and kept
// in display order.
type Catalog struct {
	templates []domain.ProductTemplate
	byID      map[string]int
}

var defaultSizes = []string{"Small", "Medium", "Large", "Extra Large"}

var defaultColors = []string{"white", "blue", "black"}

// Default returns the stock t-shirt catalog: three shirts at $10.00 each.
func Default() *Catalog {
	c, _ := New([]domain.ProductTemplate{
		{
			ID:             "short-sleeve",
			Title:          "Short Sleeve T-Shirt",
			UnitPriceCents: 1000,
			Image:          "https://raw.githubusercontent.com/smercier5/Image-asset/main/Screenshot%202025-09-27%20at%208.27.05%20PM.png",
			Sizes:          defaultSizes,
			Colors:         defaultColors,
		},
		{
			ID:             "long-sleeve",
			Title:          "Long Sleeve T-Shirt",
			UnitPriceCents: 1000,
			Image:          "https://raw.githubusercontent.com/smercier5/Image-asset/main/Screenshot%202025-09-27%20at%208.28.03%20PM.png",
			Sizes:          defaultSizes,
			Colors:         defaultColors,
		},
		{
			ID:             "muscle-tee",
			Title:          "Muscle Tee",
			UnitPriceCents: 1000,
			Image:          "https://raw.githubusercontent.com/smercier5/Image-asset/main/Screenshot%202025-09-27%20at%208.28.35%20PM.png",
			Sizes:          defaultSizes,
			Colors:         defaultColors,
		},
	})
	return c
}

// New builds a catalog from validated templates. IDs must be unique.
func New(templates []domain.ProductTemplate) (*Catalog, error) {
	c := &Catalog{
		templates: make([]domain.ProductTemplate, 0, len(templates)),
		byID:      make(map[string]int, len(templates)),
	}
	for _, tpl := range templates {
		if err := validateTemplate(tpl); err != nil {
			return nil, err
		}
		if _, exists := c.byID[tpl.ID]; exists {
			return nil, &DuplicateTemplateError{ID: tpl.ID}
		}
		c.byID[tpl.ID] = len(c.templates)
		c.templates = append(c.templates, tpl)
	}
	return c, nil
}

// Get returns the template for the given ID, or ErrNotFound.
func (c *Catalog) Get(id string) (domain.ProductTemplate, error) {
	i, ok := c.byID[id]
	if !ok {
		return domain.ProductTemplate{}, domain.ErrNotFound
	}
	return c.templates[i], nil
}

// Templates returns a copy of all templates in display order.
func (c *Catalog) Templates() []domain.ProductTemplate {
	out := make([]domain.ProductTemplate, len(c.templates))
	copy(out, c.templates)
	return out
}

// Len reports the number of templates.
func (c *Catalog) Len() int {
	return len(c.templates)
}
