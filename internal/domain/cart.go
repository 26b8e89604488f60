package domain

// CartLine is one committed (template, size, color) selection with an
// aggregated quantity. At most one line per Key exists in a cart, and a line
// with Quantity <= 0 is removed rather than stored.
type CartLine struct {
	Key            string `json:"key"`
	TemplateID     string `json:"templateId"`
	Title          string `json:"title"`
	Size           string `json:"size"`
	Color          string `json:"color"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	Image          string `json:"image,omitempty"`
}

// LineKey builds the composite identity used for merge, lookup and removal.
func LineKey(templateID, size, color string) string {
	return templateID + "-" + size + "-" + color
}
