package cart

import (
	"fastshop/internal/domain"
)

// Cart aggregates committed lines keyed by (template, size, color). Lines
// merge by quantity addition on repeated adds, and first-seen insertion order
// is kept for display.
type Cart struct {
	lines []domain.CartLine
	index map[string]int
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{index: make(map[string]int)}
}

// AddLine validates the selection and merges it into the cart. A blank size,
// blank color or non-positive quantity fails with IncompleteSelectionError
// and leaves the cart untouched. An existing line with the same key has the
// submitted quantity added to it; otherwise a new line is appended.
func (c *Cart) AddLine(templateID, title, size, color string, quantity int, unitPriceCents int64, image string) error {
	var missing []string
	if size == "" {
		missing = append(missing, "size")
	}
	if color == "" {
		missing = append(missing, "color")
	}
	if quantity <= 0 {
		missing = append(missing, "quantity")
	}
	if len(missing) > 0 {
		return &domain.IncompleteSelectionError{Missing: missing}
	}

	key := domain.LineKey(templateID, size, color)
	if i, ok := c.index[key]; ok {
		c.lines[i].Quantity += quantity
		return nil
	}

	c.index[key] = len(c.lines)
	c.lines = append(c.lines, domain.CartLine{
		Key:            key,
		TemplateID:     templateID,
		Title:          title,
		Size:           size,
		Color:          color,
		Quantity:       quantity,
		UnitPriceCents: unitPriceCents,
		Image:          image,
	})
	return nil
}

// UpdateQuantity sets a line's quantity to an absolute value. A quantity of
// zero or below removes the line. Unknown keys are ignored.
func (c *Cart) UpdateQuantity(key string, quantity int) {
	if quantity <= 0 {
		c.RemoveLine(key)
		return
	}
	if i, ok := c.index[key]; ok {
		c.lines[i].Quantity = quantity
	}
}

// RemoveLine deletes the line with the given key. Removing an absent key is
// a no-op.
func (c *Cart) RemoveLine(key string) {
	i, ok := c.index[key]
	if !ok {
		return
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	delete(c.index, key)
	for j := i; j < len(c.lines); j++ {
		c.index[c.lines[j].Key] = j
	}
}

// TotalQuantity sums the quantities of all lines.
func (c *Cart) TotalQuantity() int {
	total := 0
	for _, line := range c.lines {
		total += line.Quantity
	}
	return total
}

// Lines returns a copy of the lines in insertion order.
func (c *Cart) Lines() []domain.CartLine {
	out := make([]domain.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Clear removes every line.
func (c *Cart) Clear() {
	c.lines = nil
	c.index = make(map[string]int)
}
