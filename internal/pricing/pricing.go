package pricing

import (
	"fmt"

	"fastshop/internal/domain"
)

// Table maps shipping tiers to their cost in cents. New tiers are added by
// extending the table data, not the pricing code.
type Table map[domain.ShippingTier]int64

// DefaultTable returns the stock shipping costs: express $5, standard $2,
// pickup free.
func DefaultTable() Table {
	return Table{
		domain.ShippingExpress:  500,
		domain.ShippingStandard: 200,
		domain.ShippingPickup:   0,
	}
}

// NewTable validates raw tier/cost pairs. Tiers outside the closed set and
// negative costs are rejected.
func NewTable(costs map[string]int64) (Table, error) {
	if len(costs) == 0 {
		return nil, fmt.Errorf("shipping table is empty")
	}
	out := make(Table, len(costs))
	for raw, cents := range costs {
		tier := domain.ShippingTier(raw)
		if !tier.Valid() {
			return nil, fmt.Errorf("shipping tier %q: %w", raw, domain.ErrUnknownShippingTier)
		}
		if cents < 0 {
			return nil, fmt.Errorf("shipping tier %q: negative cost %d", raw, cents)
		}
		out[tier] = cents
	}
	return out, nil
}

// Subtotal sums quantity times unit price over all lines, in cents.
func Subtotal(lines []domain.CartLine) int64 {
	var total int64
	for _, line := range lines {
		total += int64(line.Quantity) * line.UnitPriceCents
	}
	return total
}

// ShippingCost looks up the tier's cost. Tiers missing from the table fail
// with ErrUnknownShippingTier so a new tier cannot silently ship for free.
func (t Table) ShippingCost(tier domain.ShippingTier) (int64, error) {
	cents, ok := t[tier]
	if !ok {
		return 0, fmt.Errorf("shipping tier %q: %w", tier, domain.ErrUnknownShippingTier)
	}
	return cents, nil
}

// Total computes subtotal plus shipping for the selected tier.
func (t Table) Total(lines []domain.CartLine, tier domain.ShippingTier) (domain.Totals, error) {
	shipping, err := t.ShippingCost(tier)
	if err != nil {
		return domain.Totals{}, err
	}
	subtotal := Subtotal(lines)
	return domain.Totals{
		SubtotalCents: subtotal,
		ShippingCents: shipping,
		TotalCents:    subtotal + shipping,
	}, nil
}
