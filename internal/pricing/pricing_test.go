package pricing

import (
	"errors"
	"testing"

	"fastshop/internal/domain"
)

func TestSubtotal(t *testing.T) {
	lines := []domain.CartLine{
		{Key: "a", Quantity: 2, UnitPriceCents: 1000},
		{Key: "b", Quantity: 1, UnitPriceCents: 1000},
	}
	if got := Subtotal(lines); got != 3000 {
		t.Fatalf("expected subtotal 3000, got %d", got)
	}
	if got := Subtotal(nil); got != 0 {
		t.Fatalf("expected empty subtotal 0, got %d", got)
	}
}

func TestShippingCostTable(t *testing.T) {
	table := DefaultTable()
	cases := map[domain.ShippingTier]int64{
		domain.ShippingExpress:  500,
		domain.ShippingStandard: 200,
		domain.ShippingPickup:   0,
	}
	for tier, want := range cases {
		got, err := table.ShippingCost(tier)
		if err != nil {
			t.Fatalf("tier %s: unexpected error: %v", tier, err)
		}
		if got != want {
			t.Fatalf("tier %s: expected %d, got %d", tier, want, got)
		}
	}
}

func TestShippingCostUnknownTier(t *testing.T) {
	table := DefaultTable()
	_, err := table.ShippingCost(domain.ShippingTier("drone"))
	if !errors.Is(err, domain.ErrUnknownShippingTier) {
		t.Fatalf("expected ErrUnknownShippingTier, got %v", err)
	}
}

func TestTotalIsSubtotalPlusShipping(t *testing.T) {
	table := DefaultTable()
	lines := []domain.CartLine{{Key: "a", Quantity: 3, UnitPriceCents: 1000}}

	for _, tier := range domain.ShippingTiers() {
		totals, err := table.Total(lines, tier)
		if err != nil {
			t.Fatalf("tier %s: unexpected error: %v", tier, err)
		}
		shipping := table[tier]
		if totals.SubtotalCents != 3000 {
			t.Fatalf("tier %s: expected subtotal 3000, got %d", tier, totals.SubtotalCents)
		}
		if totals.ShippingCents != shipping {
			t.Fatalf("tier %s: expected shipping %d, got %d", tier, shipping, totals.ShippingCents)
		}
		if totals.TotalCents != totals.SubtotalCents+totals.ShippingCents {
			t.Fatalf("tier %s: total %d inconsistent with parts", tier, totals.TotalCents)
		}
	}
}

func TestTotalExpressScenario(t *testing.T) {
	// 3 units at $10 each with express shipping is $35.00.
	table := DefaultTable()
	lines := []domain.CartLine{{Key: "a", Quantity: 3, UnitPriceCents: 1000}}
	totals, err := table.Total(lines, domain.ShippingExpress)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if totals.SubtotalCents != 3000 || totals.ShippingCents != 500 || totals.TotalCents != 3500 {
		t.Fatalf("unexpected totals: %+v", totals)
	}
}

func TestNewTable(t *testing.T) {
	table, err := NewTable(map[string]int64{"express": 700, "standard": 300, "pickup": 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cents, _ := table.ShippingCost(domain.ShippingExpress); cents != 700 {
		t.Fatalf("expected express 700, got %d", cents)
	}

	if _, err := NewTable(map[string]int64{"teleport": 100}); !errors.Is(err, domain.ErrUnknownShippingTier) {
		t.Fatalf("expected ErrUnknownShippingTier, got %v", err)
	}
	if _, err := NewTable(map[string]int64{"express": -1}); err == nil {
		t.Fatalf("expected error for negative cost")
	}
	if _, err := NewTable(nil); err == nil {
		t.Fatalf("expected error for empty table")
	}
}
