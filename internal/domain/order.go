package domain

import "time"

// ShippingTier is one shipping cost bracket. The set is closed: cost lookups
// reject values outside the declared constants.
type ShippingTier string

const (
	ShippingExpress  ShippingTier = "express"
	ShippingStandard ShippingTier = "standard"
	ShippingPickup   ShippingTier = "pickup"
)

// DefaultShippingTier is selected when a session starts or resets.
const DefaultShippingTier = ShippingStandard

// ShippingTiers lists all valid tiers in display order.
func ShippingTiers() []ShippingTier {
	return []ShippingTier{ShippingExpress, ShippingStandard, ShippingPickup}
}

// Valid reports whether the tier is one of the declared constants.
func (t ShippingTier) Valid() bool {
	switch t {
	case ShippingExpress, ShippingStandard, ShippingPickup:
		return true
	}
	return false
}

// PaymentMethod is one of the accepted ways to pay. Method-specific details
// (card number, billing address) live in the form layer, not here.
type PaymentMethod string

const (
	PaymentCredit PaymentMethod = "credit"
	PaymentPayPal PaymentMethod = "paypal"
	PaymentCheck  PaymentMethod = "check"
)

// DefaultPaymentMethod is selected when a session starts or resets.
const DefaultPaymentMethod = PaymentCredit

// Valid reports whether the method is one of the declared constants.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCredit, PaymentPayPal, PaymentCheck:
		return true
	}
	return false
}

// WorkflowState tracks the order's position in the editing → reviewing →
// confirmed/cancelled lifecycle. Terminal states reset the session back to a
// fresh editing state.
type WorkflowState string

const (
	StateEditing   WorkflowState = "editing"
	StateReviewing WorkflowState = "reviewing"
	StateConfirmed WorkflowState = "confirmed"
	StateCancelled WorkflowState = "cancelled"
)

// Totals carries the derived order amounts in integer cents. They are
// recomputed from the cart and shipping selection on every read, never cached.
type Totals struct {
	SubtotalCents int64 `json:"subtotalCents"`
	ShippingCents int64 `json:"shippingCents"`
	TotalCents    int64 `json:"totalCents"`
}

// ConfirmedOrder is the record emitted to the notification collaborator when
// a review is confirmed. Nothing is persisted beyond this event.
type ConfirmedOrder struct {
	ID          string        `json:"id"`
	Lines       []CartLine    `json:"lines"`
	Customer    CustomerInfo  `json:"customer"`
	Shipping    ShippingTier  `json:"shipping"`
	Payment     PaymentMethod `json:"payment"`
	Totals      Totals        `json:"totals"`
	ConfirmedAt time.Time     `json:"confirmedAt"`
}
