package checkout

import (
	"errors"
	"testing"
	"time"

	"fastshop/internal/catalog"
	"fastshop/internal/domain"
	"fastshop/internal/pricing"
)

type stubNotifier struct {
	orders []domain.ConfirmedOrder
}

func (s *stubNotifier) OrderConfirmed(order domain.ConfirmedOrder) {
	s.orders = append(s.orders, order)
}

func newTestSession(t *testing.T) (*Session, *stubNotifier) {
	t.Helper()
	notifier := &stubNotifier{}
	s, err := NewSession(catalog.Default(), pricing.DefaultTable(), notifier)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return s, notifier
}

func addMediumBlue(t *testing.T, s *Session, qty int) {
	t.Helper()
	if err := s.SelectSize("short-sleeve", "Medium"); err != nil {
		t.Fatalf("select size: %v", err)
	}
	if err := s.SelectColor("short-sleeve", "blue"); err != nil {
		t.Fatalf("select color: %v", err)
	}
	if err := s.SetQuantity("short-sleeve", qty); err != nil {
		t.Fatalf("set quantity: %v", err)
	}
	if err := s.AddToCart("short-sleeve"); err != nil {
		t.Fatalf("add to cart: %v", err)
	}
}

func fillCustomer(t *testing.T, s *Session) {
	t.Helper()
	fields := map[string]string{
		"name":    "Ada Lovelace",
		"address": "1 Analytical Way",
		"state":   "NY",
		"zip":     "10001",
		"email":   "ada@example.com",
		"phone":   "555-0100",
	}
	for name, value := range fields {
		if err := s.SetCustomerField(name, value); err != nil {
			t.Fatalf("set %s: %v", name, err)
		}
	}
}

func TestNewSessionRequiresDefaultTier(t *testing.T) {
	_, err := NewSession(catalog.Default(), pricing.Table{domain.ShippingPickup: 0}, nil)
	if !errors.Is(err, domain.ErrUnknownShippingTier) {
		t.Fatalf("expected ErrUnknownShippingTier, got %v", err)
	}
}

func TestSelectorCommitsAndResets(t *testing.T) {
	s, _ := newTestSession(t)
	addMediumBlue(t, s, 2)

	snap := s.Snapshot()
	if len(snap.CartLines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(snap.CartLines))
	}
	line := snap.CartLines[0]
	if line.Title != "Short Sleeve T-Shirt" || line.UnitPriceCents != 1000 {
		t.Fatalf("line must take title and price from the catalog: %+v", line)
	}
	if _, ok := snap.Selections["short-sleeve"]; ok {
		t.Fatalf("selector must reset after a successful add")
	}
}

func TestAddToCartMergesQuantities(t *testing.T) {
	s, _ := newTestSession(t)
	addMediumBlue(t, s, 2)
	addMediumBlue(t, s, 1)

	snap := s.Snapshot()
	if len(snap.CartLines) != 1 {
		t.Fatalf("expected 1 merged line, got %d", len(snap.CartLines))
	}
	if snap.CartLines[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", snap.CartLines[0].Quantity)
	}
	if snap.Totals.SubtotalCents != 3000 {
		t.Fatalf("expected subtotal 3000, got %d", snap.Totals.SubtotalCents)
	}
}

func TestAddToCartIncompleteSelection(t *testing.T) {
	s, _ := newTestSession(t)
	if err := s.SelectSize("short-sleeve", "Medium"); err != nil {
		t.Fatalf("select size: %v", err)
	}

	err := s.AddToCart("short-sleeve")
	var sel *domain.IncompleteSelectionError
	if !errors.As(err, &sel) {
		t.Fatalf("expected IncompleteSelectionError, got %v", err)
	}
	if len(s.Snapshot().CartLines) != 0 {
		t.Fatalf("cart must stay empty after failed add")
	}
}

func TestAddToCartUnknownTemplate(t *testing.T) {
	s, _ := newTestSession(t)
	if err := s.AddToCart("hoodie"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSelectorRejectsUnofferedOptions(t *testing.T) {
	s, _ := newTestSession(t)
	if err := s.SelectSize("short-sleeve", "XXL"); err == nil {
		t.Fatalf("expected error for unoffered size")
	}
	if err := s.SelectColor("short-sleeve", "red"); err == nil {
		t.Fatalf("expected error for unoffered color")
	}
	if err := s.SelectSize("hoodie", "Medium"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateCartQuantityZeroRemoves(t *testing.T) {
	s, _ := newTestSession(t)
	addMediumBlue(t, s, 2)

	s.UpdateCartQuantity("short-sleeve-Medium-blue", 0)

	snap := s.Snapshot()
	if len(snap.CartLines) != 0 || snap.TotalQuantity != 0 {
		t.Fatalf("expected empty cart, got %+v", snap.CartLines)
	}
}

func TestSetShippingTier(t *testing.T) {
	s, _ := newTestSession(t)
	addMediumBlue(t, s, 3)

	if err := s.SetShippingTier(domain.ShippingExpress); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snap := s.Snapshot()
	if snap.Totals.ShippingCents != 500 || snap.Totals.TotalCents != 3500 {
		t.Fatalf("unexpected totals: %+v", snap.Totals)
	}

	if err := s.SetShippingTier(domain.ShippingTier("drone")); !errors.Is(err, domain.ErrUnknownShippingTier) {
		t.Fatalf("expected ErrUnknownShippingTier, got %v", err)
	}
	if s.Snapshot().ShippingSelection != domain.ShippingExpress {
		t.Fatalf("failed set must not change the selection")
	}
}

func TestSetPaymentMethod(t *testing.T) {
	s, _ := newTestSession(t)
	if err := s.SetPaymentMethod(domain.PaymentCheck); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.SetPaymentMethod(domain.PaymentMethod("bitcoin")); !errors.Is(err, domain.ErrUnknownPaymentMethod) {
		t.Fatalf("expected ErrUnknownPaymentMethod, got %v", err)
	}
	if s.Snapshot().PaymentSelection != domain.PaymentCheck {
		t.Fatalf("failed set must not change the selection")
	}
}

func TestSetCustomerFieldUnknownName(t *testing.T) {
	s, _ := newTestSession(t)
	if err := s.SetCustomerField("nickname", "ada"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSubmitEmptyCart(t *testing.T) {
	s, _ := newTestSession(t)
	fillCustomer(t, s)

	err := s.Submit()
	if !errors.Is(err, domain.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
	if s.Snapshot().WorkflowState != domain.StateEditing {
		t.Fatalf("workflow must remain editing after failed submit")
	}
}

func TestSubmitIncompleteCustomerInfo(t *testing.T) {
	s, _ := newTestSession(t)
	addMediumBlue(t, s, 1)
	if err := s.SetCustomerField("name", "Ada Lovelace"); err != nil {
		t.Fatalf("set name: %v", err)
	}

	err := s.Submit()
	var info *domain.IncompleteCustomerInfoError
	if !errors.As(err, &info) {
		t.Fatalf("expected IncompleteCustomerInfoError, got %v", err)
	}
	want := []string{"address", "state", "zip", "email", "phone"}
	if len(info.Missing) != len(want) {
		t.Fatalf("expected missing %v, got %v", want, info.Missing)
	}
	for i, f := range want {
		if info.Missing[i] != f {
			t.Fatalf("expected missing %v, got %v", want, info.Missing)
		}
	}
}

func TestSubmitReportsAllFailuresTogether(t *testing.T) {
	s, _ := newTestSession(t)

	err := s.Submit()
	var set *domain.ValidationErrors
	if !errors.As(err, &set) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
	if !errors.Is(err, domain.ErrEmptyCart) {
		t.Fatalf("expected set to contain ErrEmptyCart, got %v", err)
	}
	var info *domain.IncompleteCustomerInfoError
	if !errors.As(err, &info) {
		t.Fatalf("expected set to contain IncompleteCustomerInfoError, got %v", err)
	}
}

func TestSubmitSuccessEntersReviewing(t *testing.T) {
	s, _ := newTestSession(t)
	addMediumBlue(t, s, 1)
	fillCustomer(t, s)

	if err := s.Submit(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Snapshot().WorkflowState != domain.StateReviewing {
		t.Fatalf("expected reviewing state")
	}

	if err := s.Submit(); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition on resubmit, got %v", err)
	}
}

func TestConfirmEmitsOrderAndResets(t *testing.T) {
	s, notifier := newTestSession(t)
	s.now = func() time.Time { return time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC) }
	addMediumBlue(t, s, 3)
	fillCustomer(t, s)
	if err := s.SetShippingTier(domain.ShippingExpress); err != nil {
		t.Fatalf("set shipping: %v", err)
	}
	if err := s.SetPaymentMethod(domain.PaymentPayPal); err != nil {
		t.Fatalf("set payment: %v", err)
	}
	if err := s.Submit(); err != nil {
		t.Fatalf("submit: %v", err)
	}

	order, err := s.Confirm()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.ID == "" {
		t.Fatalf("expected a generated order id")
	}
	if order.Totals.TotalCents != 3500 {
		t.Fatalf("expected total 3500, got %d", order.Totals.TotalCents)
	}
	if order.Shipping != domain.ShippingExpress || order.Payment != domain.PaymentPayPal {
		t.Fatalf("unexpected selections on order: %+v", order)
	}
	if !order.ConfirmedAt.Equal(time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected confirmation time %v", order.ConfirmedAt)
	}
	if len(notifier.orders) != 1 || notifier.orders[0].ID != order.ID {
		t.Fatalf("expected the notifier to receive the order")
	}

	snap := s.Snapshot()
	if snap.WorkflowState != domain.StateEditing {
		t.Fatalf("expected fresh editing state after confirm")
	}
	if snap.LastOutcome != domain.StateConfirmed {
		t.Fatalf("expected confirmed outcome, got %s", snap.LastOutcome)
	}
	if len(snap.CartLines) != 0 || snap.CustomerInfo != (domain.CustomerInfo{}) {
		t.Fatalf("expected cart and customer info cleared")
	}
	if snap.ShippingSelection != domain.ShippingStandard || snap.PaymentSelection != domain.PaymentCredit {
		t.Fatalf("expected default selections after confirm")
	}
}

func TestConfirmOutsideReviewing(t *testing.T) {
	s, notifier := newTestSession(t)
	if _, err := s.Confirm(); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if len(notifier.orders) != 0 {
		t.Fatalf("notifier must not fire on failed confirm")
	}
}

func TestCancelResetsFromReviewing(t *testing.T) {
	s, notifier := newTestSession(t)
	addMediumBlue(t, s, 1)
	fillCustomer(t, s)
	if err := s.Submit(); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if err := s.Cancel(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snap := s.Snapshot()
	if snap.WorkflowState != domain.StateEditing || snap.LastOutcome != domain.StateCancelled {
		t.Fatalf("unexpected state after cancel: %+v", snap)
	}
	if len(snap.CartLines) != 0 {
		t.Fatalf("expected cart cleared after cancel")
	}
	if len(notifier.orders) != 0 {
		t.Fatalf("cancel must not emit an order")
	}
}

func TestCancelAbortsFromEditing(t *testing.T) {
	s, _ := newTestSession(t)
	addMediumBlue(t, s, 1)

	if err := s.Cancel(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Snapshot().CartLines) != 0 {
		t.Fatalf("expected cart cleared after abort")
	}
}

func TestClearAllResetsWithoutOutcome(t *testing.T) {
	s, _ := newTestSession(t)
	addMediumBlue(t, s, 2)
	fillCustomer(t, s)

	s.ClearAll()

	snap := s.Snapshot()
	if len(snap.CartLines) != 0 || snap.CustomerInfo != (domain.CustomerInfo{}) {
		t.Fatalf("expected everything cleared")
	}
	if snap.LastOutcome != "" {
		t.Fatalf("clear must not record an order outcome")
	}
}

func TestToggleReviewPanelIndependentOfWorkflow(t *testing.T) {
	s, _ := newTestSession(t)

	s.ToggleReviewPanel()
	snap := s.Snapshot()
	if !snap.ReviewPanelExpanded {
		t.Fatalf("expected panel expanded")
	}
	if snap.WorkflowState != domain.StateEditing {
		t.Fatalf("toggling the panel must not change the workflow state")
	}

	s.ToggleReviewPanel()
	if s.Snapshot().ReviewPanelExpanded {
		t.Fatalf("expected panel collapsed")
	}
}

func TestSnapshotTotalsTrackCart(t *testing.T) {
	s, _ := newTestSession(t)
	addMediumBlue(t, s, 2)

	before := s.Snapshot()
	if before.Totals.TotalCents != 2200 {
		t.Fatalf("expected total 2200 with standard shipping, got %d", before.Totals.TotalCents)
	}

	s.UpdateCartQuantity("short-sleeve-Medium-blue", 5)
	after := s.Snapshot()
	if after.Totals.SubtotalCents != 5000 || after.Totals.TotalCents != 5200 {
		t.Fatalf("totals must track the live cart: %+v", after.Totals)
	}
}
