package checkout

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"fastshop/internal/cart"
	"fastshop/internal/catalog"
	"fastshop/internal/domain"
	"fastshop/internal/pricing"
)

// Session owns the whole order attempt: the cart, per-template selection
// state, customer info, shipping and payment choices and the workflow state.
// Every action runs under the mutex so totals always match the cart that
// produced them.
type Session struct {
	mu sync.Mutex

	catalog  *catalog.Catalog
	table    pricing.Table
	notifier Notifier
	now      func() time.Time

	cart       *cart.Cart
	selections map[string]Selection
	customer   domain.CustomerInfo
	shipping   domain.ShippingTier
	payment    domain.PaymentMethod

	state               domain.WorkflowState
	lastOutcome         domain.WorkflowState
	reviewPanelExpanded bool
}

// Selection is the transient per-template line-selector state used to build a
// candidate cart line before it is committed.
type Selection struct {
	Size     string `json:"size"`
	Color    string `json:"color"`
	Quantity int    `json:"quantity"`
}

// Snapshot is the read-only view handed to the presentation layer after each
// action.
type Snapshot struct {
	CartLines           []domain.CartLine    `json:"cartLines"`
	TotalQuantity       int                  `json:"totalQuantity"`
	Totals              domain.Totals        `json:"totals"`
	WorkflowState       domain.WorkflowState `json:"workflowState"`
	LastOutcome         domain.WorkflowState `json:"lastOutcome,omitempty"`
	CustomerInfo        domain.CustomerInfo  `json:"customerInfo"`
	ShippingSelection   domain.ShippingTier  `json:"shippingSelection"`
	PaymentSelection    domain.PaymentMethod `json:"paymentSelection"`
	Selections          map[string]Selection `json:"selections"`
	ReviewPanelExpanded bool                 `json:"reviewPanelExpanded"`
}

// NewSession builds a fresh editing session. The table must price the default
// shipping tier; every later tier change is validated against the table too,
// so snapshot totals can never hit an unknown tier.
func NewSession(cat *catalog.Catalog, table pricing.Table, notifier Notifier) (*Session, error) {
	if cat == nil {
		return nil, fmt.Errorf("catalog required")
	}
	if _, err := table.ShippingCost(domain.DefaultShippingTier); err != nil {
		return nil, fmt.Errorf("table must include default tier: %w", err)
	}
	s := &Session{
		catalog:  cat,
		table:    table,
		notifier: notifier,
		now:      time.Now,
	}
	s.reset()
	return s, nil
}

// reset returns the session to a fresh editing state. Callers hold the mutex.
func (s *Session) reset() {
	s.cart = cart.New()
	s.selections = make(map[string]Selection)
	s.customer = domain.CustomerInfo{}
	s.shipping = domain.DefaultShippingTier
	s.payment = domain.DefaultPaymentMethod
	s.state = domain.StateEditing
	s.reviewPanelExpanded = false
}

// SelectSize records the size choice for a template's candidate line.
func (s *Session) SelectSize(templateID, size string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tpl, err := s.catalog.Get(templateID)
	if err != nil {
		return err
	}
	if size != "" && !tpl.HasSize(size) {
		return fmt.Errorf("size %q not offered for %q", size, templateID)
	}
	sel := s.selection(templateID)
	sel.Size = size
	s.selections[templateID] = sel
	return nil
}

// SelectColor records the color choice for a template's candidate line.
func (s *Session) SelectColor(templateID, color string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tpl, err := s.catalog.Get(templateID)
	if err != nil {
		return err
	}
	if color != "" && !tpl.HasColor(color) {
		return fmt.Errorf("color %q not offered for %q", color, templateID)
	}
	sel := s.selection(templateID)
	sel.Color = color
	s.selections[templateID] = sel
	return nil
}

// SetQuantity records the quantity for a template's candidate line. The value
// is only validated when the line is committed.
func (s *Session) SetQuantity(templateID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.catalog.Get(templateID); err != nil {
		return err
	}
	sel := s.selection(templateID)
	sel.Quantity = quantity
	s.selections[templateID] = sel
	return nil
}

// selection returns the template's current selector state, defaulting to
// quantity 1. Callers hold the mutex.
func (s *Session) selection(templateID string) Selection {
	if sel, ok := s.selections[templateID]; ok {
		return sel
	}
	return Selection{Quantity: 1}
}

// AddToCart commits the template's current selection as a cart line, merging
// quantities on an existing key, and resets the selector on success. Title,
// price and image always come from the catalog.
func (s *Session) AddToCart(templateID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tpl, err := s.catalog.Get(templateID)
	if err != nil {
		return err
	}
	sel := s.selection(templateID)
	if err := s.cart.AddLine(tpl.ID, tpl.Title, sel.Size, sel.Color, sel.Quantity, tpl.UnitPriceCents, tpl.Image); err != nil {
		return err
	}
	delete(s.selections, templateID)
	return nil
}

// UpdateCartQuantity sets a line's quantity to an absolute value; zero or
// below removes the line.
func (s *Session) UpdateCartQuantity(key string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.UpdateQuantity(key, quantity)
}

// RemoveFromCart deletes a line; absent keys are a no-op.
func (s *Session) RemoveFromCart(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.RemoveLine(key)
}

// SetShippingTier switches the active shipping tier. The tier must be priced
// by the table.
func (s *Session) SetShippingTier(tier domain.ShippingTier) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.table.ShippingCost(tier); err != nil {
		return err
	}
	s.shipping = tier
	return nil
}

// SetPaymentMethod switches the active payment method.
func (s *Session) SetPaymentMethod(method domain.PaymentMethod) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !method.Valid() {
		return fmt.Errorf("payment method %q: %w", method, domain.ErrUnknownPaymentMethod)
	}
	s.payment = method
	return nil
}

// SetCustomerField assigns one contact field by name.
func (s *Session) SetCustomerField(name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.customer.SetField(name, value)
}

// Submit validates the order attempt and moves editing → reviewing. All
// failures are reported together and the state is left untouched on failure.
func (s *Session) Submit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != domain.StateEditing {
		return fmt.Errorf("submit from %s: %w", s.state, domain.ErrInvalidTransition)
	}

	var errs []error
	if s.cart.TotalQuantity() == 0 {
		errs = append(errs, domain.ErrEmptyCart)
	}
	if missing := s.customer.MissingFields(); len(missing) > 0 {
		errs = append(errs, &domain.IncompleteCustomerInfoError{Missing: missing})
	}
	if len(errs) > 0 {
		return &domain.ValidationErrors{Errs: errs}
	}

	s.state = domain.StateReviewing
	return nil
}

// Confirm resolves a reviewed order: the confirmed order is emitted to the
// notifier and returned, and the session resets for the next attempt.
func (s *Session) Confirm() (domain.ConfirmedOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != domain.StateReviewing {
		return domain.ConfirmedOrder{}, fmt.Errorf("confirm from %s: %w", s.state, domain.ErrInvalidTransition)
	}

	totals, err := s.table.Total(s.cart.Lines(), s.shipping)
	if err != nil {
		return domain.ConfirmedOrder{}, err
	}
	order := domain.ConfirmedOrder{
		ID:          uuid.NewString(),
		Lines:       s.cart.Lines(),
		Customer:    s.customer,
		Shipping:    s.shipping,
		Payment:     s.payment,
		Totals:      totals,
		ConfirmedAt: s.now().UTC(),
	}
	if s.notifier != nil {
		s.notifier.OrderConfirmed(order)
	}

	s.lastOutcome = domain.StateConfirmed
	s.reset()
	return order, nil
}

// Cancel aborts the attempt from reviewing or editing and resets the session.
func (s *Session) Cancel() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != domain.StateReviewing && s.state != domain.StateEditing {
		return fmt.Errorf("cancel from %s: %w", s.state, domain.ErrInvalidTransition)
	}
	s.lastOutcome = domain.StateCancelled
	s.reset()
	return nil
}

// ClearAll resets cart, customer info and selections to defaults without
// recording an order outcome.
func (s *Session) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

// ToggleReviewPanel flips the review panel display flag. This is a display
// preference only and never changes the workflow state.
func (s *Session) ToggleReviewPanel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviewPanelExpanded = !s.reviewPanelExpanded
}

// Snapshot returns the current read-only view. Totals are recomputed from
// the live cart and shipping selection on every call.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	// The active tier is validated on every set, so the lookup cannot miss.
	totals, _ := s.table.Total(s.cart.Lines(), s.shipping)

	selections := make(map[string]Selection, len(s.selections))
	for id, sel := range s.selections {
		selections[id] = sel
	}

	return Snapshot{
		CartLines:           s.cart.Lines(),
		TotalQuantity:       s.cart.TotalQuantity(),
		Totals:              totals,
		WorkflowState:       s.state,
		LastOutcome:         s.lastOutcome,
		CustomerInfo:        s.customer,
		ShippingSelection:   s.shipping,
		PaymentSelection:    s.payment,
		Selections:          selections,
		ReviewPanelExpanded: s.reviewPanelExpanded,
	}
}
