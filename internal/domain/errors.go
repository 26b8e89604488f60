package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrEmptyCart indicates a submit attempt with zero total quantity.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrUnknownShippingTier indicates a tier outside the closed set.
	ErrUnknownShippingTier = errors.New("unknown shipping tier")

	// ErrUnknownPaymentMethod indicates a method outside the closed set.
	ErrUnknownPaymentMethod = errors.New("unknown payment method")

	// ErrInvalidTransition indicates a workflow action that is not valid
	// from the current state, such as confirming without a review.
	ErrInvalidTransition = errors.New("invalid workflow transition")
)

// IncompleteSelectionError reports an add-to-cart attempt with a blank size,
// blank color or non-positive quantity.
type IncompleteSelectionError struct {
	Missing []string
}

func (e *IncompleteSelectionError) Error() string {
	return "incomplete selection: " + strings.Join(e.Missing, ", ")
}

// IncompleteCustomerInfoError names the required customer fields left blank.
type IncompleteCustomerInfoError struct {
	Missing []string
}

func (e *IncompleteCustomerInfoError) Error() string {
	return "incomplete customer info: missing " + strings.Join(e.Missing, ", ")
}

// ValidationErrors joins the independent submit failures so the caller sees
// every problem at once.
type ValidationErrors struct {
	Errs []error
}

func (e *ValidationErrors) Error() string {
	parts := make([]string, 0, len(e.Errs))
	for _, err := range e.Errs {
		parts = append(parts, err.Error())
	}
	return fmt.Sprintf("order validation failed: %s", strings.Join(parts, "; "))
}

// Unwrap exposes the individual failures to errors.Is and errors.As.
func (e *ValidationErrors) Unwrap() []error {
	return e.Errs
}
