package service

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"food-express-backend/repository"
)

var (
	// ErrUnauthenticated is returned when an operation that needs a logged-in
	// user is attempted without one. Callers should prompt for login.
	ErrUnauthenticated = errors.New("please login to continue")

	// ErrEmptyCart is returned by checkout and order placement when there
	// is nothing to buy: the cart has no items, or PlaceOrder runs without
	// a checkout summary (or against one whose items are gone).
	ErrEmptyCart = errors.New("cart is empty")

	// ErrMissingAddress is returned by checkout when no delivery address is
	// saved. Callers should prompt for address entry.
	ErrMissingAddress = errors.New("no delivery address saved")

	// ErrOrderNotFound is returned when an order id is unknown.
	ErrOrderNotFound = repository.ErrOrderNotFound
)

// ValidationError reports missing required address fields. The operation
// aborts with no state change.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", "))
}

// PaymentValidationError reports a missing or invalid payment field for the
// chosen method. No order is created.
type PaymentValidationError struct {
	Field  string
	Reason string
}

func (e *PaymentValidationError) Error() string {
	return fmt.Sprintf("invalid payment details: %s (%s)", e.Field, e.Reason)
}
