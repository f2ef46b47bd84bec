package kernel

import (
	"zinger/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrOrderIDIsRequired is returned for an empty order identifier.
var ErrOrderIDIsRequired = errs.NewValueIsRequiredError("order id")

// maxOrderIDLength bounds caller-supplied identifiers to the column size.
const maxOrderIDLength = 64

// NewOrderID generates a random identifier for orders the caller did not name.
func NewOrderID() string {
	return uuid.NewString()
}

// ValidateOrderID checks a caller- or system-generated order identifier.
func ValidateOrderID(id string) error {
	if id == "" {
		return ErrOrderIDIsRequired
	}
	if len(id) > maxOrderIDLength {
		return errs.NewValueIsOutOfRangeError("order id length", len(id), 1, maxOrderIDLength)
	}
	return nil
}
