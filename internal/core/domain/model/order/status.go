package order

import (
	"errors"
	"fmt"
	"slices"

	"zinger/internal/pkg/errs"
)

// ErrInvalidStatusTransition is returned for any move not in the transition table.
var ErrInvalidStatusTransition = errors.New("invalid order status")

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	PENDING ──┬──> TXN_FAILURE
//	          └──> PLACED ──┬──> CANCELLED_BY_USER
//	                        ├──> CANCELLED_BY_SELLER
//	                        └──> ACCEPTED ──┬──> CANCELLED_BY_SELLER
//	                                        ├──> READY ────────────> COMPLETED
//	                                        └──> OUT_FOR_DELIVERY ──> DELIVERED
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// Pending is the state of a freshly admitted order awaiting payment confirmation.
	Pending

	// TxnFailure marks an order whose payment failed or timed out.
	TxnFailure

	// Placed means the payment went through and the shop can act on the order.
	Placed

	CancelledByUser
	CancelledBySeller

	// Accepted means the shop has taken the order on.
	Accepted

	// Ready means the order waits for pickup at the shop.
	Ready

	// OutForDelivery means the order is on its way to the delivery location.
	OutForDelivery

	Completed
	Delivered
)

var statusNames = map[Status]string{
	Pending:           "PENDING",
	TxnFailure:        "TXN_FAILURE",
	Placed:            "PLACED",
	CancelledByUser:   "CANCELLED_BY_USER",
	CancelledBySeller: "CANCELLED_BY_SELLER",
	Accepted:          "ACCEPTED",
	Ready:             "READY",
	OutForDelivery:    "OUT_FOR_DELIVERY",
	Completed:         "COMPLETED",
	Delivered:         "DELIVERED",
}

// transitions lists, per state, the states it may move to. States absent
// from the map are terminal.
var transitions = map[Status][]Status{
	Pending:        {TxnFailure, Placed},
	Placed:         {CancelledBySeller, CancelledByUser, Accepted},
	Accepted:       {Ready, OutForDelivery, CancelledBySeller},
	Ready:          {Completed},
	OutForDelivery: {Delivered},
}

// AllStatuses returns every valid status in declaration order.
func AllStatuses() []Status {
	return []Status{
		Pending, TxnFailure, Placed, CancelledByUser, CancelledBySeller,
		Accepted, Ready, OutForDelivery, Completed, Delivered,
	}
}

// ParseStatus converts a wire or column name into a Status.
func ParseStatus(name string) (Status, error) {
	for s, n := range statusNames {
		if n == name {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", name),
	)
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, or "UNKNOWN".
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// CanTransitionTo reports whether next is a legal successor of s.
func (s Status) CanTransitionTo(next Status) bool {
	return slices.Contains(transitions[s], next)
}

// ValidateTransition is CanTransitionTo with an error describing the rejected move.
func (s Status) ValidateTransition(next Status) error {
	if !s.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, s, next)
	}
	return nil
}

// Next returns a copy of the legal successors of s.
func (s Status) Next() []Status {
	return slices.Clone(transitions[s])
}

// IsTerminal reports whether s has no successors.
func (s Status) IsTerminal() bool {
	return s.Validate() == nil && len(transitions[s]) == 0
}

// IsPaymentDriven reports whether s is entered only through payment
// confirmation, never on a caller's request.
func (s Status) IsPaymentDriven() bool {
	return s == Placed || s == TxnFailure
}

// CallerMayMove reports whether a caller may request the move s -> next.
// Moves out of PENDING belong to payment confirmation and the pending sweep.
func (s Status) CallerMayMove(next Status) bool {
	return s != Pending && !next.IsPaymentDriven() && s.CanTransitionTo(next)
}

// IssuesSecretKey reports whether entering s generates a fresh secret key.
func (s Status) IssuesSecretKey() bool {
	return s == Ready || s == OutForDelivery
}

// RequiresSecretKey reports whether entering s requires the caller to present the key.
func (s Status) RequiresSecretKey() bool {
	return s == Completed || s == Delivered
}

// HoldsSecretKey reports whether an order in s must carry a secret key.
func (s Status) HoldsSecretKey() bool {
	return s.IssuesSecretKey() || s.RequiresSecretKey()
}

// RequiresRefund reports whether entering s obliges a refund-ledger entry.
func (s Status) RequiresRefund() bool {
	return s == CancelledByUser || s == CancelledBySeller
}

// IsRateable reports whether an order in s can receive a rating.
func (s Status) IsRateable() bool {
	return s == Completed || s == Delivered
}
