// Package outcome is the result channel of every order workflow operation.
// Handlers never return errors or panics to their callers; they return an
// Outcome carrying a stable Code, a message and an optional payload, and
// record it to the audit sink.
package outcome

import "zinger/internal/core/domain/model/audit"

// Code identifies an outcome. Values are stable and part of the API.
type Code int

const (
	Success Code = 1

	InvalidCaller                 Code = 1001
	InvalidOrder                  Code = 1002
	ConfigurationUnavailable      Code = 1101
	OrderNotTaken                 Code = 1102
	DeliveryNotAvailable          Code = 1103
	PricingMismatch               Code = 1104
	ItemUnavailable               Code = 1105
	TransactionInitiationFailed   Code = 1201
	OrderPersistFailed            Code = 1202
	OrderItemPersistFailed        Code = 1203
	TransactionPersistFailed      Code = 1204
	PaymentNotSettled             Code = 1205
	InvalidStatusTransition       Code = 1301
	SecretKeyMismatch             Code = 1302
	OrderNotRateable              Code = 1303
	OrderDetailNotAvailable       Code = 1401
	UserDetailNotAvailable        Code = 1402
	ShopDetailNotAvailable        Code = 1403
	OrderItemDetailNotAvailable   Code = 1404
	TransactionDetailNotAvailable Code = 1405
	UnexpectedInternalFault       Code = 1500
)

var messages = map[Code]string{
	Success:                       "success",
	InvalidCaller:                 "invalid caller",
	InvalidOrder:                  "invalid order",
	ConfigurationUnavailable:      "shop configuration not available",
	OrderNotTaken:                 "order not being taken",
	DeliveryNotAvailable:          "delivery not available",
	PricingMismatch:               "order price mismatch",
	ItemUnavailable:               "item not available",
	TransactionInitiationFailed:   "transaction initiation failed",
	OrderPersistFailed:            "order detail not updated",
	OrderItemPersistFailed:        "order item detail not updated",
	TransactionPersistFailed:      "transaction detail not updated",
	PaymentNotSettled:             "payment not settled",
	InvalidStatusTransition:       "invalid order status",
	SecretKeyMismatch:             "secret key mismatch",
	OrderNotRateable:              "order cannot be rated",
	OrderDetailNotAvailable:       "order detail not available",
	UserDetailNotAvailable:        "user detail not available",
	ShopDetailNotAvailable:        "shop detail not available",
	OrderItemDetailNotAvailable:   "order item detail not available",
	TransactionDetailNotAvailable: "transaction detail not available",
	UnexpectedInternalFault:       "update failed",
}

// Message is the default message of c.
func (c Code) Message() string {
	if m, ok := messages[c]; ok {
		return m
	}
	return "unknown"
}

// Priority is the audit tier of c: LOW for success, MEDIUM for data
// consistency failures during hydration, HIGH for everything else.
func (c Code) Priority() audit.Priority {
	switch c {
	case Success:
		return audit.Low
	case OrderDetailNotAvailable, UserDetailNotAvailable, ShopDetailNotAvailable,
		OrderItemDetailNotAvailable, TransactionDetailNotAvailable:
		return audit.Medium
	default:
		return audit.High
	}
}

// Outcome is the uniform result of a workflow operation.
type Outcome[T any] struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// Ok is a successful outcome carrying data.
func Ok[T any](data T) Outcome[T] {
	return Outcome[T]{Code: Success, Message: Success.Message(), Data: data}
}

// Fail is a failed outcome with the default message of code.
func Fail[T any](code Code) Outcome[T] {
	return Outcome[T]{Code: code, Message: code.Message()}
}

// FailWith is a failed outcome with a specific message.
func FailWith[T any](code Code, message string) Outcome[T] {
	return Outcome[T]{Code: code, Message: message}
}

func (o Outcome[T]) IsSuccess() bool {
	return o.Code == Success
}
