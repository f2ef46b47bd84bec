package http

import (
	"net/http"

	"zinger/internal/core/application/outcome"
)

// StatusFor maps an outcome code to the HTTP status of its response.
func StatusFor(code outcome.Code) int {
	switch code {
	case outcome.Success:
		return http.StatusOK
	case outcome.InvalidCaller:
		return http.StatusForbidden
	case outcome.InvalidOrder:
		return http.StatusBadRequest
	case outcome.ConfigurationUnavailable,
		outcome.OrderNotTaken,
		outcome.DeliveryNotAvailable,
		outcome.PricingMismatch,
		outcome.ItemUnavailable,
		outcome.SecretKeyMismatch:
		return http.StatusUnprocessableEntity
	case outcome.PaymentNotSettled:
		return http.StatusPaymentRequired
	case outcome.InvalidStatusTransition, outcome.OrderNotRateable:
		return http.StatusConflict
	case outcome.TransactionInitiationFailed:
		return http.StatusBadGateway
	case outcome.OrderDetailNotAvailable,
		outcome.UserDetailNotAvailable,
		outcome.ShopDetailNotAvailable,
		outcome.OrderItemDetailNotAvailable,
		outcome.TransactionDetailNotAvailable:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
