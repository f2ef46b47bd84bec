package payment

import (
	"zinger/internal/core/domain/model/kernel"
	"zinger/internal/core/domain/model/order"
)

// Gateway response codes.
const (
	ResponseSuccess         = "01"
	ResponsePending         = "400"
	ResponsePendingAtBank   = "402"
	DefaultCurrency         = "INR"
	SimulatedGatewayName    = "SIMULATED"
	SimulatedPaymentModeUPI = "UPI"
)

// GatewayStatus is what the payment gateway reports for an order.
type GatewayStatus struct {
	OrderID           string
	TransactionID     string
	BankTransactionID string
	Amount            kernel.Money
	Currency          string
	ResponseCode      string
	ResponseMessage   string
	GatewayName       string
	BankName          string
	PaymentMode       string
	ChecksumHash      string
}

func (s GatewayStatus) IsSuccess() bool {
	return s.ResponseCode == ResponseSuccess
}

func (s GatewayStatus) IsPending() bool {
	return s.ResponseCode == ResponsePending || s.ResponseCode == ResponsePendingAtBank
}

// StatusFor maps a gateway response code to the order status it implies.
func StatusFor(responseCode string) order.Status {
	switch responseCode {
	case ResponseSuccess:
		return order.Placed
	case ResponsePending, ResponsePendingAtBank:
		return order.Pending
	default:
		return order.TxnFailure
	}
}
