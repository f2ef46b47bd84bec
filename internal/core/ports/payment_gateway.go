package ports

import (
	"context"

	"zinger/internal/core/domain/model/kernel"
	"zinger/internal/core/domain/model/order"
	"zinger/internal/core/domain/model/payment"
)

// PaymentGateway is the external payment provider.
type PaymentGateway interface {
	// Initiate opens a gateway transaction for amount on the order and
	// returns the token the client uses to pay.
	Initiate(ctx context.Context, orderID, merchantID string, amount kernel.Money) (string, error)

	// Status reports the live gateway state of the order's transaction.
	Status(ctx context.Context, orderID string) (payment.GatewayStatus, error)
}

// RefundRequest asks for the payment of an order to be returned.
type RefundRequest struct {
	OrderID string
	Amount  kernel.Money
	Reason  order.Status
}

// RefundLedger records refunds owed to customers. Executing them is out of band.
type RefundLedger interface {
	Record(ctx context.Context, req RefundRequest) error
}
