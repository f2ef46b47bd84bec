// Package paymentgw contains the simulated payment gateway. It keeps every
// initiated payment in memory and reports it as pending until Settle is
// called, which stands in for the customer paying through the provider.
package paymentgw

import (
	"context"
	"errors"
	"sync"

	"zinger/internal/core/domain/model/kernel"
	"zinger/internal/core/domain/model/payment"
	"zinger/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrAlreadyInitiated is returned when a payment is initiated again for an
// order the gateway already holds.
var ErrAlreadyInitiated = errors.New("payment already initiated")

var responseMessages = map[string]string{
	payment.ResponseSuccess:       "Txn Success",
	payment.ResponsePending:       "Txn Pending",
	payment.ResponsePendingAtBank: "Txn Pending at bank",
}

type record struct {
	merchantID string
	token      string
	status     payment.GatewayStatus
}

// SimulatedGateway implements ports.PaymentGateway in memory. It is safe for
// concurrent use.
type SimulatedGateway struct {
	mu       sync.Mutex
	payments map[string]*record
	newID    func() string
}

func NewSimulatedGateway() *SimulatedGateway {
	return &SimulatedGateway{
		payments: make(map[string]*record),
		newID:    uuid.NewString,
	}
}

// Initiate opens a pending payment for the order. An order id gets at most
// one payment; a second Initiate leaves the first untouched.
func (g *SimulatedGateway) Initiate(_ context.Context, orderID, merchantID string, amount kernel.Money) (string, error) {
	if orderID == "" {
		return "", errs.NewValueIsRequiredError("order id")
	}
	if merchantID == "" {
		return "", errs.NewValueIsRequiredError("merchant id")
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.payments[orderID]; ok {
		return "", ErrAlreadyInitiated
	}

	rec := &record{
		merchantID: merchantID,
		token:      g.newID(),
		status: payment.GatewayStatus{
			OrderID:         orderID,
			TransactionID:   g.newID(),
			Amount:          amount,
			Currency:        payment.DefaultCurrency,
			ResponseCode:    payment.ResponsePending,
			ResponseMessage: responseMessages[payment.ResponsePending],
			GatewayName:     payment.SimulatedGatewayName,
			PaymentMode:     payment.SimulatedPaymentModeUPI,
		},
	}
	g.payments[orderID] = rec
	return rec.token, nil
}

// Status reports the current state of the order's payment.
func (g *SimulatedGateway) Status(_ context.Context, orderID string) (payment.GatewayStatus, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	rec, ok := g.payments[orderID]
	if !ok {
		return payment.GatewayStatus{}, errs.NewObjectNotFoundError("payment", orderID)
	}
	return rec.status, nil
}

// Settle sets the response code of the order's payment, as the provider
// would once the customer pays or the bank declines.
func (g *SimulatedGateway) Settle(_ context.Context, orderID, responseCode string) error {
	return g.settle(orderID, responseCode, nil)
}

// SettleFor is Settle with the amount the provider reports as collected.
func (g *SimulatedGateway) SettleFor(_ context.Context, orderID, responseCode string, amount kernel.Money) error {
	return g.settle(orderID, responseCode, &amount)
}

func (g *SimulatedGateway) settle(orderID, responseCode string, amount *kernel.Money) error {
	if responseCode == "" {
		return errs.NewValueIsRequiredError("response code")
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	rec, ok := g.payments[orderID]
	if !ok {
		return errs.NewObjectNotFoundError("payment", orderID)
	}

	rec.status.ResponseCode = responseCode
	rec.status.ResponseMessage = responseMessages[responseCode]
	if rec.status.ResponseMessage == "" {
		rec.status.ResponseMessage = "Txn Failure"
	}
	if amount != nil {
		rec.status.Amount = *amount
	}
	if responseCode == payment.ResponseSuccess {
		rec.status.BankTransactionID = g.newID()
		rec.status.BankName = "SIMULATED BANK"
	}
	return nil
}
