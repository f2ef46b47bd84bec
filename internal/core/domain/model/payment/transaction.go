package payment

import (
	"errors"
	"fmt"

	"zinger/internal/core/domain/model/kernel"
	"zinger/internal/pkg/errs"
	"zinger/internal/pkg/guard"
)

var (
	ErrTransactionIsNotConstructed = errors.New("Transaction must be created via NewTransaction")

	// ErrAmountMismatch is returned when the gateway-reported amount differs from the order price.
	ErrAmountMismatch = errors.New("transaction amount mismatch")

	// ErrPaymentNotSuccessful is returned when the gateway has not settled the payment.
	ErrPaymentNotSuccessful = errors.New("payment not successful")
)

// Transaction is the payment record stored 1:1 with an accepted order.
type Transaction struct {
	status GatewayStatus
	guard  guard.ConstructorGuard
}

// NewTransaction builds the transaction row from a gateway status report.
func NewTransaction(s GatewayStatus) (Transaction, error) {
	if err := errors.Join(
		kernel.ValidateOrderID(s.OrderID),
		validateTransactionID(s.TransactionID),
		kernel.ValidatePrice("transaction amount", s.Amount),
	); err != nil {
		return Transaction{}, err
	}

	if s.Currency == "" {
		s.Currency = DefaultCurrency
	}

	return Transaction{status: s, guard: guard.NewConstructorGuard()}, nil
}

func (t Transaction) Validate() error {
	return t.guard.Validate(ErrTransactionIsNotConstructed)
}

func (t Transaction) OrderID() string { return t.status.OrderID }
func (t Transaction) TransactionID() string { return t.status.TransactionID }
func (t Transaction) Amount() kernel.Money { return t.status.Amount }
func (t Transaction) ResponseCode() string { return t.status.ResponseCode }

// Details returns every field reported by the gateway.
func (t Transaction) Details() GatewayStatus { return t.status }

// VerifySettled checks that the gateway reported a successful payment and,
// when checkAmount is set, that it covers exactly price.
func VerifySettled(s GatewayStatus, price kernel.Money, checkAmount bool) error {
	if !s.IsSuccess() {
		return fmt.Errorf("%w: response code %q", ErrPaymentNotSuccessful, s.ResponseCode)
	}
	if checkAmount && !s.Amount.Equal(price) {
		return fmt.Errorf("%w: gateway reported %s, order price is %s", ErrAmountMismatch, s.Amount, price)
	}
	return nil
}

func validateTransactionID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("transaction id")
	}
	return nil
}
