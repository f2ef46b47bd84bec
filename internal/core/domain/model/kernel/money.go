package kernel

import (
	"fmt"

	"zinger/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is an exact monetary amount in the shop's currency.
type Money = decimal.Decimal

// Zero is the zero amount.
var Zero = decimal.Zero

// MoneyFromString parses a decimal amount such as "110.00".
func MoneyFromString(s string) (Money, error) {
	m, err := decimal.NewFromString(s)
	if err != nil {
		return Zero, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return m, nil
}

// MustMoney parses s and panics on failure. Intended for constants and tests.
func MustMoney(s string) Money {
	m, err := MoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// ValidatePrice rejects negative amounts.
func ValidatePrice(paramName string, m Money) error {
	if m.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%s is negative", m.String()))
	}
	return nil
}

// LineTotal returns unit × quantity.
func LineTotal(unit Money, quantity int) Money {
	return unit.Mul(decimal.NewFromInt(int64(quantity)))
}
