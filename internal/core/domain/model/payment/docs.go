// Package payment models the payment-gateway side of an order: the status
// the gateway reports for an order and the Transaction row stored once the
// order is accepted.
package payment
