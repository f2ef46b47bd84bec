package paymentgw_test

import (
	"sync"
	"testing"

	"zinger/internal/adapters/out/paymentgw"
	"zinger/internal/core/domain/model/kernel"
	"zinger/internal/core/domain/model/order"
	"zinger/internal/core/domain/model/payment"
	"zinger/internal/core/ports"
	"zinger/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ ports.PaymentGateway = (*paymentgw.SimulatedGateway)(nil)

func TestSimulatedGateway_InitiateThenPending(t *testing.T) {
	ctx := t.Context()
	g := paymentgw.NewSimulatedGateway()

	token, err := g.Initiate(ctx, "ORD-1", "MID-7", kernel.MustMoney("110"))
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	status, err := g.Status(ctx, "ORD-1")
	require.NoError(t, err)
	assert.True(t, status.IsPending())
	assert.Equal(t, "ORD-1", status.OrderID)
	assert.NotEmpty(t, status.TransactionID)
	assert.True(t, status.Amount.Equal(kernel.MustMoney("110")))
	assert.Equal(t, payment.SimulatedGatewayName, status.GatewayName)
	assert.Empty(t, status.BankTransactionID)
}

func TestSimulatedGateway_Settle(t *testing.T) {
	ctx := t.Context()
	g := paymentgw.NewSimulatedGateway()
	_, err := g.Initiate(ctx, "ORD-1", "MID-7", kernel.MustMoney("110"))
	require.NoError(t, err)

	require.NoError(t, g.Settle(ctx, "ORD-1", payment.ResponseSuccess))

	status, err := g.Status(ctx, "ORD-1")
	require.NoError(t, err)
	assert.True(t, status.IsSuccess())
	assert.Equal(t, "Txn Success", status.ResponseMessage)
	assert.NotEmpty(t, status.BankTransactionID)
	assert.Equal(t, order.Placed, payment.StatusFor(status.ResponseCode))

	_, err = g.Initiate(ctx, "ORD-1", "MID-7", kernel.MustMoney("110"))
	assert.ErrorIs(t, err, paymentgw.ErrAlreadyInitiated)
}

func TestSimulatedGateway_InitiateKeepsFirstPayment(t *testing.T) {
	ctx := t.Context()
	g := paymentgw.NewSimulatedGateway()
	token, err := g.Initiate(ctx, "ORD-1", "MID-7", kernel.MustMoney("110"))
	require.NoError(t, err)
	before, err := g.Status(ctx, "ORD-1")
	require.NoError(t, err)

	again, err := g.Initiate(ctx, "ORD-1", "MID-9", kernel.MustMoney("1"))

	assert.ErrorIs(t, err, paymentgw.ErrAlreadyInitiated)
	assert.Empty(t, again)
	assert.NotEqual(t, token, again)

	after, err := g.Status(ctx, "ORD-1")
	require.NoError(t, err)
	assert.Equal(t, before.TransactionID, after.TransactionID)
	assert.True(t, after.Amount.Equal(kernel.MustMoney("110")))
	assert.True(t, after.IsPending())
}

func TestSimulatedGateway_SettleForReportsCollectedAmount(t *testing.T) {
	ctx := t.Context()
	g := paymentgw.NewSimulatedGateway()
	_, err := g.Initiate(ctx, "ORD-1", "MID-7", kernel.MustMoney("110"))
	require.NoError(t, err)

	require.NoError(t, g.SettleFor(ctx, "ORD-1", payment.ResponseSuccess, kernel.MustMoney("90")))

	status, err := g.Status(ctx, "ORD-1")
	require.NoError(t, err)
	assert.True(t, status.Amount.Equal(kernel.MustMoney("90")))
}

func TestSimulatedGateway_FailureCode(t *testing.T) {
	ctx := t.Context()
	g := paymentgw.NewSimulatedGateway()
	_, err := g.Initiate(ctx, "ORD-1", "MID-7", kernel.MustMoney("110"))
	require.NoError(t, err)

	require.NoError(t, g.Settle(ctx, "ORD-1", "227"))

	status, err := g.Status(ctx, "ORD-1")
	require.NoError(t, err)
	assert.False(t, status.IsSuccess())
	assert.False(t, status.IsPending())
	assert.Equal(t, "Txn Failure", status.ResponseMessage)

	token, err := g.Initiate(ctx, "ORD-1", "MID-7", kernel.MustMoney("110"))
	require.NoError(t, err, "failed payments may be retried")
	assert.NotEmpty(t, token)
}

func TestSimulatedGateway_Errors(t *testing.T) {
	ctx := t.Context()
	g := paymentgw.NewSimulatedGateway()

	_, err := g.Status(ctx, "missing")
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)

	assert.ErrorIs(t, g.Settle(ctx, "missing", payment.ResponseSuccess), errs.ErrObjectNotFound)

	_, err = g.Initiate(ctx, "", "MID-7", kernel.MustMoney("1"))
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = g.Initiate(ctx, "ORD-1", "", kernel.MustMoney("1"))
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestSimulatedGateway_ConcurrentUse(t *testing.T) {
	ctx := t.Context()
	g := paymentgw.NewSimulatedGateway()
	_, err := g.Initiate(ctx, "ORD-1", "MID-7", kernel.MustMoney("110"))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = g.Settle(ctx, "ORD-1", payment.ResponsePendingAtBank)
		}()
		go func() {
			defer wg.Done()
			_, _ = g.Status(ctx, "ORD-1")
		}()
	}
	wg.Wait()

	status, err := g.Status(ctx, "ORD-1")
	require.NoError(t, err)
	assert.True(t, status.IsPending())
}
