package order_test

import (
	"fmt"
	"testing"

	"zinger/internal/core/domain/model/order"
	"zinger/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var legalTransitions = map[order.Status][]order.Status{
	order.Pending:        {order.TxnFailure, order.Placed},
	order.Placed:         {order.CancelledBySeller, order.CancelledByUser, order.Accepted},
	order.Accepted:       {order.Ready, order.OutForDelivery, order.CancelledBySeller},
	order.Ready:          {order.Completed},
	order.OutForDelivery: {order.Delivered},
}

func isLegal(from, to order.Status) bool {
	for _, s := range legalTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func TestStatus_CanTransitionTo(t *testing.T) {
	all := append(order.AllStatuses(), order.Unknown)

	for _, from := range all {
		for _, to := range all {
			t.Run(fmt.Sprintf("%s to %s", from, to), func(t *testing.T) {
				assert.Equal(t, isLegal(from, to), from.CanTransitionTo(to))
			})
		}
	}
}

func TestStatus_ValidateTransition(t *testing.T) {
	t.Run("legal move passes", func(t *testing.T) {
		require.NoError(t, order.Accepted.ValidateTransition(order.OutForDelivery))
	})

	t.Run("reverse move is rejected", func(t *testing.T) {
		err := order.Accepted.ValidateTransition(order.Placed)

		require.ErrorIs(t, err, order.ErrInvalidStatusTransition)
		assert.Contains(t, err.Error(), "ACCEPTED -> PLACED")
	})

	t.Run("identity move is rejected", func(t *testing.T) {
		for _, s := range order.AllStatuses() {
			require.ErrorIs(t, s.ValidateTransition(s), order.ErrInvalidStatusTransition, s.String())
		}
	})

	t.Run("skipping a state is rejected", func(t *testing.T) {
		require.ErrorIs(t, order.Placed.ValidateTransition(order.Ready), order.ErrInvalidStatusTransition)
		require.ErrorIs(t, order.Pending.ValidateTransition(order.Accepted), order.ErrInvalidStatusTransition)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	terminal := []order.Status{
		order.TxnFailure, order.CancelledByUser, order.CancelledBySeller, order.Completed, order.Delivered,
	}
	for _, s := range order.AllStatuses() {
		assert.Equal(t, contains(terminal, s), s.IsTerminal(), s.String())
	}
	assert.False(t, order.Unknown.IsTerminal())
}

func TestStatus_SideEffectFlags(t *testing.T) {
	testCases := []struct {
		status   order.Status
		issues   bool
		requires bool
		refund   bool
		rateable bool
	}{
		{order.Pending, false, false, false, false},
		{order.Placed, false, false, false, false},
		{order.Accepted, false, false, false, false},
		{order.Ready, true, false, false, false},
		{order.OutForDelivery, true, false, false, false},
		{order.Completed, false, true, false, true},
		{order.Delivered, false, true, false, true},
		{order.CancelledByUser, false, false, true, false},
		{order.CancelledBySeller, false, false, true, false},
		{order.TxnFailure, false, false, false, false},
	}

	for _, tc := range testCases {
		t.Run(tc.status.String(), func(t *testing.T) {
			assert.Equal(t, tc.issues, tc.status.IssuesSecretKey())
			assert.Equal(t, tc.requires, tc.status.RequiresSecretKey())
			assert.Equal(t, tc.issues || tc.requires, tc.status.HoldsSecretKey())
			assert.Equal(t, tc.refund, tc.status.RequiresRefund())
			assert.Equal(t, tc.rateable, tc.status.IsRateable())
		})
	}
}

func TestParseStatus(t *testing.T) {
	t.Run("round trips every status name", func(t *testing.T) {
		for _, s := range order.AllStatuses() {
			parsed, err := order.ParseStatus(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		s, err := order.ParseStatus("SHIPPED")

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Equal(t, order.Unknown, s)
		assert.Contains(t, err.Error(), `"SHIPPED" is not a valid status`)
	})
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, order.Delivered.Validate())

	for _, s := range []order.Status{order.Unknown, order.Status(-1), order.Status(11)} {
		err := s.Validate()
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, "UNKNOWN", s.String())
	}
}

func TestStatus_NextReturnsCopy(t *testing.T) {
	next := order.Placed.Next()
	next[0] = order.Delivered

	assert.False(t, order.Placed.CanTransitionTo(order.Delivered))
	assert.Empty(t, order.Completed.Next())
}

func contains(list []order.Status, s order.Status) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func TestStatus_CallerMayMove(t *testing.T) {
	tests := []struct {
		from, to order.Status
		want     bool
	}{
		{order.Pending, order.Placed, false},
		{order.Pending, order.TxnFailure, false},
		{order.Placed, order.Accepted, true},
		{order.Placed, order.CancelledByUser, true},
		{order.Accepted, order.Ready, true},
		{order.Ready, order.Completed, true},
		{order.Accepted, order.Placed, false},
		{order.Ready, order.Delivered, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CallerMayMove(tt.to))
		})
	}
}
