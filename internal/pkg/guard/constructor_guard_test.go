package guard_test

import (
	"errors"
	"testing"

	"zinger/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("PlaceOrderCommand must be created via NewPlaceOrderCommand")

	t.Run("constructed guard passes with and without custom error", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero value guard returns the supplied error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(errNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errNotConstructed, err)
	})

	t.Run("zero value guard falls back to the default error", func(t *testing.T) {
		var g guard.ConstructorGuard

		assert.Equal(t, guard.ErrDefaultConstructorGuard, g.Validate(nil))
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})

	t.Run("guard survives being copied by value", func(t *testing.T) {
		type command struct {
			orderID string
			guard   guard.ConstructorGuard
		}

		original := command{orderID: "ORD-1", guard: guard.NewConstructorGuard()}
		copied := original

		require.NoError(t, copied.guard.Validate(errNotConstructed))
		assert.Error(t, command{orderID: "ORD-2"}.guard.Validate(errNotConstructed))
	})
}

func BenchmarkConstructorGuard_Validate(b *testing.B) {
	g := guard.NewConstructorGuard()
	err := errors.New("not constructed")
	for range b.N {
		_ = g.Validate(err)
	}
}
