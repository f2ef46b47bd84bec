package services_test

import (
	"regexp"
	"strconv"
	"testing"

	"zinger/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecretKeyGenerator_Next(t *testing.T) {
	t.Run("keys are 6 digits in range", func(t *testing.T) {
		g := services.NewSeededSecretKeyGenerator(1, 2)
		pattern := regexp.MustCompile(`^[1-9][0-9]{5}$`)

		for range 1000 {
			key := g.Next()
			require.Regexp(t, pattern, key)

			n, err := strconv.Atoi(key)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, n, 100000)
			assert.LessOrEqual(t, n, 999999)
		}
	})

	t.Run("same seed gives same sequence", func(t *testing.T) {
		a := services.NewSeededSecretKeyGenerator(42, 7)
		b := services.NewSeededSecretKeyGenerator(42, 7)

		for range 20 {
			assert.Equal(t, a.Next(), b.Next())
		}
	})

	t.Run("different seeds differ", func(t *testing.T) {
		a := services.NewSeededSecretKeyGenerator(1, 1)
		b := services.NewSeededSecretKeyGenerator(2, 2)

		same := 0
		for range 20 {
			if a.Next() == b.Next() {
				same++
			}
		}
		assert.Less(t, same, 20)
	})
}
