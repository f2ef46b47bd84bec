package ports_test

import (
	"testing"

	"zinger/internal/core/ports"

	"github.com/stretchr/testify/assert"
)

func TestPage_Offset(t *testing.T) {
	testCases := []struct {
		page      ports.Page
		offset    int
		unbounded bool
	}{
		{ports.Page{}, 0, true},
		{ports.Page{Number: 3}, 0, true},
		{ports.Page{Number: 1, Size: 10}, 0, false},
		{ports.Page{Number: 0, Size: 10}, 0, false},
		{ports.Page{Number: 3, Size: 10}, 20, false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.offset, tc.page.Offset(), "%+v", tc.page)
		assert.Equal(t, tc.unbounded, tc.page.Unbounded(), "%+v", tc.page)
	}
}
