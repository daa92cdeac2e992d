package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestPerftStartingPosition tests move generation from the starting position.
func TestPerftStartingPosition(t *testing.T) {
	b := New()

	tests := []struct {
		depth    int
		expected int64
	}{
		{1, 7},
		{2, 49},
		{3, 302},
	}

	for _, tc := range tests {
		t.Run("", func(t *testing.T) {
			assert.Equal(t, tc.expected, Perft(b, White, tc.depth), "Perft(%d)", tc.depth)
		})
	}
}

// TestPerftSymmetry checks that black sees the mirrored opening.
func TestPerftSymmetry(t *testing.T) {
	b := New()
	for depth := 1; depth <= 3; depth++ {
		assert.Equal(t, Perft(b, White, depth), Perft(b, Black, depth), "Perft(%d)", depth)
	}
}

// TestPerftDoesNotMutate verifies that perft leaves the root position intact.
func TestPerftDoesNotMutate(t *testing.T) {
	b := New()
	before := b.Layout()
	Perft(b, White, 3)
	assert.Equal(t, before, b.Layout())
}

func TestDivideSumsToPerft(t *testing.T) {
	b := New()
	divide := Divide(b, White, 3)
	assert.Len(t, divide, 7)

	var total int64
	for _, n := range divide {
		total += n
	}
	assert.Equal(t, Perft(b, White, 3), total)
}
