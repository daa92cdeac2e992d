package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		input string
		want  Move
	}{
		{"a3-b4", NewMove(7, 2, 6, 3)},
		{"A3-B4", NewMove(7, 2, 6, 3)},
		{"h1-g2", NewMove(0, 0, 1, 1)},
		{"c5-e7", NewMove(5, 4, 3, 6)},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			m, err := ParseMove(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, m)
		})
	}
}

func TestParseMoveErrors(t *testing.T) {
	for _, input := range []string{"", "i3-b4", "a3b4", "a0-b1", "a9-b1", "a3-b", "a3--b4", "a3 b4", "a3-b4 "} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseMove(input)
			assert.ErrorIs(t, err, ErrMoveFormat)
		})
	}
}

func TestMoveStringRoundTrip(t *testing.T) {
	for _, m := range New().AvailableMoves(White) {
		parsed, err := ParseMove(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}
	assert.Equal(t, "a3-b4", NewMove(7, 2, 6, 3).String())
}

func TestMoveShape(t *testing.T) {
	capture := NewMove(5, 2, 3, 4)
	assert.True(t, capture.IsCapture())
	assert.False(t, capture.IsRegular())
	row, col, ok := capture.Captured()
	assert.True(t, ok)
	assert.Equal(t, 4, row)
	assert.Equal(t, 3, col)

	step := NewMove(5, 2, 4, 1)
	assert.True(t, step.IsRegular())
	assert.False(t, step.IsCapture())
	_, _, ok = step.Captured()
	assert.False(t, ok)

	odd := NewMove(5, 2, 3, 2)
	assert.False(t, odd.IsCapture())
	assert.False(t, odd.IsRegular())
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("Black")
	require.NoError(t, err)
	assert.Equal(t, Black, c)

	c, err = ParseColor("w")
	require.NoError(t, err)
	assert.Equal(t, White, c)

	_, err = ParseColor("red")
	assert.Error(t, err)
}
