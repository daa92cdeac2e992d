package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hailam/checkersplay/internal/board"
)

func TestEvaluateStartPosition(t *testing.T) {
	b := board.New()

	for _, c := range []board.Color{board.White, board.Black} {
		assert.Zero(t, Material(b, c))
		assert.Zero(t, Positional(b, c))
		assert.Zero(t, Mobility(b, c))
		assert.Zero(t, Structure(b, c))
		assert.Zero(t, Evaluate(b, c))
	}
}

func TestEvaluateTerms(t *testing.T) {
	// White: men on d4 (row 4, col 3) and c5 (row 5, col 4).
	// Black: a man on e3 (row 3, col 2) that white must capture.
	b := mustLayout(t, `
		........
		........
		........
		..b.....
		...w....
		....w...
		........
		........`)

	assert.Equal(t, 10, Material(b, board.White))
	// d4: 3 rows advanced + centre bonus; c5: 2 rows; black man: 3 rows.
	assert.Equal(t, 3+CenterBonus+2-3, Positional(b, board.White))
	// One capture for white against one step for black.
	assert.Equal(t, 0, Mobility(b, board.White))
	// d4 is backed by c5.
	assert.Equal(t, ProtectionBonus, Structure(b, board.White))

	assert.Equal(t, 20, Evaluate(b, board.White))
	assert.Equal(t, -20, Evaluate(b, board.Black))
}

func TestEvaluateKings(t *testing.T) {
	b := mustLayout(t, `
		........
		........
		........
		........
		........
		........
		.W...b..
		........`)

	assert.Equal(t, KingValue-ManValue, Material(b, board.White))
	assert.Equal(t, ManValue-KingValue, Material(b, board.Black))
}

func TestEvaluateTerminal(t *testing.T) {
	b := mustLayout(t, `
		........
		........
		........
		........
		........
		........
		.w......
		........`)

	assert.Equal(t, WinScore, Evaluate(b, board.White))
	assert.Equal(t, -WinScore, Evaluate(b, board.Black))
	assert.Equal(t, "loss", ScoreToString(Evaluate(b, board.Black)))
	assert.Equal(t, "+20", ScoreToString(20))
}

func TestEngineEvaluateUsesOwnColor(t *testing.T) {
	b := board.New()
	b.Apply(board.NewMove(5, 2, 4, 3), board.White)

	white := New(board.White, 1)
	black := New(board.Black, 1)
	assert.Equal(t, -white.Evaluate(b), black.Evaluate(b))
}
