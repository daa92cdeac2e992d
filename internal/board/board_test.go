package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLayout(t *testing.T, layout string) *Board {
	t.Helper()
	b, err := ParseLayout(layout)
	require.NoError(t, err)
	return b
}

func TestNewBoard(t *testing.T) {
	b := New()

	for _, c := range []Color{White, Black} {
		men, kings := b.Count(c)
		assert.Equal(t, 12, men, "%s men", c)
		assert.Equal(t, 0, kings, "%s kings", c)
	}

	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			sq, ok := b.Square(row, col)
			require.True(t, ok)
			assert.Equal(t, row, sq.Row())
			assert.Equal(t, col, sq.Col())
			p, ok := sq.Piece()
			if !ok {
				continue
			}
			assert.True(t, sq.IsDark(), "piece on light square %s", SquareName(row, col))
			assert.Equal(t, row, p.Row)
			assert.Equal(t, col, p.Col)
		}
	}

	assert.Equal(t, StartLayout, b.Layout())
}

func TestOpeningMoves(t *testing.T) {
	b := New()

	white := b.AvailableMoves(White)
	assert.Len(t, white, 7)
	for _, m := range white {
		assert.True(t, m.IsRegular())
		assert.Equal(t, 5, m.FromRow)
		assert.Equal(t, 4, m.ToRow)
	}

	black := b.AvailableMoves(Black)
	assert.Len(t, black, 7)
	for _, m := range black {
		assert.Equal(t, 2, m.FromRow)
		assert.Equal(t, 3, m.ToRow)
	}
}

func TestIsLegal(t *testing.T) {
	b := mustLayout(t, `
		........
		........
		........
		..b.....
		.w......
		........
		.....B..
		........`)

	tests := []struct {
		name  string
		move  Move
		color Color
		legal bool
	}{
		{"off board origin", NewMove(-1, 0, 0, 1), White, false},
		{"off board destination", NewMove(4, 1, 3, -1), White, false},
		{"empty origin", NewMove(4, 3, 3, 4), White, false},
		{"wrong color", NewMove(4, 1, 3, 0), Black, false},
		{"light destination", NewMove(4, 1, 4, 2), White, false},
		{"occupied destination", NewMove(4, 1, 3, 2), White, false},
		{"white capture forward", NewMove(4, 1, 2, 3), White, true},
		{"white step forward", NewMove(4, 1, 3, 0), White, true},
		{"white man step backward", NewMove(4, 1, 5, 0), White, false},
		{"black step forward", NewMove(3, 2, 4, 3), Black, true},
		{"black man step backward", NewMove(3, 2, 2, 1), Black, false},
		{"black capture forward", NewMove(3, 2, 5, 0), Black, true},
		{"king step backward", NewMove(6, 5, 5, 4), Black, true},
		{"king step forward", NewMove(6, 5, 7, 4), Black, true},
		{"jump over empty", NewMove(6, 5, 4, 3), Black, false},
		{"too far", NewMove(4, 1, 1, 4), White, false},
		{"zero distance", NewMove(4, 1, 4, 1), White, false},
		{"not diagonal", NewMove(4, 1, 2, 1), White, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.legal, b.IsLegal(tc.move, tc.color))
		})
	}
}

func TestJumpOverOwnPiece(t *testing.T) {
	b := mustLayout(t, `
		........
		........
		........
		........
		........
		..w.....
		.w......
		........`)

	assert.False(t, b.IsLegal(NewMove(6, 1, 4, 3), White))
}

func TestManCannotCaptureBackward(t *testing.T) {
	b := mustLayout(t, `
		........
		........
		........
		........
		.w......
		..b.....
		........
		........`)

	assert.False(t, b.IsLegal(NewMove(4, 1, 6, 3), White))
	assert.Empty(t, b.CaptureMoves(White))
	assert.Empty(t, b.CaptureMoves(Black))
}

func TestKingCapturesBackward(t *testing.T) {
	b := mustLayout(t, `
		........
		........
		........
		........
		.W......
		..b.....
		........
		........`)

	moves := b.AvailableMoves(White)
	require.Len(t, moves, 1)
	assert.Equal(t, NewMove(4, 1, 6, 3), moves[0])
}

func TestMandatoryCapture(t *testing.T) {
	b := mustLayout(t, `
		........
		........
		........
		..b.....
		.w......
		......w.
		........
		........`)

	assert.NotEmpty(t, b.RegularMoves(White))

	moves := b.AvailableMoves(White)
	require.Len(t, moves, 1)
	assert.Equal(t, NewMove(4, 1, 2, 3), moves[0])
	for _, m := range moves {
		assert.True(t, m.IsCapture())
	}
}

func TestCapturesOnlyInvariant(t *testing.T) {
	// Walk a few plies of first-move play and check every list on the way.
	b := New()
	c := White
	for ply := 0; ply < 40 && !b.IsOver(); ply++ {
		moves := b.AvailableMoves(c)
		captures := 0
		for _, m := range moves {
			if m.IsCapture() {
				captures++
			}
		}
		if captures > 0 {
			assert.Equal(t, len(moves), captures, "mixed move list at ply %d", ply)
		} else {
			assert.Empty(t, b.CaptureMoves(c))
		}
		require.True(t, b.Apply(moves[len(moves)/2], c))
		c = c.Other()
	}
}

func TestApplyCapture(t *testing.T) {
	b := mustLayout(t, `
		........
		........
		........
		..b.....
		.w......
		........
		........
		........`)

	m := NewMove(4, 1, 2, 3)
	require.True(t, b.Apply(m, White))

	assert.True(t, b.IsEmpty(4, 1))
	assert.True(t, b.IsEmpty(3, 2))
	p, ok := b.PieceAt(2, 3)
	require.True(t, ok)
	assert.Equal(t, White, p.Color)
	assert.Equal(t, 2, p.Row)
	assert.Equal(t, 3, p.Col)

	men, _ := b.Count(Black)
	assert.Equal(t, 0, men)
}

func TestApplyIllegalIsNoop(t *testing.T) {
	b := New()
	before := b.Layout()

	assert.False(t, b.Apply(NewMove(5, 0, 4, 1), Black), "wrong turn")
	assert.False(t, b.Apply(NewMove(6, 1, 5, 0), White), "blocked destination")
	assert.False(t, b.Apply(NewMove(5, 0, 6, 1), White), "backward man")
	assert.False(t, b.Apply(NoMove, White))

	assert.Equal(t, before, b.Layout())
}

func TestLegalitySymmetry(t *testing.T) {
	b := New()
	c := White
	for ply := 0; ply < 30 && !b.IsOver(); ply++ {
		for _, m := range b.AvailableMoves(c) {
			child := b.Clone()
			require.True(t, child.IsLegal(m, c))
			require.True(t, child.Apply(m, c))

			assert.True(t, child.IsEmpty(m.FromRow, m.FromCol))
			p, ok := child.PieceAt(m.ToRow, m.ToCol)
			require.True(t, ok)
			assert.Equal(t, c, p.Color)
			if row, col, capture := m.Captured(); capture {
				assert.True(t, child.IsEmpty(row, col))
			}
		}
		moves := b.AvailableMoves(c)
		b.Apply(moves[0], c)
		c = c.Other()
	}
}

func TestPromotion(t *testing.T) {
	b := mustLayout(t, `
		........
		..w.....
		........
		........
		........
		........
		.b......
		........`)

	require.True(t, b.Apply(NewMove(1, 2, 0, 1), White))
	p, ok := b.PieceAt(0, 1)
	require.True(t, ok)
	assert.True(t, p.King)

	require.True(t, b.Apply(NewMove(6, 1, 7, 0), Black))
	p, ok = b.PieceAt(7, 0)
	require.True(t, ok)
	assert.True(t, p.King)

	// A king leaving the back row stays a king.
	require.True(t, b.Apply(NewMove(0, 1, 1, 2), White))
	p, _ = b.PieceAt(1, 2)
	assert.True(t, p.King)
}

func TestPromotionByCapture(t *testing.T) {
	b := mustLayout(t, `
		........
		..b.....
		...w....
		........
		........
		........
		........
		........`)

	moves := b.AvailableMoves(White)
	require.Equal(t, []Move{NewMove(2, 3, 0, 1)}, moves)
	require.True(t, b.Apply(moves[0], White))

	p, ok := b.PieceAt(0, 1)
	require.True(t, ok)
	assert.True(t, p.King)
}

func TestCloneIsIndependent(t *testing.T) {
	b := New()
	clone := b.Clone()

	require.True(t, clone.Apply(NewMove(5, 0, 4, 1), White))
	assert.Equal(t, StartLayout, b.Layout())
	assert.NotEqual(t, b.Layout(), clone.Layout())

	p, ok := b.PieceAt(5, 0)
	require.True(t, ok)
	assert.Equal(t, 5, p.Row)
}

func TestGameOver(t *testing.T) {
	t.Run("start position", func(t *testing.T) {
		b := New()
		assert.False(t, b.IsOver())
		_, ok := b.Winner()
		assert.False(t, ok)
	})

	t.Run("black has no pieces", func(t *testing.T) {
		b := mustLayout(t, `
			........
			........
			........
			........
			........
			........
			.w......
			........`)
		assert.True(t, b.IsOver())
		winner, ok := b.Winner()
		require.True(t, ok)
		assert.Equal(t, White, winner)
	})

	t.Run("white is blocked", func(t *testing.T) {
		// The white man on h8 (row 0) can't move up and the black men are
		// out of reach; black still has moves.
		b := mustLayout(t, `
			.......w
			......b.
			.....b..
			........
			........
			........
			........
			........`)
		assert.Empty(t, b.AvailableMoves(White))
		assert.True(t, b.IsOver())
		winner, ok := b.Winner()
		require.True(t, ok)
		assert.Equal(t, Black, winner)
	})

	t.Run("neither side can move", func(t *testing.T) {
		b := mustLayout(t, `
			.w......
			........
			........
			........
			........
			........
			........
			b.......`)
		assert.Empty(t, b.AvailableMoves(White))
		assert.Empty(t, b.AvailableMoves(Black))
		assert.True(t, b.IsOver())
		winner, ok := b.Winner()
		require.True(t, ok)
		assert.Equal(t, Black, winner)
	})
}

func TestBoardString(t *testing.T) {
	s := New().String()
	assert.Contains(t, s, "[ 1 ] [ 2 ]")
	assert.Contains(t, s, "[ H ] |")
	assert.Contains(t, s, "[ A ] |")
	assert.Contains(t, s, "●")
	assert.Contains(t, s, "○")
}

func TestSquareOffBoard(t *testing.T) {
	b := New()
	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {Size, 0}, {0, Size}, {9, 9}} {
		_, ok := b.Square(rc[0], rc[1])
		assert.False(t, ok, "(%d,%d)", rc[0], rc[1])
	}

	sq, ok := b.Square(7, 0)
	require.True(t, ok)
	assert.True(t, sq.IsDark())
	assert.False(t, sq.IsEmpty())
}
