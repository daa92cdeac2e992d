package board

import (
	"errors"
	"fmt"
)

var (
	// ErrMoveFormat is returned when a move string is not two squares joined by a hyphen.
	ErrMoveFormat = errors.New("invalid move format")
	// ErrLayout is returned when a board layout cannot be parsed.
	ErrLayout = errors.New("invalid board layout")
)

// Move is a single ply from one square to another. Whether it is a capture
// and which square it jumps over are derived from the coordinates.
type Move struct {
	FromRow int
	FromCol int
	ToRow   int
	ToCol   int
}

// NoMove represents an invalid or null move. It is never legal because
// origin and destination coincide.
var NoMove = Move{}

// NewMove creates a move from matrix coordinates.
func NewMove(fromRow, fromCol, toRow, toCol int) Move {
	return Move{FromRow: fromRow, FromCol: fromCol, ToRow: toRow, ToCol: toCol}
}

// ParseMove parses a move in board notation, e.g. "a3-b4" (case-insensitive).
func ParseMove(s string) (Move, error) {
	if len(s) != 5 || s[2] != '-' {
		return NoMove, fmt.Errorf("%w: %q", ErrMoveFormat, s)
	}

	fromRow, fromCol, err := ParseSquare(s[0:2])
	if err != nil {
		return NoMove, fmt.Errorf("%w: %q", ErrMoveFormat, s)
	}

	toRow, toCol, err := ParseSquare(s[3:5])
	if err != nil {
		return NoMove, fmt.Errorf("%w: %q", ErrMoveFormat, s)
	}

	return NewMove(fromRow, fromCol, toRow, toCol), nil
}

// IsCapture returns true if the move jumps two squares diagonally.
func (m Move) IsCapture() bool {
	return abs(m.ToRow-m.FromRow) == 2 && abs(m.ToCol-m.FromCol) == 2
}

// IsRegular returns true if the move is a single diagonal step.
func (m Move) IsRegular() bool {
	return abs(m.ToRow-m.FromRow) == 1 && abs(m.ToCol-m.FromCol) == 1
}

// Captured returns the square jumped over by a capture.
// ok is false for any move that is not capture-shaped.
func (m Move) Captured() (row, col int, ok bool) {
	if !m.IsCapture() {
		return -1, -1, false
	}
	return (m.FromRow + m.ToRow) / 2, (m.FromCol + m.ToCol) / 2, true
}

// String returns the board notation of the move (e.g., "a3-b4").
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	return SquareName(m.FromRow, m.FromCol) + "-" + SquareName(m.ToRow, m.ToCol)
}

// abs returns the absolute value of an integer.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
