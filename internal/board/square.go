// Package board implements the checkers rules engine: an 8x8 grid of squares,
// legal move generation with mandatory captures, move execution and
// game-end detection.
package board

import (
	"fmt"
	"strings"
)

// Size is the number of rows and columns on the board.
const Size = 8

// Square is one cell of the board. Its coordinates and colour are fixed when
// the board is built; only the occupying piece changes.
type Square struct {
	row   int
	col   int
	dark  bool
	piece *Piece
}

func newSquare(row, col int) Square {
	return Square{row: row, col: col, dark: IsDarkSquare(row, col)}
}

// Row returns the row of the square (0-7).
func (s Square) Row() int {
	return s.row
}

// Col returns the column of the square (0-7).
func (s Square) Col() int {
	return s.col
}

// IsDark returns true for the playable squares.
func (s Square) IsDark() bool {
	return s.dark
}

// Piece returns a copy of the occupying piece, if any.
func (s Square) Piece() (Piece, bool) {
	if s.piece == nil {
		return Piece{}, false
	}
	return *s.piece, true
}

// IsEmpty returns true if no piece occupies the square.
func (s Square) IsEmpty() bool {
	return s.piece == nil
}

// IsDarkSquare reports whether (row, col) is a playable square.
// Rows starting with an even index begin with a light square.
func IsDarkSquare(row, col int) bool {
	return (row+col)%2 == 1
}

// OnBoard returns true if both coordinates are inside the grid.
func OnBoard(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// SquareName returns the notation for a square, e.g. "a3" for row 7, column 2.
func SquareName(row, col int) string {
	if !OnBoard(row, col) {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'h'-row, col+1)
}

// ParseSquare parses a square in move notation (e.g. "a3") into row and column.
func ParseSquare(s string) (row, col int, err error) {
	if len(s) != 2 {
		return 0, 0, fmt.Errorf("%w: invalid square %q", ErrMoveFormat, s)
	}

	letter := strings.ToLower(s[:1])[0]
	digit := s[1]

	if letter < 'a' || letter > 'h' || digit < '1' || digit > '8' {
		return 0, 0, fmt.Errorf("%w: invalid square %q", ErrMoveFormat, s)
	}

	return int('h' - letter), int(digit - '1'), nil
}
