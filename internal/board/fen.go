package board

import (
	"fmt"
	"strings"
)

// StartLayout is the layout string for the starting position.
const StartLayout = `.b.b.b.b
b.b.b.b.
.b.b.b.b
........
........
w.w.w.w.
.w.w.w.w
w.w.w.w.`

// ParseLayout parses a board layout: 8 lines of 8 characters, row 0 first.
// '.' is an empty square, 'b'/'w' are black/white men and 'B'/'W' kings.
// Blank lines and surrounding whitespace are ignored.
func ParseLayout(layout string) (*Board, error) {
	var rows []string
	for _, line := range strings.Split(layout, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			rows = append(rows, line)
		}
	}
	if len(rows) != Size {
		return nil, fmt.Errorf("%w: need %d rows, got %d", ErrLayout, Size, len(rows))
	}

	b := Empty()
	for row, rowStr := range rows {
		if len(rowStr) != Size {
			return nil, fmt.Errorf("%w: row %d has %d squares", ErrLayout, row, len(rowStr))
		}
		for col := 0; col < Size; col++ {
			ch := rowStr[col]
			if ch == '.' {
				continue
			}
			p, err := pieceFromChar(ch)
			if err != nil {
				return nil, err
			}
			if !IsDarkSquare(row, col) {
				return nil, fmt.Errorf("%w: piece on light square %s", ErrLayout, SquareName(row, col))
			}
			p.Row, p.Col = row, col
			b.place(p)
		}
	}

	return b, nil
}

// pieceFromChar converts a layout character to a Piece.
func pieceFromChar(ch byte) (Piece, error) {
	switch ch {
	case 'w':
		return Piece{Color: White}, nil
	case 'W':
		return Piece{Color: White, King: true}, nil
	case 'b':
		return Piece{Color: Black}, nil
	case 'B':
		return Piece{Color: Black, King: true}, nil
	default:
		return Piece{}, fmt.Errorf("%w: invalid piece character %q", ErrLayout, ch)
	}
}

// Layout returns the layout string of the board, the inverse of ParseLayout.
func (b *Board) Layout() string {
	lines := make([]string, 0, Size)
	for row := 0; row < Size; row++ {
		line := make([]byte, Size)
		for col := 0; col < Size; col++ {
			line[col] = '.'
			if p := b.squares[row][col].piece; p != nil {
				line[col] = p.Char()
			}
		}
		lines = append(lines, string(line))
	}
	return strings.Join(lines, "\n")
}
