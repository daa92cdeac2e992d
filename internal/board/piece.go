package board

import (
	"fmt"
	"strings"
)

// Color represents the color of a piece or player.
type Color uint8

const (
	White Color = iota
	Black
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}

// Forward returns the row delta of a forward step: white moves up the rows
// towards row 0, black moves down towards row 7.
func (c Color) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// PromotionRow returns the row on which a man of this color is crowned.
func (c Color) PromotionRow() int {
	if c == White {
		return 0
	}
	return Size - 1
}

// ParseColor parses "white"/"w" or "black"/"b" (any case).
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return White, nil
	case "black", "b":
		return Black, nil
	}
	return White, fmt.Errorf("invalid color: %q", s)
}

// Piece is a checkers man or king. Row and Col always mirror the square
// holding the piece.
type Piece struct {
	Color Color
	King  bool
	Row   int
	Col   int
}

// crown promotes the piece. A king stays a king.
func (p *Piece) crown() {
	p.King = true
}

// Glyph returns the console symbol for the piece.
// ●/◆ for white men/kings, ○/◇ for black men/kings.
func (p Piece) Glyph() string {
	if p.Color == White {
		if p.King {
			return "◆"
		}
		return "●"
	}
	if p.King {
		return "◇"
	}
	return "○"
}

// Char returns the layout character for the piece.
// Lowercase for men, uppercase for kings.
func (p Piece) Char() byte {
	c := byte('w')
	if p.Color == Black {
		c = 'b'
	}
	if p.King {
		c -= 'a' - 'A'
	}
	return c
}

// String returns a short description, e.g. "White king at b2".
func (p Piece) String() string {
	kind := "man"
	if p.King {
		kind = "king"
	}
	return fmt.Sprintf("%s %s at %s", p.Color, kind, SquareName(p.Row, p.Col))
}
