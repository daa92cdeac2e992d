package board

import (
	"fmt"
	"strings"
)

// Board is the 8x8 checkers grid. It exclusively owns every live piece;
// pieces are only reachable through their squares.
type Board struct {
	squares [Size][Size]Square
}

// Empty creates a board with no pieces.
func Empty() *Board {
	b := &Board{}
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			b.squares[row][col] = newSquare(row, col)
		}
	}
	return b
}

// New creates the starting position: black men on the dark squares of rows
// 0-2, white men on the dark squares of rows 5-7.
func New() *Board {
	b := Empty()
	for row := 0; row < Size; row++ {
		var c Color
		switch {
		case row <= 2:
			c = Black
		case row >= 5:
			c = White
		default:
			continue
		}
		for col := 0; col < Size; col++ {
			if b.squares[row][col].dark {
				b.place(Piece{Color: c, Row: row, Col: col})
			}
		}
	}
	return b
}

// Clone creates a deep copy of the board. Pieces are copied, never shared.
func (b *Board) Clone() *Board {
	nb := &Board{}
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			sq := b.squares[row][col]
			if sq.piece != nil {
				p := *sq.piece
				sq.piece = &p
			}
			nb.squares[row][col] = sq
		}
	}
	return nb
}

// Square returns a copy of the square at (row, col). ok is false when the
// coordinates are off the board.
func (b *Board) Square(row, col int) (sq Square, ok bool) {
	if !OnBoard(row, col) {
		return Square{}, false
	}
	return b.squares[row][col], true
}

// PieceAt returns the piece at (row, col), if any.
func (b *Board) PieceAt(row, col int) (Piece, bool) {
	if !OnBoard(row, col) {
		return Piece{}, false
	}
	return b.squares[row][col].Piece()
}

// IsEmpty returns true if (row, col) is on the board and unoccupied.
func (b *Board) IsEmpty(row, col int) bool {
	return OnBoard(row, col) && b.squares[row][col].piece == nil
}

// Pieces returns copies of all pieces of the given color in row-major order.
func (b *Board) Pieces(c Color) []Piece {
	var pieces []Piece
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if p := b.squares[row][col].piece; p != nil && p.Color == c {
				pieces = append(pieces, *p)
			}
		}
	}
	return pieces
}

// Count returns the number of men and kings of the given color.
func (b *Board) Count(c Color) (men, kings int) {
	for _, p := range b.Pieces(c) {
		if p.King {
			kings++
		} else {
			men++
		}
	}
	return men, kings
}

// place puts a piece on its square (does not validate).
func (b *Board) place(p Piece) {
	b.squares[p.Row][p.Col].piece = &p
}

// remove clears a square and returns the piece that was on it.
func (b *Board) remove(row, col int) *Piece {
	p := b.squares[row][col].piece
	b.squares[row][col].piece = nil
	return p
}

// String returns the console diagram of the board. Rows are labelled H..A
// from top to bottom and columns 1..8, matching the move notation.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("       [ 1 ] [ 2 ] [ 3 ] [ 4 ] [ 5 ] [ 6 ] [ 7 ] [ 8 ]\n")
	border := "      " + strings.Repeat(" -----", Size) + "\n"
	for row := 0; row < Size; row++ {
		sb.WriteString(border)
		fmt.Fprintf(&sb, "[ %c ] |", 'H'-row)
		for col := 0; col < Size; col++ {
			glyph := " "
			if p, ok := b.PieceAt(row, col); ok {
				glyph = p.Glyph()
			}
			fmt.Fprintf(&sb, "  %s  |", glyph)
		}
		sb.WriteString("\n")
	}
	sb.WriteString(border)
	return sb.String()
}
