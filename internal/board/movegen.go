package board

// Diagonal directions in probe order: up-left, up-right, down-left, down-right.
var directions = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

// IsLegal reports whether the move is legal for the given color in the
// current position.
func (b *Board) IsLegal(m Move, c Color) bool {
	if !OnBoard(m.FromRow, m.FromCol) || !OnBoard(m.ToRow, m.ToCol) {
		return false
	}

	p := b.squares[m.FromRow][m.FromCol].piece
	if p == nil || p.Color != c {
		return false
	}

	dest := b.squares[m.ToRow][m.ToCol]
	if dest.piece != nil || !dest.dark {
		return false
	}

	switch {
	case m.IsCapture():
		return b.isLegalCapture(m, p)
	case m.IsRegular():
		return isForwardOrKing(m, p)
	default:
		return false
	}
}

// isLegalCapture checks the jumped square and the direction of a
// capture-shaped move.
func (b *Board) isLegalCapture(m Move, p *Piece) bool {
	row, col, _ := m.Captured()
	victim := b.squares[row][col].piece
	if victim == nil || victim.Color == p.Color {
		return false
	}
	return isForwardOrKing(m, p)
}

// isForwardOrKing returns true if a man moves toward the opponent's back rank.
// Kings may move in every diagonal direction.
func isForwardOrKing(m Move, p *Piece) bool {
	if p.King {
		return true
	}
	delta := m.ToRow - m.FromRow
	return delta*p.Color.Forward() > 0
}

// AvailableMoves returns the legal moves for the given color. Captures are
// mandatory: if any piece can capture, only captures are returned.
// An empty result means the color cannot move.
func (b *Board) AvailableMoves(c Color) []Move {
	if captures := b.CaptureMoves(c); len(captures) > 0 {
		return captures
	}
	return b.RegularMoves(c)
}

// CaptureMoves returns every legal capture for the given color.
func (b *Board) CaptureMoves(c Color) []Move {
	return b.generate(c, 2)
}

// RegularMoves returns every legal single-step move for the given color,
// regardless of whether a capture is available.
func (b *Board) RegularMoves(c Color) []Move {
	return b.generate(c, 1)
}

// HasMoves returns true if the given color has at least one legal move.
func (b *Board) HasMoves(c Color) bool {
	return len(b.AvailableMoves(c)) > 0
}

// generate probes each piece of color c at the given diagonal distance in
// row-major order.
func (b *Board) generate(c Color, dist int) []Move {
	var moves []Move
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			p := b.squares[row][col].piece
			if p == nil || p.Color != c {
				continue
			}
			for _, d := range directions {
				if !p.King && d[0] != c.Forward() {
					continue
				}
				m := NewMove(row, col, row+d[0]*dist, col+d[1]*dist)
				if b.IsLegal(m, c) {
					moves = append(moves, m)
				}
			}
		}
	}
	return moves
}

// Apply executes a move for the given color. Legality is checked again;
// an illegal move leaves the board untouched and returns false.
// A man reaching the far row is crowned.
func (b *Board) Apply(m Move, c Color) bool {
	if !b.IsLegal(m, c) {
		return false
	}

	p := b.remove(m.FromRow, m.FromCol)
	p.Row, p.Col = m.ToRow, m.ToCol
	b.squares[m.ToRow][m.ToCol].piece = p

	if row, col, ok := m.Captured(); ok {
		b.remove(row, col)
	}

	if !p.King && m.ToRow == p.Color.PromotionRow() {
		p.crown()
	}

	return true
}
