package engine

import (
	"github.com/hailam/checkersplay/internal/board"
)

// Evaluation weights
const (
	ManValue        = 10
	KingValue       = 30
	CenterBonus     = 5
	MobilityBonus   = 2
	ProtectionBonus = 3
)

// Evaluate returns the static evaluation of the board from the engine's
// point of view.
func (e *Engine) Evaluate(b *board.Board) int {
	return Evaluate(b, e.color)
}

// Evaluate scores a position for color us. A finished game scores
// ±WinScore (0 when no winner can be named); otherwise the score is the sum
// of the material, positional, mobility and structure terms.
func Evaluate(b *board.Board, us board.Color) int {
	if b.IsOver() {
		winner, ok := b.Winner()
		switch {
		case !ok:
			return 0
		case winner == us:
			return WinScore
		default:
			return -WinScore
		}
	}

	return Material(b, us) + Positional(b, us) + Mobility(b, us) + Structure(b, us)
}

// sign returns +1 for our pieces and -1 for the opponent's.
func sign(p board.Piece, us board.Color) int {
	if p.Color == us {
		return 1
	}
	return -1
}

// Material counts men and kings.
func Material(b *board.Board, us board.Color) int {
	score := 0
	for _, c := range []board.Color{board.White, board.Black} {
		for _, p := range b.Pieces(c) {
			value := ManValue
			if p.King {
				value = KingValue
			}
			score += sign(p, us) * value
		}
	}
	return score
}

// Positional rewards progress toward the crowning row (0-7 per piece) and
// occupation of the four central squares.
func Positional(b *board.Board, us board.Color) int {
	score := 0
	for _, c := range []board.Color{board.White, board.Black} {
		for _, p := range b.Pieces(c) {
			bonus := advance(p)
			if p.Row >= 3 && p.Row <= 4 && p.Col >= 3 && p.Col <= 4 {
				bonus += CenterBonus
			}
			score += sign(p, us) * bonus
		}
	}
	return score
}

// advance returns how many rows a piece has travelled from its own back row.
func advance(p board.Piece) int {
	if p.Color == board.White {
		return board.Size - 1 - p.Row
	}
	return p.Row
}

// Mobility compares the number of available moves of both sides.
func Mobility(b *board.Board, us board.Color) int {
	ours := len(b.AvailableMoves(us))
	theirs := len(b.AvailableMoves(us.Other()))
	return (ours - theirs) * MobilityBonus
}

// Structure rewards pieces backed by a friendly piece diagonally behind them.
func Structure(b *board.Board, us board.Color) int {
	score := 0
	for _, c := range []board.Color{board.White, board.Black} {
		for _, p := range b.Pieces(c) {
			if isProtected(b, p) {
				score += sign(p, us) * ProtectionBonus
			}
		}
	}
	return score
}

// isProtected returns true if a piece of the same color sits on one of the
// two diagonal squares one row behind p.
func isProtected(b *board.Board, p board.Piece) bool {
	behind := p.Row - p.Color.Forward()
	for _, col := range []int{p.Col - 1, p.Col + 1} {
		if q, ok := b.PieceAt(behind, col); ok && q.Color == p.Color {
			return true
		}
	}
	return false
}
