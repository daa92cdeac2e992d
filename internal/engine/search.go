package engine

import (
	"github.com/hailam/checkersplay/internal/board"
)

// Search constants
const (
	Infinity = 1 << 30
	WinScore = 10000
)

// rootResult is a root move together with its minimax score.
type rootResult struct {
	move  board.Move
	score int
}

// Search runs minimax with alpha-beta pruning and returns the score of the
// position from the engine's point of view. On maximizing plies the engine's
// color is to move; on minimizing plies the opponent is.
func (e *Engine) Search(b *board.Board, depth, alpha, beta int, maximizing bool) int {
	e.nodes.Add(1)

	if depth <= 0 || b.IsOver() {
		return e.Evaluate(b)
	}

	side := e.color
	if !maximizing {
		side = side.Other()
	}
	moves := b.AvailableMoves(side)

	if maximizing {
		value := -Infinity
		for _, m := range moves {
			child := b.Clone()
			child.Apply(m, side)
			value = max(value, e.Search(child, depth-1, alpha, beta, false))
			alpha = max(alpha, value)
			if beta <= alpha {
				break // Beta cutoff
			}
		}
		return value
	}

	value := Infinity
	for _, m := range moves {
		child := b.Clone()
		child.Apply(m, side)
		value = min(value, e.Search(child, depth-1, alpha, beta, true))
		beta = min(beta, value)
		if beta <= alpha {
			break // Alpha cutoff
		}
	}
	return value
}

// ScoreMove returns the root score of playing m for the engine's color:
// the move is applied to a clone and the reply tree is searched to the
// remaining depth with a full window.
func (e *Engine) ScoreMove(b *board.Board, m board.Move) int {
	child := b.Clone()
	child.Apply(m, e.color)
	return e.Search(child, e.maxDepth-1, -Infinity, Infinity, false)
}

// searchRootSequential scores the root moves in order, keeping the first
// move among equal scores.
func (e *Engine) searchRootSequential(b *board.Board, moves []board.Move) rootResult {
	best := rootResult{move: moves[0], score: -Infinity}
	for _, m := range moves {
		score := e.ScoreMove(b, m)
		if score > best.score {
			best = rootResult{move: m, score: score}
		}
	}
	return best
}
