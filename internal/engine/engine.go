// Package engine implements the automated checkers opponent: minimax with
// alpha-beta pruning over cloned boards, evaluated sequentially or with a
// parallel fan-out of the root moves.
package engine

import (
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hailam/checkersplay/internal/board"
)

// ErrNilBoard is returned when a search is requested without a board.
var ErrNilBoard = errors.New("engine: board must not be nil")

// SearchInfo contains information about a finished search.
type SearchInfo struct {
	Move      board.Move
	Score     int
	Depth     int
	Nodes     uint64
	RootMoves int
	Parallel  bool
	Time      time.Duration
}

// Difficulty represents the AI difficulty level.
type Difficulty int

const (
	Easy   Difficulty = iota // 2 ply
	Medium                   // 4 ply
	Hard                     // 6 ply
)

// DifficultyDepth maps difficulty to search depth in plies.
var DifficultyDepth = map[Difficulty]int{
	Easy:   2,
	Medium: 4,
	Hard:   6,
}

// String returns the difficulty name.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "custom"
	}
}

// ParseDifficulty parses "easy", "medium" or "hard" (any case).
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	}
	return Medium, fmt.Errorf("invalid difficulty: %q", s)
}

// DifficultyForDepth returns the named level matching a depth, if any.
func DifficultyForDepth(depth int) (Difficulty, bool) {
	for d, v := range DifficultyDepth {
		if v == depth {
			return d, true
		}
	}
	return Medium, false
}

// Engine is the checkers AI player. Its color and search depth are fixed at
// construction.
type Engine struct {
	color    board.Color
	maxDepth int
	nodes    atomic.Uint64

	// Callbacks
	OnInfo func(SearchInfo)
}

// New creates an engine playing the given color, searching maxDepth plies.
// Depths below 1 are raised to 1.
func New(c board.Color, maxDepth int) *Engine {
	if maxDepth < 1 {
		maxDepth = 1
	}
	return &Engine{
		color:    c,
		maxDepth: maxDepth,
	}
}

// Color returns the color the engine plays.
func (e *Engine) Color() board.Color {
	return e.color
}

// MaxDepth returns the search depth in plies.
func (e *Engine) MaxDepth() int {
	return e.maxDepth
}

// Nodes returns the number of nodes visited by the last search.
func (e *Engine) Nodes() uint64 {
	return e.nodes.Load()
}

// BestMove finds the best move, evaluating the root moves in parallel.
// It returns board.NoMove when the engine's color cannot move.
func (e *Engine) BestMove(b *board.Board) (board.Move, error) {
	return e.bestMove(b, true)
}

// BestMoveSequential finds the best move, evaluating the root moves one
// after another in generation order. Ties keep the earliest move.
func (e *Engine) BestMoveSequential(b *board.Board) (board.Move, error) {
	return e.bestMove(b, false)
}

func (e *Engine) bestMove(b *board.Board, parallel bool) (board.Move, error) {
	if b == nil {
		return board.NoMove, ErrNilBoard
	}

	e.nodes.Store(0)

	moves := b.AvailableMoves(e.color)
	switch len(moves) {
	case 0:
		log.Debug().Str("color", e.color.String()).Msg("engine has no moves")
		return board.NoMove, nil
	case 1:
		log.Debug().Str("color", e.color.String()).Str("move", moves[0].String()).Msg("forced move")
		return moves[0], nil
	}

	startTime := time.Now()

	var best rootResult
	if parallel {
		best = e.searchRootParallel(b, moves)
	} else {
		best = e.searchRootSequential(b, moves)
	}

	info := SearchInfo{
		Move:      best.move,
		Score:     best.score,
		Depth:     e.maxDepth,
		Nodes:     e.Nodes(),
		RootMoves: len(moves),
		Parallel:  parallel,
		Time:      time.Since(startTime),
	}

	log.Debug().
		Str("color", e.color.String()).
		Str("move", info.Move.String()).
		Int("score", info.Score).
		Int("depth", info.Depth).
		Uint64("nodes", info.Nodes).
		Bool("parallel", parallel).
		Dur("elapsed", info.Time).
		Msg("search finished")

	if e.OnInfo != nil {
		e.OnInfo(info)
	}

	return best.move, nil
}

// ScoreToString converts a score to a human-readable string.
func ScoreToString(score int) string {
	switch {
	case score >= WinScore:
		return "win"
	case score <= -WinScore:
		return "loss"
	}
	return fmt.Sprintf("%+d", score)
}
