package engine

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/hailam/checkersplay/internal/board"
)

// searchRootParallel scores every root move on its own clone using a pool
// of GOMAXPROCS workers. Below the root each worker searches sequentially.
//
// The best result lives in a single atomic cell holding an immutable
// (move, score) pair. A worker only swaps in its result while it beats the
// current best, retrying when another worker got there first, so the cell
// only ever improves. Which of several equal-scoring moves wins depends on
// scheduling.
func (e *Engine) searchRootParallel(b *board.Board, moves []board.Move) rootResult {
	var best atomic.Pointer[rootResult]
	best.Store(&rootResult{move: moves[0], score: -Infinity})

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	for _, m := range moves {
		g.Go(func() error {
			candidate := &rootResult{move: m, score: e.ScoreMove(b, m)}
			for {
				current := best.Load()
				if candidate.score <= current.score {
					return nil
				}
				if best.CompareAndSwap(current, candidate) {
					return nil
				}
			}
		})
	}

	// Workers never fail; Wait is only the join point.
	_ = g.Wait()

	return *best.Load()
}
