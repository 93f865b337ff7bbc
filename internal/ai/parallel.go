package ai

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/lox/tictacforbots/internal/game"
)

// FindBestMoveParallel scores each root move on its own goroutine. Every
// subtree operates on an independently derived Board value, so the fan-out
// needs no locking; the reduction keeps the first maximum in ascending
// move order, so the result is identical to FindBestMove.
func FindBestMoveParallel(ctx context.Context, b game.Board) (int, error) {
	if b.IsWin() || b.IsDraw() {
		return NoMove, nil
	}

	moves := b.LegalMoves()
	scores := make([]int, len(moves))

	g, ctx := errgroup.WithContext(ctx)
	for i, mv := range moves {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			next, _ := b.ApplyMove(mv) // legal by construction
			scores[i] = Minimax(next, Minimize, b.ToMove())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return NoMove, err
	}

	bestSquare, bestScore := NoMove, math.MinInt
	for i, mv := range moves {
		if scores[i] > bestScore {
			bestSquare, bestScore = mv, scores[i]
		}
	}
	return bestSquare, nil
}
