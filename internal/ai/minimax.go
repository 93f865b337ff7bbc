// Package ai implements the unbeatable opponent: exhaustive minimax over
// immutable game.Board values. The tree is at most 9 plies deep with
// 362,880 terminal leaves, so every call enumerates it fully with no
// pruning, caching or depth limit.
package ai

import (
	"math"

	"github.com/lox/tictacforbots/internal/game"
)

// Mode marks whether a search level takes the best or the worst outcome
// for the perspective player. It alternates in lock-step with the board's
// own turn field but is tracked separately; conflating the two is how the
// win-attribution bug creeps in.
type Mode uint8

const (
	Maximize Mode = iota
	Minimize
)

func (m Mode) flip() Mode {
	if m == Maximize {
		return Minimize
	}
	return Maximize
}

// NoMove is returned by best-move selection on a board that is already
// finished. Callers should check IsWin/IsDraw before asking for a move.
const NoMove = -1

// Minimax scores a position for the perspective player: 1 if the line of
// play ends in their win, -1 a loss, 0 a draw. The perspective never
// changes down the recursion; only the mode flips each ply.
func Minimax(b game.Board, mode Mode, perspective game.Player) int {
	if b.IsWin() || b.IsDraw() {
		return b.Evaluate(perspective)
	}

	best := math.MinInt
	if mode == Minimize {
		best = math.MaxInt
	}
	for _, mv := range b.LegalMoves() {
		next, _ := b.ApplyMove(mv) // legal by construction
		score := Minimax(next, mode.flip(), perspective)
		if mode == Maximize && score > best {
			best = score
		}
		if mode == Minimize && score < best {
			best = score
		}
	}
	return best
}

// FindBestMove returns the square giving the player to move their best
// guaranteed outcome, trying moves in ascending index order and keeping
// the first of any tie. Returns NoMove on a terminal board.
func FindBestMove(b game.Board) int {
	mv, _ := bestMove(b, b.LegalMoves(), nil)
	return mv
}

// bestMove scores each candidate root move by searching the resulting
// position with Minimize (the opponent answers) from the mover's
// perspective, and keeps the first maximum in the order given.
func bestMove(b game.Board, moves []int, trace func(square, score int)) (int, int) {
	if b.IsWin() || b.IsDraw() {
		return NoMove, 0
	}

	bestSquare, bestScore := NoMove, math.MinInt
	for _, mv := range moves {
		next, _ := b.ApplyMove(mv) // legal by construction
		score := Minimax(next, Minimize, b.ToMove())
		if trace != nil {
			trace(mv, score)
		}
		if score > bestScore {
			bestSquare, bestScore = mv, score
		}
	}
	return bestSquare, bestScore
}
