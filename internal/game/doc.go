// Package game implements the core Tic-Tac-Toe board model.
//
// The main type is Board, an immutable value holding the nine squares of a
// 3x3 grid plus the player whose turn is next. Applying a move never
// mutates the receiver; it returns a fresh Board with the move made and the
// turn swapped:
//
//	b := game.NewBoard()
//	b, err := b.ApplyMove(4)
//	if b.IsWin() || b.IsDraw() {
//	    // game over
//	}
//
// Because every derived Board is an independent value, search code can fan
// out over successor positions with no copying discipline or locking.
//
// # Terminal Evaluation
//
// Evaluate scores a finished game from one player's perspective. The turn
// field has already advanced past the winning move by the time a win is
// observable, so the winner is always the player who is NOT to move. Both
// Winner and Evaluate account for this; callers must not re-derive the
// winner from the turn field themselves.
package game
