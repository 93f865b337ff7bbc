package game

import (
	"errors"
	"fmt"
)

// Squares is the number of cells on the board, indexed 0-8 row-major.
const Squares = 9

// ErrInvalidMove is returned by ApplyMove for an out-of-range or occupied
// square. It is the only error the board model produces.
var ErrInvalidMove = errors.New("invalid move")

// winLines are the 8 ways to win: 3 rows, 3 columns, 2 diagonals.
var winLines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// Board is one immutable configuration of the grid plus the player to move.
// The zero value is not a playable board; use NewBoard.
type Board struct {
	cells [Squares]Player
	turn  Player
}

// NewBoard returns the empty starting position with X to move.
func NewBoard() Board {
	return Board{turn: X}
}

// ToMove returns the player whose turn is next.
func (b Board) ToMove() Player {
	return b.turn
}

// Cell returns the occupant of a square, or None for an open or
// out-of-range square.
func (b Board) Cell(square int) Player {
	if square < 0 || square >= Squares {
		return None
	}
	return b.cells[square]
}

// LegalMoves returns the open squares in ascending index order. Callers
// that want variety among equally good moves shuffle the result themselves;
// the order never affects correctness, only tie-breaking.
func (b Board) LegalMoves() []int {
	moves := make([]int, 0, Squares)
	for sq, p := range b.cells {
		if p == None {
			moves = append(moves, sq)
		}
	}
	return moves
}

// MovesPlayed returns how many squares have been taken.
func (b Board) MovesPlayed() int {
	n := 0
	for _, p := range b.cells {
		if p != None {
			n++
		}
	}
	return n
}

// ApplyMove returns a new Board with the given square taken by the player
// to move and the turn passed to the opponent. The receiver is unchanged.
// Fails with ErrInvalidMove if the square is out of range or occupied.
func (b Board) ApplyMove(square int) (Board, error) {
	if square < 0 || square >= Squares {
		return Board{}, fmt.Errorf("square %d out of range: %w", square, ErrInvalidMove)
	}
	if b.cells[square] != None {
		return Board{}, fmt.Errorf("square %d occupied: %w", square, ErrInvalidMove)
	}
	next := b
	next.cells[square] = b.turn
	next.turn = b.turn.Opponent()
	return next, nil
}

// IsWin reports whether any line is held entirely by one player.
func (b Board) IsWin() bool {
	for _, ln := range winLines {
		p := b.cells[ln[0]]
		if p != None && p == b.cells[ln[1]] && p == b.cells[ln[2]] {
			return true
		}
	}
	return false
}

// IsDraw reports whether the board is full with no winner.
func (b Board) IsDraw() bool {
	return !b.IsWin() && b.MovesPlayed() == Squares
}

// Winner returns the winning player, or None for a draw or a game still in
// progress. The winning move has already swapped the turn, so the winner is
// the player who is NOT to move.
func (b Board) Winner() Player {
	if !b.IsWin() {
		return None
	}
	return b.turn.Opponent()
}

// Evaluate scores a terminal board from one player's perspective: 1 for a
// win, -1 for a loss, 0 for a draw. Only meaningful when IsWin or IsDraw
// holds. A win belongs to the player who just moved, which the turn swap in
// ApplyMove makes the opposite of the player to move here; getting this
// attribution backwards inverts the whole search.
func (b Board) Evaluate(perspective Player) int {
	if !b.IsWin() {
		return 0
	}
	if b.Winner() == perspective {
		return 1
	}
	return -1
}
