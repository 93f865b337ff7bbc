// Package match runs complete games between two agents: the original
// prompt-then-search loop generalized so humans, bots and test scripts all
// sit behind the same interface.
package match

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/lox/tictacforbots/internal/game"
)

// Seat pairs an agent with a display name.
type Seat struct {
	Name  string
	Agent Agent
}

// Observer is notified after every applied move with the board as it
// stands once the move is made.
type Observer func(seat string, p game.Player, square int, b game.Board)

// Result describes a finished game.
type Result struct {
	Winner game.Player // None for a draw
	Moves  []int       // squares in play order, including any resumed prefix
	Final  game.Board
}

// Match alternates two agents from a starting position until the game
// reaches Win or Draw. The board value is threaded through the loop; no
// state is shared with the agents.
type Match struct {
	seats    map[game.Player]Seat
	logger   *log.Logger
	observer Observer
}

// Option configures a Match.
type Option func(*Match)

// WithLogger sets the match logger.
func WithLogger(logger *log.Logger) Option {
	return func(m *Match) { m.logger = logger.WithPrefix("match") }
}

// WithObserver registers a per-move callback, typically a renderer.
func WithObserver(fn Observer) Option {
	return func(m *Match) { m.observer = fn }
}

// New returns a Match between the X and O seats.
func New(x, o Seat, opts ...Option) *Match {
	m := &Match{
		seats:  map[game.Player]Seat{game.X: x, game.O: o},
		logger: log.NewWithOptions(io.Discard, log.Options{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Play runs a full game from the empty board.
func (m *Match) Play(ctx context.Context) (Result, error) {
	return m.play(ctx, State{Board: game.NewBoard()})
}

// Resume continues a previously saved game.
func (m *Match) Resume(ctx context.Context, st State) (Result, error) {
	return m.play(ctx, st)
}

func (m *Match) play(ctx context.Context, st State) (Result, error) {
	b := st.Board
	moves := slices.Clone(st.Moves)

	for !b.IsWin() && !b.IsDraw() {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		mover := b.ToMove()
		seat := m.seats[mover]

		mv, err := seat.Agent.SelectMove(ctx, b)
		if err != nil {
			return Result{}, fmt.Errorf("%s: %w", seat.Name, err)
		}

		next, err := b.ApplyMove(mv)
		if err != nil {
			return Result{}, fmt.Errorf("%s played %d: %w", seat.Name, mv, err)
		}

		m.logger.Debug("move applied", "seat", seat.Name, "player", mover, "square", mv)
		moves = append(moves, mv)
		b = next

		if m.observer != nil {
			m.observer(seat.Name, mover, mv, b)
		}
	}

	result := Result{Winner: b.Winner(), Moves: moves, Final: b}
	m.logger.Info("game over", "winner", result.Winner, "moves", len(moves))
	return result, nil
}
