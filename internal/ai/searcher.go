package ai

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/tictacforbots/internal/game"
)

// Searcher wraps the pure search functions with the two knobs the game
// front ends need: move-order shuffling for variety among equally good
// moves, and per-root-move score tracing for debugging. Both leave the
// guaranteed outcome untouched; shuffling only changes which of several
// optimal squares wins the tie.
type Searcher struct {
	rng    *rand.Rand
	logger *log.Logger
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithShuffle randomizes root move order with the given source, matching
// the original behavior of not always favoring low squares.
func WithShuffle(rng *rand.Rand) Option {
	return func(s *Searcher) { s.rng = rng }
}

// WithLogger enables debug tracing of every root move's score.
func WithLogger(logger *log.Logger) Option {
	return func(s *Searcher) { s.logger = logger.WithPrefix("ai") }
}

// New returns a Searcher. With no options it behaves exactly like
// FindBestMove.
func New(opts ...Option) *Searcher {
	s := &Searcher{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BestMove returns the searcher's move for the player to move, or NoMove
// on a finished board.
func (s *Searcher) BestMove(b game.Board) int {
	moves := b.LegalMoves()
	if s.rng != nil {
		s.rng.Shuffle(len(moves), func(i, j int) {
			moves[i], moves[j] = moves[j], moves[i]
		})
	}

	var trace func(square, score int)
	if s.logger != nil {
		player := b.ToMove()
		trace = func(square, score int) {
			s.logger.Debug("explored move", "player", player, "square", square, "score", score)
		}
	}

	mv, score := bestMove(b, moves, trace)
	if s.logger != nil && mv != NoMove {
		s.logger.Debug("selected move", "square", mv, "score", score)
	}
	return mv
}
