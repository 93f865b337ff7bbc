package match

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/tictacforbots/internal/ai"
	"github.com/lox/tictacforbots/internal/game"
)

// Agent is anything that can pick a move for the seat it plays. Agents
// receive an immutable Board and return the square to take; they never
// apply moves themselves.
type Agent interface {
	SelectMove(ctx context.Context, b game.Board) (int, error)
}

// BotAgent plays with the minimax searcher, optionally pausing before each
// move so a watching human can follow along. The pause runs on an
// injectable clock so tests drive it explicitly.
type BotAgent struct {
	searcher *ai.Searcher
	clock    quartz.Clock
	think    time.Duration
	logger   *log.Logger
}

// NewBotAgent returns a BotAgent. A zero think duration moves instantly.
func NewBotAgent(searcher *ai.Searcher, clock quartz.Clock, think time.Duration, logger *log.Logger) *BotAgent {
	return &BotAgent{
		searcher: searcher,
		clock:    clock,
		think:    think,
		logger:   logger.WithPrefix("bot"),
	}
}

// SelectMove waits out the think delay then searches the position.
func (a *BotAgent) SelectMove(ctx context.Context, b game.Board) (int, error) {
	if a.think > 0 {
		timer := a.clock.NewTimer(a.think)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ai.NoMove, ctx.Err()
		case <-timer.C:
		}
	}

	mv := a.searcher.BestMove(b)
	if mv == ai.NoMove {
		return ai.NoMove, fmt.Errorf("no move available on finished board %q", b)
	}
	a.logger.Debug("selected move", "player", b.ToMove(), "square", mv)
	return mv, nil
}

// ScriptAgent replays a fixed move sequence, for tests and demos.
type ScriptAgent struct {
	moves []int
	next  int
}

// NewScriptAgent returns an agent that plays the given squares in order.
func NewScriptAgent(moves ...int) *ScriptAgent {
	return &ScriptAgent{moves: moves}
}

// SelectMove returns the next scripted square.
func (a *ScriptAgent) SelectMove(ctx context.Context, b game.Board) (int, error) {
	if a.next >= len(a.moves) {
		return ai.NoMove, fmt.Errorf("script exhausted after %d moves", a.next)
	}
	mv := a.moves[a.next]
	a.next++
	return mv, nil
}
