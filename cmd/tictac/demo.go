package main

import (
	"os"
	"time"

	"github.com/coder/quartz"

	"github.com/lox/tictacforbots/cmd/tictac/shared"
	"github.com/lox/tictacforbots/internal/config"
	"github.com/lox/tictacforbots/internal/display"
	"github.com/lox/tictacforbots/internal/game"
	"github.com/lox/tictacforbots/internal/match"
)

// DemoCmd plays the computer against itself on the plain console renderer.
// Perfect play on both sides, so it always ends in a draw.
type DemoCmd struct {
	Delay   time.Duration `help:"Pause before each move" default:"500ms"`
	Seed    int64         `help:"Move-shuffle seed, 0 uses the clock"`
	Verbose bool          `help:"Trace search scores to stderr"`
}

func (c *DemoCmd) Run() error {
	level := "info"
	if c.Verbose {
		level = "debug"
	}
	logger := shared.SetupLogger(os.Stderr, level)

	botCfg := config.BotSettings{Shuffle: true, Seed: c.Seed}
	clock := quartz.NewReal()
	seat := func(name string, offset int64) match.Seat {
		cfg := botCfg
		if cfg.Seed != 0 {
			// Separate streams so the two bots don't mirror each other's
			// tie-breaking.
			cfg.Seed += offset
		}
		searcher := newSearcher(&cfg, logger, c.Verbose)
		return match.Seat{
			Name:  name,
			Agent: match.NewBotAgent(searcher, clock, c.Delay, logger),
		}
	}

	renderer := display.NewRenderer(os.Stdout)
	renderer.PrintBoard(game.NewBoard())

	m := match.New(
		seat("computer-x", 0),
		seat("computer-o", 1),
		match.WithLogger(logger),
		match.WithObserver(func(name string, p game.Player, square int, b game.Board) {
			renderer.PrintMove(name, p, square)
			renderer.PrintBoard(b)
		}),
	)

	result, err := m.Play(shared.SetupSignalHandler())
	if err != nil {
		return err
	}
	renderer.PrintResult(result.Final)
	return nil
}
