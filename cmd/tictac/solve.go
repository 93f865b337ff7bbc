package main

import (
	"fmt"
	"os"

	"github.com/lox/tictacforbots/cmd/tictac/shared"
	"github.com/lox/tictacforbots/internal/ai"
	"github.com/lox/tictacforbots/internal/display"
	"github.com/lox/tictacforbots/internal/game"
)

// SolveCmd evaluates a single position. The position is the board's text
// form: nine cells row-major (X, O or .) then the player to move, e.g.
// "X.O.X....O".
type SolveCmd struct {
	Position string `arg:"" help:"Position to solve, e.g. 'X.O.X....O'"`
	Parallel bool   `help:"Score root moves concurrently"`
	Verbose  bool   `help:"Trace every root move's score to stderr"`
}

func (c *SolveCmd) Run() error {
	b, err := game.ParseBoard(c.Position)
	if err != nil {
		return err
	}

	renderer := display.NewRenderer(os.Stdout)
	renderer.PrintBoard(b)

	if b.IsWin() || b.IsDraw() {
		renderer.PrintResult(b)
		return nil
	}

	var mv int
	if c.Parallel {
		if mv, err = ai.FindBestMoveParallel(shared.SetupSignalHandler(), b); err != nil {
			return err
		}
	} else {
		searcher := ai.New(searcherOpts(c.Verbose)...)
		mv = searcher.BestMove(b)
	}

	next, err := b.ApplyMove(mv)
	if err != nil {
		return err
	}
	score := ai.Minimax(next, ai.Minimize, b.ToMove())

	fmt.Printf("Best move for %s: %d (%s)\n", b.ToMove(), mv, describeScore(score))
	return nil
}

func searcherOpts(verbose bool) []ai.Option {
	if !verbose {
		return nil
	}
	return []ai.Option{ai.WithLogger(shared.SetupLogger(os.Stderr, "debug"))}
}

func describeScore(score int) string {
	switch {
	case score > 0:
		return "forced win"
	case score < 0:
		return "loses against perfect play"
	}
	return "draw with perfect play"
}
