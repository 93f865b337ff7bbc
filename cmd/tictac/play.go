package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/tictacforbots/cmd/tictac/shared"
	"github.com/lox/tictacforbots/internal/ai"
	"github.com/lox/tictacforbots/internal/config"
	"github.com/lox/tictacforbots/internal/display"
	"github.com/lox/tictacforbots/internal/game"
	"github.com/lox/tictacforbots/internal/match"
	"github.com/lox/tictacforbots/internal/randutil"
	"github.com/lox/tictacforbots/internal/tui"
)

// PlayCmd runs the interactive terminal game.
type PlayCmd struct {
	Config  string `short:"c" help:"HCL config file" default:"tictac.hcl" type:"path"`
	First   bool   `help:"Let the computer open the game"`
	Resume  string `help:"Resume a saved game from this file" type:"path"`
	Save    string `help:"Save file written when quitting mid-game" default:"tictac.save" type:"path"`
	Verbose bool   `help:"Trace search scores to the log file"`
}

func (c *PlayCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs go to a file.
	logFile, err := os.OpenFile(cfg.Game.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()

	level := cfg.Game.LogLevel
	if c.Verbose {
		level = "debug"
	}
	logger := shared.SetupLogger(logFile, level)

	human := game.X
	if cfg.Game.HumanMark == "O" || c.First {
		human = game.O
	}

	st := match.NewState()
	if c.Resume != "" {
		if st, err = match.Load(c.Resume); err != nil {
			return err
		}
		logger.Info("resumed game", "board", st.Board, "moves", len(st.Moves))
	}

	searcher := newSearcher(&cfg.Bot, logger, c.Verbose)
	think := time.Duration(cfg.Bot.ThinkMs) * time.Millisecond
	bot := match.NewBotAgent(searcher, quartz.NewReal(), think, logger)

	model := tui.New(bot, human, st, c.Save, logger)
	if _, err := tea.NewProgram(model).Run(); err != nil {
		return fmt.Errorf("run TUI: %w", err)
	}

	if saved, err := model.Saved(); err != nil {
		return fmt.Errorf("save game: %w", err)
	} else if saved {
		fmt.Printf("Game saved to %s, resume with --resume %s\n", c.Save, c.Save)
		return nil
	}

	// Echo the finished game after the TUI has torn down.
	final := model.Final()
	if final.Board.IsWin() || final.Board.IsDraw() {
		r := display.NewRenderer(os.Stdout)
		r.PrintBoard(final.Board)
		r.PrintResult(final.Board)
	}
	return nil
}

// newSearcher builds the searcher the subcommands share, applying the
// shuffle and tracing settings.
func newSearcher(cfg *config.BotSettings, logger *log.Logger, verbose bool) *ai.Searcher {
	var opts []ai.Option
	if cfg.Shuffle {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		logger.Debug("seeding move shuffle", "seed", seed)
		opts = append(opts, ai.WithShuffle(randutil.New(seed)))
	}
	if verbose {
		opts = append(opts, ai.WithLogger(logger))
	}
	return ai.New(opts...)
}
