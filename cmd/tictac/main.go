package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Play    PlayCmd          `cmd:"" help:"Play against the computer in the terminal"`
	Demo    DemoCmd          `cmd:"" help:"Watch the computer play itself"`
	Solve   SolveCmd         `cmd:"" help:"Print the best move for a position"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("tictac"),
		kong.Description("Console Tic-Tac-Toe with an unbeatable minimax opponent"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
