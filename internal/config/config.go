// Package config loads game settings from an HCL file.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the complete game configuration.
type Config struct {
	Game GameSettings `hcl:"game,block"`
	Bot  BotSettings  `hcl:"bot,block"`
}

// fileConfig mirrors Config with optional blocks so a file may omit either
// section entirely.
type fileConfig struct {
	Game *GameSettings `hcl:"game,block"`
	Bot  *BotSettings  `hcl:"bot,block"`
}

// GameSettings controls the interactive game.
type GameSettings struct {
	HumanMark string `hcl:"human_mark,optional"` // "X" plays first, "O" lets the bot open
	LogLevel  string `hcl:"log_level,optional"`
	LogFile   string `hcl:"log_file,optional"`
}

// BotSettings controls the computer opponent.
type BotSettings struct {
	ThinkMs  int   `hcl:"think_ms,optional"` // pause before each bot move
	Shuffle  bool  `hcl:"shuffle,optional"`  // randomize order among equally good moves
	Seed     int64 `hcl:"seed,optional"`     // 0 seeds from the current time
	Parallel bool  `hcl:"parallel,optional"` // score root moves concurrently
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Game: GameSettings{
			HumanMark: "X",
			LogLevel:  "info",
			LogFile:   "tictac.log",
		},
		Bot: BotSettings{
			ThinkMs: 400,
			Shuffle: true,
		},
	}
}

// Load reads configuration from an HCL file, falling back to Default when
// the file does not exist.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse %s: %s", filename, diags.Error())
	}

	var parsed fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("decode %s: %s", filename, diags.Error())
	}

	// Start from the defaults and overlay whatever the file set.
	config := Default()
	if parsed.Game != nil {
		if parsed.Game.HumanMark != "" {
			config.Game.HumanMark = parsed.Game.HumanMark
		}
		if parsed.Game.LogLevel != "" {
			config.Game.LogLevel = parsed.Game.LogLevel
		}
		if parsed.Game.LogFile != "" {
			config.Game.LogFile = parsed.Game.LogFile
		}
	}
	if parsed.Bot != nil {
		config.Bot = *parsed.Bot
		if config.Bot.ThinkMs == 0 {
			config.Bot.ThinkMs = Default().Bot.ThinkMs
		}
	}

	if config.Game.HumanMark != "X" && config.Game.HumanMark != "O" {
		return nil, fmt.Errorf("human_mark must be X or O, got %q", config.Game.HumanMark)
	}
	return config, nil
}
