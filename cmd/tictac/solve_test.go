package main

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/tictacforbots/internal/config"
	"github.com/lox/tictacforbots/internal/game"
)

func TestDescribeScore(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "forced win", describeScore(1))
	assert.Equal(t, "draw with perfect play", describeScore(0))
	assert.Equal(t, "loses against perfect play", describeScore(-1))
}

func TestNewSearcherSeededShuffleIsReproducible(t *testing.T) {
	t.Parallel()

	logger := log.NewWithOptions(io.Discard, log.Options{})
	cfg := &config.BotSettings{Shuffle: true, Seed: 42}

	b, err := game.ParseBoard(".........X")
	require.NoError(t, err)

	first := newSearcher(cfg, logger, false).BestMove(b)
	second := newSearcher(cfg, logger, false).BestMove(b)
	assert.Equal(t, first, second)
}

func TestNewSearcherWithoutShuffleIsDeterministic(t *testing.T) {
	t.Parallel()

	logger := log.NewWithOptions(io.Discard, log.Options{})
	cfg := &config.BotSettings{}

	b, err := game.ParseBoard("X...O....X")
	require.NoError(t, err)

	s := newSearcher(cfg, logger, false)
	assert.Equal(t, s.BestMove(b), s.BestMove(b))
}
