package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/tictacforbots/internal/game"
)

func TestBoardShowsSquareNumbersAndMarks(t *testing.T) {
	t.Parallel()

	b := game.NewBoard()
	b, err := b.ApplyMove(4)
	require.NoError(t, err)
	b, err = b.ApplyMove(0)
	require.NoError(t, err)

	out := NewPlainRenderer(&bytes.Buffer{}).Board(b)

	assert.Contains(t, out, "X", "taken square should show its mark")
	assert.Contains(t, out, "O")
	assert.NotContains(t, out, "4", "occupied square number should be hidden")
	assert.NotContains(t, out, "0")
	for _, open := range []string{"1", "2", "3", "5", "6", "7", "8"} {
		assert.Contains(t, out, open)
	}
	assert.Equal(t, 2, strings.Count(out, strings.Repeat("-", 11)))
}

func TestResultBanners(t *testing.T) {
	t.Parallel()

	r := NewPlainRenderer(&bytes.Buffer{})

	b := game.NewBoard()
	assert.Empty(t, r.Result(b))

	for _, mv := range []int{0, 3, 1, 4, 2} {
		var err error
		b, err = b.ApplyMove(mv)
		require.NoError(t, err)
	}
	assert.Equal(t, "X wins!", r.Result(b))

	drawn := game.NewBoard()
	for _, mv := range []int{0, 1, 2, 4, 3, 5, 7, 6, 8} {
		var err error
		drawn, err = drawn.ApplyMove(mv)
		require.NoError(t, err)
	}
	assert.Equal(t, "It's a draw!", r.Result(drawn))
}

func TestPrintMove(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := NewPlainRenderer(&buf)
	r.PrintMove("Computer", game.O, 6)
	assert.Equal(t, "Computer (O) plays 6\n", buf.String())
}
