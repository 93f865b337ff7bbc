// Package display renders boards for plain console output. The grid shows
// the square number in blue on open squares and the occupying mark in red,
// so a player always sees which numbers are still playable.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/lox/tictacforbots/internal/game"
)

// Renderer writes human-readable boards and result banners. It only reads
// board queries, never applies moves.
type Renderer struct {
	out *termenv.Output
}

// NewRenderer returns a Renderer writing to w with colors matching the
// terminal's capabilities.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{out: termenv.NewOutput(w)}
}

// NewPlainRenderer returns a Renderer that never emits escape sequences,
// for logs and tests.
func NewPlainRenderer(w io.Writer) *Renderer {
	return &Renderer{out: termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))}
}

// Board returns the 3x3 grid as a string.
func (r *Renderer) Board(b game.Board) string {
	var sb strings.Builder
	sb.WriteByte('\n')
	for sq := 0; sq < game.Squares; sq++ {
		occupant := b.Cell(sq)
		if occupant == game.None {
			sb.WriteString(fmt.Sprintf(" %s ", r.openSquare(sq)))
		} else {
			sb.WriteString(fmt.Sprintf(" %s ", r.mark(occupant)))
		}
		if sq%3 < 2 {
			sb.WriteByte('|')
		}
		if sq == 2 || sq == 5 {
			sb.WriteString("\n" + strings.Repeat("-", 11) + "\n")
		}
	}
	sb.WriteString("\n")
	return sb.String()
}

// Result returns the end-of-game banner for a terminal board.
func (r *Renderer) Result(b game.Board) string {
	switch {
	case b.IsWin():
		return fmt.Sprintf("%s wins!", b.Winner())
	case b.IsDraw():
		return "It's a draw!"
	}
	return ""
}

// PrintBoard writes the grid to the renderer's output.
func (r *Renderer) PrintBoard(b game.Board) {
	fmt.Fprint(r.out, r.Board(b))
}

// PrintMove writes a one-line move announcement.
func (r *Renderer) PrintMove(name string, p game.Player, square int) {
	fmt.Fprintf(r.out, "%s (%s) plays %d\n", name, p, square)
}

// PrintResult writes the end-of-game banner.
func (r *Renderer) PrintResult(b game.Board) {
	fmt.Fprintln(r.out, r.Result(b))
}

func (r *Renderer) openSquare(sq int) string {
	return r.out.String(fmt.Sprintf("%d", sq)).Foreground(r.out.Color("12")).String()
}

func (r *Renderer) mark(p game.Player) string {
	return r.out.String(p.String()).Foreground(r.out.Color("9")).String()
}
