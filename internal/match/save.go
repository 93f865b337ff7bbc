package match

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lox/tictacforbots/internal/fileutil"
	"github.com/lox/tictacforbots/internal/game"
)

// State is a game in progress: the position plus the moves that produced
// it. Save files hold exactly one State.
type State struct {
	Board game.Board
	Moves []int
}

// NewState returns the empty starting state.
func NewState() State {
	return State{Board: game.NewBoard()}
}

// Save file format, two lines:
//
//	X.O.X....O
//	0 2 4
//
// The first line is the board's text form, the second the move history in
// play order. The history must replay to the board, which Load verifies.

// Save writes the state atomically so an interrupted write never corrupts
// an existing save.
func Save(path string, st State) error {
	text, err := st.Board.MarshalText()
	if err != nil {
		return err
	}

	squares := make([]string, len(st.Moves))
	for i, mv := range st.Moves {
		squares[i] = strconv.Itoa(mv)
	}

	data := fmt.Sprintf("%s\n%s\n", text, strings.Join(squares, " "))
	return fileutil.WriteFileAtomic(path, []byte(data), 0o644)
}

// Load reads a saved game and verifies the move history reproduces the
// saved board.
func Load(path string) (State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return State{}, fmt.Errorf("read save file: %w", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) < 1 || len(lines) > 2 || lines[0] == "" {
		return State{}, fmt.Errorf("save file must have a board line and a moves line")
	}

	board, err := game.ParseBoard(strings.TrimSpace(lines[0]))
	if err != nil {
		return State{}, fmt.Errorf("save file board: %w", err)
	}

	var moves []int
	if len(lines) == 2 {
		for _, field := range strings.Fields(lines[1]) {
			mv, err := strconv.Atoi(field)
			if err != nil {
				return State{}, fmt.Errorf("save file move %q: %w", field, err)
			}
			moves = append(moves, mv)
		}
	}

	replayed := game.NewBoard()
	for _, mv := range moves {
		replayed, err = replayed.ApplyMove(mv)
		if err != nil {
			return State{}, fmt.Errorf("save file history does not replay: %w", err)
		}
	}
	if replayed != board {
		return State{}, fmt.Errorf("save file history ends at %q, board line says %q", replayed, board)
	}

	return State{Board: board, Moves: moves}, nil
}
