package game

import "fmt"

// Text form: nine cell characters row-major then the player to move, e.g.
// "X.O.X....O" for X on 0 and 4, O on 2, O's turn. Open squares are dots.

// MarshalText encodes the board in its 10-character text form.
func (b Board) MarshalText() ([]byte, error) {
	out := make([]byte, 0, Squares+1)
	for _, p := range b.cells {
		out = append(out, cellByte(p))
	}
	return append(out, cellByte(b.turn)), nil
}

// UnmarshalText decodes the 10-character text form, validating that the
// mark counts are reachable by alternating play from the empty board.
func (b *Board) UnmarshalText(text []byte) error {
	parsed, err := ParseBoard(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// String returns the same form MarshalText produces.
func (b Board) String() string {
	text, _ := b.MarshalText()
	return string(text)
}

// ParseBoard decodes a position from its text form.
func ParseBoard(s string) (Board, error) {
	if len(s) != Squares+1 {
		return Board{}, fmt.Errorf("position must be %d characters, got %d", Squares+1, len(s))
	}
	var b Board
	var xs, os int
	for i := 0; i < Squares; i++ {
		p, err := parseCell(s[i])
		if err != nil {
			return Board{}, fmt.Errorf("square %d: %w", i, err)
		}
		b.cells[i] = p
		switch p {
		case X:
			xs++
		case O:
			os++
		}
	}
	turn, err := parseCell(s[Squares])
	if err != nil || turn == None {
		return Board{}, fmt.Errorf("player to move must be X or O")
	}
	b.turn = turn

	// Turns alternate from X, so the counts pin down whose move it is.
	switch {
	case turn == X && xs != os:
		return Board{}, fmt.Errorf("X to move needs equal marks, got %d X / %d O", xs, os)
	case turn == O && xs != os+1:
		return Board{}, fmt.Errorf("O to move needs one extra X, got %d X / %d O", xs, os)
	}
	return b, nil
}

func cellByte(p Player) byte {
	switch p {
	case X:
		return 'X'
	case O:
		return 'O'
	}
	return '.'
}

func parseCell(c byte) (Player, error) {
	switch c {
	case 'X', 'x':
		return X, nil
	case 'O', 'o':
		return O, nil
	case '.':
		return None, nil
	}
	return None, fmt.Errorf("unknown cell character %q", c)
}
