package game

// Player identifies a mark on the board. None marks an open square; it is
// also the Winner value for a draw or an unfinished game.
type Player uint8

const (
	None Player = iota
	X
	O
)

// Opponent returns the other player. None has no opponent.
func (p Player) Opponent() Player {
	switch p {
	case X:
		return O
	case O:
		return X
	}
	return None
}

// String returns "X", "O" or a space for None, matching the board's
// rendered form.
func (p Player) String() string {
	switch p {
	case X:
		return "X"
	case O:
		return "O"
	}
	return " "
}
