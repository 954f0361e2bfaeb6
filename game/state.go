package game

import (
	"fmt"
)

type Colour int32

const (
	None Colour = iota
	Black
	White
)

func (cl Colour) Format(s fmt.State, c rune) {
	switch c {
	case 'v': // used in debug
		switch cl {
		case None:
			fmt.Fprint(s, "None")
		case Black:
			fmt.Fprint(s, "Black")
		case White:
			fmt.Fprint(s, "White")
		}
	case 's': // used in board games
		switch cl {
		case None:
			fmt.Fprint(s, "·")
		case Black:
			fmt.Fprint(s, "X")
		case White:
			fmt.Fprint(s, "O")
		}
	}
}

// Player represents a player. It's also a colour.
type Player Colour

func (p Player) Format(s fmt.State, c rune) { Colour(p).Format(s, c) }

// IsValid checks that a player is indeed one of the two sides.
func (p Player) IsValid() bool { return Colour(p) == Black || Colour(p) == White }

// Opponent returns the other side. It panics for None.
func Opponent(p Player) Player {
	switch Colour(p) {
	case White:
		return Player(Black)
	case Black:
		return Player(White)
	}
	panic("Unreachable")
}

// Single represents an intersection as a single number: the flat offset of the
// intersection within the board's 64 bit register.
type Single int32

// Zobrist is a type representing a "zobrist" hash of a board.
type Zobrist uint32
