// Package pyramid holds helpers that turn pyramid boards into inputs for learning agents.
package pyramid

import (
	"github.com/gorgonia/pyramid/game"
	"github.com/gorgonia/pyramid/game/pylos"
)

// BoardEncoder encodes a board as a slice of floats
type BoardEncoder func(b *pylos.Board) []float32

// Augmenter takes a board and returns boards that are equivalent to it.
type Augmenter func(b *pylos.Board) []*pylos.Board

// Augment returns the eight images of the board under the symmetries of the square. The first is a copy of b.
func Augment(b *pylos.Board) []*pylos.Board {
	cfg := b.Config()
	blacks := pylos.Symmetries(cfg, b.Pieces(game.Player(game.Black)))
	whites := pylos.Symmetries(cfg, b.Pieces(game.Player(game.White)))
	retVal := make([]*pylos.Board, 0, len(blacks))
	for i := range blacks {
		img, err := pylos.BoardOf(cfg, blacks[i], whites[i])
		if err != nil {
			panic(err) // symmetries are bijections, so the images cannot overlap
		}
		retVal = append(retVal, img)
	}
	return retVal
}

var (
	_ BoardEncoder = EncodeBoard
	_ Augmenter    = Augment
)
