package pyramid

import (
	"github.com/gorgonia/pyramid/game"
	"github.com/gorgonia/pyramid/game/pylos"
	"github.com/pkg/errors"
	"gorgonia.org/tensor"
	"gorgonia.org/vecf32"
)

// EncodeTwoPlayerBoard encodes black as 1, white as -1 for each piece placed. The encoding is indexed by offset.
func EncodeTwoPlayerBoard(b *pylos.Board, prealloc []float32) []float32 {
	a := b.Colours()
	if len(prealloc) != len(a) {
		prealloc = make([]float32, len(a))
	}

	for i := range a {
		switch a[i] {
		case game.Black:
			prealloc[i] = 1
		case game.White:
			prealloc[i] = -1
		default:
			prealloc[i] = 0
		}
	}
	return prealloc
}

// EncodeBoard encodes the board with a freshly allocated slice. It is the BoardEncoder form of EncodeTwoPlayerBoard.
func EncodeBoard(b *pylos.Board) []float32 { return EncodeTwoPlayerBoard(b, nil) }

// EncodePerspective encodes the board so that the given player's pieces are 1 and the opponent's are -1.
func EncodePerspective(b *pylos.Board, p game.Player, prealloc []float32) ([]float32, error) {
	if !p.IsValid() {
		return nil, errors.Errorf("Cannot encode the board from the perspective of %v", p)
	}
	retVal := EncodeTwoPlayerBoard(b, prealloc)
	if game.Opponent(p) == game.Player(game.Black) {
		vecf32.Scale(retVal, -1)
	}
	return retVal, nil
}

// EncodeTensor encodes the board as a (layers, layers, layers) tensor. Plane i is game layer i+1, indexed
// [y][x]. Layers smaller than the base are padded with zeroes at the far edges.
func EncodeTensor(b *pylos.Board) *tensor.Dense {
	cfg := b.Config()
	n := cfg.Layers()
	flat := EncodeTwoPlayerBoard(b, nil)
	backing := make([]float32, n*n*n)
	for _, p := range cfg.Full().Positions(cfg) {
		layer, x, y := p.Coordinates()
		backing[(layer-1)*n*n+(y-1)*n+(x-1)] = flat[p.Offset()]
	}
	return tensor.New(tensor.WithShape(n, n, n), tensor.WithBacking(backing))
}
