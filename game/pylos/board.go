package pylos

import (
	"fmt"

	"github.com/gorgonia/pyramid/game"
	"github.com/pkg/errors"
)

// Board holds the pieces of both players on a pyramid. It knows nothing of the rules: it only keeps
// one piece per intersection.
//
// A Board is not safe for concurrent use. Clone it to hand it to another goroutine.
type Board struct {
	cfg    Config
	pieces [2]PositionSet // indexed by colour - game.Black
	hash   uint32
}

// NewBoard creates an empty board.
func NewBoard(cfg Config) *Board { return &Board{cfg: cfg} }

// BoardOf creates a board holding the given pieces. Members beyond the board are dropped.
func BoardOf(cfg Config, black, white PositionSet) (*Board, error) {
	full := cfg.Full()
	black, white = black&full, white&full
	if both := black.Intersection(white); !both.IsEmpty() {
		return nil, errors.WithMessagef(ErrOccupied, "Offsets %v are held by both players", both)
	}
	return &Board{
		cfg:    cfg,
		pieces: [2]PositionSet{black, white},
		hash:   uint32(hashOf(black, white)),
	}, nil
}

// Config returns the shape of the board.
func (b *Board) Config() Config { return b.cfg }

// Pieces returns the set of intersections held by the player. It returns the empty set for game.None.
func (b *Board) Pieces(player game.Player) PositionSet {
	if !player.IsValid() {
		return 0
	}
	return b.pieces[game.Colour(player)-game.Black]
}

// Occupied returns the set of intersections holding a piece of either player.
func (b *Board) Occupied() PositionSet { return b.pieces[0].Union(b.pieces[1]) }

// Vacant returns the set of intersections that hold no piece.
func (b *Board) Vacant() PositionSet { return b.cfg.Full().Difference(b.Occupied()) }

// At returns the colour of the piece on p, or game.None.
func (b *Board) At(p Position) game.Colour {
	switch {
	case b.pieces[0].Contains(p):
		return game.Black
	case b.pieces[1].Contains(p):
		return game.White
	}
	return game.None
}

// Place puts a piece of the player on p.
func (b *Board) Place(p Position, player game.Player) error {
	m := placement{p, player}
	if !player.IsValid() {
		return errors.WithMessagef(ErrInvalidPlayer, "Unable to make %v", m)
	}
	if p.cfg != b.cfg {
		return errors.WithMessagef(ErrConfigMismatch, "Unable to make %v: position is for %v, board is %v", m, p.cfg, b.cfg)
	}
	if b.Occupied().Contains(p) {
		return errors.WithMessagef(ErrOccupied, "Unable to make %v: %v is held by %v", m, p, b.At(p))
	}
	b.pieces[game.Colour(player)-game.Black].Insert(p)
	b.hash ^= zobristKey(p.offset, player)
	return nil
}

// Remove takes the piece off p and returns its colour. Removing from a vacant intersection returns game.None.
func (b *Board) Remove(p Position) (game.Colour, error) {
	if p.cfg != b.cfg {
		return game.None, errors.WithMessagef(ErrConfigMismatch, "Unable to remove %v: position is for %v, board is %v", p, p.cfg, b.cfg)
	}
	c := b.At(p)
	if c == game.None {
		return c, nil
	}
	b.pieces[c-game.Black].Remove(p)
	b.hash ^= zobristKey(p.offset, game.Player(c))
	return c, nil
}

// Hash returns the zobrist hash of the pieces on the board.
func (b *Board) Hash() game.Zobrist { return game.Zobrist(b.hash) }

// Colours returns the colour of every intersection, indexed by offset.
func (b *Board) Colours() []game.Colour {
	retVal := make([]game.Colour, b.cfg.Positions())
	for i, set := range b.pieces {
		for _, o := range set.Offsets() {
			retVal[o] = game.Colour(i) + game.Black
		}
	}
	return retVal
}

// Reset clears the board.
func (b *Board) Reset() {
	b.pieces = [2]PositionSet{}
	b.hash = 0
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	retVal := *b
	return &retVal
}

// Eq checks that both boards have the same shape and the same pieces.
func (b *Board) Eq(other *Board) bool {
	if b == other {
		return true
	}
	if b == nil || other == nil {
		return false
	}
	return b.cfg == other.cfg && b.pieces == other.pieces
}

// Format implements fmt.Formatter. Layers are printed from the base up.
func (b *Board) Format(s fmt.State, c rune) {
	switch c {
	case 's', 'v':
		colours := b.Colours()
		for layer := 1; layer <= b.cfg.layers; layer++ {
			k := b.cfg.layers - layer
			size := LayerSize(k)
			start := LayerOffset(k)
			it := game.MakeIterator(colours[start:start+size*size], size)
			fmt.Fprintf(s, "Layer %d\n", layer)
			for _, row := range it {
				fmt.Fprint(s, "⎢ ")
				for _, col := range row {
					fmt.Fprintf(s, "%s ", col)
				}
				fmt.Fprint(s, "⎥\n")
			}
			game.ReturnIterator(size, it)
		}
	}
}
