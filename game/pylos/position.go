package pylos

import (
	"github.com/gorgonia/pyramid/game"
	"github.com/pkg/errors"
)

// Position is a single intersection of a board.
//
// Coordinates are 1-based. Layer 1 is the base of the pyramid, a Layers()×Layers() grid; the top layer
// is a single intersection. Within a layer x is the column and y the row.
//
// A Position carries the Config it was validated against. Config is a small immutable value, so it is
// copied rather than referenced.
type Position struct {
	cfg    Config
	offset game.Single
}

// NewPosition validates the 1-based coordinates against cfg.
func NewPosition(cfg Config, layer, x, y int) (Position, error) {
	if err := cfg.checkLayer(layer); err != nil {
		return Position{}, err
	}
	k := cfg.layers - layer
	size := LayerSize(k)
	if x < 1 || x > size || y < 1 || y > size {
		return Position{}, errors.WithMessagef(ErrCoordinateOutOfRange, "(%d, %d) on layer %d which is %d×%d", x, y, layer, size, size)
	}
	return Position{cfg: cfg, offset: Offset(k, x-1, y-1)}, nil
}

// PositionAt returns the position with the given offset.
func PositionAt(cfg Config, offset game.Single) (Position, error) {
	if offset < 0 || int(offset) >= cfg.Positions() {
		return Position{}, errors.WithMessagef(ErrCoordinateOutOfRange, "Offset %d on a board of %d intersections", offset, cfg.Positions())
	}
	return Position{cfg: cfg, offset: offset}, nil
}

// Coordinates returns the 1-based (layer, x, y) of the position.
func (p Position) Coordinates() (layer, x, y int) {
	k, x0, y0 := Coords(p.offset)
	return p.cfg.layers - k, x0 + 1, y0 + 1
}

// Offset returns the flat offset of the position.
func (p Position) Offset() game.Single { return p.offset }

// Config returns the Config the position was built for.
func (p Position) Config() Config { return p.cfg }

// Eq returns true if both positions name the same intersection of the same kind of board.
func (p Position) Eq(other Position) bool { return p.offset == other.offset && p.cfg == other.cfg }

// Supports returns the positions one layer down that a piece on p rests on. A position on the base has none,
// and neither does the zero Position, which is not on any board.
func (p Position) Supports() []Position {
	if p.cfg.layers == 0 {
		return nil
	}
	layer, x, y := p.Coordinates()
	if layer == 1 {
		return nil
	}
	retVal := make([]Position, 0, 4)
	for _, d := range square {
		retVal = append(retVal, p.at(layer-1, x+d[0], y+d[1]))
	}
	return retVal
}

// Above returns the positions one layer up that rest on p.
func (p Position) Above() []Position {
	if p.cfg.layers == 0 {
		return nil
	}
	layer, x, y := p.Coordinates()
	if layer == p.cfg.layers {
		return nil
	}
	size := p.cfg.LayerSize(layer + 1)
	var retVal []Position
	for _, d := range square {
		ax, ay := x-d[0], y-d[1]
		if ax < 1 || ay < 1 || ax > size || ay > size {
			continue
		}
		retVal = append(retVal, p.at(layer+1, ax, ay))
	}
	return retVal
}

// at builds a position already known to be valid.
func (p Position) at(layer, x, y int) Position {
	return Position{cfg: p.cfg, offset: Offset(p.cfg.layers-layer, x-1, y-1)}
}

// square lists the corners of a 2×2 block relative to its top left.
var square = [4][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
