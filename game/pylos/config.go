package pylos

import (
	"fmt"

	"github.com/pkg/errors"
)

// Config records how many layers a board has. It is validated on construction and immutable afterwards.
type Config struct {
	layers int
}

// NewConfig builds a Config for a pyramid of the given number of layers.
// It fails when the pyramid has more intersections than a PositionSet can hold.
func NewConfig(layers int) (Config, error) {
	if layers < 1 {
		return Config{}, errors.WithMessagef(ErrInvalidLayer, "A game needs at least one layer. Got %d", layers)
	}
	if total := TotalPositions(layers); total > Capacity {
		return Config{}, errors.WithMessagef(ErrCapacityExceeded, "A game with %d layers needs %d balls, which is more than the %d supported", layers, total, Capacity)
	}
	return Config{layers: layers}, nil
}

// Layers returns the number of layers.
func (c Config) Layers() int { return c.layers }

// Positions returns the number of intersections on the board.
func (c Config) Positions() int { return TotalPositions(c.layers) }

// LayerSize returns the side length of the 1-based game layer. Layer 1 is the base.
func (c Config) LayerSize(layer int) int { return LayerSize(c.layers - layer) }

// Full returns the set of every intersection on the board.
func (c Config) Full() PositionSet {
	var s PositionSet
	for k := 0; k < c.layers; k++ {
		s |= LayerMask(k)
	}
	return s
}

// Layer returns the set of every intersection on the 1-based game layer.
func (c Config) Layer(layer int) (PositionSet, error) {
	if err := c.checkLayer(layer); err != nil {
		return 0, err
	}
	return LayerMask(c.layers - layer), nil
}

func (c Config) checkLayer(layer int) error {
	if layer > c.layers {
		return errors.WithMessagef(ErrLayerOutOfRange, "Layer %d on a board of %d layers", layer, c.layers)
	}
	if layer <= 0 {
		return errors.WithMessagef(ErrInvalidLayer, "Layer %d", layer)
	}
	return nil
}

// Format implements fmt.Formatter.
func (c Config) Format(s fmt.State, r rune) { fmt.Fprintf(s, "Pyramid(%d layers)", c.layers) }
