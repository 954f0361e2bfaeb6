package pylos

import (
	"fmt"

	"github.com/gorgonia/pyramid/game"
	"github.com/pkg/errors"
)

// Failures reported by this package. Returned errors carry one of these as
// their cause, so callers may test with errors.Cause(err) == ErrX or errors.Is.
var (
	ErrCapacityExceeded     = errors.New("capacity exceeded")
	ErrLayerOutOfRange      = errors.New("layer out of range")
	ErrInvalidLayer         = errors.New("invalid layer")
	ErrCoordinateOutOfRange = errors.New("coordinate out of range")
	ErrBadNotation          = errors.New("bad notation")
	ErrConfigMismatch       = errors.New("config mismatch")
	ErrOccupied             = errors.New("intersection occupied")
	ErrInvalidPlayer        = errors.New("invalid player")
)

type placement struct {
	p      Position
	player game.Player
}

func (m placement) String() string { return fmt.Sprintf("%v@%v", m.player, m.p) }
