package pylos

import (
	"fmt"
	"math/bits"

	"github.com/gorgonia/pyramid/game"
)

// PositionSet is a set of positions of one board, one bit per offset.
//
// Sets do not record their Config. Combining sets built for different configs is meaningless and is not checked.
type PositionSet uint64

// NewPositionSet returns an empty set.
func NewPositionSet() PositionSet { return 0 }

// SetOf returns the set holding the given positions.
func SetOf(ps ...Position) PositionSet {
	var s PositionSet
	for _, p := range ps {
		s.Insert(p)
	}
	return s
}

func bit(p Position) PositionSet { return PositionSet(1) << uint(p.offset) }

// Contains returns true if p is a member.
func (s PositionSet) Contains(p Position) bool { return s&bit(p) != 0 }

// Insert adds p. Inserting a member is a no-op.
func (s *PositionSet) Insert(p Position) { *s |= bit(p) }

// Remove removes p. Removing a non-member is a no-op.
func (s *PositionSet) Remove(p Position) { *s &^= bit(p) }

// Union returns the positions in either set.
func (s PositionSet) Union(other PositionSet) PositionSet { return s | other }

// Intersection returns the positions in both sets.
func (s PositionSet) Intersection(other PositionSet) PositionSet { return s & other }

// Difference returns the positions of s that are not in other.
func (s PositionSet) Difference(other PositionSet) PositionSet { return s &^ other }

// Eq returns true if both sets have the same members.
func (s PositionSet) Eq(other PositionSet) bool { return s == other }

// IsEmpty returns true if the set has no members.
func (s PositionSet) IsEmpty() bool { return s == 0 }

// Len returns the number of members.
func (s PositionSet) Len() int { return bits.OnesCount64(uint64(s)) }

// Offsets returns the offsets of the members in increasing order.
func (s PositionSet) Offsets() []game.Single {
	retVal := make([]game.Single, 0, s.Len())
	for b := uint64(s); b != 0; b &= b - 1 {
		retVal = append(retVal, game.Single(bits.TrailingZeros64(b)))
	}
	return retVal
}

// Positions returns the members as positions of cfg, in offset order.
// Members beyond the board of cfg are dropped.
func (s PositionSet) Positions(cfg Config) []Position {
	s &= cfg.Full()
	retVal := make([]Position, 0, s.Len())
	for _, o := range s.Offsets() {
		retVal = append(retVal, Position{cfg: cfg, offset: o})
	}
	return retVal
}

// Format prints the members' offsets. Use Positions for coordinates.
func (s PositionSet) Format(f fmt.State, c rune) {
	switch c {
	case 'b':
		fmt.Fprintf(f, "%064b", uint64(s))
	default:
		fmt.Fprintf(f, "%v", s.Offsets())
	}
}

// Supports returns the set of positions that a piece on p rests on.
func Supports(p Position) PositionSet { return SetOf(p.Supports()...) }

// Above returns the set of positions that rest on p.
func Above(p Position) PositionSet { return SetOf(p.Above()...) }
