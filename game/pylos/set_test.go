package pylos

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/gorgonia/pyramid/game"
	"github.com/stretchr/testify/assert"
)

func TestPositionSetMembership(t *testing.T) {
	cfg := mustConfig(t, 4)
	p := mustPosition(t, cfg, 1, 3, 2)
	q := mustPosition(t, cfg, 4, 1, 1)

	s := NewPositionSet()
	assert.True(t, s.IsEmpty())
	assert.False(t, s.Contains(p))

	s.Insert(p)
	assert.True(t, s.Contains(p))
	assert.False(t, s.Contains(q))

	s.Insert(p)
	assert.Equal(t, 1, s.Len(), "Insert should be idempotent")

	s.Insert(q)
	s.Remove(p)
	assert.False(t, s.Contains(p))
	assert.True(t, s.Contains(q))

	s.Remove(p)
	assert.Equal(t, SetOf(q), s, "Remove should be idempotent")
}

func TestPositionSetAlgebra(t *testing.T) {
	cfg := mustConfig(t, 4)
	a := SetOf(mustPosition(t, cfg, 1, 1, 1), mustPosition(t, cfg, 1, 2, 1), mustPosition(t, cfg, 2, 1, 1))
	b := SetOf(mustPosition(t, cfg, 1, 2, 1), mustPosition(t, cfg, 3, 2, 2))
	origA, origB := a, b

	assert.Equal(t, 4, a.Union(b).Len())
	assert.Equal(t, SetOf(mustPosition(t, cfg, 1, 2, 1)), a.Intersection(b))
	assert.Equal(t, SetOf(mustPosition(t, cfg, 1, 1, 1), mustPosition(t, cfg, 2, 1, 1)), a.Difference(b))

	// operands are untouched
	assert.Equal(t, origA, a)
	assert.Equal(t, origB, b)
}

func TestPositionSetIdentities(t *testing.T) {
	cfg := mustConfig(t, MaxLayers)
	r := rand.New(rand.NewSource(1337))
	full := cfg.Full()
	all := full.Positions(cfg)

	for i := 0; i < 200; i++ {
		a := PositionSet(r.Uint64()) & full
		b := PositionSet(r.Uint64()) & full

		if !a.Difference(b).Intersection(b).IsEmpty() {
			t.Errorf("(A - B) ∩ B should be empty. A %b, B %b", a, b)
		}
		if !a.Union(b).Eq(b.Union(a)) || !a.Intersection(b).Eq(b.Intersection(a)) {
			t.Errorf("Union and intersection should commute. A %b, B %b", a, b)
		}
		if got := a.Difference(b).Union(a.Intersection(b)); got != a {
			t.Errorf("(A - B) ∪ (A ∩ B) should be A. A %b, B %b", a, b)
		}
		for _, p := range all {
			if a.Union(b).Contains(p) != (a.Contains(p) || b.Contains(p)) {
				t.Errorf("Union membership of %v. A %b, B %b", p, a, b)
			}
			if a.Intersection(b).Contains(p) != (a.Contains(p) && b.Contains(p)) {
				t.Errorf("Intersection membership of %v. A %b, B %b", p, a, b)
			}
			if a.Difference(b).Contains(p) != (a.Contains(p) && !b.Contains(p)) {
				t.Errorf("Difference membership of %v. A %b, B %b", p, a, b)
			}
		}
	}
}

func TestPositionSetIteration(t *testing.T) {
	cfg := mustConfig(t, 3)
	ps := []Position{
		mustPosition(t, cfg, 3, 1, 1),
		mustPosition(t, cfg, 2, 2, 1),
		mustPosition(t, cfg, 1, 3, 3),
	}
	s := SetOf(ps[2], ps[0], ps[1])
	assert.Equal(t, []game.Single{0, 2, 13}, s.Offsets())
	assert.Equal(t, ps, s.Positions(cfg))
	assert.Equal(t, "[0 2 13]", fmt.Sprintf("%v", s))
	assert.Equal(t, 64, len(fmt.Sprintf("%b", s)))

	// members past the board are dropped
	s |= PositionSet(1) << 40
	assert.Len(t, s.Positions(cfg), 3)
}
