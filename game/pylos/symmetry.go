package pylos

// Rotate turns every layer of the board a quarter turn clockwise about the pyramid's axis.
func Rotate(cfg Config, s PositionSet) PositionSet {
	return transform(cfg, s, func(x, y, n int) (int, int) { return n - 1 - y, x })
}

// Reflect mirrors every layer of the board left to right.
func Reflect(cfg Config, s PositionSet) PositionSet {
	return transform(cfg, s, func(x, y, n int) (int, int) { return n - 1 - x, y })
}

// Symmetries returns the eight images of s under the symmetries of the square.
// The first is s itself.
func Symmetries(cfg Config, s PositionSet) (retVal [8]PositionSet) {
	r := s & cfg.Full()
	for i := 0; i < 4; i++ {
		retVal[i] = r
		retVal[i+4] = Reflect(cfg, r)
		r = Rotate(cfg, r)
	}
	return retVal
}

// Canonical returns the smallest image of s among its Symmetries. Boards equal up to symmetry have the
// same canonical form.
func Canonical(cfg Config, s PositionSet) PositionSet {
	syms := Symmetries(cfg, s)
	best := syms[0]
	for _, sym := range syms[1:] {
		if sym < best {
			best = sym
		}
	}
	return best
}

// transform moves each member within its own layer. f works on 0-based coordinates of an n×n layer.
func transform(cfg Config, s PositionSet, f func(x, y, n int) (int, int)) PositionSet {
	var retVal PositionSet
	for _, o := range (s & cfg.Full()).Offsets() {
		k, x, y := Coords(o)
		x, y = f(x, y, LayerSize(k))
		retVal |= PositionSet(1) << uint(Offset(k, x, y))
	}
	return retVal
}
