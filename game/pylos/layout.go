// Package pylos implements the board of pyramid stacking games such as Pylos.
//
// The board is a stack of square layers, each one unit smaller than the one below it.
// Every intersection of every layer is given a dense offset so that a whole board fits in
// a single 64 bit register: a PositionSet.
//
// Internally layers are numbered from 0, where layer k is a (k+1)×(k+1) grid, and the
// offsets of layer k follow those of every smaller layer. The outward facing coordinates
// (see Position) are 1-based and count the other way: game layer 1 is the base.
package pylos

import "github.com/gorgonia/pyramid/game"

// Capacity is the number of intersections a PositionSet can address.
const Capacity = 64

// MaxLayers is the largest layer count whose intersections fit in Capacity (1+4+9+16+25).
const MaxLayers = 5

// LayerSize returns the side length of the 0-based layer.
func LayerSize(layer int) int { return layer + 1 }

// TotalPositions is the number of intersections in a pyramid of n layers: the sum of squares 1²+...+n².
func TotalPositions(n int) int { return n * (n + 1) * (2*n + 1) / 6 }

// LayerOffset returns the offset of the first intersection of the 0-based layer.
func LayerOffset(layer int) int { return TotalPositions(layer) }

// LayerMask returns the set holding every intersection of the 0-based layer.
func LayerMask(layer int) PositionSet {
	start := LayerOffset(layer)
	finish := LayerOffset(layer + 1)
	if finish > Capacity {
		panic("layer does not fit in a PositionSet")
	}
	if finish-start == Capacity {
		return ^PositionSet(0)
	}
	return PositionSet((uint64(1)<<uint(finish-start))-1) << uint(start)
}

// Offset maps 0-based (layer, x, y) to the flat offset. Rows are y, so y is the slower varying index.
//
// An offset outside the register is a bug in the caller's range checks, so Offset panics on it.
func Offset(layer, x, y int) game.Single {
	offset := LayerOffset(layer) + y*LayerSize(layer) + x
	if offset < 0 || offset >= Capacity {
		panic("offset does not fit in a PositionSet")
	}
	return game.Single(offset)
}

// Coords is the inverse of Offset.
func Coords(offset game.Single) (layer, x, y int) {
	if offset < 0 || offset >= Capacity {
		panic("offset does not fit in a PositionSet")
	}
	o := int(offset)
	for LayerOffset(layer+1) <= o {
		layer++
	}
	remainder := o - LayerOffset(layer)
	size := LayerSize(layer)
	return layer, remainder % size, remainder / size
}
