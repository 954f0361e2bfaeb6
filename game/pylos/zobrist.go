package pylos

import (
	"math/rand"

	"github.com/gorgonia/pyramid/game"
)

// zobristKeys holds one random key per (offset, colour). The table is filled once with a fixed seed so
// that hashes are comparable across boards and runs.
// https://en.wikipedia.org/wiki/Zobrist_hashing
var zobristKeys [Capacity][2]uint32

func init() {
	r := rand.New(rand.NewSource(1337))
	for i := range zobristKeys {
		for j := range zobristKeys[i] {
			for zobristKeys[i][j] == 0 {
				zobristKeys[i][j] = r.Uint32()
			}
		}
	}
}

func zobristKey(o game.Single, player game.Player) uint32 {
	return zobristKeys[o][game.Colour(player)-game.Black]
}

// hashOf computes the hash of a board from scratch.
func hashOf(black, white PositionSet) game.Zobrist {
	var h uint32
	for _, o := range black.Offsets() {
		h ^= zobristKey(o, game.Player(game.Black))
	}
	for _, o := range white.Offsets() {
		h ^= zobristKey(o, game.Player(game.White))
	}
	return game.Zobrist(h)
}
