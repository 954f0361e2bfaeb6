package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gorgonia/pyramid"
	"github.com/gorgonia/pyramid/game"
	"github.com/gorgonia/pyramid/game/pylos"
)

var (
	layers = flag.Int("layers", 4, "number of layers of the pyramid")
	black  = flag.String("black", "1:A1,1:B2", "comma separated positions of black pieces, e.g. 1:A1,2:B2")
	white  = flag.String("white", "1:D4", "comma separated positions of white pieces")
	dot    = flag.Bool("dot", false, "print the support graph in DOT instead of the board")
)

func place(b *pylos.Board, s string, p game.Player) {
	ps, err := pylos.ParsePositions(b.Config(), s)
	if err != nil {
		log.Fatalf("Unable to parse %v positions: %v", p, err)
	}
	for _, pos := range ps {
		if err := b.Place(pos, p); err != nil {
			log.Fatal(err)
		}
	}
}

func main() {
	flag.Parse()

	cfg, err := pylos.NewConfig(*layers)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("%v: %d intersections", cfg, cfg.Positions())

	b := pylos.NewBoard(cfg)
	place(b, *black, game.Player(game.Black))
	place(b, *white, game.Player(game.White))

	if *dot {
		fmt.Fprint(os.Stdout, b.ToDot())
		return
	}

	fmt.Printf("%s\n", b)
	fmt.Printf("Black %v\nWhite %v\nVacant %d\n", b.Pieces(game.Player(game.Black)).Positions(cfg), b.Pieces(game.Player(game.White)).Positions(cfg), b.Vacant().Len())
	fmt.Printf("Hash %#x\nCanonical %#x\n", b.Hash(), uint64(pylos.Canonical(cfg, b.Occupied())))
	fmt.Printf("Encoded %v\n", pyramid.EncodeTwoPlayerBoard(b, nil))
}
