package pylos

import (
	"fmt"

	"github.com/awalterschulze/gographviz"
	"github.com/gorgonia/pyramid/game"
)

// ToDot returns the support graph of the board in Graphviz DOT: one node per intersection and an edge
// from every intersection to each intersection resting on it.
func (b *Board) ToDot() string {
	g := gographviz.NewGraph()
	if err := g.SetName("G"); err != nil {
		panic(err)
	}
	if err := g.SetDir(true); err != nil {
		panic(err)
	}
	if err := g.AddAttr("G", "rankdir", "BT"); err != nil {
		panic(err)
	}

	full := b.cfg.Full()
	for _, p := range full.Positions(b.cfg) {
		attrs := map[string]string{
			"shape": "circle",
			"label": fmt.Sprintf("%q", fmt.Sprintf("%v %s", p, b.At(p))),
		}
		switch b.At(p) {
		case game.Black:
			attrs["style"] = "filled"
			attrs["fillcolor"] = "grey40"
		case game.White:
			attrs["style"] = "filled"
			attrs["fillcolor"] = "white"
		}
		if err := g.AddNode("G", nodeName(p), attrs); err != nil {
			panic(err)
		}
	}
	for _, p := range full.Positions(b.cfg) {
		for _, a := range p.Above() {
			if err := g.AddEdge(nodeName(p), nodeName(a), true, nil); err != nil {
				panic(err)
			}
		}
	}
	return g.String()
}

func nodeName(p Position) string { return fmt.Sprintf("n%d", p.offset) }
