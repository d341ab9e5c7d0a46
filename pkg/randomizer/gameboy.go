package randomizer

import (
	"math/rand"

	"github.com/ndyer/tetros/pkg/field"
)

// gameboyGenerator reproduces the Game Boy Tetris piece selection: an
// index that advances by a random step in [1, 8] each draw, biased away
// from repeats by the handheld's original 8-bit RNG shape.
type gameboyGenerator struct {
	prev int
}

func (g *gameboyGenerator) generate(rnd *rand.Rand) field.Id {
	// rand(0, 6*7-3) inclusive is 40 equally likely values, 0..39.
	step := rnd.Intn(40)/5 + 1
	g.prev = (g.prev + step) % 7
	return field.Ids()[g.prev]
}
