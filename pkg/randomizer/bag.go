package randomizer

import (
	"math/rand"

	"github.com/ndyer/tetros/pkg/field"
)

// bagGenerator draws without replacement from a shuffled permutation of the
// seven ids, reshuffling whenever the permutation is exhausted.
type bagGenerator struct {
	perm  []field.Id
	index int
}

func newBagGenerator(rnd *rand.Rand) *bagGenerator {
	g := &bagGenerator{perm: append([]field.Id(nil), field.Ids()...)}
	shuffle(rnd, g.perm)
	return g
}

func (g *bagGenerator) generate(rnd *rand.Rand) field.Id {
	if g.index == len(g.perm) {
		shuffle(rnd, g.perm)
		g.index = 0
	}
	id := g.perm[g.index]
	g.index++
	return id
}

func shuffle(rnd *rand.Rand, ids []field.Id) {
	rnd.Shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})
}
