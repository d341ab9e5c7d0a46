package randomizer

import (
	"math/rand"

	"github.com/ndyer/tetros/pkg/field"
)

// tgmGenerator reproduces the TGM1/TGM2 "history of 4" piece selection: the
// first piece is rerolled away from {S, Z, O} up to firstPieceRerolls
// times, and every subsequent piece is rerolled until it is absent from the
// last 4 draws. The reroll-until-absent loop has no natural bound in the
// source description; it is capped defensively at maxSubsequentRerolls so a
// pathological RNG can never spin forever, as the specification explicitly
// permits.
type tgmGenerator struct {
	history              [4]field.Id
	first                bool
	firstPieceRerolls    int
	maxSubsequentRerolls int
}

const maxSubsequentRerolls = 6

func newTGMGenerator(firstPieceRerolls int, historyFill field.Id) *tgmGenerator {
	g := &tgmGenerator{first: true, firstPieceRerolls: firstPieceRerolls, maxSubsequentRerolls: maxSubsequentRerolls}
	for i := range g.history {
		g.history[i] = historyFill
	}
	return g
}

// newTGM2Generator is TGM1 with its own history seed and first-piece reroll
// bound; the S/Z/O avoidance and the reroll-until-absent rule are unchanged.
func newTGM2Generator() *tgmGenerator {
	g := &tgmGenerator{first: true, firstPieceRerolls: 6, maxSubsequentRerolls: maxSubsequentRerolls}
	g.history = [4]field.Id{field.S, field.Z, field.S, field.Z}
	return g
}

func (g *tgmGenerator) generate(rnd *rand.Rand) field.Id {
	ids := field.Ids()
	draw := func() field.Id { return ids[rnd.Intn(len(ids))] }

	var id field.Id
	if g.first {
		id = draw()
		for i := 0; i < g.firstPieceRerolls && isSZO(id); i++ {
			id = draw()
		}
		g.first = false
	} else {
		id = draw()
		for i := 0; i < g.maxSubsequentRerolls && inHistory(g.history, id); i++ {
			id = draw()
		}
	}

	copy(g.history[1:], g.history[:3])
	g.history[0] = id
	return id
}

func isSZO(id field.Id) bool {
	return id == field.S || id == field.Z || id == field.O
}

func inHistory(history [4]field.Id, id field.Id) bool {
	for _, h := range history {
		if h == id {
			return true
		}
	}
	return false
}
