// Package randomizer provides the named piece-sequence generators: an
// infinite stream of Ids with a bounded lookahead preview buffer shared by
// every variant, which differ only in how they extend the buffer.
package randomizer

import (
	"fmt"
	"math/rand"

	"github.com/ndyer/tetros/pkg/field"
)

// Randomizer is an infinite, bounded-preview stream of piece ids.
type Randomizer interface {
	// Next returns and consumes the next id.
	Next() field.Id

	// Preview returns the first n ids without consuming them. It panics if
	// n exceeds the configured lookahead — a programmer error, matching
	// Field.Get's fail-loudly convention for misuse of the preview contract.
	Preview(n int) []field.Id
}

// generator produces one more raw id to extend the shared buffer. Each
// named variant implements only this; buffering, preview, and the
// lookahead-exceeded panic are handled once in base.
type generator interface {
	generate(rnd *rand.Rand) field.Id
}

// base implements the shared preview/next buffering contract every
// Randomizer variant shares.
type base struct {
	lookahead int
	rnd       *rand.Rand
	buffer    []field.Id
	gen       generator
}

func (b *base) fill(n int) {
	for len(b.buffer) < n {
		b.buffer = append(b.buffer, b.gen.generate(b.rnd))
	}
}

func (b *base) Next() field.Id {
	b.fill(1)
	id := b.buffer[0]
	b.buffer = b.buffer[1:]
	return id
}

func (b *base) Preview(n int) []field.Id {
	if n > b.lookahead {
		panic(fmt.Sprintf("randomizer: preview %d exceeds lookahead %d", n, b.lookahead))
	}
	b.fill(n)
	out := make([]field.Id, n)
	copy(out, b.buffer[:n])
	return out
}

// New is the named factory: it resolves one of "bag", "memoryless",
// "gameboy", "tgm1", "tgm2" to a Randomizer seeded from seed, or fails
// loudly on an unknown name.
func New(name string, lookahead int, seed int64) Randomizer {
	rnd := rand.New(rand.NewSource(seed))

	var gen generator
	switch name {
	case "bag":
		gen = newBagGenerator(rnd)
	case "memoryless":
		gen = memorylessGenerator{}
	case "gameboy":
		gen = &gameboyGenerator{prev: 0}
	case "tgm1":
		gen = newTGMGenerator(4, field.Z)
	case "tgm2":
		gen = newTGM2Generator()
	default:
		panic(fmt.Sprintf("randomizer: unknown name %q", name))
	}

	return &base{lookahead: lookahead, rnd: rnd, gen: gen}
}
