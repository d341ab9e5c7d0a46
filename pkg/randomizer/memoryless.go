package randomizer

import (
	"math/rand"

	"github.com/ndyer/tetros/pkg/field"
)

// memorylessGenerator draws a uniformly random id every call, independent
// of any history.
type memorylessGenerator struct{}

func (memorylessGenerator) generate(rnd *rand.Rand) field.Id {
	ids := field.Ids()
	return ids[rnd.Intn(len(ids))]
}
