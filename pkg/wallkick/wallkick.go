// Package wallkick provides the named wallkick tests: pure functions from a
// block's rotation attempt to an ordered list of offsets worth retrying.
package wallkick

import (
	"fmt"

	"github.com/ndyer/tetros/pkg/field"
)

var none = [][2]int{{0, 0}}

// New is the named factory: it resolves one of "empty", "simple", "dtet",
// "srs", "tgm", "tgm3" to its field.Wallkick, or fails loudly on an unknown
// name — a programmer error, not a runtime condition.
func New(name string) field.Wallkick {
	switch name {
	case "empty":
		return Empty{}
	case "simple":
		return Simple{}
	case "dtet":
		return DTET{}
	case "srs":
		return SRS{}
	case "tgm":
		return TGM{}
	case "tgm3":
		return TGM3{}
	default:
		panic(fmt.Sprintf("wallkick: unknown name %q", name))
	}
}

// Empty only ever tries the trivial (0, 0) offset: rotation fails in place
// or not at all.
type Empty struct{}

func (Empty) Name() string { return "empty" }

func (Empty) Test(b *field.Block, f *field.Field, to field.Rotation) [][2]int {
	return none
}

// Simple tries no offset, then one step left, then one step right.
type Simple struct{}

func (Simple) Name() string { return "simple" }

func (Simple) Test(b *field.Block, f *field.Field, to field.Rotation) [][2]int {
	return [][2]int{{0, 0}, {1, 0}, {-1, 0}}
}
