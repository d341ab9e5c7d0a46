package wallkick

import "github.com/ndyer/tetros/pkg/field"

var (
	dtetRight = [][2]int{{0, 0}, {1, 0}, {-1, 0}, {1, 0}, {1, 1}, {-1, 1}}
	dtetLeft  = [][2]int{{0, 0}, {-1, 0}, {1, 0}, {1, 0}, {-1, 1}, {1, 1}}
)

// DTET is the symmetric wallkick first appearing in the DTET tetris game.
type DTET struct{}

func (DTET) Name() string { return "dtet" }

func (DTET) Test(b *field.Block, f *field.Field, to field.Rotation) [][2]int {
	switch to {
	case field.R90:
		return dtetRight
	case field.R270:
		return dtetLeft
	default:
		return none
	}
}
