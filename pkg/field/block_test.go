package field_test

import (
	"testing"

	"github.com/ndyer/tetros/pkg/field"
	"github.com/stretchr/testify/assert"
)

// testRS is a tiny stand-in RotationSystem covering just enough of S and Z
// to exercise Block in isolation from pkg/rotation's real tables.
type testRS struct{}

func (testRS) Name() string { return "test" }

func (testRS) Data(id field.Id, r field.Rotation) [4][2]int {
	switch id {
	case field.Z:
		return [4][2]int{{0, 0}, {1, 0}, {1, 1}, {2, 1}}
	case field.S:
		switch r {
		case field.R0:
			return [4][2]int{{0, 1}, {1, 0}, {1, 1}, {2, 0}}
		case field.R90:
			return [4][2]int{{1, 0}, {1, 1}, {2, 1}, {2, 2}}
		case field.R180:
			return [4][2]int{{0, 2}, {1, 1}, {1, 2}, {2, 1}}
		case field.R270:
			return [4][2]int{{0, 0}, {0, 1}, {1, 1}, {1, 2}}
		}
	}
	return [4][2]int{{0, 0}, {0, 0}, {0, 0}, {0, 0}}
}

func TestBlock_Shift(t *testing.T) {
	f := field.New()
	blk := field.New(field.Z, f, testRS{})

	x := blk.X
	blk.Shift(f, field.Left)
	assert.Equal(t, x-1, blk.X)

	blk.ShiftExtend(f, field.Left)
	assert.Equal(t, 0, blk.X)
}

func TestBlock_Rotate(t *testing.T) {
	f := field.New()
	blk := field.New(field.S, f, testRS{})

	blk.Shift(f, field.Down)
	blk.Shift(f, field.Down)

	blk.Rotate(f, field.R90)
	assert.Equal(t, field.R90, blk.R)

	blk.Rotate(f, field.R90)
	assert.Equal(t, field.R180, blk.R)

	blk.Rotate(f, field.R270)
	assert.Equal(t, field.R90, blk.R)
}

func TestBlock_CollidesAtOffset(t *testing.T) {
	f := field.New()
	blk := field.New(field.Z, f, testRS{})

	assert.False(t, blk.Collides(f))
	assert.True(t, blk.CollidesAtOffset(f, -100, 0))
	assert.True(t, blk.CollidesAtOffset(f, 0, f.Height))
}

func TestBlock_Occupies(t *testing.T) {
	f := field.New()
	blk := field.New(field.Z, f, testRS{})

	x, y := blk.X, blk.Y
	assert.True(t, blk.Occupies(x, y))
	assert.True(t, blk.Occupies(x+1, y))
	assert.True(t, blk.Occupies(x+1, y+1))
	assert.True(t, blk.Occupies(x+2, y+1))
	assert.False(t, blk.Occupies(x+2, y))
}

func TestBlock_Ghost(t *testing.T) {
	f := field.New()
	blk := field.New(field.Z, f, testRS{})

	ghost := blk.Ghost(f)
	assert.False(t, ghost.Collides(f))
	assert.True(t, ghost.CollidesAtOffset(f, 0, 1))
	assert.Equal(t, blk.X, ghost.X)
}

type fixedWallkick struct {
	offsets [][2]int
}

func (w fixedWallkick) Name() string { return "fixed" }

func (w fixedWallkick) Test(b *field.Block, f *field.Field, to field.Rotation) [][2]int {
	return w.offsets
}

func TestBlock_RotateWithWallkick(t *testing.T) {
	f := field.New()
	blk := field.New(field.S, f, testRS{})

	blk.Shift(f, field.Down)

	wk := fixedWallkick{offsets: [][2]int{{0, 0}}}
	ok := blk.RotateWithWallkick(f, wk, field.R90)
	assert.True(t, ok)
	assert.Equal(t, field.R90, blk.R)
}
