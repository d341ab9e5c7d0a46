package wallkick_test

import (
	"testing"

	"github.com/ndyer/tetros/pkg/field"
	"github.com/ndyer/tetros/pkg/rotation"
	"github.com/ndyer/tetros/pkg/wallkick"
	"github.com/stretchr/testify/assert"
)

func TestWallkick_New(t *testing.T) {
	for _, name := range []string{"empty", "simple", "dtet", "srs", "tgm", "tgm3"} {
		wk := wallkick.New(name)
		assert.Equal(t, name, wk.Name())
	}
}

func TestWallkick_NewUnknownPanics(t *testing.T) {
	assert.Panics(t, func() { wallkick.New("nonexistent") })
}

func TestWallkick_Empty(t *testing.T) {
	f := field.New()
	b := field.New(field.T, f, rotation.SRS())
	wk := wallkick.Empty{}

	assert.Equal(t, [][2]int{{0, 0}}, wk.Test(b, f, field.R90))
}

func TestWallkick_Simple(t *testing.T) {
	f := field.New()
	b := field.New(field.T, f, rotation.SRS())
	wk := wallkick.Simple{}

	assert.Equal(t, [][2]int{{0, 0}, {1, 0}, {-1, 0}}, wk.Test(b, f, field.R90))
}

func TestWallkick_SRSOmitsOffsetsForO(t *testing.T) {
	f := field.New()
	b := field.New(field.O, f, rotation.SRS())
	wk := wallkick.SRS{}

	assert.Equal(t, [][2]int{{0, 0}}, wk.Test(b, f, field.R90))
}

func TestWallkick_SRSUsesWiderTableForI(t *testing.T) {
	f := field.New()
	b := field.New(field.I, f, rotation.SRS())
	wk := wallkick.SRS{}

	offsets := wk.Test(b, f, field.R90)
	assert.Len(t, offsets, 5)
	assert.Equal(t, [2]int{0, 0}, offsets[0])
}

func TestWallkick_TGMNeverKicksI(t *testing.T) {
	f := field.New()
	b := field.New(field.I, f, rotation.SRS())
	wk := wallkick.TGM{}

	assert.Equal(t, [][2]int{{0, 0}}, wk.Test(b, f, field.R90))
}

func TestWallkick_TGM3IFloorkick(t *testing.T) {
	f := field.New()
	b := field.New(field.I, f, rotation.SRS())
	b.ShiftExtend(f, field.Down)

	wk := wallkick.TGM3{}
	offsets := wk.Test(b, f, field.R90)
	assert.Equal(t, [][2]int{{0, 0}, {0, -1}, {0, -2}}, offsets)
}
