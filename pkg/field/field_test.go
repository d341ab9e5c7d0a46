package field_test

import (
	"testing"

	"github.com/ndyer/tetros/pkg/field"
	"github.com/stretchr/testify/assert"
)

func TestField_GetOccupies(t *testing.T) {
	f := field.New()

	assert.Equal(t, field.None, f.Get(0, 0))
	assert.False(t, f.Occupies(0, 0))

	assert.False(t, f.Occupies(-1, 0))
	assert.False(t, f.Occupies(f.Width, 0))
	assert.False(t, f.Occupies(0, f.Height))
}

func TestField_GetOutOfBoundsPanics(t *testing.T) {
	f := field.New()
	assert.Panics(t, func() { f.Get(-1, 0) })
	assert.Panics(t, func() { f.Get(f.Width, 0) })
}

func TestField_ClearLines(t *testing.T) {
	f := field.NewWithOptions(field.FieldOptions{Width: 3, Height: 4, Hidden: 0, SpawnX: 1, SpawnY: 0})

	fillRow := func(y int, id field.Id) {
		for x := 0; x < f.Width; x++ {
			blk := &field.Block{Id: id, X: x, Y: y, R: field.R0, RS: constRS{}}
			f.Freeze(blk)
		}
	}

	fillRow(3, field.I)
	fillRow(2, field.T)

	assert.Equal(t, 2, f.ClearLines())
	for x := 0; x < f.Width; x++ {
		for y := 0; y < f.Height; y++ {
			assert.Equal(t, field.None, f.Get(x, y))
		}
	}
}

func TestField_ClearLinesPartialRowSurvives(t *testing.T) {
	f := field.NewWithOptions(field.FieldOptions{Width: 3, Height: 2, Hidden: 0, SpawnX: 1, SpawnY: 0})

	blk := &field.Block{Id: field.I, X: 0, Y: 1, R: field.R0, RS: constRS{}}
	f.Freeze(blk)

	assert.Equal(t, 0, f.ClearLines())
	assert.True(t, f.Occupies(0, 1))
	assert.False(t, f.Occupies(1, 1))
}

// constRS is a minimal single-cell RotationSystem used to exercise Field in
// isolation, without depending on pkg/rotation's real tables.
type constRS struct{}

func (constRS) Name() string { return "const" }

func (constRS) Data(id field.Id, r field.Rotation) [4][2]int {
	return [4][2]int{{0, 0}, {0, 0}, {0, 0}, {0, 0}}
}
