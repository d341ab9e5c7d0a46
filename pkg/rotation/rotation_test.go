package rotation_test

import (
	"testing"

	"github.com/ndyer/tetros/pkg/field"
	"github.com/ndyer/tetros/pkg/rotation"
	"github.com/stretchr/testify/assert"
)

func TestRotation_New(t *testing.T) {
	for _, name := range []string{"srs", "ars", "dtet", "tengen"} {
		rs := rotation.New(name)
		assert.Equal(t, name, rs.Name())
	}
}

func TestRotation_NewUnknownPanics(t *testing.T) {
	assert.Panics(t, func() { rotation.New("nonexistent") })
}

func TestRotation_MinMaxMinp(t *testing.T) {
	rs := rotation.SRS()

	x1, y1 := rotation.Min(rs, field.L, field.R90)
	assert.Equal(t, 1, x1)
	assert.Equal(t, 0, y1)

	x2, y2 := rotation.Max(rs, field.L, field.R90)
	assert.Equal(t, 2, x2)
	assert.Equal(t, 2, y2)

	x3, y3 := rotation.Min(rs, field.I, field.R180)
	assert.Equal(t, 0, x3)
	assert.Equal(t, 2, y3)

	x4, y4 := rotation.Max(rs, field.I, field.R180)
	assert.Equal(t, 3, x4)
	assert.Equal(t, 2, y4)
}

func TestRotation_Minp(t *testing.T) {
	rs := rotation.SRS()

	tests := []struct {
		id   field.Id
		r    field.Rotation
		x, y int
	}{
		{field.T, field.R0, 1, 0},
		{field.T, field.R90, 1, 0},
		{field.T, field.R180, 0, 1},
		{field.T, field.R270, 1, 0},
		{field.I, field.R90, 2, 0},
		{field.Z, field.R0, 0, 0},
	}

	for _, tt := range tests {
		x, y := rotation.Minp(rs, tt.id, tt.r)
		assert.Equal(t, tt.x, x)
		assert.Equal(t, tt.y, y)
	}
}

func TestRotation_ARSDiffersFromSRSForI(t *testing.T) {
	srs := rotation.SRS()
	ars := rotation.ARS()

	assert.NotEqual(t, srs.Data(field.I, field.R0), ars.Data(field.I, field.R0))
	assert.Equal(t, srs.Data(field.T, field.R0), ars.Data(field.T, field.R0))
}
