package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndyer/tetros/pkg/field"
	"github.com/ndyer/tetros/pkg/rotation"
	"github.com/ndyer/tetros/pkg/schema"
)

func TestFromStringEmptyInput(t *testing.T) {
	_, err := schema.FromString("   \n   \n")
	assert.Error(t, err)
}

func TestFromStringUnevenRows(t *testing.T) {
	_, err := schema.FromString(`
		|          |
		| # @     |
		| ##@@#    |
		|##  @#    |
		------------
	`)
	assert.Error(t, err)
}

func TestFromStringStripsFrameDecoration(t *testing.T) {
	s, err := schema.FromString(`
		|          |
		|  # @     |
		| ##@@#    |
		|##  @#    |
		------------
	`)
	require.NoError(t, err)
	require.NotNil(t, s)
}

func TestToStateMatchesBlockAndShiftRoundTrips(t *testing.T) {
	s, err := schema.FromString(`
		|          |
		|  @       |
		| @@@      |
		------------
	`)
	require.NoError(t, err)

	rs := rotation.SRS()
	f, b, err := s.ToState(rs)
	require.NoError(t, err)
	require.Equal(t, field.T, b.Id)

	b.Shift(f, field.Left)

	after := schema.FromState(f, b)
	want, err := schema.FromString(`
		|          |
		| @        |
		|@@@       |
		------------
	`)
	require.NoError(t, err)

	assert.True(t, after.Equal(want))
}

func TestToStateMissingBlockErrors(t *testing.T) {
	s, err := schema.FromString(`
		|          |
		|  #       |
		------------
	`)
	require.NoError(t, err)

	_, _, err = s.ToState(rotation.SRS())
	assert.Error(t, err)
}

func TestEqualIgnoresLeadingEmptyRows(t *testing.T) {
	a, err := schema.FromString(`
		|   |
		| @ |
		|@@@|
	`)
	require.NoError(t, err)

	b, err := schema.FromString(`
		|   |
		|   |
		| @ |
		|@@@|
	`)
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
}
