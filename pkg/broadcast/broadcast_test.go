package broadcast_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndyer/tetros/pkg/broadcast"
	"github.com/ndyer/tetros/pkg/controller"
	"github.com/ndyer/tetros/pkg/engine"
)

func TestSnapReflectsEngineState(t *testing.T) {
	opts := engine.DefaultOptions()
	opts.Seed = 1
	e := engine.New(context.Background(), opts)

	snap := broadcast.Snap(e)

	require.Len(t, snap.Field, e.Field().Height)
	for _, row := range snap.Field {
		assert.Len(t, row, e.Field().Width)
	}

	require.NotNil(t, snap.Block)
	assert.Equal(t, e.Block().Id.String(), snap.Block.Id)
	assert.Equal(t, e.Block().X, snap.Block.X)
	assert.Equal(t, e.Block().Y, snap.Block.Y)

	require.NotNil(t, snap.Ghost)
	assert.Empty(t, snap.Hold)
	assert.Len(t, snap.Preview, 7)
	assert.Equal(t, e.TickCount(), snap.Tick)
	assert.Equal(t, "move", snap.Status)
}

func TestSnapReportsHoldOnceSet(t *testing.T) {
	opts := engine.DefaultOptions()
	opts.Seed = 1
	e := engine.New(context.Background(), opts)

	e.Controller().Activate(controller.Hold)
	e.Update()

	held, ok := e.Hold()
	require.True(t, ok)

	snap := broadcast.Snap(e)
	assert.Equal(t, held.String(), snap.Hold)
}

func TestNewServerStartsWithNoClients(t *testing.T) {
	s := broadcast.New()
	assert.NotNil(t, s)
}
