package controller_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ndyer/tetros/pkg/controller"
)

func TestActivateAndUpdate(t *testing.T) {
	c := controller.New()

	c.Activate(controller.MoveLeft)
	assert.True(t, c.Active(controller.MoveLeft))
	assert.Equal(t, uint64(0), c.Time(controller.MoveLeft))

	c.Update()
	assert.Equal(t, uint64(1), c.Time(controller.MoveLeft))

	c.Deactivate(controller.MoveLeft)
	assert.Equal(t, uint64(1), c.Time(controller.MoveLeft))

	c.Update()
	assert.Equal(t, uint64(0), c.Time(controller.MoveLeft))
	assert.False(t, c.Active(controller.MoveLeft))
}

func TestUpdateIncrementsMultipleActions(t *testing.T) {
	c := controller.New()

	c.Activate(controller.MoveLeft)
	c.Activate(controller.MoveRight)
	c.Update()
	c.Update()
	c.Update()

	assert.Equal(t, uint64(3), c.Time(controller.MoveLeft))
	assert.Equal(t, uint64(3), c.Time(controller.MoveRight))
}

func TestDeactivateAllKeepsTimers(t *testing.T) {
	c := controller.New()

	c.Activate(controller.HardDrop)
	c.Update()
	assert.Equal(t, uint64(1), c.Time(controller.HardDrop))

	c.DeactivateAll()
	assert.False(t, c.Active(controller.HardDrop))
	assert.Equal(t, uint64(1), c.Time(controller.HardDrop))

	c.Update()
	assert.Equal(t, uint64(0), c.Time(controller.HardDrop))
}

func TestTimeZeroIffInactiveInvariant(t *testing.T) {
	c := controller.New()
	for _, a := range controller.Actions() {
		c.Activate(a)
	}
	c.Deactivate(controller.Quit)
	c.Update()

	for _, a := range controller.Actions() {
		assert.Equal(t, c.Active(a), c.Time(a) != 0, "action %v", a)
	}
}
