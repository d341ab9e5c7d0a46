// Package history records the input edges the engine has observed, one
// entry per press or release of an action, for replay or analysis. It never
// drives gameplay itself: the engine owns its controller, History only
// diffs it.
package history

import "github.com/ndyer/tetros/pkg/controller"

// Event is a single press or release of an action, timestamped by tick.
type Event struct {
	Press  bool
	Tick   uint64
	Action controller.Action
}

// History is an append-only log of controller edge transitions, derived by
// diffing the controller's active state against the snapshot taken on the
// previous call to Update.
type History struct {
	events   []Event
	snapshot [8]bool
	tick     uint64
}

// New returns an empty History starting at tick 0.
func New() *History {
	return &History{}
}

// Update compares c's current active state against the snapshot recorded by
// the previous call, appends an Event for every action that changed, and
// advances the tick counter. Called once per engine tick.
func (h *History) Update(c *controller.Controller) {
	for _, a := range controller.Actions() {
		curr := c.Active(a)
		prev := h.snapshot[a.Index()]
		switch {
		case prev && !curr:
			h.events = append(h.events, Event{Press: false, Tick: h.tick, Action: a})
		case !prev && curr:
			h.events = append(h.events, Event{Press: true, Tick: h.tick, Action: a})
		}
		h.snapshot[a.Index()] = curr
	}
	h.tick++
}

// Events returns the recorded event sequence, in chronological order.
func (h *History) Events() []Event {
	return h.events
}
