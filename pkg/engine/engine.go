// Package engine composes the field, block, rotation system, wallkick,
// randomizer, controller, history, and statistics primitives into the
// tick-driven gameplay state machine: a single Update call advances the
// whole game by exactly one tick.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/seekerror/build"
	"github.com/seekerror/logw"

	"github.com/ndyer/tetros/pkg/controller"
	"github.com/ndyer/tetros/pkg/field"
	"github.com/ndyer/tetros/pkg/history"
	"github.com/ndyer/tetros/pkg/randomizer"
	"github.com/ndyer/tetros/pkg/rotation"
	"github.com/ndyer/tetros/pkg/statistics"
	"github.com/ndyer/tetros/pkg/wallkick"
)

var version = build.NewVersion(0, 1, 0)

// Engine owns every piece of mutable gameplay state and advances it one
// tick at a time. It is single-threaded and cooperative: Update is the only
// scheduling point, and nothing inside it suspends or yields.
type Engine struct {
	ctx context.Context

	f  *field.Field
	b  *field.Block
	rs field.RotationSystem
	wk field.Wallkick
	rz randomizer.Randomizer

	c *controller.Controller
	h *history.History
	s *statistics.Statistics

	holdID  field.Id
	holdSet bool

	settings Settings
	mspt     uint64

	status      Status
	statusTimer uint64
	tickCount   uint64
	running     bool
	lastTick    time.Time

	// per-piece scratch, reset on every spawn
	pieceTimer      uint64
	holdCount       int
	lockTimer       uint64
	locking         bool
	gravityCounter  float64
	softDropCounter float64
	ihsFlag         bool
	irsFlag         bool
	irsRotation     field.Rotation
	needPiece       bool
}

// Version returns the engine's name and version string.
func Version() string {
	return fmt.Sprintf("tetros %v", version)
}

// New constructs an Engine from opts and spawns its first piece, so that
// Field/Block/Randomizer accessors are immediately meaningful even before
// the first call to Update.
func New(ctx context.Context, opts Options) *Engine {
	f := field.NewWithOptions(opts.Field)
	rs := rotation.New(opts.RotationSystemName)
	wk := wallkick.New(opts.WallkickName)
	rz := randomizer.New(opts.RandomizerName, opts.RandomizerLookahead, opts.Seed)

	e := &Engine{
		ctx:       ctx,
		f:         f,
		rs:        rs,
		wk:        wk,
		rz:        rz,
		c:         controller.New(),
		h:         history.New(),
		s:         statistics.New(),
		settings:  opts.Settings.resolve(),
		mspt:      opts.Mspt,
		status:    StatusMove,
		running:   true,
		needPiece: true,
	}
	e.spawn()

	logw.Infof(ctx, "Initialized %v: field=%vx%v (hidden=%v), rs=%v, wallkick=%v, randomizer=%v/%v, mspt=%v",
		Version(), f.Width, f.Height, f.Hidden, rs.Name(), wk.Name(), opts.RandomizerName, opts.RandomizerLookahead, opts.Mspt)
	return e
}

// Field returns the playfield. Callers must not mutate it directly; the
// engine is the sole writer.
func (e *Engine) Field() *field.Field {
	return e.f
}

// Block returns the active piece.
func (e *Engine) Block() *field.Block {
	return e.b
}

// Ghost returns the active piece projected to its hard-drop landing spot.
func (e *Engine) Ghost() *field.Block {
	return e.b.Ghost(e.f)
}

// Hold returns the held piece id and whether a hold is currently stored.
func (e *Engine) Hold() (field.Id, bool) {
	return e.holdID, e.holdSet
}

// Preview returns the next n upcoming piece ids without consuming them.
func (e *Engine) Preview(n int) []field.Id {
	return e.rz.Preview(n)
}

// Controller returns the engine's controller, for the front-end to
// Activate/Deactivate inputs against before each Update call.
func (e *Engine) Controller() *controller.Controller {
	return e.c
}

// Statistics returns the running line/piece counters.
func (e *Engine) Statistics() *statistics.Statistics {
	return e.s
}

// History returns the recorded controller edge log.
func (e *Engine) History() *history.History {
	return e.h
}

// TickCount returns the number of completed Update calls.
func (e *Engine) TickCount() uint64 {
	return e.tickCount
}

// Running reports whether the engine is still accepting ticks: false once
// Quit has been pressed or GameOver has been reached.
func (e *Engine) Running() bool {
	return e.running
}

// Mspt returns the configured tick duration in milliseconds.
func (e *Engine) Mspt() uint64 {
	return e.mspt
}

// Status returns the engine's current phase.
func (e *Engine) Status() Status {
	return e.status
}

// ticks converts a millisecond duration to a tick count under the engine's
// configured Mspt.
func (e *Engine) ticks(ms uint64) uint64 {
	if e.mspt == 0 {
		return 0
	}
	return ms / e.mspt
}

// Update advances the engine by exactly one tick: it updates the
// controller's held-action timers, spawns a piece if one is due, dispatches
// on the current status, and tracks the status timer and tick count. Every
// collision or move failure inside this call is absorbed silently (boolean,
// never an error); only construction-time misconfiguration can fail.
func (e *Engine) Update() {
	e.checkDrift()
	e.c.Update()

	lastStatus := e.status

	if e.needPiece {
		e.spawn()
	}

	switch e.status {
	case StatusMove:
		e.statMove()
	case StatusAre:
		e.statAre()
	case StatusGameOver:
		e.statGameOver()
	}

	if e.status != lastStatus {
		e.statusTimer = 0
	} else {
		e.statusTimer++
	}
	e.tickCount++
}

// checkDrift compares the wall-clock time since the previous Update call
// against the configured Mspt and logs a warning if it drifts more than
// ±5%. Gameplay timing itself is never adjusted in response.
func (e *Engine) checkDrift() {
	now := time.Now()
	defer func() { e.lastTick = now }()

	if e.lastTick.IsZero() || e.mspt == 0 {
		return
	}
	elapsed := now.Sub(e.lastTick)
	expected := time.Duration(e.mspt) * time.Millisecond

	drift := float64(elapsed-expected) / float64(expected)
	if drift > 0.05 || drift < -0.05 {
		logw.Warningf(e.ctx, "tick %v drifted %.1f%% from mspt=%v (elapsed=%v)", e.tickCount, drift*100, expected, elapsed)
	}
}

// spawn draws the next piece from the randomizer, resets per-piece scratch
// state, consumes any pending IHS/IRS request left over from Are, and
// checks for the spawn-overlap game-over condition.
func (e *Engine) spawn() {
	id := e.rz.Next()
	e.b = field.New(id, e.f, e.rs)

	e.pieceTimer = 0
	e.holdCount = 0
	e.lockTimer = 0
	e.locking = false
	e.gravityCounter = 0
	e.softDropCounter = 0
	e.needPiece = false

	if e.ihsFlag {
		e.performHold()
		e.ihsFlag = false
	}
	if e.irsFlag {
		e.b.RotateWithWallkick(e.f, e.wk, e.irsRotation)
		e.irsFlag = false
		e.irsRotation = field.R0
	}

	if e.b.Collides(e.f) {
		e.status = StatusGameOver
		e.running = false
		logw.Warningf(e.ctx, "game over: %v overlaps at spawn (%d, %d)", e.b.Id, e.b.X, e.b.Y)
	}
}

// statMove runs the full per-tick gameplay sequence of spec §4.7.2: hard
// drop preempts hold/rotate/move/lock-check, then line clearing, history,
// and quit are always applied.
func (e *Engine) statMove() {
	hardDropped := false
	if e.settings.HasHardDrop && e.c.Time(controller.HardDrop) == 1 {
		e.hardDrop()
		hardDropped = true
	}

	if !hardDropped {
		e.tryHold()
		e.tryRotate()

		if e.settings.GravityBeforeMove {
			e.applyGravity()
			e.applyHorizontalMove()
		} else {
			e.applyHorizontalMove()
			e.applyGravity()
		}

		e.checkLockDelay()
	}

	if cleared := e.f.ClearLines(); cleared > 0 {
		e.s.RecordClear(cleared)
	}

	e.h.Update(e.c)

	if e.c.Time(controller.Quit) == 1 {
		logw.Infof(e.ctx, "quit requested at tick %v", e.tickCount)
		e.running = false
	}

	e.pieceTimer++
}

// tryHold performs a hold if Hold was just pressed and the per-piece hold
// limit has not been reached.
func (e *Engine) tryHold() {
	if !e.settings.HasHold {
		return
	}
	if e.c.Time(controller.Hold) != 1 {
		return
	}
	if e.holdCount >= e.settings.HoldLimit {
		return
	}
	e.performHold()
}

// performHold swaps the active piece's id with the stored hold id (drawing
// from the randomizer if nothing is held yet), spawns the result at the
// field's spawn position in rotation R0, and counts the hold against the
// per-piece limit. Shared by the in-Move hold action and IHS consumed on
// spawn.
func (e *Engine) performHold() {
	current := e.b.Id

	next := e.holdID
	if !e.holdSet {
		next = e.rz.Next()
	}
	e.holdID = current
	e.holdSet = true

	e.b = field.New(next, e.f, e.rs)
	e.holdCount++

	logw.Infof(e.ctx, "hold: %v <-> %v", current, next)
}

// tryRotate processes RotateLeft (target R270) then RotateRight (target
// R90), each via the engine's configured wallkick search.
func (e *Engine) tryRotate() {
	if e.c.Time(controller.RotateLeft) == 1 {
		e.b.RotateWithWallkick(e.f, e.wk, field.R270)
	}
	if e.c.Time(controller.RotateRight) == 1 {
		e.b.RotateWithWallkick(e.f, e.wk, field.R90)
	}
}

// applyHorizontalMove implements the DAS/ARR autorepeat for MoveLeft and
// MoveRight: an action is "pressed" this tick on its first frame, or once
// DAS has elapsed, every Arr ticks thereafter. When both directions are
// held, the one most recently pressed (smaller Time) wins.
func (e *Engine) applyHorizontalMove() {
	left := e.c.Active(controller.MoveLeft)
	right := e.c.Active(controller.MoveRight)

	var dir field.Direction
	var action controller.Action
	switch {
	case left && right:
		if e.c.Time(controller.MoveLeft) < e.c.Time(controller.MoveRight) {
			dir, action = field.Left, controller.MoveLeft
		} else {
			dir, action = field.Right, controller.MoveRight
		}
	case left:
		dir, action = field.Left, controller.MoveLeft
	case right:
		dir, action = field.Right, controller.MoveRight
	default:
		return
	}

	t := e.c.Time(action)
	das := e.ticks(e.settings.Das)
	arr := e.ticks(e.settings.Arr)

	pressed := t == 1
	if !pressed && t >= das {
		pressed = arr == 0 || (t-das)%arr == 0
	}
	if pressed {
		e.b.Shift(e.f, dir)
	}
}

// applyGravity accumulates natural gravity and, if MoveDown is held,
// soft-drop speed, as two independently-draining float counters, and
// shifts the block down once per whole cell of accumulated fall. The two
// accumulators compose additively rather than one overriding the other,
// matching the observed reference behavior (spec.md §9 Open Questions).
func (e *Engine) applyGravity() {
	e.gravityCounter += float64(e.mspt) * e.settings.Gravity

	if e.settings.HasSoftDrop && e.c.Active(controller.MoveDown) {
		e.softDropCounter += float64(e.mspt) * e.settings.SoftDropSpeed
	} else {
		e.softDropCounter = 0
	}

	for e.gravityCounter >= 1 || e.softDropCounter >= 1 {
		if !e.b.Shift(e.f, field.Down) {
			e.locking = true
		}
		if e.gravityCounter >= 1 {
			e.gravityCounter--
		}
		if e.softDropCounter >= 1 {
			e.softDropCounter--
		}
	}
}

// checkLockDelay implements spec §4.7.8: becoming airborne again resets the
// lock timer unconditionally (the "infinity" reading of spec.md §9's Open
// Question), and a piece locks once the timer exceeds the configured delay.
// It is a no-op after a hard drop, which already locked the piece in
// hardDrop.
func (e *Engine) checkLockDelay() {
	if !e.b.CollidesAtOffset(e.f, 0, 1) {
		e.locking = false
		e.lockTimer = 0
	}
	if e.locking {
		e.lockTimer++
	}

	if e.lockTimer > e.ticks(e.settings.LockDelay) {
		e.lock()
	}
}

// hardDrop implements spec §4.7.6: drop the block as far as it will go,
// freeze it, and transition either to Are or directly back to Move.
func (e *Engine) hardDrop() {
	e.b.ShiftExtend(e.f, field.Down)
	e.lock()
}

// lock freezes the active block into the field, records the lock, and
// transitions either to Are (if configured) or immediately back to Move
// with a fresh spawn due next tick. Shared by the hard-drop and
// natural-lock-delay paths.
func (e *Engine) lock() {
	e.f.Freeze(e.b)
	e.s.RecordLock()
	e.holdCount = 0

	logw.Infof(e.ctx, "lock: %v at (%d, %d) r=%v", e.b.Id, e.b.X, e.b.Y, e.b.R)

	if e.settings.Are > 0 {
		e.status = StatusAre
	} else {
		e.statusTimer = 0
		e.needPiece = true
	}
}

// statAre implements spec §4.7.9: count the Are delay down, recording any
// IHS/IRS request so it can be consumed on the next piece's spawn.
func (e *Engine) statAre() {
	if e.settings.HasHold && e.c.Time(controller.Hold) == 1 {
		e.ihsFlag = true
	}
	if e.c.Time(controller.RotateLeft) == 1 {
		e.irsFlag = true
		e.irsRotation = field.R270
	}
	if e.c.Time(controller.RotateRight) == 1 {
		e.irsFlag = true
		e.irsRotation = field.R90
	}

	if e.statusTimer > e.ticks(e.settings.Are) {
		e.needPiece = true
		e.status = StatusMove
		logw.Infof(e.ctx, "are elapsed at tick %v, resuming move", e.tickCount)
	}
}

// statGameOver implements spec §4.7.10: terminal, no further transitions.
func (e *Engine) statGameOver() {
	e.running = false
}
