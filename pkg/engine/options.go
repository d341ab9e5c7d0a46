package engine

import (
	"github.com/seekerror/stdlib/pkg/lang"

	"github.com/ndyer/tetros/pkg/field"
)

// Options are engine creation options: field geometry, the named
// rotation/wallkick/randomizer variants to use, the tick duration, and the
// gameplay timing settings.
type Options struct {
	Field field.FieldOptions

	RandomizerName      string
	RandomizerLookahead int
	// Seed seeds the randomizer's RNG. Zero is a valid, deterministic seed;
	// there is no "unset" sentinel, matching math/rand.NewSource's contract.
	Seed int64

	RotationSystemName string
	WallkickName       string

	// Mspt is the fixed duration of one tick, in milliseconds. Every
	// ms-valued Settings field is converted to ticks by dividing by Mspt.
	Mspt uint64

	Settings SettingsOptions
}

// DefaultOptions returns the guideline-standard construction options: a
// 10x25 field with 3 hidden rows, SRS rotation and wallkick, a 7-deep bag
// randomizer, and a 16ms tick (62.5 ticks/second).
func DefaultOptions() Options {
	return Options{
		Field:               field.DefaultFieldOptions(),
		RandomizerName:      "bag",
		RandomizerLookahead: 7,
		RotationSystemName:  "srs",
		WallkickName:        "srs",
		Mspt:                16,
	}
}

// Settings are the resolved (all-fields-set) gameplay timing parameters
// Options.Settings overrides against DefaultSettings.
type Settings struct {
	// Das is the delay, in ms, before horizontal autorepeat begins.
	Das uint64
	// Arr is the autorepeat period, in ms, once Das has elapsed.
	Arr uint64
	// Are is the spawn delay, in ms, between a lock and the next piece.
	Are uint64
	// Gravity is the natural fall rate, in cells per ms.
	Gravity float64
	// SoftDropSpeed is the fall rate while MoveDown is held, in cells per ms.
	// It composes additively with Gravity rather than replacing it.
	SoftDropSpeed float64
	// LockDelay is the grace period, in ms, between a piece first resting
	// and being locked, reset whenever the piece becomes airborne again.
	LockDelay uint64
	// HoldLimit is the maximum number of holds permitted per piece.
	HoldLimit int
	// GravityBeforeMove controls whether the gravity/soft-drop step runs
	// before or after the horizontal DAS/ARR step within a tick.
	GravityBeforeMove bool
	// PreviewCount is how many upcoming pieces a front-end is expected to
	// render via Engine.Preview.
	PreviewCount int

	HasHold     bool
	HasHardDrop bool
	HasSoftDrop bool
}

// DefaultSettings returns guideline-standard gameplay timing: 150ms DAS,
// 33ms ARR, 400ms ARE, a single hold per piece, and a 500ms lock delay.
func DefaultSettings() Settings {
	return Settings{
		Das:               150,
		Arr:               33,
		Are:               400,
		Gravity:           1.0 / 64.0,
		SoftDropSpeed:     1.0 / 4.0,
		LockDelay:         500,
		HoldLimit:         1,
		GravityBeforeMove: false,
		PreviewCount:      4,
		HasHold:           true,
		HasHardDrop:       true,
		HasSoftDrop:       true,
	}
}

// SettingsOptions overrides DefaultSettings field by field: zero-valued
// lang.Optional fields fall back to the default, the same pattern
// searchctl.Options uses for DepthLimit/TimeControl.
type SettingsOptions struct {
	Das               lang.Optional[uint64]
	Arr               lang.Optional[uint64]
	Are               lang.Optional[uint64]
	Gravity           lang.Optional[float64]
	SoftDropSpeed     lang.Optional[float64]
	LockDelay         lang.Optional[uint64]
	HoldLimit         lang.Optional[int]
	GravityBeforeMove lang.Optional[bool]
	PreviewCount      lang.Optional[int]
	HasHold           lang.Optional[bool]
	HasHardDrop       lang.Optional[bool]
	HasSoftDrop       lang.Optional[bool]
}

// resolve merges o onto DefaultSettings, field by field.
func (o SettingsOptions) resolve() Settings {
	s := DefaultSettings()
	if v, ok := o.Das.V(); ok {
		s.Das = v
	}
	if v, ok := o.Arr.V(); ok {
		s.Arr = v
	}
	if v, ok := o.Are.V(); ok {
		s.Are = v
	}
	if v, ok := o.Gravity.V(); ok {
		s.Gravity = v
	}
	if v, ok := o.SoftDropSpeed.V(); ok {
		s.SoftDropSpeed = v
	}
	if v, ok := o.LockDelay.V(); ok {
		s.LockDelay = v
	}
	if v, ok := o.HoldLimit.V(); ok {
		s.HoldLimit = v
	}
	if v, ok := o.GravityBeforeMove.V(); ok {
		s.GravityBeforeMove = v
	}
	if v, ok := o.PreviewCount.V(); ok {
		s.PreviewCount = v
	}
	if v, ok := o.HasHold.V(); ok {
		s.HasHold = v
	}
	if v, ok := o.HasHardDrop.V(); ok {
		s.HasHardDrop = v
	}
	if v, ok := o.HasSoftDrop.V(); ok {
		s.HasSoftDrop = v
	}
	return s
}
