package wallkick

import "github.com/ndyer/tetros/pkg/field"

var tgmRotation = [][2]int{{0, 0}, {1, 0}, {-1, 0}}

// TGM is the TGM1/TGM2 wallkick: a plain left/right nudge for most pieces,
// with the I piece never kicking and the 3-wide L/J/T orientations
// suppressed entirely when a piece would rotate into an occupied middle
// column.
type TGM struct{}

func (TGM) Name() string { return "tgm" }

func (TGM) Test(b *field.Block, f *field.Field, to field.Rotation) [][2]int {
	if b.Id == field.I {
		return none
	}

	if b.Id == field.L || b.Id == field.J || b.Id == field.T {
		if suppressed := tgmMiddleColumnBlocked(b, f); suppressed {
			return none
		}
	}

	switch to {
	case field.R0:
		return none
	default:
		return tgmRotation
	}
}

// tgmMiddleColumnBlocked reports whether b's current orientation is 3-wide
// and its middle column is blocked in the direction the piece would kick
// into, per the classic TGM "no kick into a 3-wide groove" rule.
func tgmMiddleColumnBlocked(b *field.Block, f *field.Field) bool {
	maxX, _ := field.Max(b.RS, b.Id, b.R)
	minX, minY := field.Min(b.RS, b.Id, b.R)
	if maxX-minX != 2 {
		return false
	}

	px, py := field.Minp(b.RS, b.Id, b.R)
	apx, apy := b.X+px, b.Y+py
	data := b.RS.Data(b.Id, b.R)
	mx := b.X + minX + 1

	contains := func(x, y int) bool {
		for _, c := range data {
			if c[0] == x && c[1] == y {
				return true
			}
		}
		return false
	}

	switch b.Id {
	case field.T:
		return f.Occupies(mx, b.Y+minY-1)
	case field.L:
		if contains(px+1, py) {
			if !(f.Occupies(apx+1, apy+1) && f.Occupies(apx+2, apy-1)) {
				return f.Occupies(mx, apy+1) || f.Occupies(mx, apy-1)
			}
			return false
		}
		if !(f.Occupies(apx+1, apy) && f.Occupies(apx+2, apy-1)) {
			return f.Occupies(mx, apy) || f.Occupies(mx, apy-1)
		}
		return false
	default: // J
		if contains(px+1, py) {
			if !(f.Occupies(apx, apy-1) && f.Occupies(apx+1, apy+1)) {
				return f.Occupies(mx, apy-1) || f.Occupies(mx, apy+1)
			}
			return false
		}
		if !(f.Occupies(apx-1, apy) && f.Occupies(apx-2, apy-1)) {
			return f.Occupies(mx, apy) || f.Occupies(mx, apy-1)
		}
		return false
	}
}
