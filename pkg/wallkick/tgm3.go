package wallkick

import "github.com/ndyer/tetros/pkg/field"

var (
	tgm3IFloorkick = [][2]int{{0, 0}, {0, -1}, {0, -2}}
	tgm3IRotation  = [][2]int{{0, 0}, {1, 0}, {2, 0}, {-1, 0}}
	tgm3TFloorkick = [][2]int{{0, 0}, {0, -1}}
)

// TGM3 adds an I-piece floorkick and a T-piece groove floorkick on top of
// TGM, falling back to TGM's rules for everything else.
type TGM3 struct{}

func (TGM3) Name() string { return "tgm3" }

func (TGM3) Test(b *field.Block, f *field.Field, to field.Rotation) [][2]int {
	switch b.Id {
	case field.I:
		for _, c := range b.RS.Data(b.Id, b.R) {
			if below := b.Y + c[1] + 1; below >= f.Height || f.Occupies(b.X+c[0], below) {
				return tgm3IFloorkick
			}
		}
		return tgm3IRotation

	case field.T:
		px, py := field.Minp(b.RS, b.Id, b.R)
		apx, apy := b.X+px, b.Y+py

		minX, _ := field.Min(b.RS, b.Id, b.R)
		maxX, _ := field.Max(b.RS, b.Id, b.R)
		height := maxX - minX

		data := b.RS.Data(b.Id, b.R)
		flatside := func() bool {
			for _, c := range data {
				if c[0] == apx-b.X+1 && c[1] == apy-b.Y {
					return true
				}
			}
			return false
		}

		if !(height == 1 && flatside()) {
			var bx, by int
			if height == 1 {
				bx, by = apx+1, apy+1
			} else {
				bx, by = apx, apy+2
			}

			if !(by >= f.Height || bx+1 >= f.Width) {
				if f.Occupies(bx-1, by) && f.Occupies(bx+1, by) {
					return tgm3TFloorkick
				}
				return none
			}
		}
	}

	return TGM{}.Test(b, f, to)
}
