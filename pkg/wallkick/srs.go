package wallkick

import "github.com/ndyer/tetros/pkg/field"

// SRS is the Super Rotation System wallkick: per-piece, per-from-rotation
// offset sequences, with the I piece using its own wider table and O using
// none at all.
type SRS struct{}

func (SRS) Name() string { return "srs" }

func (SRS) Test(b *field.Block, f *field.Field, to field.Rotation) [][2]int {
	if b.Id == field.O {
		return srsRightJLSTZ[0][:1]
	}

	switch to {
	case field.R90:
		if b.Id == field.I {
			return srsRightI[b.R.Index()]
		}
		return srsRightJLSTZ[b.R.Index()]
	case field.R270:
		if b.Id == field.I {
			return srsLeftI[b.R.Index()]
		}
		return srsLeftJLSTZ[b.R.Index()]
	default:
		panic("wallkick: srs does not support 180-degree rotation tests")
	}
}

var srsRightJLSTZ = [4][][2]int{
	{{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	{{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
}

var srsLeftJLSTZ = [4][][2]int{
	{{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	{{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
}

var srsRightI = [4][][2]int{
	{{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
	{{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
	{{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
	{{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {2, -1}},
}

var srsLeftI = [4][][2]int{
	{{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
	{{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
	{{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
	{{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
}
