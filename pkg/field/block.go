package field

// Block is a single active tetrimino: an id, a rotation, an (x, y) anchor,
// and the rotation system used to turn (id, r) into absolute cells. The
// origin is the top-left of the field; y grows downward.
type Block struct {
	Id Id
	X  int
	Y  int
	R  Rotation

	RS RotationSystem
}

// BlockOptions carries the overridable construction parameters of a Block.
// The zero value selects every default: spawn position, R0, and the rs
// passed by the caller.
type BlockOptions struct {
	// X, Y override the field's spawn position when non-nil.
	X, Y *int

	Rotation Rotation
}

// New constructs a Block at the field's spawn position, R0, using rs.
func New(id Id, f *Field, rs RotationSystem) *Block {
	return WithOptions(id, f, rs, BlockOptions{})
}

// WithOptions constructs a Block with the given overrides. Unset X/Y fall
// back to the field's spawn coordinate.
func WithOptions(id Id, f *Field, rs RotationSystem, opts BlockOptions) *Block {
	x, y := f.Spawn()
	if opts.X != nil {
		x = *opts.X
	}
	if opts.Y != nil {
		y = *opts.Y
	}
	return &Block{Id: id, X: x, Y: y, R: opts.Rotation, RS: rs}
}

// Clone returns an independent copy of the block.
func (b *Block) Clone() *Block {
	c := *b
	return &c
}

// CollidesAtOffset reports whether the block, shifted by (xo, yo) without
// actually moving, would collide with the field bounds or an occupied cell.
func (b *Block) CollidesAtOffset(f *Field, xo, yo int) bool {
	for _, c := range b.RS.Data(b.Id, b.R) {
		x, y := b.X+c[0]+xo, b.Y+c[1]+yo
		if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
			return true
		}
		if f.Get(x, y) != None {
			return true
		}
	}
	return false
}

// Collides reports whether the block collides with the field at its
// current position.
func (b *Block) Collides(f *Field) bool {
	return b.CollidesAtOffset(f, 0, 0)
}

// shiftRaw moves the block by (dx, dy) without checking intermediate steps,
// reporting whether the move succeeded.
func (b *Block) shiftRaw(f *Field, dx, dy int) bool {
	if b.CollidesAtOffset(f, dx, dy) {
		return false
	}
	b.X += dx
	b.Y += dy
	return true
}

// Shift moves the block one step in direction, which must be Left, Right,
// or Down. It reports whether the move succeeded.
func (b *Block) Shift(f *Field, d Direction) bool {
	dx, dy := d.Vector()
	return b.shiftRaw(f, dx, dy)
}

// ShiftExtend repeatedly shifts the block in direction until it can no
// longer move, used for hard drop and for the Ghost projection (both
// Direction Down).
func (b *Block) ShiftExtend(f *Field, d Direction) {
	for b.Shift(f, d) {
	}
}

// RotateAtOffset rotates the block by rotation and then applies the (x, y)
// offset in one atomic step, restoring the prior rotation if the result
// collides. This is the primitive a wallkick search is built from.
func (b *Block) RotateAtOffset(f *Field, rotation Rotation, xo, yo int) bool {
	original := b.R

	switch rotation {
	case R0:
		// no-op rotation, still subject to the offset check
	case R90:
		b.R = b.R.Clockwise()
	case R180:
		b.R = b.R.Clockwise().Clockwise()
	case R270:
		b.R = b.R.Anticlockwise()
	}

	if b.shiftRaw(f, xo, yo) {
		return true
	}
	b.R = original
	return false
}

// Rotate rotates the block by rotation with no offset.
func (b *Block) Rotate(f *Field, rotation Rotation) bool {
	return b.RotateAtOffset(f, rotation, 0, 0)
}

// RotateWithWallkick tries rotation against every offset wk proposes, in
// order, committing the first one that doesn't collide. It reports whether
// any offset succeeded.
func (b *Block) RotateWithWallkick(f *Field, wk Wallkick, rotation Rotation) bool {
	for _, off := range wk.Test(b, f, rotation) {
		if b.RotateAtOffset(f, rotation, off[0], off[1]) {
			return true
		}
	}
	return false
}

// Occupies reports whether the block currently occupies absolute cell
// (x, y).
func (b *Block) Occupies(x, y int) bool {
	for _, c := range b.RS.Data(b.Id, b.R) {
		if b.X+c[0] == x && b.Y+c[1] == y {
			return true
		}
	}
	return false
}

// Ghost returns a copy of the block dropped as far down as it can go, used
// to render the landing preview.
func (b *Block) Ghost(f *Field) *Block {
	g := b.Clone()
	g.ShiftExtend(f, Down)
	return g
}
