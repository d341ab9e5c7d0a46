package field

// RotationSystem supplies the cell offsets a Block occupies for each (Id,
// Rotation) pair. Implementations are stateless named singletons living in
// package rotation; the interface is declared here, rather than imported
// from there, so that Block can hold one without pkg/rotation importing
// pkg/field's Block and Field back (pkg/rotation only needs Id and Rotation).
type RotationSystem interface {
	// Name returns the name the rotation system is registered under.
	Name() string

	// Data returns the four (x, y) cell offsets a block of the given id and
	// rotation occupies, relative to the block's (x, y) anchor.
	Data(id Id, r Rotation) [4][2]int
}

// Min returns the minimum x and y offset present in the rotation system's
// data for the given id and rotation.
func Min(rs RotationSystem, id Id, r Rotation) (int, int) {
	data := rs.Data(id, r)
	minX, minY := data[0][0], data[0][1]
	for _, c := range data[1:] {
		if c[0] < minX {
			minX = c[0]
		}
		if c[1] < minY {
			minY = c[1]
		}
	}
	return minX, minY
}

// Max returns the maximum x and y offset present in the rotation system's
// data for the given id and rotation.
func Max(rs RotationSystem, id Id, r Rotation) (int, int) {
	data := rs.Data(id, r)
	maxX, maxY := data[0][0], data[0][1]
	for _, c := range data[1:] {
		if c[0] > maxX {
			maxX = c[0]
		}
		if c[1] > maxY {
			maxY = c[1]
		}
	}
	return maxX, maxY
}

// Minp returns the offset of the first occupied cell in row-major (y, then
// x) scan order: the least (x, y) pair minimizing y first, then x.
func Minp(rs RotationSystem, id Id, r Rotation) (int, int) {
	data := rs.Data(id, r)
	x, y := data[0][0], data[0][1]
	for _, c := range data[1:] {
		if c[1] < y || (c[1] == y && c[0] <= x) {
			x, y = c[0], c[1]
		}
	}
	return x, y
}

// Wallkick proposes a sequence of (x, y) offsets to retry a rotation at when
// it fails in place. Implementations live in package wallkick; declared here
// for the same reason as RotationSystem: Block.RotateWithWallkick needs the
// type without pkg/wallkick importing pkg/field's Block back.
type Wallkick interface {
	Name() string

	// Test returns the offsets to try, in order, for turning b by the
	// relative rotation to (R90 clockwise, R270 anticlockwise, R180 a half
	// turn). b is consulted at its current (not-yet-rotated) state.
	Test(b *Block, f *Field, to Rotation) [][2]int
}
