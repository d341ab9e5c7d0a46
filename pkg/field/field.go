package field

import "fmt"

// Field is the playfield: a rectangular grid of frozen cells plus the
// geometry (size, hidden rows, spawn point) a Block is constructed against.
// A Field does not track the active Block itself, except through Freeze.
type Field struct {
	Width  int
	Height int

	// Hidden is the height of the hidden region at the top of the field,
	// included in Height rather than added to it.
	Hidden int

	spawnX, spawnY int

	data []Id
}

// FieldOptions carries the overridable construction parameters of a Field.
type FieldOptions struct {
	Width  int
	Height int
	Hidden int

	SpawnX, SpawnY int
}

// DefaultFieldOptions mirrors the standard guideline field: 10 wide, 25
// tall with 3 hidden rows, spawning at (4, 0).
func DefaultFieldOptions() FieldOptions {
	return FieldOptions{Width: 10, Height: 25, Hidden: 3, SpawnX: 4, SpawnY: 0}
}

// New constructs a Field with the default options.
func New() *Field {
	return NewWithOptions(DefaultFieldOptions())
}

// NewWithOptions constructs a Field with the given options. Every cell
// starts as None: Id's zero value is I, not None, so the backing slice must
// be filled explicitly rather than relying on make's zero-initialization.
func NewWithOptions(opts FieldOptions) *Field {
	data := make([]Id, opts.Width*opts.Height)
	for i := range data {
		data[i] = None
	}
	return &Field{
		Width:  opts.Width,
		Height: opts.Height,
		Hidden: opts.Hidden,
		spawnX: opts.SpawnX,
		spawnY: opts.SpawnY,
		data:   data,
	}
}

// Spawn returns the (x, y) coordinate a new Block is placed at.
func (f *Field) Spawn() (int, int) {
	return f.spawnX, f.spawnY
}

func (f *Field) index(x, y int) int {
	return y*f.Width + x
}

// Get returns the id occupying (x, y). It panics if the coordinate is out
// of bounds, matching the teacher's fail-loudly-on-programmer-error style
// for internal invariants. Block.CollidesAtOffset checks bounds itself
// before calling Get; Occupies is the bounds-safe alternative.
func (f *Field) Get(x, y int) Id {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		panic(fmt.Sprintf("field: out of bounds: (%d, %d)", x, y))
	}
	return f.data[f.index(x, y)]
}

// set writes id into the cell at (x, y). Unexported: code outside the
// package mutates cells through Freeze, ClearLines, or the SetCell fixture
// helper.
func (f *Field) set(x, y int, id Id) {
	f.data[f.index(x, y)] = id
}

// Occupies reports whether (x, y) holds a non-empty cell. Out-of-bounds
// coordinates report false; bounds checking is the caller's responsibility
// where it matters (Block.CollidesAtOffset checks bounds itself first).
func (f *Field) Occupies(x, y int) bool {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return false
	}
	return f.data[f.index(x, y)] != None
}

// SetCell writes id directly into cell (x, y), bypassing Freeze/ClearLines.
// It exists for test fixture construction (package schema builds arbitrary
// starting fields from ASCII pictures) and is not part of normal gameplay
// mutation, which goes through Freeze and ClearLines only.
func (f *Field) SetCell(x, y int, id Id) {
	f.set(x, y, id)
}

// Freeze writes b's cells into the field permanently.
func (f *Field) Freeze(b *Block) {
	for _, c := range b.RS.Data(b.Id, b.R) {
		f.set(b.X+c[0], b.Y+c[1], b.Id)
	}
}

// ClearLines removes every full row, shifts the rows above down to fill the
// gap, and returns the number of rows cleared.
func (f *Field) ClearLines() int {
	kept := f.data[:0]
	cleared := 0
	for y := 0; y < f.Height; y++ {
		row := f.data[y*f.Width : (y+1)*f.Width]
		full := true
		for _, id := range row {
			if id == None {
				full = false
				break
			}
		}
		if full {
			cleared++
			continue
		}
		kept = append(kept, row...)
	}
	if cleared == 0 {
		return 0
	}

	newData := make([]Id, len(f.data))
	for i := 0; i < cleared*f.Width; i++ {
		newData[i] = None
	}
	copy(newData[cleared*f.Width:], kept)
	f.data = newData
	return cleared
}
