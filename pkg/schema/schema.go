// Package schema parses and renders an ASCII picture of a field and its
// active block, for use in tests: it is a testing facility, not something
// the engine depends on, but reproducing the original implementation's
// textual fixtures is how this engine's tick semantics are verified.
package schema

import (
	"fmt"
	"strings"

	"github.com/ndyer/tetros/pkg/field"
)

// Schema is a parsed textual picture of a field: a rectangular grid of
// ' ' (empty), '#' (filled), and '@' (active block) cells.
type Schema struct {
	rows          [][]rune
	width, height int
}

// FromString parses s into a Schema. Each line is trimmed, then its '|' and
// '-' characters (frame decoration) are stripped; lines that are empty after
// stripping are dropped entirely (this is how the dashed border row and
// blank separator lines disappear). It fails with an error if the remaining
// rows are empty or of uneven length, mirroring fen.Decode's
// construction-time error style rather than panicking.
func FromString(s string) (*Schema, error) {
	var rows [][]rune
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		line = strings.Map(func(r rune) rune {
			if r == '|' || r == '-' {
				return -1
			}
			return r
		}, line)
		if len(line) == 0 {
			continue
		}
		rows = append(rows, []rune(line))
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("schema: empty input")
	}
	width := len(rows[0])
	for _, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("schema: uneven row lengths")
		}
	}

	return &Schema{rows: rows, width: width, height: len(rows)}, nil
}

// FromState renders field and block into a Schema. It panics if a field
// cell and a block cell coincide: that is an invariant violation (the
// active block may never overlap a frozen cell), not a condition a caller
// should need to recover from.
func FromState(f *field.Field, b *field.Block) *Schema {
	rows := make([][]rune, f.Height)
	for y := 0; y < f.Height; y++ {
		row := make([]rune, f.Width)
		for x := 0; x < f.Width; x++ {
			filled := f.Occupies(x, y)
			active := b.Occupies(x, y)
			switch {
			case filled && active:
				panic(fmt.Sprintf("schema: field and block collide at (%d, %d)", x, y))
			case filled:
				row[x] = '#'
			case active:
				row[x] = '@'
			default:
				row[x] = ' '
			}
		}
		rows[y] = row
	}
	return &Schema{rows: rows, width: f.Width, height: f.Height}
}

// ToState scans the schema top-to-bottom, left-to-right and constructs the
// (Field, Block) it describes under rotation system rs. '#' cells become
// filled field cells (using field.I as the generic "occupied" sentinel);
// the first '@' cell encountered is matched against every (Id, Rotation)
// pair of rs to identify which piece and orientation produced it, and the
// four matched cells are consumed. It fails if no '@' is present, or if the
// '@' cells present do not match any (Id, Rotation) shape in rs.
func (s *Schema) ToState(rs field.RotationSystem) (*field.Field, *field.Block, error) {
	work := make([][]rune, len(s.rows))
	for y, row := range s.rows {
		work[y] = append([]rune(nil), row...)
	}

	f := field.NewWithOptions(field.FieldOptions{Width: s.width, Height: s.height})

	var b *field.Block
	for y := 0; y < s.height && b == nil; y++ {
		for x := 0; x < s.width; x++ {
			if work[y][x] != '@' {
				continue
			}
			matched, err := matchBlock(work, s.width, s.height, x, y, rs)
			if err != nil {
				return nil, nil, err
			}
			b = matched
			break
		}
	}
	if b == nil {
		return nil, nil, fmt.Errorf("schema: no active block found")
	}

	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			if work[y][x] == '#' {
				f.SetCell(x, y, field.I)
			}
		}
	}

	if b.Collides(f) {
		return nil, nil, fmt.Errorf("schema: matched block collides with filled cells")
	}
	return f, b, nil
}

// matchBlock tries every (Id, Rotation) pair of rs against the '@' cell at
// (x, y), anchoring each candidate shape by its Minp offset so that (x, y)
// lines up with the shape's first row-major cell. The first match erases
// its four cells from work (so a second match attempt never double-counts
// them) and returns the corresponding Block.
func matchBlock(work [][]rune, width, height, x, y int, rs field.RotationSystem) (*field.Block, error) {
	for _, id := range field.Ids() {
		for _, r := range field.Rotations() {
			ax, ay := field.Minp(rs, id, r)
			bx, by := x-ax, y-ay

			cells := rs.Data(id, r)
			ok := true
			for _, c := range cells {
				cx, cy := bx+c[0], by+c[1]
				if cx < 0 || cx >= width || cy < 0 || cy >= height || work[cy][cx] != '@' {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}

			for _, c := range cells {
				work[by+c[1]][bx+c[0]] = ' '
			}

			return &field.Block{Id: id, X: bx, Y: by, R: r, RS: rs}, nil
		}
	}
	return nil, fmt.Errorf("schema: no (id, rotation) matches active block at (%d, %d)", x, y)
}

// String renders the schema back to its textual form: each row framed by
// '|', followed by a dashed border the width of the frame.
func (s *Schema) String() string {
	var sb strings.Builder
	for _, row := range s.rows {
		sb.WriteByte('|')
		sb.WriteString(string(row))
		sb.WriteString("|\n")
	}
	sb.WriteString(strings.Repeat("-", s.width+2))
	return sb.String()
}

// trimLeadingEmpty returns the row sequence with leading fully-empty rows
// removed, used by Equal to make leading padding insignificant.
func (s *Schema) trimLeadingEmpty() [][]rune {
	i := 0
	for i < len(s.rows) && isEmptyRow(s.rows[i]) {
		i++
	}
	return s.rows[i:]
}

func isEmptyRow(row []rune) bool {
	for _, r := range row {
		if r != ' ' {
			return false
		}
	}
	return true
}

// Equal reports whether two schemas describe the same picture, after
// stripping each one's leading fully-empty rows. Widths must match exactly.
func (s *Schema) Equal(other *Schema) bool {
	if s.width != other.width {
		return false
	}
	a, b := s.trimLeadingEmpty(), other.trimLeadingEmpty()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if string(a[i]) != string(b[i]) {
			return false
		}
	}
	return true
}
