// Package rotation provides the named rotation systems: the per-(id,
// rotation) cell offset tables that tell a block what shape it occupies.
package rotation

import (
	"fmt"

	"github.com/ndyer/tetros/pkg/field"
)

// table is the shape every rotation system's static data takes: one set of
// four rotations per real piece id.
type table [7][4][4][2]int

// system wraps a table with the name it is registered under, implementing
// field.RotationSystem.
type system struct {
	name string
	data table
}

func (s system) Name() string { return s.name }

func (s system) Data(id field.Id, r field.Rotation) [4][2]int {
	if id.Index() >= len(s.data) {
		panic(fmt.Sprintf("rotation: no data for id %v", id))
	}
	return s.data[id.Index()][r.Index()]
}

var (
	srsSystem    = system{name: "srs", data: srsTable}
	arsSystem    = system{name: "ars", data: arsTable}
	dtetSystem   = system{name: "dtet", data: dtetTable}
	tengenSystem = system{name: "tengen", data: tengenTable}
)

// SRS returns the Super Rotation System (the modern guideline standard).
func SRS() field.RotationSystem { return srsSystem }

// ARS returns the classic Arika Rotation System.
func ARS() field.RotationSystem { return arsSystem }

// DTET returns the DTET rotation system.
func DTET() field.RotationSystem { return dtetSystem }

// Tengen returns the Tengen (NES) rotation system.
func Tengen() field.RotationSystem { return tengenSystem }

// New is the named factory: it resolves one of "srs", "ars", "dtet",
// "tengen" to its field.RotationSystem, or fails loudly on an unknown name
// — a programmer error, not a runtime condition a caller should recover
// from.
func New(name string) field.RotationSystem {
	switch name {
	case "srs":
		return SRS()
	case "ars":
		return ARS()
	case "dtet":
		return DTET()
	case "tengen":
		return Tengen()
	default:
		panic(fmt.Sprintf("rotation: unknown name %q", name))
	}
}

// Min returns the minimum x and y offset for (id, r) under rs.
func Min(rs field.RotationSystem, id field.Id, r field.Rotation) (int, int) {
	return field.Min(rs, id, r)
}

// Max returns the maximum x and y offset for (id, r) under rs.
func Max(rs field.RotationSystem, id field.Id, r field.Rotation) (int, int) {
	return field.Max(rs, id, r)
}

// Minp returns the row-major-first occupied offset for (id, r) under rs.
func Minp(rs field.RotationSystem, id field.Id, r field.Rotation) (int, int) {
	return field.Minp(rs, id, r)
}
