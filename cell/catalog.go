package cell

import (
	"errors"
	"fmt"
)

// ErrUnknownCell is returned when an operation references a cell name
// that is absent from the catalog (spec.md §7, UnknownCell).
var ErrUnknownCell = errors.New("cell: unknown cell name")

// Library is the external cell-library collaborator (spec.md §6):
// a mapping from cell name to its unrotated definition. Loading this
// from an on-disk format is out of scope; callers construct it however
// they like and hand it to Build.
type Library map[string]*Cell

// Catalog is the read-only, precomputed mapping from cell name to its
// four yaw rotations. Built once per run (spec.md §4.1).
type Catalog struct {
	rotations map[string][4]*Cell
}

// Build precomputes all four rotations of every cell in the library.
// Grounded on pregenerate_cells in the original placer.
func Build(library Library) *Catalog {
	c := &Catalog{rotations: make(map[string][4]*Cell, len(library))}
	for name, base := range library {
		c.rotations[name] = Rotations(base)
	}
	return c
}

// Get returns the pre-rotated variant r (0..3) of the named cell.
func (c *Catalog) Get(name string, r int) (*Cell, error) {
	rots, ok := c.rotations[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCell, name)
	}
	if r < 0 || r > 3 {
		return nil, fmt.Errorf("cell: rotation index %d out of range [0,3]", r)
	}
	return rots[r], nil
}

// Names returns the set of cell names known to the catalog.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.rotations))
	for name := range c.rotations {
		names = append(names, name)
	}
	return names
}
