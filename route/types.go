// Package route implements the routing data model (spec.md §3) and the
// Initial Router, Violation Model, Maze Router and Rip-Up Loop (spec.md
// §4.5-§4.8): decomposing nets into segments, producing naive and
// maze-routed paths, and iteratively ripping up and re-routing until the
// usage matrix is free of violations.
package route

import (
	"errors"

	"github.com/chmodjack/pershing/grid"
)

// ErrUnreachableEndpoints is returned by MazeRoute when no path exists
// between the two endpoints (spec.md §7).
var ErrUnreachableEndpoints = errors.New("route: no path between endpoints")

// Segment is one MST edge of a net: its two pins, the realized path
// between them, the wire+substrate block IDs it occupies, and the
// voxels where its emissions would conflict with foreign material
// (spec.md §3).
type Segment struct {
	Pins      [2]grid.Coord
	Path      []grid.Coord
	Wire      *grid.Grid[int16]
	Violation *grid.Grid[bool]
}

// Net is a named electrical equivalence class: all of its pins, and the
// segments (an MST over those pins) that collectively connect them.
type Net struct {
	Pins     []grid.Coord
	Segments []*Segment
}

// Routing maps net name to its realized Net. Nets with fewer than two
// pins never appear here (spec.md §4.4).
type Routing map[string]*Net

// Key identifies one segment within a Routing: a net name and the
// segment's index within that net's Segments slice. Used by the rip-up
// loop to name segments selected for re-routing without giving segments
// their own identity field.
type Key struct {
	Net   string
	Index int
}

// Clone deep-copies a Routing, including every segment's Wire and
// Violation grids, so re-routing one candidate never mutates another
// (mirrors Placements.Clone's per-move isolation).
func (r Routing) Clone() Routing {
	out := make(Routing, len(r))
	for name, net := range r {
		segments := make([]*Segment, len(net.Segments))
		for i, seg := range net.Segments {
			segments[i] = &Segment{
				Pins:      seg.Pins,
				Path:      append([]grid.Coord(nil), seg.Path...),
				Wire:      seg.Wire.Clone(),
				Violation: seg.Violation.Clone(),
			}
		}
		out[name] = &Net{
			Pins:     append([]grid.Coord(nil), net.Pins...),
			Segments: segments,
		}
	}
	return out
}

// TotalViolations sums violations() across every segment of every net
// against the given usage matrix.
func (r Routing) TotalViolations(usage *grid.Grid[bool]) int {
	total := 0
	for _, net := range r {
		for _, seg := range net.Segments {
			total += grid.AndCount(seg.Violation, usage)
		}
	}
	return total
}

// wireOccupancy converts a block-ID wire grid into a boolean occupancy
// grid: true wherever a conductor or substrate block was placed.
func wireOccupancy(wire *grid.Grid[int16]) *grid.Grid[bool] {
	out := grid.New[bool](wire.Dims())
	wire.Each(func(y, z, x int, v int16) {
		if v != 0 {
			out.Set(y, z, x, true)
		}
	})
	return out
}
