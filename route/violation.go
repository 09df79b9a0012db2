package route

import (
	"github.com/chmodjack/pershing/blockvocab"
	"github.com/chmodjack/pershing/grid"
	"github.com/chmodjack/pershing/segment"
)

// violationNeighborOffsets lists the eight voxels around a path voxel
// that its emissions may disturb: at the same level and one level below,
// in each of the four cardinal directions (spec.md §4.6).
var violationNeighborOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var violationLevels = [2]int{0, -1}

// NetToWireAndViolation derives the wire and violation grids for a
// realized path: every path voxel gets the vocabulary's conductor block
// and a substrate block directly beneath it, and every neighbor in the
// violation pattern is marked, except where the path voxel is one of
// the segment's own pins (spec.md §4.6). Out-of-bounds neighbors are
// silently dropped. Finally the segment's own wire and substrate voxels
// are cleared from its violation grid so a segment never violates
// itself.
func NetToWireAndViolation(path []grid.Coord, dims grid.Dims, pins []grid.Coord, vocab *blockvocab.Vocabulary) (*grid.Grid[int16], *grid.Grid[bool]) {
	wire := grid.New[int16](dims)
	violation := grid.New[bool](dims)

	conductor := vocab.Conductor()
	substrate := vocab.Substrate()

	isPin := make(map[grid.Coord]bool, len(pins))
	for _, p := range pins {
		isPin[p] = true
	}

	for _, c := range path {
		wire.Set(c.Y, c.Z, c.X, conductor)
		if dims.Contains(c.Y-1, c.Z, c.X) {
			wire.Set(c.Y-1, c.Z, c.X, substrate)
		}

		if isPin[c] {
			continue
		}

		for _, dy := range violationLevels {
			for _, dzdx := range violationNeighborOffsets {
				ny, nz, nx := c.Y+dy, c.Z+dzdx[0], c.X+dzdx[1]
				if !dims.Contains(ny, nz, nx) {
					continue
				}
				violation.Set(ny, nz, nx, true)
			}
		}
	}

	for _, c := range path {
		violation.Set(c.Y, c.Z, c.X, false)
		if dims.Contains(c.Y-1, c.Z, c.X) {
			violation.Set(c.Y-1, c.Z, c.X, false)
		}
	}

	return wire, violation
}

// Violations counts voxels where the boolean violation grid and the
// usage matrix are both true (spec.md §4.6).
func Violations(violation, usage *grid.Grid[bool]) int {
	return grid.AndCount(violation, usage)
}

// GenerateUsageMatrix ORs the placed layout's non-empty voxels with
// every segment's wire grid, excluding any segment named in exclude
// (spec.md §3 Usage Matrix).
func GenerateUsageMatrix(layout *grid.Grid[int16], routing Routing, exclude map[Key]bool) *grid.Grid[bool] {
	usage := wireOccupancy(layout)
	for netName, net := range routing {
		for i, seg := range net.Segments {
			if exclude[Key{Net: netName, Index: i}] {
				continue
			}
			grid.Or(usage, wireOccupancy(seg.Wire))
		}
	}
	return usage
}

// BuildInitialRouting decomposes every net's pins into an MST of
// two-pin segments and routes each with the naive in-plane router,
// producing the initial routing (spec.md §4.5).
func BuildInitialRouting(netPins map[string][]grid.Coord, dims grid.Dims, vocab *blockvocab.Vocabulary) Routing {
	routing := make(Routing)
	for name, pins := range netPins {
		edges := segment.MST(pins)
		if len(edges) == 0 {
			continue
		}

		segments := make([]*Segment, len(edges))
		for i, e := range edges {
			path := DumbRoute(e.A, e.B)
			wire, violation := NetToWireAndViolation(path, dims, []grid.Coord{e.A, e.B}, vocab)
			segments[i] = &Segment{Pins: [2]grid.Coord{e.A, e.B}, Path: path, Wire: wire, Violation: violation}
		}

		routing[name] = &Net{Pins: pins, Segments: segments}
	}
	return routing
}
