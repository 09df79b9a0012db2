// Package placer implements the placement model and cost function
// (spec.md §4.2): initial placement, wire-length estimation, overlap
// penalty, candidate-move generation, and layout extraction.
package placer

import (
	"errors"
	"fmt"

	"github.com/chmodjack/pershing/cell"
	"github.com/chmodjack/pershing/grid"
	"github.com/chmodjack/pershing/netlist"
)

// Spacing is the fixed gap, in blocks, the initial placement leaves
// between adjacent cells along the X axis.
const Spacing = 1

var (
	// ErrInvalidDimensions is returned when caller-supplied dimensions
	// are not a 3-tuple. Go's Dims is always a 3-tuple by construction,
	// so this only fires for the zero-volume case a caller clearly did
	// not intend (spec.md §7).
	ErrInvalidDimensions = errors.New("placer: invalid dimensions")

	// ErrInvalidMethod is returned by Generate for an unrecognized
	// method (spec.md §7).
	ErrInvalidMethod = errors.New("placer: invalid method")

	// ErrOutOfBoundsStamp is returned when a placement's anchor plus
	// its cell's shape would exceed the layout dimensions. The original
	// source does not check this; spec.md §7 recommends an
	// implementation surface it instead of corrupting memory.
	ErrOutOfBoundsStamp = errors.New("placer: placement exceeds layout bounds")
)

// Placement is one netlist instance's realized position: which cell,
// where its local origin sits in the global grid, which of its four
// rotations is used, and the pin-to-net mapping inherited from the
// netlist instance.
type Placement struct {
	CellName string
	Anchor   grid.Coord
	Rotation int
	Pins     map[string]string
}

// Placements is aligned 1:1 with the Netlist it was produced from:
// Placements[i] realizes Netlist[i].
type Placements []Placement

// Clone deep-copies a Placements slice, including each entry's Pins map,
// so candidate moves never alias the placement they were generated from
// (spec.md §3 lifecycle: "Placements are deep-copied per candidate
// move").
func (p Placements) Clone() Placements {
	out := make(Placements, len(p))
	for i, entry := range p {
		pins := make(map[string]string, len(entry.Pins))
		for k, v := range entry.Pins {
			pins[k] = v
		}
		out[i] = Placement{
			CellName: entry.CellName,
			Anchor:   entry.Anchor,
			Rotation: entry.Rotation,
			Pins:     pins,
		}
	}
	return out
}

func (p Placement) cell(catalog *cell.Catalog) (*cell.Cell, error) {
	return catalog.Get(p.CellName, p.Rotation)
}

// checkInBounds verifies a cell's footprint, stamped at anchor, fits
// within dims. Returns ErrOutOfBoundsStamp otherwise.
func checkInBounds(dims grid.Dims, anchor grid.Coord, shape grid.Dims) error {
	maxY, maxZ, maxX := anchor.Y+shape.H-1, anchor.Z+shape.D-1, anchor.X+shape.W-1
	if anchor.Y < 0 || anchor.Z < 0 || anchor.X < 0 ||
		maxY >= dims.H || maxZ >= dims.D || maxX >= dims.W {
		return fmt.Errorf("%w: anchor %v shape %v exceeds dims %v",
			ErrOutOfBoundsStamp, anchor, shape, dims)
	}
	return nil
}

// InitialPlacement lays cells out in a single row along the X axis at
// y=z=0, in netlist order, separated by Spacing (spec.md §4.2). When
// dims is nil, dimensions are estimated from the cells used; when
// non-nil, it must describe a non-degenerate 3-tuple or
// ErrInvalidDimensions is returned.
func InitialPlacement(nl netlist.Netlist, catalog *cell.Catalog, dims *grid.Dims) (Placements, grid.Dims, error) {
	cells := make([]*cell.Cell, len(nl))
	for i, inst := range nl {
		c, err := catalog.Get(inst.CellName, 0)
		if err != nil {
			return nil, grid.Dims{}, err
		}
		cells[i] = c
	}

	var resolved grid.Dims
	if dims == nil {
		resolved = estimateDimensions(cells)
	} else {
		if dims.H <= 0 || dims.D <= 0 || dims.W <= 0 {
			return nil, grid.Dims{}, fmt.Errorf("%w: %v", ErrInvalidDimensions, *dims)
		}
		resolved = *dims
	}

	placements := make(Placements, len(nl))
	x := 0
	for i, inst := range nl {
		shape := cells[i].Blocks.Dims()
		anchor := grid.Coord{Y: 0, Z: 0, X: x}
		placements[i] = Placement{
			CellName: inst.CellName,
			Anchor:   anchor,
			Rotation: 0,
			Pins:     inst.Pins,
		}
		x += shape.W + Spacing
	}

	return placements, resolved, nil
}

func estimateDimensions(cells []*cell.Cell) grid.Dims {
	maxHeight := 0
	widthEstimate := 0
	for _, c := range cells {
		shape := c.Blocks.Dims()
		if shape.H > maxHeight {
			maxHeight = shape.H
		}
		maxCellWidth := shape.W
		if shape.D > maxCellWidth {
			maxCellWidth = shape.D
		}
		widthEstimate += maxCellWidth + Spacing
	}
	return grid.Dims{H: maxHeight, D: widthEstimate, W: widthEstimate}
}

// EstimateWireLengths computes, for each net, the half-perimeter of the
// bounding box of its pins' global coordinates (spec.md §4.2). Nets with
// a single pin contribute 0.
func EstimateWireLengths(nl netlist.Netlist, catalog *cell.Catalog, placements Placements) (map[string]int, error) {
	type bbox struct {
		minY, maxY, minZ, maxZ, minX, maxX int
		seen                               bool
	}
	boxes := make(map[string]*bbox)

	for i, inst := range nl {
		p := placements[i]
		c, err := p.cell(catalog)
		if err != nil {
			return nil, err
		}
		for portName, port := range c.Ports {
			netName, ok := inst.Pins[portName]
			if !ok {
				continue
			}
			y := port.Coord.Y + p.Anchor.Y
			z := port.Coord.Z + p.Anchor.Z
			x := port.Coord.X + p.Anchor.X

			b, ok := boxes[netName]
			if !ok {
				b = &bbox{minY: y, maxY: y, minZ: z, maxZ: z, minX: x, maxX: x, seen: true}
				boxes[netName] = b
				continue
			}
			b.minY, b.maxY = minInt(b.minY, y), maxInt(b.maxY, y)
			b.minZ, b.maxZ = minInt(b.minZ, z), maxInt(b.maxZ, z)
			b.minX, b.maxX = minInt(b.minX, x), maxInt(b.maxX, x)
		}
	}

	lengths := make(map[string]int, len(boxes))
	for name, b := range boxes {
		lengths[name] = (b.maxY - b.minY) + (b.maxZ - b.minZ) + (b.maxX - b.minX)
	}
	return lengths, nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// ComputeOccupied stamps each placed cell's non-empty block grid
// (additively) into a fresh occupancy grid of the given dimensions
// (spec.md §4.2).
func ComputeOccupied(nl netlist.Netlist, catalog *cell.Catalog, placements Placements, dims grid.Dims) (*grid.Grid[int], error) {
	occ := grid.New[int](dims)
	for _, p := range placements {
		c, err := p.cell(catalog)
		if err != nil {
			return nil, err
		}
		shape := c.Blocks.Dims()
		if err := checkInBounds(dims, p.Anchor, shape); err != nil {
			return nil, err
		}
		c.Blocks.Each(func(y, z, x int, v int16) {
			if v == 0 {
				return
			}
			grid.AddInt(occ, p.Anchor.Y+y, p.Anchor.Z+z, p.Anchor.X+x, 1)
		})
	}
	return occ, nil
}

// OverlapPenalty sums, over every voxel, the amount in excess of one
// cell occupying it (spec.md §4.2).
func OverlapPenalty(occupancy *grid.Grid[int]) int {
	penalty := 0
	occupancy.Each(func(y, z, x int, v int) {
		if v > 1 {
			penalty += v - 1
		}
	})
	return penalty
}

// Score sums every net's estimated wire length and the placement's
// overlap penalty (spec.md §4.2). Overlap of k cells at one voxel costs
// (k-1) wire-length-units, matching the equal weighting the original
// source uses.
func Score(nl netlist.Netlist, catalog *cell.Catalog, placements Placements, dims grid.Dims) (int, error) {
	lengths, err := EstimateWireLengths(nl, catalog, placements)
	if err != nil {
		return 0, err
	}
	wireTotal := 0
	for _, l := range lengths {
		wireTotal += l
	}

	occ, err := ComputeOccupied(nl, catalog, placements, dims)
	if err != nil {
		return 0, err
	}

	return wireTotal + OverlapPenalty(occ), nil
}

// CreateLayout stamps each cell's block IDs into a fresh grid,
// replacing rather than adding. Later placements overwrite earlier ones
// on overlap; this is an undefined visual result, not an error (spec.md
// §4.2), except that a placement exceeding the layout bounds is always
// rejected.
func CreateLayout(dims grid.Dims, placements Placements, catalog *cell.Catalog) (*grid.Grid[int16], error) {
	out := grid.New[int16](dims)
	for _, p := range placements {
		c, err := p.cell(catalog)
		if err != nil {
			return nil, err
		}
		shape := c.Blocks.Dims()
		if err := checkInBounds(dims, p.Anchor, shape); err != nil {
			return nil, err
		}
		c.Blocks.Each(func(y, z, x int, v int16) {
			if v == 0 {
				return
			}
			out.Set(p.Anchor.Y+y, p.Anchor.Z+z, p.Anchor.X+x, v)
		})
	}
	return out, nil
}

// ShrinkLayout returns the smallest axis-aligned sub-grid containing
// every non-zero voxel. A grid of all zeros yields an empty 0x0x0
// result (spec.md §4.2).
func ShrinkLayout(layout *grid.Grid[int16]) *grid.Grid[int16] {
	dims := layout.Dims()
	minY, minZ, minX := dims.H, dims.D, dims.W
	maxY, maxZ, maxX := -1, -1, -1

	layout.Each(func(y, z, x int, v int16) {
		if v == 0 {
			return
		}
		minY, maxY = minInt(minY, y), maxInt(maxY, y)
		minZ, maxZ = minInt(minZ, z), maxInt(maxZ, z)
		minX, maxX = minInt(minX, x), maxInt(maxX, x)
	})

	if maxY < 0 {
		return grid.New[int16](grid.Dims{})
	}

	shrunk := grid.New[int16](grid.Dims{H: maxY - minY + 1, D: maxZ - minZ + 1, W: maxX - minX + 1})
	for y := minY; y <= maxY; y++ {
		for z := minZ; z <= maxZ; z++ {
			for x := minX; x <= maxX; x++ {
				shrunk.Set(y-minY, z-minZ, x-minX, layout.At(y, z, x))
			}
		}
	}
	return shrunk
}
