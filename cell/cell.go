// Package cell implements the library-cell data model: a cell's dense
// block footprint, its named pins, and the rot90 operation the catalog
// uses to precompute all four yaw rotations (spec.md §3, §4.1).
package cell

import "github.com/chmodjack/pershing/grid"

// Port is a single named pin on a cell: its local coordinate within the
// cell's block grid, and the direction it emits wire in.
type Port struct {
	Coord  grid.Coord
	Facing Facing
}

// Cell is an immutable library primitive after construction: a dense
// block grid plus a port map. Cells are produced once by the catalog and
// shared read-only across every placement that uses them.
type Cell struct {
	Name   string
	Blocks *grid.Grid[int16]
	Ports  map[string]Port
}

// New constructs a Cell from its blocks and ports. It does not copy
// blocks; callers should not mutate the grid afterward.
func New(name string, blocks *grid.Grid[int16], ports map[string]Port) *Cell {
	return &Cell{Name: name, Blocks: blocks, Ports: ports}
}

// rot90 returns a new Cell rotated 90 degrees about the vertical (Y)
// axis: (y,z,x) -> (y,x,D-1-z), with port coordinates and facings
// rotated the same way. Applying rot90 four times returns a cell
// element-wise equal to the original (spec.md invariant 1).
func (c *Cell) rot90() *Cell {
	oldDims := c.Blocks.Dims()
	newDims := grid.Dims{H: oldDims.H, D: oldDims.W, W: oldDims.D}
	newBlocks := grid.New[int16](newDims)

	for y := 0; y < oldDims.H; y++ {
		for z := 0; z < oldDims.D; z++ {
			for x := 0; x < oldDims.W; x++ {
				newBlocks.Set(y, x, oldDims.D-1-z, c.Blocks.At(y, z, x))
			}
		}
	}

	newPorts := make(map[string]Port, len(c.Ports))
	for name, p := range c.Ports {
		newCoord := grid.Coord{
			Y: p.Coord.Y,
			Z: p.Coord.X,
			X: oldDims.D - 1 - p.Coord.Z,
		}
		newPorts[name] = Port{Coord: newCoord, Facing: p.Facing.rotated90()}
	}

	return &Cell{Name: c.Name, Blocks: newBlocks, Ports: newPorts}
}

// Rotations precomputes the four yaw rotations of a library cell,
// indexed 0..3 (rotation 0 is the cell itself). Grounded on
// pregenerate_cells in the original placer.
func Rotations(c *Cell) [4]*Cell {
	var out [4]*Cell
	out[0] = c
	out[1] = out[0].rot90()
	out[2] = out[1].rot90()
	out[3] = out[2].rot90()
	return out
}
