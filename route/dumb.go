package route

import "github.com/chmodjack/pershing/grid"

// DumbRoute produces an L-shaped, single-Y-layer path between a and b:
// it first walks X at a's Y/Z plane, then walks Z at b's final X
// (spec.md §4.5). The corner voxel is emitted once, so the path holds
// |Δx|+|Δz|+1 voxels. It ignores b's Y layer entirely (spec.md §9 Open
// Question 2): if the two pins sit on different Y layers, bridging the
// gap is left to the first maze-router rip-up.
func DumbRoute(a, b grid.Coord) []grid.Coord {
	var path []grid.Coord

	startX, stopX := minInt(a.X, b.X), maxInt(a.X, b.X)
	for x := startX; x <= stopX; x++ {
		path = append(path, grid.Coord{Y: a.Y, Z: a.Z, X: x})
	}

	startZ, stopZ := minInt(a.Z, b.Z), maxInt(a.Z, b.Z)
	for z := startZ; z <= stopZ; z++ {
		if z == a.Z {
			continue // corner (a.Y, a.Z, b.X) was already emitted by the X walk
		}
		path = append(path, grid.Coord{Y: a.Y, Z: z, X: b.X})
	}

	return path
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
