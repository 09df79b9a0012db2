package route

import (
	"container/heap"

	"github.com/chmodjack/pershing/grid"
)

// DefaultViolationCost is the cost spec.md §4.7 charges for entering a
// violating voxel, replacing (not adding to) the move's nominal cost.
// Callers that want a different weighting (engineconfig.EngineConfig)
// pass their own value to MazeRoute.
const DefaultViolationCost = 1000

// mazeMove is one of the six moves available to the maze router: a
// (Δy, Δz, Δx) step and its nominal cost.
type mazeMove struct {
	dy, dz, dx int
	cost       int
}

var mazeMoves = [6]mazeMove{
	{0, 0, 1, 1},  // East
	{0, 0, -1, 1}, // West
	{0, 1, 0, 1},  // North
	{0, -1, 0, 1}, // South
	{3, 0, 0, 3},  // Up
	{-3, 0, 0, 3}, // Down
}

// mazeHeapEntry is one candidate pop in the best-first search's
// min-heap: a voxel and the tentative cost it was pushed with. Stale
// entries (pushed before a cheaper path to the same voxel was found)
// are tolerated and discarded on pop once the voxel is visited.
type mazeHeapEntry struct {
	coord grid.Coord
	cost  int
}

type mazeHeap []mazeHeapEntry

func (h mazeHeap) Len() int            { return len(h) }
func (h mazeHeap) Less(i, j int) bool  { return h[i].cost < h[j].cost }
func (h mazeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *mazeHeap) Push(x interface{}) { *h = append(*h, x.(mazeHeapEntry)) }
func (h *mazeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	entry := old[n-1]
	*h = old[:n-1]
	return entry
}

// isViolating reports whether entering candidate would conflict with
// the usage matrix under the §4.6 eight-neighbor pattern. Both the
// candidate itself and any neighbor coinciding with one of the search's
// two endpoints are exempt, so a path's own pins never self-block or
// get charged a foreign violation (spec.md §4.7).
func isViolating(candidate grid.Coord, dims grid.Dims, usage *grid.Grid[bool], a, b grid.Coord) bool {
	if candidate == a || candidate == b {
		return false
	}
	for _, dy := range violationLevels {
		for _, dzdx := range violationNeighborOffsets {
			ny, nz, nx := candidate.Y+dy, candidate.Z+dzdx[0], candidate.X+dzdx[1]
			if !dims.Contains(ny, nz, nx) {
				continue
			}
			neighbor := grid.Coord{Y: ny, Z: nz, X: nx}
			if neighbor == a || neighbor == b {
				continue
			}
			if usage.At(ny, nz, nx) {
				return true
			}
		}
	}
	return false
}

// MazeRoute finds a least-cost path from a to b over dims, charging
// violationCost wherever a candidate voxel conflicts with usage
// (spec.md §4.7). Returns ErrUnreachableEndpoints if b cannot be
// reached.
func MazeRoute(a, b grid.Coord, dims grid.Dims, usage *grid.Grid[bool], violationCost int) ([]grid.Coord, error) {
	if !dims.Contains(a.Y, a.Z, a.X) || !dims.Contains(b.Y, b.Z, b.X) {
		return nil, ErrUnreachableEndpoints
	}

	bestCost := grid.New[int](dims)
	bestCost.Fill(-1)
	backtrace := grid.New[int](dims)
	backtrace.Fill(-1)

	bestCost.SetCoord(a, 0)

	h := &mazeHeap{{coord: a, cost: 0}}
	heap.Init(h)

	visited := grid.New[bool](dims)

	for h.Len() > 0 {
		entry := heap.Pop(h).(mazeHeapEntry)
		cur := entry.coord

		if visited.AtCoord(cur) {
			continue
		}
		visited.SetCoord(cur, true)

		if cur == b {
			break
		}

		for dir, mv := range mazeMoves {
			next := grid.Coord{Y: cur.Y + mv.dy, Z: cur.Z + mv.dz, X: cur.X + mv.dx}
			if !dims.Contains(next.Y, next.Z, next.X) || visited.AtCoord(next) {
				continue
			}

			cost := mv.cost
			if isViolating(next, dims, usage, a, b) {
				cost = violationCost
			}

			candidateCost := entry.cost + cost
			known := bestCost.AtCoord(next)
			if known != -1 && known <= candidateCost {
				continue
			}

			bestCost.SetCoord(next, candidateCost)
			backtrace.SetCoord(next, oppositeDirection(dir))
			heap.Push(h, mazeHeapEntry{coord: next, cost: candidateCost})
		}
	}

	if !visited.AtCoord(b) {
		return nil, ErrUnreachableEndpoints
	}

	return reconstructPath(backtrace, a, b), nil
}

// oppositeDirection maps a move index to the index of the move that
// reverses it, so backtrace[v] names the direction to take from v to
// head back toward a.
func oppositeDirection(dir int) int {
	switch dir {
	case 0:
		return 1
	case 1:
		return 0
	case 2:
		return 3
	case 3:
		return 2
	case 4:
		return 5
	default:
		return 4
	}
}

func reconstructPath(backtrace *grid.Grid[int], a, b grid.Coord) []grid.Coord {
	path := []grid.Coord{b}
	cur := b
	for cur != a {
		dir := backtrace.AtCoord(cur)
		mv := mazeMoves[dir]
		cur = grid.Coord{Y: cur.Y + mv.dy, Z: cur.Z + mv.dz, X: cur.X + mv.dx}
		path = append(path, cur)
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
