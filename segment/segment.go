// Package segment implements the Net Segmenter (spec.md §4.4): Kruskal's
// minimum spanning tree over a net's pins, with Manhattan-distance edge
// weights, decomposing each multi-pin net into two-pin segments.
package segment

import (
	"sort"

	"github.com/chmodjack/pershing/grid"
)

// Edge is one segment endpoint pair: the two pins of a net's MST edge.
type Edge struct {
	A, B grid.Coord
}

// MST computes the minimum spanning tree over pins using Kruskal's
// algorithm, with ties broken by enumeration order (spec.md §4.4). Nets
// with fewer than two pins return no edges; callers should omit such
// nets from the routing problem entirely, matching the original source.
func MST(pins []grid.Coord) []Edge {
	if len(pins) < 2 {
		return nil
	}

	type candidate struct {
		i, j   int
		weight int
	}
	candidates := make([]candidate, 0, len(pins)*(len(pins)-1)/2)
	for i := 0; i < len(pins); i++ {
		for j := i + 1; j < len(pins); j++ {
			candidates = append(candidates, candidate{i, j, grid.Manhattan(pins[i], pins[j])})
		}
	}

	// Stable sort preserves enumeration order among equal weights,
	// matching the tie-breaking spec.md §4.4 calls for.
	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].weight < candidates[b].weight
	})

	uf := newUnionFind(len(pins))
	var edges []Edge
	for _, c := range candidates {
		if uf.find(c.i) != uf.find(c.j) {
			uf.union(c.i, c.j)
			edges = append(edges, Edge{A: pins[c.i], B: pins[c.j]})
		}
	}

	return edges
}

// TotalWeight sums the Manhattan weight of a set of edges. Used by
// tests to check MST optimality against an independently computed MST
// (spec.md invariant 5).
func TotalWeight(edges []Edge) int {
	total := 0
	for _, e := range edges {
		total += grid.Manhattan(e.A, e.B)
	}
	return total
}

type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &unionFind{parent: parent, rank: make([]int, n)}
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return
	}
	if u.rank[ra] < u.rank[rb] {
		ra, rb = rb, ra
	}
	u.parent[rb] = ra
	if u.rank[ra] == u.rank[rb] {
		u.rank[ra]++
	}
}
