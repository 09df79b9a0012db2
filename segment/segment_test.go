package segment

import (
	"testing"

	"github.com/chmodjack/pershing/grid"
)

// TestScenarioS3MSTOnASquare matches spec.md scenario S3: four pins at
// the corners of a 10x10 square. The MST must pick exactly three edges
// of total weight 30, never a diagonal of weight 20.
func TestScenarioS3MSTOnASquare(t *testing.T) {
	pins := []grid.Coord{
		{Y: 0, Z: 0, X: 0},
		{Y: 0, Z: 0, X: 10},
		{Y: 0, Z: 10, X: 0},
		{Y: 0, Z: 10, X: 10},
	}

	edges := MST(pins)
	if len(edges) != 3 {
		t.Fatalf("len(edges) = %d, want 3", len(edges))
	}
	if got := TotalWeight(edges); got != 30 {
		t.Fatalf("total weight = %d, want 30", got)
	}

	for _, e := range edges {
		if grid.Manhattan(e.A, e.B) == 20 {
			t.Fatalf("MST should never include the diagonal (weight 20): %v", e)
		}
	}
}

func TestMSTFewerThanTwoPins(t *testing.T) {
	if got := MST(nil); got != nil {
		t.Fatalf("MST(nil) = %v, want nil", got)
	}
	if got := MST([]grid.Coord{{Y: 0, Z: 0, X: 0}}); got != nil {
		t.Fatalf("MST(single pin) = %v, want nil", got)
	}
}

func TestMSTSpansAllPins(t *testing.T) {
	pins := []grid.Coord{
		{Y: 0, Z: 0, X: 0},
		{Y: 0, Z: 0, X: 1},
		{Y: 0, Z: 0, X: 5},
		{Y: 0, Z: 0, X: 100},
	}
	edges := MST(pins)
	if len(edges) != len(pins)-1 {
		t.Fatalf("len(edges) = %d, want %d (a tree spanning all pins)", len(edges), len(pins)-1)
	}

	// Union-find over the edges should collapse to a single component.
	index := make(map[grid.Coord]int, len(pins))
	for i, p := range pins {
		index[p] = i
	}
	uf := newUnionFind(len(pins))
	for _, e := range edges {
		uf.union(index[e.A], index[e.B])
	}
	root := uf.find(0)
	for i := range pins {
		if uf.find(i) != root {
			t.Fatalf("pin %d not connected to the spanning tree", i)
		}
	}
}
