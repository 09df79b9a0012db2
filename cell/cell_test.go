package cell

import (
	"testing"

	"github.com/chmodjack/pershing/grid"
)

// makeAND builds the 1x3x3 AND cell from spec.md scenario S1: two input
// pins at (0,0,0) and (0,2,0), one output at (0,1,2).
func makeAND() *Cell {
	blocks := grid.New[int16](grid.Dims{H: 1, D: 3, W: 3})
	blocks.Set(0, 0, 0, 1)
	blocks.Set(0, 1, 1, 1)
	blocks.Set(0, 2, 0, 1)
	blocks.Set(0, 1, 2, 1)

	ports := map[string]Port{
		"A":   {Coord: grid.Coord{Y: 0, Z: 0, X: 0}, Facing: West},
		"B":   {Coord: grid.Coord{Y: 0, Z: 2, X: 0}, Facing: West},
		"out": {Coord: grid.Coord{Y: 0, Z: 1, X: 2}, Facing: East},
	}

	return New("AND", blocks, ports)
}

func gridsEqual(a, b *grid.Grid[int16]) bool {
	if a.Dims() != b.Dims() {
		return false
	}
	equal := true
	a.Each(func(y, z, x int, v int16) {
		if b.At(y, z, x) != v {
			equal = false
		}
	})
	return equal
}

func TestRotationClosure(t *testing.T) {
	c := makeAND()
	rots := Rotations(c)

	fourth := rots[3].rot90()

	if !gridsEqual(fourth.Blocks, c.Blocks) {
		t.Fatalf("rot90^4 blocks != original blocks")
	}
	if len(fourth.Ports) != len(c.Ports) {
		t.Fatalf("rot90^4 port count = %d, want %d", len(fourth.Ports), len(c.Ports))
	}
	for name, p := range c.Ports {
		got, ok := fourth.Ports[name]
		if !ok {
			t.Fatalf("rot90^4 missing port %q", name)
		}
		if got != p {
			t.Fatalf("rot90^4 port %q = %+v, want %+v", name, got, p)
		}
	}
}

func TestRot90PreservesVoxelCount(t *testing.T) {
	c := makeAND()
	rotated := c.rot90()

	var before, after int
	c.Blocks.Each(func(y, z, x int, v int16) {
		if v != 0 {
			before++
		}
	})
	rotated.Blocks.Each(func(y, z, x int, v int16) {
		if v != 0 {
			after++
		}
	})

	if before != after {
		t.Fatalf("voxel count changed under rotation: %d -> %d", before, after)
	}
}

func TestCatalogBuildAndGet(t *testing.T) {
	lib := Library{"AND": makeAND()}
	catalog := Build(lib)

	for r := 0; r < 4; r++ {
		got, err := catalog.Get("AND", r)
		if err != nil {
			t.Fatalf("Get(AND, %d) error: %v", r, err)
		}
		if got.Name != "AND" {
			t.Fatalf("Get(AND, %d).Name = %q, want AND", r, got.Name)
		}
	}

	if _, err := catalog.Get("NOR", 0); err == nil {
		t.Fatalf("expected ErrUnknownCell for missing cell")
	}

	if _, err := catalog.Get("AND", 4); err == nil {
		t.Fatalf("expected error for rotation index out of range")
	}
}
