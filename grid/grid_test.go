package grid

import "testing"

func TestDimsContains(t *testing.T) {
	d := Dims{H: 2, D: 3, W: 4}

	if !d.Contains(1, 2, 3) {
		t.Fatalf("expected (1,2,3) to be in bounds for %v", d)
	}
	if d.Contains(2, 0, 0) {
		t.Fatalf("expected y=2 to be out of bounds for height 2")
	}
	if d.Contains(0, 3, 0) {
		t.Fatalf("expected z=3 to be out of bounds for depth 3")
	}
	if d.Contains(0, 0, 4) {
		t.Fatalf("expected x=4 to be out of bounds for width 4")
	}
}

func TestGridSetAt(t *testing.T) {
	g := New[int](Dims{H: 2, D: 2, W: 2})
	g.Set(1, 1, 1, 7)
	if got := g.At(1, 1, 1); got != 7 {
		t.Fatalf("At(1,1,1) = %d, want 7", got)
	}
	if got := g.At(0, 0, 0); got != 0 {
		t.Fatalf("At(0,0,0) = %d, want 0 (zero value)", got)
	}
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := New[int](Dims{H: 1, D: 1, W: 1})
	g.Set(0, 0, 0, 5)
	clone := g.Clone()
	clone.Set(0, 0, 0, 9)

	if got := g.At(0, 0, 0); got != 5 {
		t.Fatalf("original mutated via clone: got %d, want 5", got)
	}
}

func TestAddIntAccumulates(t *testing.T) {
	g := New[int](Dims{H: 1, D: 1, W: 1})
	AddInt(g, 0, 0, 0, 1)
	AddInt(g, 0, 0, 0, 1)
	if got := g.At(0, 0, 0); got != 2 {
		t.Fatalf("AddInt accumulation = %d, want 2", got)
	}
}

func TestOrUnionsBooleanGrids(t *testing.T) {
	a := New[bool](Dims{H: 1, D: 1, W: 2})
	b := New[bool](Dims{H: 1, D: 1, W: 2})
	a.Set(0, 0, 0, true)
	b.Set(0, 0, 1, true)

	Or(a, b)

	if !a.At(0, 0, 0) || !a.At(0, 0, 1) {
		t.Fatalf("Or did not union both voxels: %v %v", a.At(0, 0, 0), a.At(0, 0, 1))
	}
}

func TestAndCount(t *testing.T) {
	a := New[bool](Dims{H: 1, D: 1, W: 3})
	b := New[bool](Dims{H: 1, D: 1, W: 3})
	a.Set(0, 0, 0, true)
	a.Set(0, 0, 1, true)
	b.Set(0, 0, 1, true)
	b.Set(0, 0, 2, true)

	if got := AndCount(a, b); got != 1 {
		t.Fatalf("AndCount = %d, want 1", got)
	}
}

func TestManhattan(t *testing.T) {
	got := Manhattan(Coord{0, 0, 0}, Coord{1, 2, 3})
	if got != 6 {
		t.Fatalf("Manhattan = %d, want 6", got)
	}
}
