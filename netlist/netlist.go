// Package netlist defines the input collaborator contract (spec.md §6):
// an ordered sequence of cell instances, each naming a library cell and
// mapping its pins to net names. Parsing any particular wire format into
// this shape is out of scope; this package only fixes the in-memory
// shape every other component agrees on.
package netlist

// Instance is one placed-cell-to-be: a reference into the cell catalog
// plus the pin-to-net mapping for this particular instance.
type Instance struct {
	CellName string            `json:"cell"`
	Pins     map[string]string `json:"pins"`
}

// Netlist is the ordered sequence of cell instances. Order matters: the
// placer's initial_placement lays cells out in this order, and a
// Placement is aligned 1:1 with it by index (spec.md §3 invariant).
type Netlist []Instance

// CellNames returns the distinct cell names referenced by the netlist,
// in first-seen order. Useful for a caller validating a netlist against
// a catalog before placement.
func (n Netlist) CellNames() []string {
	seen := make(map[string]bool, len(n))
	var names []string
	for _, inst := range n {
		if !seen[inst.CellName] {
			seen[inst.CellName] = true
			names = append(names, inst.CellName)
		}
	}
	return names
}
