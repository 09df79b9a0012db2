// Package pinresolve implements the Pin Resolver (spec.md §4.3): mapping
// each net name to the set of absolute pin coordinates its instances
// contribute.
package pinresolve

import (
	"github.com/chmodjack/pershing/cell"
	"github.com/chmodjack/pershing/grid"
	"github.com/chmodjack/pershing/netlist"
	"github.com/chmodjack/pershing/placer"
)

// Resolve iterates each placed cell's port dictionary (not its full
// block grid, so the cost is O(pins) rather than O(voxels)) and groups
// the resulting absolute coordinates by net name.
func Resolve(nl netlist.Netlist, catalog *cell.Catalog, placements placer.Placements) (map[string][]grid.Coord, error) {
	netPins := make(map[string][]grid.Coord)

	for i, inst := range nl {
		p := placements[i]
		c, err := catalog.Get(p.CellName, p.Rotation)
		if err != nil {
			return nil, err
		}
		for portName, port := range c.Ports {
			netName, ok := inst.Pins[portName]
			if !ok {
				continue
			}
			coord := grid.Coord{
				Y: port.Coord.Y + p.Anchor.Y,
				Z: port.Coord.Z + p.Anchor.Z,
				X: port.Coord.X + p.Anchor.X,
			}
			netPins[netName] = append(netPins[netName], coord)
		}
	}

	return netPins, nil
}
