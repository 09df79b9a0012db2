package main

import (
	"encoding/json"
	"fmt"

	"github.com/chmodjack/pershing/cell"
	"github.com/chmodjack/pershing/grid"
	"github.com/chmodjack/pershing/netlist"
)

// cellFixture is the on-disk shape of one library cell: a dense 3D
// block array ([y][z][x]) and a named port map. The wire format itself
// is a non-goal (spec.md §1); this shape exists only so the CLI has
// something concrete to demonstrate the pipeline against.
type cellFixture struct {
	Blocks [][][]int16           `json:"blocks"`
	Ports  map[string]portFixture `json:"ports"`
}

type portFixture struct {
	Y      int    `json:"y"`
	Z      int    `json:"z"`
	X      int    `json:"x"`
	Facing string `json:"facing"`
}

// loadLibrary parses a JSON-encoded map of cell name to cellFixture into
// a cell.Library.
func loadLibrary(data []byte) (cell.Library, error) {
	var raw map[string]cellFixture
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("fixture: unmarshal library: %w", err)
	}

	library := make(cell.Library, len(raw))
	for name, fx := range raw {
		c, err := fx.toCell(name)
		if err != nil {
			return nil, fmt.Errorf("fixture: cell %q: %w", name, err)
		}
		library[name] = c
	}
	return library, nil
}

func (fx cellFixture) toCell(name string) (*cell.Cell, error) {
	h := len(fx.Blocks)
	if h == 0 {
		return nil, fmt.Errorf("empty block grid")
	}
	d := len(fx.Blocks[0])
	w := 0
	if d > 0 {
		w = len(fx.Blocks[0][0])
	}

	blocks := grid.New[int16](grid.Dims{H: h, D: d, W: w})
	for y, plane := range fx.Blocks {
		for z, row := range plane {
			for x, v := range row {
				blocks.Set(y, z, x, v)
			}
		}
	}

	ports := make(map[string]cell.Port, len(fx.Ports))
	for pinName, pf := range fx.Ports {
		facing, err := cell.ParseFacing(pf.Facing)
		if err != nil {
			return nil, fmt.Errorf("port %q: %w", pinName, err)
		}
		ports[pinName] = cell.Port{Coord: grid.Coord{Y: pf.Y, Z: pf.Z, X: pf.X}, Facing: facing}
	}

	return cell.New(name, blocks, ports), nil
}

// loadNetlist parses a JSON-encoded netlist.Netlist.
func loadNetlist(data []byte) (netlist.Netlist, error) {
	var nl netlist.Netlist
	if err := json.Unmarshal(data, &nl); err != nil {
		return nil, fmt.Errorf("fixture: unmarshal netlist: %w", err)
	}
	return nl, nil
}
