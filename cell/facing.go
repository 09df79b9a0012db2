package cell

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// facingTitleCaser normalizes facing names to the canonical "North",
// "East", ... spelling before comparison. Grounded on the teacher's
// titleCaser in core/emu.go, which normalizes opcode mnemonics the same
// way.
var facingTitleCaser = cases.Title(language.English)

// Facing is the cardinal direction a pin emits in, within the cell's
// local Z/X plane. Grounded on the teacher's cgra.Side: a small closed
// enumeration with a String() method and a parser, instead of the bare
// strings the original Python source used.
type Facing int

const (
	North Facing = iota
	East
	South
	West
)

var facingNames = [...]string{"North", "East", "South", "West"}

func (f Facing) String() string {
	if int(f) < 0 || int(f) >= len(facingNames) {
		return fmt.Sprintf("Facing(%d)", int(f))
	}
	return facingNames[f]
}

// ParseFacing parses a facing name case-insensitively (cell libraries in
// the wild spell it "north", "North" or "NORTH" interchangeably).
func ParseFacing(s string) (Facing, error) {
	titled := facingTitleCaser.String(strings.ToLower(s))
	for i, name := range facingNames {
		if name == titled {
			return Facing(i), nil
		}
	}
	return 0, fmt.Errorf("cell: unknown facing %q", s)
}

// Delta returns the (dz, dx) unit offset a pin facing f points toward,
// matching the original source's extend_pin direction table.
func (f Facing) Delta() (dz, dx int) {
	switch f {
	case North:
		return -1, 0
	case South:
		return 1, 0
	case West:
		return 0, -1
	case East:
		return 0, 1
	default:
		panic(fmt.Sprintf("cell: invalid facing %d", f))
	}
}

// rotated90 returns the facing reached by rotating f 90 degrees about
// the vertical axis, following the same (dz,dx) -> (dx,-dz) transform
// rot90 applies to coordinates. The cycle is North -> East -> South ->
// West -> North, and four applications are the identity.
func (f Facing) rotated90() Facing {
	switch f {
	case North:
		return East
	case East:
		return South
	case South:
		return West
	case West:
		return North
	default:
		panic(fmt.Sprintf("cell: invalid facing %d", f))
	}
}
