package route

import (
	"github.com/chmodjack/pershing/blockvocab"
	"github.com/chmodjack/pershing/grid"
)

// Extract paints a routing's final wire onto a copy of the placed
// layout: a conductor block at every path voxel, and, only when the
// path voxel's own Y level is 4 or 1, a Y-conditioned substrate variant
// directly beneath it (spec.md §6). Other Y levels get no substrate
// block, matching the original source exactly.
func Extract(routing Routing, placedLayout *grid.Grid[int16], vocab *blockvocab.Vocabulary) *grid.Grid[int16] {
	out := placedLayout.Clone()
	conductor := vocab.Conductor()

	for _, net := range routing {
		for _, seg := range net.Segments {
			for _, c := range seg.Path {
				out.SetCoord(c, conductor)

				below := grid.Coord{Y: c.Y - 1, Z: c.Z, X: c.X}
				if !out.Dims().Contains(below.Y, below.Z, below.X) {
					continue
				}

				switch c.Y {
				case 4:
					out.SetCoord(below, vocab.SubstrateUpper())
				case 1:
					out.SetCoord(below, vocab.SubstrateLower())
				}
			}
		}
	}

	return out
}
