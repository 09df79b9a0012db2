package route

import (
	"context"
	"math/rand"
	"sort"

	"github.com/chmodjack/pershing/blockvocab"
	"github.com/chmodjack/pershing/grid"
)

// RipUpWeights carries the rip-up loop's scoring coefficients and
// violation cost (spec.md §4.8). Segment pin count and via count are
// fixed at 2 and 0 respectively per spec.md §4.8 (no vias are modeled).
type RipUpWeights struct {
	Alpha         float64
	Beta          float64
	Gamma         float64
	NormMargin    float64
	ViolationCost int
	MaxIterations int
}

// DefaultRipUpWeights matches spec.md §4.8's literals.
func DefaultRipUpWeights() RipUpWeights {
	return RipUpWeights{Alpha: 3, Beta: 0.1, Gamma: 1, NormMargin: 0.1, ViolationCost: DefaultViolationCost, MaxIterations: 1000}
}

// IterationStat records one rip-up iteration's outcome, consumed by the
// run report (SPEC_FULL.md §4.11).
type IterationStat struct {
	Iteration        int
	ViolationsBefore int
	SegmentsRipped   int
	ViolationsAfter  int
}

// score computes a segment's rip-up score: α·violations + β·(vias−pins)
// + γ·(length/lower_bound), with vias=0 and pins=2 fixed (spec.md
// §4.8).
func score(seg *Segment, usage *grid.Grid[bool], w RipUpWeights) float64 {
	violations := grid.AndCount(seg.Violation, usage)
	lowerBound := grid.Manhattan(seg.Pins[0], seg.Pins[1])
	if lowerBound < 1 {
		lowerBound = 1
	}
	length := len(seg.Path)
	return w.Alpha*float64(violations) + w.Beta*float64(0-2) + w.Gamma*(float64(length)/float64(lowerBound))
}

// normalize min-max scales scores into [margin, 1-margin]. A flat list
// (all scores equal) maps every entry to margin.
func normalize(scores []float64, margin float64) []float64 {
	out := make([]float64, len(scores))
	if len(scores) == 0 {
		return out
	}

	lo, hi := scores[0], scores[0]
	for _, s := range scores {
		if s < lo {
			lo = s
		}
		if s > hi {
			hi = s
		}
	}

	span := hi - lo
	for i, s := range scores {
		if span == 0 {
			out[i] = margin
			continue
		}
		out[i] = margin + (1-2*margin)*(s-lo)/span
	}
	return out
}

// RipUp iteratively rescopes and re-routes a routing's worst-violating
// segments until no violations remain, the iteration cap is hit, or ctx
// is cancelled (spec.md §4.8). It returns the routing as the last
// completed iteration left it (not necessarily the one with the fewest
// violations seen) and the per-iteration stats accumulated so far.
func RipUp(ctx context.Context, routing Routing, layout *grid.Grid[int16], dims grid.Dims, rng *rand.Rand, vocab *blockvocab.Vocabulary, w RipUpWeights) (Routing, []IterationStat) {
	current := routing.Clone()
	var stats []IterationStat

	for iter := 1; w.MaxIterations <= 0 || iter <= w.MaxIterations; iter++ {
		select {
		case <-ctx.Done():
			return current, stats
		default:
		}

		usage := GenerateUsageMatrix(layout, current, nil)
		violationsBefore := current.TotalViolations(usage)
		if violationsBefore == 0 {
			break
		}

		type scored struct {
			key        Key
			seg        *Segment
			normalized float64
		}
		var keys []Key
		for name, net := range current {
			for i := range net.Segments {
				keys = append(keys, Key{Net: name, Index: i})
			}
		}
		// Map iteration order is randomized per process; sort so the
		// PRNG draws below consume in an order fixed by the routing's
		// contents alone, keeping a seeded run reproducible.
		sort.SliceStable(keys, func(i, j int) bool {
			if keys[i].Net != keys[j].Net {
				return keys[i].Net < keys[j].Net
			}
			return keys[i].Index < keys[j].Index
		})

		var all []scored
		var rawScores []float64
		for _, key := range keys {
			seg := current[key.Net].Segments[key.Index]
			rawScores = append(rawScores, score(seg, usage, w))
			all = append(all, scored{key: key})
		}
		normalized := normalize(rawScores, w.NormMargin)
		for i := range all {
			all[i].normalized = normalized[i]
			all[i].seg = current[all[i].key.Net].Segments[all[i].key.Index]
		}

		selected := make(map[Key]bool)
		var toRipUp []scored
		for _, s := range all {
			if rng.Float64() < s.normalized {
				selected[s.key] = true
				toRipUp = append(toRipUp, s)
			}
		}

		sort.SliceStable(toRipUp, func(i, j int) bool {
			return toRipUp[i].normalized > toRipUp[j].normalized
		})

		rerouteUsage := GenerateUsageMatrix(layout, current, selected)
		for _, s := range toRipUp {
			seg := s.seg
			path, err := MazeRoute(seg.Pins[0], seg.Pins[1], dims, rerouteUsage, w.ViolationCost)
			if err != nil {
				continue
			}

			wire, violation := NetToWireAndViolation(path, dims, []grid.Coord{seg.Pins[0], seg.Pins[1]}, vocab)
			seg.Path = path
			seg.Wire = wire
			seg.Violation = violation

			grid.Or(rerouteUsage, wireOccupancy(wire))
		}

		finalUsage := GenerateUsageMatrix(layout, current, nil)
		violationsAfter := current.TotalViolations(finalUsage)

		stats = append(stats, IterationStat{
			Iteration:        iter,
			ViolationsBefore: violationsBefore,
			SegmentsRipped:   len(toRipUp),
			ViolationsAfter:  violationsAfter,
		})

		if violationsAfter == 0 {
			break
		}
	}

	return current, stats
}
