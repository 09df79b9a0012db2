// Package report renders a run's placement and routing results as a
// human-readable summary, grounded on verify.VerificationReport's
// WriteReport and core/util.go's PrintState use of go-pretty/table.
package report

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rs/xid"

	"github.com/chmodjack/pershing/route"
)

// LevelTrace is a custom slog level between Info and Warn, grounded on
// core/util.go's LevelTrace, used to log one line per rip-up iteration.
const LevelTrace slog.Level = slog.LevelInfo + 1

// Trace logs msg at LevelTrace with the given structured args.
func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}

// ScoreBreakdown is the placer's final score split into its two
// components (spec.md §4.2).
type ScoreBreakdown struct {
	WireLength     int
	OverlapPenalty int
}

func (s ScoreBreakdown) Total() int {
	return s.WireLength + s.OverlapPenalty
}

// RunReport aggregates one run's placement score and rip-up history
// (SPEC_FULL.md §4.11). RunID is a sortable, globally unique identifier
// assigned when the report is created.
type RunReport struct {
	RunID      string
	Score      ScoreBreakdown
	Iterations []route.IterationStat
}

// NewRunReport builds a RunReport, stamping it with a fresh xid-based
// RunID.
func NewRunReport(score ScoreBreakdown, iterations []route.IterationStat) *RunReport {
	return &RunReport{
		RunID:      xid.New().String(),
		Score:      score,
		Iterations: iterations,
	}
}

// WriteTo renders a two-table summary to w: the score breakdown, and
// the per-iteration rip-up history, plus a trailing slog trace line per
// iteration.
func (r *RunReport) WriteTo(w io.Writer) {
	fmt.Fprintf(w, "Run %s\n", r.RunID)

	scoreTable := table.NewWriter()
	scoreTable.SetOutputMirror(w)
	scoreTable.SetTitle("Score Breakdown")
	scoreTable.AppendHeader(table.Row{"Component", "Value"})
	scoreTable.AppendRow(table.Row{"Wire Length", r.Score.WireLength})
	scoreTable.AppendRow(table.Row{"Overlap Penalty", r.Score.OverlapPenalty})
	scoreTable.AppendFooter(table.Row{"Total", r.Score.Total()})
	scoreTable.Render()
	fmt.Fprintln(w)

	iterTable := table.NewWriter()
	iterTable.SetOutputMirror(w)
	iterTable.SetTitle("Rip-Up Iterations")
	iterTable.AppendHeader(table.Row{"Iteration", "Violations Before", "Segments Ripped", "Violations After"})
	for _, stat := range r.Iterations {
		iterTable.AppendRow(table.Row{stat.Iteration, stat.ViolationsBefore, stat.SegmentsRipped, stat.ViolationsAfter})
		Trace("rip-up iteration", "run", r.RunID, "iteration", stat.Iteration,
			"violations_before", stat.ViolationsBefore, "segments_ripped", stat.SegmentsRipped,
			"violations_after", stat.ViolationsAfter)
	}
	iterTable.Render()
}
