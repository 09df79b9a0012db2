// Command pershing compiles a demo netlist into a routed 3D layout:
// place, resolve pins, segment nets, route, rip-up, report, persist.
// Wiring grounded on samples/fir/main.go's main().
package main

import (
	"context"
	_ "embed"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"

	"github.com/tebeka/atexit"

	"github.com/chmodjack/pershing/blockvocab"
	"github.com/chmodjack/pershing/cell"
	"github.com/chmodjack/pershing/engineconfig"
	"github.com/chmodjack/pershing/pinresolve"
	"github.com/chmodjack/pershing/placer"
	"github.com/chmodjack/pershing/report"
	"github.com/chmodjack/pershing/route"
)

//go:embed demo_library.json
var demoLibraryJSON []byte

//go:embed demo_netlist.json
var demoNetlistJSON []byte

func main() {
	outPath := flag.String("o", "", "path to persist the final routing to (optional)")
	configPath := flag.String("config", "", "path to an engine config YAML file (optional)")
	flag.Parse()

	cfg := engineconfig.NewEngineConfigBuilder().Build()
	if *configPath != "" {
		f, err := os.Open(*configPath)
		if err != nil {
			fatal("pershing: open config: %v", err)
		}
		defer f.Close()
		cfg, err = engineconfig.LoadEngineConfigYAML(f)
		if err != nil {
			fatal("pershing: load config: %v", err)
		}
	}

	library, err := loadLibrary(demoLibraryJSON)
	if err != nil {
		fatal("pershing: %v", err)
	}
	nl, err := loadNetlist(demoNetlistJSON)
	if err != nil {
		fatal("pershing: %v", err)
	}

	catalog := cell.Build(library)
	vocab := blockvocab.NewVocabulary()

	placements, dims, err := placer.InitialPlacement(nl, catalog, nil)
	if err != nil {
		fatal("pershing: initial placement: %v", err)
	}

	wireLengths, err := placer.EstimateWireLengths(nl, catalog, placements)
	if err != nil {
		fatal("pershing: estimate wire lengths: %v", err)
	}
	totalWireLength := 0
	for _, length := range wireLengths {
		totalWireLength += length
	}

	occupancy, err := placer.ComputeOccupied(nl, catalog, placements, dims)
	if err != nil {
		fatal("pershing: compute occupied: %v", err)
	}
	overlapPenalty := placer.OverlapPenalty(occupancy)

	layout, err := placer.CreateLayout(dims, placements, catalog)
	if err != nil {
		fatal("pershing: create layout: %v", err)
	}

	netPins, err := pinresolve.Resolve(nl, catalog, placements)
	if err != nil {
		fatal("pershing: resolve pins: %v", err)
	}

	routing := route.BuildInitialRouting(netPins, dims, vocab)

	rng := rand.New(rand.NewSource(cfg.Seed))
	weights := route.RipUpWeights{
		Alpha:         cfg.Alpha,
		Beta:          cfg.Beta,
		Gamma:         cfg.Gamma,
		NormMargin:    0.1,
		ViolationCost: cfg.ViolationCost,
		MaxIterations: cfg.MaxIterations,
	}
	routing, iterations := route.RipUp(context.Background(), routing, layout, dims, rng, vocab, weights)

	runReport := report.NewRunReport(report.ScoreBreakdown{
		WireLength:     totalWireLength,
		OverlapPenalty: overlapPenalty,
	}, iterations)
	runReport.WriteTo(os.Stdout)

	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			fatal("pershing: create output: %v", err)
		}
		defer f.Close()
		if err := route.Serialize(f, routing, dims); err != nil {
			fatal("pershing: serialize: %v", err)
		}
	}

	atexit.Exit(0)
}

func fatal(format string, args ...any) {
	slog.Error(fmt.Sprintf(format, args...))
	atexit.Exit(1)
}
