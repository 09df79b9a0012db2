package route

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/chmodjack/pershing/blockvocab"
	"github.com/chmodjack/pershing/grid"
)

// segmentRecord is a segment stripped of its recomputable Wire and
// Violation grids (spec.md §6 Persistence of routings).
type segmentRecord struct {
	Pins [2]grid.Coord `json:"pins"`
	Path []grid.Coord  `json:"path"`
}

type netRecord struct {
	Pins     []grid.Coord    `json:"pins"`
	Segments []segmentRecord `json:"segments"`
}

// Serialize writes a routing as two self-describing JSON lines: the
// routing with Wire and Violation stripped, then the layout shape
// (spec.md §6). Round-tripping through Serialize/Deserialize preserves
// every segment's {net, pins, path} and allows full downstream use.
func Serialize(w io.Writer, routing Routing, dims grid.Dims) error {
	records := make(map[string]netRecord, len(routing))
	for name, net := range routing {
		segments := make([]segmentRecord, len(net.Segments))
		for i, seg := range net.Segments {
			segments[i] = segmentRecord{Pins: seg.Pins, Path: seg.Path}
		}
		records[name] = netRecord{Pins: net.Pins, Segments: segments}
	}

	line1, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("route: marshal routing: %w", err)
	}
	line2, err := json.Marshal(dims)
	if err != nil {
		return fmt.Errorf("route: marshal dims: %w", err)
	}

	if _, err := fmt.Fprintln(w, string(line1)); err != nil {
		return fmt.Errorf("route: write routing line: %w", err)
	}
	if _, err := fmt.Fprintln(w, string(line2)); err != nil {
		return fmt.Errorf("route: write dims line: %w", err)
	}
	return nil
}

// Deserialize reads back a routing written by Serialize, reconstructing
// each segment's Wire and Violation grids from its path and pins via
// NetToWireAndViolation (spec.md §6).
func Deserialize(r io.Reader, vocab *blockvocab.Vocabulary) (Routing, grid.Dims, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !scanner.Scan() {
		return nil, grid.Dims{}, fmt.Errorf("route: missing routing line: %w", scanner.Err())
	}
	line1 := scanner.Bytes()
	records := make(map[string]netRecord)
	if err := json.Unmarshal(line1, &records); err != nil {
		return nil, grid.Dims{}, fmt.Errorf("route: unmarshal routing: %w", err)
	}

	if !scanner.Scan() {
		return nil, grid.Dims{}, fmt.Errorf("route: missing dims line: %w", scanner.Err())
	}
	var dims grid.Dims
	if err := json.Unmarshal(scanner.Bytes(), &dims); err != nil {
		return nil, grid.Dims{}, fmt.Errorf("route: unmarshal dims: %w", err)
	}

	routing := make(Routing, len(records))
	for name, rec := range records {
		segments := make([]*Segment, len(rec.Segments))
		for i, sr := range rec.Segments {
			wire, violation := NetToWireAndViolation(sr.Path, dims, []grid.Coord{sr.Pins[0], sr.Pins[1]}, vocab)
			segments[i] = &Segment{Pins: sr.Pins, Path: sr.Path, Wire: wire, Violation: violation}
		}
		routing[name] = &Net{Pins: rec.Pins, Segments: segments}
	}

	return routing, dims, nil
}
