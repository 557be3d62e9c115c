// Package graphviz adapts the Graphviz layout engines as a secondary
// layout for the component splitter.
//
// The component subgraph is serialized to DOT, laid out by the chosen
// engine, and read back from Graphviz's "plain" output format, which
// lists one node or edge per line with positions in inches.
package graphviz

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/splitpack/splitpack/pkg/geom"
	"github.com/splitpack/splitpack/pkg/graph"
)

// Engine names a Graphviz layout engine.
type Engine string

// Supported engines.
const (
	Dot   Engine = "dot"
	Neato Engine = "neato"
	FDP   Engine = "fdp"
	Circo Engine = "circo"
	Twopi Engine = "twopi"
)

// ValidEngine reports whether name is a supported engine.
func ValidEngine(name string) bool {
	switch Engine(name) {
	case Dot, Neato, FDP, Circo, Twopi:
		return true
	}
	return false
}

// pointsPerInch converts Graphviz plain-format coordinates (inches)
// into drawing length units (points).
const pointsPerInch = 72.0

// Layout runs a Graphviz engine on a connected graph.
type Layout struct {
	engine Engine
}

// New creates a Graphviz-backed secondary layout. An empty engine
// defaults to dot.
func New(engine Engine) *Layout {
	if engine == "" {
		engine = Dot
	}
	return &Layout{engine: engine}
}

// Call lays out the drawing with the configured engine.
func (l *Layout) Call(d *graph.Drawing) error {
	if d.Graph().NodeCount() == 0 {
		return nil
	}

	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.Layout(l.engine))

	g, err := graphviz.ParseBytes([]byte(buildDOT(d)))
	if err != nil {
		return fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.Format("plain"), &buf); err != nil {
		return fmt.Errorf("layout with %s: %w", l.engine, err)
	}
	return applyPlain(d, buf.String())
}

// buildDOT serializes the drawing's topology to DOT. Node sizes are
// forwarded in inches so the engine reserves realistic space.
func buildDOT(d *graph.Drawing) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  node [shape=box, fixedsize=true];\n")
	for _, v := range d.Graph().Nodes() {
		s := d.Size(v.ID)
		w := s.W / pointsPerInch
		h := s.H / pointsPerInch
		if w <= 0 {
			w = 0.5
		}
		if h <= 0 {
			h = 0.5
		}
		fmt.Fprintf(&buf, "  %q [width=%.4f, height=%.4f];\n", v.ID, w, h)
	}
	for _, e := range d.Graph().Edges() {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
	}
	buf.WriteString("}\n")
	return buf.String()
}

// applyPlain parses Graphviz plain output and writes positions and,
// when the drawing carries the bends capability, spline control points
// back onto the drawing. Edge lines are matched to graph edges by
// endpoint pair in insertion order, which covers multi-edges.
func applyPlain(d *graph.Drawing, plain string) error {
	pending := make(map[[2]string][]int)
	if d.Has(graph.CapEdgeBends) {
		for _, e := range d.Graph().Edges() {
			key := [2]string{e.From, e.To}
			pending[key] = append(pending[key], e.ID)
		}
	}

	sc := bufio.NewScanner(strings.NewReader(plain))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		fields := splitPlain(sc.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "node":
			if len(fields) < 4 {
				return fmt.Errorf("malformed plain node line: %q", sc.Text())
			}
			id := fields[1]
			if _, ok := d.Graph().Node(id); !ok {
				continue
			}
			x, errX := strconv.ParseFloat(fields[2], 64)
			y, errY := strconv.ParseFloat(fields[3], 64)
			if errX != nil || errY != nil {
				return fmt.Errorf("malformed plain node line: %q", sc.Text())
			}
			d.SetPos(id, geom.Point{X: x * pointsPerInch, Y: y * pointsPerInch})
		case "edge":
			if !d.Has(graph.CapEdgeBends) {
				continue
			}
			if len(fields) < 4 {
				return fmt.Errorf("malformed plain edge line: %q", sc.Text())
			}
			key := [2]string{fields[1], fields[2]}
			ids := pending[key]
			if len(ids) == 0 {
				continue
			}
			pending[key] = ids[1:]

			n, err := strconv.Atoi(fields[3])
			if err != nil || len(fields) < 4+2*n {
				return fmt.Errorf("malformed plain edge line: %q", sc.Text())
			}
			// The first and last control points sit at the endpoints;
			// the interior ones become bends.
			var bends []geom.Point
			for i := 1; i < n-1; i++ {
				x, errX := strconv.ParseFloat(fields[4+2*i], 64)
				y, errY := strconv.ParseFloat(fields[5+2*i], 64)
				if errX != nil || errY != nil {
					return fmt.Errorf("malformed plain edge line: %q", sc.Text())
				}
				bends = append(bends, geom.Point{X: x * pointsPerInch, Y: y * pointsPerInch})
			}
			d.SetBends(ids[0], bends)
		}
	}
	return sc.Err()
}

// splitPlain splits a plain-format line into fields, honoring the
// double-quoted names Graphviz emits for identifiers with spaces.
func splitPlain(line string) []string {
	var fields []string
	i := 0
	for i < len(line) {
		for i < len(line) && line[i] == ' ' {
			i++
		}
		if i >= len(line) {
			break
		}
		if line[i] == '"' {
			j := i + 1
			for j < len(line) && line[j] != '"' {
				j++
			}
			fields = append(fields, line[i+1:j])
			i = j + 1
			continue
		}
		j := i
		for j < len(line) && line[j] != ' ' {
			j++
		}
		fields = append(fields, line[i:j])
		i = j
	}
	return fields
}
