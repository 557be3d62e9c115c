// Package layout computes drawings for graphs whose underlying
// structure may be disconnected.
//
// The central type is [Splitter]: it splits a graph into its connected
// components, delegates the layout of each component to a secondary
// [Algorithm], rotates every component so that its bounding rectangle
// is minimal, and packs the resulting boxes into one compact drawing
// close to a target aspect ratio.
//
//	secondary := layout.NewCircular()
//	splitter := layout.NewSplitter(secondary, layout.WithBorder(30))
//	if err := splitter.Call(drawing); err != nil {
//	    return err
//	}
//
// The drawing is mutated in place; the graph topology is never touched.
package layout

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/splitpack/splitpack/pkg/graph"
	"github.com/splitpack/splitpack/pkg/pack"
)

// Defaults for the splitter configuration.
const (
	// DefaultTargetRatio is the desired width/height of the assembled
	// drawing.
	DefaultTargetRatio = 1.0

	// DefaultBorder is the padding, in drawing length units, added to
	// every component's bounding box on every side before packing.
	DefaultBorder = 30
)

// Algorithm lays out a single connected graph: it assigns node
// positions and, when the drawing carries the bends capability, edge
// bend polylines. Implementations must not mutate the topology.
type Algorithm interface {
	Call(d *graph.Drawing) error
}

// Splitter reassembles independently laid-out connected components
// into one coherent drawing. See the package documentation for the
// pipeline it runs.
type Splitter struct {
	secondary Algorithm
	packer    pack.Packer
	ratio     float64
	border    int
	logger    *log.Logger
}

// Option configures a Splitter.
type Option func(*Splitter)

// WithPacker replaces the default row-tiling packer.
func WithPacker(p pack.Packer) Option {
	return func(s *Splitter) { s.packer = p }
}

// WithTargetRatio sets the desired width/height of the assembled
// drawing. Values <= 0 fall back to the packer's default handling.
func WithTargetRatio(ratio float64) Option {
	return func(s *Splitter) { s.ratio = ratio }
}

// WithBorder sets the padding added around every component box.
func WithBorder(border int) Option {
	return func(s *Splitter) { s.border = border }
}

// WithLogger attaches a logger for debug output.
func WithLogger(logger *log.Logger) Option {
	return func(s *Splitter) { s.logger = logger }
}

// NewSplitter creates a splitter that delegates per-component layout
// to secondary. A nil secondary is allowed and turns Call into a no-op.
func NewSplitter(secondary Algorithm, opts ...Option) *Splitter {
	s := &Splitter{
		secondary: secondary,
		packer:    pack.NewTileToRows(),
		ratio:     DefaultTargetRatio,
		border:    DefaultBorder,
		logger:    log.NewWithOptions(io.Discard, log.Options{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
