package layout

import (
	"math"

	"github.com/splitpack/splitpack/pkg/geom"
	"github.com/splitpack/splitpack/pkg/graph"
)

// Circular is a minimal secondary layout that places the nodes of a
// connected graph evenly on a circle. The radius grows with the sum of
// node diagonals so that neighboring nodes do not collide. Edges are
// drawn straight: existing bend points are cleared.
//
// It is the fallback when no external layout engine is configured and
// the workhorse of the test suite.
type Circular struct {
	// MinSpacing is the minimum arc length reserved per node.
	MinSpacing float64
}

// NewCircular creates a circular layout with a default spacing of 40
// length units per node.
func NewCircular() *Circular {
	return &Circular{MinSpacing: 40}
}

// Call implements [Algorithm].
func (c *Circular) Call(d *graph.Drawing) error {
	nodes := d.Graph().Nodes()
	if len(nodes) == 0 {
		return nil
	}
	if len(nodes) == 1 {
		d.SetPos(nodes[0].ID, geom.Point{})
		c.clearBends(d)
		return nil
	}

	perimeter := 0.0
	for _, v := range nodes {
		s := d.Size(v.ID)
		perimeter += math.Max(math.Hypot(s.W, s.H), c.MinSpacing)
	}
	radius := perimeter / (2 * math.Pi)

	step := 2 * math.Pi / float64(len(nodes))
	for i, v := range nodes {
		ang := float64(i) * step
		d.SetPos(v.ID, geom.Point{
			X: radius * math.Cos(ang),
			Y: radius * math.Sin(ang),
		})
	}
	c.clearBends(d)
	return nil
}

func (c *Circular) clearBends(d *graph.Drawing) {
	if !d.Has(graph.CapEdgeBends) {
		return
	}
	for _, e := range d.Graph().Edges() {
		d.SetBends(e.ID, nil)
	}
}
