package layout

import (
	"fmt"
	"slices"

	"github.com/splitpack/splitpack/pkg/graph"
)

// Call lays out the drawing. Without a secondary layout the call is a
// no-op; a graph with zero connected components returns without
// modifying anything. Otherwise every component is copied into an
// isolated subgraph, laid out by the secondary algorithm, copied back,
// and finally the components are rotated and packed into one drawing.
//
// The whole pipeline is synchronous and single-threaded: component
// geometry is accumulated by component index and the packer needs the
// complete box array before anything can be placed.
func (s *Splitter) Call(d *graph.Drawing) error {
	if s.secondary == nil {
		return nil
	}

	ccs := graph.SplitComponents(d.Graph())
	if ccs.Count() == 0 {
		return nil
	}

	for i := 0; i < ccs.Count(); i++ {
		if err := s.layoutComponent(d, ccs, i); err != nil {
			return fmt.Errorf("layout component %d: %w", i, err)
		}
	}
	s.logger.Debug("components laid out", "count", ccs.Count())

	return s.reassemble(d, ccs)
}

// layoutComponent copies component i into an isolated subgraph, runs
// the secondary layout on it, and copies the resulting positions and
// bends back onto the original drawing. Elements whose origin cannot
// be resolved on the way back are skipped rather than failing.
func (s *Splitter) layoutComponent(d *graph.Drawing, ccs *graph.Components, i int) error {
	g := d.Graph()

	sub := graph.New()
	for _, v := range ccs.Nodes(i) {
		if err := sub.AddNode(v.ID); err != nil {
			return err
		}
	}
	edgeOrig := make(map[int]int, len(ccs.Edges(i)))
	for _, e := range ccs.Edges(i) {
		ce, err := sub.AddEdge(e.From, e.To)
		if err != nil {
			return err
		}
		edgeOrig[ce.ID] = e.ID
	}

	cd := graph.NewDrawing(sub, d.Caps())
	for _, v := range sub.Nodes() {
		cd.SetPos(v.ID, d.Pos(v.ID))
		cd.SetSize(v.ID, d.Size(v.ID))
		if d.Has(graph.CapThreeD) {
			cd.SetZ(v.ID, d.Z(v.ID))
		}
	}
	for _, ce := range sub.Edges() {
		orig := edgeOrig[ce.ID]
		if d.Has(graph.CapEdgeWeight) {
			cd.SetWeight(ce.ID, d.Weight(orig))
		}
		if d.Has(graph.CapEdgeBends) {
			cd.SetBends(ce.ID, slices.Clone(d.Bends(orig)))
		}
	}

	if err := s.secondary.Call(cd); err != nil {
		return err
	}

	for _, v := range sub.Nodes() {
		if _, ok := g.Node(v.ID); !ok {
			continue
		}
		d.SetPos(v.ID, cd.Pos(v.ID))
		if d.Has(graph.CapThreeD) {
			d.SetZ(v.ID, cd.Z(v.ID))
		}
	}
	if d.Has(graph.CapEdgeBends) {
		for _, ce := range sub.Edges() {
			orig, ok := edgeOrig[ce.ID]
			if !ok {
				continue
			}
			d.SetBends(orig, slices.Clone(cd.Bends(ce.ID)))
		}
	}
	return nil
}
