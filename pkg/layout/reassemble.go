package layout

import (
	"fmt"

	"github.com/splitpack/splitpack/pkg/geom"
	"github.com/splitpack/splitpack/pkg/graph"
)

// reassemble rotates every component so its bounding rectangle is
// minimal, packs the padded boxes, and applies the resulting transform
// to every node position and bend point of the drawing.
func (s *Splitter) reassemble(d *graph.Drawing, ccs *graph.Components) error {
	n := ccs.Count()
	placements := make([]placement, n)
	boxes := make([]geom.IPoint, n)
	for i := 0; i < n; i++ {
		placements[i], boxes[i] = orientComponent(d, ccs, i, s.border)
		s.logger.Debug("component oriented",
			"component", i,
			"angle", placements[i].angle,
			"box", fmt.Sprintf("%dx%d", boxes[i].X, boxes[i].Y))
	}

	offsets, err := s.packer.Pack(boxes, s.ratio)
	if err != nil {
		return fmt.Errorf("pack component boxes: %w", err)
	}
	if len(offsets) != n {
		return fmt.Errorf("packer returned %d offsets for %d boxes", len(offsets), n)
	}

	for i := 0; i < n; i++ {
		for _, v := range ccs.Nodes(i) {
			d.SetPos(v.ID, transformPoint(d.Pos(v.ID), placements[i], offsets[i]))
		}
		if d.Has(graph.CapEdgeBends) {
			for _, e := range ccs.Edges(i) {
				bends := d.Bends(e.ID)
				for j := range bends {
					bends[j] = transformPoint(bends[j], placements[i], offsets[i])
				}
			}
		}
	}
	return nil
}

// transformPoint maps a centered component-local point into the final
// assembled drawing: rotate by the component angle, add the packer
// offset, subtract the corrective offset.
func transformPoint(p geom.Point, pl placement, offset geom.IPoint) geom.Point {
	rp := p.Rotate(pl.angle)
	return geom.Point{
		X: rp.X + float64(offset.X) - pl.correction.X,
		Y: rp.Y + float64(offset.Y) - pl.correction.Y,
	}
}
