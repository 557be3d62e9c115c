package layout

import (
	"math"

	"github.com/splitpack/splitpack/pkg/geom"
	"github.com/splitpack/splitpack/pkg/graph"
)

// placement is the per-component geometry produced by the orientation
// pass and consumed by the reassembly pass: the rotation that minimizes
// the component's bounding rectangle, the rectangle's extent before
// rounding, and the corrective offset that aligns the rotated hull's
// extremal corner with the border-padded origin of its box.
type placement struct {
	angle      float64
	width      float64
	height     float64
	correction geom.Point
}

// orientComponent centers component i of the drawing at its centroid,
// finds the rotation with the smallest bounding rectangle by trying
// every convex hull edge as the bottom of the rectangle, and returns
// the placement together with the padded integer box for the packer.
//
// The drawing is left in centered coordinates; reassemble applies the
// rotation afterwards.
func orientComponent(d *graph.Drawing, ccs *graph.Components, i, border int) (placement, geom.IPoint) {
	nodes := ccs.Nodes(i)
	withBends := d.Has(graph.CapEdgeBends)

	var sum geom.Point
	count := 0
	for _, v := range nodes {
		sum = sum.Add(d.Pos(v.ID))
		count++
	}
	if withBends {
		for _, e := range ccs.Edges(i) {
			for _, b := range d.Bends(e.ID) {
				sum = sum.Add(b)
				count++
			}
		}
	}
	// Components have at least one node, so count > 0.
	centroid := geom.Point{X: sum.X / float64(count), Y: sum.Y / float64(count)}

	// Center the drawing at the centroid and collect the centered point
	// set for hull construction. Collecting after the subtraction keeps
	// the hull input and the drawing in the same frame without relying
	// on iteration-order coupling.
	points := make([]geom.Point, 0, count)
	for _, v := range nodes {
		p := d.Pos(v.ID).Sub(centroid)
		d.SetPos(v.ID, p)
		points = append(points, p)
	}
	if withBends {
		for _, e := range ccs.Edges(i) {
			bends := d.Bends(e.ID)
			for j := range bends {
				bends[j] = bends[j].Sub(centroid)
			}
			points = append(points, bends...)
		}
	}

	hull := geom.ConvexHull(points)

	best := placement{width: 1, height: 1}
	bestNormal := geom.Point{X: 1, Y: 1}
	if len(hull) > 1 {
		bestArea := math.MaxFloat64
		for j := range hull {
			a := hull[j]
			b := hull.CyclicSucc(j)

			// Inward unit normal of the hull edge a→b; for a
			// counterclockwise hull every vertex lies on its
			// non-negative side.
			norm := b.Sub(a).Perp().Unit()

			height := 0.0
			for _, z := range hull {
				if dist := norm.Dot(z.Sub(b)); dist > height {
					height = dist
				}
			}

			side := norm.Perp()
			left, right := 0.0, 0.0
			for _, z := range hull {
				switch dist := side.Dot(z.Sub(b)); {
				case dist > left:
					left = dist
				case dist < right:
					right = dist
				}
			}
			width := left - right

			height = math.Max(height, 1.0)
			width = math.Max(width, 1.0)

			// On exact ties the later edge wins. Kept as-is for
			// output compatibility with existing drawings.
			if area := height * width; area <= bestArea {
				bestArea = area
				best.height = height
				best.width = width
				bestNormal = norm
			}
		}
	}

	angle := -math.Atan2(bestNormal.Y, bestNormal.X) + 1.5*math.Pi
	if best.width < best.height {
		angle += 0.5 * math.Pi
		best.width, best.height = best.height, best.width
	}
	best.angle = angle

	// Rotate the hull and find the extremes of the rotated outline to
	// derive the corrective offset.
	rp := hull[0].Rotate(angle)
	left, bottom := rp.X, rp.Y
	for _, p := range hull[1:] {
		rp = p.Rotate(angle)
		left = math.Min(left, rp.X)
		bottom = math.Max(bottom, rp.Y)
	}
	best.correction = geom.Point{
		X: left + 0.5*float64(border),
		Y: bottom - best.height + 0.5*float64(border),
	}

	box := geom.IPoint{
		X: int(math.Ceil(best.width)) + border,
		Y: int(math.Ceil(best.height)) + border,
	}
	return best, box
}
