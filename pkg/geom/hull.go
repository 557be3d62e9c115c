package geom

import "slices"

// ConvexHull computes the convex hull of a point set using Andrew's
// monotone chain. The hull is returned in counterclockwise order and
// contains no collinear or duplicate vertices.
//
// Degenerate inputs are handled gracefully: zero points yield an empty
// polygon, a single distinct point yields a one-vertex polygon, and two
// distinct points yield a two-vertex polygon.
func ConvexHull(points []Point) Polygon {
	pts := slices.Clone(points)
	slices.SortFunc(pts, func(a, b Point) int {
		switch {
		case a.X < b.X:
			return -1
		case a.X > b.X:
			return 1
		case a.Y < b.Y:
			return -1
		case a.Y > b.Y:
			return 1
		}
		return 0
	})
	pts = slices.Compact(pts)

	n := len(pts)
	if n <= 2 {
		return Polygon(pts)
	}

	hull := make([]Point, 0, 2*n)

	// Lower hull.
	for _, p := range pts {
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	// Upper hull.
	lower := len(hull) + 1
	for i := n - 2; i >= 0; i-- {
		p := pts[i]
		for len(hull) >= lower && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	return Polygon(hull[:len(hull)-1])
}

// cross returns the z-component of (a-o) × (b-o).
// Positive for a counterclockwise turn o→a→b.
func cross(o, a, b Point) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}
