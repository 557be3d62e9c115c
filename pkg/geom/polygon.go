package geom

// Polygon is an ordered, cyclic sequence of points.
// Convex hulls produced by [ConvexHull] are in counterclockwise order.
type Polygon []Point

// CyclicSucc returns the vertex following index i, wrapping around
// at the end of the polygon.
func (pg Polygon) CyclicSucc(i int) Point {
	return pg[(i+1)%len(pg)]
}
