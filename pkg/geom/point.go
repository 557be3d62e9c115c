package geom

import "math"

// Point is a 2D coordinate with double precision.
// It is used for node positions and edge bend points.
type Point struct {
	X, Y float64
}

// Add returns the component-wise sum p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns the component-wise difference p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Len returns the Euclidean length of p as a vector from the origin.
func (p Point) Len() float64 { return math.Sqrt(p.X*p.X + p.Y*p.Y) }

// Perp returns p rotated a quarter turn counterclockwise.
func (p Point) Perp() Point { return Point{-p.Y, p.X} }

// Unit returns p scaled to length 1. The zero point is returned unchanged.
func (p Point) Unit() Point {
	l := p.Len()
	if l == 0 {
		return p
	}
	return Point{p.X / l, p.Y / l}
}

// Rotate returns p rotated around the origin by angle radians.
// The rotation works in polar form: the radius is preserved and the
// angle is added to the polar angle.
func (p Point) Rotate(angle float64) Point {
	ang := math.Atan2(p.Y, p.X) + angle
	l := p.Len()
	return Point{math.Cos(ang) * l, math.Sin(ang) * l}
}

// IPoint is a 2D coordinate with integer precision.
// It is used for packer box dimensions and placement offsets.
type IPoint struct {
	X, Y int
}
