package graph

import "github.com/splitpack/splitpack/pkg/geom"

// Caps is a capability flag set indicating which optional attribute
// kinds a drawing carries.
type Caps uint8

const (
	// CapEdgeBends enables polyline bend points on edges.
	CapEdgeBends Caps = 1 << iota
	// CapThreeD enables a z coordinate on nodes.
	CapThreeD
	// CapEdgeWeight enables a double weight on edges.
	CapEdgeWeight
)

// Size is a node's width and height.
type Size struct {
	W, H float64
}

// Drawing holds the geometric attributes attached to a graph: per-node
// position and size, and optionally per-node z coordinate, per-edge
// weight and per-edge bend polyline, gated by the capability set.
//
// The drawing is owned by the caller. Layout algorithms mutate
// positions and bends in place and never touch the topology.
type Drawing struct {
	g    *Graph
	caps Caps

	pos    map[string]geom.Point
	z      map[string]float64
	size   map[string]Size
	bends  map[int][]geom.Point
	weight map[int]float64
}

// NewDrawing creates a drawing for g with the given capability set.
// All attributes start at their zero values.
func NewDrawing(g *Graph, caps Caps) *Drawing {
	return &Drawing{
		g:      g,
		caps:   caps,
		pos:    make(map[string]geom.Point),
		z:      make(map[string]float64),
		size:   make(map[string]Size),
		bends:  make(map[int][]geom.Point),
		weight: make(map[int]float64),
	}
}

// Graph returns the topology this drawing is attached to.
func (d *Drawing) Graph() *Graph { return d.g }

// Caps returns the drawing's capability set.
func (d *Drawing) Caps() Caps { return d.caps }

// Has reports whether the drawing carries the given capability.
func (d *Drawing) Has(c Caps) bool { return d.caps&c != 0 }

// Pos returns the position of the node with the given ID.
func (d *Drawing) Pos(id string) geom.Point { return d.pos[id] }

// SetPos sets the position of the node with the given ID.
func (d *Drawing) SetPos(id string, p geom.Point) { d.pos[id] = p }

// Z returns the z coordinate of the node with the given ID.
func (d *Drawing) Z(id string) float64 { return d.z[id] }

// SetZ sets the z coordinate of the node with the given ID.
func (d *Drawing) SetZ(id string, z float64) { d.z[id] = z }

// Size returns the size of the node with the given ID.
func (d *Drawing) Size(id string) Size { return d.size[id] }

// SetSize sets the size of the node with the given ID.
func (d *Drawing) SetSize(id string, s Size) { d.size[id] = s }

// Bends returns the bend polyline of the edge with the given ID.
// The returned slice is the live backing store: callers may mutate the
// points in place, which is how layout transforms are applied.
func (d *Drawing) Bends(edgeID int) []geom.Point { return d.bends[edgeID] }

// SetBends replaces the bend polyline of the edge with the given ID.
func (d *Drawing) SetBends(edgeID int, bends []geom.Point) { d.bends[edgeID] = bends }

// Weight returns the weight of the edge with the given ID.
func (d *Drawing) Weight(edgeID int) float64 { return d.weight[edgeID] }

// SetWeight sets the weight of the edge with the given ID.
func (d *Drawing) SetWeight(edgeID int, w float64) { d.weight[edgeID] = w }

// BoundingBox returns the axis-aligned bounding box over all node
// rectangles (position ± half size) and bend points. The second return
// is false for a drawing over an empty graph.
func (d *Drawing) BoundingBox() (minPt, maxPt geom.Point, ok bool) {
	first := true
	grow := func(p geom.Point, half Size) {
		lo := geom.Point{X: p.X - half.W/2, Y: p.Y - half.H/2}
		hi := geom.Point{X: p.X + half.W/2, Y: p.Y + half.H/2}
		if first {
			minPt, maxPt = lo, hi
			first = false
			return
		}
		minPt.X = min(minPt.X, lo.X)
		minPt.Y = min(minPt.Y, lo.Y)
		maxPt.X = max(maxPt.X, hi.X)
		maxPt.Y = max(maxPt.Y, hi.Y)
	}
	for _, v := range d.g.Nodes() {
		grow(d.Pos(v.ID), d.Size(v.ID))
	}
	if d.Has(CapEdgeBends) {
		for _, e := range d.g.Edges() {
			for _, b := range d.Bends(e.ID) {
				grow(b, Size{})
			}
		}
	}
	return minPt, maxPt, !first
}
