// Package pack places component bounding boxes in the plane.
//
// A packer receives one padded integer box per connected component and
// returns one placement offset per box, such that no two placed boxes
// overlap and the overall bounding box approximates a target aspect
// ratio (width/height). Packers are free to choose any heuristic that
// honors this contract.
package pack

import "github.com/splitpack/splitpack/pkg/geom"

// Packer places a set of boxes without overlap.
type Packer interface {
	// Pack returns the placement offset of each box's reference corner,
	// parallel to boxes. targetRatio is the desired width/height of the
	// assembled layout; values <= 0 are treated as 1.
	Pack(boxes []geom.IPoint, targetRatio float64) ([]geom.IPoint, error)
}
