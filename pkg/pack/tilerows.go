package pack

import (
	"math"
	"slices"

	"github.com/splitpack/splitpack/pkg/geom"
)

// TileToRows is the default packer. It tiles boxes into horizontal
// rows: boxes are visited in order of decreasing height and appended to
// the current row until the row would exceed the target width, which is
// derived from the total box area and the target ratio. Rows are
// stacked top to bottom, each as tall as its tallest box, so placed
// boxes never overlap.
type TileToRows struct{}

// NewTileToRows creates a row-tiling packer.
func NewTileToRows() *TileToRows { return &TileToRows{} }

// Pack implements [Packer].
func (TileToRows) Pack(boxes []geom.IPoint, targetRatio float64) ([]geom.IPoint, error) {
	if len(boxes) == 0 {
		return nil, nil
	}
	if targetRatio <= 0 {
		targetRatio = 1
	}

	area := 0
	widest := 0
	for _, b := range boxes {
		area += b.X * b.Y
		if b.X > widest {
			widest = b.X
		}
	}
	rowWidth := int(math.Ceil(math.Sqrt(float64(area) * targetRatio)))
	if rowWidth < widest {
		rowWidth = widest
	}

	// Tallest first keeps rows dense; the sort is stable so equal
	// heights keep component order.
	order := make([]int, len(boxes))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return boxes[b].Y - boxes[a].Y
	})

	offsets := make([]geom.IPoint, len(boxes))
	x, y, rowHeight := 0, 0, 0
	for _, i := range order {
		b := boxes[i]
		if x > 0 && x+b.X > rowWidth {
			y += rowHeight
			x, rowHeight = 0, 0
		}
		offsets[i] = geom.IPoint{X: x, Y: y}
		x += b.X
		if b.Y > rowHeight {
			rowHeight = b.Y
		}
	}
	return offsets, nil
}
