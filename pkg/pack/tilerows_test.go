package pack

import (
	"testing"

	"github.com/splitpack/splitpack/pkg/geom"
)

func TestTileToRowsEmpty(t *testing.T) {
	offsets, err := NewTileToRows().Pack(nil, 1)
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	if offsets != nil {
		t.Errorf("offsets = %v, want nil", offsets)
	}
}

func TestTileToRowsSingleBox(t *testing.T) {
	offsets, err := NewTileToRows().Pack([]geom.IPoint{{X: 40, Y: 40}}, 1)
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	if len(offsets) != 1 || offsets[0] != (geom.IPoint{}) {
		t.Errorf("offsets = %v, want [(0,0)]", offsets)
	}
}

func TestTileToRowsNoOverlap(t *testing.T) {
	boxes := []geom.IPoint{
		{X: 40, Y: 40},
		{X: 31, Y: 31},
		{X: 55, Y: 20},
		{X: 10, Y: 60},
		{X: 33, Y: 33},
	}
	offsets, err := NewTileToRows().Pack(boxes, 1)
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	if len(offsets) != len(boxes) {
		t.Fatalf("got %d offsets for %d boxes", len(offsets), len(boxes))
	}

	for i := range boxes {
		for j := i + 1; j < len(boxes); j++ {
			if rectsOverlap(offsets[i], boxes[i], offsets[j], boxes[j]) {
				t.Errorf("boxes %d and %d overlap: %v+%v vs %v+%v",
					i, j, offsets[i], boxes[i], offsets[j], boxes[j])
			}
		}
	}
}

func TestTileToRowsOffsetsParallelToInput(t *testing.T) {
	// The tallest box is placed first regardless of input position, but
	// offsets[i] must still belong to boxes[i].
	boxes := []geom.IPoint{
		{X: 10, Y: 10},
		{X: 10, Y: 100},
	}
	offsets, err := NewTileToRows().Pack(boxes, 1)
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	// The tall box starts the first row at the origin; the short box
	// follows on the same row.
	if offsets[1] != (geom.IPoint{}) {
		t.Errorf("tall box offset = %v, want origin", offsets[1])
	}
	if offsets[0] != (geom.IPoint{X: 10, Y: 0}) {
		t.Errorf("short box offset = %v, want (10,0)", offsets[0])
	}
}

func TestTileToRowsRatioWidensRows(t *testing.T) {
	boxes := make([]geom.IPoint, 8)
	for i := range boxes {
		boxes[i] = geom.IPoint{X: 20, Y: 20}
	}

	square, err := NewTileToRows().Pack(boxes, 1)
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	wide, err := NewTileToRows().Pack(boxes, 16)
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}

	if maxX(square, boxes) >= maxX(wide, boxes) {
		t.Errorf("ratio 16 should widen the packing: square width %d, wide width %d",
			maxX(square, boxes), maxX(wide, boxes))
	}
}

func TestTileToRowsInvalidRatioFallsBack(t *testing.T) {
	boxes := []geom.IPoint{{X: 10, Y: 10}, {X: 10, Y: 10}}
	offsets, err := NewTileToRows().Pack(boxes, -3)
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	if rectsOverlap(offsets[0], boxes[0], offsets[1], boxes[1]) {
		t.Error("boxes overlap under fallback ratio")
	}
}

func rectsOverlap(o1, b1, o2, b2 geom.IPoint) bool {
	return o1.X < o2.X+b2.X && o2.X < o1.X+b1.X &&
		o1.Y < o2.Y+b2.Y && o2.Y < o1.Y+b1.Y
}

func maxX(offsets, boxes []geom.IPoint) int {
	m := 0
	for i := range offsets {
		if x := offsets[i].X + boxes[i].X; x > m {
			m = x
		}
	}
	return m
}
