package graph

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/splitpack/splitpack/pkg/geom"
)

func sampleFile() File {
	return File{
		Capabilities: []string{"bends", "weight"},
		Nodes: []NodeJSON{
			{ID: "a", X: 1, Y: 2, W: 10, H: 20},
			{ID: "b", X: 3, Y: 4, W: 30, H: 40},
		},
		Edges: []EdgeJSON{
			{From: "a", To: "b", Weight: 2.5, Bends: [][2]float64{{2, 3}}},
		},
	}
}

func TestFileRoundTrip(t *testing.T) {
	f := sampleFile()

	g, d, err := f.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if g.NodeCount() != 2 || g.EdgeCount() != 1 {
		t.Fatalf("built %d nodes, %d edges", g.NodeCount(), g.EdgeCount())
	}
	if !d.Has(CapEdgeBends) || !d.Has(CapEdgeWeight) || d.Has(CapThreeD) {
		t.Errorf("caps = %b", d.Caps())
	}
	if got := d.Pos("a"); got != (geom.Point{X: 1, Y: 2}) {
		t.Errorf("Pos(a) = %v", got)
	}
	if got := d.Weight(0); got != 2.5 {
		t.Errorf("Weight = %v", got)
	}

	back := FromDrawing(d)
	data1, err := MarshalFile(f)
	if err != nil {
		t.Fatalf("MarshalFile: %v", err)
	}
	data2, err := MarshalFile(back)
	if err != nil {
		t.Fatalf("MarshalFile: %v", err)
	}
	if string(data1) != string(data2) {
		t.Errorf("round trip changed the document:\n%s\nvs\n%s", data1, data2)
	}
}

func TestBuildRejectsBadEdges(t *testing.T) {
	f := File{
		Nodes: []NodeJSON{{ID: "a"}},
		Edges: []EdgeJSON{{From: "a", To: "ghost"}},
	}
	if _, _, err := f.Build(); !errors.Is(err, ErrUnknownTargetNode) {
		t.Errorf("err = %v, want ErrUnknownTargetNode", err)
	}
}

func TestBuildRejectsDuplicateNodes(t *testing.T) {
	f := File{Nodes: []NodeJSON{{ID: "a"}, {ID: "a"}}}
	if _, _, err := f.Build(); !errors.Is(err, ErrDuplicateNodeID) {
		t.Errorf("err = %v, want ErrDuplicateNodeID", err)
	}
}

func TestCapsOfIgnoresUnknownNames(t *testing.T) {
	c := CapsOf([]string{"bends", "sparkles", "3d"})
	if c != CapEdgeBends|CapThreeD {
		t.Errorf("caps = %b", c)
	}
}

func TestUnmarshalFileRejectsGarbage(t *testing.T) {
	if _, err := UnmarshalFile([]byte("not json")); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestReadWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.json")
	f := sampleFile()

	if err := WriteFile(f, path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(got.Nodes) != 2 || len(got.Edges) != 1 {
		t.Errorf("read back %d nodes, %d edges", len(got.Nodes), len(got.Edges))
	}
	if got.Nodes[0] != f.Nodes[0] {
		t.Errorf("node = %+v, want %+v", got.Nodes[0], f.Nodes[0])
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
