package graph

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/splitpack/splitpack/pkg/geom"
)

// Capability names used in the serialization format.
const (
	capNameBends  = "bends"
	capNameThreeD = "3d"
	capNameWeight = "weight"
)

// File is the canonical serialization format for a graph plus its
// drawing. It is used by the CLI, the HTTP API, the layout cache and
// the Mongo-backed layout store.
//
// The format is designed for round-trip fidelity: building a graph and
// drawing from a File and serializing them again produces an identical
// document (up to float formatting).
type File struct {
	Capabilities []string   `json:"capabilities,omitempty" bson:"capabilities,omitempty"`
	Nodes        []NodeJSON `json:"nodes" bson:"nodes"`
	Edges        []EdgeJSON `json:"edges,omitempty" bson:"edges,omitempty"`
}

// NodeJSON is the serialized form of a node and its drawing attributes.
type NodeJSON struct {
	ID string  `json:"id" bson:"id"`
	X  float64 `json:"x" bson:"x"`
	Y  float64 `json:"y" bson:"y"`
	Z  float64 `json:"z,omitempty" bson:"z,omitempty"`
	W  float64 `json:"w,omitempty" bson:"w,omitempty"`
	H  float64 `json:"h,omitempty" bson:"h,omitempty"`
}

// EdgeJSON is the serialized form of an edge and its drawing attributes.
type EdgeJSON struct {
	From   string       `json:"from" bson:"from"`
	To     string       `json:"to" bson:"to"`
	Weight float64      `json:"weight,omitempty" bson:"weight,omitempty"`
	Bends  [][2]float64 `json:"bends,omitempty" bson:"bends,omitempty"`
}

// CapsOf parses the capability name list into a flag set.
// Unknown names are ignored.
func CapsOf(names []string) Caps {
	var c Caps
	for _, n := range names {
		switch n {
		case capNameBends:
			c |= CapEdgeBends
		case capNameThreeD:
			c |= CapThreeD
		case capNameWeight:
			c |= CapEdgeWeight
		}
	}
	return c
}

// CapNames returns the serialized names of the flags set in c.
func CapNames(c Caps) []string {
	var names []string
	if c&CapEdgeBends != 0 {
		names = append(names, capNameBends)
	}
	if c&CapThreeD != 0 {
		names = append(names, capNameThreeD)
	}
	if c&CapEdgeWeight != 0 {
		names = append(names, capNameWeight)
	}
	return names
}

// FromDrawing converts a drawing into its serialization format.
// Nodes and edges appear in graph insertion order.
func FromDrawing(d *Drawing) File {
	g := d.Graph()
	f := File{
		Capabilities: CapNames(d.Caps()),
		Nodes:        make([]NodeJSON, 0, g.NodeCount()),
		Edges:        make([]EdgeJSON, 0, g.EdgeCount()),
	}
	for _, v := range g.Nodes() {
		p := d.Pos(v.ID)
		s := d.Size(v.ID)
		nj := NodeJSON{ID: v.ID, X: p.X, Y: p.Y, W: s.W, H: s.H}
		if d.Has(CapThreeD) {
			nj.Z = d.Z(v.ID)
		}
		f.Nodes = append(f.Nodes, nj)
	}
	for _, e := range g.Edges() {
		ej := EdgeJSON{From: e.From, To: e.To}
		if d.Has(CapEdgeWeight) {
			ej.Weight = d.Weight(e.ID)
		}
		if d.Has(CapEdgeBends) {
			for _, b := range d.Bends(e.ID) {
				ej.Bends = append(ej.Bends, [2]float64{b.X, b.Y})
			}
		}
		f.Edges = append(f.Edges, ej)
	}
	return f
}

// Build constructs a graph and drawing from the serialized form.
// Returns an error for structural violations (empty or duplicate node
// IDs, edges referencing unknown nodes).
func (f File) Build() (*Graph, *Drawing, error) {
	g := New()
	for _, nj := range f.Nodes {
		if err := g.AddNode(nj.ID); err != nil {
			return nil, nil, fmt.Errorf("add node %s: %w", nj.ID, err)
		}
	}
	d := NewDrawing(g, CapsOf(f.Capabilities))
	for _, nj := range f.Nodes {
		d.SetPos(nj.ID, geom.Point{X: nj.X, Y: nj.Y})
		d.SetSize(nj.ID, Size{W: nj.W, H: nj.H})
		if d.Has(CapThreeD) {
			d.SetZ(nj.ID, nj.Z)
		}
	}
	for _, ej := range f.Edges {
		e, err := g.AddEdge(ej.From, ej.To)
		if err != nil {
			return nil, nil, fmt.Errorf("add edge %s→%s: %w", ej.From, ej.To, err)
		}
		if d.Has(CapEdgeWeight) {
			d.SetWeight(e.ID, ej.Weight)
		}
		if d.Has(CapEdgeBends) && len(ej.Bends) > 0 {
			bends := make([]geom.Point, len(ej.Bends))
			for i, b := range ej.Bends {
				bends[i] = geom.Point{X: b[0], Y: b[1]}
			}
			d.SetBends(e.ID, bends)
		}
	}
	return g, d, nil
}

// MarshalFile serializes a File to pretty-printed JSON bytes.
func MarshalFile(f File) ([]byte, error) {
	return json.MarshalIndent(f, "", "  ")
}

// UnmarshalFile deserializes JSON bytes into a File.
func UnmarshalFile(data []byte) (File, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("unmarshal drawing: %w", err)
	}
	return f, nil
}

// ReadFile reads a drawing file from a JSON document on disk.
func ReadFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalFile(data)
}

// WriteFile writes a drawing file as JSON to disk.
// The file is created with 0644 permissions.
func WriteFile(f File, path string) error {
	data, err := MarshalFile(f)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadFrom decodes a drawing file from an io.Reader.
func ReadFrom(r io.Reader) (File, error) {
	var f File
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return File{}, fmt.Errorf("decode drawing: %w", err)
	}
	return f, nil
}

// WriteTo encodes a drawing file as JSON to an io.Writer.
func WriteTo(f File, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("encode drawing: %w", err)
	}
	return nil
}
