package graph

import (
	"errors"
	"testing"
)

func TestAddNodeErrors(t *testing.T) {
	g := New()

	if err := g.AddNode(""); !errors.Is(err, ErrInvalidNodeID) {
		t.Errorf("empty ID: err = %v, want ErrInvalidNodeID", err)
	}
	if err := g.AddNode("a"); err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	if err := g.AddNode("a"); !errors.Is(err, ErrDuplicateNodeID) {
		t.Errorf("duplicate ID: err = %v, want ErrDuplicateNodeID", err)
	}
}

func TestAddEdgeErrors(t *testing.T) {
	g := New()
	if err := g.AddNode("a"); err != nil {
		t.Fatalf("AddNode: %v", err)
	}

	if _, err := g.AddEdge("missing", "a"); !errors.Is(err, ErrUnknownSourceNode) {
		t.Errorf("unknown source: err = %v", err)
	}
	if _, err := g.AddEdge("a", "missing"); !errors.Is(err, ErrUnknownTargetNode) {
		t.Errorf("unknown target: err = %v", err)
	}
}

func TestInsertionOrder(t *testing.T) {
	g := New()
	ids := []string{"z", "a", "m"}
	for _, id := range ids {
		if err := g.AddNode(id); err != nil {
			t.Fatalf("AddNode(%s): %v", id, err)
		}
	}

	nodes := g.Nodes()
	for i, id := range ids {
		if nodes[i].ID != id {
			t.Errorf("Nodes()[%d] = %s, want %s", i, nodes[i].ID, id)
		}
	}
}

func TestMultiEdgesKeepDistinctIDs(t *testing.T) {
	g := New()
	for _, id := range []string{"a", "b"} {
		if err := g.AddNode(id); err != nil {
			t.Fatalf("AddNode: %v", err)
		}
	}

	e1, err := g.AddEdge("a", "b")
	if err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	e2, err := g.AddEdge("a", "b")
	if err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if e1.ID == e2.ID {
		t.Errorf("multi-edges share ID %d", e1.ID)
	}
	if g.EdgeCount() != 2 {
		t.Errorf("EdgeCount = %d, want 2", g.EdgeCount())
	}
}

func TestSelfLoop(t *testing.T) {
	g := New()
	if err := g.AddNode("a"); err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	if _, err := g.AddEdge("a", "a"); err != nil {
		t.Fatalf("self-loop: %v", err)
	}
	// A self-loop must not list the node as its own neighbor twice.
	if got := g.Neighbors("a"); len(got) != 1 {
		t.Errorf("Neighbors = %v", got)
	}
}

func TestNeighborsUndirected(t *testing.T) {
	g := New()
	for _, id := range []string{"a", "b"} {
		if err := g.AddNode(id); err != nil {
			t.Fatalf("AddNode: %v", err)
		}
	}
	if _, err := g.AddEdge("a", "b"); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}

	if got := g.Neighbors("b"); len(got) != 1 || got[0] != "a" {
		t.Errorf("Neighbors(b) = %v, want [a]", got)
	}
}
