package graph

import "testing"

func mustBuild(t *testing.T, nodes []string, edges [][2]string) *Graph {
	t.Helper()
	g := New()
	for _, id := range nodes {
		if err := g.AddNode(id); err != nil {
			t.Fatalf("AddNode(%s): %v", id, err)
		}
	}
	for _, e := range edges {
		if _, err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge(%v): %v", e, err)
		}
	}
	return g
}

func TestSplitComponentsEmpty(t *testing.T) {
	ccs := SplitComponents(New())
	if ccs.Count() != 0 {
		t.Errorf("Count = %d, want 0", ccs.Count())
	}
}

func TestSplitComponentsConnected(t *testing.T) {
	g := mustBuild(t, []string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"b", "c"}})
	ccs := SplitComponents(g)
	if ccs.Count() != 1 {
		t.Fatalf("Count = %d, want 1", ccs.Count())
	}
	if got := ccs.Nodes(0); len(got) != 3 {
		t.Errorf("component 0 has %d nodes", len(got))
	}
	if got := ccs.Edges(0); len(got) != 2 {
		t.Errorf("component 0 has %d edges", len(got))
	}
}

func TestSplitComponentsNumberingFollowsInsertionOrder(t *testing.T) {
	// First-inserted node of each component determines its number.
	g := mustBuild(t,
		[]string{"x1", "y1", "x2", "y2", "lonely"},
		[][2]string{{"x1", "x2"}, {"y1", "y2"}})
	ccs := SplitComponents(g)

	if ccs.Count() != 3 {
		t.Fatalf("Count = %d, want 3", ccs.Count())
	}
	tests := []struct {
		id   string
		want int
	}{
		{"x1", 0}, {"x2", 0},
		{"y1", 1}, {"y2", 1},
		{"lonely", 2},
	}
	for _, tt := range tests {
		got, ok := ccs.ComponentOf(tt.id)
		if !ok || got != tt.want {
			t.Errorf("ComponentOf(%s) = %d,%v, want %d", tt.id, got, ok, tt.want)
		}
	}
}

func TestSplitComponentsEdgesGrouped(t *testing.T) {
	g := mustBuild(t,
		[]string{"a", "b", "c", "d"},
		[][2]string{{"a", "b"}, {"c", "d"}, {"a", "b"}})
	ccs := SplitComponents(g)

	if ccs.Count() != 2 {
		t.Fatalf("Count = %d, want 2", ccs.Count())
	}
	if got := ccs.Edges(0); len(got) != 2 {
		t.Errorf("component 0 has %d edges, want 2 (multi-edge)", len(got))
	}
	if got := ccs.Edges(1); len(got) != 1 {
		t.Errorf("component 1 has %d edges, want 1", len(got))
	}
}

func TestComponentOfUnknownNode(t *testing.T) {
	ccs := SplitComponents(mustBuild(t, []string{"a"}, nil))
	if _, ok := ccs.ComponentOf("ghost"); ok {
		t.Error("ComponentOf reported an unknown node")
	}
}
