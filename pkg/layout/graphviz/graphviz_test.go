package graphviz

import (
	"strings"
	"testing"

	"github.com/splitpack/splitpack/pkg/geom"
	"github.com/splitpack/splitpack/pkg/graph"
)

func buildDrawing(t *testing.T, caps graph.Caps) *graph.Drawing {
	t.Helper()
	g := graph.New()
	for _, id := range []string{"a", "b c"} {
		if err := g.AddNode(id); err != nil {
			t.Fatalf("AddNode: %v", err)
		}
	}
	if _, err := g.AddEdge("a", "b c"); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}

	d := graph.NewDrawing(g, caps)
	d.SetSize("a", graph.Size{W: 72, H: 36})
	d.SetSize("b c", graph.Size{W: 144, H: 72})
	return d
}

func TestValidEngine(t *testing.T) {
	for _, name := range []string{"dot", "neato", "fdp", "circo", "twopi"} {
		if !ValidEngine(name) {
			t.Errorf("ValidEngine(%q) = false", name)
		}
	}
	for _, name := range []string{"", "sfdp", "magic"} {
		if ValidEngine(name) {
			t.Errorf("ValidEngine(%q) = true", name)
		}
	}
}

func TestNewDefaultsToDot(t *testing.T) {
	if l := New(""); l.engine != Dot {
		t.Errorf("engine = %q, want dot", l.engine)
	}
}

func TestBuildDOT(t *testing.T) {
	dot := buildDOT(buildDrawing(t, 0))

	if !strings.HasPrefix(dot, "digraph G {") {
		t.Errorf("missing digraph header: %.40s", dot)
	}
	// Sizes are forwarded in inches.
	if !strings.Contains(dot, `"a" [width=1.0000, height=0.5000];`) {
		t.Errorf("node a line missing:\n%s", dot)
	}
	// IDs with spaces must be quoted.
	if !strings.Contains(dot, `"b c" [width=2.0000, height=1.0000];`) {
		t.Errorf("node b c line missing:\n%s", dot)
	}
	if !strings.Contains(dot, `"a" -> "b c";`) {
		t.Errorf("edge line missing:\n%s", dot)
	}
}

func TestBuildDOTZeroSizeFallback(t *testing.T) {
	g := graph.New()
	if err := g.AddNode("tiny"); err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	d := graph.NewDrawing(g, 0)

	dot := buildDOT(d)
	if !strings.Contains(dot, `"tiny" [width=0.5000, height=0.5000];`) {
		t.Errorf("zero-size fallback missing:\n%s", dot)
	}
}

func TestApplyPlainPositions(t *testing.T) {
	d := buildDrawing(t, 0)
	plain := strings.Join([]string{
		"graph 1 4 3",
		`node a 1 2 1.0 0.5 a solid box black lightgrey`,
		`node "b c" 3 0.5 2.0 1.0 "b c" solid box black lightgrey`,
		"stop",
	}, "\n")

	if err := applyPlain(d, plain); err != nil {
		t.Fatalf("applyPlain: %v", err)
	}
	if got := d.Pos("a"); got != (geom.Point{X: 72, Y: 144}) {
		t.Errorf("Pos(a) = %v, want (72,144)", got)
	}
	if got := d.Pos("b c"); got != (geom.Point{X: 216, Y: 36}) {
		t.Errorf("Pos(b c) = %v, want (216,36)", got)
	}
}

func TestApplyPlainBends(t *testing.T) {
	d := buildDrawing(t, graph.CapEdgeBends)
	// Four control points: endpoints plus two interior ones.
	plain := `edge a "b c" 4 0 0 1 1 2 2 3 3 solid black` + "\n"

	if err := applyPlain(d, plain); err != nil {
		t.Fatalf("applyPlain: %v", err)
	}
	bends := d.Bends(0)
	if len(bends) != 2 {
		t.Fatalf("%d bends, want 2: %v", len(bends), bends)
	}
	if bends[0] != (geom.Point{X: 72, Y: 72}) || bends[1] != (geom.Point{X: 144, Y: 144}) {
		t.Errorf("bends = %v", bends)
	}
}

func TestApplyPlainIgnoresBendsWithoutCapability(t *testing.T) {
	d := buildDrawing(t, 0)
	plain := `edge a "b c" 4 0 0 1 1 2 2 3 3 solid black` + "\n"

	if err := applyPlain(d, plain); err != nil {
		t.Fatalf("applyPlain: %v", err)
	}
	if got := d.Bends(0); len(got) != 0 {
		t.Errorf("bends set without capability: %v", got)
	}
}

func TestApplyPlainUnknownNodeIsSkipped(t *testing.T) {
	d := buildDrawing(t, 0)
	if err := applyPlain(d, "node ghost 1 1 1 1\n"); err != nil {
		t.Errorf("applyPlain: %v", err)
	}
}

func TestApplyPlainMalformedLine(t *testing.T) {
	d := buildDrawing(t, 0)
	if err := applyPlain(d, "node a notanumber 2 1 1\n"); err == nil {
		t.Error("expected error for malformed node line")
	}
}

func TestSplitPlain(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{`node a 1 2`, []string{"node", "a", "1", "2"}},
		{`node "b c" 1 2`, []string{"node", "b c", "1", "2"}},
		{`  spaced   out `, []string{"spaced", "out"}},
		{``, nil},
	}
	for _, tt := range tests {
		got := splitPlain(tt.line)
		if len(got) != len(tt.want) {
			t.Errorf("splitPlain(%q) = %v, want %v", tt.line, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("splitPlain(%q)[%d] = %q, want %q", tt.line, i, got[i], tt.want[i])
			}
		}
	}
}
