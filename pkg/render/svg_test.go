package render

import (
	"strings"
	"testing"

	"github.com/splitpack/splitpack/pkg/geom"
	"github.com/splitpack/splitpack/pkg/graph"
)

func buildDrawing(t *testing.T) *graph.Drawing {
	t.Helper()
	g := graph.New()
	for _, id := range []string{"a", "b"} {
		if err := g.AddNode(id); err != nil {
			t.Fatalf("AddNode: %v", err)
		}
	}
	e, err := g.AddEdge("a", "b")
	if err != nil {
		t.Fatalf("AddEdge: %v", err)
	}

	d := graph.NewDrawing(g, graph.CapEdgeBends)
	d.SetPos("a", geom.Point{X: 0, Y: 0})
	d.SetPos("b", geom.Point{X: 100, Y: 50})
	d.SetSize("a", graph.Size{W: 20, H: 10})
	d.SetSize("b", graph.Size{W: 20, H: 10})
	d.SetBends(e.ID, []geom.Point{{X: 50, Y: 80}})
	return d
}

func TestSVGStructure(t *testing.T) {
	svg := string(SVG(buildDrawing(t)))

	if !strings.HasPrefix(svg, "<svg xmlns=") {
		t.Errorf("missing svg root: %.60s", svg)
	}
	if got := strings.Count(svg, "<rect"); got != 2 {
		t.Errorf("%d rects, want 2", got)
	}
	if got := strings.Count(svg, "<polyline"); got != 1 {
		t.Errorf("%d polylines, want 1", got)
	}
	// The bend point must appear on the edge path.
	if !strings.Contains(svg, "<polyline") || !strings.Contains(svg, "80.00") {
		t.Error("bend point missing from polyline")
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("unterminated document")
	}
}

func TestSVGEmptyDrawing(t *testing.T) {
	d := graph.NewDrawing(graph.New(), 0)
	svg := string(SVG(d))
	if !strings.Contains(svg, `viewBox="0 0 1 1"`) {
		t.Errorf("empty drawing svg = %q", svg)
	}
}

func TestSVGLabels(t *testing.T) {
	svg := string(SVG(buildDrawing(t), WithLabels()))
	if !strings.Contains(svg, ">a</text>") || !strings.Contains(svg, ">b</text>") {
		t.Errorf("labels missing:\n%s", svg)
	}

	plain := string(SVG(buildDrawing(t)))
	if strings.Contains(plain, "<text") {
		t.Error("labels rendered without WithLabels")
	}
}

func TestSVGEscapesLabels(t *testing.T) {
	g := graph.New()
	if err := g.AddNode("a<&>b"); err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	d := graph.NewDrawing(g, 0)
	d.SetSize("a<&>b", graph.Size{W: 10, H: 10})

	svg := string(SVG(d, WithLabels()))
	if !strings.Contains(svg, "a&lt;&amp;&gt;b") {
		t.Errorf("label not escaped:\n%s", svg)
	}
}

func TestSVGMarginGrowsViewBox(t *testing.T) {
	tight := string(SVG(buildDrawing(t), WithMargin(0)))
	wide := string(SVG(buildDrawing(t), WithMargin(100)))
	if tight == wide {
		t.Error("margin had no effect")
	}
	if !strings.Contains(wide, `viewBox="0 0 320.00`) {
		t.Errorf("viewBox not grown by margin:\n%.80s", wide)
	}
}
