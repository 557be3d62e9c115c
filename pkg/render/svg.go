// Package render turns laid-out drawings into output artifacts.
package render

import (
	"bytes"
	"fmt"

	"github.com/splitpack/splitpack/pkg/graph"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	margin    float64
	showLabel bool
}

// WithMargin sets the whitespace kept around the drawing.
func WithMargin(margin float64) SVGOption {
	return func(r *svgRenderer) { r.margin = margin }
}

// WithLabels draws node IDs centered in their rectangles.
func WithLabels() SVGOption {
	return func(r *svgRenderer) { r.showLabel = true }
}

// SVG renders the drawing as an SVG document: one polyline per edge
// (routed through its bend points) and one rectangle per node. The
// viewBox is fitted to the drawing's bounding box plus the margin.
func SVG(d *graph.Drawing, opts ...SVGOption) []byte {
	r := &svgRenderer{margin: 20}
	for _, opt := range opts {
		opt(r)
	}

	lo, hi, ok := d.BoundingBox()
	if !ok {
		return []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 1 1"/>` + "\n")
	}
	width := hi.X - lo.X + 2*r.margin
	height := hi.Y - lo.Y + 2*r.margin
	offX := -lo.X + r.margin
	offY := -lo.Y + r.margin

	var buf bytes.Buffer
	fmt.Fprintf(&buf,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)

	g := d.Graph()
	for _, e := range g.Edges() {
		from := d.Pos(e.From)
		to := d.Pos(e.To)
		buf.WriteString(`  <polyline fill="none" stroke="#555" stroke-width="1" points="`)
		fmt.Fprintf(&buf, "%.2f,%.2f", from.X+offX, from.Y+offY)
		if d.Has(graph.CapEdgeBends) {
			for _, b := range d.Bends(e.ID) {
				fmt.Fprintf(&buf, " %.2f,%.2f", b.X+offX, b.Y+offY)
			}
		}
		fmt.Fprintf(&buf, " %.2f,%.2f", to.X+offX, to.Y+offY)
		buf.WriteString(`"/>` + "\n")
	}

	for _, v := range g.Nodes() {
		p := d.Pos(v.ID)
		s := d.Size(v.ID)
		w, h := s.W, s.H
		if w <= 0 {
			w = 10
		}
		if h <= 0 {
			h = 10
		}
		fmt.Fprintf(&buf,
			`  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="white" stroke="black"/>`+"\n",
			p.X+offX-w/2, p.Y+offY-h/2, w, h)
		if r.showLabel {
			fmt.Fprintf(&buf,
				`  <text x="%.2f" y="%.2f" font-size="10" text-anchor="middle" dominant-baseline="middle">%s</text>`+"\n",
				p.X+offX, p.Y+offY, escapeText(v.ID))
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func escapeText(s string) string {
	var buf bytes.Buffer
	for _, r := range s {
		switch r {
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '&':
			buf.WriteString("&amp;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
