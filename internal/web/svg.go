// Package web exports the transform scene as a static HTML page with
// before/after SVG figures and an embedded interpolation animation.
package web

import (
	"fmt"
	"io"
	"strings"

	"goaffine/internal/geom"
)

// svgWriter serializes SVG elements to a writer.
type svgWriter struct {
	w io.Writer
}

func (s *svgWriter) printf(format string, a ...any) {
	fmt.Fprintf(s.w, format, a...)
}

func (s *svgWriter) start(w, h int) {
	s.printf("<svg xmlns='http://www.w3.org/2000/svg' width='%d' height='%d' viewBox='0 0 %d %d'>\n", w, h, w, h)
}

func (s *svgWriter) end() {
	s.printf("</svg>\n")
}

// polygon emits a polygon element. extra holds raw attributes such as
// the data-from/data-to vertex lists read by the animation script.
func (s *svgWriter) polygon(points, stroke, fill, extra string) {
	if extra != "" {
		extra = " " + extra
	}
	s.printf("<polygon points='%s' stroke='%s' fill='%s' stroke-width='2'%s/>\n", points, stroke, fill, extra)
}

func (s *svgWriter) line(x0, y0, x1, y1 float64, stroke, extra string) {
	if extra != "" {
		extra = " " + extra
	}
	s.printf("<line x1='%.2f' y1='%.2f' x2='%.2f' y2='%.2f' stroke='%s' stroke-width='2'%s/>\n", x0, y0, x1, y1, stroke, extra)
}

func (s *svgWriter) circle(cx, cy, r float64, fill string) {
	s.printf("<circle cx='%.2f' cy='%.2f' r='%.2f' fill='%s'/>\n", cx, cy, r, fill)
}

func (s *svgWriter) text(x, y float64, fill, body string) {
	s.printf("<text x='%.2f' y='%.2f' fill='%s' font-size='12'>%s</text>\n", x, y, fill, body)
}

// arrowDefs emits a reusable arrowhead marker; markerRef attaches it to
// a line.
func (s *svgWriter) arrowDefs() {
	s.printf("<defs><marker id='arrow' viewBox='0 0 10 10' refX='9' refY='5' markerWidth='7' markerHeight='7' orient='auto-start-reverse'><path d='M 0 0 L 10 5 L 0 10 z' fill='context-stroke'/></marker></defs>\n")
}

const markerRef = "marker-end='url(#arrow)'"

// pointsAttr renders vertices as an SVG points attribute, projected
// through the viewport.
func pointsAttr(vp geom.Viewport, pts []geom.Point) string {
	var sb strings.Builder
	for i, p := range pts {
		if i > 0 {
			sb.WriteByte(' ')
		}
		x, y := vp.Project(p)
		fmt.Fprintf(&sb, "%.2f,%.2f", x, y)
	}
	return sb.String()
}
