package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"goaffine/internal/geom"
	"goaffine/internal/scene"
)

const (
	figW      = 360
	figH      = 280
	figMargin = 0.5
)

// named variant colors -> CSS colors
var cssPalette = map[string]string{
	"red":    "#ef4444",
	"green":  "#22c55e",
	"blue":   "#3b82f6",
	"orange": "#f97316",
	"purple": "#a855f7",
	"teal":   "#14b8a6",
	"white":  "#6b7280",
}

func cssColor(name string) string {
	if c, ok := cssPalette[name]; ok {
		return c
	}
	return cssPalette["white"]
}

type figureData struct {
	Label string
	SVG   template.HTML
}

type pageData struct {
	Figures    []figureData
	NormalSVG  template.HTML
	Matrix     string
	NaiveDot   string
	CorrectDot string
}

// Export writes the whole scene as one self-contained HTML page.
func Export(w io.Writer, scn scene.Scene, demo scene.NormalDemo) error {
	data := pageData{
		NormalSVG:  normalFigure(demo),
		Matrix:     fmt.Sprintf("[[%.2f, %.2f], [%.2f, %.2f]]", demo.M.A, demo.M.B, demo.M.C, demo.M.D),
		NaiveDot:   fmt.Sprintf("%.4f", demo.NaiveDot),
		CorrectDot: fmt.Sprintf("%.4f", demo.CorrectDot),
	}
	for _, v := range scn.Variants {
		data.Figures = append(data.Figures, figureData{
			Label: v.Label,
			SVG:   variantFigure(scn.Base, v),
		})
	}
	return pageTmpl.Execute(w, data)
}

// variantFigure renders one before/after pair. The "after" polygon and
// its vertex dots carry data-from/data-to attributes; the page script
// interpolates them.
func variantFigure(base geom.Polygon, v scene.Variant) template.HTML {
	var buf bytes.Buffer
	s := &svgWriter{w: &buf}

	vp := geom.FitViewport(base.BBox().Union(v.Poly.BBox()), figW, figH, figMargin)
	from := pointsAttr(vp, base.Points())
	to := pointsAttr(vp, v.Poly.Points())
	col := cssColor(v.Color)

	s.start(figW, figH)
	s.polygon(from, "#9ca3af", "none", "stroke-dasharray='4 3'")
	s.polygon(to, col, "none", fmt.Sprintf("data-from='%s' data-to='%s'", from, to))
	for i, p := range v.Poly.Points() {
		bx, by := vp.Project(base.Points()[i])
		x, y := vp.Project(p)
		s.printf("<circle cx='%.2f' cy='%.2f' r='3' fill='%s' data-from='%.2f,%.2f' data-to='%.2f,%.2f'/>\n",
			x, y, col, bx, by, x, y)
	}
	s.end()
	return template.HTML(buf.String())
}

// normalFigure draws the tangent/normal comparison: the moved tangent
// with the naively transformed normal next to the inverse-transpose one.
func normalFigure(d scene.NormalDemo) template.HTML {
	var buf bytes.Buffer
	s := &svgWriter{w: &buf}

	tips := []geom.Point{
		{},
		{X: d.Tangent.X, Y: d.Tangent.Y},
		{X: d.MovedTangent.X, Y: d.MovedTangent.Y},
		{X: d.NaiveNormal.X, Y: d.NaiveNormal.Y},
		{X: d.CorrectNormal.X, Y: d.CorrectNormal.Y},
	}
	vp := geom.FitViewport(geom.BBoxOf(tips), figW, figH, figMargin)

	arrow := func(v geom.Vec, stroke, label, extra string) {
		x0, y0 := vp.Project(geom.Point{})
		x1, y1 := vp.Project(geom.Point{X: v.X, Y: v.Y})
		s.line(x0, y0, x1, y1, stroke, extra+" "+markerRef)
		s.text(x1+4, y1-4, stroke, label)
	}

	s.start(figW, figH)
	s.arrowDefs()
	arrow(d.Tangent, "#9ca3af", "tangent", "stroke-dasharray='4 3'")
	arrow(d.MovedTangent, "#111827", "M·tangent", "")
	arrow(d.NaiveNormal, "#ef4444", "M·normal (naive)", "")
	arrow(d.CorrectNormal, "#22c55e", "M⁻ᵀ·normal", "")
	s.end()
	return template.HTML(buf.String())
}

var pageTmpl = template.Must(template.New("page").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>goaffine — 2D affine transforms</title>
<style>
body { font-family: system-ui, sans-serif; margin: 2rem; color: #111827; }
figure { display: inline-block; margin: 0.5rem; }
figcaption { font-size: 0.85rem; color: #6b7280; margin-bottom: 0.25rem; }
svg { border: 1px solid #e5e7eb; border-radius: 6px; }
code { background: #f3f4f6; padding: 0 0.25rem; border-radius: 3px; }
</style>
</head>
<body>
<h1>Polygon transforms</h1>
<p>The dashed outline is the base polygon; the colored shape interpolates toward the transform result.</p>
{{range .Figures}}<figure>
<figcaption>{{.Label}}</figcaption>
{{.SVG}}</figure>
{{end}}
<h1>Transforming normals</h1>
<p>With <code>M = {{.Matrix}}</code> the naively transformed normal is no longer
perpendicular to the moved tangent (dot = <code>{{.NaiveDot}}</code>), while the
inverse-transpose keeps it perpendicular (dot = <code>{{.CorrectDot}}</code>).</p>
<figure>{{.NormalSVG}}</figure>
<script>
(function () {
  var nodes = document.querySelectorAll('[data-from]');
  function parsePts(s) {
    return s.trim().split(/\s+/).map(function (pair) {
      var xy = pair.split(',');
      return [parseFloat(xy[0]), parseFloat(xy[1])];
    });
  }
  function fmt(pts) {
    return pts.map(function (p) {
      return p[0].toFixed(2) + ',' + p[1].toFixed(2);
    }).join(' ');
  }
  function frame(ts) {
    var t = (Math.sin(ts / 1000 * Math.PI) + 1) / 2;
    nodes.forEach(function (el) {
      var from = parsePts(el.getAttribute('data-from'));
      var to = parsePts(el.getAttribute('data-to'));
      var cur = from.map(function (p, i) {
        return [p[0] + (to[i][0] - p[0]) * t, p[1] + (to[i][1] - p[1]) * t];
      });
      if (el.tagName === 'circle') {
        el.setAttribute('cx', cur[0][0].toFixed(2));
        el.setAttribute('cy', cur[0][1].toFixed(2));
      } else {
        el.setAttribute('points', fmt(cur));
      }
    });
    window.requestAnimationFrame(frame);
  }
  window.requestAnimationFrame(frame);
})();
</script>
</body>
</html>
`))
