package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"goaffine/internal/geom"
)

const canvasMargin = 0.5 // world units of padding around the scene

// renderCanvas draws the current mode onto a braille canvas of w x h
// terminal cells and returns the styled lines.
func (m Model) renderCanvas(w, h int) string {
	br := newBrailleBuf(w, h)

	switch m.mode {
	case modeVariants:
		m.drawVariants(br, w, h)
	case modeNormals:
		m.drawNormals(br, w, h)
	}

	mainStyle := lipgloss.NewStyle().Foreground(paletteColor(m.current().Color))
	if m.mode == modeNormals {
		mainStyle = appStyle
	}
	styleFor := func(l layer) lipgloss.Style {
		switch l {
		case layerMain:
			return mainStyle
		case layerBad:
			return badStyle
		case layerGood:
			return goodStyle
		default:
			return dimStyle
		}
	}

	var sb strings.Builder
	for y := 0; y < h; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		// group runs of equal layer to keep escape sequences short
		runStart := 0
		var run []rune
		var runLayer layer
		flush := func() {
			if len(run) == 0 {
				return
			}
			if runLayer == layerNone {
				sb.WriteString(string(run))
			} else {
				sb.WriteString(styleFor(runLayer).Render(string(run)))
			}
			run = run[:0]
		}
		for x := 0; x < w; x++ {
			r, l := br.cell(x, y)
			if x > runStart && l != runLayer {
				flush()
				runStart = x
			}
			runLayer = l
			run = append(run, r)
		}
		flush()
	}
	return sb.String()
}

// viewport fits the given bounds into the canvas microgrid.
func microViewport(bounds geom.BBox, w, h int) geom.Viewport {
	return geom.FitViewport(bounds, float64(w*2-1), float64(h*4-1), canvasMargin)
}

func project(vp geom.Viewport, p geom.Point) (int, int) {
	x, y := vp.Project(p)
	return int(math.Round(x)), int(math.Round(y))
}

func (m Model) drawVariants(br *brailleBuf, w, h int) {
	vp := microViewport(m.scn.Bounds(), w, h)

	drawPoly(br, vp, m.scn.Base.Points(), layerDim)

	// the shape on screen interpolates between base and variant while
	// animating; both have the same vertex count by construction
	basePts := m.scn.Base.Points()
	varPts := m.current().Poly.Points()
	shown := make([]geom.Point, len(basePts))
	for i := range shown {
		shown[i] = geom.Pt(
			basePts[i].X+(varPts[i].X-basePts[i].X)*m.animT,
			basePts[i].Y+(varPts[i].Y-basePts[i].Y)*m.animT,
		)
	}
	drawPoly(br, vp, shown, layerMain)
	for _, pt := range shown {
		markVertex(br, vp, pt, layerMain)
	}
}

func (m Model) drawNormals(br *brailleBuf, w, h int) {
	d := m.demo
	tips := []geom.Point{
		{}, // origin
		{X: d.Tangent.X, Y: d.Tangent.Y},
		{X: d.MovedTangent.X, Y: d.MovedTangent.Y},
		{X: d.NaiveNormal.X, Y: d.NaiveNormal.Y},
		{X: d.CorrectNormal.X, Y: d.CorrectNormal.Y},
	}
	vp := microViewport(geom.BBoxOf(tips), w, h)

	arrow := func(v geom.Vec, l layer) {
		x0, y0 := project(vp, geom.Point{})
		x1, y1 := project(vp, geom.Point{X: v.X, Y: v.Y})
		br.line(x0, y0, x1, y1, l)
		markVertex(br, vp, geom.Point{X: v.X, Y: v.Y}, l)
	}

	arrow(d.Tangent, layerDim)
	arrow(d.MovedTangent, layerMain)
	arrow(d.NaiveNormal, layerBad)
	arrow(d.CorrectNormal, layerGood)
}

func drawPoly(br *brailleBuf, vp geom.Viewport, pts []geom.Point, l layer) {
	for i := range pts {
		x0, y0 := project(vp, pts[i])
		x1, y1 := project(vp, pts[(i+1)%len(pts)])
		br.line(x0, y0, x1, y1, l)
	}
}

// markVertex thickens a point to a small cross so vertices stand out
// from edges.
func markVertex(br *brailleBuf, vp geom.Viewport, p geom.Point, l layer) {
	x, y := project(vp, p)
	br.setPixel(x, y, l)
	br.setPixel(x-1, y, l)
	br.setPixel(x+1, y, l)
	br.setPixel(x, y-1, l)
	br.setPixel(x, y+1, l)
}
