// Package window renders the transform scene in an interactive ebiten
// window. Arrow keys cycle through the variants, space replays the
// base-to-variant interpolation.
package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"goaffine/internal/geom"
	"goaffine/internal/scene"
)

const (
	screenW = 800
	screenH = 600

	worldMargin = 0.5
	strokeWidth = 2
	vertexR     = 4

	animStep = 1.0 / 45 // seconds of animation at 60 ticks per second
)

var background = color.RGBA{R: 0x0b, G: 0x0f, B: 0x14, A: 0xff}
var baseCol = color.RGBA{R: 0x6b, G: 0x72, B: 0x80, A: 0xff}

// named variant colors -> RGBA
var palette = map[string]color.RGBA{
	"red":    {R: 0xef, G: 0x44, B: 0x44, A: 0xff},
	"green":  {R: 0x22, G: 0xc5, B: 0x5e, A: 0xff},
	"blue":   {R: 0x3b, G: 0x82, B: 0xf6, A: 0xff},
	"orange": {R: 0xf9, G: 0x73, B: 0x16, A: 0xff},
	"purple": {R: 0xa8, G: 0x55, B: 0xf7, A: 0xff},
	"teal":   {R: 0x14, G: 0xb8, B: 0xa6, A: 0xff},
	"white":  {R: 0xe6, G: 0xe6, B: 0xe6, A: 0xff},
}

func colorFor(name string) color.RGBA {
	if c, ok := palette[name]; ok {
		return c
	}
	return palette["white"]
}

type game struct {
	scn scene.Scene
	vp  geom.Viewport

	sel       int
	animating bool
	animT     float64
}

func newGame(scn scene.Scene) *game {
	return &game{
		scn:   scn,
		vp:    geom.FitViewport(scn.Bounds(), screenW, screenH, worldMargin),
		animT: 1,
	}
}

func (g *game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		g.selectVariant(g.sel + 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		g.selectVariant(g.sel - 1)
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.animating = true
		g.animT = 0
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	}

	if g.animating {
		g.animT += animStep
		if g.animT >= 1 {
			g.animT = 1
			g.animating = false
		}
	}
	return nil
}

func (g *game) selectVariant(idx int) {
	n := len(g.scn.Variants)
	g.sel = ((idx % n) + n) % n
	g.animT = 1
	g.animating = false
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	v := g.scn.Variants[g.sel]
	g.drawPolygon(screen, g.scn.Base.Points(), baseCol)
	g.drawPolygon(screen, lerpPoints(g.scn.Base.Points(), v.Poly.Points(), g.animT), colorFor(v.Color))

	ebitenutil.DebugPrintAt(screen, v.Label, 16, 16)
	ebitenutil.DebugPrintAt(screen, "arrows: variant   space: animate   esc: quit", 16, screenH-24)
}

func (g *game) drawPolygon(screen *ebiten.Image, pts []geom.Point, clr color.RGBA) {
	n := len(pts)
	for i := 0; i < n; i++ {
		x0, y0 := g.vp.Project(pts[i])
		x1, y1 := g.vp.Project(pts[(i+1)%n])
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), strokeWidth, clr, true)
	}
	for _, p := range pts {
		x, y := g.vp.Project(p)
		vector.DrawFilledCircle(screen, float32(x), float32(y), vertexR, clr, true)
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return screenW, screenH
}

// lerpPoints interpolates two equally sized vertex lists.
func lerpPoints(from, to []geom.Point, t float64) []geom.Point {
	out := make([]geom.Point, len(from))
	for i := range from {
		out[i] = geom.Pt(
			from[i].X+(to[i].X-from[i].X)*t,
			from[i].Y+(to[i].Y-from[i].Y)*t,
		)
	}
	return out
}

// Run opens the window and blocks until it is closed.
func Run(scn scene.Scene) error {
	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("goaffine")
	if err := ebiten.RunGame(newGame(scn)); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}
