package window

import (
	"testing"

	"github.com/stretchr/testify/require"

	"goaffine/internal/geom"
	"goaffine/internal/scene"
)

func TestLerpPoints(t *testing.T) {
	from := []geom.Point{geom.Pt(0, 0), geom.Pt(2, 2)}
	to := []geom.Point{geom.Pt(4, 0), geom.Pt(2, 6)}

	require.Equal(t, from, lerpPoints(from, to, 0))
	require.Equal(t, to, lerpPoints(from, to, 1))

	mid := lerpPoints(from, to, 0.5)
	require.Equal(t, []geom.Point{geom.Pt(2, 0), geom.Pt(2, 4)}, mid)
}

func TestColorFor(t *testing.T) {
	require.Equal(t, palette["red"], colorFor("red"))
	require.Equal(t, palette["white"], colorFor("no-such-color"))
}

func TestGame_SelectVariantWraps(t *testing.T) {
	g := newGame(scene.Default())
	n := len(g.scn.Variants)

	g.selectVariant(-1)
	require.Equal(t, n-1, g.sel)
	g.selectVariant(n)
	require.Equal(t, 0, g.sel)
}

func TestGame_ViewportCoversScene(t *testing.T) {
	scn := scene.Default()
	g := newGame(scn)

	// every scene point projects inside the fixed canvas
	check := func(pts []geom.Point) {
		for _, p := range pts {
			x, y := g.vp.Project(p)
			require.GreaterOrEqual(t, x, 0.0)
			require.GreaterOrEqual(t, y, 0.0)
			require.LessOrEqual(t, x, float64(screenW))
			require.LessOrEqual(t, y, float64(screenH))
		}
	}
	check(scn.Base.Points())
	for _, v := range scn.Variants {
		check(v.Poly.Points())
	}
}
