package scene

import (
	"testing"

	"github.com/stretchr/testify/require"

	"goaffine/internal/geom"
)

func TestDefault(t *testing.T) {
	s := Default()

	require.Equal(t, []geom.Point{
		geom.Pt(1, 1), geom.Pt(4, 1), geom.Pt(3, 3), geom.Pt(1, 4),
	}, s.Base.Points())

	labels := make([]string, len(s.Variants))
	for i, v := range s.Variants {
		labels[i] = v.Label
		require.NotEmpty(t, v.Color)
		require.Equal(t, s.Base.Len(), v.Poly.Len())
	}
	require.Equal(t, []string{
		"translate(2, -1)",
		"scale(1.5)",
		"rotate(45°)",
		"shear(0.4, 0.2)",
		"reflect(y-axis)",
		"affine(1.1, 0.25, -0.15, 0.9)",
	}, labels)

	// the translate variant matches the known result exactly
	require.Equal(t, []geom.Point{
		geom.Pt(3, 0), geom.Pt(6, 0), geom.Pt(5, 2), geom.Pt(3, 3),
	}, s.Variants[0].Poly.Points())
}

func TestScene_Bounds(t *testing.T) {
	s := Default()
	bb := s.Bounds()

	// every output point lies inside the bounds
	check := func(p geom.Polygon) {
		for _, pt := range p.Points() {
			require.GreaterOrEqual(t, pt.X, bb.MinX)
			require.GreaterOrEqual(t, pt.Y, bb.MinY)
			require.LessOrEqual(t, pt.X, bb.MaxX)
			require.LessOrEqual(t, pt.Y, bb.MaxY)
		}
	}
	check(s.Base)
	for _, v := range s.Variants {
		check(v.Poly)
	}
}

func TestDefaultNormalDemo(t *testing.T) {
	d := DefaultNormalDemo()

	require.Equal(t, geom.Mat{A: 1.5, B: 0.4, C: 0, D: 0.5}, d.M)
	require.Equal(t, geom.Vec{X: 3, Y: 1}, d.Tangent)
	require.Equal(t, geom.Vec{X: -1, Y: 3}, d.Normal)

	// the whole point of the demo: the inverse-transpose keeps the
	// normal perpendicular to the moved tangent, the naive transform
	// does not
	require.InDelta(t, 0, d.CorrectDot, 1e-9)
	require.Greater(t, abs(d.NaiveDot), 1e-3)
}

func TestNewNormalDemo_Singular(t *testing.T) {
	_, err := NewNormalDemo(geom.Mat{A: 1}, geom.Vec{X: 1}, geom.Vec{Y: 1})
	require.Error(t, err)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
