package geom

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePolygonWKT(t *testing.T) {
	p, err := ParsePolygonWKT("POLYGON((1 1, 4 1, 3 3, 1 4))")
	require.NoError(t, err)
	require.Equal(t, []Point{Pt(1, 1), Pt(4, 1), Pt(3, 3), Pt(1, 4)}, p.Points())
}

func TestParsePolygonWKT_ClosedRing(t *testing.T) {
	// the repeated closing vertex is dropped
	p, err := ParsePolygonWKT("polygon((0 0, 2 0, 1 2, 0 0))")
	require.NoError(t, err)
	require.Equal(t, 3, p.Len())
}

func TestParsePolygonWKT_OuterRingOnly(t *testing.T) {
	p, err := ParsePolygonWKT("POLYGON((0 0, 4 0, 4 4, 0 4), (1 1, 2 1, 1 2))")
	require.NoError(t, err)
	require.Equal(t, 4, p.Len())
}

func TestParsePolygonWKT_Invalid(t *testing.T) {
	for _, wkt := range []string{"", "POINT(1 2)", "POLYGON(1 1, 2 2)"} {
		_, err := ParsePolygonWKT(wkt)
		require.Error(t, err, "wkt %q", wkt)
	}

	// parseable but too few vertices: the polygon invariant rejects it
	_, err := ParsePolygonWKT("POLYGON((1 1, 2 2, 1 1))")
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
}

func TestLoadPolygonCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "poly.csv")
	data := "x,y\n1,1\n4,1\n3,3\n1,4\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	p, err := LoadPolygonCSV(path)
	require.NoError(t, err)
	require.Equal(t, []Point{Pt(1, 1), Pt(4, 1), Pt(3, 3), Pt(1, 4)}, p.Points())
}

func TestLoadPolygonCSV_MissingColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n1,2\n"), 0o644))

	_, err := LoadPolygonCSV(path)
	require.Error(t, err)
}
