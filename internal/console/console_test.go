package console

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"goaffine/internal/scene"
)

func TestPrint(t *testing.T) {
	var buf strings.Builder
	Print(&buf, scene.Default(), scene.DefaultNormalDemo())
	out := buf.String()

	// every variant is listed with its vertices
	require.Contains(t, out, "translate(2, -1)")
	require.Contains(t, out, "(3.0000, 0.0000) (6.0000, 0.0000) (5.0000, 2.0000) (3.0000, 3.0000)")
	require.Contains(t, out, "reflect(y-axis)")

	// the normal demo shows both dot products
	require.Contains(t, out, "naive, dot = -0.7200")
	require.Regexp(t, `inverse-transpose, dot = -?0\.0000`, out)
}
