package geom

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMat_Apply(t *testing.T) {
	m := Mat{A: 1.5, B: 0.4, C: 0, D: 0.5}
	v := m.Apply(Vec{X: 3, Y: 1})
	require.InDelta(t, 4.9, v.X, 1e-9)
	require.InDelta(t, 0.5, v.Y, 1e-9)
}

func TestMat_InverseTranspose(t *testing.T) {
	m := Mat{A: 1.5, B: 0.4, C: 0, D: 0.5}
	it, err := m.InverseTranspose()
	require.NoError(t, err)

	// det = 0.75; inverse is [[2/3, -8/15], [0, 2]], transposed
	require.InDelta(t, 2.0/3.0, it.A, 1e-9)
	require.InDelta(t, 0, it.B, 1e-9)
	require.InDelta(t, -0.4/0.75, it.C, 1e-9)
	require.InDelta(t, 2, it.D, 1e-9)
}

func TestMat_InverseTransposeSingular(t *testing.T) {
	m := Mat{A: 1, B: 0, C: 0, D: 0}
	_, err := m.InverseTranspose()
	require.Error(t, err)

	var derr *DomainError
	require.True(t, errors.As(err, &derr))
	require.Equal(t, "singular matrix", derr.Error())
}

func TestMat_NormalStaysPerpendicular(t *testing.T) {
	// tangent and normal of an edge, transformed by a shear+scale matrix
	m := Mat{A: 1.5, B: 0.4, C: 0, D: 0.5}
	tangent := Vec{X: 3, Y: 1}
	normal := Vec{X: -1, Y: 3}
	require.InDelta(t, 0, tangent.Dot(normal), 1e-12)

	it, err := m.InverseTranspose()
	require.NoError(t, err)

	movedTangent := m.Apply(tangent)

	// the naive transform breaks perpendicularity
	naive := m.Apply(normal)
	require.Greater(t, absf(movedTangent.Dot(naive)), 1e-3)

	// the inverse-transpose keeps it
	correct := it.Apply(normal)
	require.InDelta(t, 0, movedTangent.Dot(correct), 1e-9)
}

func TestVec_Perp(t *testing.T) {
	require.Equal(t, Vec{X: -1, Y: 3}, Vec{X: 3, Y: 1}.Perp())
	require.InDelta(t, 0, Vec{X: 3, Y: 1}.Dot(Vec{X: 3, Y: 1}.Perp()), 1e-12)
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
