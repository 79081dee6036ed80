package scene

import (
	"goaffine/internal/geom"
)

// NormalDemo holds the vectors of the normal-transformation
// demonstration: a tangent and its normal pushed through a matrix, once
// naively and once with the inverse-transpose rule.
type NormalDemo struct {
	M       geom.Mat
	Tangent geom.Vec
	Normal  geom.Vec

	MovedTangent  geom.Vec // M · tangent
	NaiveNormal   geom.Vec // M · normal, not perpendicular anymore
	CorrectNormal geom.Vec // inverseTranspose(M) · normal

	NaiveDot   float64
	CorrectDot float64
}

// NewNormalDemo computes the demo vectors for the given matrix. It
// fails when the matrix is singular.
func NewNormalDemo(m geom.Mat, tangent, normal geom.Vec) (NormalDemo, error) {
	it, err := m.InverseTranspose()
	if err != nil {
		return NormalDemo{}, err
	}

	d := NormalDemo{
		M:             m,
		Tangent:       tangent,
		Normal:        normal,
		MovedTangent:  m.Apply(tangent),
		NaiveNormal:   m.Apply(normal),
		CorrectNormal: it.Apply(normal),
	}
	d.NaiveDot = d.MovedTangent.Dot(d.NaiveNormal)
	d.CorrectDot = d.MovedTangent.Dot(d.CorrectNormal)
	return d, nil
}

// DefaultNormalDemo returns the stock demonstration: a shear+scale
// matrix applied to the tangent (3, 1) and its perpendicular (-1, 3).
func DefaultNormalDemo() NormalDemo {
	tangent := geom.Vec{X: 3, Y: 1}
	d, err := NewNormalDemo(
		geom.Mat{A: 1.5, B: 0.4, C: 0, D: 0.5},
		tangent,
		tangent.Perp(),
	)
	if err != nil {
		// unreachable: the stock matrix has determinant 0.75
		panic(err)
	}
	return d
}
