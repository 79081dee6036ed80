package geom

// Mat is a 2x2 matrix in row-major order: row0 = [A, B], row1 = [C, D].
type Mat struct {
	A, B float64
	C, D float64
}

// Apply multiplies the matrix with a vector.
func (m Mat) Apply(v Vec) Vec {
	return Vec{
		X: m.A*v.X + m.B*v.Y,
		Y: m.C*v.X + m.D*v.Y,
	}
}

// Det returns the determinant.
func (m Mat) Det() float64 {
	return m.A*m.D - m.B*m.C
}

// InverseTranspose returns the transpose of the inverse of m. This is
// the matrix that keeps normal vectors perpendicular to their tangents
// under non-orthogonal transforms; applying m itself to a normal breaks
// perpendicularity as soon as the transform shears or scales
// non-uniformly.
//
// The singularity check compares the determinant against exact zero.
func (m Mat) InverseTranspose() (Mat, error) {
	det := m.Det()
	if det == 0 {
		return Mat{}, &DomainError{Reason: "singular matrix"}
	}
	inv := Mat{
		A: m.D / det, B: -m.B / det,
		C: -m.C / det, D: m.A / det,
	}
	// transpose: swap the off-diagonal entries
	inv.B, inv.C = inv.C, inv.B
	return inv, nil
}
