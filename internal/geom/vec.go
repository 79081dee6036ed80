package geom

import "fmt"

// Vec is a 2D direction vector. Unlike Point it is never subject to
// translation, only to the linear part of a transform.
type Vec struct {
	X float64
	Y float64
}

func (v Vec) Add(other Vec) Vec {
	return Vec{X: v.X + other.X, Y: v.Y + other.Y}
}

func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Dot returns the standard 2-vector dot product.
func (v Vec) Dot(other Vec) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Perp rotates the vector 90° counter-clockwise: (x, y) -> (-y, x).
func (v Vec) Perp() Vec {
	return Vec{X: -v.Y, Y: v.X}
}

func (v Vec) String() string {
	return fmt.Sprintf("(%.4f, %.4f)", v.X, v.Y)
}
