package geom

import (
	"math"
	"strings"
)

// Polygon is an ordered sequence of at least three vertices. Edges run
// between consecutive vertices, wrapping from the last back to the
// first. Winding direction and self-intersection are not enforced.
//
// A Polygon is never mutated; every transform returns a new one of the
// same length.
type Polygon struct {
	pts []Point
}

// NewPolygon builds a polygon from the given vertices in order. It
// fails with a ValidationError when fewer than three are supplied.
func NewPolygon(pts ...Point) (Polygon, error) {
	if len(pts) < 3 {
		return Polygon{}, &ValidationError{Reason: "polygon needs at least 3 points"}
	}
	cp := make([]Point, len(pts))
	copy(cp, pts)
	return Polygon{pts: cp}, nil
}

// MustPolygon is NewPolygon for fixed vertex lists known to be valid.
func MustPolygon(pts ...Point) Polygon {
	p, err := NewPolygon(pts...)
	if err != nil {
		panic(err)
	}
	return p
}

// Points returns a copy of the vertex list.
func (p Polygon) Points() []Point {
	cp := make([]Point, len(p.pts))
	copy(cp, p.pts)
	return cp
}

func (p Polygon) Len() int {
	return len(p.pts)
}

// Affine applies x' = a*x + b*y + tx, y' = c*x + d*y + ty to every
// vertex independently. All other transforms reduce to this primitive.
func (p Polygon) Affine(a, b, c, d, tx, ty float64) Polygon {
	out := make([]Point, len(p.pts))
	for i, pt := range p.pts {
		out[i] = Point{
			X: a*pt.X + b*pt.Y + tx,
			Y: c*pt.X + d*pt.Y + ty,
		}
	}
	return Polygon{pts: out}
}

func (p Polygon) Translate(dx, dy float64) Polygon {
	return p.Affine(1, 0, 0, 1, dx, dy)
}

// Scale scales about the polygon's own centroid, not the origin: the
// translation part is chosen so the centroid maps to itself and the
// shape grows in place instead of drifting toward the origin.
func (p Polygon) Scale(sx, sy float64) Polygon {
	c := p.Centroid()
	tx := c.X - sx*c.X
	ty := c.Y - sy*c.Y
	return p.Affine(sx, 0, 0, sy, tx, ty)
}

// ScaleUniform scales by the same factor on both axes.
func (p Polygon) ScaleUniform(s float64) Polygon {
	return p.Scale(s, s)
}

// Rotate rotates counter-clockwise by the given angle in degrees, about
// the origin. Rotation deliberately does not recenter on the centroid
// the way Scale does.
func (p Polygon) Rotate(degrees float64) Polygon {
	sin, cos := math.Sincos(degrees * math.Pi / 180)
	return p.Affine(cos, -sin, sin, cos, 0, 0)
}

func (p Polygon) Shear(shx, shy float64) Polygon {
	return p.Affine(1, shx, shy, 1, 0, 0)
}

// Reflect mirrors the polygon over the given axis. It fails with a
// ValidationError for an Axis value outside the enumeration.
func (p Polygon) Reflect(axis Axis) (Polygon, error) {
	switch axis {
	case AxisX:
		return p.Affine(1, 0, 0, -1, 0, 0), nil
	case AxisY:
		return p.Affine(-1, 0, 0, 1, 0, 0), nil
	case AxisOrigin:
		return p.Affine(-1, 0, 0, -1, 0, 0), nil
	case AxisDiag:
		return p.Affine(0, 1, 1, 0, 0, 0), nil
	default:
		return Polygon{}, &ValidationError{Reason: "unknown axis"}
	}
}

// Centroid returns the unweighted arithmetic mean of the vertices. Scale
// pivots on this value, so it is the vertex average on purpose, not the
// area-weighted centroid.
func (p Polygon) Centroid() Point {
	var sx, sy float64
	for _, pt := range p.pts {
		sx += pt.X
		sy += pt.Y
	}
	n := float64(len(p.pts))
	return Point{X: sx / n, Y: sy / n}
}

// BBox returns the bounding box of the vertices.
func (p Polygon) BBox() BBox {
	bb := BBox{MinX: p.pts[0].X, MinY: p.pts[0].Y, MaxX: p.pts[0].X, MaxY: p.pts[0].Y}
	for _, pt := range p.pts[1:] {
		bb = bb.ExpandPoint(pt)
	}
	return bb
}

func (p Polygon) String() string {
	parts := make([]string, len(p.pts))
	for i, pt := range p.pts {
		parts[i] = pt.String()
	}
	return strings.Join(parts, " ")
}
