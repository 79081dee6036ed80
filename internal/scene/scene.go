// Package scene builds the data shown by every presentation adapter: a
// base polygon, a fixed list of named transform variants, and the
// tangent/normal transformation demo.
package scene

import (
	"goaffine/internal/geom"
)

// Variant is one named transform result. Color is a color name; each
// adapter maps it onto its own palette.
type Variant struct {
	Label string
	Color string
	Poly  geom.Polygon
}

type Scene struct {
	Base     geom.Polygon
	Variants []Variant
}

// Default returns the stock scene.
func Default() Scene {
	return FromBase(geom.MustPolygon(
		geom.Pt(1, 1), geom.Pt(4, 1), geom.Pt(3, 3), geom.Pt(1, 4),
	))
}

// FromBase derives the fixed variant list from any base polygon.
func FromBase(base geom.Polygon) Scene {
	mirrored, err := base.Reflect(geom.AxisY)
	if err != nil {
		// unreachable: AxisY is a member of the closed enum
		panic(err)
	}

	return Scene{
		Base: base,
		Variants: []Variant{
			{Label: "translate(2, -1)", Color: "red", Poly: base.Translate(2, -1)},
			{Label: "scale(1.5)", Color: "green", Poly: base.ScaleUniform(1.5)},
			{Label: "rotate(45°)", Color: "blue", Poly: base.Rotate(45)},
			{Label: "shear(0.4, 0.2)", Color: "orange", Poly: base.Shear(0.4, 0.2)},
			{Label: "reflect(y-axis)", Color: "purple", Poly: mirrored},
			{Label: "affine(1.1, 0.25, -0.15, 0.9)", Color: "teal", Poly: base.Affine(1.1, 0.25, -0.15, 0.9, 0.5, 0.75)},
		},
	}
}

// Bounds returns the bounding box of every output point in the scene,
// base polygon included. Adapters fit their canvas to this box.
func (s Scene) Bounds() geom.BBox {
	bb := s.Base.BBox()
	for _, v := range s.Variants {
		bb = bb.Union(v.Poly.BBox())
	}
	return bb
}
