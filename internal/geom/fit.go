package geom

// Viewport maps world coordinates onto a fixed-size rendering surface
// with a top-left origin. The mapping pads the world bounds by a
// margin, scales uniformly by the smaller of the two axis factors
// (letterboxing the other axis) and flips the y-axis.
type Viewport struct {
	bounds BBox
	scale  float64
	offX   float64
	offY   float64
	height float64
}

// FitViewport builds a Viewport that fits bounds into a w x h surface
// after padding the bounds by margin in world units.
func FitViewport(bounds BBox, w, h, margin float64) Viewport {
	bb := bounds.Pad(margin)

	scale := 1.0
	switch {
	case bb.Width() > 0 && bb.Height() > 0:
		scale = min(w/bb.Width(), h/bb.Height())
	case bb.Width() > 0:
		scale = w / bb.Width()
	case bb.Height() > 0:
		scale = h / bb.Height()
	}

	return Viewport{
		bounds: bb,
		scale:  scale,
		offX:   (w - bb.Width()*scale) / 2,
		offY:   (h - bb.Height()*scale) / 2,
		height: h,
	}
}

// Scale returns the world-to-surface scale factor.
func (v Viewport) Scale() float64 {
	return v.scale
}

// Project maps a world point to surface coordinates.
func (v Viewport) Project(p Point) (float64, float64) {
	x := v.offX + (p.X-v.bounds.MinX)*v.scale
	y := v.height - v.offY - (p.Y-v.bounds.MinY)*v.scale
	return x, y
}
