package editor

import (
	"honnef.co/go/curve"
)

// Viewport maps between glyph design space and screen space. Design space
// has its origin on the baseline with y growing upward; screen space has y
// growing downward, so the mapping always flips the y-axis before scaling
// by the zoom factor and translating by the pan offset.
type Viewport struct {
	Zoom   float64    // screen pixels per design unit
	Offset curve.Vec2 // pan, in screen pixels
}

// NewViewport creates a viewport with zoom 1 and no pan.
func NewViewport() Viewport {
	return Viewport{Zoom: 1}
}

// Affine returns the design-to-screen transform.
func (vp Viewport) Affine() curve.Affine {
	z := vp.Zoom
	if z <= 0 {
		z = 1
	}
	return curve.FlipY.ThenScale(z, z).ThenTranslate(vp.Offset)
}

// ToScreen projects a design-space point to screen space.
func (vp Viewport) ToScreen(pt curve.Point) curve.Point {
	return pt.Transform(vp.Affine())
}

// ToDesign projects a screen-space point back to design space.
func (vp Viewport) ToDesign(pt curve.Point) curve.Point {
	return pt.Transform(vp.Affine().Invert())
}

// ToDesignVec converts a screen-space displacement to design space,
// undoing the zoom and the y-flip but not the pan.
func (vp Viewport) ToDesignVec(v curve.Vec2) curve.Vec2 {
	z := vp.Zoom
	if z <= 0 {
		z = 1
	}
	return curve.Vec(v.X/z, -v.Y/z)
}

// DesignDist converts a distance in screen pixels to design units.
func (vp Viewport) DesignDist(px float64) float64 {
	if vp.Zoom <= 0 {
		return px
	}
	return px / vp.Zoom
}

// ScreenDist converts a distance in design units to screen pixels.
func (vp Viewport) ScreenDist(du float64) float64 {
	if vp.Zoom <= 0 {
		return du
	}
	return du * vp.Zoom
}
