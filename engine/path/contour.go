package path

import (
	"github.com/npillmayer/punchcut/core"
	"github.com/npillmayer/punchcut/core/glyph"
)

// FromContour builds an editable path from a persisted contour. The
// representation is chosen by the point types present: hyperbezier
// points yield a hyperbezier path, quadratic points a quadratic path,
// anything else a cubic path. Closed contours are re-ordered into
// storage order, with the start point moved to the end of the list.
//
// Contours without a single on-curve point (other than all-off-curve
// quadratic contours, which are legal) are rejected.
func FromContour(c glyph.Contour) (Path, error) {
	if c.IsEmpty() {
		return nil, core.Error(core.EINVALID, "cannot build a path from an empty contour")
	}
	switch {
	case c.IsHyper():
		return hyperFromContour(c)
	case c.IsQuadratic(), allOffCurve(c):
		return quadFromContour(c)
	default:
		return cubicFromContour(c)
	}
}

// allOffCurve is true for TrueType-style contours consisting of control
// points only, with every on-curve point implied.
func allOffCurve(c glyph.Contour) bool {
	for _, cp := range c.Points {
		if cp.Type != glyph.OffCurve {
			return false
		}
	}
	return len(c.Points) > 0
}

func hyperFromContour(c glyph.Contour) (Path, error) {
	pts := make([]PathPoint, 0, len(c.Points))
	for _, cp := range c.Points {
		if cp.Type == glyph.OffCurve {
			tracer().Errorf("ignoring off-curve point in hyperbezier contour")
			continue
		}
		smooth := cp.Smooth || cp.Type == glyph.Hyper
		if cp.Type == glyph.HyperCorner {
			smooth = false
		}
		pts = append(pts, Point(cp.X, cp.Y, smooth))
	}
	if len(pts) == 0 {
		return nil, core.Error(core.EINVALID, "hyperbezier contour has no usable points")
	}
	if c.Closed {
		pts = rotateLeft(pts, 1)
	}
	return HyperFromPoints(pts, c.Closed), nil
}

func quadFromContour(c glyph.Contour) (Path, error) {
	pts := contourPoints(c)
	return QuadFromPoints(pts, c.Closed), nil
}

func cubicFromContour(c glyph.Contour) (Path, error) {
	pts := contourPoints(c)
	if !hasOnCurve(pts) {
		return nil, core.Error(core.EINVALID, "contour has no on-curve point")
	}
	return CubicFromPoints(pts, c.Closed), nil
}

// contourPoints maps persisted points to path points, moving the start
// point of a closed contour to the end of the list.
func contourPoints(c glyph.Contour) []PathPoint {
	pts := make([]PathPoint, 0, len(c.Points))
	for _, cp := range c.Points {
		if cp.Type == glyph.OffCurve {
			pts = append(pts, ControlPoint(cp.X, cp.Y, false))
		} else {
			pts = append(pts, Point(cp.X, cp.Y, cp.Smooth))
		}
	}
	if c.Closed {
		pts = rotateLeft(pts, 1)
	}
	return pts
}
