package glyph

import (
	"fmt"
	"strings"
)

// PointType tags a contour point with its role in the outline.
//
// Move starts an open contour. Line and Curve terminate a line respectively
// cubic segment, QCurve a quadratic one. OffCurve marks a bezier control
// point. Hyper and HyperCorner mark the on-curve points of a hyperbezier
// contour, which persists no control points at all.
type PointType int

//go:generate stringer -type=PointType
const (
	Move PointType = iota
	Line
	Curve
	QCurve
	OffCurve
	Hyper
	HyperCorner
)

// IsOnCurve is true for every point type the outline passes through.
func (ptype PointType) IsOnCurve() bool {
	return ptype != OffCurve
}

// A ContourPoint is one entry of a persisted contour: a coordinate plus its
// point type. Smooth records tangent continuity for Line/Curve/QCurve
// points; for Hyper and HyperCorner points smoothness is encoded in the
// type itself and Smooth is ignored.
type ContourPoint struct {
	X, Y   float64
	Type   PointType
	Smooth bool
}

// Pt builds a contour point.
func Pt(x, y float64, ptype PointType) ContourPoint {
	return ContourPoint{X: x, Y: y, Type: ptype}
}

// SmoothPt builds a smooth contour point.
func SmoothPt(x, y float64, ptype PointType) ContourPoint {
	return ContourPoint{X: x, Y: y, Type: ptype, Smooth: true}
}

// A Contour is the persisted form of a single outline path: an ordered
// point list plus a closed flag. Closed contours list their points in
// drawing order, beginning with the start point; the start point's type
// describes the segment closing the contour. Open contours begin with a
// point of type Move.
type Contour struct {
	Points []ContourPoint
	Closed bool
}

// IsEmpty is true for a contour without points.
func (c Contour) IsEmpty() bool {
	return len(c.Points) == 0
}

// IsHyper is true if the contour carries hyperbezier point types.
func (c Contour) IsHyper() bool {
	for _, p := range c.Points {
		if p.Type == Hyper || p.Type == HyperCorner {
			return true
		}
	}
	return false
}

// IsQuadratic is true if the contour carries quadratic point types
// (and no hyperbezier ones).
func (c Contour) IsQuadratic() bool {
	if c.IsHyper() {
		return false
	}
	for _, p := range c.Points {
		if p.Type == QCurve {
			return true
		}
	}
	return false
}

func (c Contour) String() string {
	var sb strings.Builder
	if c.Closed {
		sb.WriteString("closed[")
	} else {
		sb.WriteString("open[")
	}
	for i, p := range c.Points {
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "(%g,%g %s)", p.X, p.Y, p.Type)
	}
	sb.WriteString("]")
	return sb.String()
}
