package path

import (
	"fmt"
	"iter"

	"github.com/npillmayer/punchcut/core/glyph"
	"honnef.co/go/curve"
)

// CubicPath is an outline of line and cubic Bézier segments. It is the
// default representation for drawing with the pen tool and the target of
// conversions from the other representations.
type CubicPath struct {
	pathcore
}

// NewCubicPath starts an open path at the given point, as the pen tool
// does on its first click.
func NewCubicPath(start curve.Point, smooth bool) *CubicPath {
	return &CubicPath{pathcore{
		id:     glyph.NewEntityID(),
		points: []PathPoint{Point(start.X, start.Y, smooth)},
	}}
}

// CubicFromPoints assembles a path from a prepared point list, taking
// ownership of the slice. Closed paths are expected in storage order,
// with the start point last.
func CubicFromPoints(pts []PathPoint, closed bool) *CubicPath {
	return &CubicPath{pathcore{
		id:     glyph.NewEntityID(),
		points: pts,
		closed: closed,
	}}
}

func (p *CubicPath) Segments() []Segment {
	return segmentsOf(&p.pathcore, 2)
}

func (p *CubicPath) Elements() iter.Seq[curve.PathElement] {
	if len(p.points) == 0 {
		return elementsOf(curve.Point{}, nil, false, true)
	}
	return elementsOf(p.StartPoint().Pt, p.Segments(), p.closed, false)
}

func (p *CubicPath) Bounds() curve.Rect {
	return boundsOf(p.Elements())
}

// SplitSegment inserts an on-curve point on seg at parameter t. Line
// segments gain a corner point; curve segments are subdivided exactly
// and gain a smooth point with two flanking control points.
func (p *CubicPath) SplitSegment(seg Segment, t float64) PathPoint {
	return splitCurveSegment(&p.pathcore, seg, t)
}

func (p *CubicPath) Clone() Path {
	return &CubicPath{pathcore{
		id:     p.id,
		points: p.clonePoints(),
		closed: p.closed,
	}}
}

// Contour returns the persisted form: a closed contour starts with the
// start point, whose type describes the closing segment.
func (p *CubicPath) Contour() glyph.Contour {
	return contourOf(&p.pathcore, glyph.Curve)
}

// ToHyper converts to a hyperbezier path over the same on-curve points,
// dropping the control points. Identities and smooth flags carry over.
func (p *CubicPath) ToHyper() *HyperPath {
	var pts []PathPoint
	for _, pp := range p.points {
		if pp.IsOnCurve() {
			pts = append(pts, pp)
		}
	}
	h := &HyperPath{pathcore: pathcore{
		id:     p.id,
		points: pts,
		closed: p.closed,
	}}
	h.AfterChange()
	return h
}

func (p *CubicPath) String() string {
	return fmt.Sprintf("CubicPath#%d(%d points, closed=%v)", p.id, len(p.points), p.closed)
}

// splitCurveSegment subdivides seg at t and splices the two halves into
// the stored point list. It relies on every segment's control points
// being stored contiguously right before the segment's end point.
func splitCurveSegment(pc *pathcore, seg Segment, t float64) PathPoint {
	tracer().Debugf("splitting %v segment of path %d at t=%.4g", seg.Seg.Kind, pc.id, t)
	switch seg.Seg.Kind {
	case curve.LineKind:
		mid := PathPoint{ID: glyph.NewEntityID(), Pt: seg.Eval(t), Kind: Corner}
		pc.splice(seg.EndIndex, 0, mid)
		return mid
	case curve.QuadKind:
		l := seg.Seg.Subsegment(0, t).Quad()
		r := seg.Seg.Subsegment(t, 1).Quad()
		mid := PathPoint{ID: glyph.NewEntityID(), Pt: l.P2, Kind: Smooth}
		pc.splice(seg.EndIndex-1, 1,
			PathPoint{ID: glyph.NewEntityID(), Pt: l.P1, Kind: Control},
			mid,
			PathPoint{ID: glyph.NewEntityID(), Pt: r.P1, Kind: Control},
		)
		return mid
	default:
		l := seg.Seg.Subsegment(0, t).Cubic()
		r := seg.Seg.Subsegment(t, 1).Cubic()
		mid := PathPoint{ID: glyph.NewEntityID(), Pt: l.P3, Kind: Smooth}
		pc.splice(seg.EndIndex-2, 2,
			PathPoint{ID: glyph.NewEntityID(), Pt: l.P1, Kind: Control},
			PathPoint{ID: glyph.NewEntityID(), Pt: l.P2, Kind: Control},
			mid,
			PathPoint{ID: glyph.NewEntityID(), Pt: r.P1, Kind: Control},
			PathPoint{ID: glyph.NewEntityID(), Pt: r.P2, Kind: Control},
		)
		return mid
	}
}

// contourOf converts a stored point list to the persisted contour form.
// curveType is the point type recorded for an on-curve point reached
// through a control run, Curve for cubic paths and QCurve for quadratic
// ones.
func contourOf(pc *pathcore, curveType glyph.PointType) glyph.Contour {
	n := len(pc.points)
	pts := make([]glyph.ContourPoint, 0, n)
	for _, pp := range pc.points {
		pts = append(pts, glyph.ContourPoint{
			X:      pp.Pt.X,
			Y:      pp.Pt.Y,
			Smooth: pp.Kind == Smooth,
		})
	}
	if pc.closed {
		rotateContour(pts, n-1) // start point comes first in contour form
	}
	stored := func(i int) PathPoint {
		if pc.closed {
			return pc.points[(i+n-1)%n]
		}
		return pc.points[i]
	}
	for i := range pts {
		src := stored(i)
		if !src.IsOnCurve() {
			pts[i].Type = glyph.OffCurve
			pts[i].Smooth = false
			continue
		}
		switch {
		case i == 0 && !pc.closed:
			pts[i].Type = glyph.Move
		case !stored((i + n - 1) % n).IsOnCurve():
			pts[i].Type = curveType
		default:
			pts[i].Type = glyph.Line
		}
	}
	return glyph.Contour{Points: pts, Closed: pc.closed}
}

// rotateContour rotates pts left so that index start becomes index 0.
func rotateContour(pts []glyph.ContourPoint, start int) {
	if start == 0 || len(pts) == 0 {
		return
	}
	n := len(pts)
	rotated := make([]glyph.ContourPoint, 0, n)
	rotated = append(rotated, pts[start:]...)
	rotated = append(rotated, pts[:start]...)
	copy(pts, rotated)
}
