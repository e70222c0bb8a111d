package path

import (
	"fmt"
	"iter"

	"github.com/npillmayer/punchcut/core/glyph"
	"honnef.co/go/curve"
)

// QuadraticPath is an outline of line and quadratic Bézier segments, as
// produced by importing TrueType-flavoured fonts. Consecutive off-curve
// points with an implied on-curve midpoint are normalized away on
// construction, so every control run has length one.
type QuadraticPath struct {
	pathcore
}

// QuadFromPoints assembles a path from a prepared point list, taking
// ownership of the slice. Closed paths are expected in storage order,
// with the start point last.
func QuadFromPoints(pts []PathPoint, closed bool) *QuadraticPath {
	return &QuadraticPath{pathcore{
		id:     glyph.NewEntityID(),
		points: normalizeImplied(pts, closed),
		closed: closed,
	}}
}

func (p *QuadraticPath) Segments() []Segment {
	return segmentsOf(&p.pathcore, 1)
}

func (p *QuadraticPath) Elements() iter.Seq[curve.PathElement] {
	if len(p.points) == 0 {
		return elementsOf(curve.Point{}, nil, false, true)
	}
	return elementsOf(p.StartPoint().Pt, p.Segments(), p.closed, false)
}

func (p *QuadraticPath) Bounds() curve.Rect {
	return boundsOf(p.Elements())
}

func (p *QuadraticPath) SplitSegment(seg Segment, t float64) PathPoint {
	return splitCurveSegment(&p.pathcore, seg, t)
}

func (p *QuadraticPath) Clone() Path {
	return &QuadraticPath{pathcore{
		id:     p.id,
		points: p.clonePoints(),
		closed: p.closed,
	}}
}

func (p *QuadraticPath) Contour() glyph.Contour {
	return contourOf(&p.pathcore, glyph.QCurve)
}

// ToCubic converts to an exactly equivalent cubic path by degree
// elevation of every quadratic segment. On-curve points keep their
// identities; the elevated control points are new.
func (p *QuadraticPath) ToCubic() *CubicPath {
	segs := p.Segments()
	pts := make([]PathPoint, 0, len(p.points)+len(segs))
	if !p.closed && len(p.points) > 0 {
		pts = append(pts, p.points[0])
	}
	for _, s := range segs {
		if s.Seg.Kind == curve.QuadKind {
			raised := s.Seg.Quad().Raise()
			pts = append(pts,
				PathPoint{ID: glyph.NewEntityID(), Pt: raised.P1, Kind: Control},
				PathPoint{ID: glyph.NewEntityID(), Pt: raised.P2, Kind: Control},
			)
		}
		pts = append(pts, s.End)
	}
	if len(pts) == 0 {
		pts = p.clonePoints()
	}
	c := &CubicPath{pathcore{
		id:     p.id,
		points: pts,
		closed: p.closed,
	}}
	return c
}

func (p *QuadraticPath) String() string {
	return fmt.Sprintf("QuadraticPath#%d(%d points, closed=%v)", p.id, len(p.points), p.closed)
}

// normalizeImplied inserts an explicit on-curve point at the midpoint of
// every pair of consecutive off-curve points.
func normalizeImplied(pts []PathPoint, closed bool) []PathPoint {
	n := len(pts)
	if n < 2 {
		return pts
	}
	out := make([]PathPoint, 0, n)
	for i, pp := range pts {
		out = append(out, pp)
		if pp.IsOnCurve() {
			continue
		}
		j := i + 1
		if j >= n {
			if !closed {
				break
			}
			j = 0
		}
		next := pts[j]
		if next.IsOnCurve() {
			continue
		}
		mid := pp.Pt.Midpoint(next.Pt)
		out = append(out, PathPoint{ID: glyph.NewEntityID(), Pt: mid, Kind: Smooth})
	}
	// a closed list must still end with an on-curve start point
	if closed && len(out) > 0 && !out[len(out)-1].IsOnCurve() {
		i := len(out) - 1
		for i >= 0 && !out[i].IsOnCurve() {
			i--
		}
		if i >= 0 {
			out = rotateLeft(out, i+1)
		}
	}
	return out
}
