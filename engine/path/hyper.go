package path

import (
	"fmt"
	"iter"

	"github.com/npillmayer/punchcut/core/glyph"
	"honnef.co/go/curve"
)

// HyperPath is an outline described only by its on-curve points. The
// curve through them is a Hobby spline, curvature-continuous at every
// smooth point and interrupted at corner points. Control points are a
// by-product of the solve: they are displayed as auto points but cannot
// be positioned by hand.
//
// The solved curve is cached. Mutations drop the cache; AfterChange
// re-solves eagerly, and reads re-solve lazily if needed.
type HyperPath struct {
	pathcore
	solved *solvedSpline
}

// NewHyperPath starts an open hyperbezier path at the given point.
func NewHyperPath(start curve.Point, smooth bool) *HyperPath {
	p := &HyperPath{pathcore: pathcore{
		id:     glyph.NewEntityID(),
		points: []PathPoint{Point(start.X, start.Y, smooth)},
	}}
	p.AfterChange()
	return p
}

// HyperFromPoints assembles a hyperbezier path from a prepared on-curve
// point list, taking ownership of the slice. Closed paths are expected
// in storage order, with the start point last.
func HyperFromPoints(pts []PathPoint, closed bool) *HyperPath {
	kept := pts[:0]
	for _, pp := range pts {
		if !pp.IsOnCurve() {
			tracer().Errorf("dropping off-curve point %v from hyperbezier path", pp)
			continue
		}
		kept = append(kept, pp)
	}
	p := &HyperPath{pathcore: pathcore{
		id:     glyph.NewEntityID(),
		points: kept,
		closed: closed,
	}}
	p.AfterChange()
	return p
}

func (p *HyperPath) ensureSolved() {
	if p.solved == nil {
		p.solved = solveHyper(&p.pathcore)
	}
}

// AfterChange re-solves the spline.
func (p *HyperPath) AfterChange() {
	p.solved = solveHyper(&p.pathcore)
}

func (p *HyperPath) SetPoint(i int, pt curve.Point) {
	p.pathcore.SetPoint(i, pt)
	p.solved = nil
}

func (p *HyperPath) SetKind(i int, k PointKind) {
	p.pathcore.SetKind(i, k)
	p.solved = nil
}

// Append adds an on-curve point to the end of an open path. Off-curve
// kinds are coerced to smooth, since hyperbezier paths store no control
// points.
func (p *HyperPath) Append(pp PathPoint) {
	if !pp.IsOnCurve() {
		tracer().Errorf("coercing off-curve point %v appended to hyperbezier path", pp)
		pp.Kind = Smooth
	}
	p.pathcore.Append(pp)
	p.solved = nil
}

func (p *HyperPath) RemoveLast() (PathPoint, bool) {
	pp, ok := p.pathcore.RemoveLast()
	if ok {
		p.solved = nil
	}
	return pp, ok
}

func (p *HyperPath) Close() glyph.EntityID {
	id := p.pathcore.Close()
	p.solved = nil
	return id
}

func (p *HyperPath) Delete(ids map[glyph.EntityID]bool) bool {
	empty := p.pathcore.Delete(ids)
	p.solved = nil
	return empty
}

func (p *HyperPath) Reverse() {
	p.pathcore.Reverse()
	p.solved = nil
}

func (p *HyperPath) Segments() []Segment {
	p.ensureSolved()
	return p.solved.segs
}

func (p *HyperPath) Elements() iter.Seq[curve.PathElement] {
	p.ensureSolved()
	els := p.solved.elements
	return func(yield func(curve.PathElement) bool) {
		for _, el := range els {
			if !yield(el) {
				return
			}
		}
	}
}

func (p *HyperPath) Bounds() curve.Rect {
	return boundsOf(p.Elements())
}

// SplitSegment inserts a smooth point on seg at parameter t. The spline
// re-solves, so the outline near the insertion changes shape slightly.
func (p *HyperPath) SplitSegment(seg Segment, t float64) PathPoint {
	at := seg.Eval(t)
	mid := PathPoint{ID: glyph.NewEntityID(), Pt: at, Kind: Smooth}
	p.splice(seg.EndIndex, 0, mid)
	p.AfterChange()
	return mid
}

func (p *HyperPath) Clone() Path {
	return &HyperPath{pathcore: pathcore{
		id:     p.id,
		points: p.clonePoints(),
		closed: p.closed,
	}}
}

// Contour returns the persisted form. Smooth points are recorded as
// hyperbezier points, corners as hyperbezier corners; an open path
// starts with a move point.
func (p *HyperPath) Contour() glyph.Contour {
	n := len(p.points)
	pts := make([]glyph.ContourPoint, 0, n)
	for _, pp := range p.points {
		cp := glyph.ContourPoint{X: pp.Pt.X, Y: pp.Pt.Y, Smooth: pp.Kind == Smooth}
		if pp.Kind == Smooth {
			cp.Type = glyph.Hyper
		} else {
			cp.Type = glyph.HyperCorner
		}
		pts = append(pts, cp)
	}
	if p.closed {
		rotateContour(pts, n-1)
	} else if len(pts) > 0 {
		pts[0].Type = glyph.Move
	}
	return glyph.Contour{Points: pts, Closed: p.closed}
}

// DisplayPoints returns the points to render for editing: the stored
// on-curve points interleaved with the solved auto controls. Auto
// points carry a zero identity and are not addressable.
func (p *HyperPath) DisplayPoints() []PathPoint {
	p.ensureSolved()
	segs := p.solved.segs
	if len(segs) == 0 {
		return p.clonePoints()
	}
	out := make([]PathPoint, 0, len(p.points)+2*len(segs))
	out = append(out, segs[0].Start)
	for i, s := range segs {
		if s.Seg.Kind == curve.CubicKind {
			out = append(out,
				PathPoint{Pt: s.Seg.P1, Kind: Auto},
				PathPoint{Pt: s.Seg.P2, Kind: Auto},
			)
		}
		if p.closed && i == len(segs)-1 {
			break
		}
		out = append(out, s.End)
	}
	return out
}

// ToCubic materializes the solved spline as a cubic path. On-curve
// points keep their identities and kinds; the solved controls become
// ordinary control points.
func (p *HyperPath) ToCubic() *CubicPath {
	p.ensureSolved()
	segs := p.solved.segs
	var pts []PathPoint
	if len(segs) == 0 {
		pts = p.clonePoints()
	} else {
		if !p.closed {
			pts = append(pts, segs[0].Start)
		}
		for _, s := range segs {
			if s.Seg.Kind == curve.CubicKind {
				pts = append(pts,
					PathPoint{ID: glyph.NewEntityID(), Pt: s.Seg.P1, Kind: Control},
					PathPoint{ID: glyph.NewEntityID(), Pt: s.Seg.P2, Kind: Control},
				)
			}
			pts = append(pts, s.End)
		}
	}
	return &CubicPath{pathcore{
		id:     p.id,
		points: pts,
		closed: p.closed,
	}}
}

func (p *HyperPath) String() string {
	return fmt.Sprintf("HyperPath#%d(%d points, closed=%v)", p.id, len(p.points), p.closed)
}
