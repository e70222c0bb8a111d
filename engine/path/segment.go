package path

import (
	"iter"

	"github.com/npillmayer/punchcut/core/glyph"
	"honnef.co/go/curve"
)

// Segment is one on-curve to on-curve piece of a path, with its control
// geometry attached. Segments are snapshots: they are produced by a walk
// over the path and become stale as soon as the path is mutated.
type Segment struct {
	PathID glyph.EntityID
	// Start and End are copies of the on-curve endpoints.
	Start, End PathPoint
	// StartIndex and EndIndex locate the endpoints in the stored point
	// list. For the first segment of a closed path StartIndex is the
	// last index, as closed paths store their start point last.
	StartIndex, EndIndex int
	// Seg is the line, quadratic or cubic geometry of the segment.
	Seg curve.PathSegment
}

// Eval returns the point at parameter t on the segment, t in [0,1].
func (s Segment) Eval(t float64) curve.Point {
	return s.Seg.Eval(t)
}

// Nearest returns the parameter of the nearest point on the segment to
// pt, together with the squared distance.
func (s Segment) Nearest(pt curve.Point) (distSq, t float64) {
	return s.Seg.Nearest(pt, 1e-9)
}

// segmentsOf walks the stored point list and assembles segments. maxRun
// is the longest admissible off-curve run, 2 for cubic paths and 1 for
// quadratic paths. Longer runs are clamped and traced as errors; an
// unfinished trailing run of an open path is skipped silently.
func segmentsOf(pc *pathcore, maxRun int) []Segment {
	n := len(pc.points)
	if n < 2 {
		return nil
	}
	var segs []Segment
	var run []int
	prev := 0
	first := 1
	if pc.closed {
		prev = n - 1
		first = 0
	}
	for i := first; i < n; i++ {
		if !pc.points[i].IsOnCurve() {
			run = append(run, i)
			continue
		}
		segs = append(segs, buildSegment(pc, prev, i, run, maxRun))
		prev = i
		run = run[:0]
	}
	return segs
}

func buildSegment(pc *pathcore, from, to int, run []int, maxRun int) Segment {
	start, end := pc.points[from], pc.points[to]
	if len(run) > maxRun {
		tracer().Errorf("path %d: control run of %d between points %d and %d", pc.id, len(run), from, to)
		run = run[:maxRun]
	}
	var seg curve.PathSegment
	switch len(run) {
	case 0:
		seg = curve.Line{P0: start.Pt, P1: end.Pt}.Seg()
	case 1:
		seg = curve.QuadBez{P0: start.Pt, P1: pc.points[run[0]].Pt, P2: end.Pt}.Seg()
	default:
		seg = curve.CubicBez{
			P0: start.Pt,
			P1: pc.points[run[0]].Pt,
			P2: pc.points[run[1]].Pt,
			P3: end.Pt,
		}.Seg()
	}
	return Segment{
		PathID:     pc.id,
		Start:      start,
		End:        end,
		StartIndex: from,
		EndIndex:   to,
		Seg:        seg,
	}
}

// elementsOf turns a segment list into a renderable element sequence.
func elementsOf(start curve.Point, segs []Segment, closed bool, empty bool) iter.Seq[curve.PathElement] {
	return func(yield func(curve.PathElement) bool) {
		if empty {
			return
		}
		if !yield(curve.MoveTo(start)) {
			return
		}
		for _, s := range segs {
			if !yield(s.Seg.PathElement()) {
				return
			}
		}
		if closed {
			yield(curve.ClosePath())
		}
	}
}

// boundsOf computes the bounding box of an element sequence.
func boundsOf(elements iter.Seq[curve.PathElement]) curve.Rect {
	var bp curve.BezPath
	for el := range elements {
		bp = append(bp, el)
	}
	if len(bp) == 0 {
		return curve.Rect{}
	}
	return bp.BoundingBox()
}
