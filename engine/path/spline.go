package path

import (
	"math/cmplx"

	"github.com/npillmayer/arithm"
	"github.com/npillmayer/arithm/jhobby"
	"honnef.co/go/curve"
)

// Hyperbezier paths are solved with Hobby's spline algorithm, which
// produces a curvature-continuous cubic chain through the on-curve
// points. Corner points interrupt continuity: the point list is split
// at corners into independent runs, each solved as an open Hobby path
// whose natural end conditions give MetaFont's corner behaviour.

const coincidentEps = 1e-9

// knot is an on-curve point prepared for solving, with its index into
// the stored point list.
type knot struct {
	pp  PathPoint
	idx int
}

// solvedSpline is the cached result of a spline solve.
type solvedSpline struct {
	segs     []Segment
	elements []curve.PathElement
}

// solveHyper computes the drawable form of a hyperbezier point list.
// It never fails: degenerate inputs yield a degenerate (possibly empty)
// result.
func solveHyper(pc *pathcore) *solvedSpline {
	knots := drawOrderKnots(pc)
	if len(knots) == 0 {
		return &solvedSpline{}
	}
	if len(knots) == 1 {
		sv := &solvedSpline{}
		sv.elements = append(sv.elements, curve.MoveTo(knots[0].pp.Pt))
		if pc.closed {
			sv.elements = append(sv.elements, curve.ClosePath())
		}
		return sv
	}
	cyclic := pc.closed && len(knots) >= 3
	var segs []Segment
	if cyclic {
		if first := firstCorner(knots); first < 0 {
			segs = solveCycle(pc, knots)
		} else {
			segs = solveCornerRuns(pc, rotateKnots(knots, first), true)
		}
	} else {
		segs = solveCornerRuns(pc, knots, false)
	}
	sv := &solvedSpline{segs: segs}
	start := knots[0].pp.Pt
	if len(segs) > 0 {
		start = segs[0].Start.Pt // corner rotation may shift the draw start
	}
	sv.elements = append(sv.elements, curve.MoveTo(start))
	for _, s := range segs {
		sv.elements = append(sv.elements, s.Seg.PathElement())
	}
	if pc.closed {
		sv.elements = append(sv.elements, curve.ClosePath())
	}
	tracer().Debugf("solved path %d: %d knots, %d segments", pc.id, len(knots), len(segs))
	return sv
}

// drawOrderKnots collects the on-curve points in drawing order, merging
// coincident neighbours. For closed paths drawing order starts at the
// last stored point.
func drawOrderKnots(pc *pathcore) []knot {
	n := len(pc.points)
	knots := make([]knot, 0, n)
	push := func(i int) {
		pp := pc.points[i]
		if !pp.IsOnCurve() {
			tracer().Errorf("path %d: off-curve point at %d in hyperbezier list", pc.id, i)
			return
		}
		if len(knots) > 0 && coincident(knots[len(knots)-1].pp.Pt, pp.Pt) {
			return
		}
		knots = append(knots, knot{pp: pp, idx: i})
	}
	if pc.closed {
		push(n - 1)
		for i := 0; i < n-1; i++ {
			push(i)
		}
		// the wrap seam may coincide as well
		if len(knots) > 1 && coincident(knots[len(knots)-1].pp.Pt, knots[0].pp.Pt) {
			knots = knots[:len(knots)-1]
		}
	} else {
		for i := 0; i < n; i++ {
			push(i)
		}
	}
	return knots
}

func coincident(a, b curve.Point) bool {
	return a.DistanceSquared(b) < coincidentEps
}

func firstCorner(knots []knot) int {
	for i, k := range knots {
		if k.pp.Kind == Corner {
			return i
		}
	}
	return -1
}

func rotateKnots(knots []knot, n int) []knot {
	if n == 0 {
		return knots
	}
	out := make([]knot, 0, len(knots))
	out = append(out, knots[n:]...)
	out = append(out, knots[:n]...)
	return out
}

// solveCycle solves a fully smooth closed point list as one cyclic
// Hobby path.
func solveCycle(pc *pathcore, knots []knot) []Segment {
	ctrls := hobbySolve(knots, true)
	n := len(knots)
	segs := make([]Segment, 0, n)
	for i := 1; i <= n; i++ {
		from, to := knots[i-1], knots[i%n]
		c1 := pairPoint(ctrls.PostControl(i-1), from.pp.Pt, to.pp.Pt, 1)
		c2 := pairPoint(ctrls.PreControl(i%n), from.pp.Pt, to.pp.Pt, 2)
		segs = append(segs, hyperSegment(pc, from, to, c1, c2))
	}
	return segs
}

// solveCornerRuns splits the knots at corner points and solves each run
// as an open Hobby path. When wrap is set the final run closes the loop
// back to the first knot, which must be a corner.
func solveCornerRuns(pc *pathcore, knots []knot, wrap bool) []Segment {
	var segs []Segment
	n := len(knots)
	runStart := 0
	flush := func(run []knot) {
		if len(run) < 2 {
			return
		}
		ctrls := hobbySolve(run, false)
		for i := 1; i < len(run); i++ {
			from, to := run[i-1], run[i]
			c1 := pairPoint(ctrls.PostControl(i-1), from.pp.Pt, to.pp.Pt, 1)
			c2 := pairPoint(ctrls.PreControl(i), from.pp.Pt, to.pp.Pt, 2)
			segs = append(segs, hyperSegment(pc, from, to, c1, c2))
		}
	}
	for i := 1; i < n; i++ {
		if knots[i].pp.Kind == Corner {
			flush(knots[runStart : i+1])
			runStart = i
		}
	}
	tail := knots[runStart:]
	if wrap {
		tail = append(append([]knot{}, tail...), knots[0])
	}
	flush(tail)
	return segs
}

// hobbySolve runs the Hobby algorithm over the knots and returns the
// solved control points.
func hobbySolve(knots []knot, cyclic bool) jhobby.SplineControls {
	b := jhobby.Nullpath().Knot(pairOf(knots[0].pp.Pt))
	for _, k := range knots[1:] {
		b = b.Curve().Knot(pairOf(k.pp.Pt))
	}
	if cyclic {
		p, controls := b.Curve().Cycle()
		return jhobby.FindHobbyControls(p, controls)
	}
	p, controls := b.End()
	return jhobby.FindHobbyControls(p, controls)
}

func pairOf(pt curve.Point) arithm.Pair {
	return arithm.P(pt.X, pt.Y)
}

// pairPoint converts a solved control to a point. A control the solver
// could not determine falls back onto the chord, at one or two thirds
// for the first and second control respectively.
func pairPoint(z arithm.Pair, from, to curve.Point, which int) curve.Point {
	c := z.C()
	if cmplx.IsNaN(c) || cmplx.IsInf(c) {
		return from.Lerp(to, float64(which)/3)
	}
	return curve.Pt(real(c), imag(c))
}

func hyperSegment(pc *pathcore, from, to knot, c1, c2 curve.Point) Segment {
	return Segment{
		PathID:     pc.id,
		Start:      from.pp,
		End:        to.pp,
		StartIndex: from.idx,
		EndIndex:   to.idx,
		Seg: curve.CubicBez{
			P0: from.pp.Pt,
			P1: c1,
			P2: c2,
			P3: to.pp.Pt,
		}.Seg(),
	}
}
