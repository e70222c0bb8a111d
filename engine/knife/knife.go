package knife

import (
	"sort"

	"github.com/npillmayer/punchcut/engine/path"
	"honnef.co/go/curve"
)

const (
	// parallelEps rejects near-parallel and zero-length configurations.
	parallelEps = 1e-9
	// hitEps merges intersections that coincide along the cut line, as
	// happens for tangential hits and hits on a shared segment joint.
	hitEps = 1e-6
	// restEps moves the start of the remaining cut line past the last
	// used intersection, so recursion cannot re-hit it.
	restEps = 1e-4
)

// Slice cuts every closed cubic path in paths along the given line. It
// returns the resulting path list and a flag telling whether any path
// was actually cut. Unaffected paths are carried over unchanged, as the
// same values. maxDepth bounds the recursion over the remaining line;
// when it is exhausted the cut so far is kept as a best effort.
func Slice(paths []path.Path, cut curve.Line, maxDepth int) ([]path.Path, bool) {
	if cut.P0.DistanceSquared(cut.P1) < parallelEps {
		return paths, false
	}
	out := make([]path.Path, 0, len(paths))
	changed := false
	for _, p := range paths {
		cp, ok := p.(*path.CubicPath)
		if !ok {
			out = append(out, p)
			continue
		}
		halves := slicePath(cp, cut, maxDepth)
		if halves == nil {
			out = append(out, p)
			continue
		}
		changed = true
		out = append(out, halves...)
	}
	return out, changed
}

// hit is one intersection of the cut line with a path segment.
type hit struct {
	lineT    float64
	segIndex int
	segT     float64
	pt       curve.Point
}

// slicePath cuts a single path. It returns nil when the line misses the
// path or yields fewer than two usable intersections.
func slicePath(cp *path.CubicPath, cut curve.Line, depth int) []path.Path {
	if depth <= 0 {
		tracer().Infof("cut recursion depth exhausted, emitting partial cut")
		return nil
	}
	segs := cp.Segments()
	if len(segs) == 0 {
		return nil
	}
	hits := intersections(segs, cut)
	if len(hits) < 2 {
		return nil
	}
	a, b := hits[0], hits[1]
	tracer().Debugf("cutting path %d between line t=%.4g and t=%.4g", cp.ID(), a.lineT, b.lineT)
	var one, two *path.CubicPath
	if cp.Closed() {
		one, two = splitClosed(cp, segs, a, b)
	} else {
		one, two = splitOpen(cp, segs, a, b)
	}
	// apply the rest of the line to both halves
	restStart := b.lineT + restEps
	if restStart >= 1 {
		return []path.Path{one, two}
	}
	rest := cut.Seg().Subsegment(restStart, 1).Line()
	var out []path.Path
	for _, half := range []*path.CubicPath{one, two} {
		if sub := slicePath(half, rest, depth-1); sub != nil {
			out = append(out, sub...)
		} else {
			out = append(out, half)
		}
	}
	return out
}

// intersections collects the intersections of the cut line with all
// segments, ordered by position along the line, merging coincident
// hits. Quadratic segments are elevated to cubics first.
func intersections(segs []path.Segment, cut curve.Line) []hit {
	var hits []hit
	for i, s := range segs {
		g := s.Seg
		if g.Kind == curve.QuadKind {
			g = g.Quad().Raise().Seg()
		}
		is, n := g.IntersectLine(cut)
		for _, ix := range is[:n] {
			t := clamp01(ix.SegmentT)
			hits = append(hits, hit{
				lineT:    ix.LineT,
				segIndex: i,
				segT:     t,
				pt:       g.Eval(t),
			})
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].lineT < hits[j].lineT })
	merged := hits[:0]
	for _, h := range hits {
		if len(merged) > 0 && h.lineT-merged[len(merged)-1].lineT < hitEps {
			continue
		}
		merged = append(merged, h)
	}
	return merged
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// piece is a run of segment geometry destined for one of the halves,
// together with the smoothness of the joint at its end.
type piece struct {
	seg       curve.PathSegment
	endSmooth bool
}

// splitClosed divides the path into two closed halves meeting along the
// cut between hits a and b. Control points of truncated segments come
// from de Casteljau subdivision of the segment's own geometry.
func splitClosed(cp *path.CubicPath, segs []path.Segment, a, b hit) (*path.CubicPath, *path.CubicPath) {
	// order the two hits along the path
	if b.segIndex < a.segIndex || (b.segIndex == a.segIndex && b.segT < a.segT) {
		a, b = b, a
	}
	m := len(segs)
	var inner, outer []piece

	// inner half: from a forward to b, closed by the cut edge
	if a.segIndex == b.segIndex {
		inner = appendPiece(inner, segs[a.segIndex], a.segT, b.segT, false)
	} else {
		inner = appendPiece(inner, segs[a.segIndex], a.segT, 1, smoothEnd(segs[a.segIndex]))
		for k := a.segIndex + 1; k < b.segIndex; k++ {
			inner = appendPiece(inner, segs[k], 0, 1, smoothEnd(segs[k]))
		}
		inner = appendPiece(inner, segs[b.segIndex], 0, b.segT, false)
	}
	inner = append(inner, piece{seg: curve.Line{P0: b.pt, P1: a.pt}.Seg()})

	// outer half: from b forward, wrapping, to a, closed by the cut edge
	outer = appendPiece(outer, segs[b.segIndex], b.segT, 1, smoothEnd(segs[b.segIndex]))
	for k := (b.segIndex + 1) % m; k != a.segIndex; k = (k + 1) % m {
		outer = appendPiece(outer, segs[k], 0, 1, smoothEnd(segs[k]))
	}
	outer = appendPiece(outer, segs[a.segIndex], 0, a.segT, false)
	outer = append(outer, piece{seg: curve.Line{P0: a.pt, P1: b.pt}.Seg()})

	return assembleClosed(inner), assembleClosed(outer)
}

// splitOpen divides an open path into two closed halves: the stretch
// between the hits becomes one path, the remainder the other, with the
// cut as a shared edge and a closing segment joining the original ends.
func splitOpen(cp *path.CubicPath, segs []path.Segment, a, b hit) (*path.CubicPath, *path.CubicPath) {
	if b.segIndex < a.segIndex || (b.segIndex == a.segIndex && b.segT < a.segT) {
		a, b = b, a
	}
	var inner, outer []piece

	// the stretch between the two hits
	if a.segIndex == b.segIndex {
		inner = appendPiece(inner, segs[a.segIndex], a.segT, b.segT, false)
	} else {
		inner = appendPiece(inner, segs[a.segIndex], a.segT, 1, smoothEnd(segs[a.segIndex]))
		for k := a.segIndex + 1; k < b.segIndex; k++ {
			inner = appendPiece(inner, segs[k], 0, 1, smoothEnd(segs[k]))
		}
		inner = appendPiece(inner, segs[b.segIndex], 0, b.segT, false)
	}
	inner = append(inner, piece{seg: curve.Line{P0: b.pt, P1: a.pt}.Seg()})

	// everything before the first hit and after the second, joined by
	// the cut edge and closed from the path's end back to its start
	for k := 0; k < a.segIndex; k++ {
		outer = appendPiece(outer, segs[k], 0, 1, smoothEnd(segs[k]))
	}
	outer = appendPiece(outer, segs[a.segIndex], 0, a.segT, false)
	outer = append(outer, piece{seg: curve.Line{P0: a.pt, P1: b.pt}.Seg()})
	outer = appendPiece(outer, segs[b.segIndex], b.segT, 1, smoothEnd(segs[b.segIndex]))
	for k := b.segIndex + 1; k < len(segs); k++ {
		outer = appendPiece(outer, segs[k], 0, 1, smoothEnd(segs[k]))
	}
	first := segs[0].Start.Pt
	last := segs[len(segs)-1].End.Pt
	outer = append(outer, piece{seg: curve.Line{P0: last, P1: first}.Seg()})

	return assembleClosed(inner), assembleClosed(outer)
}

func smoothEnd(s path.Segment) bool {
	return s.End.Kind == path.Smooth
}

// appendPiece adds the [t0,t1] portion of a segment, skipping empty
// spans. Quadratic portions are elevated to cubics.
func appendPiece(pieces []piece, s path.Segment, t0, t1 float64, endSmooth bool) []piece {
	if t1-t0 < hitEps {
		return pieces
	}
	g := s.Seg
	if g.Kind == curve.QuadKind {
		g = g.Quad().Raise().Seg()
	}
	if t0 > 0 || t1 < 1 {
		g = g.Subsegment(t0, t1)
	}
	return append(pieces, piece{seg: g, endSmooth: endSmooth})
}

// assembleClosed builds a closed cubic path from a chain of pieces. The
// chain's final point coincides with its first, so appending every
// piece's controls and end point leaves the start point stored last.
func assembleClosed(pieces []piece) *path.CubicPath {
	var pts []path.PathPoint
	for _, pc := range pieces {
		switch pc.seg.Kind {
		case curve.CubicKind:
			pts = append(pts,
				path.ControlPoint(pc.seg.P1.X, pc.seg.P1.Y, false),
				path.ControlPoint(pc.seg.P2.X, pc.seg.P2.Y, false),
				path.Point(pc.seg.P3.X, pc.seg.P3.Y, pc.endSmooth),
			)
		default:
			pts = append(pts, path.Point(pc.seg.P1.X, pc.seg.P1.Y, pc.endSmooth))
		}
	}
	return path.CubicFromPoints(pts, true)
}
