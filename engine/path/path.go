package path

import (
	"fmt"
	"iter"

	"github.com/npillmayer/punchcut/core/glyph"
	"honnef.co/go/curve"
)

// Path is an editable outline contour in one of three representations:
// cubic Bézier, quadratic Bézier, or hyperbezier. All representations
// share an identity, an ordered point list and a closed flag, and all
// support the same editing operations. Clients switch on the concrete
// type only when the representation itself matters.
//
// Closed paths store their points in drawing order with the start point
// last; open paths store the start point first. Points of a closed path
// never begin with an off-curve run that belongs to the final segment,
// i.e. every segment's control points are contiguous in the list.
type Path interface {
	// ID returns the session-unique identity of this path. Identity is
	// stable across edits and across undo snapshots.
	ID() glyph.EntityID
	// Points returns the stored point list. Callers must treat it as
	// read-only; mutations go through the editing operations.
	Points() []PathPoint
	Len() int
	Closed() bool
	// StartPoint returns the first point of the drawn outline. For
	// closed paths this is the last stored point.
	StartPoint() PathPoint
	IndexOf(id glyph.EntityID) (int, bool)
	PointAt(i int) PathPoint

	// Elements returns the renderable element sequence, starting with a
	// move-to. The sequence may be iterated multiple times.
	Elements() iter.Seq[curve.PathElement]
	// Segments returns the on-curve to on-curve segments of the path in
	// drawing order, with control geometry attached.
	Segments() []Segment
	Bounds() curve.Rect

	// SetPoint moves the point at index i, keeping its identity.
	SetPoint(i int, pt curve.Point)
	// SetKind changes the kind of the point at index i.
	SetKind(i int, k PointKind)
	// Append adds a point to the end of an open path.
	Append(pp PathPoint)
	// RemoveLast removes and returns the last point of an open path.
	RemoveLast() (PathPoint, bool)
	// Close marks an open path as closed, normalizing point order so
	// that the start point is stored last. It returns the identity of
	// the start point.
	Close() glyph.EntityID
	// Delete removes the identified points. When an on-curve point is
	// removed its dangling neighbour controls are removed with it.
	// A path whose last on-curve point disappears reports empty=true
	// and should be dropped by the caller.
	Delete(ids map[glyph.EntityID]bool) (empty bool)
	// Reverse flips the drawing direction in place. The start point of
	// a closed path stays the start point.
	Reverse()
	// SplitSegment inserts a new on-curve point on seg at parameter t
	// and returns it. Control points of the split segment are replaced
	// so that the outline shape is preserved exactly for line and curve
	// segments, and approximately for hyperbezier segments.
	SplitSegment(seg Segment, t float64) PathPoint

	// AfterChange restores derived state after a mutation. Cubic and
	// quadratic paths have none; hyperbezier paths re-solve the spline.
	AfterChange()

	// Clone returns a deep copy sharing no mutable state with the
	// receiver. Identities of the path and its points are preserved.
	Clone() Path
	// Contour returns the persisted form of this path.
	Contour() glyph.Contour

	fmt.Stringer
	isPath()
}

// pathcore carries the state and point-list operations shared by all
// path representations.
type pathcore struct {
	id     glyph.EntityID
	points []PathPoint
	closed bool
}

func (pc *pathcore) isPath() {}

func (pc *pathcore) ID() glyph.EntityID { return pc.id }

func (pc *pathcore) Points() []PathPoint { return pc.points }

func (pc *pathcore) Len() int { return len(pc.points) }

func (pc *pathcore) Closed() bool { return pc.closed }

func (pc *pathcore) StartPoint() PathPoint {
	if pc.closed {
		return pc.points[len(pc.points)-1]
	}
	return pc.points[0]
}

func (pc *pathcore) IndexOf(id glyph.EntityID) (int, bool) {
	for i, pp := range pc.points {
		if pp.ID == id {
			return i, true
		}
	}
	return 0, false
}

func (pc *pathcore) PointAt(i int) PathPoint { return pc.points[i] }

func (pc *pathcore) SetPoint(i int, pt curve.Point) {
	pc.points[i].Pt = pt
}

func (pc *pathcore) SetKind(i int, k PointKind) {
	pc.points[i].Kind = k
}

func (pc *pathcore) Append(pp PathPoint) {
	if pc.closed {
		tracer().Errorf("append to closed path %d ignored", pc.id)
		return
	}
	pc.points = append(pc.points, pp)
}

func (pc *pathcore) RemoveLast() (PathPoint, bool) {
	if pc.closed || len(pc.points) == 0 {
		return PathPoint{}, false
	}
	last := pc.points[len(pc.points)-1]
	pc.points = pc.points[:len(pc.points)-1]
	return last, true
}

func (pc *pathcore) Close() glyph.EntityID {
	if pc.closed {
		return pc.StartPoint().ID
	}
	// drop an unfinished trailing control run
	for len(pc.points) > 0 && !pc.points[len(pc.points)-1].IsOnCurve() {
		pc.points = pc.points[:len(pc.points)-1]
	}
	pc.closed = true
	pc.points = rotateLeft(pc.points, 1)
	return pc.StartPoint().ID
}

// Delete removes the identified points. Deleting an on-curve point also
// removes the control runs on either side of it, so that its neighbours
// join with a line segment. Deleting a control removes the whole run it
// belongs to, turning that segment into a line.
func (pc *pathcore) Delete(ids map[glyph.EntityID]bool) bool {
	n := len(pc.points)
	if n == 0 {
		return true
	}
	drop := make([]bool, n)
	for i, pp := range pc.points {
		if !ids[pp.ID] {
			continue
		}
		drop[i] = true
		pc.markControlRun(drop, i, -1)
		pc.markControlRun(drop, i, +1)
	}
	kept := pc.points[:0]
	for i, pp := range pc.points {
		if !drop[i] {
			kept = append(kept, pp)
		}
	}
	pc.points = kept
	return !hasOnCurve(pc.points)
}

// markControlRun marks the off-curve run adjacent to index i in
// direction dir. For closed paths the run may wrap across the seam.
func (pc *pathcore) markControlRun(drop []bool, i, dir int) {
	n := len(pc.points)
	for step := 1; step < n; step++ {
		k := i + dir*step
		if pc.closed {
			k = ((k % n) + n) % n
		} else if k < 0 || k >= n {
			return
		}
		if pc.points[k].IsOnCurve() {
			return
		}
		drop[k] = true
	}
}

func (pc *pathcore) Reverse() {
	if pc.closed {
		reversePoints(pc.points[:len(pc.points)-1])
	} else {
		reversePoints(pc.points)
	}
}

func (pc *pathcore) AfterChange() {}

// clonePoints copies the point slice of a path.
func (pc *pathcore) clonePoints() []PathPoint {
	pts := make([]PathPoint, len(pc.points))
	copy(pts, pc.points)
	return pts
}

// splice replaces the del points starting at index at with repl.
func (pc *pathcore) splice(at, del int, repl ...PathPoint) {
	tail := make([]PathPoint, len(pc.points[at+del:]))
	copy(tail, pc.points[at+del:])
	pc.points = append(pc.points[:at], repl...)
	pc.points = append(pc.points, tail...)
}

func reversePoints(pts []PathPoint) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}

// rotateLeft rotates pts left by n positions, returning the same slice.
func rotateLeft(pts []PathPoint, n int) []PathPoint {
	if len(pts) == 0 {
		return pts
	}
	n %= len(pts)
	if n == 0 {
		return pts
	}
	rotated := make([]PathPoint, 0, len(pts))
	rotated = append(rotated, pts[n:]...)
	rotated = append(rotated, pts[:n]...)
	copy(pts, rotated)
	return pts
}

// rotateRight rotates pts right by n positions, returning the same slice.
func rotateRight(pts []PathPoint, n int) []PathPoint {
	if len(pts) == 0 {
		return pts
	}
	n %= len(pts)
	return rotateLeft(pts, len(pts)-n)
}

func hasOnCurve(pts []PathPoint) bool {
	for _, pp := range pts {
		if pp.IsOnCurve() {
			return true
		}
	}
	return false
}
