package editor

import (
	"math"

	"honnef.co/go/curve"

	"github.com/npillmayer/punchcut/core/glyph"
	"github.com/npillmayer/punchcut/core/parameters"
	"github.com/npillmayer/punchcut/engine/path"
)

// NudgeTier selects the distance of a keyboard nudge. The distances for
// the three tiers come from the editing parameters P_NUDGE, P_NUDGELARGE
// and P_NUDGEHUGE.
type NudgeTier int8

const (
	NudgePlain NudgeTier = iota
	NudgeShift
	NudgeCtrl
)

// degenerateHandle is the squared distance below which a handle sits on
// its anchor and has no usable direction.
const degenerateHandle = 1e-12

// minScaleFactor is the factor magnitude below which a scale would
// collapse the selection onto a line through the pivot.
const minScaleFactor = 1e-6

// --- Selection commands ----------------------------------------------------

// SelectAll puts every addressable point of every path into the selection.
func (es *EditSession) SelectAll() {
	for _, p := range es.paths {
		for _, pp := range p.Points() {
			es.sel.Add(pp.ID)
		}
	}
}

// ClearSelection empties the selection.
func (es *EditSession) ClearSelection() {
	es.sel.Clear()
}

// --- Moving ----------------------------------------------------------------

// MoveSelection translates the selected points by delta, in design units.
// Selected on-curve points drag their immediate off-curve neighbours with
// them. After moving, handles opposite a moved handle of a smooth point
// are rotated to keep the point smooth. The edit records under t, so drag
// frames merge into a single undo group.
//
// It reports false when the selection is empty or nothing moved.
func (es *EditSession) MoveSelection(delta curve.Vec2, t EditType) bool {
	if es.sel.IsEmpty() || (delta.X == 0 && delta.Y == 0) {
		return false
	}
	selected := es.sel.AsSet()
	moved := false
	for i := range es.paths {
		if es.movePathPoints(i, selected, delta) {
			moved = true
		}
	}
	if !moved {
		return false
	}
	es.recordEdit(t)
	return true
}

// movePathPoints applies a translation to the selected points of the path
// at index i, including the neighbour expansion and the smoothness pass.
func (es *EditSession) movePathPoints(i int, selected map[glyph.EntityID]bool, delta curve.Vec2) bool {
	p := es.paths[i]
	move := expandedMoveSet(p, selected)
	if len(move) == 0 {
		return false
	}
	pts := p.Points()
	wp := es.writablePath(i)
	for idx := range move {
		wp.SetPoint(idx, pts[idx].Pt.Translate(delta))
	}
	es.keepSmoothness(wp, move)
	wp.AfterChange()
	return true
}

// expandedMoveSet collects the indices of the selected points of p,
// widened by the off-curve neighbours of every selected on-curve point.
func expandedMoveSet(p path.Path, selected map[glyph.EntityID]bool) map[int]bool {
	pts := p.Points()
	n := len(pts)
	move := make(map[int]bool, 4)
	for idx, pp := range pts {
		if selected[pp.ID] {
			move[idx] = true
		}
	}
	var anchors []int
	for idx := range move {
		if pts[idx].IsOnCurve() {
			anchors = append(anchors, idx)
		}
	}
	for _, idx := range anchors {
		for _, nb := range pointNeighbors(idx, n, p.Closed()) {
			if !pts[nb].IsOnCurve() {
				move[nb] = true
			}
		}
	}
	return move
}

// keepSmoothness restores collinearity at smooth on-curve points after a
// partial move: when exactly one of a point's two handles moved and the
// point itself did not, the opposite handle is rotated about the point,
// keeping its own distance.
func (es *EditSession) keepSmoothness(wp path.Path, move map[int]bool) {
	n := wp.Len()
	for idx := 0; idx < n; idx++ {
		pp := wp.PointAt(idx)
		if pp.Kind != path.Smooth || move[idx] {
			continue
		}
		nbs := pointNeighbors(idx, n, wp.Closed())
		if len(nbs) != 2 {
			continue
		}
		a, b := nbs[0], nbs[1]
		if wp.PointAt(a).IsOnCurve() || wp.PointAt(b).IsOnCurve() {
			continue
		}
		if move[a] == move[b] {
			continue
		}
		movedIdx, otherIdx := a, b
		if move[b] {
			movedIdx, otherIdx = b, a
		}
		anchor := pp.Pt
		dir := anchor.Sub(wp.PointAt(movedIdx).Pt)
		if dir.Hypot2() < degenerateHandle {
			continue
		}
		dist := wp.PointAt(otherIdx).Pt.Distance(anchor)
		wp.SetPoint(otherIdx, anchor.Translate(dir.Normalize().Mul(dist)))
	}
}

// pointNeighbors returns the indices adjacent to idx in drawing order.
// Closed paths wrap; the ends of open paths have a single neighbour. For
// a closed two-point path both directions meet the same index, which is
// returned once.
func pointNeighbors(idx, n int, closed bool) []int {
	if n < 2 {
		return nil
	}
	if closed {
		prev, next := (idx+n-1)%n, (idx+1)%n
		if prev == next {
			return []int{prev}
		}
		return []int{prev, next}
	}
	switch idx {
	case 0:
		return []int{1}
	case n - 1:
		return []int{n - 2}
	}
	return []int{idx - 1, idx + 1}
}

// NudgeSelection moves the selection one step along an axis. dx and dy
// give the direction as -1, 0 or +1 in design space, so dy = +1 moves up.
// Repeated nudges in the same direction merge into one undo group.
func (es *EditSession) NudgeSelection(dx, dy int, tier NudgeTier) bool {
	key := parameters.P_NUDGE
	switch tier {
	case NudgeShift:
		key = parameters.P_NUDGELARGE
	case NudgeCtrl:
		key = parameters.P_NUDGEHUGE
	}
	amount := es.regs.D(key)
	delta := curve.Vec(float64(sign(dx))*amount, float64(sign(dy))*amount)
	var t EditType
	switch {
	case dx < 0:
		t = EditNudgeLeft
	case dx > 0:
		t = EditNudgeRight
	case dy > 0:
		t = EditNudgeUp
	case dy < 0:
		t = EditNudgeDown
	default:
		return false
	}
	return es.MoveSelection(delta, t)
}

func sign(d int) int {
	switch {
	case d < 0:
		return -1
	case d > 0:
		return 1
	}
	return 0
}

// ScaleSelection scales the selected points about pivot, in design
// units. The two components of factor scale their axes independently;
// a negative component mirrors. Selected on-curve points take their
// off-curve neighbours along and the smoothness pass runs as after a
// move, so scaling one handle of a smooth point rotates its partner.
// The edit records under t, so the frames of a handle drag merge into
// a single undo group.
//
// It reports false for an empty selection, an identity factor, and
// factor components so close to zero that the selection would
// collapse.
func (es *EditSession) ScaleSelection(factor curve.Vec2, pivot curve.Point, t EditType) bool {
	if es.sel.IsEmpty() || (factor.X == 1 && factor.Y == 1) {
		return false
	}
	if math.Abs(factor.X) < minScaleFactor || math.Abs(factor.Y) < minScaleFactor {
		return false
	}
	selected := es.sel.AsSet()
	scaled := false
	for i := range es.paths {
		if es.scalePathPoints(i, selected, factor, pivot) {
			scaled = true
		}
	}
	if !scaled {
		return false
	}
	es.recordEdit(t)
	return true
}

// scalePathPoints applies the scale to the selected points of the path
// at index i, with the same neighbour expansion and smoothness pass as
// movePathPoints.
func (es *EditSession) scalePathPoints(i int, selected map[glyph.EntityID]bool, factor curve.Vec2, pivot curve.Point) bool {
	p := es.paths[i]
	move := expandedMoveSet(p, selected)
	if len(move) == 0 {
		return false
	}
	pts := p.Points()
	wp := es.writablePath(i)
	for idx := range move {
		v := pts[idx].Pt.Sub(pivot)
		wp.SetPoint(idx, pivot.Translate(curve.Vec(v.X*factor.X, v.Y*factor.Y)))
	}
	es.keepSmoothness(wp, move)
	wp.AfterChange()
	return true
}

// SnapSelectionToGrid moves every selected on-curve point to the nearest
// grid intersection, carrying its immediate off-curve neighbours along
// rigidly. Grid spacing comes from P_GRIDSPACING.
func (es *EditSession) SnapSelectionToGrid() bool {
	if es.sel.IsEmpty() {
		return false
	}
	spacing := es.regs.D(parameters.P_GRIDSPACING)
	if spacing <= 0 {
		return false
	}
	selected := es.sel.AsSet()
	changed := false
	for i := range es.paths {
		p := es.paths[i]
		pts := p.Points()
		var wp path.Path
		for idx, pp := range pts {
			if !selected[pp.ID] || !pp.IsOnCurve() {
				continue
			}
			snapped := curve.Pt(
				math.Round(pp.Pt.X/spacing)*spacing,
				math.Round(pp.Pt.Y/spacing)*spacing,
			)
			off := snapped.Sub(pp.Pt)
			if off.X == 0 && off.Y == 0 {
				continue
			}
			if wp == nil {
				wp = es.writablePath(i)
			}
			wp.SetPoint(idx, snapped)
			for _, nb := range pointNeighbors(idx, len(pts), p.Closed()) {
				if !pts[nb].IsOnCurve() {
					wp.SetPoint(nb, pts[nb].Pt.Translate(off))
				}
			}
			changed = true
		}
		if wp != nil {
			wp.AfterChange()
		}
	}
	if !changed {
		return false
	}
	es.recordEdit(EditNormal)
	return true
}

// --- Structure edits -------------------------------------------------------

// DeleteSelection removes the selected points. Deleting an on-curve point
// takes its attached control points with it; paths left with fewer than
// two points are dropped entirely. The selection is cleared.
func (es *EditSession) DeleteSelection() bool {
	if es.sel.IsEmpty() {
		return false
	}
	ids := es.sel.AsSet()
	kept := make([]path.Path, 0, len(es.paths))
	changed := false
	for i := range es.paths {
		p := es.paths[i]
		touched := false
		for _, pp := range p.Points() {
			if ids[pp.ID] {
				touched = true
				break
			}
		}
		if !touched {
			kept = append(kept, p)
			continue
		}
		wp := es.writablePath(i)
		empty := wp.Delete(ids)
		changed = true
		if empty || wp.Len() < 2 {
			tracer().Debugf("dropping degenerate path #%d", wp.ID())
			continue
		}
		wp.AfterChange()
		kept = append(kept, wp)
	}
	es.paths = kept
	es.sel.Clear()
	if !changed {
		return false
	}
	es.recordEdit(EditNormal)
	return true
}

// TogglePointType switches selected on-curve points between corner and
// smooth. Off-curve points in the selection are unaffected.
func (es *EditSession) TogglePointType() bool {
	if es.sel.IsEmpty() {
		return false
	}
	selected := es.sel.AsSet()
	changed := false
	for i := range es.paths {
		p := es.paths[i]
		var wp path.Path
		for idx, pp := range p.Points() {
			if !selected[pp.ID] || !pp.IsOnCurve() {
				continue
			}
			if wp == nil {
				wp = es.writablePath(i)
			}
			k := path.Smooth
			if pp.Kind == path.Smooth {
				k = path.Corner
			}
			wp.SetKind(idx, k)
			changed = true
		}
		if wp != nil {
			wp.AfterChange()
		}
	}
	if !changed {
		return false
	}
	es.recordEdit(EditNormal)
	return true
}

// ReverseContours flips the drawing direction of every path.
func (es *EditSession) ReverseContours() bool {
	if len(es.paths) == 0 {
		return false
	}
	for i := range es.paths {
		wp := es.writablePath(i)
		wp.Reverse()
		wp.AfterChange()
	}
	es.recordEdit(EditNormal)
	return true
}

// InsertPointOnSegment splits seg at parameter t, inserting a new on-curve
// point which becomes the sole selection. The segment is located through
// its path identity and revalidated against the current point list, so a
// stale segment from before a concurrent mutation is rejected rather than
// matched against the wrong points.
func (es *EditSession) InsertPointOnSegment(seg path.Segment, t float64) (path.PathPoint, bool) {
	idx := -1
	for i, p := range es.paths {
		if p.ID() == seg.PathID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return path.PathPoint{}, false
	}
	p := es.paths[idx]
	if seg.StartIndex < 0 || seg.StartIndex >= p.Len() ||
		seg.EndIndex < 0 || seg.EndIndex >= p.Len() {
		return path.PathPoint{}, false
	}
	if p.PointAt(seg.StartIndex).ID != seg.Start.ID ||
		p.PointAt(seg.EndIndex).ID != seg.End.ID {
		return path.PathPoint{}, false
	}
	t = math.Max(0, math.Min(1, t))
	wp := es.writablePath(idx)
	pp := wp.SplitSegment(seg, t)
	es.sel.Clear()
	es.sel.Add(pp.ID)
	es.recordEdit(EditNormal)
	return pp, true
}

// ConvertHyperPathsToCubic freezes every hyperbezier path into its cubic
// form, materializing the solved control points as editable off-curve
// points. It returns the number of converted paths; callers may want to
// tell the user when there was nothing to convert.
func (es *EditSession) ConvertHyperPathsToCubic() int {
	count := 0
	for i, p := range es.paths {
		hp, ok := p.(*path.HyperPath)
		if !ok {
			continue
		}
		es.paths[i] = hp.ToCubic()
		count++
	}
	if count > 0 {
		es.recordEdit(EditNormal)
	}
	return count
}

// AddPath appends a new path to the session, as drawn by the pen tools.
func (es *EditSession) AddPath(p path.Path) bool {
	if p == nil || p.Len() == 0 {
		return false
	}
	es.paths = append(es.paths, p)
	es.recordEdit(EditNormal)
	return true
}

// PastePaths places copies of the given paths into the session, each
// translated by offset. The copies are rebuilt from their persisted
// contour form, so paths and points carry fresh identities and pasting
// the same clipboard twice yields independent copies. The pasted
// points replace the selection. It returns the number of paths added.
func (es *EditSession) PastePaths(ps []path.Path, offset curve.Vec2) int {
	var added []path.Path
	for _, p := range ps {
		if p == nil || p.Len() == 0 {
			continue
		}
		c := p.Contour()
		for i := range c.Points {
			c.Points[i].X += offset.X
			c.Points[i].Y += offset.Y
		}
		np, err := path.FromContour(c)
		if err != nil {
			tracer().Errorf("cannot paste %v: %v", p, err)
			continue
		}
		added = append(added, np)
	}
	if len(added) == 0 {
		return 0
	}
	es.paths = append(es.paths, added...)
	es.sel.Clear()
	for _, p := range added {
		for _, pp := range p.Points() {
			es.sel.Add(pp.ID)
		}
	}
	es.recordEdit(EditNormal)
	return len(added)
}

// AppendPoint adds a point to the end of an open path.
func (es *EditSession) AppendPoint(pathID glyph.EntityID, pp path.PathPoint, t EditType) bool {
	for i, p := range es.paths {
		if p.ID() != pathID {
			continue
		}
		if p.Closed() {
			return false
		}
		wp := es.writablePath(i)
		wp.Append(pp)
		wp.AfterChange()
		es.recordEdit(t)
		return true
	}
	return false
}

// AppendCurve appends a cubic segment to an open path: two control
// points followed by the on-curve anchor, recorded as a single edit.
func (es *EditSession) AppendCurve(pathID glyph.EntityID, c1, c2 curve.Point, anchor path.PathPoint, t EditType) bool {
	for i, p := range es.paths {
		if p.ID() != pathID {
			continue
		}
		if p.Closed() || p.Len() == 0 {
			return false
		}
		wp := es.writablePath(i)
		wp.Append(path.ControlPoint(c1.X, c1.Y, false))
		wp.Append(path.ControlPoint(c2.X, c2.Y, false))
		wp.Append(anchor)
		wp.AfterChange()
		es.recordEdit(t)
		return true
	}
	return false
}

// ShapeTrailingHandle shapes the end of an open path while the pen drags
// a handle out of the freshly placed anchor: the anchor turns smooth and
// the incoming control mirrors the dragged handle about the anchor. A
// trailing line segment is upgraded to a cubic on the first drag frame.
// Drag frames record as coalescing drag edits.
func (es *EditSession) ShapeTrailingHandle(pathID glyph.EntityID, handle curve.Point) bool {
	for i, p := range es.paths {
		if p.ID() != pathID {
			continue
		}
		n := p.Len()
		if p.Closed() || n == 0 || !p.PointAt(n-1).IsOnCurve() {
			return false
		}
		wp := es.writablePath(i)
		anchor := wp.PointAt(n - 1)
		mirror := curve.Pt(2*anchor.Pt.X-handle.X, 2*anchor.Pt.Y-handle.Y)
		switch {
		case n >= 3 && wp.PointAt(n-2).Kind == path.Control:
			wp.SetKind(n-1, path.Smooth)
			wp.SetPoint(n-2, mirror)
		case n >= 2 && wp.PointAt(n-2).IsOnCurve():
			prev := wp.PointAt(n - 2).Pt
			anchor.Kind = path.Smooth
			wp.RemoveLast()
			wp.Append(path.ControlPoint(prev.X, prev.Y, false))
			wp.Append(path.ControlPoint(mirror.X, mirror.Y, false))
			wp.Append(anchor)
		default:
			// sole point of a fresh path, only the smooth flag to set
			wp.SetKind(n-1, path.Smooth)
		}
		wp.AfterChange()
		es.recordEdit(EditDrag)
		return true
	}
	return false
}

// ClosePath closes an open path and returns the identity of its start
// point.
func (es *EditSession) ClosePath(pathID glyph.EntityID) (glyph.EntityID, bool) {
	for i, p := range es.paths {
		if p.ID() != pathID {
			continue
		}
		if p.Closed() || p.Len() < 2 {
			return 0, false
		}
		wp := es.writablePath(i)
		id := wp.Close()
		wp.AfterChange()
		es.recordEdit(EditNormal)
		return id, true
	}
	return 0, false
}

// ReplacePaths swaps the whole path list, as produced by the knife tool.
// The selection is cleared, as point identities generally do not survive
// a slice.
func (es *EditSession) ReplacePaths(paths []path.Path) {
	es.paths = append([]path.Path(nil), paths...)
	es.sel.Clear()
	es.recordEdit(EditNormal)
}
