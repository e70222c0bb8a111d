package editor

import (
	"honnef.co/go/curve"

	"github.com/npillmayer/punchcut/core/glyph"
	"github.com/npillmayer/punchcut/core/parameters"
	"github.com/npillmayer/punchcut/engine/path"
)

// PointHit identifies a point found under the pointer.
type PointHit struct {
	PathID glyph.EntityID
	Index  int
	Point  path.PathPoint
}

// designOffset returns the session's drawing offset in design space. In
// text mode the edited glyph sits at the active sort's position within
// the run.
func (es *EditSession) designOffset() curve.Vec2 {
	return curve.Vec(es.ActiveSortXOffset(), 0)
}

// HitTestPoint finds the path point closest to a screen position, within
// the radius given by P_POINTHITRADIUS (screen pixels). Candidates are
// the addressable points of every path; the display-only auto controls of
// hyperbezier paths are never hit.
func (es *EditSession) HitTestPoint(screen curve.Point) (PointHit, bool) {
	radius := es.regs.D(parameters.P_POINTHITRADIUS)
	off := es.designOffset()
	best := PointHit{}
	bestDist := radius * radius
	found := false
	for _, p := range es.paths {
		for idx, pp := range p.Points() {
			sp := es.vp.ToScreen(pp.Pt.Translate(off))
			d := sp.DistanceSquared(screen)
			if d <= bestDist {
				best = PointHit{PathID: p.ID(), Index: idx, Point: pp}
				bestDist = d
				found = true
			}
		}
	}
	return best, found
}

// HitTestSegment finds the segment closest to a screen position, within
// the radius given by P_SEGMENTHITRADIUS (screen pixels). It returns the
// segment and the curve parameter of the nearest point on it.
func (es *EditSession) HitTestSegment(screen curve.Point) (path.Segment, float64, bool) {
	radius := es.vp.DesignDist(es.regs.D(parameters.P_SEGMENTHITRADIUS))
	design := es.vp.ToDesign(screen).Translate(es.designOffset().Negate())
	var best path.Segment
	bestT := 0.0
	bestDist := radius * radius
	found := false
	for _, p := range es.paths {
		for _, seg := range p.Segments() {
			d, t := seg.Nearest(design)
			if d <= bestDist {
				best = seg
				bestT = t
				bestDist = d
				found = true
			}
		}
	}
	return best, bestT, found
}

// SelectPointsInRect replaces or extends the selection with all points
// whose screen position lies inside a rubber-band rectangle. It returns
// the number of points inside the rectangle.
func (es *EditSession) SelectPointsInRect(screenRect curve.Rect, extend bool) int {
	if !extend {
		es.sel.Clear()
	}
	r := screenRect.Abs()
	off := es.designOffset()
	count := 0
	for _, p := range es.paths {
		for _, pp := range p.Points() {
			sp := es.vp.ToScreen(pp.Pt.Translate(off))
			if r.Contains(sp) {
				es.sel.Add(pp.ID)
				count++
			}
		}
	}
	return count
}

// SelectionBounds returns the bounding box of the selected points, in
// glyph design space. The select tool frames this box with its scale
// handles. Off-curve points widen the box only when they are selected
// themselves. It reports false while nothing is selected.
func (es *EditSession) SelectionBounds() (curve.Rect, bool) {
	if es.sel.IsEmpty() {
		return curve.Rect{}, false
	}
	selected := es.sel.AsSet()
	var r curve.Rect
	found := false
	for _, p := range es.paths {
		for _, pp := range p.Points() {
			if !selected[pp.ID] {
				continue
			}
			if !found {
				r = curve.NewRectFromPoints(pp.Pt, pp.Pt)
				found = true
				continue
			}
			r = r.UnionPoint(pp.Pt)
		}
	}
	return r, found
}
