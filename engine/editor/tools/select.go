package tools

import (
	"math"

	"honnef.co/go/curve"

	"github.com/npillmayer/punchcut/core/glyph"
	"github.com/npillmayer/punchcut/core/parameters"
	"github.com/npillmayer/punchcut/engine/editor"
)

type selectMode int8

const (
	selIdle selectMode = iota
	selDragPoints
	selMarquee
	selScaleHandle
)

// handleCollapse is the design-space extent below which a frame axis
// cannot drive a scale.
const handleCollapse = 1e-9

// SelectTool selects and moves points. Clicking a point selects it,
// shift-click toggles, clicking a segment selects its end points, and
// dragging on empty canvas spans a marquee. While two or more points
// are selected their bounding frame carries eight scale handles;
// dragging one scales the selection about the opposite handle, and
// Shift keeps corner drags proportional. Double clicks toggle a point
// between smooth and corner, or insert a point on a segment. Arrow
// keys nudge the selection, backspace deletes it.
type SelectTool struct {
	mode    selectMode
	anchor  curve.Point // pointer-down position, screen space
	last    curve.Point // previous drag position, screen space
	marquee curve.Rect  // current marquee, screen space
	handle  curve.Vec2  // grabbed scale handle, as a frame direction
	pivot   curve.Point // handle opposite the grabbed one, design space
	ref     curve.Point // grabbed handle position, design space
	saved   []glyph.EntityID
	dragged bool
}

func (t *SelectTool) Name() string { return "select" }

// Marquee returns the marquee rectangle in screen space while one is
// being spanned.
func (t *SelectTool) Marquee() (curve.Rect, bool) {
	return t.marquee, t.mode == selMarquee
}

func (t *SelectTool) down(es *editor.EditSession, ev Pointer) {
	t.anchor = ev.Pos
	t.last = ev.Pos
	t.dragged = false
	sel := es.Selection()
	if hit, ok := es.HitTestPoint(ev.Pos); ok {
		if ev.Count >= 2 {
			sel.Clear()
			sel.Add(hit.Point.ID)
			es.TogglePointType()
			t.mode = selIdle
			return
		}
		if ev.Shift {
			sel.Toggle(hit.Point.ID)
			t.mode = selIdle
			return
		}
		if !sel.Contains(hit.Point.ID) {
			sel.Clear()
			sel.Add(hit.Point.ID)
		}
		t.mode = selDragPoints
		return
	}
	if d, bounds, ok := t.hitScaleHandle(es, ev.Pos); ok && ev.Count == 1 {
		t.mode = selScaleHandle
		t.handle = d
		t.ref = handlePos(bounds, d)
		t.pivot = handlePos(bounds, d.Negate())
		return
	}
	if seg, param, ok := es.HitTestSegment(ev.Pos); ok {
		if ev.Count >= 2 {
			es.InsertPointOnSegment(seg, param)
			t.mode = selIdle
			return
		}
		if !ev.Shift {
			sel.Clear()
		}
		sel.Add(seg.Start.ID)
		sel.Add(seg.End.ID)
		t.mode = selDragPoints
		return
	}
	t.mode = selMarquee
	t.marquee = curve.NewRectFromPoints(ev.Pos, ev.Pos)
	t.saved = nil
	if ev.Shift {
		t.saved = sel.IDs()
	}
}

func (t *SelectTool) drag(es *editor.EditSession, ev Pointer) {
	t.dragged = true
	switch t.mode {
	case selDragPoints:
		delta := es.Viewport().ToDesignVec(ev.Pos.Sub(t.last))
		es.MoveSelection(delta, editor.EditDrag)
		t.last = ev.Pos
	case selScaleHandle:
		design := designPos(es, ev.Pos)
		fx, fy := 1.0, 1.0
		if t.handle.X != 0 {
			if den := t.ref.X - t.pivot.X; math.Abs(den) > handleCollapse {
				fx = (design.X - t.pivot.X) / den
			}
		}
		if t.handle.Y != 0 {
			if den := t.ref.Y - t.pivot.Y; math.Abs(den) > handleCollapse {
				fy = (design.Y - t.pivot.Y) / den
			}
		}
		if ev.Shift && t.handle.X != 0 && t.handle.Y != 0 {
			if den := t.ref.Distance(t.pivot); den > handleCollapse {
				f := design.Distance(t.pivot) / den
				fx, fy = f, f
			}
		}
		if es.ScaleSelection(curve.Vec(fx, fy), t.pivot, editor.EditDrag) {
			// the grabbed handle tracks the scaled frame
			if t.handle.X != 0 {
				t.ref.X = t.pivot.X + fx*(t.ref.X-t.pivot.X)
			}
			if t.handle.Y != 0 {
				t.ref.Y = t.pivot.Y + fy*(t.ref.Y-t.pivot.Y)
			}
		}
	case selMarquee:
		t.marquee = curve.NewRectFromPoints(t.anchor, ev.Pos)
		if len(t.saved) > 0 {
			sel := es.Selection()
			sel.Clear()
			for _, id := range t.saved {
				sel.Add(id)
			}
			es.SelectPointsInRect(t.marquee, true)
		} else {
			es.SelectPointsInRect(t.marquee, false)
		}
	case selIdle:
	}
}

func (t *SelectTool) up(es *editor.EditSession, ev Pointer) {
	if (t.mode == selDragPoints || t.mode == selScaleHandle) && t.dragged {
		es.EndGesture()
	}
	if t.mode == selMarquee && !t.dragged && !ev.Shift {
		es.ClearSelection()
	}
	t.mode = selIdle
	t.saved = nil
	t.dragged = false
}

func (t *SelectTool) key(es *editor.EditSession, ev Key) bool {
	var dx, dy int
	switch ev.Code {
	case KeyLeft:
		dx = -1
	case KeyRight:
		dx = 1
	case KeyUp:
		dy = 1
	case KeyDown:
		dy = -1
	case KeyBackspace, KeyDelete:
		es.DeleteSelection()
		return true
	case KeyEscape:
		es.ClearSelection()
		return true
	default:
		return false
	}
	tier := editor.NudgePlain
	if ev.Ctrl {
		tier = editor.NudgeCtrl
	} else if ev.Shift {
		tier = editor.NudgeShift
	}
	es.NudgeSelection(dx, dy, tier)
	return true
}

func (t *SelectTool) cancel() {
	t.mode = selIdle
	t.saved = nil
	t.dragged = false
}

// handleDirs enumerates the scale handles of a selection frame as
// directions: corners have two non-zero components, edge midpoints one.
var handleDirs = [8]curve.Vec2{
	curve.Vec(-1, -1), curve.Vec(0, -1), curve.Vec(1, -1),
	curve.Vec(-1, 0), curve.Vec(1, 0),
	curve.Vec(-1, 1), curve.Vec(0, 1), curve.Vec(1, 1),
}

// handlePos places the handle with direction d on the frame r.
func handlePos(r curve.Rect, d curve.Vec2) curve.Point {
	return curve.Pt(
		(r.X0+r.X1)/2+d.X*(r.X1-r.X0)/2,
		(r.Y0+r.Y1)/2+d.Y*(r.Y1-r.Y0)/2,
	)
}

// hitScaleHandle looks for a scale handle of the selection frame under
// the pointer, within the P_POINTHITRADIUS grab radius. The frame is
// only active while at least two points are selected; points win over
// handles, so this runs after the point hit test.
func (t *SelectTool) hitScaleHandle(es *editor.EditSession, screen curve.Point) (curve.Vec2, curve.Rect, bool) {
	if es.Selection().Len() < 2 {
		return curve.Vec2{}, curve.Rect{}, false
	}
	bounds, ok := es.SelectionBounds()
	if !ok {
		return curve.Vec2{}, curve.Rect{}, false
	}
	radius := es.Registers().D(parameters.P_POINTHITRADIUS)
	best := curve.Vec2{}
	bestDist := radius * radius
	found := false
	for _, d := range handleDirs {
		sp := screenPos(es, handlePos(bounds, d))
		if dist := sp.DistanceSquared(screen); dist <= bestDist {
			best = d
			bestDist = dist
			found = true
		}
	}
	return best, bounds, found
}
