package tools

import (
	"honnef.co/go/curve"

	"github.com/npillmayer/punchcut/core/glyph"
	"github.com/npillmayer/punchcut/engine/editor"
	"github.com/npillmayer/punchcut/engine/path"
)

// PenTool draws cubic paths point by point. A click appends a corner
// joined by a line, dragging out of the click pulls handles and turns
// the anchor smooth, and the dragged handle carries over as the
// outgoing control of the next segment. Clicking the start point
// closes the path; escape or enter leaves it open and ends drawing.
type PenTool struct {
	pathID     glyph.EntityID // path under construction, 0 when none
	pending    curve.Point    // outgoing handle for the next segment
	hasPending bool
	dragging   bool
}

func (t *PenTool) Name() string { return "pen" }

// ActivePath returns the path currently being drawn.
func (t *PenTool) ActivePath() (glyph.EntityID, bool) {
	return t.pathID, t.pathID != 0
}

func (t *PenTool) down(es *editor.EditSession, ev Pointer) {
	t.dragging = false
	if t.pathID != 0 {
		if p, ok := es.Path(t.pathID); !ok || p.Closed() {
			t.reset()
		}
	}
	if t.pathID != 0 {
		if hit, ok := es.HitTestPoint(ev.Pos); ok && hit.PathID == t.pathID {
			p, _ := es.Path(t.pathID)
			if p != nil && hit.Point.ID == p.StartPoint().ID {
				if _, closed := es.ClosePath(t.pathID); closed {
					t.reset()
					return
				}
			}
		}
	}
	design := designPos(es, ev.Pos)
	if t.pathID == 0 {
		p := path.NewCubicPath(design, false)
		if es.AddPath(p) {
			t.pathID = p.ID()
		}
		return
	}
	anchor := path.Point(design.X, design.Y, false)
	if t.hasPending {
		// the second control starts collapsed onto the anchor and is
		// pulled out when the user drags
		es.AppendCurve(t.pathID, t.pending, design, anchor, editor.EditNormal)
		t.hasPending = false
	} else {
		es.AppendPoint(t.pathID, anchor, editor.EditNormal)
	}
}

func (t *PenTool) drag(es *editor.EditSession, ev Pointer) {
	if t.pathID == 0 {
		return
	}
	design := designPos(es, ev.Pos)
	if es.ShapeTrailingHandle(t.pathID, design) {
		t.pending = design
		t.hasPending = true
		t.dragging = true
	}
}

func (t *PenTool) up(es *editor.EditSession, ev Pointer) {
	if t.dragging {
		es.EndGesture()
	}
	t.dragging = false
}

func (t *PenTool) key(es *editor.EditSession, ev Key) bool {
	if (ev.Code == KeyEscape || ev.Code == KeyEnter) && t.pathID != 0 {
		tracer().Debugf("pen finishes open path #%d", t.pathID)
		t.reset()
		return true
	}
	return false
}

func (t *PenTool) cancel() {
	t.reset()
}

func (t *PenTool) reset() {
	t.pathID = 0
	t.hasPending = false
	t.dragging = false
}
