package tools

import (
	"github.com/npillmayer/punchcut/core/glyph"
	"github.com/npillmayer/punchcut/engine/editor"
	"github.com/npillmayer/punchcut/engine/path"
)

// HyperPenTool draws hyperbezier paths. Every click places an on-curve
// knot and the spline solve shapes the curve, so there are no handles
// to pull; shift-click places a corner knot. Clicking the start point
// closes the path, escape or enter leaves it open.
type HyperPenTool struct {
	pathID glyph.EntityID
}

func (t *HyperPenTool) Name() string { return "hyperpen" }

// ActivePath returns the path currently being drawn.
func (t *HyperPenTool) ActivePath() (glyph.EntityID, bool) {
	return t.pathID, t.pathID != 0
}

func (t *HyperPenTool) down(es *editor.EditSession, ev Pointer) {
	if t.pathID != 0 {
		if p, ok := es.Path(t.pathID); !ok || p.Closed() {
			t.pathID = 0
		}
	}
	if t.pathID != 0 {
		if hit, ok := es.HitTestPoint(ev.Pos); ok && hit.PathID == t.pathID {
			p, _ := es.Path(t.pathID)
			if p != nil && hit.Point.ID == p.StartPoint().ID {
				if _, closed := es.ClosePath(t.pathID); closed {
					t.pathID = 0
					return
				}
			}
		}
	}
	design := designPos(es, ev.Pos)
	if t.pathID == 0 {
		p := path.NewHyperPath(design, !ev.Shift)
		if es.AddPath(p) {
			t.pathID = p.ID()
		}
		return
	}
	knot := path.Point(design.X, design.Y, !ev.Shift)
	es.AppendPoint(t.pathID, knot, editor.EditNormal)
}

func (t *HyperPenTool) drag(es *editor.EditSession, ev Pointer) {}

func (t *HyperPenTool) up(es *editor.EditSession, ev Pointer) {}

func (t *HyperPenTool) key(es *editor.EditSession, ev Key) bool {
	if (ev.Code == KeyEscape || ev.Code == KeyEnter) && t.pathID != 0 {
		t.pathID = 0
		return true
	}
	return false
}

func (t *HyperPenTool) cancel() {
	t.pathID = 0
}
