package tools

import (
	"math"

	"honnef.co/go/curve"

	"github.com/npillmayer/punchcut/core/parameters"
	"github.com/npillmayer/punchcut/engine/editor"
	"github.com/npillmayer/punchcut/engine/knife"
)

// KnifeTool cuts paths along a dragged line. The cut is applied on
// release; while dragging, Line exposes the blade for overlay drawing.
// Holding shift constrains the blade to an axis.
type KnifeTool struct {
	start  curve.Point // design space
	end    curve.Point
	active bool
}

func (t *KnifeTool) Name() string { return "knife" }

// Line returns the blade in design space while a drag is in progress.
func (t *KnifeTool) Line() (curve.Line, bool) {
	return curve.Line{P0: t.start, P1: t.end}, t.active
}

func (t *KnifeTool) down(es *editor.EditSession, ev Pointer) {
	t.start = designPos(es, ev.Pos)
	t.end = t.start
	t.active = true
}

func (t *KnifeTool) drag(es *editor.EditSession, ev Pointer) {
	if !t.active {
		return
	}
	t.end = designPos(es, ev.Pos)
	if ev.Shift {
		t.end = axisAligned(t.start, t.end)
	}
}

func (t *KnifeTool) up(es *editor.EditSession, ev Pointer) {
	if !t.active {
		return
	}
	t.active = false
	blade := curve.Line{P0: t.start, P1: t.end}
	if blade.Length() == 0 {
		return
	}
	maxDepth := es.Registers().N(parameters.P_KNIFEMAXDEPTH)
	result, cut := knife.Slice(es.Paths(), blade, maxDepth)
	if !cut {
		tracer().Debugf("knife cut misses all paths")
		return
	}
	es.ReplacePaths(result)
}

func (t *KnifeTool) key(es *editor.EditSession, ev Key) bool {
	if ev.Code == KeyEscape && t.active {
		t.active = false
		return true
	}
	return false
}

func (t *KnifeTool) cancel() {
	t.active = false
}

// axisAligned projects end onto the horizontal or vertical through
// start, whichever is closer.
func axisAligned(start, end curve.Point) curve.Point {
	d := end.Sub(start)
	if math.Abs(d.X) >= math.Abs(d.Y) {
		return curve.Pt(end.X, start.Y)
	}
	return curve.Pt(start.X, end.Y)
}
