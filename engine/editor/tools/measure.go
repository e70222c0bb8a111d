package tools

import (
	"honnef.co/go/curve"

	"github.com/npillmayer/punchcut/engine/editor"
)

// MeasureTool reads off distances. Dragging spans a ruler line in
// design space; the measurement stays visible until the next drag.
// Holding shift constrains the ruler to an axis. The tool never
// mutates the session.
type MeasureTool struct {
	start  curve.Point // design space
	end    curve.Point
	active bool // drag in progress
	valid  bool // a finished measurement is showing
}

func (t *MeasureTool) Name() string { return "measure" }

// Measurement returns the ruler line in design space while dragging or
// after a finished measurement.
func (t *MeasureTool) Measurement() (curve.Line, bool) {
	return curve.Line{P0: t.start, P1: t.end}, t.active || t.valid
}

// Distance returns the measured distance in design units.
func (t *MeasureTool) Distance() float64 {
	if !t.active && !t.valid {
		return 0
	}
	return t.end.Sub(t.start).Hypot()
}

// Delta returns the measured x and y distances in design units.
func (t *MeasureTool) Delta() curve.Vec2 {
	if !t.active && !t.valid {
		return curve.Vec2{}
	}
	return t.end.Sub(t.start)
}

func (t *MeasureTool) down(es *editor.EditSession, ev Pointer) {
	t.start = designPos(es, ev.Pos)
	t.end = t.start
	t.active = true
	t.valid = false
}

func (t *MeasureTool) drag(es *editor.EditSession, ev Pointer) {
	if !t.active {
		return
	}
	t.end = designPos(es, ev.Pos)
	if ev.Shift {
		t.end = axisAligned(t.start, t.end)
	}
}

func (t *MeasureTool) up(es *editor.EditSession, ev Pointer) {
	if !t.active {
		return
	}
	t.active = false
	t.valid = t.start != t.end
}

func (t *MeasureTool) key(es *editor.EditSession, ev Key) bool {
	if ev.Code == KeyEscape && (t.active || t.valid) {
		t.active = false
		t.valid = false
		return true
	}
	return false
}

func (t *MeasureTool) cancel() {
	t.active = false
	t.valid = false
}
