package render

import (
	"fmt"

	"honnef.co/go/curve"
)

// Surface is the drawing backend boundary. A surface accumulates a
// current path from the construction calls and paints it with Stroke or
// Fill, which also resets the current path. Coordinates are screen
// space; the scene renderer applies the viewport transform before any
// call reaches the surface.
type Surface interface {
	MoveTo(pt curve.Point)
	LineTo(pt curve.Point)
	QuadTo(ctrl, end curve.Point)
	CubicTo(ctrl1, ctrl2, end curve.Point)
	ClosePath()
	// Stroke outlines the current path and resets it.
	Stroke()
	// Fill paints the current path's interior, using the non-zero
	// winding rule, and resets it.
	Fill()
}

// --- Debugging surface -----------------------------------------------------

// DebuggingSurface records the draw calls it receives and echoes them to
// the trace. It stands in for a concrete graphics backend in tests.
type DebuggingSurface struct {
	ops []string
}

// NewDebuggingSurface creates an empty recording surface.
func NewDebuggingSurface() *DebuggingSurface {
	return &DebuggingSurface{}
}

func (s *DebuggingSurface) op(format string, v ...interface{}) {
	o := fmt.Sprintf(format, v...)
	tracer().Debugf("%s", o)
	s.ops = append(s.ops, o)
}

func (s *DebuggingSurface) MoveTo(pt curve.Point) {
	s.op("moveto %.5g %.5g", pt.X, pt.Y)
}

func (s *DebuggingSurface) LineTo(pt curve.Point) {
	s.op("lineto %.5g %.5g", pt.X, pt.Y)
}

func (s *DebuggingSurface) QuadTo(ctrl, end curve.Point) {
	s.op("quadto %.5g %.5g %.5g %.5g", ctrl.X, ctrl.Y, end.X, end.Y)
}

func (s *DebuggingSurface) CubicTo(ctrl1, ctrl2, end curve.Point) {
	s.op("cubicto %.5g %.5g %.5g %.5g %.5g %.5g",
		ctrl1.X, ctrl1.Y, ctrl2.X, ctrl2.Y, end.X, end.Y)
}

func (s *DebuggingSurface) ClosePath() {
	s.op("closepath")
}

func (s *DebuggingSurface) Stroke() {
	s.op("stroke")
}

func (s *DebuggingSurface) Fill() {
	s.op("fill")
}

// Ops returns the recorded calls in order.
func (s *DebuggingSurface) Ops() []string {
	return s.ops
}

// Reset drops all recorded calls.
func (s *DebuggingSurface) Reset() {
	s.ops = s.ops[:0]
}
