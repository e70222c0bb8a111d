package tools

import (
	"math"

	"honnef.co/go/curve"

	"github.com/npillmayer/punchcut/engine/editor"
	"github.com/npillmayer/punchcut/engine/path"
)

// ShapeKind selects what the shapes tool draws.
type ShapeKind int8

// Shapes the tool can draw.
const (
	Rectangle ShapeKind = iota
	Ellipse
)

// kappa is the control distance factor approximating a quarter circle
// with a single cubic, 4(√2−1)/3.
const kappa = 0.5522847498307933

// ShapesTool drags out primitive shapes. The shape is added as a
// closed cubic path on release; holding shift constrains it to a
// square or circle.
type ShapesTool struct {
	Shape  ShapeKind
	start  curve.Point // design space
	end    curve.Point
	active bool
}

func (t *ShapesTool) Name() string { return "shapes" }

// Outline returns the shape's bounding rectangle in design space while
// a drag is in progress.
func (t *ShapesTool) Outline() (curve.Rect, bool) {
	return curve.NewRectFromPoints(t.start, t.end), t.active
}

func (t *ShapesTool) down(es *editor.EditSession, ev Pointer) {
	t.start = designPos(es, ev.Pos)
	t.end = t.start
	t.active = true
}

func (t *ShapesTool) drag(es *editor.EditSession, ev Pointer) {
	if !t.active {
		return
	}
	t.end = designPos(es, ev.Pos)
	if ev.Shift {
		t.end = squared(t.start, t.end)
	}
}

func (t *ShapesTool) up(es *editor.EditSession, ev Pointer) {
	if !t.active {
		return
	}
	t.active = false
	r := curve.NewRectFromPoints(t.start, t.end)
	if r.Width() == 0 || r.Height() == 0 {
		return
	}
	var p path.Path
	switch t.Shape {
	case Rectangle:
		p = rectanglePath(r)
	case Ellipse:
		p = ellipsePath(r)
	}
	es.AddPath(p)
}

func (t *ShapesTool) key(es *editor.EditSession, ev Key) bool {
	if ev.Code == KeyEscape && t.active {
		t.active = false
		return true
	}
	return false
}

func (t *ShapesTool) cancel() {
	t.active = false
}

// squared extends the smaller extent of the drag to match the larger,
// keeping the drag direction.
func squared(start, end curve.Point) curve.Point {
	d := end.Sub(start)
	s := max(math.Abs(d.X), math.Abs(d.Y))
	return curve.Pt(start.X+math.Copysign(s, d.X), start.Y+math.Copysign(s, d.Y))
}

// rectanglePath builds a closed path of four corner points drawn
// counterclockwise from the rectangle's lower left.
func rectanglePath(r curve.Rect) *path.CubicPath {
	pts := []path.PathPoint{
		path.Point(r.X1, r.Y0, false),
		path.Point(r.X1, r.Y1, false),
		path.Point(r.X0, r.Y1, false),
		path.Point(r.X0, r.Y0, false),
	}
	return path.CubicFromPoints(pts, true)
}

// ellipsePath builds a closed path of four smooth points with circular
// control handles, inscribed in r and drawn counterclockwise from the
// rightmost point.
func ellipsePath(r curve.Rect) *path.CubicPath {
	c := r.Center()
	rx, ry := r.Width()/2, r.Height()/2
	kx, ky := rx*kappa, ry*kappa
	pts := []path.PathPoint{
		path.ControlPoint(r.X1, c.Y+ky, false),
		path.ControlPoint(c.X+kx, r.Y1, false),
		path.Point(c.X, r.Y1, true),
		path.ControlPoint(c.X-kx, r.Y1, false),
		path.ControlPoint(r.X0, c.Y+ky, false),
		path.Point(r.X0, c.Y, true),
		path.ControlPoint(r.X0, c.Y-ky, false),
		path.ControlPoint(c.X-kx, r.Y0, false),
		path.Point(c.X, r.Y0, true),
		path.ControlPoint(c.X+kx, r.Y0, false),
		path.ControlPoint(r.X1, c.Y-ky, false),
		path.Point(r.X1, c.Y, true),
	}
	return path.CubicFromPoints(pts, true)
}
