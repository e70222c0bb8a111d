package path

import (
	"fmt"

	"github.com/npillmayer/punchcut/core/glyph"
	"honnef.co/go/curve"
)

// PointKind classifies a path point. On-curve points are either corners,
// where the outline may change direction abruptly, or smooth points,
// which constrain their neighbouring off-curve handles to a common
// tangent line. Off-curve points are either free-floating controls or
// auto points, whose position is recomputed by a spline solve and which
// therefore cannot be dragged.
type PointKind int8

//go:generate stringer -type=PointKind

// Kinds of path points.
const (
	Corner PointKind = iota
	Smooth
	Control
	Auto
)

// IsOnCurve is true for points the outline passes through.
func (k PointKind) IsOnCurve() bool {
	return k <= Smooth
}

// PathPoint is a single point of a path: a position, a kind, and a
// session-unique identity. The identity survives moves and kind toggles
// but not deletion; points inserted by a split or an insertion receive
// fresh identities.
type PathPoint struct {
	ID   glyph.EntityID
	Pt   curve.Point
	Kind PointKind
}

// Point creates an on-curve path point with a fresh identity.
func Point(x, y float64, smooth bool) PathPoint {
	k := Corner
	if smooth {
		k = Smooth
	}
	return PathPoint{ID: glyph.NewEntityID(), Pt: curve.Pt(x, y), Kind: k}
}

// ControlPoint creates an off-curve path point with a fresh identity.
func ControlPoint(x, y float64, auto bool) PathPoint {
	k := Control
	if auto {
		k = Auto
	}
	return PathPoint{ID: glyph.NewEntityID(), Pt: curve.Pt(x, y), Kind: k}
}

// IsOnCurve is true for points the outline passes through.
func (pp PathPoint) IsOnCurve() bool {
	return pp.Kind.IsOnCurve()
}

// MovedTo returns a copy of pp at position pt, identity preserved.
func (pp PathPoint) MovedTo(pt curve.Point) PathPoint {
	pp.Pt = pt
	return pp
}

func (pp PathPoint) String() string {
	return fmt.Sprintf("%v(%.5g,%.5g)#%d", pp.Kind, pp.Pt.X, pp.Pt.Y, pp.ID)
}
