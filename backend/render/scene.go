package render

import (
	"iter"

	"honnef.co/go/curve"

	"github.com/npillmayer/punchcut/core/font"
	"github.com/npillmayer/punchcut/core/glyph"
	"github.com/npillmayer/punchcut/core/parameters"
	"github.com/npillmayer/punchcut/engine/editor"
	"github.com/npillmayer/punchcut/engine/path"
	"github.com/npillmayer/punchcut/engine/sorts"
)

// Scene renders edit sessions onto a surface. A scene is configured
// once and re-used frame by frame; it holds no per-frame state.
type Scene struct {
	surf Surface
	// Preview suppresses handles and point markers and paints the
	// outline the way the preview tool shows it.
	Preview bool
	// LineHeight is the vertical distance between text lines, in design
	// units.
	LineHeight float64
	// MarkerSize is the edge length of point markers, in screen pixels.
	MarkerSize float64
}

// NewScene creates a scene drawing to surf.
func NewScene(surf Surface) *Scene {
	return &Scene{
		surf:       surf,
		LineHeight: 1000,
		MarkerSize: 8,
	}
}

// Render draws the session: its paths, and in edit mode the control
// handles, the point markers and the selection. In text mode the
// surrounding sorts appear as filled silhouettes at their layout
// offsets, with the session's paths drawn in place of the active sort.
//
// store resolves the glyphs of inactive sorts. It is consulted only for
// the duration of this call; sorts whose glyph it cannot deliver render
// as the placeholder box. A nil store is fine for sessions without text
// mode.
func (sc *Scene) Render(es *editor.EditSession, store editor.GlyphStore) {
	if es == nil {
		return
	}
	vp := es.Viewport()
	origin := curve.Vec(0, 0)
	if es.TextMode() && es.Buffer() != nil {
		origin = sc.renderSorts(es.Buffer(), store, vp)
	}
	aff := vp.Affine().PreTranslate(origin)
	n := 0
	for _, p := range es.Paths() {
		n += sc.emitPath(p.Elements(), aff)
	}
	if n > 0 {
		if sc.Preview && es.Registers().B(parameters.P_PREVIEWFILL) {
			sc.surf.Fill()
		} else {
			sc.surf.Stroke()
		}
	}
	if sc.Preview {
		return
	}
	for _, p := range es.Paths() {
		sc.renderHandles(p, aff)
	}
	for _, p := range es.Paths() {
		sc.renderMarkers(p, es.Selection(), aff)
	}
}

// RenderGlyph draws a glyph's persisted outline as one filled shape,
// placed at a design-space offset. Glyph grids and sort rows use it for
// glyphs which are not being edited. Contours which cannot be
// interpreted are skipped.
func (sc *Scene) RenderGlyph(g *glyph.Glyph, vp editor.Viewport, at curve.Vec2) {
	if g == nil {
		return
	}
	aff := vp.Affine().PreTranslate(at)
	n := 0
	for i, c := range g.Outline {
		p, err := path.FromContour(c)
		if err != nil {
			tracer().Debugf("glyph %q: contour #%d not drawable: %v", g.Name, i, err)
			continue
		}
		n += sc.emitPath(p.Elements(), aff)
	}
	if n > 0 {
		sc.surf.Fill()
	}
}

// renderSorts draws the inactive sorts of a text run and returns the
// design-space offset of the active one, where the session's paths
// belong.
func (sc *Scene) renderSorts(buf *sorts.Buffer, store editor.GlyphStore, vp editor.Viewport) curve.Vec2 {
	origin := curve.Vec(0, 0)
	active, hasActive := buf.ActiveIndex()
	for _, ps := range buf.Layout(sc.LineHeight) {
		if ps.Sort.Kind != sorts.GlyphSort {
			continue
		}
		if hasActive && ps.Index == active {
			origin = curve.Vec(ps.X, ps.Y)
			continue
		}
		var g *glyph.Glyph
		ok := false
		if store != nil {
			g, ok = store.Glyph(ps.Sort.Name)
		}
		if !ok {
			g = font.Placeholder()
		}
		sc.RenderGlyph(g, vp, curve.Vec(ps.X, ps.Y))
	}
	return origin
}

// renderHandles draws the stems connecting off-curve controls to their
// anchoring on-curve points. Solver-owned auto controls grow no stems.
func (sc *Scene) renderHandles(p path.Path, aff curve.Affine) {
	pts := p.Points()
	if len(pts) < 2 {
		return
	}
	stem := func(from, to int) {
		sc.surf.MoveTo(pts[from].Pt.Transform(aff))
		sc.surf.LineTo(pts[to].Pt.Transform(aff))
		sc.surf.Stroke()
	}
	for i, pp := range pts {
		if pp.IsOnCurve() || pp.Kind == path.Auto {
			continue
		}
		if j, ok := neighbour(pts, i, -1, p.Closed()); ok && pts[j].IsOnCurve() {
			stem(i, j)
		}
		if j, ok := neighbour(pts, i, +1, p.Closed()); ok && pts[j].IsOnCurve() {
			stem(i, j)
		}
	}
}

// renderMarkers draws one marker per display point: squares for corner
// points, diamonds for smooth points, circles for controls, with auto
// controls at half size. Selected points are filled, all others appear
// in outline.
func (sc *Scene) renderMarkers(p path.Path, sel *editor.Selection, aff curve.Affine) {
	for _, pp := range displayPoints(p) {
		at := pp.Pt.Transform(aff)
		switch pp.Kind {
		case path.Corner:
			sc.emitShape(curve.NewRectFromCenter(at, curve.Sz(sc.MarkerSize, sc.MarkerSize)).PathElements(0.1))
		case path.Smooth:
			sc.diamond(at, sc.MarkerSize/2)
		case path.Auto:
			sc.emitShape(curve.Circle{Center: at, Radius: sc.MarkerSize / 4}.PathElements(0.1))
		default:
			sc.emitShape(curve.Circle{Center: at, Radius: sc.MarkerSize / 2}.PathElements(0.1))
		}
		if sel != nil && sel.Contains(pp.ID) {
			sc.surf.Fill()
		} else {
			sc.surf.Stroke()
		}
	}
}

// displayPoints returns the points a path presents for editing.
// Hyperbezier paths interleave their solved auto controls.
func displayPoints(p path.Path) []path.PathPoint {
	if hp, ok := p.(*path.HyperPath); ok {
		return hp.DisplayPoints()
	}
	return p.Points()
}

// neighbour steps from index i in direction dir, wrapping only on
// closed paths.
func neighbour(pts []path.PathPoint, i, dir int, closed bool) (int, bool) {
	j := i + dir
	if closed {
		n := len(pts)
		return ((j % n) + n) % n, true
	}
	if j < 0 || j >= len(pts) {
		return 0, false
	}
	return j, true
}

// diamond outlines the marker of a smooth point.
func (sc *Scene) diamond(at curve.Point, half float64) {
	sc.surf.MoveTo(curve.Pt(at.X, at.Y-half))
	sc.surf.LineTo(curve.Pt(at.X+half, at.Y))
	sc.surf.LineTo(curve.Pt(at.X, at.Y+half))
	sc.surf.LineTo(curve.Pt(at.X-half, at.Y))
	sc.surf.ClosePath()
}

// emitPath relays an element sequence to the surface, transformed to
// screen space. It returns the number of elements emitted.
func (sc *Scene) emitPath(els iter.Seq[curve.PathElement], aff curve.Affine) int {
	n := 0
	for el := range els {
		sc.emit(el.Transform(aff))
		n++
	}
	return n
}

// emitShape relays a shape outline which is already in screen space.
func (sc *Scene) emitShape(els iter.Seq[curve.PathElement]) {
	for el := range els {
		sc.emit(el)
	}
}

func (sc *Scene) emit(el curve.PathElement) {
	switch el.Kind {
	case curve.MoveToKind:
		sc.surf.MoveTo(el.P0)
	case curve.LineToKind:
		sc.surf.LineTo(el.P0)
	case curve.QuadToKind:
		sc.surf.QuadTo(el.P0, el.P1)
	case curve.CubicToKind:
		sc.surf.CubicTo(el.P0, el.P1, el.P2)
	case curve.ClosePathKind:
		sc.surf.ClosePath()
	}
}
