package editor

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"honnef.co/go/curve"

	"github.com/npillmayer/punchcut/engine/sorts"
)

func TestHitTestPointWithinRadius(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "punchcut.edit")
	defer teardown()
	//
	es, _ := NewSession(squareGlyph(), nil, nil)
	// design (100,100) projects to screen (100,-100) at zoom 1
	hit, ok := es.HitTestPoint(curve.Pt(106, -106))
	assert.True(t, ok)
	assert.Equal(t, curve.Pt(100, 100), hit.Point.Pt)
	assert.Equal(t, 1, hit.Index)
	// sqrt(2)*12 pixels away exceeds the 10px radius
	_, ok = es.HitTestPoint(curve.Pt(112, -112))
	assert.False(t, ok)
}

func TestHitTestPointRadiusIsInScreenPixels(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "punchcut.edit")
	defer teardown()
	//
	es, _ := NewSession(squareGlyph(), nil, nil)
	vp := es.Viewport()
	vp.Zoom = 4
	es.SetViewport(vp)
	// design (100,0) now sits at screen (400,0); 8 screen px off still hits,
	// although that is just 2 design units
	hit, ok := es.HitTestPoint(curve.Pt(408, 0))
	assert.True(t, ok)
	assert.Equal(t, curve.Pt(100, 0), hit.Point.Pt)
	// at zoom 4, 48 screen px are 12 design units: a miss
	_, ok = es.HitTestPoint(curve.Pt(448, 0))
	assert.False(t, ok)
}

func TestHitTestSegmentReturnsParameter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "punchcut.edit")
	defer teardown()
	//
	es, _ := NewSession(squareGlyph(), nil, nil)
	// 3 screen px below the middle of the bottom edge (0,0)-(100,0)
	seg, u, ok := es.HitTestSegment(curve.Pt(50, 3))
	assert.True(t, ok)
	assert.Equal(t, curve.Pt(0, 0), seg.Start.Pt)
	assert.Equal(t, curve.Pt(100, 0), seg.End.Pt)
	assert.InDelta(t, 0.5, u, 0.05)
	// 12 px away exceeds the 6px segment radius
	_, _, ok = es.HitTestSegment(curve.Pt(50, 12))
	assert.False(t, ok)
}

func TestHitTestAppliesSortOffset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "punchcut.edit")
	defer teardown()
	//
	store := newFakeStore(squareGlyph())
	es, _ := NewSession(squareGlyph(), nil, store)
	buf := sorts.NewBuffer(nil, nil)
	buf.Insert(sorts.Glyph("square", 's', 200))
	buf.Insert(sorts.Glyph("square", 's', 200))
	es.AttachBuffer(buf)
	assert.True(t, es.ActivateSort(1))
	// the active sort draws 200 units to the right
	hit, ok := es.HitTestPoint(curve.Pt(302, -102))
	assert.True(t, ok)
	assert.Equal(t, curve.Pt(100, 100), hit.Point.Pt)
	_, ok = es.HitTestPoint(curve.Pt(102, -102))
	assert.False(t, ok, "points no longer sit at their unshifted position")
	// segment hits correct for the offset too
	seg, _, ok := es.HitTestSegment(curve.Pt(250, 3))
	assert.True(t, ok)
	assert.Equal(t, curve.Pt(0, 0), seg.Start.Pt)
}

func TestSelectPointsInRect(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "punchcut.edit")
	defer teardown()
	//
	es, _ := NewSession(squareGlyph(), nil, nil)
	// rubber band around the bottom edge, in screen coordinates
	n := es.SelectPointsInRect(curve.NewRectFromPoints(curve.Pt(-5, 5), curve.Pt(105, -5)), false)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, es.Selection().Len())
	// extending keeps the previous members
	n = es.SelectPointsInRect(curve.NewRectFromPoints(curve.Pt(-5, -95), curve.Pt(5, -105)), true)
	assert.Equal(t, 1, n)
	assert.Equal(t, 3, es.Selection().Len())
	// replacing drops them
	n = es.SelectPointsInRect(curve.NewRectFromPoints(curve.Pt(-5, 5), curve.Pt(5, -5)), false)
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, es.Selection().Len())
}

func TestSelectionBounds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "punchcut.edit")
	defer teardown()
	//
	es, _ := NewSession(squareGlyph(), nil, nil)
	_, ok := es.SelectionBounds()
	assert.False(t, ok, "an empty selection has no bounds")
	p := es.Paths()[0]
	es.Selection().Add(p.PointAt(0).ID) // (100,0)
	r, ok := es.SelectionBounds()
	assert.True(t, ok)
	assert.Equal(t, curve.Rect{X0: 100, Y0: 0, X1: 100, Y1: 0}, r, "a single point spans a degenerate box")
	es.SelectAll()
	r, ok = es.SelectionBounds()
	assert.True(t, ok)
	assert.Equal(t, curve.Rect{X0: 0, Y0: 0, X1: 100, Y1: 100}, r)
}
