package tools

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"honnef.co/go/curve"

	"github.com/npillmayer/punchcut/engine/path"
)

func TestPenDrawsAndClosesPath(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "punchcut.tools")
	defer teardown()
	//
	c, es := editController(t, emptyGlyph("blank"))
	c.Activate("pen")
	click(c, screen(0, 0))
	click(c, screen(100, 0))
	click(c, screen(50, 80))
	assert.Len(t, es.Paths(), 1)
	assert.False(t, es.Paths()[0].Closed())
	// clicking the start point closes the path
	click(c, screen(0, 0))
	p := es.Paths()[0]
	assert.True(t, p.Closed())
	assert.Equal(t, 3, p.Len())
	assert.Equal(t, curve.Pt(0, 0), p.StartPoint().Pt)
	_, drawing := c.pen.ActivePath()
	assert.False(t, drawing)
	assert.Equal(t, 4, es.UndoDepth())
}

func TestPenPullsHandles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "punchcut.tools")
	defer teardown()
	//
	c, es := editController(t, emptyGlyph("blank"))
	c.Activate("pen")
	// drag out of the first click leaves a pending handle
	c.PointerDown(Pointer{Pos: screen(0, 0), Count: 1})
	c.PointerMove(Pointer{Pos: screen(40, 60)})
	c.PointerUp(Pointer{Pos: screen(40, 60)})
	p := es.Paths()[0]
	assert.Equal(t, 1, p.Len())
	assert.Equal(t, path.Smooth, p.PointAt(0).Kind)
	// the pending handle leads the next segment, the second control
	// starts collapsed on the anchor and mirrors the next drag
	c.PointerDown(Pointer{Pos: screen(100, 0), Count: 1})
	c.PointerMove(Pointer{Pos: screen(140, 60)})
	c.PointerUp(Pointer{Pos: screen(140, 60)})
	p = es.Paths()[0]
	assert.Equal(t, 4, p.Len())
	assert.Equal(t, path.Control, p.PointAt(1).Kind)
	assert.Equal(t, curve.Pt(40, 60), p.PointAt(1).Pt)
	assert.Equal(t, curve.Pt(60, -60), p.PointAt(2).Pt)
	assert.Equal(t, path.Smooth, p.PointAt(3).Kind)
	assert.Equal(t, curve.Pt(100, 0), p.PointAt(3).Pt)
}

func TestPenUpgradesLineSegmentOnDrag(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "punchcut.tools")
	defer teardown()
	//
	c, es := editController(t, emptyGlyph("blank"))
	c.Activate("pen")
	click(c, screen(0, 0))
	c.PointerDown(Pointer{Pos: screen(100, 0), Count: 1})
	anchorID := es.Paths()[0].PointAt(1).ID
	c.PointerMove(Pointer{Pos: screen(150, 50)})
	c.PointerUp(Pointer{Pos: screen(150, 50)})
	p := es.Paths()[0]
	assert.Equal(t, 4, p.Len())
	assert.Equal(t, path.Control, p.PointAt(1).Kind)
	assert.Equal(t, curve.Pt(0, 0), p.PointAt(1).Pt)
	assert.Equal(t, curve.Pt(50, -50), p.PointAt(2).Pt)
	assert.Equal(t, path.Smooth, p.PointAt(3).Kind)
	assert.Equal(t, anchorID, p.PointAt(3).ID)
}

func TestPenEscapeEndsPath(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "punchcut.tools")
	defer teardown()
	//
	c, es := editController(t, emptyGlyph("blank"))
	c.Activate("pen")
	click(c, screen(0, 0))
	click(c, screen(100, 0))
	assert.True(t, c.KeyDown(Key{Code: KeyEscape}))
	_, drawing := c.pen.ActivePath()
	assert.False(t, drawing)
	assert.False(t, es.Paths()[0].Closed())
	// the next click starts a fresh path
	click(c, screen(0, 50))
	assert.Len(t, es.Paths(), 2)
}

func TestHyperPenDrawsKnots(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "punchcut.tools")
	defer teardown()
	//
	c, es := editController(t, emptyGlyph("blank"))
	c.Activate("hyperpen")
	click(c, screen(0, 0))
	click(c, screen(100, 0))
	c.PointerDown(Pointer{Pos: screen(50, 80), Count: 1, Shift: true})
	c.PointerUp(Pointer{Pos: screen(50, 80), Count: 1, Shift: true})
	p := es.Paths()[0]
	_, isHyper := p.(*path.HyperPath)
	assert.True(t, isHyper)
	assert.Equal(t, 3, p.Len())
	assert.Equal(t, path.Smooth, p.PointAt(0).Kind)
	assert.Equal(t, path.Corner, p.PointAt(2).Kind)
	// clicking the start point closes and re-solves
	click(c, screen(0, 0))
	assert.True(t, es.Paths()[0].Closed())
}
