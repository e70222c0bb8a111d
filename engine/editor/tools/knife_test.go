package tools

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"honnef.co/go/curve"
)

func TestKnifeCutsSquareInTwo(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "punchcut.tools")
	defer teardown()
	//
	c, es := editController(t, squareGlyph("square", 's'))
	c.Activate("knife")
	c.PointerDown(Pointer{Pos: screen(50, 120), Count: 1})
	c.PointerMove(Pointer{Pos: screen(50, -20)})
	blade, visible := c.knife.Line()
	assert.True(t, visible)
	assert.Equal(t, curve.Pt(50, 120), blade.P0)
	c.PointerUp(Pointer{Pos: screen(50, -20)})
	assert.Len(t, es.Paths(), 2)
	assert.True(t, es.Paths()[0].Closed())
	assert.True(t, es.Paths()[1].Closed())
	assert.True(t, es.Selection().IsEmpty())
	assert.Equal(t, 1, es.UndoDepth())
	assert.True(t, es.Undo())
	assert.Len(t, es.Paths(), 1)
}

func TestKnifeMissLeavesPathsAlone(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "punchcut.tools")
	defer teardown()
	//
	c, es := editController(t, squareGlyph("square", 's'))
	c.Activate("knife")
	drag(c, screen(200, 120), screen(200, -20))
	assert.Len(t, es.Paths(), 1)
	assert.Equal(t, 0, es.UndoDepth())
}

func TestKnifeShiftConstrainsBlade(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "punchcut.tools")
	defer teardown()
	//
	c, es := editController(t, squareGlyph("square", 's'))
	c.Activate("knife")
	c.PointerDown(Pointer{Pos: screen(50, 120), Count: 1})
	c.PointerMove(Pointer{Pos: screen(58, -20), Shift: true})
	blade, _ := c.knife.Line()
	assert.Equal(t, 50.0, blade.P1.X)
	c.PointerUp(Pointer{Pos: screen(58, -20), Shift: true})
	assert.Len(t, es.Paths(), 2)
}

func TestKnifeClickWithoutDragIsNoop(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "punchcut.tools")
	defer teardown()
	//
	c, es := editController(t, squareGlyph("square", 's'))
	c.Activate("knife")
	click(c, screen(50, 50))
	assert.Len(t, es.Paths(), 1)
	assert.Equal(t, 0, es.UndoDepth())
}
