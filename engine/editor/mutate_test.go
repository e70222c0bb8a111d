package editor

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"honnef.co/go/curve"

	"github.com/npillmayer/punchcut/core/glyph"
	"github.com/npillmayer/punchcut/core/parameters"
	"github.com/npillmayer/punchcut/engine/path"
)

func hyperTriangleGlyph() *glyph.Glyph {
	g := glyph.New("drop")
	g.Outline = []glyph.Contour{{
		Points: []glyph.ContourPoint{
			glyph.Pt(0, 0, glyph.Hyper),
			glyph.Pt(100, 0, glyph.Hyper),
			glyph.Pt(50, 80, glyph.Hyper),
		},
		Closed: true,
	}}
	return g
}

func TestMoveSelectionKeepsSmoothness(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "punchcut.edit")
	defer teardown()
	//
	es, _ := NewSession(curveGlyph(), nil, nil)
	p := es.Paths()[0]
	es.Selection().Add(p.PointAt(2).ID) // handle at (80,60)
	ok := es.MoveSelection(curve.Vec(0, 20), EditNormal)
	assert.True(t, ok)
	p = es.Paths()[0]
	moved := p.PointAt(2).Pt
	anchor := p.PointAt(3).Pt
	other := p.PointAt(4).Pt
	assert.Equal(t, curve.Pt(80, 80), moved)
	assert.Equal(t, curve.Pt(120, 60), anchor, "anchor stays put")
	// the opposite handle was rotated: collinear, on the far side, with
	// its original distance from the anchor
	v1 := anchor.Sub(moved)
	v2 := other.Sub(anchor)
	assert.InDelta(t, 0.0, v1.Cross(v2), 1e-9)
	assert.Greater(t, v1.Dot(v2), 0.0)
	assert.InDelta(t, 40.0, other.Distance(anchor), 1e-9)
}

func TestMoveSelectionDragsAttachedHandles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "punchcut.edit")
	defer teardown()
	//
	es, _ := NewSession(curveGlyph(), nil, nil)
	p := es.Paths()[0]
	es.Selection().Add(p.PointAt(3).ID) // the smooth anchor
	es.MoveSelection(curve.Vec(10, 0), EditNormal)
	p = es.Paths()[0]
	assert.Equal(t, curve.Pt(130, 60), p.PointAt(3).Pt)
	assert.Equal(t, curve.Pt(90, 60), p.PointAt(2).Pt, "incoming handle travels along")
	assert.Equal(t, curve.Pt(170, 60), p.PointAt(4).Pt, "outgoing handle travels along")
	assert.Equal(t, curve.Pt(40, 60), p.PointAt(1).Pt, "distant handle stays")
	assert.Equal(t, curve.Pt(0, 0), p.PointAt(0).Pt)
}

func TestMoveSelectionCarriesStartHandle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "punchcut.edit")
	defer teardown()
	//
	g := glyph.New("stroke")
	g.Outline = []glyph.Contour{{
		Points: []glyph.ContourPoint{
			glyph.Pt(0, 0, glyph.Move),
			glyph.Pt(10, 0, glyph.OffCurve),
			glyph.Pt(30, 40, glyph.OffCurve),
			glyph.Pt(40, 40, glyph.Curve),
		},
	}}
	es, _ := NewSession(g, nil, nil)
	p := es.Paths()[0]
	es.Selection().Add(p.StartPoint().ID)
	ok := es.MoveSelection(curve.Vec(5, 5), EditNormal)
	assert.True(t, ok)
	p = es.Paths()[0]
	assert.Equal(t, curve.Pt(5, 5), p.PointAt(0).Pt)
	assert.Equal(t, curve.Pt(15, 5), p.PointAt(1).Pt, "the handle travels with its anchor")
	assert.Equal(t, curve.Pt(30, 40), p.PointAt(2).Pt, "the far handle stays")
	assert.Equal(t, curve.Pt(40, 40), p.PointAt(3).Pt)
}

func TestMoveSelectionEmptyIsNoop(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "punchcut.edit")
	defer teardown()
	//
	es, _ := NewSession(squareGlyph(), nil, nil)
	assert.False(t, es.MoveSelection(curve.Vec(5, 5), EditNormal))
	assert.Equal(t, 0, es.UndoDepth())
}

func TestNudgeRunsCoalesce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "punchcut.edit")
	defer teardown()
	//
	es, _ := NewSession(squareGlyph(), nil, nil)
	es.Selection().Add(es.Paths()[0].PointAt(0).ID)
	for i := 0; i < 3; i++ {
		assert.True(t, es.NudgeSelection(1, 0, NudgePlain))
	}
	assert.Equal(t, curve.Pt(103, 0), es.Paths()[0].PointAt(0).Pt)
	assert.Equal(t, 1, es.UndoDepth(), "same-direction nudges form one group")
	// a different direction starts a new group
	es.NudgeSelection(0, 1, NudgePlain)
	assert.Equal(t, 2, es.UndoDepth())
	assert.True(t, es.Undo())
	assert.Equal(t, curve.Pt(103, 0), es.Paths()[0].PointAt(0).Pt)
	assert.True(t, es.Undo())
	assert.Equal(t, curve.Pt(100, 0), es.Paths()[0].PointAt(0).Pt)
}

func TestNudgeTiersReadRegisters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "punchcut.edit")
	defer teardown()
	//
	regs := parameters.NewEditingRegisters()
	regs.Push(parameters.P_NUDGE, 2.0)
	es, _ := NewSession(squareGlyph(), regs, nil)
	es.Selection().Add(es.Paths()[0].PointAt(0).ID)
	es.NudgeSelection(1, 0, NudgePlain)
	assert.Equal(t, curve.Pt(102, 0), es.Paths()[0].PointAt(0).Pt)
	es.NudgeSelection(0, -1, NudgeShift)
	assert.Equal(t, curve.Pt(102, -10), es.Paths()[0].PointAt(0).Pt)
	es.NudgeSelection(-1, 0, NudgeCtrl)
	assert.Equal(t, curve.Pt(2, -10), es.Paths()[0].PointAt(0).Pt)
}

func TestDragFramesCoalesce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "punchcut.edit")
	defer teardown()
	//
	es, _ := NewSession(squareGlyph(), nil, nil)
	es.Selection().Add(es.Paths()[0].PointAt(0).ID)
	es.MoveSelection(curve.Vec(1, 0), EditDrag)
	es.MoveSelection(curve.Vec(1, 0), EditDrag)
	es.MoveSelection(curve.Vec(1, 0), EditDrag)
	assert.Equal(t, 1, es.UndoDepth(), "one group for the whole drag")
	es.MoveSelection(curve.Vec(1, 0), EditNormal)
	es.MoveSelection(curve.Vec(1, 0), EditNormal)
	assert.Equal(t, 3, es.UndoDepth(), "normal edits never merge")
	// undoing the drag group restores the pre-drag position
	es.Undo()
	es.Undo()
	es.Undo()
	assert.Equal(t, curve.Pt(100, 0), es.Paths()[0].PointAt(0).Pt)
}

func TestSnapToGridCarriesHandles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "punchcut.edit")
	defer teardown()
	//
	es, _ := NewSession(curveGlyph(), nil, nil)
	p := es.Paths()[0]
	es.Selection().Add(p.PointAt(3).ID) // anchor (120,60), grid 16
	assert.True(t, es.SnapSelectionToGrid())
	p = es.Paths()[0]
	assert.Equal(t, curve.Pt(128, 64), p.PointAt(3).Pt)
	assert.Equal(t, curve.Pt(88, 64), p.PointAt(2).Pt, "handles move rigidly")
	assert.Equal(t, curve.Pt(168, 64), p.PointAt(4).Pt)
	assert.Equal(t, curve.Pt(40, 60), p.PointAt(1).Pt, "distant handle unaffected")
}

func TestSnapAlreadyOnGridIsNoop(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "punchcut.edit")
	defer teardown()
	//
	regs := parameters.NewEditingRegisters()
	regs.Push(parameters.P_GRIDSPACING, 10.0)
	es, _ := NewSession(squareGlyph(), regs, nil)
	es.SelectAll()
	assert.False(t, es.SnapSelectionToGrid(), "square already sits on the grid")
	assert.Equal(t, 0, es.UndoDepth())
}

func TestScaleSelectionAboutPivot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "punchcut.edit")
	defer teardown()
	//
	es, _ := NewSession(squareGlyph(), nil, nil)
	es.SelectAll()
	assert.True(t, es.ScaleSelection(curve.Vec(2, 0.5), curve.Pt(0, 0), EditNormal))
	p := es.Paths()[0]
	assert.Equal(t, curve.Pt(200, 0), p.PointAt(0).Pt)
	assert.Equal(t, curve.Pt(200, 50), p.PointAt(1).Pt)
	assert.Equal(t, curve.Pt(0, 50), p.PointAt(2).Pt)
	assert.Equal(t, curve.Pt(0, 0), p.PointAt(3).Pt, "the pivot point stays put")
	assert.Equal(t, 1, es.UndoDepth())
	assert.True(t, es.Undo())
	assert.Equal(t, curve.Pt(100, 100), es.Paths()[0].PointAt(1).Pt)
	// a negative component mirrors
	assert.True(t, es.ScaleSelection(curve.Vec(-1, 1), curve.Pt(50, 0), EditNormal))
	assert.Equal(t, curve.Pt(0, 0), es.Paths()[0].PointAt(0).Pt)
	assert.Equal(t, curve.Pt(100, 0), es.Paths()[0].PointAt(3).Pt)
}

func TestScaleSelectionAnchorsCarryHandles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "punchcut.edit")
	defer teardown()
	//
	es, _ := NewSession(curveGlyph(), nil, nil)
	p := es.Paths()[0]
	es.Selection().Add(p.PointAt(3).ID) // the smooth anchor at (120,60)
	assert.True(t, es.ScaleSelection(curve.Vec(2, 1), curve.Pt(0, 0), EditNormal))
	p = es.Paths()[0]
	assert.Equal(t, curve.Pt(240, 60), p.PointAt(3).Pt)
	assert.Equal(t, curve.Pt(160, 60), p.PointAt(2).Pt, "incoming handle scales along")
	assert.Equal(t, curve.Pt(320, 60), p.PointAt(4).Pt, "outgoing handle scales along")
	assert.Equal(t, curve.Pt(40, 60), p.PointAt(1).Pt, "distant handle stays")
}

func TestScaleSelectionKeepsSmoothness(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "punchcut.edit")
	defer teardown()
	//
	es, _ := NewSession(curveGlyph(), nil, nil)
	p := es.Paths()[0]
	es.Selection().Add(p.PointAt(2).ID) // handle at (80,60)
	assert.True(t, es.ScaleSelection(curve.Vec(2, 2), curve.Pt(0, 0), EditNormal))
	p = es.Paths()[0]
	moved := p.PointAt(2).Pt
	anchor := p.PointAt(3).Pt
	other := p.PointAt(4).Pt
	assert.Equal(t, curve.Pt(160, 120), moved)
	assert.Equal(t, curve.Pt(120, 60), anchor, "unselected anchor stays put")
	// the opposite handle rotated into collinearity, keeping its distance
	v1 := anchor.Sub(moved)
	v2 := other.Sub(anchor)
	assert.InDelta(t, 0.0, v1.Cross(v2), 1e-9)
	assert.Greater(t, v1.Dot(v2), 0.0)
	assert.InDelta(t, 40.0, other.Distance(anchor), 1e-9)
}

func TestScaleSelectionRejectsDegenerateFactors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "punchcut.edit")
	defer teardown()
	//
	es, _ := NewSession(squareGlyph(), nil, nil)
	es.SelectAll()
	assert.False(t, es.ScaleSelection(curve.Vec(0, 1), curve.Pt(50, 50), EditNormal))
	assert.False(t, es.ScaleSelection(curve.Vec(1, 1), curve.Pt(50, 50), EditNormal), "identity factor is a no-op")
	es.ClearSelection()
	assert.False(t, es.ScaleSelection(curve.Vec(2, 2), curve.Pt(0, 0), EditNormal))
	assert.Equal(t, 0, es.UndoDepth())
}

func TestDeleteSelectionDropsDegeneratePaths(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "punchcut.edit")
	defer teardown()
	//
	g := squareGlyph()
	g.Outline = append(g.Outline, glyph.Contour{
		Points: []glyph.ContourPoint{
			glyph.Pt(200, 0, glyph.Line),
			glyph.Pt(300, 0, glyph.Line),
			glyph.Pt(250, 80, glyph.Line),
		},
		Closed: true,
	})
	es, _ := NewSession(g, nil, nil)
	tri := es.Paths()[1]
	es.Selection().Add(tri.PointAt(0).ID)
	es.Selection().Add(tri.PointAt(1).ID)
	assert.True(t, es.DeleteSelection())
	assert.Len(t, es.Paths(), 1, "triangle dropped below two points")
	assert.Equal(t, 4, es.Paths()[0].Len(), "square untouched")
	assert.True(t, es.Selection().IsEmpty())
	// the drop is one undoable step
	assert.True(t, es.Undo())
	assert.Len(t, es.Paths(), 2)
}

func TestDeleteSelectionKeepsViablePaths(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "punchcut.edit")
	defer teardown()
	//
	es, _ := NewSession(squareGlyph(), nil, nil)
	es.Selection().Add(es.Paths()[0].PointAt(1).ID) // (100,100)
	assert.True(t, es.DeleteSelection())
	assert.Len(t, es.Paths(), 1)
	assert.Equal(t, 3, es.Paths()[0].Len())
}

func TestTogglePointTypeOnCurveOnly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "punchcut.edit")
	defer teardown()
	//
	es, _ := NewSession(curveGlyph(), nil, nil)
	p := es.Paths()[0]
	es.Selection().Add(p.PointAt(3).ID) // smooth anchor
	es.Selection().Add(p.PointAt(2).ID) // control point
	assert.True(t, es.TogglePointType())
	p = es.Paths()[0]
	assert.Equal(t, path.Corner, p.PointAt(3).Kind)
	assert.Equal(t, path.Control, p.PointAt(2).Kind, "controls keep their kind")
	assert.True(t, es.TogglePointType())
	assert.Equal(t, path.Smooth, es.Paths()[0].PointAt(3).Kind)
}

func TestReverseContours(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "punchcut.edit")
	defer teardown()
	//
	es, _ := NewSession(squareGlyph(), nil, nil)
	before := es.Paths()[0].Segments()
	assert.Equal(t, curve.Pt(100, 0), before[0].End.Pt)
	assert.True(t, es.ReverseContours())
	p := es.Paths()[0]
	assert.Equal(t, curve.Pt(0, 0), p.StartPoint().Pt, "start point survives")
	segs := p.Segments()
	assert.Equal(t, curve.Pt(0, 100), segs[0].End.Pt, "winding flipped")
	assert.Equal(t, 1, es.UndoDepth())
}

func TestInsertPointOnSegment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "punchcut.edit")
	defer teardown()
	//
	es, _ := NewSession(squareGlyph(), nil, nil)
	segs := es.Paths()[0].Segments()
	// segs[1] runs from (100,0) to (100,100)
	pp, ok := es.InsertPointOnSegment(segs[1], 0.5)
	assert.True(t, ok)
	assert.Equal(t, curve.Pt(100, 50), pp.Pt)
	assert.Equal(t, 5, es.Paths()[0].Len())
	assert.True(t, es.Selection().Contains(pp.ID), "new point becomes the selection")
	assert.Equal(t, 1, es.Selection().Len())
}

func TestInsertPointRejectsStaleSegment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "punchcut.edit")
	defer teardown()
	//
	es, _ := NewSession(squareGlyph(), nil, nil)
	segs := es.Paths()[0].Segments()
	_, ok := es.InsertPointOnSegment(segs[1], 0.5)
	assert.True(t, ok)
	// segs[2] described the path before the insertion shifted indices
	_, ok = es.InsertPointOnSegment(segs[2], 0.5)
	assert.False(t, ok, "stale segment must not match the wrong points")
	// a segment of an unknown path finds nothing
	ghost := segs[1]
	ghost.PathID = glyph.NewEntityID()
	_, ok = es.InsertPointOnSegment(ghost, 0.5)
	assert.False(t, ok)
}

func TestConvertHyperPathsToCubic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "punchcut.edit")
	defer teardown()
	//
	es, _ := NewSession(hyperTriangleGlyph(), nil, nil)
	_, isHyper := es.Paths()[0].(*path.HyperPath)
	assert.True(t, isHyper)
	assert.Equal(t, 1, es.ConvertHyperPathsToCubic())
	_, isCubic := es.Paths()[0].(*path.CubicPath)
	assert.True(t, isCubic)
	assert.Equal(t, 0, es.ConvertHyperPathsToCubic(), "nothing left to convert")
	assert.Equal(t, 1, es.UndoDepth())
	assert.True(t, es.Undo())
	_, isHyper = es.Paths()[0].(*path.HyperPath)
	assert.True(t, isHyper, "undo restores the hyperbezier form")
}

func TestPastePathsPlacesFreshCopies(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "punchcut.edit")
	defer teardown()
	//
	es, _ := NewSession(squareGlyph(), nil, nil)
	src := es.Paths()[0]
	assert.Equal(t, 1, es.PastePaths([]path.Path{src}, curve.Vec(20, 30)))
	assert.Len(t, es.Paths(), 2)
	pasted := es.Paths()[1]
	assert.NotEqual(t, src.ID(), pasted.ID())
	assert.True(t, pasted.Closed())
	assert.Equal(t, curve.Pt(120, 30), pasted.PointAt(0).Pt)
	assert.Equal(t, curve.Pt(20, 30), pasted.StartPoint().Pt, "shape shifted, start point kept")
	// no point identity is shared with the source
	srcIDs := make(map[glyph.EntityID]bool)
	for _, pp := range src.Points() {
		srcIDs[pp.ID] = true
	}
	for _, pp := range pasted.Points() {
		assert.False(t, srcIDs[pp.ID])
	}
	// the pasted points become the selection
	assert.Equal(t, 4, es.Selection().Len())
	for _, pp := range pasted.Points() {
		assert.True(t, es.Selection().Contains(pp.ID))
	}
	assert.Equal(t, 1, es.UndoDepth())
}

func TestPastePathsKeepsRepresentation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "punchcut.edit")
	defer teardown()
	//
	es, _ := NewSession(hyperTriangleGlyph(), nil, nil)
	assert.Equal(t, 1, es.PastePaths([]path.Path{es.Paths()[0]}, curve.Vec(150, 0)))
	pasted, isHyper := es.Paths()[1].(*path.HyperPath)
	assert.True(t, isHyper, "hyperbezier paths paste as hyperbezier paths")
	assert.Equal(t, 3, pasted.Len())
	// an empty clipboard pastes nothing and records no edit
	assert.Equal(t, 0, es.PastePaths(nil, curve.Vec(0, 0)))
	assert.Equal(t, 1, es.UndoDepth())
}

func TestReplacePathsClearsSelection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "punchcut.edit")
	defer teardown()
	//
	es, _ := NewSession(squareGlyph(), nil, nil)
	es.SelectAll()
	repl := path.CubicFromPoints([]path.PathPoint{
		path.Point(0, 0, false),
		path.Point(50, 0, false),
		path.Point(25, 40, false),
	}, true)
	es.ReplacePaths([]path.Path{repl})
	assert.Len(t, es.Paths(), 1)
	assert.True(t, es.Selection().IsEmpty())
	assert.Equal(t, 1, es.UndoDepth())
}
