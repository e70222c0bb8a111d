package tools

import (
	"honnef.co/go/curve"

	"github.com/npillmayer/punchcut/engine/editor"
)

// PreviewTool shows the filled outline without editing affordances and
// pans the viewport on drag. Renderers consult P_PREVIEWFILL for the
// fill style; the tool itself only moves the viewport, which is not an
// undoable edit.
type PreviewTool struct {
	last    curve.Point // screen space
	panning bool
}

func (t *PreviewTool) Name() string { return "preview" }

func (t *PreviewTool) down(es *editor.EditSession, ev Pointer) {
	t.last = ev.Pos
	t.panning = true
}

func (t *PreviewTool) drag(es *editor.EditSession, ev Pointer) {
	if !t.panning {
		return
	}
	vp := es.Viewport()
	vp.Offset = vp.Offset.Add(ev.Pos.Sub(t.last))
	es.SetViewport(vp)
	t.last = ev.Pos
}

func (t *PreviewTool) up(es *editor.EditSession, ev Pointer) {
	t.panning = false
}

func (t *PreviewTool) key(es *editor.EditSession, ev Key) bool {
	return false
}

func (t *PreviewTool) cancel() {
	t.panning = false
}
