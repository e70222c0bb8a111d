package tools

import (
	"honnef.co/go/curve"

	"github.com/npillmayer/punchcut/engine/editor"
)

// Tool is one of the editing tools. The set is closed: every tool type
// lives in this package, sealed by the marker method, and event routing
// switches over the concrete types exhaustively. Adding a tool means
// touching every switch, which is intended.
type Tool interface {
	// Name returns the tool's identifier, e.g. "pen".
	Name() string
	isTool()
}

func (t *SelectTool) isTool()   {}
func (t *PenTool) isTool()      {}
func (t *HyperPenTool) isTool() {}
func (t *KnifeTool) isTool()    {}
func (t *ShapesTool) isTool()   {}
func (t *TextTool) isTool()     {}
func (t *MeasureTool) isTool()  {}
func (t *PreviewTool) isTool()  {}

// Controller owns the tool set and the active tool and routes abstract
// input events to it. It tracks whether a pointer button is down, so
// tools see a plain down/drag/up gesture vocabulary.
type Controller struct {
	es      *editor.EditSession
	active  Tool
	pressed bool

	sel      *SelectTool
	pen      *PenTool
	hyperPen *HyperPenTool
	knife    *KnifeTool
	shapes   *ShapesTool
	text     *TextTool
	measure  *MeasureTool
	preview  *PreviewTool
}

// NewController creates the tool set for an edit session, with the
// select tool active.
func NewController(es *editor.EditSession) *Controller {
	c := &Controller{
		es:       es,
		sel:      &SelectTool{},
		pen:      &PenTool{},
		hyperPen: &HyperPenTool{},
		knife:    &KnifeTool{},
		shapes:   &ShapesTool{},
		text:     &TextTool{},
		measure:  &MeasureTool{},
		preview:  &PreviewTool{},
	}
	c.active = c.sel
	return c
}

// Session returns the edit session the controller operates on.
func (c *Controller) Session() *editor.EditSession {
	return c.es
}

// ActiveTool returns the currently active tool.
func (c *Controller) ActiveTool() Tool {
	return c.active
}

// Shapes returns the shapes tool, for configuring the shape to draw.
func (c *Controller) Shapes() *ShapesTool {
	return c.shapes
}

// Text returns the text tool, for configuring the line height.
func (c *Controller) Text() *TextTool {
	return c.text
}

// Activate switches to the tool with the given name, cancelling any
// gesture in flight. It returns false for names it does not know.
func (c *Controller) Activate(name string) bool {
	var next Tool
	switch name {
	case c.sel.Name():
		next = c.sel
	case c.pen.Name():
		next = c.pen
	case c.hyperPen.Name():
		next = c.hyperPen
	case c.knife.Name():
		next = c.knife
	case c.shapes.Name():
		next = c.shapes
	case c.text.Name():
		next = c.text
	case c.measure.Name():
		next = c.measure
	case c.preview.Name():
		next = c.preview
	default:
		tracer().Infof("no tool named %q", name)
		return false
	}
	if next == c.active {
		return true
	}
	c.cancelActive()
	c.active = next
	if c.es != nil {
		c.es.SetTextMode(next == Tool(c.text))
	}
	tracer().Debugf("tool %q activated", name)
	return true
}

// PointerDown starts a gesture with the active tool.
func (c *Controller) PointerDown(ev Pointer) {
	if c.es == nil || c.pressed {
		return
	}
	c.pressed = true
	switch t := c.active.(type) {
	case *SelectTool:
		t.down(c.es, ev)
	case *PenTool:
		t.down(c.es, ev)
	case *HyperPenTool:
		t.down(c.es, ev)
	case *KnifeTool:
		t.down(c.es, ev)
	case *ShapesTool:
		t.down(c.es, ev)
	case *TextTool:
		t.down(c.es, ev)
	case *MeasureTool:
		t.down(c.es, ev)
	case *PreviewTool:
		t.down(c.es, ev)
	}
}

// PointerMove continues a gesture. Moves without a preceding
// PointerDown are hover and currently ignored.
func (c *Controller) PointerMove(ev Pointer) {
	if c.es == nil || !c.pressed {
		return
	}
	switch t := c.active.(type) {
	case *SelectTool:
		t.drag(c.es, ev)
	case *PenTool:
		t.drag(c.es, ev)
	case *HyperPenTool:
		t.drag(c.es, ev)
	case *KnifeTool:
		t.drag(c.es, ev)
	case *ShapesTool:
		t.drag(c.es, ev)
	case *TextTool:
		t.drag(c.es, ev)
	case *MeasureTool:
		t.drag(c.es, ev)
	case *PreviewTool:
		t.drag(c.es, ev)
	}
}

// PointerUp finishes a gesture.
func (c *Controller) PointerUp(ev Pointer) {
	if c.es == nil || !c.pressed {
		return
	}
	c.pressed = false
	switch t := c.active.(type) {
	case *SelectTool:
		t.up(c.es, ev)
	case *PenTool:
		t.up(c.es, ev)
	case *HyperPenTool:
		t.up(c.es, ev)
	case *KnifeTool:
		t.up(c.es, ev)
	case *ShapesTool:
		t.up(c.es, ev)
	case *TextTool:
		t.up(c.es, ev)
	case *MeasureTool:
		t.up(c.es, ev)
	case *PreviewTool:
		t.up(c.es, ev)
	}
}

// KeyDown routes a key press. Undo chords are handled here, then the
// active tool gets the event, then unconsumed plain letters switch
// tools by their shortcut. It reports whether the event was consumed.
func (c *Controller) KeyDown(ev Key) bool {
	if c.es == nil {
		return false
	}
	if ev.Ctrl && ev.Code == KeyRune && (ev.Rune == 'z' || ev.Rune == 'Z') {
		if ev.Shift {
			return c.es.Redo()
		}
		return c.es.Undo()
	}
	consumed := false
	switch t := c.active.(type) {
	case *SelectTool:
		consumed = t.key(c.es, ev)
	case *PenTool:
		consumed = t.key(c.es, ev)
	case *HyperPenTool:
		consumed = t.key(c.es, ev)
	case *KnifeTool:
		consumed = t.key(c.es, ev)
	case *ShapesTool:
		consumed = t.key(c.es, ev)
	case *TextTool:
		consumed = t.key(c.es, ev)
	case *MeasureTool:
		consumed = t.key(c.es, ev)
	case *PreviewTool:
		consumed = t.key(c.es, ev)
	}
	if consumed {
		return true
	}
	if ev.Code == KeyRune && !ev.Ctrl && !ev.Shift {
		if name, ok := shortcuts[ev.Rune]; ok {
			return c.Activate(name)
		}
	}
	return false
}

// shortcuts maps plain letter presses to tool names.
var shortcuts = map[rune]string{
	'v': "select",
	'p': "pen",
	'h': "hyperpen",
	'k': "knife",
	's': "shapes",
	't': "text",
	'm': "measure",
	'o': "preview",
}

// cancelActive resets the active tool's gesture state.
func (c *Controller) cancelActive() {
	c.pressed = false
	switch t := c.active.(type) {
	case *SelectTool:
		t.cancel()
	case *PenTool:
		t.cancel()
	case *HyperPenTool:
		t.cancel()
	case *KnifeTool:
		t.cancel()
	case *ShapesTool:
		t.cancel()
	case *TextTool:
		t.cancel()
	case *MeasureTool:
		t.cancel()
	case *PreviewTool:
		t.cancel()
	}
}

// designPos maps a screen position into glyph design space, removing
// the x offset of the active sort in text mode.
func designPos(es *editor.EditSession, screen curve.Point) curve.Point {
	pt := es.Viewport().ToDesign(screen)
	return pt.Translate(curve.Vec(-es.ActiveSortXOffset(), 0))
}

// screenPos maps a glyph design-space position onto the screen, the
// inverse of designPos.
func screenPos(es *editor.EditSession, design curve.Point) curve.Point {
	pt := design.Translate(curve.Vec(es.ActiveSortXOffset(), 0))
	return es.Viewport().ToScreen(pt)
}
