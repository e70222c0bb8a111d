package tools

import (
	"math"

	"github.com/npillmayer/punchcut/engine/editor"
	"github.com/npillmayer/punchcut/engine/sorts"
)

// defaultLineHeight is one em in a common 1000-unit design space.
const defaultLineHeight = 1000

// TextTool types sorts into the session's buffer. Character keys
// insert sorts, backspace and delete remove them, the arrow keys move
// the cursor, and enter breaks the line. Clicking a sort makes it the
// one being edited.
type TextTool struct {
	LineHeight float64 // design units between baselines, 0 means one em
}

func (t *TextTool) Name() string { return "text" }

func (t *TextTool) lineHeight() float64 {
	if t.LineHeight > 0 {
		return t.LineHeight
	}
	return defaultLineHeight
}

func (t *TextTool) down(es *editor.EditSession, ev Pointer) {
	buf := es.Buffer()
	if buf == nil || buf.Len() == 0 {
		return
	}
	lh := t.lineHeight()
	design := es.Viewport().ToDesign(ev.Pos)
	want := int(math.Round(-design.Y / lh))
	if want < 0 {
		want = 0
	}
	best := -1
	bestDist := math.Inf(1)
	for _, p := range buf.Layout(lh) {
		if p.Sort.Kind != sorts.GlyphSort {
			continue
		}
		if int(math.Round(-p.Y/lh)) != want {
			continue
		}
		if design.X >= p.X && design.X < p.X+p.Sort.Advance {
			best = p.Index
			break
		}
		d := math.Min(math.Abs(design.X-p.X), math.Abs(design.X-p.X-p.Sort.Advance))
		if d < bestDist {
			bestDist = d
			best = p.Index
		}
	}
	if best >= 0 {
		es.ActivateSort(best)
	}
}

func (t *TextTool) drag(es *editor.EditSession, ev Pointer) {}

func (t *TextTool) up(es *editor.EditSession, ev Pointer) {}

func (t *TextTool) key(es *editor.EditSession, ev Key) bool {
	buf := es.Buffer()
	if buf == nil || ev.Ctrl {
		return false
	}
	switch ev.Code {
	case KeyRune:
		if _, ok := buf.InsertRune(ev.Rune); !ok {
			tracer().Infof("no sort for %q", ev.Rune)
		}
		return true
	case KeyEnter:
		buf.InsertRune('\n')
		return true
	case KeyBackspace:
		buf.DeleteBackward()
		return true
	case KeyDelete:
		buf.DeleteForward()
		return true
	case KeyLeft:
		buf.MoveCursor(-1)
		return true
	case KeyRight:
		buf.MoveCursor(1)
		return true
	}
	return false
}

func (t *TextTool) cancel() {}
