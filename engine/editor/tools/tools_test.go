package tools

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"honnef.co/go/curve"

	"github.com/npillmayer/punchcut/core/glyph"
	"github.com/npillmayer/punchcut/engine/editor"
	"github.com/npillmayer/punchcut/engine/path"
	"github.com/npillmayer/punchcut/engine/sorts"
)

// screen maps a design-space position to screen space at the identity
// viewport.
func screen(x, y float64) curve.Point {
	return curve.Pt(x, -y)
}

// squareGlyph is a closed 100x100 square of line segments with its
// start point at the origin.
func squareGlyph(name string, cp rune) *glyph.Glyph {
	g := glyph.New(name)
	g.Advance = 200
	if cp != 0 {
		g.Codepoints = []rune{cp}
	}
	g.Outline = []glyph.Contour{{
		Points: []glyph.ContourPoint{
			glyph.Pt(0, 0, glyph.Line),
			glyph.Pt(100, 0, glyph.Line),
			glyph.Pt(100, 100, glyph.Line),
			glyph.Pt(0, 100, glyph.Line),
		},
		Closed: true,
	}}
	return g
}

func emptyGlyph(name string) *glyph.Glyph {
	g := glyph.New(name)
	g.Advance = 500
	return g
}

func editController(t *testing.T, g *glyph.Glyph) (*Controller, *editor.EditSession) {
	es, err := editor.NewSession(g, nil, nil)
	assert.NoError(t, err)
	return NewController(es), es
}

func click(c *Controller, pos curve.Point) {
	c.PointerDown(Pointer{Pos: pos, Count: 1})
	c.PointerUp(Pointer{Pos: pos, Count: 1})
}

func drag(c *Controller, from, to curve.Point) {
	c.PointerDown(Pointer{Pos: from, Count: 1})
	c.PointerMove(Pointer{Pos: to})
	c.PointerUp(Pointer{Pos: to})
}

// pointIndexAt finds the stored index of the point at the given design
// position, or -1.
func pointIndexAt(p path.Path, x, y float64) int {
	for i := 0; i < p.Len(); i++ {
		if p.PointAt(i).Pt == curve.Pt(x, y) {
			return i
		}
	}
	return -1
}

type fakeFont struct {
	adv map[string]float64
}

func (f fakeFont) GlyphName(r rune) (string, bool) {
	if r >= 'a' && r <= 'z' {
		return string(r), true
	}
	return "", false
}

func (f fakeFont) GlyphAdvance(name string) (float64, bool) {
	a, ok := f.adv[name]
	return a, ok
}

type fakeStore struct {
	glyphs map[string]*glyph.Glyph
}

func newFakeStore(gs ...*glyph.Glyph) *fakeStore {
	fs := &fakeStore{glyphs: make(map[string]*glyph.Glyph)}
	for _, g := range gs {
		fs.glyphs[g.Name] = g
	}
	return fs
}

func (fs *fakeStore) Glyph(name string) (*glyph.Glyph, bool) {
	g, ok := fs.glyphs[name]
	return g, ok
}

func (fs *fakeStore) PutGlyph(g *glyph.Glyph) {
	fs.glyphs[g.Name] = g
}

func TestControllerStartsWithSelect(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "punchcut.tools")
	defer teardown()
	//
	c, _ := editController(t, squareGlyph("square", 's'))
	assert.Equal(t, "select", c.ActiveTool().Name())
}

func TestShortcutsSwitchTools(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "punchcut.tools")
	defer teardown()
	//
	c, _ := editController(t, squareGlyph("square", 's'))
	assert.True(t, c.KeyDown(Key{Code: KeyRune, Rune: 'p'}))
	assert.Equal(t, "pen", c.ActiveTool().Name())
	assert.True(t, c.KeyDown(Key{Code: KeyRune, Rune: 'k'}))
	assert.Equal(t, "knife", c.ActiveTool().Name())
	assert.True(t, c.KeyDown(Key{Code: KeyRune, Rune: 'v'}))
	assert.Equal(t, "select", c.ActiveTool().Name())
	// unknown letters are not consumed
	assert.False(t, c.KeyDown(Key{Code: KeyRune, Rune: 'q'}))
}

func TestActivateUnknownToolFails(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "punchcut.tools")
	defer teardown()
	//
	c, _ := editController(t, squareGlyph("square", 's'))
	assert.False(t, c.Activate("lasso"))
	assert.Equal(t, "select", c.ActiveTool().Name())
}

func TestTextToolConsumesShortcutLetters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "punchcut.tools")
	defer teardown()
	//
	c, es := editController(t, squareGlyph("p", 'p'))
	buf := sorts.NewBuffer(fakeFont{adv: map[string]float64{"p": 100}}, nil)
	es.AttachBuffer(buf)
	c.Activate("text")
	assert.True(t, es.TextMode())
	// 'p' types a sort instead of switching to the pen
	assert.True(t, c.KeyDown(Key{Code: KeyRune, Rune: 'p'}))
	assert.Equal(t, "text", c.ActiveTool().Name())
	assert.Equal(t, 1, buf.Len())
	c.Activate("select")
	assert.False(t, es.TextMode())
}

func TestUndoChord(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "punchcut.tools")
	defer teardown()
	//
	c, es := editController(t, squareGlyph("square", 's'))
	click(c, screen(100, 0))
	c.KeyDown(Key{Code: KeyRight})
	assert.True(t, pointIndexAt(es.Paths()[0], 101, 0) >= 0)
	assert.True(t, c.KeyDown(Key{Code: KeyRune, Rune: 'z', Ctrl: true}))
	assert.True(t, pointIndexAt(es.Paths()[0], 100, 0) >= 0)
	assert.True(t, c.KeyDown(Key{Code: KeyRune, Rune: 'z', Ctrl: true, Shift: true}))
	assert.True(t, pointIndexAt(es.Paths()[0], 101, 0) >= 0)
}

func TestSwitchingToolsCancelsGesture(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "punchcut.tools")
	defer teardown()
	//
	c, es := editController(t, squareGlyph("square", 's'))
	c.Activate("knife")
	c.PointerDown(Pointer{Pos: screen(50, 120), Count: 1})
	c.PointerMove(Pointer{Pos: screen(50, 60)})
	c.Activate("select")
	_, visible := c.knife.Line()
	assert.False(t, visible)
	assert.Len(t, es.Paths(), 1)
}
