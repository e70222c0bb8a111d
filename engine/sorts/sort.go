package sorts

import "fmt"

// Kind discriminates buffer entries.
type Kind int8

const (
	GlyphSort Kind = iota // a named glyph with an advance width
	LineBreak
)

// A Sort is one entry of the text buffer: a glyph reference carrying the
// metrics needed for layout, or a line break. The glyph name may carry a
// positional suffix (".init", ".medi", ".fina") chosen by the shaping
// collaborator; Codepoint keeps the character the sort was typed as, so
// reshaping can re-derive the name later.
type Sort struct {
	Kind      Kind
	Name      string
	Codepoint rune
	Advance   float64
	Active    bool // at most one entry is active, enforced by SetActive
}

// Glyph creates a glyph sort.
func Glyph(name string, cp rune, advance float64) Sort {
	return Sort{Kind: GlyphSort, Name: name, Codepoint: cp, Advance: advance}
}

// Break creates a line-break sort.
func Break() Sort {
	return Sort{Kind: LineBreak}
}

func (s Sort) String() string {
	if s.Kind == LineBreak {
		return "<br>"
	}
	return fmt.Sprintf("<%s %g>", s.Name, s.Advance)
}

// GlyphSource resolves characters to glyphs. Implemented by the font
// workspace; a nil source leaves the buffer to purely structural edits.
type GlyphSource interface {
	// GlyphName returns the name of the glyph representing r.
	GlyphName(r rune) (string, bool)
	// GlyphAdvance returns the advance width of a named glyph.
	GlyphAdvance(name string) (float64, bool)
}

// Shaper decides positional glyph forms for cursive scripts. Implemented
// by the Arabic shaping engine; a nil shaper disables reshaping.
type Shaper interface {
	// Transparent reports whether r is skipped when determining the
	// joining context of its neighbours (combining marks).
	Transparent(r rune) bool
	// ShapedName returns the positional glyph name for r between its
	// nearest non-transparent neighbours. prev and next are 0 at a text
	// or line boundary. ok is false when r takes no contextual forms.
	ShapedName(r rune, prev, next rune) (name string, ok bool)
}
