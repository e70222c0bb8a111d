// Package glyphing turns sequences of Unicode code-points into
// sequences of positioned glyphs. It provides the shaping collaborators
// of the editor: a contextual-forms resolver for joining scripts and an
// interface to full shaping engines.
package glyphing

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
)

// Direction is the direction to typeset text in.
type Direction int

// Direction to typeset text in.
//
//go:generate stringer -type=Direction
const (
	LeftToRight Direction = iota
	RightToLeft
	TopToBottom
	BottomToTop
)

// A ShapedGlyph lives in design space, i.e. unscaled font units.
type ShapedGlyph struct {
	ClusterID int          // position of code-point(s) for this glyph in the input
	GID       uint32       // glyph index within the font
	CodePoint rune         // code-point of first rune to produce this glyph
	XAdvance  float64      // advance after glyph has been set, in design units
	YAdvance  float64      //
	XOffset   float64      // position of anchor dot for glyph, in design units
	YOffset   float64      //
	Metrics   GlyphMetrics // raw metrics in font units
}

func (g ShapedGlyph) String() string {
	return fmt.Sprintf("(GID=%d, advance=%.5g)", g.GID, g.XAdvance)
}

// GlyphMetrics are raw glyph metrics in font units.
type GlyphMetrics struct {
	Advance                float64
	LSB, RSB               float64
	MinX, MinY, MaxX, MaxY float64 // bounding box
}

// A Shaper creates a sequence of glyphs from a sequence of Unicode
// code-points, taken from the font the shaper was created with.
//
// Clients may provide additional information in Params.
type Shaper interface {
	Shape(text io.RuneReader, params Params) (GlyphSequence, error)
}

// Params collects shaping parameters.
type Params struct {
	Direction Direction       // writing direction
	Script    language.Script // 4-letter ISO 15924 script identifier
	Language  language.Tag    // BCP 47 language tag
	Features  []FeatureRange  // OpenType features to apply
}

// FeatureRange tells a shaper to turn a certain OpenType feature on or
// off for a run of code-points.
type FeatureRange struct {
	Feature    string // 4-letter feature tag
	Arg        int    // optional argument for this feature
	On         bool   // turn it on or off?
	Start, End int    // position of code-points to apply feature for
}

// GlyphSequence contains a sequence of shaped glyphs.
type GlyphSequence struct {
	Glyphs  []ShapedGlyph // resulting sequence of glyphs
	W, H, D float64       // width, height, depth of bounding box
}

func (seq GlyphSequence) BoundingBox() (w float64, h float64, d float64) {
	return seq.W, seq.H, seq.D
}
