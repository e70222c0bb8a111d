/*
Package harfbuzz shapes text with the HarfBuzz shaping engine.

A Shaper is created from the binary form of an OpenType font and turns
sequences of Unicode code-points into positioned glyphs, selecting
contextual forms, ligatures and kerning from the font's shaping tables.
Output positions are in unscaled font units, matching the design space
of the glyph editor.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package harfbuzz

import (
	"bytes"
	"encoding/binary"
	"io"
	"unicode"

	hbtt "github.com/benoitkugler/textlayout/fonts/truetype"
	hb "github.com/benoitkugler/textlayout/harfbuzz"
	hblang "github.com/benoitkugler/textlayout/language"
	"github.com/npillmayer/punchcut/engine/glyphing"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/language"
)

// tracer traces with key 'punchcut.glyphs'.
func tracer() tracing.Trace {
	return tracing.Select("punchcut.glyphs")
}

// --- Type conversion -------------------------------------------------------

// Lang4HB returns a language tag as a HarfBuzz language.
func Lang4HB(l language.Tag) hblang.Language {
	return hblang.NewLanguage(l.String())
}

// Script4HB returns a script as a HarfBuzz script.
func Script4HB(s language.Script) hblang.Script {
	b := []byte(s.String())
	b[0] = byte(unicode.ToLower(rune(b[0])))
	h := binary.BigEndian.Uint32(b)
	return hblang.Script(h)
}

// Direction4HB translates a direction to a HarfBuzz direction.
func Direction4HB(d glyphing.Direction) hb.Direction {
	switch d {
	case glyphing.LeftToRight:
		return hb.LeftToRight
	case glyphing.RightToLeft:
		return hb.RightToLeft
	case glyphing.TopToBottom:
		return hb.TopToBottom
	case glyphing.BottomToTop:
		return hb.BottomToTop
	}
	return hb.LeftToRight
}

// FeatureRange4HB converts a feature range struct to a HarfBuzz feature
// switch. The feature tag must be 4 letters long.
func FeatureRange4HB(frng glyphing.FeatureRange) hb.Feature {
	f := hb.Feature{
		Tag:   hbtt.MustNewTag(frng.Feature),
		Start: frng.Start,
		End:   frng.End,
	}
	if frng.On {
		if frng.Arg > 0 {
			f.Value = uint32(frng.Arg)
		} else {
			f.Value = 1
		}
	}
	return f
}

// --- Shaper ----------------------------------------------------------------

// Shaper shapes text with HarfBuzz. It holds a single font, parsed once
// from its binary form, and produces glyph positions in unscaled font
// units.
type Shaper struct {
	font *hb.Font
	sfnt *sfnt.Font
}

var _ glyphing.Shaper = (*Shaper)(nil)

// New creates a Shaper from a font program in OpenType or TrueType
// format. The binary is parsed twice, once for HarfBuzz and once for
// the metrics lookups, and then reused for every call to Shape.
func New(binary []byte) (*Shaper, error) {
	hb_face, err := hbtt.Parse(bytes.NewReader(binary), true)
	if err != nil {
		return nil, err
	}
	sf, err := sfnt.Parse(binary)
	if err != nil {
		return nil, err
	}
	return &Shaper{
		font: hb.NewFont(hb_face),
		sfnt: sf,
	}, nil
}

// Shape shapes a sequence of code-points (runes), turning its Unicode
// characters into positioned glyphs. HarfBuzz selects a shape plan based
// on params and the properties of the input text.
//
// If params.Features is not empty, it will be used to control the
// features applied during shaping. If two features have the same tag but
// overlapping ranges the value of the feature with the higher index takes
// precedence.
func (sh *Shaper) Shape(text io.RuneReader, params glyphing.Params) (glyphing.GlyphSequence, error) {
	if text == nil {
		return glyphing.GlyphSequence{}, nil
	}
	runes := readRunes(text)
	return sh.ShapeRange(runes, 0, len(runes), params)
}

// ShapeRange shapes runes[offset:offset+length]. The runes surrounding
// that range take part in selecting contextual forms as pre- and
// post-context, but produce no output glyphs.
func (sh *Shaper) ShapeRange(runes []rune, offset, length int, params glyphing.Params) (glyphing.GlyphSequence, error) {
	if sh == nil || sh.font == nil || length == 0 {
		return glyphing.GlyphSequence{}, nil
	}
	// Prepare shaping parameters
	var hb_seqProps hb.SegmentProperties
	convertParams(&hb_seqProps, params)
	features := make([]hb.Feature, 0, len(params.Features))
	for _, feat := range params.Features {
		if len(feat.Feature) != 4 {
			tracer().Errorf("ignoring feature with malformed tag %q", feat.Feature)
			continue
		}
		features = append(features, FeatureRange4HB(feat))
	}
	// Prepare HarfBuzz buffer
	hb_buf := hb.NewBuffer()
	hb_buf.Props = hb_seqProps
	hb_buf.AddRunes(runes, offset, length)
	hb_buf.Shape(sh.font, features)
	// Move HarfBuzz output to glyph sequence output
	seq := glyphing.GlyphSequence{
		Glyphs: make([]glyphing.ShapedGlyph, len(hb_buf.Info)),
	}
	var sfntBuf sfnt.Buffer
	// Requesting glyph bounds at a ppem of upem/64 makes the returned
	// fixed-point values numerically equal to font units.
	upem := fixed.Int26_6(sh.sfnt.UnitsPerEm())
	for i, ginfo := range hb_buf.Info {
		gpos := &hb_buf.Pos[i]
		tracer().Debugf("[%3d] %q", i, ginfo.String())
		g := &seq.Glyphs[i]
		g.ClusterID = ginfo.Cluster
		g.GID = uint32(ginfo.Glyph)
		g.XAdvance = float64(gpos.XAdvance)
		g.YAdvance = float64(gpos.YAdvance)
		g.XOffset = float64(gpos.XOffset)
		g.YOffset = float64(gpos.YOffset)
		g.CodePoint = runes[g.ClusterID]
		bounds, adv, err := sh.sfnt.GlyphBounds(&sfntBuf, sfnt.GlyphIndex(g.GID), upem, font.HintingNone)
		if err == nil {
			// sfnt bounds have y growing downwards; font units grow up.
			g.Metrics.Advance = float64(adv)
			g.Metrics.MinX = float64(bounds.Min.X)
			g.Metrics.MinY = -float64(bounds.Max.Y)
			g.Metrics.MaxX = float64(bounds.Max.X)
			g.Metrics.MaxY = -float64(bounds.Min.Y)
			g.Metrics.LSB = g.Metrics.MinX
			g.Metrics.RSB = g.Metrics.Advance - g.Metrics.MaxX
		}
		seq.W += g.XAdvance
		if g.Metrics.MaxY > seq.H {
			seq.H = g.Metrics.MaxY
		}
		if d := -g.Metrics.MinY; d > seq.D {
			seq.D = d
		}
	}
	return seq, nil
}

// convertParams is a helper function to convert glyphing parameters to
// HarfBuzz's format.
func convertParams(hb_seqProps *hb.SegmentProperties, params glyphing.Params) {
	if params.Language != language.Und {
		hb_seqProps.Language = Lang4HB(params.Language)
	}
	var none language.Script
	if params.Script != none {
		hb_seqProps.Script = Script4HB(params.Script)
	}
	hb_seqProps.Direction = Direction4HB(params.Direction)
}

// readRunes drains a RuneReader.
func readRunes(text io.RuneReader) (runes []rune) {
	for {
		r, sz, err := text.ReadRune()
		if sz == 0 || err != nil {
			break
		}
		runes = append(runes, r)
	}
	return runes
}
