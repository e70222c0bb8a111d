package otload

import (
	"fmt"
	"math"

	"github.com/npillmayer/punchcut/core"
	"github.com/npillmayer/punchcut/core/font"
	"github.com/npillmayer/punchcut/core/glyph"
	"github.com/npillmayer/punchcut/core/parameters"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Import builds a workspace from a font program in OpenType format.
// The workspace keeps the binary around for shaping previews.
func Import(binary []byte, regs *parameters.EditingRegisters) (*font.Workspace, error) {
	sf, err := sfnt.Parse(binary)
	if err != nil {
		return nil, core.WrapError(err, core.EFORMAT, "font program is not parsable OpenType")
	}
	return importFont(sf, binary, regs), nil
}

// importFont extracts global metrics and every glyph of a parsed font.
// Glyphs which cannot be loaded are imported without an outline, so the
// workspace stays complete even for partially broken fonts.
func importFont(sf *sfnt.Font, binary []byte, regs *parameters.EditingRegisters) *font.Workspace {
	var buf sfnt.Buffer
	// Requesting metrics and outlines at a ppem of upem/64 makes the
	// returned fixed-point values numerically equal to font units.
	upem := fixed.Int26_6(sf.UnitsPerEm())
	info := font.Info{
		UnitsPerEm: float64(sf.UnitsPerEm()),
	}
	if family, err := sf.Name(&buf, sfnt.NameIDFamily); err == nil {
		info.Family = family
	}
	if style, err := sf.Name(&buf, sfnt.NameIDSubfamily); err == nil {
		info.Style = style
	}
	if m, err := sf.Metrics(&buf, upem, xfont.HintingNone); err == nil {
		// sfnt metrics are magnitudes in a y-down world; design space
		// has y growing upwards and the descender below the baseline.
		info.Ascender = float64(m.Ascent)
		info.Descender = -float64(m.Descent)
		info.XHeight = float64(m.XHeight)
		info.CapHeight = float64(m.CapHeight)
		if m.CaretSlope.Y != 0 {
			info.ItalicAngle = -180 / math.Pi *
				math.Atan2(float64(m.CaretSlope.X), float64(m.CaretSlope.Y))
		}
	}
	ws := font.NewWorkspace(info, regs)
	ws.SetBinary(binary)
	codepoints := scanCmap(sf, &buf)
	numGlyphs := sf.NumGlyphs()
	for i := 0; i < numGlyphs; i++ {
		gid := sfnt.GlyphIndex(i)
		g := glyph.New(glyphName(sf, &buf, gid, codepoints[gid]))
		g.Codepoints = codepoints[gid]
		if adv, err := sf.GlyphAdvance(&buf, gid, upem, xfont.HintingNone); err == nil {
			g.Advance = float64(adv)
		}
		if segments, err := sf.LoadGlyph(&buf, gid, upem, nil); err != nil {
			tracer().Infof("glyph #%d of %s has no loadable outline: %v", i, info.Family, err)
		} else {
			g.Outline = contoursFromSegments(segments)
		}
		ws.PutGlyph(g)
	}
	tracer().Infof("imported %d glyphs of font %s %s", ws.GlyphCount(), info.Family, info.Style)
	return ws
}

// scanCmap inverts the font's character map for the basic multilingual
// plane, collecting the codepoints every glyph stands for.
func scanCmap(sf *sfnt.Font, buf *sfnt.Buffer) map[sfnt.GlyphIndex][]rune {
	codepoints := make(map[sfnt.GlyphIndex][]rune)
	for r := rune(0x20); r <= 0xFFFF; r++ {
		if r >= 0xD800 && r <= 0xDFFF { // surrogates are not characters
			continue
		}
		gid, err := sf.GlyphIndex(buf, r)
		if err != nil || gid == 0 {
			continue
		}
		codepoints[gid] = append(codepoints[gid], r)
	}
	return codepoints
}

// glyphName resolves a glyph's name: the font's own name for it if
// present, a uniXXXX name derived from the first mapped codepoint
// otherwise, and a bare index name as a last resort.
func glyphName(sf *sfnt.Font, buf *sfnt.Buffer, gid sfnt.GlyphIndex, cps []rune) string {
	if name, err := sf.GlyphName(buf, gid); err == nil && name != "" {
		return name
	}
	if len(cps) > 0 {
		return fmt.Sprintf("uni%04X", cps[0])
	}
	return fmt.Sprintf("gid%d", gid)
}

// --- Outline conversion ----------------------------------------------------

// contoursFromSegments converts a loaded glyph outline to contours in
// design space. Font binaries grow y downwards, design space upwards,
// so ordinates flip sign. TrueType contours are always closed.
func contoursFromSegments(segments sfnt.Segments) []glyph.Contour {
	var contours []glyph.Contour
	var pts []glyph.ContourPoint
	flush := func() {
		if len(pts) == 0 {
			return
		}
		contours = append(contours, glyph.Contour{
			Points: closeContour(pts),
			Closed: true,
		})
		pts = nil
	}
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			flush()
			pts = append(pts, glyph.Pt(segX(seg, 0), segY(seg, 0), glyph.Line))
		case sfnt.SegmentOpLineTo:
			pts = append(pts, glyph.Pt(segX(seg, 0), segY(seg, 0), glyph.Line))
		case sfnt.SegmentOpQuadTo:
			pts = append(pts,
				glyph.Pt(segX(seg, 0), segY(seg, 0), glyph.OffCurve),
				glyph.Pt(segX(seg, 1), segY(seg, 1), glyph.QCurve))
		case sfnt.SegmentOpCubeTo:
			pts = append(pts,
				glyph.Pt(segX(seg, 0), segY(seg, 0), glyph.OffCurve),
				glyph.Pt(segX(seg, 1), segY(seg, 1), glyph.OffCurve),
				glyph.Pt(segX(seg, 2), segY(seg, 2), glyph.Curve))
		}
	}
	flush()
	return contours
}

// closeContour folds a final segment returning to the start point into
// the start point itself, whose type then describes the closing
// segment. Control points of the closing segment stay at the end of the
// list. Contours ending elsewhere close with an implicit line.
func closeContour(pts []glyph.ContourPoint) []glyph.ContourPoint {
	if len(pts) < 2 {
		return pts
	}
	last := pts[len(pts)-1]
	if last.Type.IsOnCurve() && last.X == pts[0].X && last.Y == pts[0].Y {
		pts[0].Type = last.Type
		pts = pts[:len(pts)-1]
	}
	return pts
}

func segX(seg sfnt.Segment, i int) float64 {
	return float64(seg.Args[i].X)
}

func segY(seg sfnt.Segment, i int) float64 {
	return -float64(seg.Args[i].Y)
}
