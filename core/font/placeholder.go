package font

import (
	"sync"

	"github.com/npillmayer/punchcut/core/glyph"
)

// Placeholder returns the glyph drawn for sorts whose name a workspace
// cannot resolve: a hollow box in a 1000-unit design space, the
// editor's notdef. It is always present. The glyph is shared and must
// not be mutated.
func Placeholder() *glyph.Glyph {
	placeholderBuilding.Do(func() {
		placeholderGlyph = buildPlaceholder()
	})
	return placeholderGlyph
}

var placeholderBuilding sync.Once

var placeholderGlyph *glyph.Glyph

func buildPlaceholder() *glyph.Glyph {
	g := glyph.New(".notdef")
	g.Advance = 500
	outer := glyph.Contour{
		Closed: true,
		Points: []glyph.ContourPoint{
			glyph.Pt(50, 0, glyph.Line),
			glyph.Pt(450, 0, glyph.Line),
			glyph.Pt(450, 700, glyph.Line),
			glyph.Pt(50, 700, glyph.Line),
		},
	}
	// reversed winding, so the inner box becomes the counter
	inner := glyph.Contour{
		Closed: true,
		Points: []glyph.ContourPoint{
			glyph.Pt(100, 50, glyph.Line),
			glyph.Pt(100, 650, glyph.Line),
			glyph.Pt(400, 650, glyph.Line),
			glyph.Pt(400, 50, glyph.Line),
		},
	}
	g.Outline = []glyph.Contour{outer, inner}
	return g
}
