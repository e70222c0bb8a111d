package render

import (
	"fmt"
	"io"

	"honnef.co/go/curve"
)

// SVGSurface collects painted paths and ships them out as a standalone
// SVG document. SVG shares the screen's y-down convention, so painted
// coordinates pass through untransformed.
type SVGSurface struct {
	path    curve.BezPath
	painted []svgPath
	width   float64
	height  float64
}

type svgPath struct {
	d      string
	filled bool
}

var _ Surface = (*SVGSurface)(nil)

// NewSVGSurface creates a surface for a document of the given size, in
// pixels.
func NewSVGSurface(width, height float64) *SVGSurface {
	return &SVGSurface{width: width, height: height}
}

func (s *SVGSurface) MoveTo(pt curve.Point) {
	s.path.MoveTo(pt)
}

func (s *SVGSurface) LineTo(pt curve.Point) {
	s.path.LineTo(pt)
}

func (s *SVGSurface) QuadTo(ctrl, end curve.Point) {
	s.path.QuadTo(ctrl, end)
}

func (s *SVGSurface) CubicTo(ctrl1, ctrl2, end curve.Point) {
	s.path.CubicTo(ctrl1, ctrl2, end)
}

func (s *SVGSurface) ClosePath() {
	s.path.ClosePath()
}

func (s *SVGSurface) Stroke() {
	s.paint(false)
}

func (s *SVGSurface) Fill() {
	s.paint(true)
}

// paint converts the current path to SVG path data. Painting an empty
// path is a no-op.
func (s *SVGSurface) paint(filled bool) {
	if len(s.path) == 0 {
		return
	}
	s.painted = append(s.painted, svgPath{
		d:      curve.SVG(s.path.Elements(), curve.SVGOptions{}),
		filled: filled,
	})
	s.path.Truncate(0)
}

// PathCount returns the number of paths painted since the last shipout.
func (s *SVGSurface) PathCount() int {
	return len(s.painted)
}

// Shipout writes the collected paths as an SVG document and resets the
// surface for the next frame.
func (s *SVGSurface) Shipout(w io.Writer) error {
	var err error
	pr := func(format string, v ...interface{}) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, v...)
		}
	}
	pr("<svg viewBox=\"0 0 %g %g\" xmlns=\"http://www.w3.org/2000/svg\">\n", s.width, s.height)
	for _, p := range s.painted {
		if p.filled {
			pr("<path d=%q fill=\"black\" />\n", p.d)
		} else {
			pr("<path d=%q fill=\"none\" stroke=\"black\" />\n", p.d)
		}
	}
	pr("</svg>\n")
	if err != nil {
		return err
	}
	tracer().Debugf("shipped out SVG document with %d paths", len(s.painted))
	s.painted = s.painted[:0]
	s.path.Truncate(0)
	return nil
}
