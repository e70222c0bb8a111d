package glyph

import (
	"fmt"

	"honnef.co/go/curve"
)

// A Glyph bundles a glyph's outline with its metadata. It is the value
// exchanged with the persistence layer and with the shared workspace; an
// edit session keeps its own snapshot of it, independent of any on-disk
// representation until explicitly synced.
type Glyph struct {
	Name       string
	Advance    float64
	Height     float64
	Codepoints []rune
	Outline    []Contour
	Components []Component
	LeftKern   string // kerning group memberships
	RightKern  string
	Mark       *MarkColor
}

// A Component references another glyph by name, placed with an affine
// transform. Components are carried through editing untouched; decomposing
// them is an explicit operation of the calling layer.
type Component struct {
	ID        EntityID
	Base      string
	Transform curve.Affine
}

// NewComponent creates a component reference with a fresh identity.
func NewComponent(base string, xform curve.Affine) Component {
	return Component{ID: NewEntityID(), Base: base, Transform: xform}
}

// MarkColor is a glyph's editor mark, with channels in [0,1].
type MarkColor struct {
	R, G, B, A float64
}

// New creates an empty glyph.
func New(name string) *Glyph {
	return &Glyph{Name: name}
}

// Clone returns a deep copy of g.
func (g *Glyph) Clone() *Glyph {
	if g == nil {
		return nil
	}
	cp := *g
	cp.Codepoints = append([]rune(nil), g.Codepoints...)
	cp.Components = append([]Component(nil), g.Components...)
	cp.Outline = make([]Contour, len(g.Outline))
	for i, c := range g.Outline {
		cp.Outline[i] = Contour{
			Points: append([]ContourPoint(nil), c.Points...),
			Closed: c.Closed,
		}
	}
	if g.Mark != nil {
		mark := *g.Mark
		cp.Mark = &mark
	}
	return &cp
}

// Codepoint returns the glyph's primary codepoint, if any.
func (g *Glyph) Codepoint() (rune, bool) {
	if len(g.Codepoints) == 0 {
		return 0, false
	}
	return g.Codepoints[0], true
}

func (g *Glyph) String() string {
	cp := "none"
	if r, ok := g.Codepoint(); ok {
		cp = fmt.Sprintf("U+%04X", r)
	}
	return fmt.Sprintf("glyph %q (%s, adv %g, %d contours)", g.Name, cp,
		g.Advance, len(g.Outline))
}
