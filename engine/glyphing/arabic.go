package glyphing

import (
	"unicode"
)

// joining is the Unicode joining class of a code-point, reduced to the
// distinctions the positional-form resolver needs.
type joining int8

const (
	joinU joining = iota // non-joining
	joinR                // joins with the preceding letter only
	joinD                // joins on both sides
	joinC                // join-causing, e.g. tatweel
	joinL                // joins with the following letter only
	joinT                // transparent, skipped when looking for neighbours
)

// arabicJoining classifies the Arabic letters of the base block plus the
// common extended letters, and the zero-width (non-)joiners. Sorted by
// code-point; anything not listed falls back to the mark categories.
var arabicJoining = []struct {
	lo, hi rune
	class  joining
}{
	{0x0622, 0x0625, joinR}, // alef variants
	{0x0626, 0x0626, joinD}, // yeh with hamza
	{0x0627, 0x0627, joinR}, // alef
	{0x0628, 0x0628, joinD}, // beh
	{0x0629, 0x0629, joinR}, // teh marbuta
	{0x062A, 0x062E, joinD}, // teh..khah
	{0x062F, 0x0632, joinR}, // dal..zain
	{0x0633, 0x063A, joinD}, // seen..ghain
	{0x0640, 0x0640, joinC}, // tatweel
	{0x0641, 0x0647, joinD}, // feh..heh
	{0x0648, 0x0648, joinR}, // waw
	{0x0649, 0x064A, joinD}, // alef maksura, yeh
	{0x066E, 0x066F, joinD}, // dotless beh, dotless qaf
	{0x0671, 0x0673, joinR}, // alef wasla and hamza alefs
	{0x067E, 0x067E, joinD}, // peh
	{0x0686, 0x0686, joinD}, // tcheh
	{0x0698, 0x0698, joinR}, // jeh
	{0x06A9, 0x06A9, joinD}, // keheh
	{0x06AF, 0x06AF, joinD}, // gaf
	{0x06BE, 0x06BE, joinD}, // heh doachashmee
	{0x06C1, 0x06C1, joinD}, // heh goal
	{0x06CC, 0x06CC, joinD}, // farsi yeh
	{0x06D2, 0x06D2, joinR}, // yeh barree
	{0x200C, 0x200C, joinU}, // zero width non-joiner
	{0x200D, 0x200D, joinC}, // zero width joiner
}

// classOf returns the joining class of r. Combining marks and format
// characters not listed in the table are transparent.
func classOf(r rune) joining {
	for _, e := range arabicJoining {
		if r < e.lo {
			break
		}
		if r <= e.hi {
			return e.class
		}
	}
	if unicode.In(r, unicode.Mn, unicode.Me, unicode.Cf) {
		return joinT
	}
	return joinU
}

// Form is the positional form of a letter in a joining script.
type Form int8

//go:generate stringer -type=Form

// Positional forms.
const (
	Isolated Form = iota
	Initial
	Medial
	Final
)

// Suffix returns the glyph-name suffix for a positional form. Isolated
// letters use the bare glyph name.
func (f Form) Suffix() string {
	switch f {
	case Initial:
		return ".init"
	case Medial:
		return ".medi"
	case Final:
		return ".fina"
	}
	return ""
}

// NameSource resolves a code-point to its base glyph name.
type NameSource interface {
	GlyphName(r rune) (string, bool)
}

// ArabicShaper resolves the positional forms of Arabic letters. It
// implements the sort buffer's shaping collaborator: given a letter and
// its nearest non-transparent neighbours it produces the glyph name of
// the contextual form, suffixing the base name from a NameSource.
type ArabicShaper struct {
	names NameSource
}

// NewArabicShaper creates a shaper resolving base glyph names through
// names.
func NewArabicShaper(names NameSource) *ArabicShaper {
	return &ArabicShaper{names: names}
}

// Transparent reports whether r is skipped when determining joining
// neighbours, i.e. combining marks and most format characters.
func (sh *ArabicShaper) Transparent(r rune) bool {
	return classOf(r) == joinT
}

// PositionalForm determines the form of r between its neighbours. prev
// and next are the nearest non-transparent code-points, 0 at a
// boundary.
func (sh *ArabicShaper) PositionalForm(r, prev, next rune) Form {
	cls := classOf(r)
	joinsPrev := (cls == joinD || cls == joinR) && joinsForward(classOf(prev))
	joinsNext := (cls == joinD || cls == joinL) && joinsBackward(classOf(next))
	switch {
	case joinsPrev && joinsNext:
		return Medial
	case joinsPrev:
		return Final
	case joinsNext:
		return Initial
	}
	return Isolated
}

// ShapedName returns the glyph name for r in its context. It reports
// ok=false for code-points without contextual forms, leaving their
// sorts untouched.
func (sh *ArabicShaper) ShapedName(r, prev, next rune) (string, bool) {
	switch classOf(r) {
	case joinD, joinR, joinL:
	default:
		return "", false
	}
	base, ok := sh.names.GlyphName(r)
	if !ok {
		return "", false
	}
	return base + sh.PositionalForm(r, prev, next).Suffix(), true
}

// joinsForward is true for classes that connect to their following
// letter, the visual left in right-to-left text.
func joinsForward(c joining) bool {
	return c == joinD || c == joinL || c == joinC
}

// joinsBackward is true for classes that connect to their preceding
// letter.
func joinsBackward(c joining) bool {
	return c == joinD || c == joinR || c == joinC
}
