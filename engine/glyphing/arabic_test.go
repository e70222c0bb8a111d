package glyphing

import (
	"testing"

	"github.com/npillmayer/punchcut/engine/sorts"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

// The Arabic shaper plugs into the sort buffer.
var _ sorts.Shaper = (*ArabicShaper)(nil)

type glyphNames map[rune]string

func (m glyphNames) GlyphName(r rune) (string, bool) {
	n, ok := m[r]
	return n, ok
}

var arabicNames = glyphNames{
	0x0627: "alef",
	0x0628: "beh",
	0x062F: "dal",
	0x0633: "seen",
	0x0644: "lam",
	0x0645: "meem",
}

const (
	alef = rune(0x0627)
	beh  = rune(0x0628)
	dal  = rune(0x062F)
	seen = rune(0x0633)
	meem = rune(0x0645)
)

func TestArabicJoiningClasses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "punchcut.glyphs")
	defer teardown()
	//
	assert.Equal(t, joinD, classOf(beh))
	assert.Equal(t, joinR, classOf(alef))
	assert.Equal(t, joinC, classOf(0x0640)) // tatweel
	assert.Equal(t, joinT, classOf(0x064E)) // fatha
	assert.Equal(t, joinU, classOf('a'))
}

func TestArabicTransparent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "punchcut.glyphs")
	defer teardown()
	//
	sh := NewArabicShaper(arabicNames)
	assert.False(t, sh.Transparent(beh))
	assert.True(t, sh.Transparent(0x064E), "combining marks are skipped")
	assert.True(t, sh.Transparent(0x0610), "marks outside the harakat range too")
	assert.False(t, sh.Transparent(0x200D), "the zero width joiner takes part in joining")
	assert.False(t, sh.Transparent('a'))
}

func TestArabicPositionalForms(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "punchcut.glyphs")
	defer teardown()
	//
	sh := NewArabicShaper(arabicNames)
	// beh, seen, meem in logical order join into a single connected run
	assert.Equal(t, Initial, sh.PositionalForm(beh, 0, seen))
	assert.Equal(t, Medial, sh.PositionalForm(seen, beh, meem))
	assert.Equal(t, Final, sh.PositionalForm(meem, seen, 0))
	assert.Equal(t, Isolated, sh.PositionalForm(beh, 0, 0))
}

func TestArabicRightJoinerBreaksRun(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "punchcut.glyphs")
	defer teardown()
	//
	sh := NewArabicShaper(arabicNames)
	// alef joins with the preceding letter only, so a letter after it
	// starts a new run
	assert.Equal(t, Final, sh.PositionalForm(alef, beh, dal))
	assert.Equal(t, Isolated, sh.PositionalForm(dal, alef, 0))
	assert.Equal(t, Initial, sh.PositionalForm(beh, alef, seen))
}

func TestArabicShapedNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "punchcut.glyphs")
	defer teardown()
	//
	sh := NewArabicShaper(arabicNames)
	name, ok := sh.ShapedName(beh, 0, seen)
	assert.True(t, ok)
	assert.Equal(t, "beh.init", name)
	name, ok = sh.ShapedName(seen, beh, meem)
	assert.True(t, ok)
	assert.Equal(t, "seen.medi", name)
	name, ok = sh.ShapedName(meem, seen, 0)
	assert.True(t, ok)
	assert.Equal(t, "meem.fina", name)
}

func TestArabicIsolatedKeepsBareName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "punchcut.glyphs")
	defer teardown()
	//
	// An isolated letter resolves to its bare name, with ok still true,
	// so that contextual names revert when an edit removes a neighbour.
	sh := NewArabicShaper(arabicNames)
	name, ok := sh.ShapedName(beh, 0, 0)
	assert.True(t, ok)
	assert.Equal(t, "beh", name)
}

func TestArabicNonCandidates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "punchcut.glyphs")
	defer teardown()
	//
	sh := NewArabicShaper(arabicNames)
	_, ok := sh.ShapedName('a', 0, 0)
	assert.False(t, ok, "Latin letters take no contextual forms")
	_, ok = sh.ShapedName(0x0640, beh, beh)
	assert.False(t, ok, "tatweel connects but has no positional variants")
	_, ok = sh.ShapedName(0x0686, 0, seen)
	assert.False(t, ok, "letters without a base glyph name stay untouched")
}

func TestArabicZeroWidthJoiners(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "punchcut.glyphs")
	defer teardown()
	//
	sh := NewArabicShaper(arabicNames)
	name, ok := sh.ShapedName(beh, 0x200D, 0x200D)
	assert.True(t, ok)
	assert.Equal(t, "beh.medi", name, "ZWJ forces joined forms")
	name, ok = sh.ShapedName(beh, seen, 0x200C)
	assert.True(t, ok)
	assert.Equal(t, "beh.fina", name, "ZWNJ blocks joining ahead")
}

func TestFormSuffixes(t *testing.T) {
	assert.Equal(t, "", Isolated.Suffix())
	assert.Equal(t, ".init", Initial.Suffix())
	assert.Equal(t, ".medi", Medial.Suffix())
	assert.Equal(t, ".fina", Final.Suffix())
}
