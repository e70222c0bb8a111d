package sorts

// minGap is the gap size allocated when a buffer first grows.
const minGap = 8

// Buffer is a gap buffer of sorts with a logical cursor. The storage
// keeps an unused gap at the most recent edit position, so consecutive
// inserts and deletes there cost O(1); moving the edit position costs one
// array copy proportional to the distance moved.
//
// Invariant: 0 <= gapStart <= gapEnd <= len(storage), and the logical
// content is storage with [gapStart,gapEnd) cut out.
type Buffer struct {
	storage  []Sort
	gapStart int
	gapEnd   int
	cursor   int // logical insertion position, 0..Len()
	src      GlyphSource
	shp      Shaper
}

// NewBuffer creates an empty buffer. Both collaborators may be nil: without
// a source, sorts can only be inserted pre-built; without a shaper, glyph
// names are never rewritten.
func NewBuffer(src GlyphSource, shp Shaper) *Buffer {
	return &Buffer{src: src, shp: shp}
}

// Len returns the number of entries.
func (b *Buffer) Len() int {
	return len(b.storage) - (b.gapEnd - b.gapStart)
}

// physical maps a logical index to its storage index.
func (b *Buffer) physical(i int) int {
	if i < b.gapStart {
		return i
	}
	return i + (b.gapEnd - b.gapStart)
}

func (b *Buffer) at(i int) Sort {
	return b.storage[b.physical(i)]
}

// At returns the entry at logical index i.
func (b *Buffer) At(i int) (Sort, bool) {
	if i < 0 || i >= b.Len() {
		return Sort{}, false
	}
	return b.at(i), true
}

// Sorts returns the logical entry sequence as a fresh slice.
func (b *Buffer) Sorts() []Sort {
	out := make([]Sort, b.Len())
	for i := range out {
		out[i] = b.at(i)
	}
	return out
}

// Cursor returns the logical cursor position, between 0 and Len().
func (b *Buffer) Cursor() int {
	return b.cursor
}

// SetCursor moves the cursor, clamped into the valid range.
func (b *Buffer) SetCursor(i int) {
	if i < 0 {
		i = 0
	}
	if n := b.Len(); i > n {
		i = n
	}
	b.cursor = i
}

// MoveCursor moves the cursor by delta entries.
func (b *Buffer) MoveCursor(delta int) {
	b.SetCursor(b.cursor + delta)
}

// moveGapTo relocates the gap so that it starts at logical position pos.
func (b *Buffer) moveGapTo(pos int) {
	if pos == b.gapStart {
		return
	}
	if pos < b.gapStart {
		n := b.gapStart - pos
		copy(b.storage[b.gapEnd-n:b.gapEnd], b.storage[pos:b.gapStart])
		b.gapStart = pos
		b.gapEnd -= n
		return
	}
	n := pos - b.gapStart
	copy(b.storage[b.gapStart:], b.storage[b.gapEnd:b.gapEnd+n])
	b.gapStart += n
	b.gapEnd += n
}

// growGap reallocates the storage with double capacity, keeping the
// content around the (empty) gap in place.
func (b *Buffer) growGap() {
	newCap := 2 * len(b.storage)
	if newCap < minGap {
		newCap = minGap
	}
	tail := len(b.storage) - b.gapEnd
	ns := make([]Sort, newCap)
	copy(ns, b.storage[:b.gapStart])
	copy(ns[newCap-tail:], b.storage[b.gapEnd:])
	b.storage = ns
	b.gapEnd = newCap - tail
}

// Insert places s at the cursor and advances it. It returns the logical
// position the entry was inserted at.
func (b *Buffer) Insert(s Sort) int {
	b.moveGapTo(b.cursor)
	if b.gapStart == b.gapEnd {
		b.growGap()
	}
	b.storage[b.gapStart] = s
	b.gapStart++
	p := b.cursor
	b.cursor++
	b.reshapeAround(p)
	return p
}

// InsertRune resolves r through the glyph source and inserts the
// resulting sort at the cursor. A newline inserts a line break. It
// reports false when no glyph represents r.
func (b *Buffer) InsertRune(r rune) (Sort, bool) {
	if r == '\n' {
		p := b.Insert(Break())
		return b.at(p), true
	}
	if b.src == nil {
		return Sort{}, false
	}
	name, ok := b.src.GlyphName(r)
	if !ok {
		tracer().Infof("no glyph for %#U", r)
		return Sort{}, false
	}
	adv, _ := b.src.GlyphAdvance(name)
	p := b.Insert(Glyph(name, r, adv))
	return b.at(p), true
}

// DeleteBackward removes the entry before the cursor, as backspace does.
func (b *Buffer) DeleteBackward() (Sort, bool) {
	if b.cursor == 0 {
		return Sort{}, false
	}
	b.moveGapTo(b.cursor)
	b.gapStart--
	removed := b.storage[b.gapStart]
	b.storage[b.gapStart] = Sort{}
	b.cursor--
	b.reshapeAround(b.cursor)
	return removed, true
}

// DeleteForward removes the entry at the cursor, leaving the cursor in
// place.
func (b *Buffer) DeleteForward() (Sort, bool) {
	if b.cursor >= b.Len() {
		return Sort{}, false
	}
	b.moveGapTo(b.cursor)
	removed := b.storage[b.gapEnd]
	b.storage[b.gapEnd] = Sort{}
	b.gapEnd++
	b.reshapeAround(b.cursor)
	return removed, true
}

// SetActive flags entry i as the one loaded into the edit session,
// clearing the flag everywhere else.
func (b *Buffer) SetActive(i int) (Sort, bool) {
	if i < 0 || i >= b.Len() {
		return Sort{}, false
	}
	for j := 0; j < b.Len(); j++ {
		b.storage[b.physical(j)].Active = false
	}
	b.storage[b.physical(i)].Active = true
	return b.at(i), true
}

// ClearActive drops the active flag from all entries.
func (b *Buffer) ClearActive() {
	for j := 0; j < b.Len(); j++ {
		b.storage[b.physical(j)].Active = false
	}
}

// ActiveIndex returns the logical index of the active entry.
func (b *Buffer) ActiveIndex() (int, bool) {
	for j := 0; j < b.Len(); j++ {
		if b.at(j).Active {
			return j, true
		}
	}
	return 0, false
}

// XOffsetOf returns the sum of advance widths of the glyph sorts between
// the last line break before i and i itself, i.e. the horizontal position
// of entry i in logical order.
func (b *Buffer) XOffsetOf(i int) float64 {
	x := 0.0
	n := b.Len()
	if i > n {
		i = n
	}
	for j := 0; j < i; j++ {
		s := b.at(j)
		if s.Kind == LineBreak {
			x = 0
			continue
		}
		x += s.Advance
	}
	return x
}

// --- Contextual reshaping --------------------------------------------------

// reshapeAround re-derives positional glyph names after an edit at
// logical position p. Only the immediate neighbourhood [p-1,p+1] is
// re-examined, widened past runs of transparent marks so that the base
// letters on either side see their true join partners. The rest of the
// buffer is never touched.
func (b *Buffer) reshapeAround(p int) {
	if b.shp == nil {
		return
	}
	n := b.Len()
	if n == 0 {
		return
	}
	lo, hi := p-1, p+1
	if lo < 0 {
		lo = 0
	}
	if hi > n-1 {
		hi = n - 1
	}
	for lo > 0 && b.transparentAt(lo) {
		lo--
	}
	for hi < n-1 && b.transparentAt(hi) {
		hi++
	}
	for i := lo; i <= hi; i++ {
		b.reshapeEntry(i)
	}
}

func (b *Buffer) transparentAt(i int) bool {
	s := b.at(i)
	return s.Kind == GlyphSort && b.shp.Transparent(s.Codepoint)
}

// reshapeEntry recomputes the glyph name of entry i from its joining
// context and writes it back if it changed, refreshing the advance width
// for the new form.
func (b *Buffer) reshapeEntry(i int) {
	ps := &b.storage[b.physical(i)]
	if ps.Kind != GlyphSort || ps.Codepoint == 0 {
		return
	}
	prev := b.baseNeighbor(i, -1)
	next := b.baseNeighbor(i, +1)
	name, ok := b.shp.ShapedName(ps.Codepoint, prev, next)
	if !ok || name == ps.Name {
		return
	}
	tracer().Debugf("sort #%d reshaped %q to %q", i, ps.Name, name)
	ps.Name = name
	if b.src != nil {
		if adv, ok := b.src.GlyphAdvance(name); ok {
			ps.Advance = adv
		}
	}
}

// baseNeighbor returns the codepoint of the nearest non-transparent glyph
// sort next to i, walking in direction dir. Line breaks and buffer ends
// yield 0, i.e. nothing to join with.
func (b *Buffer) baseNeighbor(i, dir int) rune {
	for j := i + dir; j >= 0 && j < b.Len(); j += dir {
		s := b.at(j)
		if s.Kind == LineBreak {
			return 0
		}
		if b.shp.Transparent(s.Codepoint) {
			continue
		}
		return s.Codepoint
	}
	return 0
}
