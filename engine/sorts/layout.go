package sorts

import (
	"golang.org/x/text/unicode/bidi"
)

// PlacedSort is a buffer entry with its visual position in design units,
// relative to the origin of the text run.
type PlacedSort struct {
	Index int // logical buffer index
	Sort  Sort
	X, Y  float64
}

// Layout places all entries of the buffer for display. Entries within a
// line are reordered according to the Unicode bidirectional algorithm, so
// right-to-left runs display right to left while the buffer stays in
// logical order. Lines advance downward by lineHeight per line break; a
// break itself is placed at the end of its line, where a caret would sit.
func (b *Buffer) Layout(lineHeight float64) []PlacedSort {
	out := make([]PlacedSort, 0, b.Len())
	line := 0
	start := 0
	n := b.Len()
	for i := 0; i <= n; i++ {
		if i < n && b.at(i).Kind != LineBreak {
			continue
		}
		placed, width := b.layoutLine(start, i, -float64(line)*lineHeight)
		out = append(out, placed...)
		if i < n {
			out = append(out, PlacedSort{
				Index: i,
				Sort:  b.at(i),
				X:     width,
				Y:     -float64(line) * lineHeight,
			})
		}
		start = i + 1
		line++
	}
	return out
}

func (b *Buffer) layoutLine(lo, hi int, y float64) ([]PlacedSort, float64) {
	if hi <= lo {
		return nil, 0
	}
	out := make([]PlacedSort, 0, hi-lo)
	x := 0.0
	for _, j := range b.visualOrder(lo, hi) {
		s := b.at(j)
		out = append(out, PlacedSort{Index: j, Sort: s, X: x, Y: y})
		x += s.Advance
	}
	return out, x
}

// visualOrder returns the logical indices [lo,hi) of one line in display
// order. On any bidi resolution failure the logical order is kept.
func (b *Buffer) visualOrder(lo, hi int) []int {
	n := hi - lo
	idx := make([]int, 0, n)
	logical := func() []int {
		for j := lo; j < hi; j++ {
			idx = append(idx, j)
		}
		return idx
	}
	runes := make([]rune, 0, n)
	for j := lo; j < hi; j++ {
		r := b.at(j).Codepoint
		if r == 0 {
			// sorts inserted by glyph name have no character identity
			r = 0xFFFD
		}
		runes = append(runes, r)
	}
	p := bidi.Paragraph{}
	if _, err := p.SetString(string(runes)); err != nil {
		return logical()
	}
	ordering, err := p.Order()
	if err != nil {
		tracer().Infof("bidi ordering failed: %v", err)
		return logical()
	}
	// run.Pos() reports rune indices, both ends inclusive
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		first, last := run.Pos()
		if run.Direction() == bidi.RightToLeft {
			for j := last; j >= first; j-- {
				idx = append(idx, lo+j)
			}
		} else {
			for j := first; j <= last; j++ {
				idx = append(idx, lo+j)
			}
		}
	}
	if len(idx) != n {
		// never trade a display glitch for lost entries
		idx = idx[:0]
		return logical()
	}
	return idx
}

// lineBounds returns the logical range [lo,hi) of the line containing
// entry i, excluding the delimiting breaks.
func (b *Buffer) lineBounds(i int) (lo, hi int) {
	hi = b.Len()
	for j := i - 1; j >= 0; j-- {
		if b.at(j).Kind == LineBreak {
			lo = j + 1
			break
		}
	}
	for j := i; j < b.Len(); j++ {
		if b.at(j).Kind == LineBreak {
			hi = j
			break
		}
	}
	return lo, hi
}

// VisualXOf returns the display x position of entry i within its line,
// honoring bidi reordering. For purely left-to-right content this equals
// XOffsetOf.
func (b *Buffer) VisualXOf(i int) float64 {
	if i < 0 || i >= b.Len() {
		return 0
	}
	lo, hi := b.lineBounds(i)
	if i == hi {
		// i is a line break
		_, w := b.layoutLine(lo, hi, 0)
		return w
	}
	x := 0.0
	for _, j := range b.visualOrder(lo, hi) {
		if j == i {
			return x
		}
		x += b.at(j).Advance
	}
	return 0
}

// ActiveXOffset returns the display x position of the active entry, or 0
// when no entry is active.
func (b *Buffer) ActiveXOffset() float64 {
	i, ok := b.ActiveIndex()
	if !ok {
		return 0
	}
	return b.VisualXOf(i)
}
