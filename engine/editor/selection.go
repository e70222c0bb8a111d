package editor

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	"github.com/npillmayer/punchcut/core/glyph"
)

// Selection is an ordered set of entity IDs, drawn from the points of the
// session's paths. Ordering is by ID, i.e. by creation time, which gives
// stable iteration for operations that walk the selection.
type Selection struct {
	set *treeset.Set
}

// NewSelection creates an empty selection.
func NewSelection() *Selection {
	return &Selection{set: treeset.NewWith(utils.UInt64Comparator)}
}

// Add puts id into the selection. Adding the zero ID is ignored, as it marks
// points which are not addressable (display-only auto controls).
func (sel *Selection) Add(id glyph.EntityID) {
	if id == 0 {
		return
	}
	sel.set.Add(uint64(id))
}

// Remove takes id out of the selection, if present.
func (sel *Selection) Remove(id glyph.EntityID) {
	sel.set.Remove(uint64(id))
}

// Toggle flips the membership of id and returns true if id is now selected.
func (sel *Selection) Toggle(id glyph.EntityID) bool {
	if id == 0 {
		return false
	}
	if sel.Contains(id) {
		sel.Remove(id)
		return false
	}
	sel.Add(id)
	return true
}

// Contains checks membership of id.
func (sel *Selection) Contains(id glyph.EntityID) bool {
	return sel.set.Contains(uint64(id))
}

// Len returns the number of selected IDs.
func (sel *Selection) Len() int {
	return sel.set.Size()
}

// IsEmpty is true for a selection without members.
func (sel *Selection) IsEmpty() bool {
	return sel.set.Empty()
}

// Clear drops all members.
func (sel *Selection) Clear() {
	sel.set.Clear()
}

// IDs returns the selected IDs in ascending order.
func (sel *Selection) IDs() []glyph.EntityID {
	vals := sel.set.Values()
	ids := make([]glyph.EntityID, len(vals))
	for i, v := range vals {
		ids[i] = glyph.EntityID(v.(uint64))
	}
	return ids
}

// AsSet returns the selection as a plain map, the form the path mutation
// operations consume.
func (sel *Selection) AsSet() map[glyph.EntityID]bool {
	m := make(map[glyph.EntityID]bool, sel.set.Size())
	for _, v := range sel.set.Values() {
		m[glyph.EntityID(v.(uint64))] = true
	}
	return m
}

// Clone returns an independent copy of the selection.
func (sel *Selection) Clone() *Selection {
	c := NewSelection()
	for _, v := range sel.set.Values() {
		c.set.Add(v)
	}
	return c
}
