package editor

import (
	"github.com/npillmayer/punchcut/core"
	"github.com/npillmayer/punchcut/core/glyph"
	"github.com/npillmayer/punchcut/core/parameters"
	"github.com/npillmayer/punchcut/engine/path"
	"github.com/npillmayer/punchcut/engine/sorts"
)

// GlyphStore is the session's link to shared font data. Sessions resolve
// glyphs by name when the active sort changes and push the edited glyph
// back after every recorded edit, so previews rendered from the store stay
// live. A session works fine without one.
type GlyphStore interface {
	Glyph(name string) (*glyph.Glyph, bool)
	PutGlyph(g *glyph.Glyph)
}

// EditSession is the mutable editing state for one glyph: its paths, the
// point selection, the viewport, glyph metadata and the undo history.
//
// Path values are shared between the session and its undo snapshots.
// Mutations go through writablePath, which clones a path the first time it
// is touched after a snapshot was taken, so snapshots stay intact while
// edits remain O(1) in the number of untouched paths.
type EditSession struct {
	name  string
	g     *glyph.Glyph
	paths []path.Path
	owned map[glyph.EntityID]bool // paths cloned since the last snapshot
	sel   *Selection
	vp    Viewport
	undo  *UndoStack
	regs  *parameters.EditingRegisters
	store GlyphStore

	buffer   *sorts.Buffer
	textMode bool
}

// NewSession starts an edit session for g. The glyph is snapshotted; the
// caller's value is not touched by subsequent edits. regs may be nil, in
// which case default editing parameters apply. store may be nil for
// detached sessions.
func NewSession(g *glyph.Glyph, regs *parameters.EditingRegisters, store GlyphStore) (*EditSession, error) {
	if g == nil {
		return nil, core.Error(core.EINVALID, "cannot edit a nil glyph")
	}
	if regs == nil {
		regs = parameters.NewEditingRegisters()
	}
	es := &EditSession{
		name:  g.Name,
		g:     g.Clone(),
		owned: make(map[glyph.EntityID]bool),
		sel:   NewSelection(),
		vp:    NewViewport(),
		regs:  regs,
		store: store,
	}
	es.loadPaths(g)
	es.undo = newUndoStack(es.snapshot())
	tracer().Infof("edit session for %v", g)
	return es, nil
}

// loadPaths rebuilds the session's path list from a glyph's outline.
// Contours which cannot be represented are skipped.
func (es *EditSession) loadPaths(g *glyph.Glyph) {
	paths := make([]path.Path, 0, len(g.Outline))
	for i, c := range g.Outline {
		p, err := path.FromContour(c)
		if err != nil {
			tracer().Infof("glyph %q: skipping contour #%d: %s", g.Name,
				i, core.UserMessage(err))
			continue
		}
		paths = append(paths, p)
	}
	es.paths = paths
}

// Name returns the name of the glyph being edited.
func (es *EditSession) Name() string {
	return es.name
}

// Glyph returns the session's glyph metadata. Callers must treat it as
// read-only; ToGlyph returns an independent copy including the outline.
func (es *EditSession) Glyph() *glyph.Glyph {
	return es.g
}

// Paths returns the current path list. Read-only for callers.
func (es *EditSession) Paths() []path.Path {
	return es.paths
}

// Path finds a path by identity.
func (es *EditSession) Path(id glyph.EntityID) (path.Path, bool) {
	for _, p := range es.paths {
		if p.ID() == id {
			return p, true
		}
	}
	return nil, false
}

// Selection returns the session's point selection.
func (es *EditSession) Selection() *Selection {
	return es.sel
}

// Viewport returns the current design-to-screen mapping.
func (es *EditSession) Viewport() Viewport {
	return es.vp
}

// SetViewport changes the design-to-screen mapping. Viewport changes are
// not undoable.
func (es *EditSession) SetViewport(vp Viewport) {
	es.vp = vp
}

// Registers returns the editing parameters the session consults.
func (es *EditSession) Registers() *parameters.EditingRegisters {
	return es.regs
}

// --- Copy-on-write bookkeeping ---------------------------------------------

// writablePath returns the path at index i, cloning it first if the stored
// value is still shared with an undo snapshot.
func (es *EditSession) writablePath(i int) path.Path {
	p := es.paths[i]
	if es.owned[p.ID()] {
		return p
	}
	c := p.Clone()
	es.paths[i] = c
	es.owned[p.ID()] = true
	return c
}

// snapshot captures the current state. Path values become shared with the
// snapshot, so the ownership set is reset.
func (es *EditSession) snapshot() snapshot {
	s := snapshot{
		paths: append([]path.Path(nil), es.paths...),
		sel:   es.sel.Clone(),
		g:     es.g.Clone(),
	}
	clear(es.owned)
	return s
}

// restore resets the session to a snapshot's state. The snapshot keeps
// ownership of its path values; the session clones on the next write.
func (es *EditSession) restore(s snapshot) {
	es.paths = append([]path.Path(nil), s.paths...)
	es.sel = s.sel.Clone()
	es.g = s.g.Clone()
	clear(es.owned)
}

// recordEdit closes a mutation: it records an undo group tagged t and
// pushes the edited glyph into the store.
func (es *EditSession) recordEdit(t EditType) {
	es.undo.record(es.snapshot(), t)
	es.syncToStore()
}

func (es *EditSession) syncToStore() {
	if es.store == nil {
		return
	}
	es.store.PutGlyph(es.ToGlyph())
}

// --- Undo ------------------------------------------------------------------

// Undo steps back one edit group. It reports false when there is nothing
// to undo.
func (es *EditSession) Undo() bool {
	s, ok := es.undo.undo()
	if !ok {
		return false
	}
	es.restore(s)
	es.syncToStore()
	return true
}

// Redo re-applies the most recently undone edit group.
func (es *EditSession) Redo() bool {
	s, ok := es.undo.redo()
	if !ok {
		return false
	}
	es.restore(s)
	es.syncToStore()
	return true
}

// UndoDepth returns the number of undoable edit groups.
func (es *EditSession) UndoDepth() int {
	return es.undo.depth()
}

// EndGesture marks the end of a pointer gesture. The next coalescing
// edit starts a fresh undo group, so separate drags undo separately.
func (es *EditSession) EndGesture() {
	es.undo.endGesture()
}

// --- Persisted form --------------------------------------------------------

// ToGlyph converts the session state back to the persisted glyph
// representation. The result is independent of the session.
func (es *EditSession) ToGlyph() *glyph.Glyph {
	g := es.g.Clone()
	g.Outline = make([]glyph.Contour, 0, len(es.paths))
	for _, p := range es.paths {
		g.Outline = append(g.Outline, p.Contour())
	}
	return g
}

// SyncToWorkspace pushes the edited glyph into the session's store, keyed
// by the glyph the session currently edits. It reports false when the
// session has no store.
func (es *EditSession) SyncToWorkspace() bool {
	if es.store == nil {
		return false
	}
	es.syncToStore()
	return true
}

// --- Glyph metadata --------------------------------------------------------

// SetAdvance changes the glyph's advance width.
func (es *EditSession) SetAdvance(w float64) {
	if w == es.g.Advance {
		return
	}
	es.g.Advance = w
	es.recordEdit(EditNormal)
}

// --- Text mode -------------------------------------------------------------

// AttachBuffer connects a sort buffer for text-mode editing.
func (es *EditSession) AttachBuffer(buf *sorts.Buffer) {
	es.buffer = buf
}

// Buffer returns the attached sort buffer, or nil.
func (es *EditSession) Buffer() *sorts.Buffer {
	return es.buffer
}

// TextMode reports whether text-mode editing is active.
func (es *EditSession) TextMode() bool {
	return es.textMode
}

// SetTextMode switches text-mode editing on or off.
func (es *EditSession) SetTextMode(on bool) {
	es.textMode = on
}

// ActivateSort makes buffer entry i the editing target: the sort's glyph
// is resolved through the store and replaces the session's paths, with a
// fresh undo history. It reports false when the entry is no glyph sort or
// its glyph cannot be resolved.
func (es *EditSession) ActivateSort(i int) bool {
	if es.buffer == nil || es.store == nil {
		return false
	}
	s, ok := es.buffer.SetActive(i)
	if !ok || s.Kind != sorts.GlyphSort {
		return false
	}
	g, ok := es.store.Glyph(s.Name)
	if !ok {
		tracer().Infof("sort #%d references unknown glyph %q", i, s.Name)
		return false
	}
	es.name = g.Name
	es.g = g.Clone()
	es.loadPaths(g)
	es.sel.Clear()
	clear(es.owned)
	es.undo = newUndoStack(es.snapshot())
	tracer().Debugf("activated sort #%d (%q), x-offset %.5g", i, s.Name,
		es.ActiveSortXOffset())
	return true
}

// ActiveSortXOffset returns the horizontal offset, in design units, at
// which the active sort is placed in the text run. Zero without a buffer
// or active sort.
func (es *EditSession) ActiveSortXOffset() float64 {
	if es.buffer == nil {
		return 0
	}
	return es.buffer.ActiveXOffset()
}
