/*
Package font is the shared font workspace of the editor.

A Workspace holds the glyph set being punched: glyph outlines and
metadata keyed by name, a codepoint index, and font-wide metrics. It is
the collaborator behind the edit session's glyph store, the sort
buffer's glyph source and the shaping engine's name source. A workspace
is handed to those collaborators as a capability, never reached through
global state.

Access is guarded by a read/write lock: many readers, one writer, and
no lock is held beyond a single method call.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package font

import (
	"sort"
	"sync"

	"github.com/derekparker/trie"
	"github.com/npillmayer/punchcut/core/glyph"
	"github.com/npillmayer/punchcut/core/parameters"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'punchcut.fonts'.
func tracer() tracing.Trace {
	return tracing.Select("punchcut.fonts")
}

// Info is the font-wide metadata of a workspace. Vertical metrics are in
// design units, with the descender below the baseline as a negative
// value.
type Info struct {
	Family      string
	Style       string
	UnitsPerEm  float64
	Ascender    float64
	Descender   float64
	CapHeight   float64
	XHeight     float64
	ItalicAngle float64 // degrees, counter-clockwise from vertical
}

// A Workspace is the font being worked on: glyphs keyed by name, an
// index from codepoints to glyph names, and the font-wide metrics.
type Workspace struct {
	mu     sync.RWMutex
	info   Info
	glyphs map[string]*glyph.Glyph
	byRune map[rune]string
	names  *trie.Trie
	binary []byte
	regs   *parameters.EditingRegisters
}

// NewWorkspace creates an empty workspace. regs may be nil, in which
// case default editing parameters apply. A non-positive UnitsPerEm is
// replaced by the customary 1000.
func NewWorkspace(info Info, regs *parameters.EditingRegisters) *Workspace {
	if regs == nil {
		regs = parameters.NewEditingRegisters()
	}
	if info.UnitsPerEm <= 0 {
		info.UnitsPerEm = 1000
	}
	return &Workspace{
		info:   info,
		glyphs: make(map[string]*glyph.Glyph),
		byRune: make(map[rune]string),
		names:  trie.New(),
		regs:   regs,
	}
}

// Info returns the font-wide metadata.
func (ws *Workspace) Info() Info {
	ws.mu.RLock()
	defer ws.mu.RUnlock()
	return ws.info
}

// SetInfo replaces the font-wide metadata.
func (ws *Workspace) SetInfo(info Info) {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	ws.info = info
}

// PutGlyph stores g under its name, replacing any previous glyph of that
// name and re-indexing its codepoints. The workspace takes ownership of
// g; edit sessions push independent snapshots here after every recorded
// edit, so every sort referencing the glyph reflects live edits.
func (ws *Workspace) PutGlyph(g *glyph.Glyph) {
	if g == nil || g.Name == "" {
		tracer().Errorf("workspace cannot store an unnamed glyph")
		return
	}
	ws.mu.Lock()
	defer ws.mu.Unlock()
	if old, ok := ws.glyphs[g.Name]; ok {
		for _, r := range old.Codepoints {
			if ws.byRune[r] == g.Name {
				delete(ws.byRune, r)
			}
		}
	} else {
		ws.names.Add(g.Name, nil)
	}
	ws.glyphs[g.Name] = g
	for _, r := range g.Codepoints {
		ws.byRune[r] = g.Name
	}
}

// Glyph returns the glyph stored under name. Callers must treat the
// result as read-only; editing goes through an edit session's snapshot.
func (ws *Workspace) Glyph(name string) (*glyph.Glyph, bool) {
	ws.mu.RLock()
	defer ws.mu.RUnlock()
	g, ok := ws.glyphs[name]
	return g, ok
}

// RemoveGlyph deletes the glyph stored under name, dropping its
// codepoint index entries.
func (ws *Workspace) RemoveGlyph(name string) bool {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	g, ok := ws.glyphs[name]
	if !ok {
		return false
	}
	delete(ws.glyphs, name)
	ws.names.Remove(name)
	for _, r := range g.Codepoints {
		if ws.byRune[r] == name {
			delete(ws.byRune, r)
		}
	}
	return true
}

// GlyphName returns the name of the glyph representing r, if the
// workspace holds one.
func (ws *Workspace) GlyphName(r rune) (string, bool) {
	ws.mu.RLock()
	defer ws.mu.RUnlock()
	name, ok := ws.byRune[r]
	return name, ok
}

// GlyphAdvance returns the advance width of a named glyph. For names
// the workspace cannot resolve it reports false and falls back to the
// default advance register, so callers sizing unresolved sorts get a
// usable width.
func (ws *Workspace) GlyphAdvance(name string) (float64, bool) {
	ws.mu.RLock()
	defer ws.mu.RUnlock()
	if g, ok := ws.glyphs[name]; ok {
		return g.Advance, true
	}
	return ws.regs.D(parameters.P_DEFAULTADVANCE), false
}

// SearchNames returns the glyph names starting with prefix, sorted. The
// empty prefix yields every name.
func (ws *Workspace) SearchNames(prefix string) []string {
	ws.mu.RLock()
	defer ws.mu.RUnlock()
	names := ws.names.PrefixSearch(prefix)
	sort.Strings(names)
	return names
}

// Names returns all glyph names, sorted.
func (ws *Workspace) Names() []string {
	ws.mu.RLock()
	defer ws.mu.RUnlock()
	names := make([]string, 0, len(ws.glyphs))
	for n := range ws.glyphs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// GlyphCount returns the number of glyphs in the workspace.
func (ws *Workspace) GlyphCount() int {
	ws.mu.RLock()
	defer ws.mu.RUnlock()
	return len(ws.glyphs)
}

// SetBinary attaches the font program the workspace was imported from.
// Shaping previews parse it to shape with the genuine font tables.
func (ws *Workspace) SetBinary(b []byte) {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	ws.binary = b
}

// Binary returns the font program the workspace was imported from, nil
// for workspaces built from scratch.
func (ws *Workspace) Binary() []byte {
	ws.mu.RLock()
	defer ws.mu.RUnlock()
	return ws.binary
}
