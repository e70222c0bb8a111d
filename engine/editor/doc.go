/*
Package editor implements the edit session for a single glyph: the
mutable path list with its selection, viewport transform, undo history
and glyph metadata, together with the mutation operations the editing
tools are built from.

A session is created from a persisted glyph, mutated in place by tool
gestures, and converted back with ToGlyph. The path list is shared
copy-on-write with the undo snapshots, so recording an undo group is a
cheap shallow copy and paths are cloned lazily on their first mutation
after a snapshot.

Mutation operations follow a uniform discipline: they are no-ops on an
empty selection (unless they need none), they re-establish derived path
state, they record an undo group tagged with an edit type, and they
push the result into the shared font workspace when one is attached.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package editor

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'punchcut.edit'
func tracer() tracing.Trace {
	return tracing.Select("punchcut.edit")
}
