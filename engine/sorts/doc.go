/*
Package sorts implements the text buffer for multi-glyph editing. Entries
are "sorts" in the typesetter's sense: a named glyph with its advance
width, or a line break. The buffer is a gap buffer, so typing and
deleting at the cursor are cheap, and it re-derives positional glyph
names (contextual forms for cursive scripts) locally around each edit
instead of rescanning the whole text.

Glyph resolution and contextual shaping are collaborator interfaces;
the buffer itself is purely structural and works without them.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sorts

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'punchcut.sorts'
func tracer() tracing.Trace {
	return tracing.Select("punchcut.sorts")
}
