/*
Package glyph provides the model types shared between the glyph editing
engine and its persistence boundary: glyphs with their metadata, the
point-typed contour format, and process-unique entity identities.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package glyph

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'punchcut.glyph'
func tracer() tracing.Trace {
	return tracing.Select("punchcut.glyph")
}
