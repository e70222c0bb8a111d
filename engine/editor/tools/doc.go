/*
Package tools implements the editing tools of the glyph editor: select,
pen, hyperbezier pen, knife, shapes, text, measure and preview.

The tool set is fixed. Tool is a closed union over the concrete tool
types, sealed by an unexported marker method, and the event routing in
Controller dispatches over it with exhaustive type switches. A tool
holds the transient state of the gesture it is interpreting, e.g. the
anchor of a knife drag, and translates abstract pointer and key events
into operations on the edit session. Tools never mutate paths directly.

A shell embedding the editor feeds its native input events to a
Controller as Pointer and Key values, in screen coordinates, and reads
gesture state back off the tools for overlay drawing.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tools

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'punchcut.tools'
func tracer() tracing.Trace {
	return tracing.Select("punchcut.tools")
}
