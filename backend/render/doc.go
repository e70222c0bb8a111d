/*
Package render draws editing scenes onto an abstract drawing surface.

A Surface receives bare path construction and paint calls, in screen
coordinates, and relays them to a concrete graphics implementation
(a GUI canvas, Cairo, SVG). The scene renderer walks an edit session
and emits its outlines, control handles, point markers and, in text
mode, the surrounding row of sorts. All styling beyond stroke versus
fill is left to the surface; the renderer decides shapes only.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package render

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'punchcut.render'
func tracer() tracing.Trace {
	return tracing.Select("punchcut.render")
}
