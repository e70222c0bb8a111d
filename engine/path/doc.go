/*
Package path implements the editable outline model: paths over on-curve
and off-curve points in three curve representations (cubic, quadratic and
hyperbezier), their renderable element sequences, and their conversions
to and from the persisted contour format.

Cubic and quadratic paths are directly renderable re-walks of their point
lists. Hyperbezier paths store on-curve points only; their control points
are computed by a Hobby-spline solve, which guarantees curvature
continuity through every smooth point. The solved curve is cached on the
path and rebuilt after every structural change.

Closed paths keep their points in drawing order with the start point as
the last element. With this normalization no segment's control run ever
wraps around the end of the point list, which keeps segment extraction
free of index arithmetic across the seam.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package path

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'punchcut.path'
func tracer() tracing.Trace {
	return tracing.Select("punchcut.path")
}
