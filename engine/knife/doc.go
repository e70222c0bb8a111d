/*
Package knife slices closed cubic paths along a straight cut line.

A cut is computed against every closed cubic path in a path list. Paths
the line intersects are split at the first two intersection points,
ordered by position along the line, into two closed sub-paths that share
the cut as a new edge. The remainder of the line is then applied
recursively to both halves, so a single drag can produce more than two
pieces. Open paths, quadratic paths and hyperbezier paths pass through
unchanged.

All intersection work runs on the segments' own geometry. Line-curve
intersections are solved analytically (Cardano for cubics), and segments
are subdivided with de Casteljau at the hit parameters, so control
points near a closed path's seam are never reconstructed from point-list
indices.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package knife

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'punchcut.knife'
func tracer() tracing.Trace {
	return tracing.Select("punchcut.knife")
}
