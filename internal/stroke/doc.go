// Package stroke expands line geometry into stroke outline polygons.
//
// A [Generator] pulls vertices from a vertex source and builds two offset
// sides per contour:
//   - Forward side: offset by width/2 to the right of the tangent
//   - Backward side: offset by width/2 to the left of the tangent
//
// An open contour is emitted as one closed polygon:
//  1. Forward side goes forward
//  2. End cap connects forward to backward
//  3. Backward side is reversed
//  4. Start cap connects backward to forward and closes
//
// A closed contour is emitted as two closed polygons, one per side.
//
// # Line Caps
//
//   - LineCapButt: Flat cap ending exactly at the endpoint
//   - LineCapRound: Semicircular cap with radius = width/2
//   - LineCapSquare: Square cap extending width/2 beyond the endpoint
//
// # Line Joins
//
//   - LineJoinMiter: Sharp corner (limited by miter limit)
//   - LineJoinRound: Circular arc at corners
//   - LineJoinBevel: Straight line across the corner
//
// Round caps and joins are flattened; the approximation scale sets the
// allowed deviation (0.125/scale).
//
// # Usage
//
//	g := stroke.New(src)
//	g.SetWidth(2)
//	g.SetLineCap(stroke.LineCapRound)
//	g.Rewind(0)
//	for cmd, x, y := g.Vertex(); !cmd.IsStop(); cmd, x, y = g.Vertex() {
//	    ...
//	}
//
// # References
//
// The offsetting and join logic follows tiny-skia (path/src/stroker.rs)
// and kurbo (src/stroke.rs).
package stroke
