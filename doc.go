// Package vpath implements the vector path geometry core: a copy-on-write
// buffer of path commands with operations to build, transform, flatten,
// dash and stroke paths.
//
// # Overview
//
// A [Path] is a handle to a reference-counted vertex buffer. Handles may
// share a buffer; any mutation first detaches (copies) a shared buffer, so
// a write through one handle is never observable through another.
//
//	p := vpath.NewPath()
//	p.MoveTo(0, 0)
//	p.LineTo(10, 0)
//	p.CubicTo(20, 0, 20, 10, 10, 10)
//	p.ClosePolygon()
//
//	q := p.Clone() // shares the buffer
//	q.Translate(5, 5)  // q detaches; p is unchanged
//
// # Commands
//
// Every vertex carries a [Command]: MoveTo, LineTo, Curve3 (quadratic),
// Curve4 (cubic), Catrom (Catmull-Rom), UBSpline (uniform B-spline), the
// EndPoly marker (optionally flagged closed) and Stop. Curve commands come
// in runs: two Curve3 vertices, three Curve4, Catrom or UBSpline vertices.
//
// # Flattening, dashing and stroking
//
// [Path.FlattenTo] replaces curve runs with line segments using adaptive
// subdivision controlled by an approximation scale (the distance tolerance
// is 0.5/scale). [Path.DashTo] and [Path.StrokeTo] flatten when needed and
// feed the line geometry through a [VertexSource] into a dash or stroke
// generator, collecting the generated vertices into the destination path.
//
// # Interchange
//
// [ParseSVG] and [Path.SVG] read and write SVG path data. Glyph outlines
// from golang.org/x/image/font/sfnt and go-text/typesetting are imported
// with [Path.AddSegments] and [Path.AddOpenTypeOutline], and
// [Path.ToGeom] and [Path.AddGeom] convert to and from
// seehuhn.de/go/geom paths. A [FlattenCache] memoizes flattening of
// paths that are drawn repeatedly.
//
// # Errors
//
// Mutating calls return an error. [ErrOutOfMemory] reports that a buffer
// would exceed [MaxVertices]; [ErrInvalidPath] reports a malformed curve
// run; [ErrSVGSyntax] reports malformed SVG path data.
//
// # Logging
//
// The package is silent by default. See [SetLogger].
package vpath
