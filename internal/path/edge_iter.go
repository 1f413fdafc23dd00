package path

import (
	"math"

	"github.com/gogpu/vpath/internal/vertex"
)

// Edge is a line segment of a flattened path.
type Edge struct {
	X0, Y0, X1, Y1 float64

	// First is set on the first edge of each contour.
	First bool

	// Closing is set on the synthetic edge that returns a closed contour
	// to its start point.
	Closing bool
}

// Length returns the length of the edge.
func (e Edge) Length() float64 {
	return math.Hypot(e.X1-e.X0, e.Y1-e.Y0)
}

// EdgeIter walks the edges of a line-only vertex run. Edges never connect
// separate contours; a contour ended by a closing EndPoly yields an extra
// edge back to its start point when the last vertex differs from it.
//
// Curve commands are treated as plain points, so callers flatten first.
type EdgeIter struct {
	vertices []vertex.Vertex
	index    int

	startX, startY float64
	curX, curY     float64
	inContour      bool
	first          bool
}

// NewEdgeIter returns an iterator over vs.
func NewEdgeIter(vs []vertex.Vertex) *EdgeIter {
	return &EdgeIter{vertices: vs}
}

// Next returns the next edge and true, or a zero Edge and false once the
// vertices are exhausted.
func (it *EdgeIter) Next() (Edge, bool) {
	for it.index < len(it.vertices) {
		v := it.vertices[it.index]
		it.index++

		switch {
		case v.Cmd.IsMoveTo():
			it.startX, it.startY = v.X, v.Y
			it.curX, it.curY = v.X, v.Y
			it.inContour = true
			it.first = true

		case v.Cmd.IsVertex():
			if !it.inContour {
				// A drawing command without a preceding MoveTo starts a contour.
				it.startX, it.startY = v.X, v.Y
				it.curX, it.curY = v.X, v.Y
				it.inContour = true
				it.first = true
				continue
			}
			e := Edge{X0: it.curX, Y0: it.curY, X1: v.X, Y1: v.Y, First: it.first}
			it.curX, it.curY = v.X, v.Y
			it.first = false
			return e, true

		case v.Cmd.IsClosed():
			if !it.inContour {
				continue
			}
			it.inContour = false
			if it.curX != it.startX || it.curY != it.startY {
				e := Edge{X0: it.curX, Y0: it.curY, X1: it.startX, Y1: it.startY, First: it.first, Closing: true}
				it.curX, it.curY = it.startX, it.startY
				return e, true
			}

		default:
			it.inContour = false
		}
	}
	return Edge{}, false
}

// Length returns the summed edge length of vs.
func Length(vs []vertex.Vertex) float64 {
	var total float64
	it := NewEdgeIter(vs)
	for e, ok := it.Next(); ok; e, ok = it.Next() {
		total += e.Length()
	}
	return total
}
