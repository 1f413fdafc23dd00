// Package path provides the curve approximation and edge walking used to
// turn path command streams into line geometry.
package path

import (
	"math"

	"github.com/gogpu/vpath/internal/vertex"
)

// RecursionLimit bounds the subdivision depth of a single curve.
const RecursionLimit = 32

const (
	collinearityEpsilon   = 1e-30
	angleToleranceEpsilon = 0.01
)

// Approximator converts Bezier segments into line segments.
//
// Scale controls subdivision density: the distance tolerance is 0.5/Scale,
// so larger scales produce more vertices. AngleTolerance and CuspLimit are
// in radians; zero disables the corresponding test.
type Approximator struct {
	Scale          float64
	AngleTolerance float64
	CuspLimit      float64
}

// NewApproximator returns an approximator with angle and cusp tests disabled.
func NewApproximator(scale float64) Approximator {
	return Approximator{Scale: scale}
}

func (a Approximator) distanceToleranceSquare() float64 {
	d := 0.5 / a.Scale
	return d * d
}

type curve3Frame struct {
	x1, y1, x2, y2, x3, y3 float64
}

type curve4Frame struct {
	x1, y1, x2, y2, x3, y3, x4, y4 float64
}

func lineTo(dst []vertex.Vertex, x, y float64) []vertex.Vertex {
	return append(dst, vertex.Vertex{Cmd: vertex.LineTo, X: x, Y: y})
}

func squareDistance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// turn returns the absolute angle between two directions folded into [0, π].
func turn(a, b float64) float64 {
	da := math.Abs(a - b)
	if da >= math.Pi {
		da = 2*math.Pi - da
	}
	return da
}

// Curve3 appends the LineTo vertices approximating the quadratic Bezier
// (x1,y1)-(x2,y2)-(x3,y3) to dst. The start point is not emitted; the end
// point is always the last vertex appended.
func (a Approximator) Curve3(dst []vertex.Vertex, x1, y1, x2, y2, x3, y3 float64) []vertex.Vertex {
	tol := a.distanceToleranceSquare()

	var stack [RecursionLimit]curve3Frame
	level := 0

	for {
		x12 := (x1 + x2) / 2
		y12 := (y1 + y2) / 2
		x23 := (x2 + x3) / 2
		y23 := (y2 + y3) / 2
		x123 := (x12 + x23) / 2
		y123 := (y12 + y23) / 2

		dx := x3 - x1
		dy := y3 - y1
		d := math.Abs((x2-x3)*dy - (y2-y3)*dx)

		done := false
		if d > collinearityEpsilon {
			if d*d <= tol*(dx*dx+dy*dy) {
				if a.AngleTolerance < angleToleranceEpsilon {
					dst = lineTo(dst, x123, y123)
					done = true
				} else if turn(math.Atan2(y3-y2, x3-x2), math.Atan2(y2-y1, x2-x1)) < a.AngleTolerance {
					dst = lineTo(dst, x123, y123)
					done = true
				}
			}
		} else {
			da := dx*dx + dy*dy
			if da == 0 {
				d = squareDistance(x1, y1, x2, y2)
			} else {
				d = ((x2-x1)*dx + (y2-y1)*dy) / da
				if d > 0 && d < 1 {
					// 1---2---3: the endpoints are enough.
					done = true
				} else if d <= 0 {
					d = squareDistance(x2, y2, x1, y1)
				} else {
					d = squareDistance(x2, y2, x3, y3)
				}
			}
			if !done && d < tol {
				dst = lineTo(dst, x2, y2)
				done = true
			}
		}

		if !done && level < RecursionLimit {
			stack[level] = curve3Frame{x123, y123, x23, y23, x3, y3}
			level++
			x2, y2 = x12, y12
			x3, y3 = x123, y123
			continue
		}

		if level == 0 {
			break
		}
		level--
		f := stack[level]
		x1, y1, x2, y2, x3, y3 = f.x1, f.y1, f.x2, f.y2, f.x3, f.y3
	}

	return lineTo(dst, x3, y3)
}

// Curve4 appends the LineTo vertices approximating the cubic Bezier
// (x1,y1)-(x2,y2)-(x3,y3)-(x4,y4) to dst. The start point is not emitted;
// the end point is always the last vertex appended.
func (a Approximator) Curve4(dst []vertex.Vertex, x1, y1, x2, y2, x3, y3, x4, y4 float64) []vertex.Vertex {
	tol := a.distanceToleranceSquare()

	var stack [RecursionLimit]curve4Frame
	level := 0

	for {
		x12 := (x1 + x2) / 2
		y12 := (y1 + y2) / 2
		x23 := (x2 + x3) / 2
		y23 := (y2 + y3) / 2
		x34 := (x3 + x4) / 2
		y34 := (y3 + y4) / 2
		x123 := (x12 + x23) / 2
		y123 := (y12 + y23) / 2
		x234 := (x23 + x34) / 2
		y234 := (y23 + y34) / 2
		x1234 := (x123 + x234) / 2
		y1234 := (y123 + y234) / 2

		dx := x4 - x1
		dy := y4 - y1

		d2 := math.Abs((x2-x4)*dy - (y2-y4)*dx)
		d3 := math.Abs((x3-x4)*dy - (y3-y4)*dx)

		done := false
		var n int
		if d2 > collinearityEpsilon {
			n |= 2
		}
		if d3 > collinearityEpsilon {
			n |= 1
		}

		switch n {
		case 0:
			// All collinear, or p1 == p4.
			k := dx*dx + dy*dy
			if k == 0 {
				d2 = squareDistance(x1, y1, x2, y2)
				d3 = squareDistance(x4, y4, x3, y3)
			} else {
				k = 1 / k
				d2 = k * ((x2-x1)*dx + (y2-y1)*dy)
				d3 = k * ((x3-x1)*dx + (y3-y1)*dy)

				if d2 > 0 && d2 < 1 && d3 > 0 && d3 < 1 {
					// 1---2---3---4: the endpoints are enough.
					done = true
					break
				}

				switch {
				case d2 <= 0:
					d2 = squareDistance(x2, y2, x1, y1)
				case d2 >= 1:
					d2 = squareDistance(x2, y2, x4, y4)
				default:
					d2 = squareDistance(x2, y2, x1+d2*dx, y1+d2*dy)
				}

				switch {
				case d3 <= 0:
					d3 = squareDistance(x3, y3, x1, y1)
				case d3 >= 1:
					d3 = squareDistance(x3, y3, x4, y4)
				default:
					d3 = squareDistance(x3, y3, x1+d3*dx, y1+d3*dy)
				}
			}

			if d2 > d3 {
				if d2 < tol {
					dst = lineTo(dst, x2, y2)
					done = true
				}
			} else if d3 < tol {
				dst = lineTo(dst, x3, y3)
				done = true
			}

		case 1:
			// p1, p2, p4 collinear; p3 is significant.
			if d3*d3 <= tol*(dx*dx+dy*dy) {
				if a.AngleTolerance < angleToleranceEpsilon {
					dst = lineTo(dst, x23, y23)
					done = true
					break
				}

				da1 := turn(math.Atan2(y4-y3, x4-x3), math.Atan2(y3-y2, x3-x2))
				if da1 < a.AngleTolerance {
					dst = lineTo(dst, x2, y2)
					dst = lineTo(dst, x3, y3)
					done = true
					break
				}

				if a.CuspLimit != 0 && da1 > a.CuspLimit {
					dst = lineTo(dst, x3, y3)
					done = true
				}
			}

		case 2:
			// p1, p3, p4 collinear; p2 is significant.
			if d2*d2 <= tol*(dx*dx+dy*dy) {
				if a.AngleTolerance < angleToleranceEpsilon {
					dst = lineTo(dst, x23, y23)
					done = true
					break
				}

				da1 := turn(math.Atan2(y3-y2, x3-x2), math.Atan2(y2-y1, x2-x1))
				if da1 < a.AngleTolerance {
					dst = lineTo(dst, x2, y2)
					dst = lineTo(dst, x3, y3)
					done = true
					break
				}

				if a.CuspLimit != 0 && da1 > a.CuspLimit {
					dst = lineTo(dst, x3, y3)
					done = true
				}
			}

		case 3:
			if (d2+d3)*(d2+d3) <= tol*(dx*dx+dy*dy) {
				if a.AngleTolerance < angleToleranceEpsilon {
					dst = lineTo(dst, x23, y23)
					done = true
					break
				}

				k := math.Atan2(y3-y2, x3-x2)
				da1 := turn(k, math.Atan2(y2-y1, x2-x1))
				da2 := turn(math.Atan2(y4-y3, x4-x3), k)

				if da1+da2 < a.AngleTolerance {
					dst = lineTo(dst, x23, y23)
					done = true
					break
				}

				if a.CuspLimit != 0 {
					if da1 > a.CuspLimit {
						dst = lineTo(dst, x2, y2)
						done = true
						break
					}
					if da2 > a.CuspLimit {
						dst = lineTo(dst, x3, y3)
						done = true
					}
				}
			}
		}

		if !done && level < RecursionLimit {
			stack[level] = curve4Frame{x1234, y1234, x234, y234, x34, y34, x4, y4}
			level++
			x2, y2 = x12, y12
			x3, y3 = x123, y123
			x4, y4 = x1234, y1234
			continue
		}

		if level == 0 {
			break
		}
		level--
		f := stack[level]
		x1, y1, x2, y2, x3, y3, x4, y4 = f.x1, f.y1, f.x2, f.y2, f.x3, f.y3, f.x4, f.y4
	}

	return lineTo(dst, x4, y4)
}

// CatromToBezier converts the Catmull-Rom segment through p2..p3 (with
// neighbours p1 and p4) into cubic Bezier control points.
//
//	 0     1     0     0
//	-1/6   1     1/6   0
//	 0     1/6   1    -1/6
//	 0     0     1     0
func CatromToBezier(x1, y1, x2, y2, x3, y3, x4, y4 float64) (bx1, by1, bx2, by2, bx3, by3, bx4, by4 float64) {
	return x2, y2,
		(-x1 + 6*x2 + x3) / 6, (-y1 + 6*y2 + y3) / 6,
		(x2 + 6*x3 - x4) / 6, (y2 + 6*y3 - y4) / 6,
		x3, y3
}

// UBSplineToBezier converts the uniform B-spline segment with control
// points p1..p4 into cubic Bezier control points.
//
//	1/6  4/6  1/6  0
//	0    4/6  2/6  0
//	0    2/6  4/6  0
//	0    1/6  4/6  1/6
func UBSplineToBezier(x1, y1, x2, y2, x3, y3, x4, y4 float64) (bx1, by1, bx2, by2, bx3, by3, bx4, by4 float64) {
	return (x1 + 4*x2 + x3) / 6, (y1 + 4*y2 + y3) / 6,
		(4*x2 + 2*x3) / 6, (4*y2 + 2*y3) / 6,
		(2*x2 + 4*x3) / 6, (2*y2 + 4*y3) / 6,
		(x2 + 4*x3 + x4) / 6, (y2 + 4*y3 + y4) / 6
}
