package stroke

import (
	"math"

	"github.com/gogpu/vpath/internal/vertex"
)

// Point represents a 2D point.
type Point struct {
	X, Y float64
}

// Add returns the point moved by v.
func (p Point) Add(v Vec2) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the difference between two points as a vector.
func (p Point) Sub(q Point) Vec2 {
	return Vec2{X: p.X - q.X, Y: p.Y - q.Y}
}

// Vec2 represents a 2D vector.
type Vec2 struct {
	X, Y float64
}

// Scale returns the vector scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Neg returns the negated vector.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(w Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the 2D cross product (z-component of 3D cross).
func (v Vec2) Cross(w Vec2) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the length of the vector.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Perp returns the perpendicular vector (rotated 90 degrees counter-clockwise).
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// Angle returns the angle of the vector in radians.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// String returns the SVG name of the cap.
func (c LineCap) String() string {
	switch c {
	case LineCapRound:
		return "round"
	case LineCapSquare:
		return "square"
	default:
		return "butt"
	}
}

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// String returns the SVG name of the join.
func (j LineJoin) String() string {
	switch j {
	case LineJoinRound:
		return "round"
	case LineJoinBevel:
		return "bevel"
	default:
		return "miter"
	}
}

// Generator expands the line geometry pulled from a vertex source into
// stroke outline polygons and serves them through the same Rewind/Vertex
// protocol.
//
// Output is line-only: every open input contour becomes one closed
// polygon, every closed contour an outer and an inner closed polygon.
// Round joins and caps are flattened according to the approximation
// scale. Curve commands in the input are treated as line vertices.
type Generator struct {
	src vertex.Source

	width      float64
	cap        LineCap
	join       LineJoin
	miterLimit float64
	scale      float64

	out []vertex.Vertex
	pos int

	// Build state
	forward  []Point
	backward []Point

	// Current segment state
	startPt   Point
	startNorm Vec2
	startTan  Vec2
	lastPt    Point
	lastTan   Vec2
	lastNorm  Vec2 // Normal at lastPt (scaled by radius), used for end cap

	// Join threshold for skipping small joins
	joinThresh float64
}

// New returns a generator reading from src with a 1 unit width, butt caps,
// miter joins, a miter limit of 4 and an approximation scale of 1.
func New(src vertex.Source) *Generator {
	return &Generator{
		src:        src,
		width:      1,
		cap:        LineCapButt,
		join:       LineJoinMiter,
		miterLimit: 4,
		scale:      1,
	}
}

// SetWidth sets the stroke width. Negative widths use their magnitude.
func (g *Generator) SetWidth(w float64) { g.width = math.Abs(w) }

// SetMiterLimit sets the miter limit, the longest allowed ratio of miter
// length to stroke width.
func (g *Generator) SetMiterLimit(limit float64) { g.miterLimit = limit }

// SetLineJoin sets the join style.
func (g *Generator) SetLineJoin(j LineJoin) { g.join = j }

// SetLineCap sets the cap style.
func (g *Generator) SetLineCap(c LineCap) { g.cap = c }

// SetApproximationScale sets the scale used to flatten round joins and
// caps. Non-positive values are ignored.
func (g *Generator) SetApproximationScale(s float64) {
	if s > 0 {
		g.scale = s
	}
}

// Width returns the stroke width.
func (g *Generator) Width() float64 { return g.width }

// Rewind reads the source from index and expands it.
func (g *Generator) Rewind(index int) {
	g.src.Rewind(index)
	g.expand()
	g.pos = 0
}

// Vertex returns the next outline vertex, or Stop when exhausted.
func (g *Generator) Vertex() (vertex.Command, float64, float64) {
	if g.pos >= len(g.out) {
		return vertex.Stop, 0, 0
	}
	v := g.out[g.pos]
	g.pos++
	return v.Cmd, v.X, v.Y
}

func (g *Generator) expand() {
	g.out = g.out[:0]
	g.reset()
	if g.width == 0 {
		return
	}

	inContour := false
	for {
		cmd, x, y := g.src.Vertex()
		if cmd.IsStop() {
			break
		}
		pt := Point{X: x, Y: y}
		switch {
		case cmd.IsMoveTo():
			g.finish()
			g.startPt = pt
			g.lastPt = pt
			inContour = true
		case cmd.IsVertex():
			if !inContour {
				g.startPt = pt
				g.lastPt = pt
				inContour = true
				continue
			}
			if pt != g.lastPt {
				g.segment(pt)
			}
		case cmd.IsEndPoly():
			if cmd.IsClosed() {
				if g.lastPt != g.startPt {
					g.segment(g.startPt)
				}
				g.finishClosed()
			} else {
				g.finish()
			}
			inContour = false
		}
	}
	g.finish()
}

func (g *Generator) segment(pt Point) {
	tangent := pt.Sub(g.lastPt)
	g.doJoin(tangent)
	g.lastTan = tangent
	g.doLine(tangent, pt)
}

// reset clears the expansion state for a new pass.
func (g *Generator) reset() {
	g.forward = g.forward[:0]
	g.backward = g.backward[:0]
	g.startPt = Point{}
	g.startNorm = Vec2{}
	g.startTan = Vec2{}
	g.lastPt = Point{}
	g.lastTan = Vec2{}
	g.lastNorm = Vec2{}
	if g.width > 0 {
		g.joinThresh = 2.0 * (0.25 / g.scale) / g.width
	}
}

// doJoin handles joining the current segment to the previous one.
func (g *Generator) doJoin(tan0 Vec2) {
	scale := 0.5 * g.width / tan0.Length()
	norm := tan0.Perp().Scale(scale)
	p0 := g.lastPt

	if len(g.forward) == 0 {
		g.forward = append(g.forward, p0.Add(norm.Neg()))
		g.backward = append(g.backward, p0.Add(norm))
		g.startTan = tan0
		g.startNorm = norm
		return
	}
	g.joinWithPrevious(p0, norm, tan0)
}

// joinWithPrevious handles joining with the previous segment.
func (g *Generator) joinWithPrevious(p0 Point, norm, tan0 Vec2) {
	ab := g.lastTan
	cd := tan0
	cross := ab.Cross(cd)
	dot := ab.Dot(cd)
	hypot := math.Hypot(cross, dot)

	// An insignificant turn still connects both sides so the offsets stay
	// continuous.
	if dot > 0.0 && math.Abs(cross) < hypot*g.joinThresh {
		g.forward = append(g.forward, p0.Add(norm.Neg()))
		g.backward = append(g.backward, p0.Add(norm))
		return
	}

	switch g.join {
	case LineJoinBevel:
		g.forward = append(g.forward, p0.Add(norm.Neg()))
		g.backward = append(g.backward, p0.Add(norm))
	case LineJoinMiter:
		g.applyMiterJoin(p0, norm, ab, cd, cross, dot, hypot)
	case LineJoinRound:
		g.applyRoundJoin(p0, norm, cross, dot)
	}
}

// applyMiterJoin applies a miter join at the given point, falling back to
// a bevel past the miter limit.
func (g *Generator) applyMiterJoin(p0 Point, norm, ab, cd Vec2, cross, dot, hypot float64) {
	miterLimitSq := g.miterLimit * g.miterLimit
	if 2.0*hypot < (hypot+dot)*miterLimitSq {
		g.computeMiterPoint(p0, norm, ab, cd, cross)
	}
	g.forward = append(g.forward, p0.Add(norm.Neg()))
	g.backward = append(g.backward, p0.Add(norm))
}

// computeMiterPoint computes and appends the miter point on the outer side.
func (g *Generator) computeMiterPoint(p0 Point, norm, ab, cd Vec2, cross float64) {
	lastScale := 0.5 * g.width / ab.Length()
	lastNorm := ab.Perp().Scale(lastScale)

	if cross > 0.0 {
		fpLast := p0.Add(lastNorm.Neg())
		fpThis := p0.Add(norm.Neg())
		h := ab.Cross(fpThis.Sub(fpLast)) / cross
		g.forward = append(g.forward, fpThis.Add(cd.Scale(-h)))
		g.backward = append(g.backward, p0)
	} else if cross < 0.0 {
		fpLast := p0.Add(lastNorm)
		fpThis := p0.Add(norm)
		h := ab.Cross(fpThis.Sub(fpLast)) / cross
		g.backward = append(g.backward, fpThis.Add(cd.Scale(-h)))
		g.forward = append(g.forward, p0)
	}
}

// applyRoundJoin sweeps from the previous segment's normal to the current
// one on the outer side.
func (g *Generator) applyRoundJoin(p0 Point, norm Vec2, cross, dot float64) {
	lastScale := 0.5 * g.width / g.lastTan.Length()
	lastNorm := g.lastTan.Perp().Scale(lastScale)

	angle := math.Atan2(cross, dot)
	if angle > 0.0 {
		g.backward = append(g.backward, p0.Add(norm))
		g.forward = g.arc(g.forward, p0, lastNorm.Neg(), angle)
	} else {
		g.forward = append(g.forward, p0.Add(norm.Neg()))
		g.backward = g.arc(g.backward, p0, lastNorm, angle)
	}
}

// doLine extends both sides with a line segment.
func (g *Generator) doLine(tangent Vec2, p1 Point) {
	scale := 0.5 * g.width / tangent.Length()
	norm := tangent.Perp().Scale(scale)

	g.forward = append(g.forward, p1.Add(norm.Neg()))
	g.backward = append(g.backward, p1.Add(norm))
	g.lastPt = p1
	g.lastNorm = norm
}

// arcStep returns the angular step that keeps a flattened arc of the
// stroke radius within 0.125/scale of the true arc.
func (g *Generator) arcStep() float64 {
	r := g.width / 2
	return math.Acos(r/(r+0.125/g.scale)) * 2
}

// arc appends the points of the arc around center starting at center+norm
// and sweeping angle radians. The start point is not appended.
func (g *Generator) arc(dst []Point, center Point, norm Vec2, angle float64) []Point {
	n := int(math.Ceil(math.Abs(angle) / g.arcStep()))
	if n < 1 {
		n = 1
	}
	a0 := norm.Angle()
	r := norm.Length()
	step := angle / float64(n)
	for i := 1; i <= n; i++ {
		sin, cos := math.Sincos(a0 + step*float64(i))
		dst = append(dst, Point{X: center.X + r*cos, Y: center.Y + r*sin})
	}
	return dst
}

func (g *Generator) moveTo(p Point) {
	g.out = append(g.out, vertex.Vertex{Cmd: vertex.MoveTo, X: p.X, Y: p.Y})
}

func (g *Generator) lineTo(p Point) {
	g.out = append(g.out, vertex.Vertex{Cmd: vertex.LineTo, X: p.X, Y: p.Y})
}

func (g *Generator) closePolygon() {
	g.out = append(g.out, vertex.Vertex{Cmd: vertex.EndPoly | vertex.FlagClose})
}

// finish emits an open contour: forward side, end cap, reversed backward
// side, start cap.
func (g *Generator) finish() {
	if len(g.forward) == 0 {
		return
	}

	g.moveTo(g.forward[0])
	for _, p := range g.forward[1:] {
		g.lineTo(p)
	}

	// lastNorm points toward the backward side; the cap starts on the
	// forward side.
	g.applyCap(g.lastPt, g.lastNorm.Neg(), false)

	for i := len(g.backward) - 2; i >= 0; i-- {
		g.lineTo(g.backward[i])
	}

	g.applyCap(g.startPt, g.startNorm, true)

	g.forward = g.forward[:0]
	g.backward = g.backward[:0]
}

// finishClosed emits a closed contour as two polygons.
func (g *Generator) finishClosed() {
	if len(g.forward) == 0 {
		return
	}

	g.doJoin(g.startTan)

	g.moveTo(g.forward[0])
	for _, p := range g.forward[1:] {
		g.lineTo(p)
	}
	g.closePolygon()

	last := len(g.backward) - 1
	g.moveTo(g.backward[last])
	for i := last - 1; i >= 0; i-- {
		g.lineTo(g.backward[i])
	}
	g.closePolygon()

	g.forward = g.forward[:0]
	g.backward = g.backward[:0]
}

// applyCap emits the cap at center. norm points from center to the side
// the outline currently is on. A start cap closes the polygon.
func (g *Generator) applyCap(center Point, norm Vec2, start bool) {
	switch g.cap {
	case LineCapButt:
		if !start {
			g.lineTo(center.Add(norm.Neg()))
		}

	case LineCapRound:
		arc := g.arc(nil, center, norm, math.Pi)
		if start {
			// The final arc point is the polygon's first vertex.
			arc = arc[:len(arc)-1]
		}
		for _, p := range arc {
			g.lineTo(p)
		}

	case LineCapSquare:
		g.lineTo(transformPoint(center, norm, Point{X: 1, Y: 1}))
		g.lineTo(transformPoint(center, norm, Point{X: -1, Y: 1}))
		if !start {
			g.lineTo(transformPoint(center, norm, Point{X: -1, Y: 0}))
		}
	}

	if start {
		g.closePolygon()
	}
}

// transformPoint maps p through the frame [norm.x, norm.y, -norm.y, norm.x, center].
func transformPoint(center Point, norm Vec2, p Point) Point {
	return Point{
		X: norm.X*p.X - norm.Y*p.Y + center.X,
		Y: norm.Y*p.X + norm.X*p.Y + center.Y,
	}
}
