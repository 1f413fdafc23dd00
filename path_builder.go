package vpath

// Builder methods append vertices to a path. Each returns ErrOutOfMemory
// when the buffer cannot grow; the path is then left unchanged.

func (p *Path) put1(cmd Command, x, y float64) error {
	v, err := p.add(1)
	if err != nil {
		return err
	}
	v[0] = Vertex{Cmd: cmd, X: x, Y: y}
	return nil
}

// rel returns the offset relative coordinates are resolved against: the
// last vertex when it is drawable, otherwise the origin.
func (p *Path) rel() (float64, float64) {
	x, y, _ := p.lastPoint()
	return x, y
}

// Start ends the current contour with a Stop marker when the path does not
// already end with one, and returns the index the next contour starts at.
func (p *Path) Start() (int, error) {
	if v, ok := p.last(); ok && !v.Cmd.IsStop() {
		if err := p.put1(CmdStop, 0, 0); err != nil {
			return p.Len(), err
		}
	}
	return p.Len(), nil
}

// EndPoly appends an EndPoly marker carrying flags when the last vertex is
// drawable. Otherwise it does nothing.
func (p *Path) EndPoly(flags Command) error {
	if _, _, ok := p.lastPoint(); !ok {
		return nil
	}
	return p.put1(CmdEndPoly|flags&FlagMask, 0, 0)
}

// ClosePolygon is EndPoly with FlagClose added to flags, typically an
// orientation flag.
func (p *Path) ClosePolygon(flags ...Command) error {
	f := FlagClose
	for _, fl := range flags {
		f |= fl
	}
	return p.EndPoly(f)
}

// MoveTo starts a new contour at (x, y).
func (p *Path) MoveTo(x, y float64) error {
	return p.put1(CmdMoveTo, x, y)
}

// MoveToRel is MoveTo relative to the last vertex.
func (p *Path) MoveToRel(dx, dy float64) error {
	x, y := p.rel()
	return p.MoveTo(x+dx, y+dy)
}

// LineTo appends a line to (x, y).
func (p *Path) LineTo(x, y float64) error {
	return p.put1(CmdLineTo, x, y)
}

// LineToRel is LineTo relative to the last vertex.
func (p *Path) LineToRel(dx, dy float64) error {
	x, y := p.rel()
	return p.LineTo(x+dx, y+dy)
}

// LineToPoints appends a LineTo for every point.
func (p *Path) LineToPoints(pts []Point) error {
	if len(pts) == 0 {
		return nil
	}
	v, err := p.add(len(pts))
	if err != nil {
		return err
	}
	for i, pt := range pts {
		v[i] = Vertex{Cmd: CmdLineTo, X: pt.X, Y: pt.Y}
	}
	return nil
}

// LineToXY appends a LineTo for every (xs[i], ys[i]) pair. Unpaired
// trailing coordinates are ignored.
func (p *Path) LineToXY(xs, ys []float64) error {
	n := min(len(xs), len(ys))
	if n == 0 {
		return nil
	}
	v, err := p.add(n)
	if err != nil {
		return err
	}
	for i := range n {
		v[i] = Vertex{Cmd: CmdLineTo, X: xs[i], Y: ys[i]}
	}
	return nil
}

// HLineTo appends a horizontal line to x. The y coordinate is taken from
// the last vertex, or 0 for an empty path.
func (p *Path) HLineTo(x float64) error {
	v, _ := p.last()
	return p.LineTo(x, v.Y)
}

// HLineToRel is HLineTo relative to the last vertex.
func (p *Path) HLineToRel(dx float64) error {
	x, y := p.rel()
	return p.LineTo(x+dx, y)
}

// VLineTo appends a vertical line to y. The x coordinate is taken from
// the last vertex, or 0 for an empty path.
func (p *Path) VLineTo(y float64) error {
	v, _ := p.last()
	return p.LineTo(v.X, y)
}

// VLineToRel is VLineTo relative to the last vertex.
func (p *Path) VLineToRel(dy float64) error {
	x, y := p.rel()
	return p.LineTo(x, y+dy)
}

// CurveTo appends a quadratic Bezier with control point (cx, cy) ending at
// (tx, ty).
func (p *Path) CurveTo(cx, cy, tx, ty float64) error {
	v, err := p.add(2)
	if err != nil {
		return err
	}
	v[0] = Vertex{Cmd: CmdCurve3, X: cx, Y: cy}
	v[1] = Vertex{Cmd: CmdCurve3, X: tx, Y: ty}
	p.buf().setType(TypeHasCurves)
	return nil
}

// CurveToRel is CurveTo relative to the last vertex.
func (p *Path) CurveToRel(cx, cy, tx, ty float64) error {
	x, y := p.rel()
	return p.CurveTo(cx+x, cy+y, tx+x, ty+y)
}

// reflected returns the control point for a smooth continuation: the
// previous control point mirrored through the last vertex, or the last
// vertex itself when the vertex before it is not a curve point.
func (p *Path) reflected() (cx, cy float64, ok bool) {
	d := p.buf().data
	n := len(d)
	if n == 0 || !d[n-1].Cmd.IsVertex() {
		return 0, 0, false
	}
	cx, cy = d[n-1].X, d[n-1].Y
	if n >= 2 && d[n-2].Cmd.IsCurve() {
		cx += d[n-1].X - d[n-2].X
		cy += d[n-1].Y - d[n-2].Y
	}
	return cx, cy, true
}

// SmoothCurveTo appends a quadratic Bezier ending at (tx, ty) whose control
// point reflects the previous one. Without a drawable last vertex it does
// nothing.
func (p *Path) SmoothCurveTo(tx, ty float64) error {
	cx, cy, ok := p.reflected()
	if !ok {
		return nil
	}
	return p.CurveTo(cx, cy, tx, ty)
}

// SmoothCurveToRel is SmoothCurveTo relative to the last vertex.
func (p *Path) SmoothCurveToRel(tx, ty float64) error {
	x, y := p.rel()
	return p.SmoothCurveTo(tx+x, ty+y)
}

// CubicTo appends a cubic Bezier with control points (cx1, cy1) and
// (cx2, cy2) ending at (tx, ty).
func (p *Path) CubicTo(cx1, cy1, cx2, cy2, tx, ty float64) error {
	v, err := p.add(3)
	if err != nil {
		return err
	}
	v[0] = Vertex{Cmd: CmdCurve4, X: cx1, Y: cy1}
	v[1] = Vertex{Cmd: CmdCurve4, X: cx2, Y: cy2}
	v[2] = Vertex{Cmd: CmdCurve4, X: tx, Y: ty}
	p.buf().setType(TypeHasCurves)
	return nil
}

// CubicToRel is CubicTo relative to the last vertex.
func (p *Path) CubicToRel(cx1, cy1, cx2, cy2, tx, ty float64) error {
	x, y := p.rel()
	return p.CubicTo(cx1+x, cy1+y, cx2+x, cy2+y, tx+x, ty+y)
}

// SmoothCubicTo appends a cubic Bezier ending at (tx, ty) whose first
// control point reflects the previous one. Without a drawable last vertex
// it does nothing.
func (p *Path) SmoothCubicTo(cx2, cy2, tx, ty float64) error {
	cx1, cy1, ok := p.reflected()
	if !ok {
		return nil
	}
	return p.CubicTo(cx1, cy1, cx2, cy2, tx, ty)
}

// SmoothCubicToRel is SmoothCubicTo relative to the last vertex.
func (p *Path) SmoothCubicToRel(cx2, cy2, tx, ty float64) error {
	x, y := p.rel()
	return p.SmoothCubicTo(cx2+x, cy2+y, tx+x, ty+y)
}

// AddPath appends q's vertices unchanged.
func (p *Path) AddPath(q *Path) error {
	src := q.buf().data
	if len(src) == 0 {
		return nil
	}
	t := max(p.Type(), q.Type())

	// q may be p; keep a view of the source taken before growing.
	v, err := p.add(len(src))
	if err != nil {
		return err
	}
	copy(v, src)
	p.buf().setType(t)
	return nil
}
