package vpath

import (
	"math"

	"github.com/gogpu/vpath/internal/path"
)

// Dash replaces p with its dashed outline. See DashTo.
func (p *Path) Dash(d *Dash, scale float64, opts ...OpOption) error {
	return p.DashTo(p, d, scale, opts...)
}

// DashTo writes the dashes of p into dst, replacing dst's contents. dst
// may be p.
//
// A curved p is flattened at scale first. Each contour restarts the
// pattern at d.Offset; every dash becomes an open polyline. A nil or
// zero-length pattern produces an empty dst.
func (p *Path) DashTo(dst *Path, d *Dash, scale float64, opts ...OpOption) error {
	o := defaultOpOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return p.runOp(dst, scale, func(src VertexSource) VertexSource {
		g := o.newDasher(src)
		d.configure(g)
		return g
	})
}

// Stroke replaces p with its stroke outline. See StrokeTo.
func (p *Path) Stroke(params StrokeParams, scale float64, opts ...OpOption) error {
	return p.StrokeTo(p, params, scale, opts...)
}

// StrokeTo writes the stroke outline of p into dst, replacing dst's
// contents. dst may be p.
//
// A curved p is flattened at scale first; scale also sets the density of
// round joins and caps. Open contours become one closed polygon, closed
// contours become an outer and an inner polygon.
func (p *Path) StrokeTo(dst *Path, params StrokeParams, scale float64, opts ...OpOption) error {
	o := defaultOpOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return p.runOp(dst, scale, func(src VertexSource) VertexSource {
		g := o.newStroker(src)
		params.configure(g, scale)
		return g
	})
}

// runOp feeds the line geometry of p through the generator built by gen
// and drains its output into dst.
func (p *Path) runOp(dst *Path, scale float64, gen func(VertexSource) VertexSource) error {
	src := p
	if p.Type() != TypeLineOnly {
		var flat Path
		if err := p.FlattenTo(&flat, scale); err != nil {
			return err
		}
		src = &flat
	}

	ps := NewPathSource(src)
	defer ps.release()
	out := gen(ps)

	if dst == p {
		var tmp Path
		if err := Drain(&tmp, out); err != nil {
			return err
		}
		dst.adopt(&tmp)
		return nil
	}

	dst.Clear()
	return Drain(dst, out)
}

// Length returns the summed length of p's edges, including the closing
// edges of closed contours. Curve control points are treated as line
// vertices, so curved paths should be flattened first.
func (p *Path) Length() float64 {
	return path.Length(p.buf().data)
}

// BoundingBox returns the smallest rectangle containing every drawable
// vertex of p, curve control points included. An empty path yields the
// zero Rect.
func (p *Path) BoundingBox() Rect {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, v := range p.buf().data {
		if !v.Cmd.IsVertex() {
			continue
		}
		minX = math.Min(minX, v.X)
		minY = math.Min(minY, v.Y)
		maxX = math.Max(maxX, v.X)
		maxY = math.Max(maxY, v.Y)
	}
	if minX > maxX {
		return Rect{}
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}
