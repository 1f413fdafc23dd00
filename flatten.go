package vpath

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/vpath/internal/path"
)

// Flatten replaces every curve and spline segment of p with line segments.
// See FlattenTo.
func (p *Path) Flatten(scale float64, opts ...FlattenOption) error {
	return p.FlattenTo(p, scale, opts...)
}

// FlattenTo writes a line-only approximation of p into dst, replacing
// dst's contents. dst may be p.
//
// scale sets the subdivision density: every emitted segment stays within
// 0.5/scale of the curve it replaces. Quadratic and cubic runs are
// subdivided directly; Catmull-Rom and uniform B-spline runs are first
// converted to cubic form. Structural markers are copied with zeroed
// coordinates.
//
// A line-only p is shared into dst without subdivision. A malformed curve
// run fails with ErrInvalidPath and leaves dst empty, or unchanged when dst
// is p.
func (p *Path) FlattenTo(dst *Path, scale float64, opts ...FlattenOption) error {
	var o flattenOptions
	for _, opt := range opts {
		opt(&o)
	}

	if p.Type() == TypeLineOnly {
		if dst != p {
			dst.Set(p)
		}
		if o.matrix != nil {
			dst.ApplyMatrix(o.matrix)
		}
		return nil
	}

	if dst == p {
		var tmp Path
		if err := p.flattenInto(&tmp, scale, &o); err != nil {
			return err
		}
		p.adopt(&tmp)
		return nil
	}

	dst.Clear()
	return p.flattenInto(dst, scale, &o)
}

// flattenInto appends the flattened vertices of p to dst, which must not
// share p's handle.
func (p *Path) flattenInto(dst *Path, scale float64, o *flattenOptions) error {
	src := p.buf().data
	a := path.Approximator{
		Scale:          scale,
		AngleTolerance: o.angleTolerance,
		CuspLimit:      o.cuspLimit,
	}

	out := make([]Vertex, 0, min(len(src)*8, MaxVertices))
	var lastX, lastY float64

	for i := 0; i < len(src); {
		v := src[i]
		switch cmd := v.Cmd.Cmd(); cmd {
		case CmdMoveTo, CmdLineTo:
			out = append(out, v)
			lastX, lastY = v.X, v.Y
			i++

		case CmdCurve3:
			if !isRun(src, i, 2, cmd) {
				return invalidRun(i, v.Cmd)
			}
			c, e := src[i], src[i+1]
			out = a.Curve3(out, lastX, lastY, c.X, c.Y, e.X, e.Y)
			lastX, lastY = e.X, e.Y
			i += 2

		case CmdCurve4:
			if !isRun(src, i, 3, cmd) {
				return invalidRun(i, v.Cmd)
			}
			c1, c2, e := src[i], src[i+1], src[i+2]
			out = a.Curve4(out, lastX, lastY, c1.X, c1.Y, c2.X, c2.Y, e.X, e.Y)
			lastX, lastY = e.X, e.Y
			i += 3

		case CmdCatrom:
			if !isRun(src, i, 3, cmd) {
				return invalidRun(i, v.Cmd)
			}
			v1, v2 := src[i+1], src[i+2]
			x1, y1, x2, y2, x3, y3, x4, y4 := path.CatromToBezier(lastX, lastY, v.X, v.Y, v1.X, v1.Y, v2.X, v2.Y)
			out = a.Curve4(out, x1, y1, x2, y2, x3, y3, x4, y4)
			lastX, lastY = v2.X, v2.Y
			i += 3

		case CmdUBSpline:
			if !isRun(src, i, 3, cmd) {
				return invalidRun(i, v.Cmd)
			}
			v1, v2 := src[i+1], src[i+2]
			x1, y1, x2, y2, x3, y3, x4, y4 := path.UBSplineToBezier(lastX, lastY, v.X, v.Y, v1.X, v1.Y, v2.X, v2.Y)
			out = a.Curve4(out, x1, y1, x2, y2, x3, y3, x4, y4)
			lastX, lastY = x4, y4
			i += 3

		default:
			out = append(out, Vertex{Cmd: v.Cmd})
			lastX, lastY = 0, 0
			i++
		}
	}

	if o.matrix != nil {
		applyTransform(out, o.matrix)
	}
	if len(out) == 0 {
		return nil
	}

	w, err := dst.add(len(out))
	if err != nil {
		return err
	}
	copy(w, out)
	dst.buf().setType(TypeLineOnly)
	return nil
}

// isRun reports whether vs holds n vertices tagged cmd starting at i.
func isRun(vs []Vertex, i, n int, cmd Command) bool {
	if len(vs)-i < n {
		return false
	}
	for _, v := range vs[i : i+n] {
		if v.Cmd.Cmd() != cmd {
			return false
		}
	}
	return true
}

func invalidRun(i int, cmd Command) error {
	Logger().Warn("vpath: malformed curve run",
		slog.Int("index", i),
		slog.String("cmd", cmd.String()))
	return fmt.Errorf("%w: incomplete %s run at vertex %d", ErrInvalidPath, cmd, i)
}
