package vpath

import (
	"errors"
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// ToGeom returns the segments of p as a seehuhn.de/go/geom path. Closed
// EndPoly markers become Close; other markers are dropped. Catmull-Rom and
// B-spline runs fail with ErrInvalidPath; flatten them first.
//
// The returned path iterates over a snapshot taken by ToGeom, so later
// edits of p do not show through it.
func (p *Path) ToGeom() (path.Path, error) {
	data := p.Vertices()
	for i := 0; i < len(data); i++ {
		switch cmd := data[i].Cmd.Cmd(); cmd {
		case CmdCurve3:
			if !isRun(data, i, 2, cmd) {
				return nil, fmt.Errorf("%w: incomplete %s run at vertex %d", ErrInvalidPath, cmd, i)
			}
			i++
		case CmdCurve4:
			if !isRun(data, i, 3, cmd) {
				return nil, fmt.Errorf("%w: incomplete %s run at vertex %d", ErrInvalidPath, cmd, i)
			}
			i += 2
		case CmdCatrom, CmdUBSpline:
			return nil, fmt.Errorf("%w: %s at vertex %d has no geom form", ErrInvalidPath, cmd, i)
		}
	}

	return func(yield func(path.Command, []vec.Vec2) bool) {
		var buf [3]vec.Vec2
		pts := func(vs []Vertex) []vec.Vec2 {
			for i, v := range vs {
				buf[i] = vec.Vec2{X: v.X, Y: v.Y}
			}
			return buf[:len(vs)]
		}

		for i := 0; i < len(data); {
			v := data[i]
			var ok bool
			switch v.Cmd.Cmd() {
			case CmdMoveTo:
				ok = yield(path.CmdMoveTo, pts(data[i:i+1]))
				i++
			case CmdLineTo:
				ok = yield(path.CmdLineTo, pts(data[i:i+1]))
				i++
			case CmdCurve3:
				ok = yield(path.CmdQuadTo, pts(data[i:i+2]))
				i += 2
			case CmdCurve4:
				ok = yield(path.CmdCubeTo, pts(data[i:i+3]))
				i += 3
			default:
				ok = !v.Cmd.IsClosed() || yield(path.CmdClose, nil)
				i++
			}
			if !ok {
				return
			}
		}
	}, nil
}

// AddGeom appends the segments of a seehuhn.de/go/geom path to p. Like
// the composite builders it keeps going after a failed append and returns
// the joined errors.
func (p *Path) AddGeom(g path.Path) error {
	var errs []error
	for cmd, pts := range g {
		switch cmd {
		case path.CmdMoveTo:
			errs = append(errs, p.MoveTo(pts[0].X, pts[0].Y))
		case path.CmdLineTo:
			errs = append(errs, p.LineTo(pts[0].X, pts[0].Y))
		case path.CmdQuadTo:
			errs = append(errs, p.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y))
		case path.CmdCubeTo:
			errs = append(errs, p.CubicTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y))
		case path.CmdClose:
			errs = append(errs, p.ClosePolygon())
		}
	}
	return errors.Join(errs...)
}

// GeomMatrix adapts a seehuhn.de/go/geom matrix to the Transformer
// contract used by ApplyMatrix and WithMatrix.
type GeomMatrix matrix.Matrix

// Transform applies m to (x, y).
func (m GeomMatrix) Transform(x, y float64) (float64, float64) {
	return matrix.Matrix(m).Apply(x, y)
}
