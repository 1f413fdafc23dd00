package vpath

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-text/typesetting/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

// AddSegments appends a glyph outline loaded with sfnt.Font.LoadGlyph.
// Coordinates are converted from 26.6 fixed point; every contour is
// closed.
func (p *Path) AddSegments(segs sfnt.Segments) error {
	pt := func(a fixed.Point26_6) (float64, float64) {
		return fixedToFloat(a.X), fixedToFloat(a.Y)
	}

	var errs []error
	open := false
	for _, s := range segs {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			x, y := pt(s.Args[0])
			if open {
				errs = append(errs, p.ClosePolygon())
			}
			errs = append(errs, p.MoveTo(x, y))
			open = true
		case sfnt.SegmentOpLineTo:
			x, y := pt(s.Args[0])
			errs = append(errs, p.LineTo(x, y))
		case sfnt.SegmentOpQuadTo:
			cx, cy := pt(s.Args[0])
			x, y := pt(s.Args[1])
			errs = append(errs, p.CurveTo(cx, cy, x, y))
		case sfnt.SegmentOpCubeTo:
			c1x, c1y := pt(s.Args[0])
			c2x, c2y := pt(s.Args[1])
			x, y := pt(s.Args[2])
			errs = append(errs, p.CubicTo(c1x, c1y, c2x, c2y, x, y))
		}
	}
	if open {
		errs = append(errs, p.ClosePolygon())
	}
	return errors.Join(errs...)
}

// AppendSegments appends p to dst as 26.6 fixed-point glyph segments.
// Contours are closed implicitly, so EndPoly and Stop markers are dropped.
// Catmull-Rom and B-spline runs fail with ErrInvalidPath; flatten them
// first.
func (p *Path) AppendSegments(dst sfnt.Segments) (sfnt.Segments, error) {
	data := p.buf().data
	pt := func(v Vertex) fixed.Point26_6 {
		return fixed.Point26_6{X: floatToFixed(v.X), Y: floatToFixed(v.Y)}
	}

	for i := 0; i < len(data); i++ {
		v := data[i]
		switch cmd := v.Cmd.Cmd(); cmd {
		case CmdMoveTo:
			dst = append(dst, sfnt.Segment{Op: sfnt.SegmentOpMoveTo, Args: [3]fixed.Point26_6{pt(v)}})
		case CmdLineTo:
			dst = append(dst, sfnt.Segment{Op: sfnt.SegmentOpLineTo, Args: [3]fixed.Point26_6{pt(v)}})
		case CmdCurve3:
			if !isRun(data, i, 2, cmd) {
				return dst, fmt.Errorf("%w: incomplete %s run at vertex %d", ErrInvalidPath, cmd, i)
			}
			dst = append(dst, sfnt.Segment{Op: sfnt.SegmentOpQuadTo, Args: [3]fixed.Point26_6{pt(v), pt(data[i+1])}})
			i++
		case CmdCurve4:
			if !isRun(data, i, 3, cmd) {
				return dst, fmt.Errorf("%w: incomplete %s run at vertex %d", ErrInvalidPath, cmd, i)
			}
			dst = append(dst, sfnt.Segment{Op: sfnt.SegmentOpCubeTo, Args: [3]fixed.Point26_6{pt(v), pt(data[i+1]), pt(data[i+2])}})
			i += 2
		case CmdCatrom, CmdUBSpline:
			return dst, fmt.Errorf("%w: %s at vertex %d has no glyph segment form", ErrInvalidPath, cmd, i)
		}
	}
	return dst, nil
}

// AddOpenTypeOutline appends a glyph outline from go-text/typesetting,
// transforming each point with m (nil keeps font units). Every contour is
// closed.
func (p *Path) AddOpenTypeOutline(segs []opentype.Segment, m Transformer) error {
	pt := func(a opentype.SegmentPoint) (float64, float64) {
		x, y := float64(a.X), float64(a.Y)
		if m != nil {
			return m.Transform(x, y)
		}
		return x, y
	}

	var errs []error
	open := false
	for _, s := range segs {
		switch s.Op {
		case opentype.SegmentOpMoveTo:
			x, y := pt(s.Args[0])
			if open {
				errs = append(errs, p.ClosePolygon())
			}
			errs = append(errs, p.MoveTo(x, y))
			open = true
		case opentype.SegmentOpLineTo:
			x, y := pt(s.Args[0])
			errs = append(errs, p.LineTo(x, y))
		case opentype.SegmentOpQuadTo:
			cx, cy := pt(s.Args[0])
			x, y := pt(s.Args[1])
			errs = append(errs, p.CurveTo(cx, cy, x, y))
		case opentype.SegmentOpCubeTo:
			c1x, c1y := pt(s.Args[0])
			c2x, c2y := pt(s.Args[1])
			x, y := pt(s.Args[2])
			errs = append(errs, p.CubicTo(c1x, c1y, c2x, c2y, x, y))
		}
	}
	if open {
		errs = append(errs, p.ClosePolygon())
	}
	return errors.Join(errs...)
}
