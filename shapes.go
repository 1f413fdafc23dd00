package vpath

import (
	"errors"
	"math"
)

// AddRect appends r as a closed four-vertex contour. Invalid rectangles are
// skipped without error.
func (p *Path) AddRect(r Rect) error {
	if !r.IsValid() {
		return nil
	}
	v, err := p.add(5)
	if err != nil {
		return err
	}
	putRect(v, r)
	return nil
}

func putRect(v []Vertex, r Rect) {
	v[0] = Vertex{Cmd: CmdMoveTo, X: r.X, Y: r.Y}
	v[1] = Vertex{Cmd: CmdLineTo, X: r.X2(), Y: r.Y}
	v[2] = Vertex{Cmd: CmdLineTo, X: r.X2(), Y: r.Y2()}
	v[3] = Vertex{Cmd: CmdLineTo, X: r.X, Y: r.Y2()}
	v[4] = Vertex{Cmd: CmdEndPoly | FlagClose}
}

// AddRects appends every valid rectangle of rs as in AddRect.
func (p *Path) AddRects(rs []Rect) error {
	n := 0
	for _, r := range rs {
		if r.IsValid() {
			n++
		}
	}
	if n == 0 {
		return nil
	}
	v, err := p.add(n * 5)
	if err != nil {
		return err
	}
	for _, r := range rs {
		if !r.IsValid() {
			continue
		}
		putRect(v, r)
		v = v[5:]
	}
	return nil
}

// AddRound appends r with elliptical corners of radii (rx, ry). The radii
// are clamped to half the rectangle extent; when either clamps to zero the
// result is a plain rectangle.
//
// The contour is assembled from separate line and arc calls. A failing
// call does not stop the remaining ones: every step runs and the errors
// are joined, so on failure the appended contour may have gaps.
func (p *Path) AddRound(r Rect, rx, ry float64) error {
	if !r.IsValid() {
		return nil
	}

	rx = math.Min(math.Abs(rx), r.W/2)
	ry = math.Min(math.Abs(ry), r.H/2)
	if rx == 0 || ry == 0 {
		return p.AddRect(r)
	}

	x1, y1 := r.X, r.Y
	x2, y2 := r.X2(), r.Y2()

	return errors.Join(
		p.MoveTo(x1+rx, y1),
		p.LineTo(x2-rx, y1),
		p.ArcTo(x2-rx, y1+ry, rx, ry, math.Pi*1.5, math.Pi*0.5),

		p.LineTo(x2, y2-ry),
		p.ArcTo(x2-rx, y2-ry, rx, ry, 0, math.Pi*0.5),

		p.LineTo(x1+rx, y2),
		p.ArcTo(x1+rx, y2-ry, rx, ry, math.Pi*0.5, math.Pi*0.5),

		p.LineTo(x1, y1+ry),
		p.ArcTo(x1+rx, y1+ry, rx, ry, math.Pi, math.Pi*0.5),

		p.ClosePolygon(),
	)
}

// ellipseOf returns the centre and radii of the ellipse inscribed in r.
func ellipseOf(r Rect) (cx, cy, rx, ry float64) {
	rx = r.W / 2
	ry = r.H / 2
	return r.X + rx, r.Y + ry, rx, ry
}

// AddEllipse appends the closed ellipse inscribed in r.
func (p *Path) AddEllipse(r Rect) error {
	if !r.IsValid() {
		return nil
	}
	cx, cy, rx, ry := ellipseOf(r)
	return p.arcTo(cx, cy, rx, ry, 0, 2*math.Pi, CmdMoveTo, true)
}

// AddEllipseCenter appends the closed ellipse centred at c with radii r.
func (p *Path) AddEllipseCenter(c, r Point) error {
	return p.arcTo(c.X, c.Y, r.X, r.Y, 0, 2*math.Pi, CmdMoveTo, true)
}

// AddArc appends an open elliptical arc on the ellipse inscribed in r.
func (p *Path) AddArc(r Rect, start, sweep float64) error {
	if !r.IsValid() {
		return nil
	}
	cx, cy, rx, ry := ellipseOf(r)
	return p.arcTo(cx, cy, rx, ry, start, sweep, CmdMoveTo, false)
}

// AddArcCenter appends an open elliptical arc centred at c with radii r.
func (p *Path) AddArcCenter(c, r Point, start, sweep float64) error {
	return p.arcTo(c.X, c.Y, r.X, r.Y, start, sweep, CmdMoveTo, false)
}

// AddChord appends an arc on the ellipse inscribed in r, closed back to
// the arc's start point.
func (p *Path) AddChord(r Rect, start, sweep float64) error {
	if !r.IsValid() {
		return nil
	}
	cx, cy, rx, ry := ellipseOf(r)
	return p.arcTo(cx, cy, rx, ry, start, sweep, CmdMoveTo, true)
}

// AddChordCenter is AddChord for the ellipse centred at c with radii r.
func (p *Path) AddChordCenter(c, r Point, start, sweep float64) error {
	return p.arcTo(c.X, c.Y, r.X, r.Y, start, sweep, CmdMoveTo, true)
}

// AddPie appends a closed slice of the ellipse inscribed in r: a move to
// the centre, a line to the arc start, the arc, and a close. A sweep of a
// full turn or more adds the whole ellipse instead.
func (p *Path) AddPie(r Rect, start, sweep float64) error {
	if !r.IsValid() {
		return nil
	}
	cx, cy, rx, ry := ellipseOf(r)
	return p.AddPieCenter(Pt(cx, cy), Pt(rx, ry), start, sweep)
}

// AddPieCenter is AddPie for the ellipse centred at c with radii r.
func (p *Path) AddPieCenter(c, r Point, start, sweep float64) error {
	if sweep >= 2*math.Pi {
		return p.AddEllipseCenter(c, r)
	}

	start = math.Mod(start, 2*math.Pi)
	if start < 0 {
		start += 2 * math.Pi
	}

	if err := p.MoveTo(c.X, c.Y); err != nil {
		return err
	}
	return p.arcTo(c.X, c.Y, r.X, r.Y, start, sweep, CmdLineTo, true)
}
