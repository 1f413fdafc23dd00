package vpath

import "math"

// arcAngleEpsilon keeps the final arc chunk from being degenerately thin.
// A chunk may exceed a quarter turn by this much.
const arcAngleEpsilon = 0.01

// arcMaxVertices is the head vertex plus four quarter-turn chunks.
const arcMaxVertices = 1 + 4*3

// arcToBezier writes the four control points of the cubic approximating
// the elliptical arc chunk (start, sweep) into dst.
func arcToBezier(cx, cy, rx, ry, start, sweep float64, dst []Vertex) {
	sweep /= 2

	x0 := math.Cos(sweep)
	y0 := math.Sin(sweep)
	tx := (1 - x0) * 4 / 3
	ty := y0 - tx*x0/y0

	px := [4]float64{x0, x0 + tx, x0 + tx, x0}
	py := [4]float64{-y0, -ty, ty, y0}

	sn, cs := math.Sincos(start + sweep)
	for i := range 4 {
		dst[i] = Vertex{
			Cmd: CmdCurve4,
			X:   cx + rx*(px[i]*cs-py[i]*sn),
			Y:   cy + ry*(px[i]*sn+py[i]*cs),
		}
	}
}

// arcTo appends an elliptical arc centred at (cx, cy). The first vertex
// carries cmd; the rest are Curve4. A sweep below 1e-10 radians degenerates
// to a two-vertex straight segment.
func (p *Path) arcTo(cx, cy, rx, ry, start, sweep float64, cmd Command, closeAfter bool) error {
	start = math.Mod(start, 2*math.Pi)
	if start < 0 {
		start += 2 * math.Pi
	}
	sweep = max(min(sweep, 2*math.Pi), -2*math.Pi)

	if math.Abs(sweep) < 1e-10 {
		v, err := p.add(2)
		if err != nil {
			return err
		}
		sn, cs := math.Sincos(start)
		v[0] = Vertex{Cmd: cmd, X: cx + rx*cs, Y: cy + ry*sn}
		sn, cs = math.Sincos(start + sweep)
		v[1] = Vertex{Cmd: CmdLineTo, X: cx + rx*cs, Y: cy + ry*sn}
	} else {
		base := p.Len()
		v, err := p.add(arcMaxVertices)
		if err != nil {
			return err
		}

		var total float64
		n := 1
		for done := false; !done && n < arcMaxVertices; n += 3 {
			prev := total
			local := math.Pi / 2
			if sweep < 0 {
				local = -local
				total -= math.Pi / 2
				if total <= sweep+arcAngleEpsilon {
					local = sweep - prev
					done = true
				}
			} else {
				total += math.Pi / 2
				if total >= sweep-arcAngleEpsilon {
					local = sweep - prev
					done = true
				}
			}
			arcToBezier(cx, cy, rx, ry, start, local, v[n-1:])
			start += local
		}

		v[0].Cmd = cmd
		p.truncate(base + n)
		p.buf().setType(TypeHasCurves)
	}

	if closeAfter {
		return p.ClosePolygon()
	}
	return nil
}

// ArcTo appends an elliptical arc centred at (cx, cy) with radii (rx, ry),
// starting at angle start and sweeping sweep radians. The arc is connected
// to the current point with a line.
func (p *Path) ArcTo(cx, cy, rx, ry, start, sweep float64) error {
	return p.arcTo(cx, cy, rx, ry, start, sweep, CmdLineTo, false)
}

// ArcToRel is ArcTo with the centre relative to the last vertex.
func (p *Path) ArcToRel(cx, cy, rx, ry, start, sweep float64) error {
	x, y := p.rel()
	return p.arcTo(cx+x, cy+y, rx, ry, start, sweep, CmdLineTo, false)
}
