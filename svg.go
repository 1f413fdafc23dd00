package vpath

import (
	"fmt"
	"math"
	"strconv"

	pstrconv "github.com/tdewolff/parse/v2/strconv"
)

// svgArgs is the number of arguments each SVG path command takes.
var svgArgs = map[byte]int{
	'M': 2, 'Z': 0, 'L': 2, 'H': 1, 'V': 1,
	'C': 6, 'S': 4, 'Q': 4, 'T': 2, 'A': 7,
}

func skipCommaWhitespace(b []byte) int {
	i := 0
	for i < len(b) && (b[i] == ' ' || b[i] == ',' || b[i] == '\n' || b[i] == '\r' || b[i] == '\t') {
		i++
	}
	return i
}

func isNumberStart(c byte) bool {
	return c >= '0' && c <= '9' || c == '.' || c == '-' || c == '+'
}

// MustParseSVG is like ParseSVG but panics on error.
func MustParseSVG(s string) *Path {
	p, err := ParseSVG(s)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseSVG parses SVG path data into a new path.
//
// Quadratic and cubic commands become Curve3 and Curve4 runs, elliptical
// arcs become cubic arc chunks, and Z closes the contour. Repeated
// argument sets reuse the previous command, with M continuing as L.
func ParseSVG(s string) (*Path, error) {
	p := NewPath()
	if err := p.AppendSVG(s); err != nil {
		return nil, err
	}
	return p, nil
}

// AppendSVG parses SVG path data and appends it to p. On error p keeps the
// vertices and type it held before the call.
func (p *Path) AppendSVG(s string) error {
	start, typ := p.Len(), p.buf().typ()
	if err := p.appendSVG([]byte(s)); err != nil {
		p.truncate(start)
		p.buf().setType(typ)
		return err
	}
	return nil
}

func (p *Path) appendSVG(b []byte) error {
	i := skipCommaWhitespace(b)
	if i == len(b) {
		return nil
	}
	if isNumberStart(b[i]) {
		return fmt.Errorf("%w: path data must start with a command at position %d", ErrSVGSyntax, i+1)
	}

	var (
		f        [7]float64
		cur, sub Point // current point and contour start
		ctrl     Point // last control point, for S and T
		prev     byte  = 'z'
	)

	for {
		i += skipCommaWhitespace(b[i:])
		if i >= len(b) {
			return nil
		}

		cmd := prev
		if cmd == 'z' || cmd == 'Z' || !isNumberStart(b[i]) {
			cmd = b[i]
			i++
		}
		upper := cmd
		if 'a' <= cmd && cmd <= 'z' {
			upper -= 'a' - 'A'
		}
		n, ok := svgArgs[upper]
		if !ok {
			return fmt.Errorf("%w: unknown command %q at position %d", ErrSVGSyntax, cmd, i)
		}

		for j := range n {
			i += skipCommaWhitespace(b[i:])
			if upper == 'A' && (j == 3 || j == 4) {
				if i >= len(b) || (b[i] != '0' && b[i] != '1') {
					return fmt.Errorf("%w: arc flag must be 0 or 1 at position %d", ErrSVGSyntax, i+1)
				}
				f[j] = float64(b[i] - '0')
				i++
				continue
			}
			num, m := pstrconv.ParseFloat(b[i:])
			if m == 0 {
				return fmt.Errorf("%w: command %q expects %d numbers at position %d", ErrSVGSyntax, cmd, n, i+1)
			}
			f[j] = num
			i += m
		}

		rel := upper != cmd
		abs := func(x, y float64) Point {
			if rel {
				return Point{X: cur.X + x, Y: cur.Y + y}
			}
			return Point{X: x, Y: y}
		}

		var err error
		next := cmd
		switch upper {
		case 'M':
			cur = abs(f[0], f[1])
			sub = cur
			err = p.MoveTo(cur.X, cur.Y)
			next = 'L'
			if rel {
				next = 'l'
			}
		case 'Z':
			err = p.ClosePolygon()
			cur = sub
		case 'L':
			cur = abs(f[0], f[1])
			err = p.LineTo(cur.X, cur.Y)
		case 'H':
			if rel {
				cur.X += f[0]
			} else {
				cur.X = f[0]
			}
			err = p.LineTo(cur.X, cur.Y)
		case 'V':
			if rel {
				cur.Y += f[0]
			} else {
				cur.Y = f[0]
			}
			err = p.LineTo(cur.X, cur.Y)
		case 'C':
			c1, c2, end := abs(f[0], f[1]), abs(f[2], f[3]), abs(f[4], f[5])
			err = p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
			ctrl, cur = c2, end
		case 'S':
			c1 := cur
			if prev == 'C' || prev == 'c' || prev == 'S' || prev == 's' {
				c1 = cur.Mul(2).Sub(ctrl)
			}
			c2, end := abs(f[0], f[1]), abs(f[2], f[3])
			err = p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
			ctrl, cur = c2, end
		case 'Q':
			c, end := abs(f[0], f[1]), abs(f[2], f[3])
			err = p.CurveTo(c.X, c.Y, end.X, end.Y)
			ctrl, cur = c, end
		case 'T':
			c := cur
			if prev == 'Q' || prev == 'q' || prev == 'T' || prev == 't' {
				c = cur.Mul(2).Sub(ctrl)
			}
			end := abs(f[0], f[1])
			err = p.CurveTo(c.X, c.Y, end.X, end.Y)
			ctrl, cur = c, end
		case 'A':
			end := abs(f[5], f[6])
			err = p.svgArc(cur, f[0], f[1], f[2]*math.Pi/180, f[3] == 1, f[4] == 1, end)
			cur = end
		}
		if err != nil {
			return err
		}
		// A continuation of M reports itself as L for the reflection rules.
		if upper == 'M' {
			prev = next
		} else {
			prev = cmd
		}
	}
}

// svgArc appends the endpoint-parameterised elliptical arc from p0 to p1.
func (p *Path) svgArc(p0 Point, rx, ry, phi float64, large, sweep bool, p1 Point) error {
	if p0 == p1 {
		return nil
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		return p.LineTo(p1.X, p1.Y)
	}

	sinPhi, cosPhi := math.Sincos(phi)
	dx2 := (p0.X - p1.X) / 2
	dy2 := (p0.Y - p1.Y) / 2
	x1 := cosPhi*dx2 + sinPhi*dy2
	y1 := -sinPhi*dx2 + cosPhi*dy2

	if lambda := x1*x1/(rx*rx) + y1*y1/(ry*ry); lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	rx2, ry2 := rx*rx, ry*ry
	num := rx2*ry2 - rx2*y1*y1 - ry2*x1*x1
	den := rx2*y1*y1 + ry2*x1*x1
	coef := math.Sqrt(math.Max(0, num/den))
	if large == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1 / ry
	cyp := -coef * ry * x1 / rx

	cx := cosPhi*cxp - sinPhi*cyp + (p0.X+p1.X)/2
	cy := sinPhi*cxp + cosPhi*cyp + (p0.Y+p1.Y)/2

	theta := math.Atan2((y1-cyp)/ry, (x1-cxp)/rx)
	delta := math.Atan2((-y1-cyp)/ry, (-x1-cxp)/rx) - theta
	if sweep && delta < 0 {
		delta += 2 * math.Pi
	} else if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	}

	base := p.Len()
	if err := p.arcTo(0, 0, rx, ry, theta, delta, CmdLineTo, false); err != nil {
		return err
	}

	// Drop the leading line to the arc start, which is p0, then place the
	// arc on the rotated ellipse.
	d := p.buf()
	d.data = append(d.data[:base], d.data[base+1:]...)
	m := Translate(cx, cy).Multiply(Rotate(phi))
	applyTransform(d.data[base:], m)
	return nil
}

// SVG formats p as SVG path data. Catmull-Rom and B-spline points are
// written as line vertices; flatten such paths first for exact output.
func (p *Path) SVG() string {
	var b []byte
	data := p.buf().data
	appendPt := func(b []byte, v Vertex) []byte {
		b = strconv.AppendFloat(b, v.X, 'g', -1, 64)
		b = append(b, ' ')
		return strconv.AppendFloat(b, v.Y, 'g', -1, 64)
	}

	for i := 0; i < len(data); i++ {
		v := data[i]
		if len(b) > 0 && v.Cmd.Cmd() != CmdStop {
			b = append(b, ' ')
		}
		switch v.Cmd.Cmd() {
		case CmdMoveTo:
			b = appendPt(append(b, 'M'), v)
		case CmdLineTo, CmdCatrom, CmdUBSpline:
			b = appendPt(append(b, 'L'), v)
		case CmdCurve3:
			if isRun(data, i, 2, CmdCurve3) {
				b = appendPt(append(b, 'Q'), v)
				b = appendPt(append(b, ' '), data[i+1])
				i++
			} else {
				b = appendPt(append(b, 'L'), v)
			}
		case CmdCurve4:
			if isRun(data, i, 3, CmdCurve4) {
				b = appendPt(append(b, 'C'), v)
				b = appendPt(append(b, ' '), data[i+1])
				b = appendPt(append(b, ' '), data[i+2])
				i += 2
			} else {
				b = appendPt(append(b, 'L'), v)
			}
		case CmdEndPoly:
			if v.Cmd.IsClosed() {
				b = append(b, 'Z')
			} else if len(b) > 0 {
				b = b[:len(b)-1]
			}
		}
	}
	return string(b)
}
