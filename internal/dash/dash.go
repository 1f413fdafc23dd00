// Package dash splits line geometry into dashes.
//
// A [Generator] reads line-only contours from a vertex source and emits
// each "on" stretch of the dash pattern as an open polyline (MoveTo
// followed by LineTo vertices). The pattern restarts at the dash start
// offset on every contour. Closed contours include their closing edge.
package dash

import (
	"math"

	"github.com/gogpu/vpath/internal/path"
	"github.com/gogpu/vpath/internal/vertex"
)

// Generator produces dashed polylines from a vertex source.
type Generator struct {
	src vertex.Source

	dashes []float64 // on, off, on, off, ...
	total  float64
	start  float64

	in  []vertex.Vertex
	out []vertex.Vertex
	pos int

	// walk state
	idx     int
	rem     float64
	drawing bool
}

// New returns a generator reading from src with no dashes.
func New(src vertex.Source) *Generator {
	return &Generator{src: src}
}

// AddDash appends an on/off pair to the pattern. Negative lengths use
// their magnitude.
func (g *Generator) AddDash(on, off float64) {
	on, off = math.Abs(on), math.Abs(off)
	g.dashes = append(g.dashes, on, off)
	g.total += on + off
}

// RemoveAllDashes clears the pattern.
func (g *Generator) RemoveAllDashes() {
	g.dashes = g.dashes[:0]
	g.total = 0
}

// SetDashStart sets the distance into the pattern at which every contour
// starts.
func (g *Generator) SetDashStart(offset float64) {
	g.start = offset
}

// PatternLength returns the length of one pattern cycle.
func (g *Generator) PatternLength() float64 {
	return g.total
}

// Rewind reads the source from index and dashes it.
func (g *Generator) Rewind(index int) {
	g.src.Rewind(index)
	g.in = g.in[:0]
	for {
		cmd, x, y := g.src.Vertex()
		if cmd.IsStop() {
			break
		}
		g.in = append(g.in, vertex.Vertex{Cmd: cmd, X: x, Y: y})
	}
	g.generate()
	g.pos = 0
}

// Vertex returns the next dash vertex, or Stop when exhausted.
func (g *Generator) Vertex() (vertex.Command, float64, float64) {
	if g.pos >= len(g.out) {
		return vertex.Stop, 0, 0
	}
	v := g.out[g.pos]
	g.pos++
	return v.Cmd, v.X, v.Y
}

// restart positions the pattern at the start offset.
func (g *Generator) restart() {
	g.idx = 0
	g.drawing = false

	dist := math.Mod(g.start, g.total)
	if dist < 0 {
		dist += g.total
	}
	for dist >= g.dashes[g.idx] {
		dist -= g.dashes[g.idx]
		g.idx = (g.idx + 1) % len(g.dashes)
	}
	g.rem = g.dashes[g.idx] - dist
}

func (g *Generator) advance() {
	g.idx = (g.idx + 1) % len(g.dashes)
	g.rem = g.dashes[g.idx]
	g.drawing = false
}

func (g *Generator) generate() {
	g.out = g.out[:0]
	if len(g.dashes) == 0 || g.total <= 0 {
		return
	}

	it := path.NewEdgeIter(g.in)
	for e, ok := it.Next(); ok; e, ok = it.Next() {
		if e.First {
			g.restart()
		}
		g.walk(e)
	}
}

// walk consumes one edge, emitting the on parts.
func (g *Generator) walk(e path.Edge) {
	length := e.Length()
	if length == 0 {
		return
	}
	dx := (e.X1 - e.X0) / length
	dy := (e.Y1 - e.Y0) / length

	t := 0.0
	for t < length {
		step := math.Min(g.rem, length-t)
		on := g.idx%2 == 0
		if on && step > 0 {
			if !g.drawing {
				g.emit(vertex.MoveTo, e.X0+dx*t, e.Y0+dy*t)
				g.drawing = true
			}
			end := t + step
			if end >= length {
				g.emit(vertex.LineTo, e.X1, e.Y1)
			} else {
				g.emit(vertex.LineTo, e.X0+dx*end, e.Y0+dy*end)
			}
		}
		t += step
		g.rem -= step
		if g.rem <= 0 {
			g.advance()
		}
	}
}

func (g *Generator) emit(cmd vertex.Command, x, y float64) {
	g.out = append(g.out, vertex.Vertex{Cmd: cmd, X: x, Y: y})
}
