package dash

import (
	"math"
	"testing"

	"github.com/gogpu/vpath/internal/vertex"
)

type sliceSource struct {
	vs  []vertex.Vertex
	pos int
}

func (s *sliceSource) Rewind(index int) { s.pos = index }

func (s *sliceSource) Vertex() (vertex.Command, float64, float64) {
	if s.pos >= len(s.vs) {
		return vertex.Stop, 0, 0
	}
	v := s.vs[s.pos]
	s.pos++
	return v.Cmd, v.X, v.Y
}

func polyline(closed bool, pts ...float64) []vertex.Vertex {
	var vs []vertex.Vertex
	for i := 0; i+1 < len(pts); i += 2 {
		cmd := vertex.LineTo
		if i == 0 {
			cmd = vertex.MoveTo
		}
		vs = append(vs, vertex.Vertex{Cmd: cmd, X: pts[i], Y: pts[i+1]})
	}
	if closed {
		vs = append(vs, vertex.Vertex{Cmd: vertex.EndPoly | vertex.FlagClose})
	}
	return vs
}

func drain(g *Generator) []vertex.Vertex {
	var out []vertex.Vertex
	g.Rewind(0)
	for cmd, x, y := g.Vertex(); !cmd.IsStop(); cmd, x, y = g.Vertex() {
		out = append(out, vertex.Vertex{Cmd: cmd, X: x, Y: y})
	}
	return out
}

// segments splits output into polylines of points.
func segments(vs []vertex.Vertex) [][][2]float64 {
	var out [][][2]float64
	for _, v := range vs {
		if v.Cmd.IsMoveTo() {
			out = append(out, nil)
		}
		out[len(out)-1] = append(out[len(out)-1], [2]float64{v.X, v.Y})
	}
	return out
}

func equalSegments(a, b [][][2]float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if math.Abs(a[i][j][0]-b[i][j][0]) > 1e-9 || math.Abs(a[i][j][1]-b[i][j][1]) > 1e-9 {
				return false
			}
		}
	}
	return true
}

func TestGenerator_Line(t *testing.T) {
	tests := []struct {
		name   string
		on     float64
		off    float64
		offset float64
		want   [][][2]float64
	}{
		{
			name: "no offset",
			on:   2, off: 1,
			want: [][][2]float64{
				{{0, 0}, {2, 0}},
				{{3, 0}, {5, 0}},
				{{6, 0}, {8, 0}},
				{{9, 0}, {10, 0}},
			},
		},
		{
			name: "offset into first dash",
			on:   2, off: 1, offset: 1,
			want: [][][2]float64{
				{{0, 0}, {1, 0}},
				{{2, 0}, {4, 0}},
				{{5, 0}, {7, 0}},
				{{8, 0}, {10, 0}},
			},
		},
		{
			name: "offset wraps the pattern",
			on:   2, off: 1, offset: 4,
			want: [][][2]float64{
				{{0, 0}, {1, 0}},
				{{2, 0}, {4, 0}},
				{{5, 0}, {7, 0}},
				{{8, 0}, {10, 0}},
			},
		},
		{
			name: "negative offset",
			on:   2, off: 1, offset: -2,
			want: [][][2]float64{
				{{0, 0}, {1, 0}},
				{{2, 0}, {4, 0}},
				{{5, 0}, {7, 0}},
				{{8, 0}, {10, 0}},
			},
		},
		{
			name: "offset into gap",
			on:   2, off: 1, offset: 2.5,
			want: [][][2]float64{
				{{0.5, 0}, {2.5, 0}},
				{{3.5, 0}, {5.5, 0}},
				{{6.5, 0}, {8.5, 0}},
				{{9.5, 0}, {10, 0}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(&sliceSource{vs: polyline(false, 0, 0, 10, 0)})
			g.AddDash(tt.on, tt.off)
			g.SetDashStart(tt.offset)

			got := segments(drain(g))
			if !equalSegments(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGenerator_DashContinuesAroundCorner(t *testing.T) {
	g := New(&sliceSource{vs: polyline(false, 0, 0, 4, 0, 4, 4)})
	g.AddDash(6, 1)

	got := segments(drain(g))
	want := [][][2]float64{
		{{0, 0}, {4, 0}, {4, 2}},
		{{4, 3}, {4, 4}},
	}
	if !equalSegments(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestGenerator_ClosedContourIncludesClosingEdge(t *testing.T) {
	g := New(&sliceSource{vs: polyline(true, 0, 0, 10, 0, 10, 10, 0, 10)})
	g.AddDash(5, 5)

	got := segments(drain(g))
	want := [][][2]float64{
		{{0, 0}, {5, 0}},
		{{10, 0}, {10, 5}},
		{{10, 10}, {5, 10}},
		{{0, 10}, {0, 5}},
	}
	if !equalSegments(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestGenerator_PatternRestartsPerContour(t *testing.T) {
	input := append(polyline(false, 0, 0, 4, 0), polyline(false, 0, 10, 4, 10)...)
	g := New(&sliceSource{vs: input})
	g.AddDash(3, 3)

	got := segments(drain(g))
	want := [][][2]float64{
		{{0, 0}, {3, 0}},
		{{0, 10}, {3, 10}},
	}
	if !equalSegments(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestGenerator_MultiplePairs(t *testing.T) {
	g := New(&sliceSource{vs: polyline(false, 0, 0, 10, 0)})
	g.AddDash(1, 1)
	g.AddDash(3, 1)

	if g.PatternLength() != 6 {
		t.Errorf("PatternLength = %v, want 6", g.PatternLength())
	}
	got := segments(drain(g))
	want := [][][2]float64{
		{{0, 0}, {1, 0}},
		{{2, 0}, {5, 0}},
		{{6, 0}, {7, 0}},
		{{8, 0}, {10, 0}},
	}
	if !equalSegments(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestGenerator_NoDashes(t *testing.T) {
	g := New(&sliceSource{vs: polyline(false, 0, 0, 10, 0)})
	if out := drain(g); len(out) != 0 {
		t.Errorf("no pattern should produce nothing, got %v", out)
	}

	g.AddDash(0, 0)
	if out := drain(g); len(out) != 0 {
		t.Errorf("zero-length pattern should produce nothing, got %v", out)
	}

	g.RemoveAllDashes()
	if g.PatternLength() != 0 {
		t.Errorf("PatternLength after RemoveAllDashes = %v", g.PatternLength())
	}
}

func TestGenerator_OutputIsLineOnly(t *testing.T) {
	g := New(&sliceSource{vs: polyline(true, 0, 0, 7, 1, 3, 9)})
	g.AddDash(1.5, 0.5)
	for _, v := range drain(g) {
		if !v.Cmd.IsMoveTo() && !v.Cmd.IsLineTo() {
			t.Fatalf("unexpected command %v", v.Cmd)
		}
	}
}
