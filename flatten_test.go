package vpath

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unitCircle(t testing.TB) *Path {
	t.Helper()
	return build(t, func(p *Path) error { return p.AddEllipse(R(-1, -1, 2, 2)) })
}

func assertLineOnly(t *testing.T, p *Path) {
	t.Helper()
	for i, v := range p.Vertices() {
		if v.Cmd.IsCurved() {
			t.Fatalf("vertex %d is %v after flattening", i, v.Cmd)
		}
	}
	assert.Equal(t, TypeLineOnly, p.Type())
}

func TestFlattenLineOnlyShares(t *testing.T) {
	p := build(t, triangle)
	dst := NewPath()
	require.NoError(t, p.FlattenTo(dst, 1))

	assert.True(t, dst.Same(p), "line-only input is shared, not copied")
	assert.Equal(t, p.Vertices(), dst.Vertices())

	require.NoError(t, p.Flatten(1))
	assert.True(t, dst.Same(p))
}

func TestFlattenCircle(t *testing.T) {
	for _, scale := range []float64{0.5, 1, 4, 100} {
		p := unitCircle(t)
		require.NoError(t, p.Flatten(scale))
		assertLineOnly(t, p)

		vs := p.Vertices()
		require.Greater(t, len(vs), 3)
		assert.Equal(t, CmdMoveTo, vs[0].Cmd)
		assert.True(t, vs[len(vs)-1].Cmd.IsClosed())

		tol := 0.5 / scale
		for i, v := range vs {
			if !v.Cmd.IsVertex() {
				continue
			}
			r := math.Hypot(v.X, v.Y)
			assert.LessOrEqual(t, math.Abs(r-1), tol+1e-3, "vertex %d off the circle", i)
			if i > 0 && vs[i-1].Cmd.IsVertex() {
				mx, my := (v.X+vs[i-1].X)/2, (v.Y+vs[i-1].Y)/2
				assert.LessOrEqual(t, 1-math.Hypot(mx, my), tol+1e-3,
					"segment %d deviates from the circle at scale %v", i, scale)
			}
		}
	}
}

func TestFlattenDensityGrowsWithScale(t *testing.T) {
	coarse := unitCircle(t)
	fine := unitCircle(t)
	require.NoError(t, coarse.Flatten(1))
	require.NoError(t, fine.Flatten(100))
	assert.Greater(t, fine.Len(), coarse.Len())
}

func TestFlattenIdempotent(t *testing.T) {
	p := unitCircle(t)
	require.NoError(t, p.Flatten(10))
	once := p.Vertices()

	require.NoError(t, p.Flatten(10))
	assert.Equal(t, once, p.Vertices())
}

func TestFlattenToLeavesSourceUnchanged(t *testing.T) {
	p := unitCircle(t)
	before := p.Vertices()

	dst := build(t, triangle)
	require.NoError(t, p.FlattenTo(dst, 2))

	assert.Equal(t, before, p.Vertices())
	assert.Equal(t, TypeHasCurves, p.Type())
	assertLineOnly(t, dst)
	if diff := cmp.Diff(vtx(CmdMoveTo, 1, 0), dst.At(0), approx); diff != "" {
		t.Errorf("previous contents should be replaced (-want +got):\n%s", diff)
	}
}

func TestFlattenSplines(t *testing.T) {
	tests := []struct {
		name     string
		cmd      Command
		wantX    float64
		wantY    float64
		wantNext Vertex
	}{
		{"catrom", CmdCatrom, 2, 0, vtx(CmdLineTo, 4, 4)},
		{"ubspline", CmdUBSpline, 2, 1.0 / 3, vtx(CmdLineTo, 4, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Borrow([]Vertex{
				vtx(CmdMoveTo, 0, 0),
				vtx(tt.cmd, 1, 1), vtx(tt.cmd, 2, 0), vtx(tt.cmd, 3, 1),
				vtx(CmdLineTo, 4, 4),
			})
			dst := NewPath()
			require.NoError(t, p.FlattenTo(dst, 10))
			assertLineOnly(t, dst)

			vs := dst.Vertices()
			require.GreaterOrEqual(t, len(vs), 3)
			end := vs[len(vs)-2]
			assert.InDelta(t, tt.wantX, end.X, 1e-9)
			assert.InDelta(t, tt.wantY, end.Y, 1e-9)
			assert.Equal(t, tt.wantNext, vs[len(vs)-1])
		})
	}
}

func TestFlattenZeroesMarkers(t *testing.T) {
	p := Borrow([]Vertex{
		vtx(CmdMoveTo, 0, 0),
		vtx(CmdCurve3, 5, 5), vtx(CmdCurve3, 10, 0),
		vtx(CmdEndPoly|FlagClose|FlagCCW, 7, 7),
		vtx(CmdStop, 3, 3),
		vtx(CmdMoveTo, 20, 20),
	})
	require.NoError(t, p.Flatten(1))

	var markers []Vertex
	for _, v := range p.Vertices() {
		if !v.Cmd.IsVertex() {
			markers = append(markers, v)
		}
	}
	want := []Vertex{vtx(CmdEndPoly|FlagClose|FlagCCW, 0, 0), vtx(CmdStop, 0, 0)}
	assert.Equal(t, want, markers)

	last, _ := p.LastVertex()
	assert.Equal(t, vtx(CmdMoveTo, 20, 20), last)
}

func TestFlattenMalformedRun(t *testing.T) {
	tests := []struct {
		name string
		vs   []Vertex
	}{
		{"truncated quadratic", []Vertex{vtx(CmdMoveTo, 0, 0), vtx(CmdCurve3, 1, 1)}},
		{"truncated cubic", []Vertex{vtx(CmdMoveTo, 0, 0), vtx(CmdCurve4, 1, 1), vtx(CmdCurve4, 2, 2)}},
		{"mixed run", []Vertex{vtx(CmdMoveTo, 0, 0), vtx(CmdCurve4, 1, 1), vtx(CmdCurve3, 2, 2), vtx(CmdCurve4, 3, 3)}},
		{"interrupted catrom", []Vertex{vtx(CmdCatrom, 0, 0), vtx(CmdLineTo, 1, 1), vtx(CmdCatrom, 2, 2)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Borrow(tt.vs)
			dst := build(t, triangle)
			err := p.FlattenTo(dst, 1)
			require.ErrorIs(t, err, ErrInvalidPath)
			assert.True(t, dst.IsEmpty())

			err = p.Flatten(1)
			require.ErrorIs(t, err, ErrInvalidPath)
			if diff := cmp.Diff(tt.vs, p.Vertices()); diff != "" {
				t.Errorf("failed self-flatten changed the path (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFlattenWithMatrix(t *testing.T) {
	t.Run("line only", func(t *testing.T) {
		p := build(t, triangle)
		dst := NewPath()
		require.NoError(t, p.FlattenTo(dst, 1, WithMatrix(Translate(1, 2))))

		assert.Equal(t, vtx(CmdMoveTo, 0, 0), p.At(0), "source is not transformed")
		assert.Equal(t, vtx(CmdMoveTo, 1, 2), dst.At(0))
		assert.Equal(t, vtx(CmdLineTo, 11, 2), dst.At(1))
		assert.Equal(t, vtx(CmdEndPoly|FlagClose, 0, 0), dst.At(3))
	})

	t.Run("curved", func(t *testing.T) {
		p := unitCircle(t)
		plain, scaled := NewPath(), NewPath()
		require.NoError(t, p.FlattenTo(plain, 4))
		require.NoError(t, p.FlattenTo(scaled, 4, WithMatrix(Scale(3, 3))))

		plain.Scale(3, 3, false)
		if diff := cmp.Diff(plain.Vertices(), scaled.Vertices(), approx); diff != "" {
			t.Errorf("matrix output mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestFlattenAngleTolerance(t *testing.T) {
	plain := unitCircle(t)
	tight := unitCircle(t)
	require.NoError(t, plain.Flatten(1))
	require.NoError(t, tight.Flatten(1, WithAngleTolerance(0.05)))
	assertLineOnly(t, tight)
	assert.GreaterOrEqual(t, tight.Len(), plain.Len())
}

func BenchmarkFlattenCircle(b *testing.B) {
	src := unitCircle(b)
	dst := NewPath()
	b.ResetTimer()
	for range b.N {
		_ = src.FlattenTo(dst, 100)
	}
}
