package vpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingSource emits n LineTo vertices.
type countingSource struct {
	n, pos int
}

func (s *countingSource) Rewind(index int) { s.pos = index }

func (s *countingSource) Vertex() (Command, float64, float64) {
	if s.pos >= s.n {
		return CmdStop, 0, 0
	}
	s.pos++
	return CmdLineTo, float64(s.pos), 0
}

func TestPathSource(t *testing.T) {
	p := build(t, triangle)
	src := NewPathSource(p)

	var got []Vertex
	src.Rewind(0)
	for cmd, x, y := src.Vertex(); !cmd.IsStop(); cmd, x, y = src.Vertex() {
		got = append(got, vtx(cmd, x, y))
	}
	assert.Equal(t, p.Vertices(), got)

	src.Rewind(2)
	cmd, x, y := src.Vertex()
	assert.Equal(t, vtx(CmdLineTo, 10, 10), vtx(cmd, x, y))

	src.Rewind(-3)
	cmd, _, _ = src.Vertex()
	assert.Equal(t, CmdMoveTo, cmd)
}

func TestPathSourceSnapshot(t *testing.T) {
	p := build(t, triangle)
	src := NewPathSource(p)
	p.Translate(100, 0)
	require.NoError(t, p.LineTo(0, 0))

	dst := NewPath()
	require.NoError(t, Drain(dst, src))
	assert.Equal(t, 4, dst.Len())
	assert.Equal(t, vtx(CmdLineTo, 10, 0), dst.At(1))
}

func TestDrain(t *testing.T) {
	tests := []struct {
		name string
		n    int
	}{
		{"empty", 0},
		{"one", 1},
		{"exact chunk", drainChunk},
		{"several chunks", drainChunk*3 + 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := build(t, func(p *Path) error { return p.MoveTo(-1, -1) })
			require.NoError(t, Drain(dst, &countingSource{n: tt.n, pos: 5}))

			require.Equal(t, tt.n+1, dst.Len())
			assert.Equal(t, vtx(CmdMoveTo, -1, -1), dst.At(0))
			if tt.n > 0 {
				assert.Equal(t, vtx(CmdLineTo, 1, 0), dst.At(1), "Drain rewinds the source")
				assert.Equal(t, vtx(CmdLineTo, float64(tt.n), 0), dst.At(tt.n))
			}
		})
	}
}

func TestDrainOutOfMemory(t *testing.T) {
	orig := MaxVertices
	t.Cleanup(func() { MaxVertices = orig })
	MaxVertices = 16

	dst := build(t, triangle)
	err := Drain(dst, &countingSource{n: 20})
	require.ErrorIs(t, err, ErrOutOfMemory)
	assert.Equal(t, 4, dst.Len(), "dst keeps its previous vertices")

	require.NoError(t, Drain(dst, &countingSource{n: 12}))
	assert.Equal(t, 16, dst.Len())
}

func TestDrainClassifiesLazily(t *testing.T) {
	dst := NewPath()
	require.NoError(t, Drain(dst, NewPathSource(unitCircle(t))))
	assert.Equal(t, TypeHasCurves, dst.Type())
}
