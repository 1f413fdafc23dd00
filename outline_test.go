package vpath

import (
	"testing"

	"github.com/go-text/typesetting/font/opentype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

func fx(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: floatToFixed(x), Y: floatToFixed(y)}
}

func glyphSegments() sfnt.Segments {
	return sfnt.Segments{
		{Op: sfnt.SegmentOpMoveTo, Args: [3]fixed.Point26_6{fx(0, 0)}},
		{Op: sfnt.SegmentOpLineTo, Args: [3]fixed.Point26_6{fx(4, 0)}},
		{Op: sfnt.SegmentOpQuadTo, Args: [3]fixed.Point26_6{fx(4, 4), fx(0, 4)}},
		{Op: sfnt.SegmentOpMoveTo, Args: [3]fixed.Point26_6{fx(1, 1)}},
		{Op: sfnt.SegmentOpCubeTo, Args: [3]fixed.Point26_6{fx(1.5, 2), fx(2.5, 2), fx(3, 1)}},
	}
}

func TestAddSegments(t *testing.T) {
	p := NewPath()
	require.NoError(t, p.AddSegments(glyphSegments()))

	want := []Vertex{
		vtx(CmdMoveTo, 0, 0), vtx(CmdLineTo, 4, 0),
		vtx(CmdCurve3, 4, 4), vtx(CmdCurve3, 0, 4),
		vtx(CmdEndPoly|FlagClose, 0, 0),
		vtx(CmdMoveTo, 1, 1),
		vtx(CmdCurve4, 1.5, 2), vtx(CmdCurve4, 2.5, 2), vtx(CmdCurve4, 3, 1),
		vtx(CmdEndPoly|FlagClose, 0, 0),
	}
	assert.Equal(t, want, p.Vertices())
}

func TestAddSegmentsKeepsExistingContourOpen(t *testing.T) {
	p := build(t, func(p *Path) error {
		if err := p.MoveTo(-5, -5); err != nil {
			return err
		}
		return p.LineTo(-4, -4)
	})
	require.NoError(t, p.AddSegments(glyphSegments()[:2]))

	assert.Equal(t, vtx(CmdMoveTo, 0, 0), p.At(2), "the caller's contour is not closed")
	assert.Equal(t, 5, p.Len())
}

func TestAppendSegmentsRoundTrip(t *testing.T) {
	p := NewPath()
	require.NoError(t, p.AddSegments(glyphSegments()))

	segs, err := p.AppendSegments(nil)
	require.NoError(t, err)
	assert.Equal(t, glyphSegments(), segs)
}

func TestAppendSegmentsRounds(t *testing.T) {
	p := build(t, func(p *Path) error { return p.MoveTo(1.0/128+0.001, -2) })
	segs, err := p.AppendSegments(nil)
	require.NoError(t, err)
	require.Len(t, segs, 1)
	assert.Equal(t, fixed.Int26_6(1), segs[0].Args[0].X)
	assert.Equal(t, fixed.Int26_6(-128), segs[0].Args[0].Y)
}

func TestAppendSegmentsRejectsSplines(t *testing.T) {
	p := Borrow([]Vertex{vtx(CmdMoveTo, 0, 0), vtx(CmdUBSpline, 1, 1), vtx(CmdUBSpline, 2, 2), vtx(CmdUBSpline, 3, 3)})
	prefix := sfnt.Segments{{Op: sfnt.SegmentOpMoveTo}}
	segs, err := p.AppendSegments(prefix)
	assert.ErrorIs(t, err, ErrInvalidPath)
	assert.Len(t, segs, 2, "segments before the failure are kept")
}

func TestAddOpenTypeOutline(t *testing.T) {
	pt := func(x, y float32) opentype.SegmentPoint { return opentype.SegmentPoint{X: x, Y: y} }
	segs := []opentype.Segment{
		{Op: opentype.SegmentOpMoveTo, Args: [3]opentype.SegmentPoint{pt(0, 0)}},
		{Op: opentype.SegmentOpLineTo, Args: [3]opentype.SegmentPoint{pt(100, 0)}},
		{Op: opentype.SegmentOpCubeTo, Args: [3]opentype.SegmentPoint{pt(100, 50), pt(50, 100), pt(0, 100)}},
	}

	t.Run("font units", func(t *testing.T) {
		p := NewPath()
		require.NoError(t, p.AddOpenTypeOutline(segs, nil))
		require.Equal(t, 6, p.Len())
		assert.Equal(t, vtx(CmdCurve4, 50, 100), p.At(3))
		assert.True(t, p.At(5).Cmd.IsClosed())
	})

	t.Run("scaled and flipped", func(t *testing.T) {
		p := NewPath()
		require.NoError(t, p.AddOpenTypeOutline(segs, Translate(10, 20).Multiply(Scale(0.01, -0.01))))
		line := p.At(1)
		assert.InDelta(t, 11, line.X, 1e-9)
		assert.InDelta(t, 20, line.Y, 1e-9)
		last := p.At(4)
		assert.InDelta(t, 10, last.X, 1e-9)
		assert.InDelta(t, 19, last.Y, 1e-9)
	})
}
