package vpath

import "github.com/gogpu/vpath/internal/stroke"

// LineCap specifies the shape of open contour ends.
type LineCap = stroke.LineCap

const (
	// LineCapButt ends the outline flush with the endpoint.
	LineCapButt = stroke.LineCapButt
	// LineCapRound adds a half circle past the endpoint.
	LineCapRound = stroke.LineCapRound
	// LineCapSquare adds a half square past the endpoint.
	LineCapSquare = stroke.LineCapSquare
)

// LineJoin specifies the shape of the outline at interior vertices.
type LineJoin = stroke.LineJoin

const (
	// LineJoinMiter extends the outer edges to a point, up to the miter limit.
	LineJoinMiter = stroke.LineJoinMiter
	// LineJoinRound fills the corner with a circular arc.
	LineJoinRound = stroke.LineJoinRound
	// LineJoinBevel cuts the corner with a straight edge.
	LineJoinBevel = stroke.LineJoinBevel
)

// StrokeParams describes the outline produced by Stroke and StrokeTo.
type StrokeParams struct {
	// Width is the full outline width. Default: 1.0
	Width float64

	// MiterLimit is the miter length, in multiples of half the width,
	// beyond which a miter join becomes a bevel. Default: 4.0
	MiterLimit float64

	// Join is the shape of interior corners. Default: LineJoinMiter
	Join LineJoin

	// Cap is the shape of open contour ends. Default: LineCapButt
	Cap LineCap
}

// DefaultStrokeParams returns a 1-unit outline with butt caps and miter
// joins.
func DefaultStrokeParams() StrokeParams {
	return StrokeParams{
		Width:      1.0,
		MiterLimit: 4.0,
		Join:       LineJoinMiter,
		Cap:        LineCapButt,
	}
}

// WithWidth returns a copy of s with the given width.
func (s StrokeParams) WithWidth(w float64) StrokeParams {
	s.Width = w
	return s
}

// WithMiterLimit returns a copy of s with the given miter limit.
// A value of 1.0 effectively disables miter joins.
func (s StrokeParams) WithMiterLimit(limit float64) StrokeParams {
	s.MiterLimit = limit
	return s
}

// WithJoin returns a copy of s with the given join style.
func (s StrokeParams) WithJoin(join LineJoin) StrokeParams {
	s.Join = join
	return s
}

// WithCap returns a copy of s with the given cap style.
func (s StrokeParams) WithCap(lineCap LineCap) StrokeParams {
	s.Cap = lineCap
	return s
}

// RoundStrokeParams returns default params with round caps and joins.
func RoundStrokeParams() StrokeParams {
	return DefaultStrokeParams().WithCap(LineCapRound).WithJoin(LineJoinRound)
}

// StrokeGenerator turns line-only geometry into filled outline polygons.
// It reads the source it was constructed with and serves its output
// through the VertexSource methods.
type StrokeGenerator interface {
	VertexSource
	SetWidth(w float64)
	SetMiterLimit(limit float64)
	SetLineJoin(j LineJoin)
	SetLineCap(c LineCap)
	SetApproximationScale(scale float64)
}

// DashGenerator splits line-only geometry into dashes. It reads the source
// it was constructed with and serves its output through the VertexSource
// methods.
type DashGenerator interface {
	VertexSource
	AddDash(on, off float64)
	SetDashStart(offset float64)
}

func newDefaultStroker(src VertexSource) StrokeGenerator {
	return stroke.New(src)
}

func (s StrokeParams) configure(g StrokeGenerator, scale float64) {
	g.SetWidth(s.Width)
	g.SetMiterLimit(s.MiterLimit)
	g.SetLineJoin(s.Join)
	g.SetLineCap(s.Cap)
	g.SetApproximationScale(scale)
}
