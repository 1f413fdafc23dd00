package vpath

import (
	"testing"
)

func TestDefaultStrokeParams(t *testing.T) {
	s := DefaultStrokeParams()

	if s.Width != 1.0 {
		t.Errorf("Width = %v, want 1.0", s.Width)
	}
	if s.Cap != LineCapButt {
		t.Errorf("Cap = %v, want LineCapButt", s.Cap)
	}
	if s.Join != LineJoinMiter {
		t.Errorf("Join = %v, want LineJoinMiter", s.Join)
	}
	if s.MiterLimit != 4.0 {
		t.Errorf("MiterLimit = %v, want 4.0", s.MiterLimit)
	}
}

func TestStrokeParamsBuilders(t *testing.T) {
	base := DefaultStrokeParams()
	s := base.WithWidth(3).WithMiterLimit(2).WithJoin(LineJoinBevel).WithCap(LineCapSquare)

	want := StrokeParams{Width: 3, MiterLimit: 2, Join: LineJoinBevel, Cap: LineCapSquare}
	if s != want {
		t.Errorf("got %+v, want %+v", s, want)
	}
	if base != DefaultStrokeParams() {
		t.Error("builders modified the receiver")
	}
}

func TestRoundStrokeParams(t *testing.T) {
	s := RoundStrokeParams()
	if s.Cap != LineCapRound || s.Join != LineJoinRound {
		t.Errorf("cap/join = %v/%v, want round/round", s.Cap, s.Join)
	}
	if s.Width != 1 || s.MiterLimit != 4 {
		t.Errorf("width/miter = %v/%v, want defaults", s.Width, s.MiterLimit)
	}
}

// recordingStroker records how StrokeParams configure a generator.
type recordingStroker struct {
	VertexSource
	width, miter, scale float64
	join                LineJoin
	cap                 LineCap
}

func (r *recordingStroker) SetWidth(w float64)                  { r.width = w }
func (r *recordingStroker) SetMiterLimit(limit float64)         { r.miter = limit }
func (r *recordingStroker) SetLineJoin(j LineJoin)              { r.join = j }
func (r *recordingStroker) SetLineCap(c LineCap)                { r.cap = c }
func (r *recordingStroker) SetApproximationScale(scale float64) { r.scale = scale }

func TestStrokeParamsConfigure(t *testing.T) {
	r := &recordingStroker{}
	StrokeParams{Width: 5, MiterLimit: 1.5, Join: LineJoinRound, Cap: LineCapRound}.configure(r, 8)

	if r.width != 5 || r.miter != 1.5 || r.scale != 8 {
		t.Errorf("width/miter/scale = %v/%v/%v, want 5/1.5/8", r.width, r.miter, r.scale)
	}
	if r.join != LineJoinRound || r.cap != LineCapRound {
		t.Errorf("join/cap = %v/%v, want round/round", r.join, r.cap)
	}
}
