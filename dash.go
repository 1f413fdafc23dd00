package vpath

import (
	"math"

	"github.com/gogpu/vpath/internal/dash"
)

// Dash defines a dash pattern for Dash and DashTo.
// A dash pattern consists of alternating dash and gap lengths.
// For example, [5, 3] creates a pattern of 5 units dash, 3 units gap.
type Dash struct {
	// Array contains alternating dash/gap lengths. Elements are consumed in
	// pairs; an odd trailing element is ignored.
	Array []float64

	// Offset is the distance into the pattern at which every contour
	// starts.
	Offset float64
}

// NewDash creates a dash pattern from alternating dash/gap lengths.
// Negative lengths use their magnitude.
//
// Examples:
//
//	NewDash(5, 3)        // 5 units dash, 3 units gap
//	NewDash(10, 5, 2, 5) // 10 dash, 5 gap, 2 dash, 5 gap
//
// Returns nil if fewer than two lengths are provided or the pattern has
// zero length.
func NewDash(lengths ...float64) *Dash {
	if len(lengths) < 2 {
		return nil
	}
	normalized := make([]float64, len(lengths))
	for i, l := range lengths {
		normalized[i] = math.Abs(l)
	}
	d := &Dash{Array: normalized}
	if d.PatternLength() == 0 {
		return nil
	}
	return d
}

// WithOffset returns a new Dash with the given offset.
func (d *Dash) WithOffset(offset float64) *Dash {
	if d == nil {
		return nil
	}
	return &Dash{
		Array:  d.Array,
		Offset: offset,
	}
}

// pairs returns the even-length prefix of the array.
func (d *Dash) pairs() []float64 {
	if d == nil {
		return nil
	}
	return d.Array[:len(d.Array)&^1]
}

// PatternLength returns the total length of one pattern cycle, ignoring an
// odd trailing element.
func (d *Dash) PatternLength() float64 {
	var total float64
	for _, l := range d.pairs() {
		total += math.Abs(l)
	}
	return total
}

// IsDashed reports whether d describes a usable pattern.
func (d *Dash) IsDashed() bool {
	return d.PatternLength() > 0
}

// Clone creates a deep copy of the Dash.
func (d *Dash) Clone() *Dash {
	if d == nil {
		return nil
	}
	arrayCopy := make([]float64, len(d.Array))
	copy(arrayCopy, d.Array)
	return &Dash{
		Array:  arrayCopy,
		Offset: d.Offset,
	}
}

// Scale returns a new Dash with all lengths and the offset multiplied by
// factor. Non-positive factors return d unchanged.
func (d *Dash) Scale(factor float64) *Dash {
	if d == nil || factor <= 0 {
		return d
	}
	scaled := make([]float64, len(d.Array))
	for i, l := range d.Array {
		scaled[i] = l * factor
	}
	return &Dash{
		Array:  scaled,
		Offset: d.Offset * factor,
	}
}

func (d *Dash) configure(g DashGenerator) {
	p := d.pairs()
	for i := 0; i < len(p); i += 2 {
		g.AddDash(p[i], p[i+1])
	}
	if d != nil {
		g.SetDashStart(d.Offset)
	}
}

func newDefaultDasher(src VertexSource) DashGenerator {
	return dash.New(src)
}
