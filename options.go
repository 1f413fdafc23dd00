package vpath

// FlattenOption configures Flatten and FlattenTo.
//
// Example:
//
//	err := p.Flatten(4, vpath.WithAngleTolerance(0.1), vpath.WithMatrix(vpath.Rotate(math.Pi/4)))
type FlattenOption func(*flattenOptions)

type flattenOptions struct {
	angleTolerance float64
	cuspLimit      float64
	matrix         Transformer
}

// WithAngleTolerance enables the angle test of curve subdivision. The
// tolerance is in radians; 0 disables it.
func WithAngleTolerance(rad float64) FlattenOption {
	return func(o *flattenOptions) {
		o.angleTolerance = rad
	}
}

// WithCuspLimit enables the cusp test of cubic subdivision. The limit is
// in radians; 0 disables it.
func WithCuspLimit(rad float64) FlattenOption {
	return func(o *flattenOptions) {
		o.cuspLimit = rad
	}
}

// WithMatrix transforms the flattened output with m.
func WithMatrix(m Transformer) FlattenOption {
	return func(o *flattenOptions) {
		o.matrix = m
	}
}

// OpOption configures Dash, DashTo, Stroke and StrokeTo.
//
// Example:
//
//	// Custom stroker (dependency injection)
//	err := p.Stroke(vpath.DefaultStrokeParams(), 1, vpath.WithStrokeGenerator(newMyStroker))
type OpOption func(*opOptions)

type opOptions struct {
	newStroker func(VertexSource) StrokeGenerator
	newDasher  func(VertexSource) DashGenerator
}

func defaultOpOptions() opOptions {
	return opOptions{
		newStroker: newDefaultStroker,
		newDasher:  newDefaultDasher,
	}
}

// WithStrokeGenerator replaces the stroke outline generator. The function
// receives the line-only source to stroke.
func WithStrokeGenerator(fn func(VertexSource) StrokeGenerator) OpOption {
	return func(o *opOptions) {
		if fn != nil {
			o.newStroker = fn
		}
	}
}

// WithDashGenerator replaces the dash generator. The function receives the
// line-only source to dash.
func WithDashGenerator(fn func(VertexSource) DashGenerator) OpOption {
	return func(o *opOptions) {
		if fn != nil {
			o.newDasher = fn
		}
	}
}
