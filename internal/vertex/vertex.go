// Package vertex defines the command stream shared by paths and the
// geometry generators that consume and produce them.
package vertex

// Command tags a vertex. The low four bits hold the command, the upper
// bits carry flags (only meaningful together with EndPoly).
type Command uint32

// Commands.
const (
	Stop     Command = 0
	MoveTo   Command = 1
	LineTo   Command = 2
	Curve3   Command = 3
	Curve4   Command = 4
	Catrom   Command = 5
	UBSpline Command = 6
	EndPoly  Command = 0x0F

	// Mask selects the command bits.
	Mask Command = 0x0F
)

// Flags combined with EndPoly.
const (
	FlagCCW   Command = 0x10
	FlagCW    Command = 0x20
	FlagClose Command = 0x40
	FlagMask  Command = 0xF0
)

// Cmd returns c without its flag bits.
func (c Command) Cmd() Command { return c & Mask }

// Flags returns the flag bits of c.
func (c Command) Flags() Command { return c & FlagMask }

// IsStop reports whether c is the Stop marker.
func (c Command) IsStop() bool { return c.Cmd() == Stop }

// IsVertex reports whether c carries a coordinate (move, line, curve or
// spline control point).
func (c Command) IsVertex() bool {
	cmd := c.Cmd()
	return cmd >= MoveTo && cmd < EndPoly
}

// IsDrawing reports whether c is a vertex other than MoveTo.
func (c Command) IsDrawing() bool {
	cmd := c.Cmd()
	return cmd >= LineTo && cmd < EndPoly
}

// IsMoveTo reports whether c is MoveTo.
func (c Command) IsMoveTo() bool { return c.Cmd() == MoveTo }

// IsLineTo reports whether c is LineTo.
func (c Command) IsLineTo() bool { return c.Cmd() == LineTo }

// IsCurve reports whether c is a quadratic or cubic Bezier point.
func (c Command) IsCurve() bool {
	cmd := c.Cmd()
	return cmd == Curve3 || cmd == Curve4
}

// IsCurved reports whether c is any command that needs flattening.
func (c Command) IsCurved() bool {
	cmd := c.Cmd()
	return cmd > LineTo && cmd < EndPoly
}

// IsEndPoly reports whether c is an EndPoly marker.
func (c Command) IsEndPoly() bool { return c.Cmd() == EndPoly }

// IsClosed reports whether c is an EndPoly marker carrying FlagClose.
func (c Command) IsClosed() bool { return c.IsEndPoly() && c&FlagClose != 0 }

// String returns a short name for debugging and log output.
func (c Command) String() string {
	var s string
	switch c.Cmd() {
	case Stop:
		s = "Stop"
	case MoveTo:
		s = "MoveTo"
	case LineTo:
		s = "LineTo"
	case Curve3:
		s = "Curve3"
	case Curve4:
		s = "Curve4"
	case Catrom:
		s = "Catrom"
	case UBSpline:
		s = "UBSpline"
	case EndPoly:
		s = "EndPoly"
		if c&FlagClose != 0 {
			s += "|Close"
		}
	default:
		s = "Unknown"
	}
	return s
}

// Vertex is one (command, x, y) triple of a path.
type Vertex struct {
	Cmd  Command
	X, Y float64
}

// Source is a pull iterator over a vertex stream.
//
// Rewind positions the stream at the given vertex index (0 is the start).
// Vertex returns the next command and its coordinates, and returns Stop
// once the stream is exhausted.
type Source interface {
	Rewind(index int)
	Vertex() (cmd Command, x, y float64)
}
