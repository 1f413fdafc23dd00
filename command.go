package vpath

import "github.com/gogpu/vpath/internal/vertex"

// Command tags a vertex with its path command and, for EndPoly, flags.
type Command = vertex.Command

// Vertex is one (command, x, y) triple of a path.
type Vertex = vertex.Vertex

// Path commands.
const (
	CmdStop     = vertex.Stop
	CmdMoveTo   = vertex.MoveTo
	CmdLineTo   = vertex.LineTo
	CmdCurve3   = vertex.Curve3
	CmdCurve4   = vertex.Curve4
	CmdCatrom   = vertex.Catrom
	CmdUBSpline = vertex.UBSpline
	CmdEndPoly  = vertex.EndPoly
	CmdMask     = vertex.Mask
)

// EndPoly flags.
const (
	FlagCCW   = vertex.FlagCCW
	FlagCW    = vertex.FlagCW
	FlagClose = vertex.FlagClose
	FlagMask  = vertex.FlagMask
)

// Type classifies the commands held by a path.
type Type uint32

const (
	// TypeUnknown means the classification has not been computed yet.
	TypeUnknown Type = iota
	// TypeLineOnly paths hold no curve commands.
	TypeLineOnly
	// TypeHasCurves paths hold at least one curve or spline command.
	TypeHasCurves
)

// String returns the name of t.
func (t Type) String() string {
	switch t {
	case TypeLineOnly:
		return "LineOnly"
	case TypeHasCurves:
		return "HasCurves"
	default:
		return "Unknown"
	}
}
