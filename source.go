package vpath

import (
	"log/slog"

	"github.com/gogpu/vpath/internal/vertex"
)

// VertexSource is a pull iterator over a vertex stream.
//
// Rewind positions the stream at a vertex index (0 is the start). Vertex
// returns the next command with its coordinates and returns CmdStop once
// the stream is exhausted. Paths, stroke generators and dash generators all
// speak this protocol.
type VertexSource = vertex.Source

const (
	drainChunk    = 1024
	drainChunkMax = 1 << 20
)

// PathSource exposes a path as a VertexSource.
//
// The source holds its own reference to the path's buffer, so later edits
// of the path do not affect an iteration in progress.
type PathSource struct {
	p   *Path
	pos int
}

// NewPathSource returns a vertex source reading p.
func NewPathSource(p *Path) *PathSource {
	return &PathSource{p: p.Clone()}
}

// Rewind positions the source at vertex index.
func (s *PathSource) Rewind(index int) {
	s.pos = max(index, 0)
}

// Vertex returns the next vertex, or CmdStop at the end of the path.
func (s *PathSource) Vertex() (Command, float64, float64) {
	data := s.p.buf().data
	if s.pos >= len(data) {
		return CmdStop, 0, 0
	}
	v := data[s.pos]
	s.pos++
	return v.Cmd, v.X, v.Y
}

// release drops the source's buffer reference.
func (s *PathSource) release() {
	s.p.Free()
}

// Drain rewinds src and appends its vertices to dst until src reports
// CmdStop. Storage grows in chunks that start at 1024 vertices and double
// up to 1<<20, then stay at that size.
//
// On error dst keeps the vertices it held before the call.
func Drain(dst *Path, src VertexSource) error {
	start := dst.Len()
	chunk := drainChunk
	src.Rewind(0)

	var w []Vertex
	n := 0
	for {
		cmd, x, y := src.Vertex()
		if cmd.IsStop() {
			break
		}
		if n == len(w) {
			v, err := dst.add(max(min(chunk, MaxVertices-dst.Len()), 1))
			if err != nil {
				dst.truncate(start)
				return err
			}
			w, n = v, 0
			chunk = min(chunk*2, drainChunkMax)
		}
		w[n] = Vertex{Cmd: cmd, X: x, Y: y}
		n++
	}
	dst.truncate(dst.Len() - (len(w) - n))

	if dst.Len() > start {
		dst.buf().setType(TypeUnknown)
	}
	Logger().Debug("vpath: drained vertex source",
		slog.Int("vertices", dst.Len()-start))
	return nil
}
