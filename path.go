package vpath

import (
	"fmt"
	"log/slog"
	"runtime"
)

// Path is a copy-on-write handle to a vertex buffer.
//
// Clone and Set share the buffer between handles; the first mutation
// through a handle whose buffer is shared copies it. Handles created with
// NewPath release their reference when garbage-collected. The zero value
// is an empty path.
//
// A Path must not be copied by value after first use; use Clone or Set to
// share vertices. Using a copy panics.
//
// A single Path must not be mutated from multiple goroutines at once.
// Distinct handles sharing one buffer may be used from different
// goroutines.
type Path struct {
	addr *Path // of the receiver, to detect copies by value
	h    *holder
}

// holder is the cleanup target of a Path. The cleanup must not reference
// the Path itself.
type holder struct {
	d *buffer
}

func releaseHolder(h *holder) {
	if h.d != nil {
		h.d.deref()
		h.d = nil
	}
}

func newHandle(d *buffer) *Path {
	p := &Path{h: &holder{d: d}}
	p.addr = p
	runtime.AddCleanup(p, releaseHolder, p.h)
	return p
}

// NewPath returns an empty path backed by the shared empty buffer.
func NewPath() *Path {
	return newHandle(sharedEmpty.refAlways())
}

// Borrow returns a path that uses vs as its storage. The caller's slice is
// written in place while the path is its sole owner; sharing the path
// through Clone or Set copies the vertices instead.
func Borrow(vs []Vertex) *Path {
	return newHandle(borrowBuffer(vs))
}

func (p *Path) copyCheck() {
	if p.addr == nil {
		p.addr = p
	} else if p.addr != p {
		panic("vpath: illegal use of non-zero Path copied by value")
	}
}

func (p *Path) buf() *buffer {
	p.copyCheck()
	if p.h == nil {
		p.h = &holder{d: sharedEmpty.refAlways()}
	}
	return p.h.d
}

// swap installs d, dropping the reference to the previous buffer.
func (p *Path) swap(d *buffer) {
	old := p.buf()
	p.h.d = d
	old.deref()
}

// Clone returns a new handle sharing p's buffer.
func (p *Path) Clone() *Path {
	return newHandle(p.buf().ref())
}

// Len returns the number of vertices.
func (p *Path) Len() int {
	return len(p.buf().data)
}

// Cap returns the number of vertices p can hold without reallocating.
func (p *Path) Cap() int {
	return cap(p.buf().data)
}

// IsEmpty reports whether p holds no vertices.
func (p *Path) IsEmpty() bool {
	return p.Len() == 0
}

// At returns the i-th vertex.
func (p *Path) At(i int) Vertex {
	return p.buf().data[i]
}

// Vertices returns a copy of the vertices.
func (p *Path) Vertices() []Vertex {
	src := p.buf().data
	out := make([]Vertex, len(src))
	copy(out, src)
	return out
}

// Same reports whether p and q share one buffer. Handle equality is by
// reference only.
func (p *Path) Same(q *Path) bool {
	return p.buf() == q.buf()
}

// IsDetached reports whether p is the only handle referencing its buffer.
func (p *Path) IsDetached() bool {
	return p.buf().refs.Load() == 1
}

// Detach makes p the sole owner of its buffer, copying it when shared.
func (p *Path) Detach() {
	d := p.buf()
	if d.refs.Load() == 1 {
		return
	}
	p.swap(d.copy())
}

// detach is Detach followed by a generation bump, used before in-place
// edits of existing vertices.
func (p *Path) detach() *buffer {
	p.Detach()
	d := p.buf()
	d.gen++
	return d
}

// Type returns the command classification of p, computing and caching it
// on first use.
func (p *Path) Type() Type {
	d := p.buf()
	if t := d.typ(); t != TypeUnknown {
		return t
	}
	t := TypeLineOnly
	for _, v := range d.data {
		if v.Cmd.IsCurved() {
			t = TypeHasCurves
			break
		}
	}
	d.setType(t)
	return t
}

// Reserve ensures capacity for at least n vertices.
func (p *Path) Reserve(n int) error {
	d := p.buf()
	if d.refs.Load() == 1 && cap(d.data) >= n {
		return nil
	}
	n = max(n, len(d.data))
	nd, err := allocBuffer(n)
	if err != nil {
		return err
	}
	nd.data = nd.data[:len(d.data)]
	copy(nd.data, d.data)
	nd.kind.Store(d.kind.Load())
	p.swap(nd)
	return nil
}

// Squeeze shrinks the capacity of a sole-owned buffer to its length.
func (p *Path) Squeeze() error {
	d := p.buf()
	if len(d.data) == cap(d.data) {
		return nil
	}
	if d.refs.Load() != 1 {
		p.swap(d.copy())
		return nil
	}
	nd, err := d.realloc(len(d.data))
	if err != nil {
		return err
	}
	p.h.d = nd
	return nil
}

// Set makes p share q's buffer. When q's storage is not shareable the
// vertices are copied.
func (p *Path) Set(q *Path) {
	if p.buf() == q.buf() {
		return
	}
	p.swap(q.buf().ref())
}

// SetDeep copies q's vertices into p's own buffer.
func (p *Path) SetDeep(q *Path) error {
	src := q.buf()
	if p.buf() == src {
		return nil
	}
	if len(src.data) == 0 {
		p.Clear()
		return nil
	}
	p.Clear()
	if err := p.Reserve(len(src.data)); err != nil {
		return err
	}
	d := p.buf()
	d.data = d.data[:len(src.data)]
	copy(d.data, src.data)
	d.setType(src.typ())
	d.gen++
	return nil
}

// Clear removes all vertices. A sole-owned buffer keeps its storage.
func (p *Path) Clear() {
	d := p.buf()
	if d == sharedEmpty {
		return
	}
	if d.refs.Load() > 1 {
		p.swap(sharedEmpty.refAlways())
		return
	}
	d.data = d.data[:0]
	d.setType(TypeLineOnly)
	d.gen++
}

// Free removes all vertices and releases the storage.
func (p *Path) Free() {
	if p.buf() == sharedEmpty {
		return
	}
	p.swap(sharedEmpty.refAlways())
}

// add appends count zeroed vertices and returns them for writing.
func (p *Path) add(count int) ([]Vertex, error) {
	d := p.buf()
	length := len(d.data)

	if d.refs.Load() == 1 && cap(d.data)-length >= count {
		d.data = d.data[:length+count]
		d.gen++
		return d.data[length:], nil
	}

	if count > MaxVertices-length {
		return nil, fmt.Errorf("%w: %d vertices plus %d exceeds %d", ErrOutOfMemory, length, count, MaxVertices)
	}
	c := optimalCapacity(length, length+count)
	if c*vertexSize > growLimit {
		Logger().Debug("vpath: grow buffer",
			slog.Int("length", length),
			slog.Int("capacity", c))
	}
	nd, err := allocBuffer(c)
	if err != nil {
		return nil, err
	}
	nd.data = nd.data[:length+count]
	copy(nd.data, d.data)
	nd.kind.Store(d.kind.Load())
	p.swap(nd)
	return nd.data[length:], nil
}

// truncate drops vertices past n, used to roll back a partial write.
func (p *Path) truncate(n int) {
	d := p.buf()
	if n < len(d.data) && d.refs.Load() == 1 {
		d.data = d.data[:n]
	}
}

func (p *Path) last() (Vertex, bool) {
	d := p.buf().data
	if len(d) == 0 {
		return Vertex{}, false
	}
	return d[len(d)-1], true
}

// LastVertex returns the final vertex and whether one exists.
func (p *Path) LastVertex() (Vertex, bool) {
	return p.last()
}

// lastPoint returns the position of the last vertex when it is drawable.
func (p *Path) lastPoint() (x, y float64, ok bool) {
	v, ok := p.last()
	if !ok || !v.Cmd.IsVertex() {
		return 0, 0, false
	}
	return v.X, v.Y, true
}

// adopt moves q's buffer reference into p and leaves q empty. Reference
// counts are unchanged, so p becomes the sole owner when q was.
func (p *Path) adopt(q *Path) {
	d := q.buf()
	q.h.d = sharedEmpty.refAlways()
	p.swap(d)
}
