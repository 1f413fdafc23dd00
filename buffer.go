package vpath

import (
	"fmt"
	"sync/atomic"
	"unsafe"
)

// MaxVertices is the largest vertex count a single buffer may hold.
// Growth beyond it fails with ErrOutOfMemory.
var MaxVertices = 1 << 28

const (
	vertexSize = int(unsafe.Sizeof(Vertex{}))

	// growLimit is the byte size up to which capacity doubles; past it the
	// buffer grows by growLimit bytes at a time.
	growLimit = 1 << 20

	minCapacity = 8
)

type bufferFlags uint8

const (
	// flagDynamic marks storage allocated by the package.
	flagDynamic bufferFlags = 1 << iota
	// flagSharable allows ref() to share the buffer instead of copying it.
	flagSharable
)

// buffer is the reference-counted vertex storage behind a Path.
//
// len(data) is the vertex count and cap(data) the capacity. A buffer is
// written in place only by a handle that observes refs == 1.
type buffer struct {
	refs  atomic.Int32
	kind  atomic.Uint32 // cached Type
	flags bufferFlags

	// gen changes on every in-place mutation.
	gen uint64

	data []Vertex
}

// sharedEmpty backs every empty path. Its capacity is zero, so add never
// writes into it.
var sharedEmpty = newSharedEmpty()

func newSharedEmpty() *buffer {
	d := &buffer{flags: flagSharable, data: []Vertex{}}
	d.refs.Store(1)
	d.kind.Store(uint32(TypeLineOnly))
	return d
}

// allocBuffer returns a fresh buffer with room for capacity vertices.
func allocBuffer(capacity int) (*buffer, error) {
	if capacity < 0 || capacity > MaxVertices {
		return nil, fmt.Errorf("%w: capacity %d exceeds %d vertices", ErrOutOfMemory, capacity, MaxVertices)
	}
	d := &buffer{
		flags: flagDynamic | flagSharable,
		data:  make([]Vertex, 0, capacity),
	}
	d.refs.Store(1)
	d.kind.Store(uint32(TypeLineOnly))
	return d, nil
}

// borrowBuffer wraps caller storage. The result is never shared.
func borrowBuffer(vs []Vertex) *buffer {
	d := &buffer{data: vs}
	d.refs.Store(1)
	d.kind.Store(uint32(TypeUnknown))
	return d
}

func (d *buffer) refAlways() *buffer {
	d.refs.Add(1)
	return d
}

// ref shares d, or deep-copies it when d is not sharable.
func (d *buffer) ref() *buffer {
	if d.flags&flagSharable != 0 {
		return d.refAlways()
	}
	return d.copy()
}

// deref drops one reference. Storage of a dynamic buffer is released when
// the last reference goes away.
func (d *buffer) deref() {
	if d.refs.Add(-1) == 0 && d.flags&flagDynamic != 0 {
		d.data = nil
	}
}

// copy returns a sole-owned deep copy of d. Copying existing storage is
// never refused, so MaxVertices is not consulted.
func (d *buffer) copy() *buffer {
	if len(d.data) == 0 {
		return sharedEmpty.refAlways()
	}
	nd := &buffer{
		flags: flagDynamic | flagSharable,
		data:  make([]Vertex, len(d.data)),
	}
	copy(nd.data, d.data)
	nd.refs.Store(1)
	nd.kind.Store(d.kind.Load())
	return nd
}

// realloc resizes d to capacity, keeping the first min(len, capacity)
// vertices. Storage that is not dynamic or is shared is copied into a new
// buffer and d is dereferenced.
func (d *buffer) realloc(capacity int) (*buffer, error) {
	n := min(len(d.data), capacity)
	if d.flags&flagDynamic != 0 && d.refs.Load() == 1 {
		if capacity > MaxVertices {
			return nil, fmt.Errorf("%w: capacity %d exceeds %d vertices", ErrOutOfMemory, capacity, MaxVertices)
		}
		data := make([]Vertex, n, capacity)
		copy(data, d.data)
		d.data = data
		d.gen++
		return d, nil
	}

	nd, err := allocBuffer(capacity)
	if err != nil {
		return nil, err
	}
	nd.data = nd.data[:n]
	copy(nd.data, d.data)
	nd.kind.Store(d.kind.Load())
	d.deref()
	return nd, nil
}

func (d *buffer) typ() Type {
	return Type(d.kind.Load())
}

func (d *buffer) setType(t Type) {
	d.kind.Store(uint32(t))
}

// optimalCapacity returns the capacity to allocate when a buffer holding
// length vertices must grow to hold needed vertices.
func optimalCapacity(length, needed int) int {
	if needed <= length {
		return needed
	}
	size := max(length, minCapacity) * vertexSize
	want := needed * vertexSize
	for size < want {
		if size < growLimit {
			size *= 2
		} else {
			size += growLimit
		}
	}
	c := size / vertexSize
	if c > MaxVertices {
		c = MaxVertices
	}
	if c < needed {
		c = needed
	}
	return c
}
