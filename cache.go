package vpath

import (
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/vpath/internal/cache"
)

// DefaultFlattenCacheSize is the entry limit used by NewFlattenCache for a
// non-positive size.
const DefaultFlattenCacheSize = 256

type flattenKey struct {
	src   *buffer
	gen   uint64
	scale float64
}

// FlattenCache memoizes Flatten results by source buffer, buffer
// generation and scale. Editing a path changes its generation, so stale
// entries are never returned; they age out of the LRU. Paths created with
// Borrow are flattened without caching, since their storage can change
// behind the generation counter.
//
// Results share their storage with the cache and are detached on first
// mutation. FlattenCache is safe for concurrent use as long as the paths
// passed to it are not mutated concurrently.
type FlattenCache struct {
	entries *cache.Cache[flattenKey, *buffer]
	hits    atomic.Int64
	misses  atomic.Int64
}

// NewFlattenCache returns a cache holding at most size results.
func NewFlattenCache(size int) *FlattenCache {
	if size <= 0 {
		size = DefaultFlattenCacheSize
	}
	c := cache.New[flattenKey, *buffer](size)
	c.OnEvict(func(_ flattenKey, d *buffer) {
		d.deref()
	})
	return &FlattenCache{entries: c}
}

// Flatten returns p flattened at scale, reusing an earlier result for the
// same buffer contents when one is cached.
func (fc *FlattenCache) Flatten(p *Path, scale float64) (*Path, error) {
	src := p.buf()
	if src.flags&flagSharable == 0 {
		fc.misses.Add(1)
		out := NewPath()
		if err := p.FlattenTo(out, scale); err != nil {
			return nil, err
		}
		return out, nil
	}
	key := flattenKey{src: src, gen: src.gen, scale: scale}

	if d, ok := fc.entries.Get(key); ok {
		fc.hits.Add(1)
		Logger().Debug("vpath: flatten cache hit",
			slog.Float64("scale", scale),
			slog.Int("vertices", len(d.data)))
		return newHandle(d.ref()), nil
	}

	fc.misses.Add(1)
	out := NewPath()
	if err := p.FlattenTo(out, scale); err != nil {
		return nil, err
	}
	fc.entries.Set(key, out.buf().ref())
	Logger().Debug("vpath: flatten cache miss",
		slog.Float64("scale", scale),
		slog.Int("vertices", out.Len()),
		slog.Int("entries", fc.entries.Len()))
	return out, nil
}

// Stats returns the number of hits and misses so far.
func (fc *FlattenCache) Stats() (hits, misses int64) {
	return fc.hits.Load(), fc.misses.Load()
}

// Len returns the number of cached results.
func (fc *FlattenCache) Len() int {
	return fc.entries.Len()
}

// Clear drops every cached result.
func (fc *FlattenCache) Clear() {
	fc.entries.Clear()
}
