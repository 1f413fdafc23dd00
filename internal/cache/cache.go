package cache

import "sync"

// Cache is a thread-safe LRU cache holding at most limit entries.
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*lruNode[K, V]
	order   lruList[K, V]
	limit   int
	onEvict func(K, V)
}

// New creates a cache holding at most limit entries. A limit of 0 means
// unlimited.
func New[K comparable, V any](limit int) *Cache[K, V] {
	return &Cache[K, V]{
		entries: make(map[K]*lruNode[K, V]),
		limit:   max(limit, 0),
	}
}

// OnEvict registers fn to be called for every entry leaving the cache.
// fn runs with the cache lock held and must not call back into the cache.
func (c *Cache[K, V]) OnEvict(fn func(K, V)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onEvict = fn
}

// Get retrieves a value and marks it as recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	node, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.order.MoveToFront(node)
	return node.value, true
}

// Set stores a value, replacing any previous value for key, and evicts the
// least recently used entries while the cache is over its limit.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if node, ok := c.entries[key]; ok {
		old := node.value
		node.value = value
		c.order.MoveToFront(node)
		c.evicted(key, old)
		return
	}

	c.entries[key] = c.order.PushFront(key, value)
	for c.limit > 0 && c.order.Len() > c.limit {
		c.removeNode(c.order.Back())
	}
}

// GetOrCreate returns the cached value for key, or creates, stores and
// returns it. create runs without the lock held; concurrent misses on one
// key may each create, and the last stored value wins.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	if node, ok := c.entries[key]; ok {
		c.order.MoveToFront(node)
		c.mu.Unlock()
		return node.value
	}
	c.mu.Unlock()

	value := create()
	c.Set(key, value)
	return value
}

// Delete removes key from the cache.
func (c *Cache[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if node, ok := c.entries[key]; ok {
		c.removeNode(node)
	}
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Clear removes all entries.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for node := c.order.Back(); node != nil; node = c.order.Back() {
		c.removeNode(node)
	}
}

func (c *Cache[K, V]) removeNode(node *lruNode[K, V]) {
	c.order.Remove(node)
	delete(c.entries, node.key)
	c.evicted(node.key, node.value)
}

func (c *Cache[K, V]) evicted(key K, value V) {
	if c.onEvict != nil {
		c.onEvict(key, value)
	}
}
