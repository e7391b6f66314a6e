package cache

import "sync"

// Cache is a thread-safe LRU map holding at most capacity entries.
// When a new entry would exceed the capacity, the least recently used
// entry is evicted.
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	entries  map[K]*lruNode[K, V]
	order    lruList[K, V]
	capacity int
}

// New creates a cache holding up to capacity entries.
// A capacity below 1 is treated as 1.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	return &Cache[K, V]{
		entries:  make(map[K]*lruNode[K, V]),
		capacity: max(capacity, 1),
	}
}

// Get returns the value for key and marks it as recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	node, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.order.moveToFront(node)
	return node.value, true
}

// Set stores value for key.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setLocked(key, value)
}

// GetOrCreate returns the cached value for key or calls create and
// caches its result. Errors are returned and not cached. create runs
// under the cache lock, so concurrent misses on one key call it once.
func (c *Cache[K, V]) GetOrCreate(key K, create func() (V, error)) (V, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if node, ok := c.entries[key]; ok {
		c.order.moveToFront(node)
		return node.value, nil
	}

	value, err := create()
	if err != nil {
		return value, err
	}
	c.setLocked(key, value)
	return value, nil
}

func (c *Cache[K, V]) setLocked(key K, value V) {
	if node, ok := c.entries[key]; ok {
		node.value = value
		c.order.moveToFront(node)
		return
	}

	c.entries[key] = c.order.pushFront(key, value)
	for c.order.len > c.capacity {
		oldest := c.order.removeOldest()
		delete(c.entries, oldest.key)
	}
}

// Delete removes key and reports whether it was present.
func (c *Cache[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	node, ok := c.entries[key]
	if !ok {
		return false
	}
	c.order.unlink(node)
	delete(c.entries, key)
	return true
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Capacity returns the maximum number of entries.
func (c *Cache[K, V]) Capacity() int {
	return c.capacity
}
