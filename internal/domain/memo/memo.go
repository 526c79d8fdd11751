package memo

import (
	"context"
	"sync"
	"sync/atomic"
)

const defaultMaxSize = 256

// Key composes a cache key from the identity of the data and of the query.
func Key(version, query string) string {
	return version + "\x00" + query
}

// node is one entry of the insertion-ordered list. head is the newest.
type node[V any] struct {
	key   string
	value V
	next  *node[V]
	prev  *node[V]
}

// Cache is a bounded, concurrency-safe memo with oldest-first eviction.
type Cache[V any] struct {
	mu      sync.Mutex
	entries map[string]*node[V]
	head    *node[V]
	tail    *node[V]
	maxSize int
	size    atomic.Int64
}

// New creates a Cache.
func New[V any](opts ...Option) *Cache[V] {
	s := settings{maxSize: defaultMaxSize}
	for _, opt := range opts {
		opt(&s)
	}
	return &Cache[V]{
		entries: make(map[string]*node[V]),
		maxSize: s.maxSize,
	}
}

// Enabled reports whether the cache stores anything.
func (c *Cache[V]) Enabled() bool {
	return c.maxSize > 0
}

// Get returns the value cached under key.
func (c *Cache[V]) Get(_ context.Context, key string) (V, bool) {
	var zero V
	if !c.Enabled() {
		return zero, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	n, ok := c.entries[key]
	if !ok {
		return zero, false
	}
	return n.value, true
}

// Put stores value under key, evicting the oldest entry when full.
// Storing an existing key replaces its value and keeps its age.
func (c *Cache[V]) Put(_ context.Context, key string, value V) {
	if !c.Enabled() {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.entries[key]; ok {
		n.value = value
		return
	}
	if len(c.entries) >= c.maxSize {
		c.evictOldest()
	}
	n := &node[V]{key: key, value: value, next: c.head}
	if c.head != nil {
		c.head.prev = n
	}
	c.head = n
	if c.tail == nil {
		c.tail = n
	}
	c.entries[key] = n
	c.size.Add(1)
}

// Purge drops every entry.
func (c *Cache[V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*node[V])
	c.head, c.tail = nil, nil
	c.size.Store(0)
}

// Len returns the number of cached entries.
func (c *Cache[V]) Len() int64 {
	return c.size.Load()
}

// evictOldest removes the tail. Must be called with c.mu held.
func (c *Cache[V]) evictOldest() {
	old := c.tail
	if old == nil {
		return
	}
	c.tail = old.prev
	if c.tail != nil {
		c.tail.next = nil
	} else {
		c.head = nil
	}
	delete(c.entries, old.key)
	c.size.Add(-1)
}
