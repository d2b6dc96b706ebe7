// Cadence - Social Analytics Posting-Time Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package cache

import (
	"sync"
	"time"
)

// Stats is a snapshot of cache counters.
type Stats struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Evictions int64 `json:"evictions"`
	Size      int   `json:"size"`
}

type entryKey struct {
	owner string
	key   string
}

type entry[V any] struct {
	id        entryKey
	value     V
	expiresAt time.Time
	prev      *entry[V]
	next      *entry[V]
}

// Cache is an LRU cache with a fixed TTL. Expired entries are dropped
// lazily on access; the least recently used entry goes first when the
// cache is full.
type Cache[V any] struct {
	mu sync.Mutex

	capacity int
	ttl      time.Duration
	now      func() time.Time

	items map[entryKey]*entry[V]

	// head.next is the most recently used, tail.prev the least.
	head *entry[V]
	tail *entry[V]

	hits      int64
	misses    int64
	evictions int64
}

// New creates a cache. Non-positive capacity means 1024; non-positive ttl
// means one minute.
func New[V any](capacity int, ttl time.Duration) *Cache[V] {
	if capacity <= 0 {
		capacity = 1024
	}
	if ttl <= 0 {
		ttl = time.Minute
	}

	c := &Cache[V]{
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
		items:    make(map[entryKey]*entry[V], capacity),
		head:     &entry[V]{},
		tail:     &entry[V]{},
	}
	c.head.next = c.tail
	c.tail.prev = c.head
	return c
}

// Get returns the live value for (owner, key).
func (c *Cache[V]) Get(owner, key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	e, ok := c.items[entryKey{owner, key}]
	if !ok {
		c.misses++
		return zero, false
	}
	if c.now().After(e.expiresAt) {
		c.remove(e)
		c.evictions++
		c.misses++
		return zero, false
	}

	c.unlink(e)
	c.pushFront(e)
	c.hits++
	return e.value, true
}

// Set stores value under (owner, key), replacing any previous entry.
func (c *Cache[V]) Set(owner, key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := entryKey{owner, key}
	expires := c.now().Add(c.ttl)

	if e, ok := c.items[id]; ok {
		e.value = value
		e.expiresAt = expires
		c.unlink(e)
		c.pushFront(e)
		return
	}

	if len(c.items) >= c.capacity {
		c.remove(c.tail.prev)
		c.evictions++
	}

	e := &entry[V]{id: id, value: value, expiresAt: expires}
	c.items[id] = e
	c.pushFront(e)
}

// InvalidateOwner drops every entry stored under owner and returns how
// many were removed.
func (c *Cache[V]) InvalidateOwner(owner string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for id, e := range c.items {
		if id.owner == owner {
			c.remove(e)
			n++
		}
	}
	c.evictions += int64(n)
	return n
}

// Clear drops every entry.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.evictions += int64(len(c.items))
	c.items = make(map[entryKey]*entry[V], c.capacity)
	c.head.next = c.tail
	c.tail.prev = c.head
}

// Len returns the number of stored entries, expired ones included.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Stats returns a snapshot of the counters.
func (c *Cache[V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
		Size:      len(c.items),
	}
}

// HitRate returns hits as a percentage of lookups.
func (c *Cache[V]) HitRate() float64 {
	s := c.Stats()
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total) * 100
}

// list helpers; callers hold mu

func (c *Cache[V]) pushFront(e *entry[V]) {
	e.prev = c.head
	e.next = c.head.next
	c.head.next.prev = e
	c.head.next = e
}

func (c *Cache[V]) unlink(e *entry[V]) {
	e.prev.next = e.next
	e.next.prev = e.prev
}

func (c *Cache[V]) remove(e *entry[V]) {
	c.unlink(e)
	delete(c.items, e.id)
}
