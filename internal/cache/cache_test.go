// Cadence - Social Analytics Posting-Time Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (f *fakeClock) now() time.Time { return f.t }

func newTestCache(capacity int, ttl time.Duration) (*Cache[string], *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)}
	c := New[string](capacity, ttl)
	c.now = clock.now
	return c, clock
}

func TestCacheBasicOperations(t *testing.T) {
	c, _ := newTestCache(10, time.Minute)

	c.Set("chan-1", "rec:90", "value1")
	if v, ok := c.Get("chan-1", "rec:90"); !ok || v != "value1" {
		t.Errorf("Get() = %q, %v, want value1, true", v, ok)
	}
	if _, ok := c.Get("chan-2", "rec:90"); ok {
		t.Error("owners must not share keys")
	}

	c.Set("chan-1", "rec:90", "value2")
	if v, _ := c.Get("chan-1", "rec:90"); v != "value2" {
		t.Errorf("Get() after overwrite = %q, want value2", v)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestCacheExpiration(t *testing.T) {
	c, clock := newTestCache(10, time.Minute)

	c.Set("chan-1", "k", "v")
	clock.t = clock.t.Add(59 * time.Second)
	if _, ok := c.Get("chan-1", "k"); !ok {
		t.Error("entry expired early")
	}

	clock.t = clock.t.Add(2 * time.Second)
	if _, ok := c.Get("chan-1", "k"); ok {
		t.Error("entry should have expired")
	}
	if c.Len() != 0 {
		t.Errorf("expired entry not removed, Len() = %d", c.Len())
	}
}

func TestCacheLRUEviction(t *testing.T) {
	c, _ := newTestCache(2, time.Minute)

	c.Set("a", "k", "1")
	c.Set("b", "k", "2")
	c.Get("a", "k") // a becomes most recent
	c.Set("c", "k", "3")

	if _, ok := c.Get("b", "k"); ok {
		t.Error("least recently used entry b should be evicted")
	}
	if _, ok := c.Get("a", "k"); !ok {
		t.Error("recently used entry a should survive")
	}
	if s := c.Stats(); s.Evictions != 1 || s.Size != 2 {
		t.Errorf("Stats() = %+v, want 1 eviction, size 2", s)
	}
}

func TestCacheInvalidateOwner(t *testing.T) {
	c, _ := newTestCache(10, time.Minute)

	c.Set("chan-1", "rec:30", "a")
	c.Set("chan-1", "cal:2024-03", "b")
	c.Set("chan-2", "rec:30", "c")

	if n := c.InvalidateOwner("chan-1"); n != 2 {
		t.Errorf("InvalidateOwner() = %d, want 2", n)
	}
	if _, ok := c.Get("chan-1", "rec:30"); ok {
		t.Error("chan-1 entry survived invalidation")
	}
	if _, ok := c.Get("chan-2", "rec:30"); !ok {
		t.Error("chan-2 entry should be untouched")
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d", c.Len())
	}
	// list sentinels must be reset
	c.Set("x", "k", "v")
	if _, ok := c.Get("x", "k"); !ok {
		t.Error("cache unusable after Clear")
	}
}

func TestCacheHitRate(t *testing.T) {
	c, _ := newTestCache(10, time.Minute)
	if c.HitRate() != 0 {
		t.Errorf("HitRate() on empty cache = %v, want 0", c.HitRate())
	}

	c.Set("o", "k", "v")
	c.Get("o", "k")
	c.Get("o", "missing")
	if got := c.HitRate(); got != 50 {
		t.Errorf("HitRate() = %v, want 50", got)
	}
}

func TestCacheDefaults(t *testing.T) {
	c := New[int](0, 0)
	if c.capacity != 1024 || c.ttl != time.Minute {
		t.Errorf("defaults = %d, %v", c.capacity, c.ttl)
	}
}

func TestCacheConcurrentAccess(t *testing.T) {
	c := New[int](64, time.Minute)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			owner := fmt.Sprintf("chan-%d", g%3)
			for i := 0; i < 200; i++ {
				key := fmt.Sprintf("k%d", i%20)
				c.Set(owner, key, i)
				c.Get(owner, key)
				if i%50 == 0 {
					c.InvalidateOwner(owner)
				}
			}
		}(g)
	}
	wg.Wait()

	if c.Len() > 64 {
		t.Errorf("Len() = %d exceeds capacity", c.Len())
	}
}
