// Forkful - Restaurant Listing and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkful

package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

// fakeClock is a manually advanced clock for expiry tests.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

func newTestCache(ttl time.Duration) (*TTL[string], *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := NewTTL[string]("test", ttl)
	c.now = clock.Now
	return c, clock
}

func TestCacheBasicOperations(t *testing.T) {
	t.Parallel()
	c, _ := newTestCache(time.Minute)

	c.Set("key1", "value1")
	value, exists := c.Get("key1")
	if !exists {
		t.Fatal("Get(key1) missing after Set")
	}
	if value != "value1" {
		t.Errorf("Get(key1) = %q, want value1", value)
	}

	if _, exists := c.Get("missing"); exists {
		t.Error("Get(missing) reported a value")
	}

	c.Delete("key1")
	if _, exists := c.Get("key1"); exists {
		t.Error("Get(key1) found a deleted key")
	}
}

func TestCacheExpiration(t *testing.T) {
	t.Parallel()
	c, clock := newTestCache(time.Minute)

	c.Set("short", "a")
	c.SetWithTTL("long", "b", time.Hour)

	clock.Advance(2 * time.Minute)

	if _, ok := c.Get("short"); ok {
		t.Error("Get(short) returned an expired entry")
	}
	if v, ok := c.Get("long"); !ok || v != "b" {
		t.Errorf("Get(long) = %q, %v; want b, true", v, ok)
	}

	stats := c.GetStats()
	if stats.Evictions != 1 {
		t.Errorf("Evictions = %d, want 1", stats.Evictions)
	}
	if stats.TotalKeys != 1 {
		t.Errorf("TotalKeys = %d, want 1", stats.TotalKeys)
	}
}

func TestCacheCleanup(t *testing.T) {
	t.Parallel()
	c, clock := newTestCache(time.Minute)

	for i := 0; i < 5; i++ {
		c.Set(fmt.Sprintf("old%d", i), "x")
	}
	clock.Advance(2 * time.Minute)
	c.Set("fresh", "y")

	if evicted := c.Cleanup(); evicted != 5 {
		t.Errorf("Cleanup() = %d, want 5", evicted)
	}
	stats := c.GetStats()
	if stats.TotalKeys != 1 {
		t.Errorf("TotalKeys = %d, want 1", stats.TotalKeys)
	}
	if !stats.LastCleanup.Equal(clock.Now()) {
		t.Errorf("LastCleanup = %v, want %v", stats.LastCleanup, clock.Now())
	}
}

func TestCacheClear(t *testing.T) {
	t.Parallel()
	c, _ := newTestCache(time.Minute)

	c.Set("a", "1")
	c.Set("b", "2")
	c.Clear()

	if _, ok := c.Get("a"); ok {
		t.Error("Get(a) found a value after Clear")
	}
	stats := c.GetStats()
	if stats.Evictions != 2 || stats.TotalKeys != 0 {
		t.Errorf("stats after Clear = %+v, want 2 evictions and 0 keys", stats)
	}
}

func TestCacheHitRate(t *testing.T) {
	t.Parallel()
	c, _ := newTestCache(time.Minute)

	if rate := c.HitRate(); rate != 0 {
		t.Errorf("HitRate() with no lookups = %v, want 0", rate)
	}

	c.Set("k", "v")
	c.Get("k")
	c.Get("k")
	c.Get("k")
	c.Get("missing")

	if rate := c.HitRate(); rate != 75 {
		t.Errorf("HitRate() = %v, want 75", rate)
	}
}

func TestCacheConcurrency(t *testing.T) {
	t.Parallel()
	c, _ := newTestCache(time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("key%d", i%5)
			for j := 0; j < 100; j++ {
				c.Set(key, "v")
				c.Get(key)
				if j%10 == 0 {
					c.Delete(key)
				}
			}
		}(i)
	}
	wg.Wait()

	stats := c.GetStats()
	if stats.Hits+stats.Misses != 2000 {
		t.Errorf("lookups = %d, want 2000", stats.Hits+stats.Misses)
	}
}
