package cache

import (
	"fmt"
	"sync"
	"testing"
)

func TestShardedCacheGetSet(t *testing.T) {
	c := NewSharded[string, int](4, StringHasher)

	if _, ok := c.Get("missing"); ok {
		t.Error("Get on empty cache should miss")
	}

	c.Set("a", 1)
	c.Set("b", 2)

	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = %v, %v, want 1, true", v, ok)
	}
	if v, ok := c.Get("b"); !ok || v != 2 {
		t.Errorf("Get(b) = %v, %v, want 2, true", v, ok)
	}

	// Overwrite
	c.Set("a", 10)
	if v, _ := c.Get("a"); v != 10 {
		t.Errorf("Get(a) after overwrite = %v, want 10", v)
	}
}

func TestShardedCacheGetOrCreate(t *testing.T) {
	c := NewSharded[string, int](4, StringHasher)

	calls := 0
	create := func() int {
		calls++
		return 42
	}

	if v := c.GetOrCreate("k", create); v != 42 {
		t.Errorf("GetOrCreate = %v, want 42", v)
	}
	if v := c.GetOrCreate("k", create); v != 42 {
		t.Errorf("GetOrCreate (cached) = %v, want 42", v)
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
}

func TestShardedCacheEviction(t *testing.T) {
	// Capacity 1 per shard so a second key in the same shard evicts the first.
	c := NewSharded[string, int](1, func(string) uint64 { return 0 })

	c.Set("old", 1)
	c.Set("new", 2)

	if _, ok := c.Get("old"); ok {
		t.Error("oldest entry should have been evicted")
	}
	if v, ok := c.Get("new"); !ok || v != 2 {
		t.Errorf("Get(new) = %v, %v, want 2, true", v, ok)
	}
	if s := c.Stats(); s.Evictions != 1 {
		t.Errorf("Evictions = %d, want 1", s.Evictions)
	}
}

func TestShardedCacheLRUOrder(t *testing.T) {
	c := NewSharded[string, int](2, func(string) uint64 { return 0 })

	c.Set("a", 1)
	c.Set("b", 2)

	// Touch "a" so "b" becomes the eviction candidate.
	c.Get("a")
	c.Set("c", 3)

	if _, ok := c.Get("a"); !ok {
		t.Error("recently used entry was evicted")
	}
	if _, ok := c.Get("b"); ok {
		t.Error("least recently used entry survived eviction")
	}
}

func TestShardedCacheDelete(t *testing.T) {
	c := NewSharded[string, int](4, StringHasher)

	c.Set("a", 1)
	if !c.Delete("a") {
		t.Error("Delete(a) = false, want true")
	}
	if c.Delete("a") {
		t.Error("Delete(a) twice = true, want false")
	}
	if _, ok := c.Get("a"); ok {
		t.Error("deleted entry still retrievable")
	}
}

func TestShardedCacheClear(t *testing.T) {
	c := NewSharded[string, int](4, StringHasher)

	for i := 0; i < 10; i++ {
		c.Set(fmt.Sprintf("k%d", i), i)
	}
	c.Clear()

	if c.Len() != 0 {
		t.Errorf("Len after Clear = %d, want 0", c.Len())
	}
}

func TestShardedCacheConcurrent(t *testing.T) {
	c := NewSharded[string, int](16, StringHasher)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				key := fmt.Sprintf("k%d", i%20)
				c.Set(key, i)
				c.Get(key)
				c.GetOrCreate(key, func() int { return i })
			}
		}(g)
	}
	wg.Wait()

	if c.Len() == 0 {
		t.Error("cache empty after concurrent writes")
	}
}

func TestShardedCacheStats(t *testing.T) {
	c := NewSharded[string, int](4, StringHasher)

	c.Set("a", 1)
	c.Get("a")
	c.Get("a")
	c.Get("missing")

	s := c.Stats()
	if s.Hits != 2 {
		t.Errorf("Hits = %d, want 2", s.Hits)
	}
	if s.Misses != 1 {
		t.Errorf("Misses = %d, want 1", s.Misses)
	}
	if s.Len != 1 {
		t.Errorf("Len = %d, want 1", s.Len)
	}
}
