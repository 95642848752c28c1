package cache

import (
	"errors"
	"strconv"
	"sync"
	"testing"
)

func TestNew(t *testing.T) {
	c := New[string, int](100)
	if c == nil {
		t.Fatal("New returned nil")
	}
	if s := c.Stats(); s.Capacity != 100 || s.Len != 0 {
		t.Errorf("expected empty cache with capacity 100, got %+v", s)
	}
}

func TestCacheGetSet(t *testing.T) {
	c := New[string, int](10)

	c.Set("key1", 42)
	val, ok := c.Get("key1")
	if !ok || val != 42 {
		t.Errorf("expected 42, got %d (ok=%v)", val, ok)
	}

	_, ok = c.Get("nonexistent")
	if ok {
		t.Error("expected nonexistent key to not exist")
	}

	c.Set("key1", 7)
	if val, _ := c.Get("key1"); val != 7 {
		t.Errorf("expected replaced value 7, got %d", val)
	}
	if c.Len() != 1 {
		t.Errorf("expected 1 entry after replace, got %d", c.Len())
	}
}

func TestCacheGetOrCreate(t *testing.T) {
	c := New[string, int](10)
	createCalled := 0
	create := func() (int, error) {
		createCalled++
		return 100, nil
	}

	for i := 0; i < 3; i++ {
		val, err := c.GetOrCreate("key1", create)
		if err != nil || val != 100 {
			t.Fatalf("GetOrCreate = %d, %v; want 100", val, err)
		}
	}
	if createCalled != 1 {
		t.Errorf("expected create called once, got %d", createCalled)
	}
}

func TestCacheGetOrCreate_ErrorNotCached(t *testing.T) {
	c := New[string, int](10)
	boom := errors.New("boom")

	if _, err := c.GetOrCreate("k", func() (int, error) { return 0, boom }); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if c.Len() != 0 {
		t.Errorf("failed creation was cached")
	}
	val, err := c.GetOrCreate("k", func() (int, error) { return 5, nil })
	if err != nil || val != 5 {
		t.Errorf("retry = %d, %v; want 5", val, err)
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[string, int](3)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)

	// Touch "a" so "b" becomes the oldest.
	c.Get("a")
	c.Set("d", 4)

	if _, ok := c.Get("b"); ok {
		t.Error("expected b to be evicted")
	}
	for _, k := range []string{"a", "c", "d"} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("expected %s to survive", k)
		}
	}
	if s := c.Stats(); s.Len != 3 || s.Evictions != 1 {
		t.Errorf("stats = %+v, want 3 entries and 1 eviction", s)
	}
}

func TestCacheDeleteClear(t *testing.T) {
	c := New[int, int](0)
	for i := 0; i < 50; i++ {
		c.Set(i, i)
	}
	if c.Len() != 50 {
		t.Fatalf("unlimited cache holds %d, want 50", c.Len())
	}
	if !c.Delete(10) || c.Delete(10) {
		t.Error("Delete should succeed once")
	}
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("expected empty cache after Clear, got %d", c.Len())
	}
	c.Set(1, 1)
	if v, ok := c.Get(1); !ok || v != 1 {
		t.Error("cache unusable after Clear")
	}
}

func TestCacheStats(t *testing.T) {
	c := New[string, int](10)
	c.Set("x", 1)
	c.Get("x")
	c.Get("x")
	c.Get("y")
	c.Get("z")

	s := c.Stats()
	if s.Hits != 2 || s.Misses != 2 || s.HitRate != 0.5 {
		t.Errorf("stats = %+v, want 2 hits, 2 misses, rate 0.5", s)
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := New[string, int](64)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				k := strconv.Itoa((g*7 + i) % 100)
				_, _ = c.GetOrCreate(k, func() (int, error) { return i, nil })
				c.Get(k)
			}
		}(g)
	}
	wg.Wait()
	if c.Len() > 64 {
		t.Errorf("cache grew past its limit: %d", c.Len())
	}
}

func BenchmarkCacheGet(b *testing.B) {
	c := New[string, int](1000)
	for i := 0; i < 100; i++ {
		c.Set(strconv.Itoa(i), i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get("50")
	}
}

func BenchmarkCacheGetOrCreate(b *testing.B) {
	c := New[string, int](1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.GetOrCreate(strconv.Itoa(i%100), func() (int, error) {
			return i, nil
		})
	}
}
