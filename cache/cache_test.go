package cache

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGetMissThenSetThenHit(t *testing.T) {
	c := New[string, int](4)
	_, ok := c.Get("a")
	require.False(t, ok)

	c.Set("a", 1)
	v, ok := c.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, v)

	stats := c.Stats()
	require.EqualValues(t, 1, stats.Hits)
	require.EqualValues(t, 1, stats.Misses)
}

func TestLRUEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[string, int](2, WithPolicy[string, int](LRU))
	c.Set("a", 1)
	c.Set("b", 2)
	c.Get("a") // a is now more recently used than b
	c.Set("c", 3) // evicts b

	_, ok := c.Get("b")
	require.False(t, ok)
	_, ok = c.Get("a")
	require.True(t, ok)
	_, ok = c.Get("c")
	require.True(t, ok)
	require.EqualValues(t, 1, c.Stats().Evictions)
}

func TestLFUEvictsLeastFrequentlyUsed(t *testing.T) {
	c := New[string, int](2, WithPolicy[string, int](LFU))
	c.Set("a", 1)
	c.Set("b", 2)
	c.Get("a")
	c.Get("a")
	c.Get("b")
	c.Set("c", 3) // b has fewer hits than a, gets evicted

	_, ok := c.Get("b")
	require.False(t, ok)
	_, ok = c.Get("a")
	require.True(t, ok)
}

func TestTTLExpiresEntries(t *testing.T) {
	c := New[string, int](4, WithTTL[string, int](time.Millisecond))
	c.Set("a", 1)
	time.Sleep(5 * time.Millisecond)

	_, ok := c.Get("a")
	require.False(t, ok)
	require.EqualValues(t, 1, c.Stats().Misses)
}

func TestCompileCachesResult(t *testing.T) {
	c := New[string, int](4)
	var calls int32
	compute := func() (int, error) {
		atomic.AddInt32(&calls, 1)
		return 42, nil
	}

	v, err := c.Compile("expr", compute)
	require.NoError(t, err)
	require.Equal(t, 42, v)

	v, err = c.Compile("expr", compute)
	require.NoError(t, err)
	require.Equal(t, 42, v)
	require.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestCompilePropagatesError(t *testing.T) {
	c := New[string, int](4)
	wantErr := errors.New("parse failed")
	_, err := c.Compile("bad", func() (int, error) { return 0, wantErr })
	require.ErrorIs(t, err, wantErr)
	require.Equal(t, 0, c.Len())
}

func TestCompileCoalescesConcurrentMisses(t *testing.T) {
	c := New[string, int](4)
	var calls int32
	var wg sync.WaitGroup
	start := make(chan struct{})

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			v, err := c.Compile("shared", func() (int, error) {
				atomic.AddInt32(&calls, 1)
				time.Sleep(10 * time.Millisecond)
				return 7, nil
			})
			require.NoError(t, err)
			require.Equal(t, 7, v)
		}()
	}
	close(start)
	wg.Wait()

	require.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestUnboundedCapacityNeverEvicts(t *testing.T) {
	c := New[int, int](0)
	for i := 0; i < 100; i++ {
		c.Set(i, i*i)
	}
	require.Equal(t, 100, c.Len())
	require.EqualValues(t, 0, c.Stats().Evictions)
}
