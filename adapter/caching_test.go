package adapter

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingAdapter wraps Memory and counts backend loads.
type countingAdapter struct {
	*Memory
	loads atomic.Int64
}

func (c *countingAdapter) Load(ctx context.Context, key string) (*Record, error) {
	c.loads.Add(1)
	return c.Memory.Load(ctx, key)
}

func TestCaching_ReadThrough(t *testing.T) {
	ctx := context.Background()
	inner := &countingAdapter{Memory: NewMemory()}
	c := NewCaching(inner, 1<<20)

	_, err := inner.Save(ctx, NewRecord("k", []byte("cached content")))
	require.NoError(t, err)

	// First load hits the backend, second is served from cache.
	rec, err := c.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("cached content"), rec.Content)

	rec, err = c.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("cached content"), rec.Content)

	assert.Equal(t, int64(1), inner.loads.Load())

	hits, misses := c.CacheStats()
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(1), misses)
}

func TestCaching_WriteThrough(t *testing.T) {
	ctx := context.Background()
	inner := &countingAdapter{Memory: NewMemory()}
	c := NewCaching(inner, 1<<20)

	_, err := c.Save(ctx, NewRecord("k", []byte("v1")))
	require.NoError(t, err)

	// Save populated the cache, so no backend load is needed.
	rec, err := c.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), rec.Content)
	assert.Equal(t, int64(0), inner.loads.Load())

	// A new save refreshes the cached content.
	_, err = c.Save(ctx, NewRecord("k", []byte("v2")))
	require.NoError(t, err)

	rec, err = c.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), rec.Content)
}

func TestCaching_DeleteInvalidates(t *testing.T) {
	ctx := context.Background()
	inner := &countingAdapter{Memory: NewMemory()}
	c := NewCaching(inner, 1<<20)

	_, err := c.Save(ctx, NewRecord("k", []byte("content")))
	require.NoError(t, err)

	_, err = c.Delete(ctx, "k")
	require.NoError(t, err)

	_, err = c.Load(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCaching_NotFoundNotCached(t *testing.T) {
	ctx := context.Background()
	inner := &countingAdapter{Memory: NewMemory()}
	c := NewCaching(inner, 1<<20)

	_, err := c.Load(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)

	// The record appears after the miss; the cache must not pin absence.
	_, err = inner.Save(ctx, NewRecord("k", []byte("late arrival")))
	require.NoError(t, err)

	rec, err := c.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("late arrival"), rec.Content)
}

func TestCaching_CallersCannotMutateCache(t *testing.T) {
	ctx := context.Background()
	c := NewCaching(NewMemory(), 1<<20)

	_, err := c.Save(ctx, NewRecord("k", []byte("pristine")))
	require.NoError(t, err)

	rec, err := c.Load(ctx, "k")
	require.NoError(t, err)
	rec.Content[0] = 'X'

	rec2, err := c.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("pristine"), rec2.Content)
}

func TestCaching_ConcurrentLoads(t *testing.T) {
	ctx := context.Background()
	inner := &countingAdapter{Memory: NewMemory()}
	c := NewCaching(inner, 1<<20)

	_, err := inner.Save(ctx, NewRecord("k", []byte("shared")))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec, err := c.Load(ctx, "k")
			assert.NoError(t, err)
			assert.Equal(t, []byte("shared"), rec.Content)
		}()
	}
	wg.Wait()

	// Singleflight plus the cache keep backend traffic far below the
	// caller count; exact numbers depend on scheduling.
	assert.Less(t, inner.loads.Load(), int64(32))
}
