package storage

import (
	"context"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func loadValue(_ context.Context, key string) (string, error) {
	return "value:" + key, nil
}

func TestCache_GetOrLoadThenGet(t *testing.T) {
	c := NewCache[string](0, 0, nil)

	_, ok := c.Get("en")
	assert.False(t, ok)

	v, err := c.GetOrLoad(context.Background(), "en", loadValue)
	require.NoError(t, err)
	assert.Equal(t, "value:en", v)

	v, ok = c.Get("en")
	require.True(t, ok)
	assert.Equal(t, "value:en", v)
	assert.Equal(t, 1, c.Len())

	c.ClearKey("en")
	_, ok = c.Get("en")
	assert.False(t, ok)
}

func TestCache_GetOrLoadOncePerKey(t *testing.T) {
	c := NewCache[string](8, 0, nil)

	var calls atomic.Int32
	load := func(ctx context.Context, key string) (string, error) {
		calls.Add(1)
		return loadValue(ctx, key)
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := c.GetOrLoad(context.Background(), "en", load)
			assert.NoError(t, err)
			assert.Equal(t, "value:en", v)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
}

func TestCache_LoadErrorNotCached(t *testing.T) {
	c := NewCache[int](0, 0, nil)
	boom := errors.New("boom")

	_, err := c.GetOrLoad(context.Background(), "k", func(context.Context, string) (int, error) {
		return 0, boom
	})
	require.ErrorIs(t, err, boom)

	_, ok := c.Get("k")
	assert.False(t, ok)
}

func TestCache_OnDelete(t *testing.T) {
	var mu sync.Mutex
	deleted := make(map[string]string)
	c := NewCache[string](0, 0, func(key string, val string) {
		mu.Lock()
		defer mu.Unlock()
		deleted[key] = val
	})

	_, err := c.GetOrLoad(context.Background(), "a", loadValue)
	require.NoError(t, err)
	c.ClearKey("a")

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return deleted["a"] == "value:a"
	}, time.Second, 10*time.Millisecond)
}
