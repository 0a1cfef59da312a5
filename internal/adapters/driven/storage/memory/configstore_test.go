package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore(t *testing.T) {
	store := NewConfigStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.values)
	assert.Equal(t, ":memory:", store.Path())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("keepalive.interval", "3m"))
	require.NoError(t, store.Set("keepalive.interval", "5m"))

	val, ok := store.Get("keepalive.interval")
	assert.True(t, ok)
	assert.Equal(t, "5m", val)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("str", "value")
	_ = store.Set("int", 42)
	_ = store.Set("int64", int64(7))
	_ = store.Set("float", 3.9)
	_ = store.Set("bool", true)

	assert.Equal(t, "value", store.GetString("str"))
	assert.Empty(t, store.GetString("int"))
	assert.Empty(t, store.GetString("missing"))

	assert.Equal(t, 42, store.GetInt("int"))
	assert.Equal(t, 7, store.GetInt("int64"))
	assert.Equal(t, 3, store.GetInt("float"))
	assert.Zero(t, store.GetInt("str"))

	assert.True(t, store.GetBool("bool"))
	assert.False(t, store.GetBool("str"))
	assert.False(t, store.GetBool("missing"))
}

func TestConfigStore_GetStringSlice(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("typed", []string{"E:\\", "F:\\"})
	_ = store.Set("untyped", []any{"E:\\", 5, "F:\\"})
	_ = store.Set("scalar", "E:\\")

	assert.Equal(t, []string{"E:\\", "F:\\"}, store.GetStringSlice("typed"))
	assert.Equal(t, []string{"E:\\", "F:\\"}, store.GetStringSlice("untyped"))
	assert.Nil(t, store.GetStringSlice("scalar"))
	assert.Nil(t, store.GetStringSlice("missing"))
}

func TestConfigStore_SliceIsolation(t *testing.T) {
	store := NewConfigStore()
	drives := []string{"E:\\"}
	_ = store.Set("keepalive.drives", drives)

	drives[0] = "Z:\\"
	got := store.GetStringSlice("keepalive.drives")
	assert.Equal(t, []string{"E:\\"}, got)

	got[0] = "Y:\\"
	assert.Equal(t, []string{"E:\\"}, store.GetStringSlice("keepalive.drives"))
}

func TestConfigStore_SaveIsNoOp(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("key", "value")

	require.NoError(t, store.Save())
	assert.Equal(t, "value", store.GetString("key"))
}

func TestConfigStore_WatchSignalsOnLoad(t *testing.T) {
	store := NewConfigStore()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := store.Watch(ctx)
	require.NoError(t, err)

	require.NoError(t, store.Load())

	select {
	case <-changes:
	case <-time.After(time.Second):
		t.Fatal("expected change signal")
	}
}

func TestConfigStore_WatchClosesOnCancel(t *testing.T) {
	store := NewConfigStore()
	ctx, cancel := context.WithCancel(context.Background())

	changes, err := store.Watch(ctx)
	require.NoError(t, err)
	cancel()

	select {
	case _, ok := <-changes:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("channel not closed")
	}

	require.Eventually(t, func() bool {
		store.mu.RLock()
		defer store.mu.RUnlock()
		return len(store.watchers) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestConfigStore_LoadWithoutWatchers(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Load())
}

func TestConfigStore_Concurrency(t *testing.T) {
	store := NewConfigStore()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = store.Set("history.keep", n*j)
				_ = store.GetInt("history.keep")
				_ = store.Load()
			}
		}(i)
	}
	wg.Wait()
}
