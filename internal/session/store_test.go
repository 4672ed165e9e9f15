package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/SAP-F-2025/quiz-service/internal/cache"
	"github.com/SAP-F-2025/quiz-service/internal/utils"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCacheStore(t *testing.T, ttl time.Duration) (*CacheStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewCacheStore(cache.NewRedisCache(client, utils.NewNopLogger()), ttl), mr
}

func stores(t *testing.T) map[string]Store {
	cs, _ := newCacheStore(t, 0)
	return map[string]Store{
		"memory": NewMemoryStore(),
		"redis":  cs,
	}
}

func TestStore_CreateResolve(t *testing.T) {
	ctx := context.Background()

	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			id, err := store.Create(ctx, []string{"3", "1", "2"})
			require.NoError(t, err)
			assert.NotEmpty(t, id)

			ids, err := store.Resolve(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, []string{"3", "1", "2"}, ids)

			other, err := store.Create(ctx, []string{"9"})
			require.NoError(t, err)
			assert.NotEqual(t, id, other)
		})
	}
}

func TestStore_UnknownID(t *testing.T) {
	ctx := context.Background()

	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := store.Resolve(ctx, "does-not-exist")
			assert.ErrorIs(t, err, ErrSessionNotFound)
		})
	}
}

func TestStore_EmptySession(t *testing.T) {
	ctx := context.Background()

	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			id, err := store.Create(ctx, nil)
			require.NoError(t, err)

			ids, err := store.Resolve(ctx, id)
			require.NoError(t, err)
			assert.Empty(t, ids)
		})
	}
}

func TestMemoryStore_CopiesIDs(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	ids := []string{"a", "b"}
	id, err := store.Create(ctx, ids)
	require.NoError(t, err)
	ids[0] = "changed"

	got, err := store.Resolve(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestMemoryStore_ConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := store.Create(ctx, []string{"x"})
			assert.NoError(t, err)
			_, err = store.Resolve(ctx, id)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, store.Len())
}

func TestCacheStore_TTL(t *testing.T) {
	ctx := context.Background()
	store, mr := newCacheStore(t, time.Minute)

	id, err := store.Create(ctx, []string{"1"})
	require.NoError(t, err)
	assert.Equal(t, time.Minute, mr.TTL(keyPrefix+id))

	mr.FastForward(2 * time.Minute)

	_, err = store.Resolve(ctx, id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestCacheStore_Clear(t *testing.T) {
	ctx := context.Background()
	store, mr := newCacheStore(t, 0)

	for i := 0; i < 3; i++ {
		_, err := store.Create(ctx, []string{"1"})
		require.NoError(t, err)
	}
	require.NoError(t, mr.Set("unrelated", "keep"))

	require.NoError(t, store.Clear(ctx))
	assert.Equal(t, []string{"unrelated"}, mr.Keys())
}

func TestCacheStore_BackendDown(t *testing.T) {
	ctx := context.Background()
	store, mr := newCacheStore(t, 0)
	mr.Close()

	_, err := store.Create(ctx, []string{"1"})
	assert.Error(t, err)

	_, err = store.Resolve(ctx, "any")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrSessionNotFound)
}
