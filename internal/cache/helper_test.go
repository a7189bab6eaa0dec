package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withMiniredis(t *testing.T) {
	t.Helper()

	mr := miniredis.RunT(t)
	Client = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { Client = nil })
}

func TestCacheAsideMissThenHit(t *testing.T) {
	withMiniredis(t)
	ctx := context.Background()

	calls := 0
	fetch := func(dest *[]string) func() error {
		return func() error {
			calls++
			*dest = []string{"third", "second", "first"}
			return nil
		}
	}

	var got []string
	require.NoError(t, CacheAside(ctx, "entries:recent", &got, time.Minute, fetch(&got)))
	assert.Equal(t, 1, calls)
	assert.Equal(t, []string{"third", "second", "first"}, got)

	// Second read comes from the cache.
	var again []string
	require.NoError(t, CacheAside(ctx, "entries:recent", &again, time.Minute, fetch(&again)))
	assert.Equal(t, 1, calls)
	assert.Equal(t, got, again)
}

func TestInvalidateForcesRefetch(t *testing.T) {
	withMiniredis(t)
	ctx := context.Background()

	calls := 0
	fetch := func(dest *[]string) func() error {
		return func() error {
			calls++
			*dest = []string{"entry"}
			return nil
		}
	}

	var first []string
	require.NoError(t, CacheAside(ctx, "entries:recent", &first, time.Minute, fetch(&first)))

	Invalidate(ctx, "entries:recent")

	var second []string
	require.NoError(t, CacheAside(ctx, "entries:recent", &second, time.Minute, fetch(&second)))
	assert.Equal(t, 2, calls)
}

func TestHelpersWithoutRedis(t *testing.T) {
	Client = nil
	ctx := context.Background()

	found, err := GetJSON(ctx, "k", &struct{}{})
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, SetJSON(ctx, "k", "v", time.Minute))
	Invalidate(ctx, "k")

	// CacheAside always falls through to fetch.
	calls := 0
	var dest string
	require.NoError(t, CacheAside(ctx, "k", &dest, time.Minute, func() error {
		calls++
		dest = "fetched"
		return nil
	}))
	assert.Equal(t, 1, calls)
	assert.Equal(t, "fetched", dest)
}
