package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/album-catalog/domain"
)

func TestLikeCountCache_GetSetInvalidate(t *testing.T) {
	ctx := context.Background()
	c := NewLikeCountCache(0)
	albumID := faker.UUIDHyphenated()

	_, err := c.Get(ctx, albumID)
	assert.ErrorIs(t, err, domain.ErrCacheMiss)

	require.NoError(t, c.Set(ctx, albumID, 7))
	likes, err := c.Get(ctx, albumID)
	require.NoError(t, err)
	assert.Equal(t, int64(7), likes)

	require.NoError(t, c.Set(ctx, albumID, 3))
	likes, err = c.Get(ctx, albumID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), likes)

	require.NoError(t, c.Invalidate(ctx, albumID))
	_, err = c.Get(ctx, albumID)
	assert.ErrorIs(t, err, domain.ErrCacheMiss)

	// absent entries
	require.NoError(t, c.Invalidate(ctx, albumID))
	require.NoError(t, c.Invalidate(ctx, faker.UUIDHyphenated()))
	assert.Equal(t, 0, c.Len())
}

func TestLikeCountCache_InvalidationWinsOverLateFill(t *testing.T) {
	ctx := context.Background()
	c := NewLikeCountCache(0)

	v, err := c.Version(ctx, "A1")
	require.NoError(t, err)

	// a mutation commits and invalidates while the fill is still in flight
	require.NoError(t, c.Invalidate(ctx, "A1"))

	ok, err := c.SetIfVersion(ctx, "A1", 0, v)
	require.NoError(t, err)
	assert.False(t, ok)
	_, err = c.Get(ctx, "A1")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)

	v, err = c.Version(ctx, "A1")
	require.NoError(t, err)
	ok, err = c.SetIfVersion(ctx, "A1", 1, v)
	require.NoError(t, err)
	assert.True(t, ok)

	likes, err := c.Get(ctx, "A1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), likes)
}

func TestLikeCountCache_OtherAlbumsDoNotBlockFill(t *testing.T) {
	ctx := context.Background()
	c := NewLikeCountCache(0)

	v, err := c.Version(ctx, "A1")
	require.NoError(t, err)
	require.NoError(t, c.Invalidate(ctx, "A2"))

	ok, err := c.SetIfVersion(ctx, "A1", 4, v)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLikeCountCache_Eviction(t *testing.T) {
	ctx := context.Background()
	c := NewLikeCountCache(2)

	require.NoError(t, c.Set(ctx, "A1", 1))
	require.NoError(t, c.Set(ctx, "A2", 2))

	// A1 becomes the most recently used
	_, err := c.Get(ctx, "A1")
	require.NoError(t, err)

	require.NoError(t, c.Set(ctx, "A3", 3))

	_, err = c.Get(ctx, "A2")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
	likes, err := c.Get(ctx, "A1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), likes)
	assert.Equal(t, 2, c.Len())
}

func TestLikeCountCache_EvictedSlotRejectsStaleFill(t *testing.T) {
	ctx := context.Background()
	c := NewLikeCountCache(1)

	v, err := c.Version(ctx, "A1")
	require.NoError(t, err)

	// A2 pushes A1's slot out, then A1 is invalidated while absent
	require.NoError(t, c.Set(ctx, "A2", 2))
	require.NoError(t, c.Invalidate(ctx, "A1"))

	ok, err := c.SetIfVersion(ctx, "A1", 9, v)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLikeCountCache_Concurrent(t *testing.T) {
	ctx := context.Background()
	c := NewLikeCountCache(8)
	ids := []string{"A1", "A2", "A3", "A4", "A5", "A6", "A7", "A8", "A9", "A10"}

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := ids[i%len(ids)]
			v, _ := c.Version(ctx, id)
			_, _ = c.SetIfVersion(ctx, id, int64(i), v)
			_, _ = c.Get(ctx, id)
			_ = c.Invalidate(ctx, id)
			_ = c.Set(ctx, id, int64(i))
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Len(), 8)
}
