package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Guyuepp/album-catalog/domain"
)

const (
	KeyAlbumLikes        = "album:likes:%s"
	KeyAlbumLikesVersion = "album:likes:version:%s"
)

// KEYS = {count key, version key}
// ARGV = {likes, expected version}
var setIfVersionScript = redis.NewScript(`
	local current = redis.call('GET', KEYS[2])
	if current == false then
		current = '0'
	end
	if current ~= ARGV[2] then
		return 0 -- invalidated since the version was read
	end
	redis.call('SET', KEYS[1], ARGV[1])
	return 1
`)

// likeCountCache shares like counts between every process pointing at the same redis.
// Counts carry no TTL; they only leave the cache through Invalidate.
type likeCountCache struct {
	client *redis.Client
}

var _ domain.LikeCountCache = (*likeCountCache)(nil)

func NewLikeCountCache(client *redis.Client) *likeCountCache {
	return &likeCountCache{
		client,
	}
}

func (c *likeCountCache) Get(ctx context.Context, albumID string) (int64, error) {
	likes, err := c.client.Get(ctx, fmt.Sprintf(KeyAlbumLikes, albumID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, domain.ErrCacheMiss
	} else if err != nil {
		return 0, err
	}
	return likes, nil
}

func (c *likeCountCache) Set(ctx context.Context, albumID string, likes int64) error {
	return c.client.Set(ctx, fmt.Sprintf(KeyAlbumLikes, albumID), likes, 0).Err()
}

func (c *likeCountCache) Invalidate(ctx context.Context, albumID string) error {
	pipe := c.client.TxPipeline()
	pipe.Del(ctx, fmt.Sprintf(KeyAlbumLikes, albumID))
	pipe.Incr(ctx, fmt.Sprintf(KeyAlbumLikesVersion, albumID))
	_, err := pipe.Exec(ctx)
	return err
}

func (c *likeCountCache) Version(ctx context.Context, albumID string) (uint64, error) {
	version, err := c.client.Get(ctx, fmt.Sprintf(KeyAlbumLikesVersion, albumID)).Uint64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return version, err
}

func (c *likeCountCache) SetIfVersion(ctx context.Context, albumID string, likes int64, version uint64) (bool, error) {
	keys := []string{
		fmt.Sprintf(KeyAlbumLikes, albumID),
		fmt.Sprintf(KeyAlbumLikesVersion, albumID),
	}
	res, err := setIfVersionScript.Run(ctx, c.client, keys, likes, version).Int()
	if err != nil {
		return false, err
	}
	return res == 1, nil
}
