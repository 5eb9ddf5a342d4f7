package like

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/Guyuepp/album-catalog/domain"
)

// fillTimeout bounds a shared store count, which outlives the caller that started it.
const fillTimeout = 10 * time.Second

// Service records likes and answers like counts through a write-invalidate cache.
// Mutations go to the store first and only then drop the cached count; reads
// repopulate the cache from the store on a miss.
type Service struct {
	likeRepo   domain.LikeRepository
	countCache domain.LikeCountCache
	publisher  domain.InvalidationPublisher
	fillGroup  singleflight.Group
}

var _ domain.LikeUsecase = (*Service)(nil)

// NewService will create a new like service object.
// publisher may be nil when no other process shares the album likes.
func NewService(l domain.LikeRepository, c domain.LikeCountCache, p domain.InvalidationPublisher) *Service {
	return &Service{
		likeRepo:   l,
		countCache: c,
		publisher:  p,
	}
}

func (s *Service) AddAlbumLike(ctx context.Context, userID, albumID string) error {
	err := s.likeRepo.AddLike(ctx, domain.AlbumLike{
		AlbumID: albumID,
		UserID:  userID,
	})
	if err != nil {
		return err
	}
	return s.invalidate(ctx, albumID)
}

func (s *Service) DeleteAlbumLike(ctx context.Context, userID, albumID string) error {
	err := s.likeRepo.RemoveLike(ctx, domain.AlbumLike{
		AlbumID: albumID,
		UserID:  userID,
	})
	if err != nil {
		return err
	}
	return s.invalidate(ctx, albumID)
}

func (s *Service) GetAlbumLikesCount(ctx context.Context, albumID string) (domain.LikesCount, error) {
	likes, err := s.countCache.Get(ctx, albumID)
	if err == nil {
		return domain.LikesCount{Likes: likes, Source: domain.SourceCache}, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("failed to get like count of album %s from cache: %v", albumID, err)
	}

	version, err := s.countCache.Version(ctx, albumID)
	if err != nil {
		logrus.Warnf("failed to read cache version of album %s: %v", albumID, err)
		likes, err := s.likeRepo.CountLikes(ctx, albumID)
		if err != nil {
			return domain.LikesCount{}, err
		}
		return domain.LikesCount{Likes: likes, Source: domain.SourceStore}, nil
	}

	// a read that starts after an invalidation sees a new version and never
	// joins a fill started before it
	key := fmt.Sprintf("%s:%d", albumID, version)
	fillCtx := context.WithoutCancel(ctx)
	ch := s.fillGroup.DoChan(key, func() (any, error) {
		ctx, cancel := context.WithTimeout(fillCtx, fillTimeout)
		defer cancel()
		return s.fill(ctx, albumID, version)
	})

	select {
	case <-ctx.Done():
		return domain.LikesCount{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return domain.LikesCount{}, res.Err
		}
		return domain.LikesCount{Likes: res.Val.(int64), Source: domain.SourceStore}, nil
	}
}

// fill counts likes in the store and caches the result unless the album was
// invalidated after version was read.
func (s *Service) fill(ctx context.Context, albumID string, version uint64) (int64, error) {
	likes, err := s.likeRepo.CountLikes(ctx, albumID)
	if err != nil {
		return 0, err
	}

	ok, err := s.countCache.SetIfVersion(ctx, albumID, likes, version)
	if err != nil {
		logrus.Warnf("failed to cache like count of album %s: %v", albumID, err)
	} else if !ok {
		logrus.Debugf("like count of album %s changed while counting, not cached", albumID)
	}
	return likes, nil
}

func (s *Service) invalidate(ctx context.Context, albumID string) error {
	if err := s.countCache.Invalidate(ctx, albumID); err != nil {
		logrus.Errorf("failed to invalidate like count of album %s: %v", albumID, err)
		return fmt.Errorf("invalidate like count of album %s: %w", albumID, err)
	}
	if s.publisher != nil {
		s.publisher.Send(albumID)
	}
	return nil
}
