package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Guyuepp/album-catalog/domain"
)

// likeRepository keeps like records in process memory. Albums must be
// registered before they can be liked.
type likeRepository struct {
	mu     sync.RWMutex
	albums map[string]struct{}
	likes  map[string]map[string]time.Time // album id -> user id -> liked at
}

var _ domain.LikeRepository = (*likeRepository)(nil)

func NewLikeRepository(albumIDs ...string) *likeRepository {
	r := &likeRepository{
		albums: make(map[string]struct{}, len(albumIDs)),
		likes:  make(map[string]map[string]time.Time),
	}
	for _, id := range albumIDs {
		r.albums[id] = struct{}{}
	}
	return r
}

// RegisterAlbum makes albumID known to the repository
func (r *likeRepository) RegisterAlbum(albumID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.albums[albumID] = struct{}{}
}

func (r *likeRepository) AddLike(ctx context.Context, like domain.AlbumLike) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.albums[like.AlbumID]; !ok {
		return domain.ErrNotFound
	}
	users, ok := r.likes[like.AlbumID]
	if !ok {
		users = make(map[string]time.Time)
		r.likes[like.AlbumID] = users
	}
	if _, liked := users[like.UserID]; !liked {
		createdAt := like.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now()
		}
		users[like.UserID] = createdAt
	}
	return nil
}

func (r *likeRepository) RemoveLike(ctx context.Context, like domain.AlbumLike) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if users, ok := r.likes[like.AlbumID]; ok {
		delete(users, like.UserID)
		if len(users) == 0 {
			delete(r.likes, like.AlbumID)
		}
	}
	return nil
}

func (r *likeRepository) CountLikes(ctx context.Context, albumID string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.albums[albumID]; !ok {
		return 0, domain.ErrNotFound
	}
	return int64(len(r.likes[albumID])), nil
}
