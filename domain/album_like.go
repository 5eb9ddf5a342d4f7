package domain

import (
	"context"
	"time"
)

// AlbumLike is representing a like record.
// At most one record exists per (UserID, AlbumID) pair.
type AlbumLike struct {
	AlbumID   string
	UserID    string
	CreatedAt time.Time
}

// LikeSource tells where a like count was read from
type LikeSource int8

const (
	SourceStore LikeSource = iota
	SourceCache
)

func (s LikeSource) String() string {
	switch s {
	case SourceStore:
		return "store"
	case SourceCache:
		return "cache"
	default:
		return "unknown"
	}
}

// LikesCount is the answer to "how many likes does this album have"
type LikesCount struct {
	Likes  int64
	Source LikeSource
}

// LikeRepository is the source of truth for like records.
type LikeRepository interface {
	// AddLike inserts the record if absent. Adding an existing record is a no-op.
	// Returns ErrNotFound if the album doesn't exist.
	AddLike(ctx context.Context, like AlbumLike) error

	// RemoveLike deletes the record if present. Removing a missing record is a no-op.
	RemoveLike(ctx context.Context, like AlbumLike) error

	// CountLikes returns the exact number of like records of an album.
	// Returns ErrNotFound if the album doesn't exist.
	CountLikes(ctx context.Context, albumID string) (int64, error)
}

// LikeCountCache holds derived like counts. Entries are either absent or exactly
// the count observed at the last population; they are never adjusted in place.
type LikeCountCache interface {
	// Get returns ErrCacheMiss when no count is cached for the album.
	Get(ctx context.Context, albumID string) (int64, error)

	// Set unconditionally populates the entry.
	Set(ctx context.Context, albumID string, likes int64) error

	// Invalidate removes the entry and bumps the album's version.
	// Invalidating an absent entry is a no-op apart from the version bump.
	Invalidate(ctx context.Context, albumID string) error

	// Version reports the album's invalidation version.
	Version(ctx context.Context, albumID string) (uint64, error)

	// SetIfVersion populates the entry only if no invalidation happened since
	// version was read. Reports whether the entry was written.
	SetIfVersion(ctx context.Context, albumID string, likes int64, version uint64) (bool, error)
}

type LikeUsecase interface {
	AddAlbumLike(ctx context.Context, userID, albumID string) error
	DeleteAlbumLike(ctx context.Context, userID, albumID string) error
	GetAlbumLikesCount(ctx context.Context, albumID string) (LikesCount, error)
}
