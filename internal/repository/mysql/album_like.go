package mysql

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Guyuepp/album-catalog/domain"
	"github.com/Guyuepp/album-catalog/internal/repository/mysql/model"
)

type likeRepository struct {
	DB *gorm.DB
}

var _ domain.LikeRepository = (*likeRepository)(nil)

// NewLikeRepository will create the mysql backed like store
func NewLikeRepository(db *gorm.DB) *likeRepository {
	return &likeRepository{db}
}

func (m *likeRepository) AddLike(ctx context.Context, like domain.AlbumLike) error {
	if like.CreatedAt.IsZero() {
		like.CreatedAt = time.Now()
	}
	row := model.NewAlbumLikeFromDomain(like)

	return m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := albumMustExist(tx, like.AlbumID); err != nil {
			return err
		}

		// the composite key turns a repeated like into a no-op
		err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error
		if err != nil {
			return errors.Wrapf(err, "insert like of album %s by user %s", like.AlbumID, like.UserID)
		}
		return nil
	})
}

func (m *likeRepository) RemoveLike(ctx context.Context, like domain.AlbumLike) error {
	result := m.DB.WithContext(ctx).
		Where("user_id = ? AND album_id = ?", like.UserID, like.AlbumID).
		Delete(&model.AlbumLike{})

	if result.Error != nil {
		return errors.Wrapf(result.Error, "delete like of album %s by user %s", like.AlbumID, like.UserID)
	}
	return nil
}

func (m *likeRepository) CountLikes(ctx context.Context, albumID string) (int64, error) {
	db := m.DB.WithContext(ctx)
	if err := albumMustExist(db, albumID); err != nil {
		return 0, err
	}

	var likes int64
	err := db.Model(&model.AlbumLike{}).
		Where("album_id = ?", albumID).
		Count(&likes).Error
	if err != nil {
		return 0, errors.Wrapf(err, "count likes of album %s", albumID)
	}
	return likes, nil
}

func albumMustExist(db *gorm.DB, albumID string) error {
	var n int64
	err := db.Model(&model.Album{}).
		Where("id = ?", albumID).
		Count(&n).Error
	if err != nil {
		return errors.Wrapf(err, "look up album %s", albumID)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
