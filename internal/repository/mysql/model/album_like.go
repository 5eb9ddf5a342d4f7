package model

import (
	"time"

	"github.com/Guyuepp/album-catalog/domain"
)

// AlbumLike has a composite primary key so the table itself enforces one like per pair
type AlbumLike struct {
	UserID    string    `gorm:"column:user_id;primaryKey;type:varchar(50)"`
	AlbumID   string    `gorm:"column:album_id;primaryKey;type:varchar(50)"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (AlbumLike) TableName() string {
	return "user_album_likes"
}

func NewAlbumLikeFromDomain(l domain.AlbumLike) AlbumLike {
	return AlbumLike{
		UserID:    l.UserID,
		AlbumID:   l.AlbumID,
		CreatedAt: l.CreatedAt,
	}
}
