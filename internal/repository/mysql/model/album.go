package model

import "time"

// Album maps the album catalogue's table. This service only checks ids against it.
type Album struct {
	ID        string    `gorm:"primaryKey;type:varchar(50)"`
	Name      string    `gorm:"type:text;not null"`
	Year      int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"type:datetime"`
	UpdatedAt time.Time `gorm:"type:datetime"`
}

func (Album) TableName() string {
	return "albums"
}
