package post

import (
	"time"

	"devconnect/internal/core/user"
)

// Post is a user-owned text post. Rows follow the owner on deletion via
// the foreign key cascade.
type Post struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	Title       string    `gorm:"size:255;not null"`
	Description string    `gorm:"type:text;not null"`
	UserID      uint      `gorm:"not null;index"`
	User        user.User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}
