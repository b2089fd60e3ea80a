package user

import (
	"time"
)

// User is a local directory record for a principal of the external
// identity provider. SubjectID is the join key; lookups never go by email.
type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	SubjectID    string    `gorm:"column:subject_id;size:128;uniqueIndex;not null" json:"subject_id"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Name         *string   `gorm:"size:255" json:"name,omitempty"`
	ProfileImage *string   `gorm:"size:512" json:"profile_image,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
