package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered account.
type User struct {
	ID                uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Username          string    `json:"username" gorm:"uniqueIndex;size:255;not null"`
	Email             string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Password          string    `json:"-" gorm:"size:255;not null"` // bcrypt hash, never exposed
	FirstName         string    `json:"firstName" gorm:"size:255;not null"`
	LastName          string    `json:"lastName" gorm:"size:255;not null"`
	Bio               string    `json:"bio" gorm:"type:text"`
	ProfilePictureURL string    `json:"profilePictureUrl" gorm:"size:512"`
	HeaderURL         string    `json:"headerUrl" gorm:"size:512"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`

	// Relations
	Posts    []Post    `json:"posts,omitempty" gorm:"foreignKey:AuthorID"`
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:AuthorID"`
	Likes    []Like    `json:"likes,omitempty" gorm:"foreignKey:AuthorID"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
