package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MinUsernameLength = 4
	MaxUsernameLength = 15
)

var (
	ErrUsernameLength = fmt.Errorf("username must be between %d and %d characters", MinUsernameLength, MaxUsernameLength)
)

// User is an account holder. Tags is the user's tag vocabulary: every tag
// attached to one of the user's records must be a member of it.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Username     string    `gorm:"type:varchar(15);uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	Tags         TagList   `gorm:"type:text" json:"tags"`

	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Records []Record `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate hook for User
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}

	// Set timestamps if not already set (for tests)
	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = now
	}

	return u.Validate()
}

// BeforeUpdate hook for User
func (u *User) BeforeUpdate(tx *gorm.DB) error {
	u.UpdatedAt = time.Now()
	return u.Validate()
}

// Validate validates the user fields
func (u *User) Validate() error {
	if len(u.Username) < MinUsernameLength || len(u.Username) > MaxUsernameLength {
		return ErrUsernameLength
	}

	if u.PasswordHash == "" {
		return errors.New("password hash is required")
	}

	return nil
}

// HasTag reports whether the tag is a member of the user's vocabulary,
// compared case-insensitively
func (u *User) HasTag(tag string) bool {
	return u.Tags.Contains(tag)
}

// TableName returns the table name for User
func (u *User) TableName() string {
	return "users"
}
