package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account that can submit claims and feedback
type User struct {
	ID           uuid.UUID `json:"id" db:"id" gorm:"primaryKey;type:uuid"`
	Username     string    `json:"username" db:"username" gorm:"not null"`
	Email        string    `json:"email" db:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" db:"password_hash" gorm:"not null"`
	IsActive     bool      `json:"is_active" db:"is_active" gorm:"default:true"`

	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at" gorm:"autoUpdateTime"`

	// Relationships
	Feedback []Feedback `json:"feedback,omitempty" gorm:"foreignKey:UserID"`
}

// TableName sets the table name for the User model
func (User) TableName() string {
	return "users"
}
