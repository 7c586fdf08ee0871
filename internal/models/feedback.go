package models

import (
	"time"

	"github.com/google/uuid"
)

// Feedback records a user's rating of the results they were shown
type Feedback struct {
	ID     uuid.UUID `json:"id" db:"id" gorm:"primaryKey;type:uuid"`
	UserID uuid.UUID `json:"user_id" db:"user_id" gorm:"not null;index"`

	// 1..5 sliders from the feedback form
	Accuracy   int    `json:"accuracy" db:"accuracy" gorm:"not null"`
	Experience int    `json:"experience" db:"experience" gorm:"not null"`
	Comments   string `json:"comments" db:"comments" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"autoCreateTime"`

	// Relationships
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID"`
}

// TableName sets the table name for the Feedback model
func (Feedback) TableName() string {
	return "feedback"
}
