package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Verdict values a classified claim can carry.
const (
	VerdictFake    = "Fake"
	VerdictGenuine = "Genuine"
)

// NormalizeKey derives the canonical lookup key for claim text. Claims that
// differ only in case or leading/trailing whitespace map to the same key.
func NormalizeKey(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// FactCheck is one cached verdict for a claim. ContentKey holds the
// normalized form of Content and carries the unique index that resolves
// concurrent inserts for the same claim: the database picks the winner, not
// the application.
type FactCheck struct {
	ID         uuid.UUID `json:"id" db:"id" gorm:"primaryKey;type:uuid"`
	ContentKey string    `json:"-" db:"content_key" gorm:"uniqueIndex;not null"`
	Content    string    `json:"content" db:"content" gorm:"type:text;not null"`
	Verdict    string    `json:"verdict" db:"verdict" gorm:"not null"`

	// Severity signal recorded when the verdict was first classified
	SeverityScore   int            `json:"severity_score" db:"severity_score" gorm:"default:0"`
	MatchedKeywords pq.StringArray `json:"matched_keywords" db:"matched_keywords" gorm:"type:text[]"`

	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at" gorm:"autoUpdateTime"`
}

// TableName sets the table name for the FactCheck model
func (FactCheck) TableName() string {
	return "fact_checks"
}
