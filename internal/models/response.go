package models

import "time"

// Response is a user's 1-5 answer to a single question. The composite
// unique index gives last-write-wins semantics: re-answering a question
// updates the existing row in place.
type Response struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       string    `gorm:"size:36;not null;uniqueIndex:idx_response_unique;index" json:"user_id"`
	AssessmentID string    `gorm:"size:36;not null;uniqueIndex:idx_response_unique;index" json:"assessment_id"`
	QuestionID   string    `gorm:"size:36;not null;uniqueIndex:idx_response_unique" json:"question_id"`
	Answer       int       `gorm:"not null" json:"answer"`
	PackageType  string    `gorm:"size:20" json:"package_type"`
	AIComment    string    `gorm:"type:text" json:"ai_comment,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
