package models

import (
	"time"

	"gorm.io/datatypes"
)

type Assessment struct {
	ID                   string         `gorm:"size:36;primaryKey" json:"id"`
	UserID               string         `gorm:"size:36;not null;index" json:"user_id"`
	PackageType          string         `gorm:"size:20;not null" json:"package_type"`
	Language             string         `gorm:"size:5;default:'tr'" json:"language"`
	TotalQuestions       int            `gorm:"not null;default:0" json:"total_questions"`
	AnsweredQuestions    int            `gorm:"default:0" json:"answered_questions"`
	IsCompleted          bool           `gorm:"default:false" json:"is_completed"`
	CompletionPercentage float64        `gorm:"default:0" json:"completion_percentage"`
	StartedAt            time.Time      `json:"started_at"`
	CompletedAt          *time.Time     `json:"completed_at,omitempty"`
	OverallScore         *float64       `json:"overall_score,omitempty"`
	CategoryScores       datatypes.JSON `json:"category_scores,omitempty"`
	ChannelScores        datatypes.JSON `json:"channel_scores,omitempty"`
	ReportGenerated      bool           `gorm:"default:false" json:"report_generated"`
	ReportData           datatypes.JSON `json:"report_data,omitempty"`
	Responses            []Response     `gorm:"foreignKey:AssessmentID;references:ID" json:"responses,omitempty"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
}
