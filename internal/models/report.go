package models

import "time"

// ChannelScore is the per-channel aggregate. Score and MaxScore are raw
// sums; Percentage is normalized to [0,100].
type ChannelScore struct {
	Channel    string  `json:"channel"`
	Score      int     `json:"score"`
	MaxScore   int     `json:"max_score"`
	Percentage float64 `json:"percentage"`
	Level      string  `json:"level"`
}

// Qualitative level labels assigned by fixed percentage thresholds.
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
	LevelExpert       = "Expert"
)

// QuestionAnalysis pairs a single answer with its AI commentary.
type QuestionAnalysis struct {
	QuestionID   string `json:"question_id"`
	QuestionText string `json:"question_text"`
	UserAnswer   int    `json:"user_answer"`
	AIComment    string `json:"ai_comment"`
	Category     string `json:"category"`
}

// ActionPlan buckets recommended actions into three time horizons.
type ActionPlan struct {
	Immediate []string `json:"immediate"`
	MidTerm   []string `json:"mid_term"`
	LongTerm  []string `json:"long_term"`
}

// StrategicInsights is the holistic narrative layered over the numeric
// scores.
type StrategicInsights struct {
	Strengths       []string   `json:"strengths"`
	Weaknesses      []string   `json:"weaknesses"`
	Recommendations []string   `json:"recommendations"`
	ActionPlan      ActionPlan `json:"action_plan"`
}

// ComprehensiveReport is the immutable result of one report generation.
// Regeneration recomputes everything from the response set.
type ComprehensiveReport struct {
	UserID           string             `json:"user_id"`
	AssessmentID     string             `json:"assessment_id"`
	PackageType      string             `json:"package_type"`
	OverallScore     float64            `json:"overall_score"`
	ChannelScores    []ChannelScore     `json:"channel_scores"`
	CategoryScores   map[string]float64 `json:"category_scores"`
	QuestionAnalyses []QuestionAnalysis `json:"question_analyses"`
	Strengths        []string           `json:"strengths"`
	Weaknesses       []string           `json:"weaknesses"`
	Recommendations  []string           `json:"recommendations"`
	ActionPlan       ActionPlan         `json:"action_plan"`
	GeneratedAt      time.Time          `json:"generated_at"`
}
