package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/emrerecber/exportiq360/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ResponseService struct {
	db *gorm.DB
}

func NewResponseService(db *gorm.DB) *ResponseService {
	return &ResponseService{db: db}
}

// ResponseInput is one answer in a save batch.
type ResponseInput struct {
	QuestionID string `json:"question_id" binding:"required"`
	Answer     int    `json:"answer" binding:"required,min=1,max=5"`
}

// SaveBatch upserts a batch of answers. Re-answering a question updates
// the existing row (last-write-wins on user/assessment/question), then
// assessment progress is recomputed.
func (s *ResponseService) SaveBatch(userID, assessmentID, packageType string, items []ResponseInput) (int, error) {
	if len(items) == 0 {
		return 0, errors.New("no responses to save")
	}
	items = dedupeByQuestion(items)

	if err := s.ensureAssessment(userID, assessmentID, packageType, len(items)); err != nil {
		return 0, err
	}

	responses := make([]models.Response, 0, len(items))
	for _, item := range items {
		responses = append(responses, models.Response{
			UserID:       userID,
			AssessmentID: assessmentID,
			QuestionID:   item.QuestionID,
			Answer:       item.Answer,
			PackageType:  packageType,
		})
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"},
			{Name: "assessment_id"},
			{Name: "question_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"answer", "package_type", "updated_at"}),
	}).Create(&responses).Error
	if err != nil {
		return 0, err
	}

	if err := s.updateProgress(userID, assessmentID); err != nil {
		return 0, err
	}

	return len(responses), nil
}

// GetResponses returns the stored answers in insert order, which an
// upsert preserves.
func (s *ResponseService) GetResponses(userID, assessmentID string) ([]models.Response, error) {
	var responses []models.Response
	err := s.db.Where("user_id = ? AND assessment_id = ?", userID, assessmentID).
		Order("id ASC").
		Find(&responses).Error
	return responses, err
}

// ErrAssessmentNotFound distinguishes a missing (or foreign) assessment
// from database failures, which are passed through.
var ErrAssessmentNotFound = errors.New("assessment not found")

func (s *ResponseService) GetAssessment(userID, assessmentID string) (*models.Assessment, error) {
	var assessment models.Assessment
	err := s.db.Where("id = ? AND user_id = ?", assessmentID, userID).First(&assessment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAssessmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load assessment: %w", err)
	}
	return &assessment, nil
}

func (s *ResponseService) ListAssessments(userID string) ([]models.Assessment, error) {
	var assessments []models.Assessment
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&assessments).Error
	return assessments, err
}

// SaveReport persists a generated report onto its assessment and writes
// the per-question comments back to the response rows.
func (s *ResponseService) SaveReport(assessmentID string, report *models.ComprehensiveReport) error {
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return err
	}
	channelJSON, err := json.Marshal(report.ChannelScores)
	if err != nil {
		return err
	}
	categoryJSON, err := json.Marshal(report.CategoryScores)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Assessment{}).
			Where("id = ?", assessmentID).
			Updates(map[string]interface{}{
				"overall_score":    report.OverallScore,
				"channel_scores":   channelJSON,
				"category_scores":  categoryJSON,
				"report_data":      reportJSON,
				"report_generated": true,
			}).Error
		if err != nil {
			return err
		}

		for _, analysis := range report.QuestionAnalyses {
			err := tx.Model(&models.Response{}).
				Where("user_id = ? AND assessment_id = ? AND question_id = ?",
					report.UserID, assessmentID, analysis.QuestionID).
				Update("ai_comment", analysis.AIComment).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// dedupeByQuestion keeps the last answer per question. Postgres rejects
// a multi-row ON CONFLICT insert that touches the same index key twice,
// and last-write-wins covers duplicates inside one batch too.
func dedupeByQuestion(items []ResponseInput) []ResponseInput {
	deduped := make([]ResponseInput, 0, len(items))
	index := make(map[string]int, len(items))
	for _, item := range items {
		if at, ok := index[item.QuestionID]; ok {
			deduped[at] = item
			continue
		}
		index[item.QuestionID] = len(deduped)
		deduped = append(deduped, item)
	}
	return deduped
}

func (s *ResponseService) ensureAssessment(userID, assessmentID, packageType string, totalHint int) error {
	var assessment models.Assessment
	err := s.db.Where("id = ?", assessmentID).First(&assessment).Error
	if err == nil {
		if assessment.UserID != userID {
			return errors.New("assessment belongs to another user")
		}
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	assessment = models.Assessment{
		ID:             assessmentID,
		UserID:         userID,
		PackageType:    packageType,
		TotalQuestions: totalHint,
		StartedAt:      time.Now(),
	}
	return s.db.Create(&assessment).Error
}

func (s *ResponseService) updateProgress(userID, assessmentID string) error {
	var assessment models.Assessment
	if err := s.db.Where("id = ?", assessmentID).First(&assessment).Error; err != nil {
		return err
	}

	var answered int64
	err := s.db.Model(&models.Response{}).
		Where("user_id = ? AND assessment_id = ?", userID, assessmentID).
		Count(&answered).Error
	if err != nil {
		return err
	}

	total := assessment.TotalQuestions
	if int(answered) > total {
		total = int(answered)
	}

	updates := map[string]interface{}{
		"total_questions":       total,
		"answered_questions":    int(answered),
		"completion_percentage": 0.0,
	}
	if total > 0 {
		updates["completion_percentage"] = round2(float64(answered) / float64(total) * 100)
	}
	if int(answered) >= total && total > 0 && !assessment.IsCompleted {
		now := time.Now()
		updates["is_completed"] = true
		updates["completed_at"] = now
	}

	return s.db.Model(&assessment).Updates(updates).Error
}
