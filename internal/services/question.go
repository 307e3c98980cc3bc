package services

import (
	"github.com/emrerecber/exportiq360/internal/models"

	"gorm.io/gorm"
)

type QuestionService struct {
	db *gorm.DB
}

func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{db: db}
}

// ListForPackage returns the active question subset a package tier sees,
// in display order. Free trial users get only the trial questions; the
// combined package sees everything; other tiers see questions tagged
// with their channel.
func (s *QuestionService) ListForPackage(packageType string) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.Where("is_active = ?", true).
		Order("order_num ASC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}

	if packageType == models.PlanCombined {
		return questions, nil
	}

	filtered := make([]models.Question, 0, len(questions))
	for _, q := range questions {
		if packageType == models.PlanFreeTrial {
			if q.IsFreeTrial {
				filtered = append(filtered, q)
			}
			continue
		}
		if q.InChannel(packageType) {
			filtered = append(filtered, q)
		}
	}
	return filtered, nil
}

// ListAll returns every active question, used as the reference set for
// report generation when the caller supplies none.
func (s *QuestionService) ListAll() ([]models.Question, error) {
	var questions []models.Question
	err := s.db.Where("is_active = ?", true).
		Order("order_num ASC").
		Find(&questions).Error
	return questions, err
}
