package services

import (
	"testing"

	"github.com/emrerecber/exportiq360/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testQuestions() []models.Question {
	return []models.Question{
		{
			ID:       "q1",
			TextTR:   "Soru 1",
			TextEN:   "Question 1",
			Category: models.CategoryStrategy,
			Channels: []string{models.ChannelEcommerce, models.ChannelEExport},
		},
		{
			ID:       "q2",
			TextTR:   "Soru 2",
			TextEN:   "Question 2",
			Category: models.CategoryTech,
			Channels: []string{models.ChannelEcommerce},
		},
	}
}

func TestOverallScore(t *testing.T) {
	s := NewScoringService()

	t.Run("mixed answers", func(t *testing.T) {
		responses := []models.Response{
			{QuestionID: "q1", Answer: 5},
			{QuestionID: "q2", Answer: 1},
		}
		assert.Equal(t, 60.0, s.OverallScore(responses))
	})

	t.Run("empty set is zero", func(t *testing.T) {
		assert.Equal(t, 0.0, s.OverallScore(nil))
	})

	t.Run("all fives", func(t *testing.T) {
		responses := []models.Response{
			{QuestionID: "q1", Answer: 5},
			{QuestionID: "q2", Answer: 5},
		}
		assert.Equal(t, 100.0, s.OverallScore(responses))
	})

	t.Run("rounds to two decimals", func(t *testing.T) {
		responses := []models.Response{
			{QuestionID: "q1", Answer: 1},
			{QuestionID: "q2", Answer: 1},
			{QuestionID: "q3", Answer: 2},
		}
		// 4/15*100 = 26.666...
		assert.Equal(t, 26.67, s.OverallScore(responses))
	})
}

func TestCategoryScores(t *testing.T) {
	s := NewScoringService()
	questions := testQuestions()

	responses := []models.Response{
		{QuestionID: "q1", Answer: 5},
		{QuestionID: "q2", Answer: 1},
	}

	scores := s.CategoryScores(responses, questions, "en")
	assert.Equal(t, map[string]float64{
		"Strategy and Planning":         100.0,
		"Technology and Infrastructure": 20.0,
	}, scores)
}

func TestCategoryScoresSkipsUnknownQuestions(t *testing.T) {
	s := NewScoringService()

	responses := []models.Response{
		{QuestionID: "q1", Answer: 5},
		{QuestionID: "missing", Answer: 1},
	}

	scores := s.CategoryScores(responses, testQuestions(), "en")
	assert.Equal(t, map[string]float64{"Strategy and Planning": 100.0}, scores)
}

func TestChannelScores(t *testing.T) {
	s := NewScoringService()
	questions := testQuestions()

	responses := []models.Response{
		{QuestionID: "q1", Answer: 5},
		{QuestionID: "q2", Answer: 1},
	}

	scores := s.ChannelScores(responses, questions, "en")
	require.Len(t, scores, 2)

	// sorted by channel tag: ecommerce before eexport
	ecommerce := scores[0]
	assert.Equal(t, "E-Commerce (Domestic)", ecommerce.Channel)
	assert.Equal(t, 6, ecommerce.Score)
	assert.Equal(t, 10, ecommerce.MaxScore)
	assert.Equal(t, 60.0, ecommerce.Percentage)
	assert.Equal(t, models.LevelAdvanced, ecommerce.Level)

	eexport := scores[1]
	assert.Equal(t, "E-Export (International)", eexport.Channel)
	assert.Equal(t, 5, eexport.Score)
	assert.Equal(t, 5, eexport.MaxScore)
	assert.Equal(t, 100.0, eexport.Percentage)
	assert.Equal(t, models.LevelExpert, eexport.Level)
}

func TestChannelScoresEmptyResponses(t *testing.T) {
	s := NewScoringService()
	assert.Empty(t, s.ChannelScores(nil, testQuestions(), "tr"))
}

func TestLevelFor(t *testing.T) {
	cases := []struct {
		percentage float64
		want       string
	}{
		{0, models.LevelBeginner},
		{39.99, models.LevelBeginner},
		{40, models.LevelIntermediate},
		{59.99, models.LevelIntermediate},
		{60, models.LevelAdvanced},
		{79.99, models.LevelAdvanced},
		{80, models.LevelExpert},
		{100, models.LevelExpert},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, LevelFor(tc.percentage), "percentage %v", tc.percentage)
	}
}

func TestLocalizedNames(t *testing.T) {
	assert.Equal(t, "E-Ticaret (Yurtiçi)", ChannelName(models.ChannelEcommerce, "tr"))
	assert.Equal(t, "E-Commerce (Domestic)", ChannelName(models.ChannelEcommerce, "en"))
	assert.Equal(t, "Strateji ve Planlama", CategoryName(models.CategoryStrategy, "tr"))
	assert.Equal(t, "Strategy and Planning", CategoryName(models.CategoryStrategy, "en"))

	// unknown tags fall back to a readable form
	assert.Equal(t, "Wholesale", ChannelName("wholesale", "en"))
}
