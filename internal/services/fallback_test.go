package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackComment(t *testing.T) {
	f := NewFallbackProvider()

	t.Run("covers every answer in both languages", func(t *testing.T) {
		for _, lang := range []string{"tr", "en"} {
			for answer := 1; answer <= 5; answer++ {
				assert.NotEmpty(t, f.Comment(answer, lang), "lang=%s answer=%d", lang, answer)
			}
		}
	})

	t.Run("unknown language falls back to turkish", func(t *testing.T) {
		assert.Equal(t, f.Comment(4, "tr"), f.Comment(4, "de"))
	})

	t.Run("out of range answer gets the neutral comment", func(t *testing.T) {
		assert.Equal(t, f.Comment(3, "en"), f.Comment(0, "en"))
		assert.Equal(t, f.Comment(3, "en"), f.Comment(9, "en"))
	})
}

func TestFallbackInsights(t *testing.T) {
	f := NewFallbackProvider()

	scores := map[string]float64{
		"Strategy and Planning":         85.0,
		"Technology and Infrastructure": 30.0,
		"Marketing and Communication":   55.0,
	}

	insights := f.Insights(scores, "en")

	require.NotEmpty(t, insights.Strengths)
	require.NotEmpty(t, insights.Weaknesses)
	require.NotEmpty(t, insights.Recommendations)
	require.NotEmpty(t, insights.ActionPlan.Immediate)
	require.NotEmpty(t, insights.ActionPlan.MidTerm)
	require.NotEmpty(t, insights.ActionPlan.LongTerm)

	assert.Contains(t, insights.Strengths[0], "Strategy and Planning")
	assert.Contains(t, insights.Weaknesses[0], "Technology and Infrastructure")
	assert.Contains(t, insights.Recommendations[0], "Technology and Infrastructure")
}

func TestFallbackInsightsDeterministic(t *testing.T) {
	f := NewFallbackProvider()
	scores := map[string]float64{"A": 50, "B": 50, "C": 70}

	first := f.Insights(scores, "tr")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, f.Insights(scores, "tr"))
	}
}

func TestFallbackInsightsEmptyScores(t *testing.T) {
	f := NewFallbackProvider()

	insights := f.Insights(nil, "en")

	// still a complete structure, just without the ranked items
	assert.NotEmpty(t, insights.Strengths)
	assert.NotEmpty(t, insights.Weaknesses)
	assert.NotEmpty(t, insights.Recommendations)
	assert.NotEmpty(t, insights.ActionPlan.LongTerm)
}
