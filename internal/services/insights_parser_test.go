package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInsightsTurkish(t *testing.T) {
	text := `GÜÇLÜ YÖNLER:
- Güçlü dijital strateji
- Deneyimli ekip

ZAYIF YÖNLER:
- Lojistik süreçleri zayıf

ÖNERİLER:
- Kargo entegrasyonlarını genişletin

AKSİYON PLANI:
Kısa Vadeli (0-3 ay):
- Mevcut araçları optimize edin
Orta Vadeli (3-6 ay):
- Süreçleri otomatikleştirin
Uzun Vadeli (6-12 ay):
- Yeni pazarlara açılın`

	insights, complete := ParseInsights(text)
	require.True(t, complete)

	assert.Equal(t, []string{"Güçlü dijital strateji", "Deneyimli ekip"}, insights.Strengths)
	assert.Equal(t, []string{"Lojistik süreçleri zayıf"}, insights.Weaknesses)
	assert.Equal(t, []string{"Kargo entegrasyonlarını genişletin"}, insights.Recommendations)
	assert.Equal(t, []string{"Mevcut araçları optimize edin"}, insights.ActionPlan.Immediate)
	assert.Equal(t, []string{"Süreçleri otomatikleştirin"}, insights.ActionPlan.MidTerm)
	assert.Equal(t, []string{"Yeni pazarlara açılın"}, insights.ActionPlan.LongTerm)
}

func TestParseInsightsEnglish(t *testing.T) {
	text := `**STRENGTHS:**
• Solid marketing automation
**WEAKNESSES:**
• Limited export experience
**RECOMMENDATIONS:**
• Hire a cross-border specialist
**ACTION PLAN:**
Short Term:
• Audit current tooling
Medium Term:
• Integrate a PIM system
Long Term:
• Expand into two new markets`

	insights, complete := ParseInsights(text)
	require.True(t, complete)

	assert.Equal(t, []string{"Solid marketing automation"}, insights.Strengths)
	assert.Equal(t, []string{"Limited export experience"}, insights.Weaknesses)
	assert.Equal(t, []string{"Hire a cross-border specialist"}, insights.Recommendations)
	assert.Equal(t, []string{"Audit current tooling"}, insights.ActionPlan.Immediate)
	assert.Equal(t, []string{"Integrate a PIM system"}, insights.ActionPlan.MidTerm)
	assert.Equal(t, []string{"Expand into two new markets"}, insights.ActionPlan.LongTerm)
}

func TestParseInsightsBulletVariants(t *testing.T) {
	text := `STRENGTHS:
- dash bullet
• dot bullet
* star bullet`

	insights, complete := ParseInsights(text)
	assert.False(t, complete)
	assert.Equal(t, []string{"dash bullet", "dot bullet", "star bullet"}, insights.Strengths)
}

func TestParseInsightsMalformed(t *testing.T) {
	t.Run("free text yields empty sections", func(t *testing.T) {
		insights, complete := ParseInsights("The company shows promise overall.")
		assert.False(t, complete)
		assert.Empty(t, insights.Strengths)
		assert.Empty(t, insights.Weaknesses)
	})

	t.Run("bullets before any header are dropped", func(t *testing.T) {
		insights, complete := ParseInsights("- orphan item\nSTRENGTHS:\n- real item")
		assert.False(t, complete)
		assert.Equal(t, []string{"real item"}, insights.Strengths)
	})

	t.Run("action plan bullets before a horizon are dropped", func(t *testing.T) {
		insights, _ := ParseInsights("ACTION PLAN:\n- floating\nShort Term:\n- kept")
		assert.Equal(t, []string{"kept"}, insights.ActionPlan.Immediate)
		assert.Empty(t, insights.ActionPlan.MidTerm)
	})

	t.Run("missing section stays empty", func(t *testing.T) {
		insights, complete := ParseInsights("STRENGTHS:\n- one\nWEAKNESSES:\n- two")
		assert.False(t, complete)
		assert.Equal(t, []string{"one"}, insights.Strengths)
		assert.Empty(t, insights.Recommendations)
	})
}

func TestParseInsightsAlternateLabels(t *testing.T) {
	// some model outputs use ZAYIFLIKLAR instead of ZAYIF YÖNLER
	insights, _ := ParseInsights("ZAYIFLIKLAR:\n- eksik alan")
	assert.Equal(t, []string{"eksik alan"}, insights.Weaknesses)
}
