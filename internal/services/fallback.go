package services

import (
	"fmt"
	"sort"

	"github.com/emrerecber/exportiq360/internal/models"
)

// FallbackProvider is the single source of static narrative content used
// whenever the generative API path is unavailable. Content is keyed by
// language and score so the report stays complete, just less personal.
type FallbackProvider struct{}

func NewFallbackProvider() *FallbackProvider {
	return &FallbackProvider{}
}

var fallbackComments = map[string]map[int]string{
	"tr": {
		5: "Mükemmel! Bu alanda çok güçlüsünüz. Bu başarıyı sürdürün.",
		4: "İyi durumdasınız. Birkaç iyileştirme ile mükemmel seviyeye ulaşabilirsiniz.",
		3: "Orta seviyedesiniz. Gelişim için potansiyel var. Odaklanın.",
		2: "Başlangıç aşamasındasınız. Bu alana yatırım yapmanız önerilir.",
		1: "Bu alan sizin için öncelikli gelişim alanı. Acil aksiyon gerekiyor.",
	},
	"en": {
		5: "Excellent! You're very strong in this area. Keep up the great work.",
		4: "You're doing well. A few improvements can take you to excellent level.",
		3: "You're at an intermediate level. There's potential for growth. Focus here.",
		2: "You're at beginner level. Investment in this area is recommended.",
		1: "This is a priority development area for you. Immediate action needed.",
	},
}

// Comment returns a static comment for a single answer.
func (f *FallbackProvider) Comment(answer int, language string) string {
	comments, ok := fallbackComments[language]
	if !ok {
		comments = fallbackComments["tr"]
	}
	if comment, ok := comments[answer]; ok {
		return comment
	}
	return comments[3]
}

// Insights builds deterministic strategic insights from the category
// ranking alone.
func (f *FallbackProvider) Insights(categoryScores map[string]float64, language string) models.StrategicInsights {
	strongest, weakest, ok := rankCategories(categoryScores)

	if language == "en" {
		insights := models.StrategicInsights{
			Strengths: []string{
				"Generally open to digital transformation",
				"Organization willing to improve",
			},
			Weaknesses: []string{
				"Lack of systematic approach in some areas",
				"Gaps in effective use of digital tools",
			},
			Recommendations: []string{
				"Invest in team training",
				"Start systematic use of digital tools",
				"Create data-driven decision processes",
			},
			ActionPlan: models.ActionPlan{
				Immediate: []string{"Optimize use of existing tools"},
				MidTerm:   []string{"Create systematic processes", "Develop team capacity"},
				LongTerm:  []string{"Build fully integrated digital ecosystem", "Create continuous improvement culture"},
			},
		}
		if ok {
			insights.Strengths = append([]string{
				fmt.Sprintf("Strong performance in %s (%.2f%%)", strongest.name, strongest.score),
			}, insights.Strengths...)
			insights.Weaknesses = append([]string{
				fmt.Sprintf("Need development in %s (%.2f%%)", weakest.name, weakest.score),
			}, insights.Weaknesses...)
			insights.Recommendations = append([]string{
				fmt.Sprintf("Prioritize %s", weakest.name),
			}, insights.Recommendations...)
			insights.ActionPlan.Immediate = append([]string{
				fmt.Sprintf("Achieve quick wins in %s", weakest.name),
			}, insights.ActionPlan.Immediate...)
		}
		return insights
	}

	insights := models.StrategicInsights{
		Strengths: []string{
			"Genel olarak dijital dönüşüme açık bir yapı",
			"İyileştirmeye istekli bir organizasyon",
		},
		Weaknesses: []string{
			"Bazı alanlarda sistematik yaklaşım eksikliği",
			"Dijital araçların etkin kullanımında boşluklar",
		},
		Recommendations: []string{
			"Ekip eğitimlerine yatırım yapın",
			"Dijital araçları sistematik kullanmaya başlayın",
			"Veri odaklı karar alma süreçleri oluşturun",
		},
		ActionPlan: models.ActionPlan{
			Immediate: []string{"Mevcut araçların kullanımını optimize edin"},
			MidTerm:   []string{"Sistematik süreçler oluşturun", "Ekip kapasitesini geliştirin"},
			LongTerm:  []string{"Tam entegre dijital ekosistem kurun", "Sürekli iyileştirme kültürü oluşturun"},
		},
	}
	if ok {
		insights.Strengths = append([]string{
			fmt.Sprintf("%s alanında güçlü performans (%%%.2f)", strongest.name, strongest.score),
		}, insights.Strengths...)
		insights.Weaknesses = append([]string{
			fmt.Sprintf("%s alanında gelişim gerekiyor (%%%.2f)", weakest.name, weakest.score),
		}, insights.Weaknesses...)
		insights.Recommendations = append([]string{
			fmt.Sprintf("%s alanına öncelik verin", weakest.name),
		}, insights.Recommendations...)
		insights.ActionPlan.Immediate = append([]string{
			fmt.Sprintf("%s için hızlı kazanımlar sağlayın", weakest.name),
		}, insights.ActionPlan.Immediate...)
	}
	return insights
}

type rankedCategory struct {
	name  string
	score float64
}

func rankCategories(categoryScores map[string]float64) (strongest, weakest rankedCategory, ok bool) {
	if len(categoryScores) == 0 {
		return rankedCategory{}, rankedCategory{}, false
	}

	ranked := make([]rankedCategory, 0, len(categoryScores))
	for name, score := range categoryScores {
		ranked = append(ranked, rankedCategory{name: name, score: score})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].name < ranked[j].name
	})

	return ranked[0], ranked[len(ranked)-1], true
}
