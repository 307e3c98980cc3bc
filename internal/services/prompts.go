package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/emrerecber/exportiq360/internal/models"
)

// Prompt construction is deterministic: the same scores and responses
// always produce byte-identical prompts, so a stubbed generator yields
// reproducible reports.

func commentSystemPrompt(language string) string {
	if language == "tr" {
		return `Sen e-ticaret ve e-ihracat konusunda uzman bir danışmansın.
Şirketlerin dijital dönüşüm ve uluslararası ticaret yetkinliklerini değerlendiriyorsun.
Yorumların kısa, öz, yapıcı ve motive edici olmalı.`
	}
	return `You are an expert consultant in e-commerce and e-export.
You evaluate companies' digital transformation and international trade competencies.
Your comments should be brief, constructive, and motivating.`
}

func commentPrompt(questionText string, answer int, category, language string) string {
	if language == "tr" {
		return fmt.Sprintf(`Aşağıdaki e-ticaret/e-ihracat değerlendirme sorusu ve kullanıcının verdiği yanıt için kısa, öz ve yapıcı bir yorum yaz:

Kategori: %s
Soru: %s
Kullanıcının Puanı: %d/5

Yorumun:
- 2-3 cümle olsun
- Mevcut durumu değerlendir
- Kısa bir iyileştirme önerisi sun
- Pozitif ve motive edici olsun`, CategoryName(category, language), questionText, answer)
	}
	return fmt.Sprintf(`Write a brief, constructive comment for this e-commerce/e-export assessment question and user's answer:

Category: %s
Question: %s
User's Score: %d/5

Comment should:
- Be 2-3 sentences
- Evaluate current situation
- Provide a brief improvement suggestion
- Be positive and motivating`, CategoryName(category, language), questionText, answer)
}

func insightsSystemPrompt(language string) string {
	if language == "tr" {
		return `Sen e-ticaret ve e-ihracat konusunda uzman bir stratejik danışmansın.
Değerlendirme sonuçlarını analiz edip şirketler için stratejik öneriler sunuyorsun.
Önerilerin spesifik, uygulanabilir ve önceliklendirilmiş olmalı.`
	}
	return `You are an expert strategic consultant in e-commerce and e-export.
You analyze assessment results and provide strategic recommendations for companies.
Your suggestions should be specific, actionable, and prioritized.`
}

// insightsContext embeds the numeric picture the model reasons over:
// channel scores, category scores and the weakest-scoring questions.
func insightsContext(
	responses []models.Response,
	questionMap map[string]models.Question,
	channelScores []models.ChannelScore,
	categoryScores map[string]float64,
	language string,
) string {
	var b strings.Builder

	if language == "tr" {
		b.WriteString("Kanal Skorları:\n")
	} else {
		b.WriteString("Channel Scores:\n")
	}
	for _, cs := range channelScores {
		fmt.Fprintf(&b, "- %s: %.2f%% (%s)\n", cs.Channel, cs.Percentage, cs.Level)
	}

	if language == "tr" {
		b.WriteString("\nKategori Skorları:\n")
	} else {
		b.WriteString("\nCategory Scores:\n")
	}
	categories := make([]string, 0, len(categoryScores))
	for category := range categoryScores {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	for _, category := range categories {
		fmt.Fprintf(&b, "- %s: %.2f%%\n", category, categoryScores[category])
	}

	if language == "tr" {
		b.WriteString("\nDüşük Puanlı Sorular:\n")
	} else {
		b.WriteString("\nLow-Scoring Questions:\n")
	}
	for _, resp := range responses {
		if resp.Answer > 2 {
			continue
		}
		if q, ok := questionMap[resp.QuestionID]; ok {
			fmt.Fprintf(&b, "- %s: %d/5\n", q.Text(language), resp.Answer)
		}
	}

	return b.String()
}

func insightsPrompt(context, language string) string {
	if language == "tr" {
		return fmt.Sprintf(`Aşağıdaki e-ticaret/e-ihracat değerlendirme sonuçlarına göre stratejik analiz yap:

%s

Şu formatta yanıt ver:

GÜÇLÜ YÖNLER:
- [3-4 madde]

ZAYIF YÖNLER:
- [3-4 madde]

ÖNERİLER:
- [4-5 madde]

AKSİYON PLANI:
Kısa Vadeli (0-3 ay):
- [2-3 madde]

Orta Vadeli (3-6 ay):
- [2-3 madde]

Uzun Vadeli (6-12 ay):
- [2-3 madde]`, context)
	}
	return fmt.Sprintf(`Provide strategic analysis based on these e-commerce/e-export assessment results:

%s

Response format:

STRENGTHS:
- [3-4 items]

WEAKNESSES:
- [3-4 items]

RECOMMENDATIONS:
- [4-5 items]

ACTION PLAN:
Short Term (0-3 months):
- [2-3 items]

Medium Term (3-6 months):
- [2-3 items]

Long Term (6-12 months):
- [2-3 items]`, context)
}
