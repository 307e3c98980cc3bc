package services

import (
	"math"
	"sort"
	"strings"

	"github.com/emrerecber/exportiq360/internal/models"
)

// ScoringService reduces raw responses into per-channel and per-category
// percentage scores. All percentages are (sum / (count*5)) * 100 rounded
// to 2 decimals; entities with no contributing responses are omitted.
type ScoringService struct{}

func NewScoringService() *ScoringService {
	return &ScoringService{}
}

var channelNames = map[string]map[string]string{
	"tr": {
		models.ChannelEcommerce: "E-Ticaret (Yurtiçi)",
		models.ChannelEExport:   "E-İhracat (Uluslararası)",
		models.ChannelCombined:  "Kapsamlı Paket",
	},
	"en": {
		models.ChannelEcommerce: "E-Commerce (Domestic)",
		models.ChannelEExport:   "E-Export (International)",
		models.ChannelCombined:  "Comprehensive Package",
	},
}

var categoryNames = map[string]map[string]string{
	"tr": {
		models.CategoryStrategy:  "Strateji ve Planlama",
		models.CategoryTech:      "Teknoloji ve Altyapı",
		models.CategoryMarketing: "Pazarlama ve İletişim",
		models.CategoryLogistics: "Lojistik ve Operasyon",
		models.CategoryAnalytics: "Analitik ve Veri Yönetimi",
	},
	"en": {
		models.CategoryStrategy:  "Strategy and Planning",
		models.CategoryTech:      "Technology and Infrastructure",
		models.CategoryMarketing: "Marketing and Communication",
		models.CategoryLogistics: "Logistics and Operations",
		models.CategoryAnalytics: "Analytics and Data Management",
	},
}

// ChannelName returns the localized display name for a channel tag.
func ChannelName(channel, language string) string {
	if names, ok := channelNames[language]; ok {
		if name, ok := names[channel]; ok {
			return name
		}
	}
	if name, ok := channelNames["tr"][channel]; ok && language != "en" {
		return name
	}
	return upperFirst(channel)
}

// CategoryName returns the localized display name for a category key.
func CategoryName(category, language string) string {
	if names, ok := categoryNames[language]; ok {
		if name, ok := names[category]; ok {
			return name
		}
	}
	if name, ok := categoryNames["tr"][category]; ok && language != "en" {
		return name
	}
	return upperFirst(category)
}

// OverallScore is the mean of all answers normalized to 0-100. An empty
// response set scores 0.0 by definition.
func (s *ScoringService) OverallScore(responses []models.Response) float64 {
	if len(responses) == 0 {
		return 0.0
	}

	total := 0
	for _, resp := range responses {
		total += resp.Answer
	}
	maxScore := len(responses) * 5
	return round2(float64(total) / float64(maxScore) * 100)
}

// ChannelScores aggregates responses per channel tag. A response counts
// toward every channel its question belongs to; responses whose question
// is not in the reference set are skipped. Results are ordered by channel
// tag for stable output.
func (s *ScoringService) ChannelScores(responses []models.Response, questions []models.Question, language string) []models.ChannelScore {
	questionMap := questionsByID(questions)

	type agg struct {
		score int
		count int
	}
	byChannel := make(map[string]*agg)

	for _, resp := range responses {
		question, ok := questionMap[resp.QuestionID]
		if !ok {
			continue
		}
		for _, channel := range question.Channels {
			a := byChannel[channel]
			if a == nil {
				a = &agg{}
				byChannel[channel] = a
			}
			a.score += resp.Answer
			a.count++
		}
	}

	channels := make([]string, 0, len(byChannel))
	for channel := range byChannel {
		channels = append(channels, channel)
	}
	sort.Strings(channels)

	scores := make([]models.ChannelScore, 0, len(channels))
	for _, channel := range channels {
		a := byChannel[channel]
		maxScore := a.count * 5
		percentage := round2(float64(a.score) / float64(maxScore) * 100)
		scores = append(scores, models.ChannelScore{
			Channel:    ChannelName(channel, language),
			Score:      a.score,
			MaxScore:   maxScore,
			Percentage: percentage,
			Level:      LevelFor(percentage),
		})
	}

	return scores
}

// CategoryScores aggregates responses per question category, keyed by
// localized category name.
func (s *ScoringService) CategoryScores(responses []models.Response, questions []models.Question, language string) map[string]float64 {
	questionMap := questionsByID(questions)

	sums := make(map[string]int)
	counts := make(map[string]int)

	for _, resp := range responses {
		question, ok := questionMap[resp.QuestionID]
		if !ok {
			continue
		}
		sums[question.Category] += resp.Answer
		counts[question.Category]++
	}

	result := make(map[string]float64, len(sums))
	for category, sum := range sums {
		maxScore := counts[category] * 5
		result[CategoryName(category, language)] = round2(float64(sum) / float64(maxScore) * 100)
	}

	return result
}

// LevelFor maps a percentage to its qualitative level. Boundaries are
// inclusive on the lower edge: 60 is Advanced, 80 is Expert.
func LevelFor(percentage float64) string {
	switch {
	case percentage >= 80:
		return models.LevelExpert
	case percentage >= 60:
		return models.LevelAdvanced
	case percentage >= 40:
		return models.LevelIntermediate
	default:
		return models.LevelBeginner
	}
}

func questionsByID(questions []models.Question) map[string]models.Question {
	m := make(map[string]models.Question, len(questions))
	for _, q := range questions {
		m[q.ID] = q
	}
	return m
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
