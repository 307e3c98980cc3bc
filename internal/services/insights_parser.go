package services

import (
	"strings"

	"github.com/emrerecber/exportiq360/internal/models"
)

// ParseInsights scans a labeled-section AI response line by line. A line
// containing a known header marker activates that section; bullet lines
// are appended to the active section (or the active time horizon inside
// the action plan). Anything else is ignored, so malformed or reordered
// output yields partially filled sections rather than an error. The
// second return value reports whether every section came back non-empty.
func ParseInsights(text string) (models.StrategicInsights, bool) {
	var insights models.StrategicInsights

	const (
		sectionNone = iota
		sectionStrengths
		sectionWeaknesses
		sectionRecommendations
		sectionActionPlan
	)

	section := sectionNone
	var horizon *[]string

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		switch {
		case strings.Contains(line, "GÜÇLÜ YÖNLER") || strings.Contains(line, "STRENGTHS"):
			section = sectionStrengths
			horizon = nil
		case strings.Contains(line, "ZAYIF YÖNLER") || strings.Contains(line, "WEAKNESSES") || strings.Contains(line, "ZAYIFLIK"):
			section = sectionWeaknesses
			horizon = nil
		case strings.Contains(line, "ÖNERİLER") || strings.Contains(line, "RECOMMENDATIONS"):
			section = sectionRecommendations
			horizon = nil
		case strings.Contains(line, "AKSİYON PLANI") || strings.Contains(line, "ACTION PLAN"):
			section = sectionActionPlan
			horizon = nil
		case section == sectionActionPlan:
			switch {
			case strings.Contains(line, "Kısa Vadeli") || strings.Contains(line, "Short Term"):
				horizon = &insights.ActionPlan.Immediate
			case strings.Contains(line, "Orta Vadeli") || strings.Contains(line, "Medium Term") || strings.Contains(line, "Mid Term"):
				horizon = &insights.ActionPlan.MidTerm
			case strings.Contains(line, "Uzun Vadeli") || strings.Contains(line, "Long Term"):
				horizon = &insights.ActionPlan.LongTerm
			default:
				if item, ok := bulletItem(line); ok && horizon != nil {
					*horizon = append(*horizon, item)
				}
			}
		default:
			item, ok := bulletItem(line)
			if !ok {
				continue
			}
			switch section {
			case sectionStrengths:
				insights.Strengths = append(insights.Strengths, item)
			case sectionWeaknesses:
				insights.Weaknesses = append(insights.Weaknesses, item)
			case sectionRecommendations:
				insights.Recommendations = append(insights.Recommendations, item)
			}
		}
	}

	complete := len(insights.Strengths) > 0 &&
		len(insights.Weaknesses) > 0 &&
		len(insights.Recommendations) > 0 &&
		len(insights.ActionPlan.Immediate) > 0 &&
		len(insights.ActionPlan.MidTerm) > 0 &&
		len(insights.ActionPlan.LongTerm) > 0

	return insights, complete
}

func bulletItem(line string) (string, bool) {
	for _, marker := range []string{"-", "•", "*"} {
		if strings.HasPrefix(line, marker) {
			return strings.TrimSpace(strings.TrimPrefix(line, marker)), true
		}
	}
	return "", false
}
