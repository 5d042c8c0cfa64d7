package insight

import (
	"fmt"
	"math"
	"strings"
	"time"

	"trendpulse/internal/domain/insight"
)

// hashtagStats accumulates per-hashtag usage while walking the content.
type hashtagStats struct {
	uses       int
	engagement int
	avgViews   float64
}

// analyzeHashtags scores every content category used at least twice as a
// hashtag candidate. The growth rate combines the estimator's base
// component with a popularity bonus capped at 10 points.
func (e *Engine) analyzeHashtags(now time.Time, content []insight.ContentRecord) []insight.TrendInsight {
	stats := make(map[string]*hashtagStats)
	var order []string

	for _, record := range content {
		for _, category := range record.Categories {
			tag := normalizeHashtag(category)
			if tag == "#" {
				continue
			}

			s, ok := stats[tag]
			if !ok {
				s = &hashtagStats{}
				stats[tag] = s
				order = append(order, tag)
			}

			s.uses++
			s.engagement += record.Engagement()
			s.avgViews += (float64(record.Views) - s.avgViews) / float64(s.uses)
		}
	}

	var insights []insight.TrendInsight
	for _, tag := range order {
		s := stats[tag]
		if s.uses < 2 {
			continue
		}

		avgEngagement := float64(s.engagement) / float64(s.uses)

		popularityBonus := math.Min(10, s.avgViews/10000)
		growthRate := round2(e.estimator.BaseGrowth(tag) + popularityBonus)

		score := int(math.Round(math.Min(100, avgEngagement/1000*50+growthRate*2)))
		if score <= 30 {
			continue
		}

		confidence := math.Min(0.95, float64(s.uses)/10+0.5)

		action := fmt.Sprintf("Monitor %s - moderate growth expected", tag)
		if score > 70 {
			action = fmt.Sprintf("Increase usage of %s - trending upward", tag)
		}

		insights = append(insights, newInsight(
			insight.TypeHashtag,
			tag,
			s.engagement,
			growthRate,
			score,
			confidence,
			insight.TimeframeWeekly,
			now.AddDate(0, 0, 7),
			action,
			hashtagSuggestions(tag),
		))
	}

	return insights
}

// normalizeHashtag lowercases a category, strips spaces and prefixes a #.
func normalizeHashtag(category string) string {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(category)), " ", "")
	normalized = strings.TrimPrefix(normalized, "#")
	return "#" + normalized
}

func hashtagSuggestions(tag string) []string {
	return []string{
		fmt.Sprintf("Create a behind-the-scenes post featuring %s", tag),
		fmt.Sprintf("Run a weekly series around %s to build momentum", tag),
		fmt.Sprintf("Pair %s with a trending audio to widen reach", tag),
	}
}
