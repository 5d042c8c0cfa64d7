package insight

import (
	"fmt"
	"math"
	"strings"
	"time"

	"trendpulse/internal/domain/insight"
)

// contentTypeCandidates is the fixed candidate set, in emission order.
var contentTypeCandidates = []string{"video", "image", "carousel", "story", "reel"}

// contentTypeGrowth maps each content type to its assumed growth rate.
var contentTypeGrowth = map[string]float64{
	"video":    12,
	"reel":     25,
	"story":    8,
	"image":    5,
	"carousel": 15,
}

// platformImpliedType maps a platform to the content type it implies when
// the text gives no hint.
var platformImpliedType = map[string]string{
	"youtube":   "video",
	"instagram": "reel",
}

// analyzeContentTypes scores each candidate content type by the
// engagement-to-view ratio of the content matching it. Types whose
// matches have no views are dropped rather than divided by zero.
func (e *Engine) analyzeContentTypes(now time.Time, content []insight.ContentRecord) []insight.TrendInsight {
	var insights []insight.TrendInsight

	for _, contentType := range contentTypeCandidates {
		var matches []insight.ContentRecord
		for _, record := range content {
			if matchesContentType(record, contentType) {
				matches = append(matches, record)
			}
		}
		if len(matches) == 0 {
			continue
		}

		var totalEngagement, totalViews int
		for _, record := range matches {
			totalEngagement += record.Engagement()
			totalViews += record.Views
		}

		avgEngagement := float64(totalEngagement) / float64(len(matches))
		avgViews := float64(totalViews) / float64(len(matches))
		if avgViews == 0 {
			continue
		}

		growthRate, ok := contentTypeGrowth[contentType]
		if !ok {
			growthRate = 10
		}

		score := int(math.Round(math.Min(100, avgEngagement/avgViews*100*50)))
		if score <= 25 {
			continue
		}

		confidence := math.Min(0.9, float64(len(matches))/20+0.6)

		insights = append(insights, newInsight(
			insight.TypeContentType,
			contentType,
			int(math.Round(avgViews)),
			growthRate,
			score,
			confidence,
			insight.TimeframeWeekly,
			now.AddDate(0, 0, 14),
			fmt.Sprintf("Prioritize %s content - engagement ratio is strong", contentType),
			[]string{
				fmt.Sprintf("Repurpose your best post as a %s", contentType),
				fmt.Sprintf("Test %s formats at your peak posting times", contentType),
			},
		))
	}

	return insights
}

// matchesContentType reports whether a record belongs to a content type,
// either by textual mention or by platform implication.
func matchesContentType(record insight.ContentRecord, contentType string) bool {
	text := strings.ToLower(record.Title + " " + record.Description)
	if strings.Contains(text, contentType) {
		return true
	}
	return platformImpliedType[strings.ToLower(record.Platform)] == contentType
}
