package insight

import (
	"strings"
	"time"

	"trendpulse/internal/domain/insight"
)

// topicEntry is one row of the static industry topic table.
type topicEntry struct {
	keyword       string
	currentVolume int
	growthRate    float64
	trendScore    int
	action        string
	suggestions   []string
}

// staticTopics is a hard-coded table of industry topics. These are not
// derived from user data; the source exists so a live trends feed can be
// substituted later without touching the merge logic.
var staticTopics = []topicEntry{
	{
		keyword:       "sustainability",
		currentVolume: 45000,
		growthRate:    18.5,
		trendScore:    78,
		action:        "Create content around sustainable practices in your niche",
		suggestions: []string{
			"Show the sustainable side of your production process",
			"Partner with eco-conscious brands for a series",
		},
	},
	{
		keyword:       "mental health",
		currentVolume: 62000,
		growthRate:    14.2,
		trendScore:    74,
		action:        "Share authentic wellness content - audiences reward honesty here",
		suggestions: []string{
			"Post a day-in-the-life with honest ups and downs",
			"Collaborate with a wellness creator on a joint piece",
		},
	},
	{
		keyword:       "ai tools",
		currentVolume: 38000,
		growthRate:    32.0,
		trendScore:    82,
		action:        "Demonstrate AI tools relevant to your audience's workflow",
		suggestions: []string{
			"Record a before/after using an AI editing tool",
			"Review the AI features your audience keeps asking about",
		},
	},
	{
		keyword:       "micro learning",
		currentVolume: 21000,
		growthRate:    11.8,
		trendScore:    61,
		action:        "Break your expertise into 60-second lessons",
		suggestions: []string{
			"Turn a long-form tutorial into a bite-sized series",
			"Post one quick tip per day for a week",
		},
	},
}

// StaticTopicSource serves the hard-coded industry topic table. Only the
// confidence varies: topics the user's existing content already touches
// get a higher confidence than unexplored ones.
type StaticTopicSource struct{}

// NewStaticTopicSource creates the static topic source.
func NewStaticTopicSource() *StaticTopicSource {
	return &StaticTopicSource{}
}

// Insights returns the table entries as topic insights.
func (s *StaticTopicSource) Insights(now time.Time, content []insight.ContentRecord) []insight.TrendInsight {
	insights := make([]insight.TrendInsight, 0, len(staticTopics))

	for _, entry := range staticTopics {
		confidence := 0.6
		if contentMentions(content, entry.keyword) {
			confidence = 0.8
		}

		insights = append(insights, newInsight(
			insight.TypeTopic,
			entry.keyword,
			entry.currentVolume,
			entry.growthRate,
			entry.trendScore,
			confidence,
			insight.TimeframeMonthly,
			now.AddDate(0, 1, 0),
			entry.action,
			entry.suggestions,
		))
	}

	return insights
}

// contentMentions reports whether any record's text or categories mention
// the keyword.
func contentMentions(content []insight.ContentRecord, keyword string) bool {
	keyword = strings.ToLower(keyword)
	for _, record := range content {
		text := strings.ToLower(record.Title + " " + record.Description)
		if strings.Contains(text, keyword) {
			return true
		}
		for _, category := range record.Categories {
			if strings.Contains(strings.ToLower(category), keyword) {
				return true
			}
		}
	}
	return false
}
