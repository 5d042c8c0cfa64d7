package insight

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"trendpulse/internal/domain/insight"
)

func TestStaticTopicSourceConfidenceTracksContent(t *testing.T) {
	source := NewStaticTopicSource()
	now := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)

	insights := source.Insights(now, nil)
	require.Len(t, insights, len(staticTopics))
	for _, got := range insights {
		require.Equal(t, insight.TypeTopic, got.Type)
		require.InDelta(t, 0.6, got.Confidence, 1e-9)
		require.Equal(t, insight.TimeframeMonthly, got.Timeframe)
	}

	content := []insight.ContentRecord{
		{Title: "My favorite AI tools for editing", Likes: 10},
	}
	insights = source.Insights(now, content)

	byKeyword := make(map[string]insight.TrendInsight)
	for _, got := range insights {
		byKeyword[got.Keyword] = got
	}

	require.InDelta(t, 0.8, byKeyword["ai tools"].Confidence, 1e-9)
	require.InDelta(t, 0.6, byKeyword["sustainability"].Confidence, 1e-9)
}

func TestStaticTopicSourceMatchesCategories(t *testing.T) {
	source := NewStaticTopicSource()

	content := []insight.ContentRecord{
		{Categories: []string{"Mental Health"}},
	}
	insights := source.Insights(time.Now(), content)

	for _, got := range insights {
		if got.Keyword == "mental health" {
			require.InDelta(t, 0.8, got.Confidence, 1e-9)
			return
		}
	}
	t.Fatal("mental health topic not found")
}

func TestStaticSeasonalSourceSelectsByMonth(t *testing.T) {
	source := NewStaticSeasonalSource()

	cases := map[time.Month]string{
		time.April:    "spring cleaning",
		time.July:     "summer activities",
		time.October:  "back to school",
		time.December: "holiday content",
		time.January:  "holiday content",
	}

	for month, keyword := range cases {
		now := time.Date(2025, month, 15, 0, 0, 0, 0, time.UTC)
		insights := source.Insights(now, nil)
		require.Len(t, insights, 1, "month %s", month)
		require.Equal(t, keyword, insights[0].Keyword, "month %s", month)
		require.Equal(t, insight.TypeSeasonal, insights[0].Type)
	}
}

func TestStaticSeasonalSourceGrowthFromMultiplier(t *testing.T) {
	source := NewStaticSeasonalSource()
	now := time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC)

	insights := source.Insights(now, nil)
	require.Len(t, insights, 1)

	got := insights[0]
	entry := staticSeasons["summer"]

	require.InDelta(t, (entry.multiplier-1)*100, got.GrowthRate, 1e-9)
	require.Equal(t, entry.baseVolume, got.CurrentVolume)

	want := int(math.Round(float64(entry.baseVolume) * entry.multiplier))
	require.Equal(t, want, got.PredictedVolume)
}

func TestSeasonalPatternsExposesAllSeasons(t *testing.T) {
	patterns := SeasonalPatterns()
	require.Len(t, patterns, 4)
	for _, season := range []string{"spring", "summer", "fall", "winter"} {
		require.Greater(t, patterns[season], 1.0)
	}
}
