package insight

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"trendpulse/internal/domain/insight"
)

func publishedAt(hour int) time.Time {
	return time.Date(2025, time.June, 3, hour, 30, 0, 0, time.UTC)
}

func TestAnalyzePostingTimesEmitsBestSlot(t *testing.T) {
	engine := testEngine(t, 0)

	content := []insight.ContentRecord{
		{PublishedAt: publishedAt(19), Likes: 450, Comments: 50, Views: 1000},
		{PublishedAt: publishedAt(20), Likes: 450, Comments: 50, Views: 1000},
		{PublishedAt: publishedAt(21), Likes: 450, Comments: 50, Views: 1000},
		{PublishedAt: publishedAt(9), Likes: 10, Views: 100},
	}

	insights := engine.analyzePostingTimes(time.Now(), content)
	require.Len(t, insights, 1)

	got := insights[0]
	require.Equal(t, insight.TypePostingTime, got.Type)
	require.Equal(t, "Evening (18:00-22:00)", got.Keyword)
	require.Equal(t, float64(15), got.GrowthRate)
	require.Equal(t, insight.TimeframeDaily, got.Timeframe)

	// min(100, round(500/100)) = 5
	require.Equal(t, 5, got.TrendScore)

	// min(0.85, 3/10 + 0.4)
	require.InDelta(t, 0.7, got.Confidence, 1e-9)

	// 15% uplift on the slot's average views
	require.Equal(t, 1000, got.CurrentVolume)
	require.Equal(t, 1150, got.PredictedVolume)
}

func TestAnalyzePostingTimesRequiresThreePosts(t *testing.T) {
	engine := testEngine(t, 0)

	// Two posts per slot at most: no slot qualifies.
	content := []insight.ContentRecord{
		{PublishedAt: publishedAt(7), Likes: 100, Views: 500},
		{PublishedAt: publishedAt(13), Likes: 200, Views: 500},
		{PublishedAt: publishedAt(14), Likes: 200, Views: 500},
		{PublishedAt: publishedAt(19), Likes: 300, Views: 500},
		{PublishedAt: publishedAt(23), Likes: 50, Views: 500},
	}

	insights := engine.analyzePostingTimes(time.Now(), content)
	require.Empty(t, insights)
}

func TestAnalyzePostingTimesEmpty(t *testing.T) {
	engine := testEngine(t, 0)
	require.Empty(t, engine.analyzePostingTimes(time.Now(), nil))
}

func TestSlotIndex(t *testing.T) {
	cases := map[int]int{
		6: 0, 11: 0,
		12: 1, 17: 1,
		18: 2, 21: 2,
		22: 3, 23: 3, 0: 3, 3: 3, 5: 3,
	}

	for hour, want := range cases {
		require.Equal(t, want, slotIndex(hour), "hour %d", hour)
	}
}
