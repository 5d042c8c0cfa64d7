package insight

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"trendpulse/internal/domain/insight"
)

func fixedEstimator(base float64) insight.GrowthEstimatorFunc {
	return func(string) float64 { return base }
}

func testEngine(t *testing.T, base float64) *Engine {
	t.Helper()
	return NewEngine(fixedEstimator(base), nil, nil, EngineConfig{
		Now: func() time.Time { return time.Date(2025, time.July, 10, 12, 0, 0, 0, time.UTC) },
	})
}

func TestAnalyzeHashtagsScoresRepeatedCategory(t *testing.T) {
	engine := testEngine(t, 10)

	content := []insight.ContentRecord{
		{Categories: []string{"beauty"}, Likes: 500, Comments: 50, Views: 20000},
		{Categories: []string{"beauty"}, Likes: 600, Comments: 60, Views: 25000},
	}

	insights := engine.analyzeHashtags(time.Now(), content)
	require.Len(t, insights, 1)

	got := insights[0]
	require.Equal(t, insight.TypeHashtag, got.Type)
	require.Equal(t, "#beauty", got.Keyword)

	// base 10 + popularity bonus min(10, 22500/10000) = 12.25
	require.InDelta(t, 12.25, got.GrowthRate, 1e-9)

	// round(min(100, 605/1000*50 + 12.25*2)) = 55
	require.Equal(t, 55, got.TrendScore)

	// min(0.95, 2/10 + 0.5)
	require.InDelta(t, 0.7, got.Confidence, 1e-9)

	require.Equal(t, 1210, got.CurrentVolume)
	require.Equal(t, 1358, got.PredictedVolume)
	require.Len(t, got.ContentSuggestions, 3)
}

func TestAnalyzeHashtagsIgnoresSingleUseCategories(t *testing.T) {
	engine := testEngine(t, 10)

	content := []insight.ContentRecord{
		{Categories: []string{"beauty"}, Likes: 5000, Views: 20000},
		{Categories: []string{"travel"}, Likes: 5000, Views: 20000},
	}

	insights := engine.analyzeHashtags(time.Now(), content)
	require.Empty(t, insights)
}

func TestAnalyzeHashtagsDropsLowScores(t *testing.T) {
	engine := testEngine(t, -5)

	content := []insight.ContentRecord{
		{Categories: []string{"niche"}, Likes: 10},
		{Categories: []string{"niche"}, Likes: 10},
	}

	insights := engine.analyzeHashtags(time.Now(), content)
	require.Empty(t, insights)
}

func TestAnalyzeHashtagsCapsConfidenceAndScore(t *testing.T) {
	engine := testEngine(t, 15)

	var content []insight.ContentRecord
	for i := 0; i < 12; i++ {
		content = append(content, insight.ContentRecord{
			Categories: []string{"fitness"},
			Likes:      50000,
			Comments:   5000,
			Views:      500000,
		})
	}

	insights := engine.analyzeHashtags(time.Now(), content)
	require.Len(t, insights, 1)
	require.Equal(t, 100, insights[0].TrendScore)
	require.InDelta(t, 0.95, insights[0].Confidence, 1e-9)
}

func TestAnalyzeHashtagsRecommendedActionBranchesOnScore(t *testing.T) {
	engine := testEngine(t, 15)

	hot := []insight.ContentRecord{
		{Categories: []string{"viral stuff"}, Likes: 2000, Comments: 500, Views: 300000},
		{Categories: []string{"viral stuff"}, Likes: 2000, Comments: 500, Views: 300000},
	}
	insights := engine.analyzeHashtags(time.Now(), hot)
	require.Len(t, insights, 1)
	require.Greater(t, insights[0].TrendScore, 70)
	require.Contains(t, insights[0].RecommendedAction, "trending upward")
	require.Equal(t, "#viralstuff", insights[0].Keyword)

	warm := []insight.ContentRecord{
		{Categories: []string{"cooking"}, Likes: 300, Views: 1000},
		{Categories: []string{"cooking"}, Likes: 300, Views: 1000},
	}
	insights = engine.analyzeHashtags(time.Now(), warm)
	require.Len(t, insights, 1)
	require.LessOrEqual(t, insights[0].TrendScore, 70)
	require.Contains(t, insights[0].RecommendedAction, "moderate growth")
}

func TestNormalizeHashtag(t *testing.T) {
	cases := map[string]string{
		"Beauty":        "#beauty",
		"Mental Health": "#mentalhealth",
		"#Fitness":      "#fitness",
		"  travel  ":    "#travel",
	}

	for in, want := range cases {
		require.Equal(t, want, normalizeHashtag(in))
	}
}
