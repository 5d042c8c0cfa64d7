package insight

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"trendpulse/internal/domain/insight"
)

func TestAnalyzeContentTypesPlatformImplication(t *testing.T) {
	engine := testEngine(t, 0)

	content := []insight.ContentRecord{
		{Platform: "youtube", Title: "Weekly update", Likes: 100, Views: 1000},
		{Platform: "youtube", Title: "Another upload", Likes: 100, Views: 1000},
	}

	insights := engine.analyzeContentTypes(time.Now(), content)
	require.Len(t, insights, 1)

	got := insights[0]
	require.Equal(t, insight.TypeContentType, got.Type)
	require.Equal(t, "video", got.Keyword)
	require.Equal(t, float64(12), got.GrowthRate)

	// engagement/view ratio 0.1 -> min(100, 0.1*100*50) = 100
	require.Equal(t, 100, got.TrendScore)

	// min(0.9, 2/20 + 0.6)
	require.InDelta(t, 0.7, got.Confidence, 1e-9)

	require.Equal(t, 1000, got.CurrentVolume)
	require.Equal(t, 1120, got.PredictedVolume)
}

func TestAnalyzeContentTypesTextMatch(t *testing.T) {
	engine := testEngine(t, 0)

	content := []insight.ContentRecord{
		{Platform: "pinterest", Title: "New carousel tips", Likes: 80, Views: 400},
	}

	insights := engine.analyzeContentTypes(time.Now(), content)
	require.Len(t, insights, 1)
	require.Equal(t, "carousel", insights[0].Keyword)
	require.Equal(t, float64(15), insights[0].GrowthRate)
}

func TestAnalyzeContentTypesZeroViewsGuard(t *testing.T) {
	engine := testEngine(t, 0)

	content := []insight.ContentRecord{
		{Platform: "pinterest", Title: "my image post", Likes: 500, Views: 0},
	}

	insights := engine.analyzeContentTypes(time.Now(), content)
	require.Empty(t, insights)
}

func TestAnalyzeContentTypesDropsLowScores(t *testing.T) {
	engine := testEngine(t, 0)

	content := []insight.ContentRecord{
		{Platform: "pinterest", Title: "quiet image post", Likes: 1, Views: 1000},
	}

	insights := engine.analyzeContentTypes(time.Now(), content)
	require.Empty(t, insights)
}

func TestAnalyzeContentTypesEmissionOrderIsFixed(t *testing.T) {
	engine := testEngine(t, 0)

	// One record matching video (platform) and one matching image (text).
	content := []insight.ContentRecord{
		{Platform: "youtube", Title: "Upload", Likes: 100, Views: 1000},
		{Platform: "pinterest", Title: "Best image ever", Likes: 100, Views: 1000},
	}

	insights := engine.analyzeContentTypes(time.Now(), content)
	require.Len(t, insights, 2)
	require.Equal(t, "video", insights[0].Keyword)
	require.Equal(t, "image", insights[1].Keyword)
}
