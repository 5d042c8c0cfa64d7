package insight

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"trendpulse/internal/domain/insight"
)

func fullEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(
		fixedEstimator(10),
		[]insight.TrendSource{NewStaticTopicSource(), NewStaticSeasonalSource()},
		nil,
		EngineConfig{
			Now: func() time.Time { return time.Date(2025, time.July, 10, 12, 0, 0, 0, time.UTC) },
		},
	)
}

// richContent produces enough repeated categories to overflow the
// merged insight list.
func richContent() []insight.ContentRecord {
	var content []insight.ContentRecord
	for i := 0; i < 12; i++ {
		category := fmt.Sprintf("category %d", i)
		for j := 0; j < 2; j++ {
			content = append(content, insight.ContentRecord{
				Platform:    "youtube",
				Title:       fmt.Sprintf("Video about %s", category),
				Categories:  []string{category},
				Likes:       1500 + i*100,
				Comments:    200,
				Views:       30000,
				PublishedAt: time.Date(2025, time.June, 1+i, 19, 0, 0, 0, time.UTC),
			})
		}
	}
	return content
}

func TestGenerateTrendPredictionsCapsAndSorts(t *testing.T) {
	engine := fullEngine(t)

	insights := engine.GenerateTrendPredictions(richContent(), nil, "youtube")

	require.NotEmpty(t, insights)
	require.LessOrEqual(t, len(insights), 15)

	for i := 1; i < len(insights); i++ {
		require.GreaterOrEqual(t, insights[i-1].TrendScore, insights[i].TrendScore,
			"insights must be sorted descending by trend score")
	}
}

func TestGenerateTrendPredictionsInvariants(t *testing.T) {
	engine := fullEngine(t)

	insights := engine.GenerateTrendPredictions(richContent(), nil, "youtube")

	for _, got := range insights {
		require.GreaterOrEqual(t, got.Confidence, 0.0, "%s confidence", got.Keyword)
		require.LessOrEqual(t, got.Confidence, 1.0, "%s confidence", got.Keyword)
		require.GreaterOrEqual(t, got.TrendScore, 0, "%s score", got.Keyword)
		require.LessOrEqual(t, got.TrendScore, 100, "%s score", got.Keyword)

		want := int(math.Round(float64(got.CurrentVolume) * (1 + got.GrowthRate/100)))
		require.Equal(t, want, got.PredictedVolume,
			"%s predicted volume must derive from current volume and growth", got.Keyword)
	}
}

func TestGenerateTrendPredictionsEmptyInput(t *testing.T) {
	engine := fullEngine(t)

	// No content: only the static sources contribute.
	insights := engine.GenerateTrendPredictions(nil, nil, "instagram")

	require.Len(t, insights, len(staticTopics)+1)
	for _, got := range insights {
		require.Contains(t,
			[]insight.InsightType{insight.TypeTopic, insight.TypeSeasonal},
			got.Type,
		)
	}
}

func TestGenerateTrendPredictionsTieBreakKeepsInsertionOrder(t *testing.T) {
	first := sourceFunc(func(now time.Time, _ []insight.ContentRecord) []insight.TrendInsight {
		return []insight.TrendInsight{newInsight(insight.TypeTopic, "first", 100, 10, 50, 0.6, insight.TimeframeMonthly, now, "", nil)}
	})
	second := sourceFunc(func(now time.Time, _ []insight.ContentRecord) []insight.TrendInsight {
		return []insight.TrendInsight{newInsight(insight.TypeSeasonal, "second", 100, 10, 50, 0.6, insight.TimeframeMonthly, now, "", nil)}
	})

	engine := NewEngine(fixedEstimator(0), []insight.TrendSource{first, second}, nil, EngineConfig{})

	insights := engine.GenerateTrendPredictions(nil, nil, "instagram")
	require.Len(t, insights, 2)
	require.Equal(t, "first", insights[0].Keyword)
	require.Equal(t, "second", insights[1].Keyword)
}

type sourceFunc func(now time.Time, content []insight.ContentRecord) []insight.TrendInsight

func (f sourceFunc) Insights(now time.Time, content []insight.ContentRecord) []insight.TrendInsight {
	return f(now, content)
}

func TestEngineMaxInsightsConfigurable(t *testing.T) {
	engine := NewEngine(
		fixedEstimator(10),
		[]insight.TrendSource{NewStaticTopicSource()},
		nil,
		EngineConfig{MaxInsights: 2},
	)

	insights := engine.GenerateTrendPredictions(nil, nil, "instagram")
	require.Len(t, insights, 2)
}
