package prediction

import (
	"context"
	"fmt"
	"time"

	"trendpulse/internal/domain/prediction"
)

// GetCachedPredictions maps previously persisted predictions back into
// the TrendPrediction shape. Hashtag recommendations and best post times
// were never persisted columns, so they are regenerated from the
// platform's market-context defaults rather than restored.
func (a *Analyzer) GetCachedPredictions(ctx context.Context, userID, platform string) ([]prediction.TrendPrediction, error) {
	rows, err := a.repo.GetTrendPredictions(ctx, userID, platform)
	if err != nil {
		return nil, fmt.Errorf("loading predictions: %w", err)
	}

	predictions := make([]prediction.TrendPrediction, len(rows))
	for i, row := range rows {
		mc := marketContextFor(row.Platform)
		predictions[i] = prediction.TrendPrediction{
			ID:                     row.ID,
			Platform:               row.Platform,
			Trend:                  row.Trend,
			Confidence:             row.Confidence,
			Timeframe:              row.Timeframe,
			PredictedGrowth:        row.PredictedGrowth,
			ContentSuggestions:     row.ContentSuggestions,
			HashtagRecommendations: mc.Hashtags,
			BestPostTimes:          mc.PeakTimes,
			TargetAudience:         row.TargetAudience,
			Reasoning:              row.Reasoning,
		}
	}

	return predictions, nil
}

// GetQuickInsights surfaces the highest-confidence cached prediction as a
// one-line widget, falling back to static guidance when nothing is
// cached. It never returns a nil result on success.
func (a *Analyzer) GetQuickInsights(ctx context.Context, userID, platform string) (*prediction.QuickInsights, error) {
	cached, err := a.GetCachedPredictions(ctx, userID, platform)
	if err != nil {
		return nil, err
	}

	next := a.config.Now().Add(24 * time.Hour)

	if len(cached) == 0 {
		mc := marketContextFor(platform)
		return &prediction.QuickInsights{
			TopTrend:   "Short-form video content",
			Confidence: 0.65,
			QuickTips: []string{
				fmt.Sprintf("Post during peak hours: %s", joinOrNone(mc.PeakTimes)),
				"Run a fresh analysis to get tailored predictions",
			},
			NextAnalysis: next,
		}, nil
	}

	top := cached[0]
	for _, p := range cached[1:] {
		if p.Confidence > top.Confidence {
			top = p
		}
	}

	tips := top.ContentSuggestions
	if len(tips) > 3 {
		tips = tips[:3]
	}

	return &prediction.QuickInsights{
		TopTrend:     top.Trend,
		Confidence:   top.Confidence,
		QuickTips:    tips,
		NextAnalysis: next,
	}, nil
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "midday and early evening"
	}
	out := values[0]
	for _, v := range values[1:] {
		out += ", " + v
	}
	return out
}
