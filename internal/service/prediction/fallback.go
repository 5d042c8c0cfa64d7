package prediction

import (
	"fmt"
	"strings"
)

// fallbackPredictions synthesizes predictions from the static market
// context when the remote model is unavailable. Confidence sits in the
// 0.70-0.75 band to signal these are heuristic, not model-derived.
func fallbackPredictions(platform string, mc marketContext) []llmPrediction {
	predictions := []llmPrediction{
		{
			Trend:           fmt.Sprintf("%s growth on %s", leadFormat(mc), platform),
			Confidence:      0.75,
			Timeframe:       "weekly",
			PredictedGrowth: 12,
			ContentSuggestions: []string{
				fmt.Sprintf("Publish %s content 3-4 times this week", leadFormat(mc)),
				"Hook viewers in the first two seconds",
			},
			HashtagRecommendations: mc.Hashtags,
			BestPostTimes:          mc.PeakTimes,
			TargetAudience:         fmt.Sprintf("Audiences following %s", strings.Join(mc.PopularCategories, ", ")),
			Reasoning:              fmt.Sprintf("Platform signals favor %s right now. %s", leadFormat(mc), mc.AlgorithmNotes),
		},
	}

	if len(mc.PopularCategories) > 0 {
		predictions = append(predictions, llmPrediction{
			Trend:           fmt.Sprintf("Rising interest in %s", mc.PopularCategories[0]),
			Confidence:      0.70,
			Timeframe:       "monthly",
			PredictedGrowth: 9,
			ContentSuggestions: []string{
				fmt.Sprintf("Cross over into %s with your own angle", mc.PopularCategories[0]),
			},
			HashtagRecommendations: mc.Hashtags,
			BestPostTimes:          mc.PeakTimes,
			TargetAudience:         fmt.Sprintf("%s audiences on %s", mc.PopularCategories[0], platform),
			Reasoning:              "Category demand is consistently high in the current market context",
		})
	}

	return predictions
}

func leadFormat(mc marketContext) string {
	if len(mc.TrendingFormats) == 0 {
		return "short-form video"
	}
	return mc.TrendingFormats[0]
}
