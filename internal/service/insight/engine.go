package insight

import (
	"math"
	"sort"
	"time"

	"go.uber.org/zap"

	"trendpulse/internal/domain/insight"
)

// EngineConfig contains configuration for the insight engine.
type EngineConfig struct {
	// MaxInsights caps the merged, ranked insight list. Zero means the
	// default of 15.
	MaxInsights int

	// Now overrides the clock, used by tests. Zero value means time.Now.
	Now func() time.Time
}

// Engine computes ranked trend insights from a user's historical content.
// It holds no state across calls; every invocation recomputes from the
// collections handed to it.
type Engine struct {
	estimator insight.GrowthEstimator
	sources   []insight.TrendSource
	logger    *zap.Logger
	config    EngineConfig
}

// NewEngine creates a new insight engine. Sources are consulted in order
// after the data-derived analyzers, which matters for tie-breaking in the
// ranked output.
func NewEngine(
	estimator insight.GrowthEstimator,
	sources []insight.TrendSource,
	logger *zap.Logger,
	config EngineConfig,
) *Engine {
	if config.MaxInsights <= 0 {
		config.MaxInsights = 15
	}
	if config.Now == nil {
		config.Now = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Engine{
		estimator: estimator,
		sources:   sources,
		logger:    logger,
		config:    config,
	}
}

// GenerateTrendPredictions computes all insight categories for the given
// content, merges them and returns at most MaxInsights entries sorted
// descending by trend score. Ties keep insertion order: hashtag,
// content type, posting time, then the configured sources.
func (e *Engine) GenerateTrendPredictions(
	content []insight.ContentRecord,
	accounts []insight.SocialAccountSnapshot,
	platform string,
) []insight.TrendInsight {
	now := e.config.Now()

	insights := e.analyzeHashtags(now, content)
	insights = append(insights, e.analyzeContentTypes(now, content)...)
	insights = append(insights, e.analyzePostingTimes(now, content)...)

	for _, source := range e.sources {
		insights = append(insights, source.Insights(now, content)...)
	}

	sort.SliceStable(insights, func(i, j int) bool {
		return insights[i].TrendScore > insights[j].TrendScore
	})

	if len(insights) > e.config.MaxInsights {
		insights = insights[:e.config.MaxInsights]
	}

	e.logger.Debug("generated trend insights",
		zap.String("platform", platform),
		zap.Int("content_records", len(content)),
		zap.Int("insights", len(insights)),
	)

	return insights
}

// newInsight assembles an insight, deriving the predicted volume from the
// current volume and growth rate so the relationship between the three
// holds for every emitted insight.
func newInsight(
	insightType insight.InsightType,
	keyword string,
	currentVolume int,
	growthRate float64,
	trendScore int,
	confidence float64,
	timeframe insight.Timeframe,
	peak time.Time,
	action string,
	suggestions []string,
) insight.TrendInsight {
	return insight.TrendInsight{
		Type:               insightType,
		Keyword:            keyword,
		CurrentVolume:      currentVolume,
		PredictedVolume:    predictVolume(currentVolume, growthRate),
		GrowthRate:         growthRate,
		TrendScore:         clampScore(trendScore),
		Confidence:         clampConfidence(confidence),
		Timeframe:          timeframe,
		PeakPrediction:     peak,
		RecommendedAction:  action,
		ContentSuggestions: suggestions,
	}
}

// predictVolume applies a percentage growth rate to a volume, rounding to
// the nearest integer.
func predictVolume(currentVolume int, growthRate float64) int {
	return int(math.Round(float64(currentVolume) * (1 + growthRate/100)))
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func clampConfidence(confidence float64) float64 {
	return math.Max(0, math.Min(1, confidence))
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
