package insight

import (
	"time"
)

// GrowthEstimator supplies the base growth-rate component for hashtag
// scoring. The popularity bonus is added by the engine on top of this
// value. Implementations must stay within a plausible percentage range;
// the default engine estimator returns values in [-5, 15).
type GrowthEstimator interface {
	// BaseGrowth returns the base growth percentage for a hashtag keyword.
	BaseGrowth(keyword string) float64
}

// GrowthEstimatorFunc adapts a plain function to the GrowthEstimator
// interface.
type GrowthEstimatorFunc func(keyword string) float64

// BaseGrowth calls f(keyword).
func (f GrowthEstimatorFunc) BaseGrowth(keyword string) float64 {
	return f(keyword)
}

// TrendSource produces insights that are not derived from the user's own
// content, such as industry topics or seasonal patterns. The static
// implementations shipped today are placeholders for a real trends feed;
// swapping in a live source must not require touching the merge and rank
// logic.
type TrendSource interface {
	// Insights returns the source's current insights. Content is provided
	// so a source may adjust confidence based on what the user already
	// publishes, but sources are not required to use it.
	Insights(now time.Time, content []ContentRecord) []TrendInsight
}
