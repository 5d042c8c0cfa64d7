package insight

import (
	"time"
)

// InsightType identifies the content dimension an insight speaks to.
type InsightType string

const (
	TypeHashtag     InsightType = "hashtag"
	TypeTopic       InsightType = "topic"
	TypeContentType InsightType = "content_type"
	TypePostingTime InsightType = "posting_time"
	TypeSeasonal    InsightType = "seasonal"
)

// Timeframe is the horizon an insight's prediction applies to.
type Timeframe string

const (
	TimeframeDaily   Timeframe = "daily"
	TimeframeWeekly  Timeframe = "weekly"
	TimeframeMonthly Timeframe = "monthly"
)

// ContentRecord is one published piece of portfolio content. The engine
// treats it as immutable input; missing numeric fields default to zero.
type ContentRecord struct {
	ID           string    `json:"id,omitempty"`
	Platform     string    `json:"platform"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Categories   []string  `json:"categories"`
	Likes        int       `json:"likes"`
	Comments     int       `json:"comments"`
	Views        int       `json:"views"`
	PublishedAt  time.Time `json:"publishedAt"`
	TopPerformer bool      `json:"topPerformer"`
}

// Engagement is the combined like and comment count.
func (c ContentRecord) Engagement() int {
	return c.Likes + c.Comments
}

// SocialAccountSnapshot is a point-in-time account state. The engagement
// rate is a decimal string, matching the upstream schema.
type SocialAccountSnapshot struct {
	Platform       string    `json:"platform"`
	Username       string    `json:"username"`
	Followers      int       `json:"followers"`
	EngagementRate string    `json:"engagementRate"`
	CapturedAt     time.Time `json:"capturedAt"`
}

// TrendInsight is one scored prediction about a content dimension.
//
// For every emitted insight TrendScore is in [0,100], Confidence is in
// [0,1], and PredictedVolume equals CurrentVolume scaled by GrowthRate
// and rounded to the nearest integer.
type TrendInsight struct {
	Type               InsightType `json:"type"`
	Keyword            string      `json:"keyword"`
	CurrentVolume      int         `json:"currentVolume"`
	PredictedVolume    int         `json:"predictedVolume"`
	GrowthRate         float64     `json:"growthRate"`
	TrendScore         int         `json:"trendScore"`
	Confidence         float64     `json:"confidence"`
	Timeframe          Timeframe   `json:"timeframe"`
	PeakPrediction     time.Time   `json:"peakPrediction"`
	RecommendedAction  string      `json:"recommendedAction"`
	ContentSuggestions []string    `json:"contentSuggestions"`
}

// GrowthPoint is one point in a dashboard trend series.
type GrowthPoint struct {
	Period string  `json:"period"`
	Value  float64 `json:"value"`
}

// TrendAnalysisResult bundles the dashboard aggregates derived from a
// user's content and account snapshots.
type TrendAnalysisResult struct {
	TopHashtags            []string           `json:"topHashtags"`
	EmergingTopics         []string           `json:"emergingTopics"`
	OptimalPostTimes       []string           `json:"optimalPostTimes"`
	ContentTypePerformance map[string]string  `json:"contentTypePerformance"`
	AudienceGrowthTrend    []GrowthPoint      `json:"audienceGrowthTrend"`
	EngagementTrend        []GrowthPoint      `json:"engagementTrend"`
	CompetitorInsights     []string           `json:"competitorInsights"`
	SeasonalPatterns       map[string]float64 `json:"seasonalPatterns"`
	ViralCandidates        []string           `json:"viralCandidates"`
}
