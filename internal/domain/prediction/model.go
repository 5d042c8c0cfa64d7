package prediction

import (
	"context"
	"time"

	"trendpulse/internal/domain/insight"
)

// TrendPrediction is a qualitative trend forecast produced by the AI
// analyzer. It is a richer shape than insight.TrendInsight and serves a
// different consumer; the two are deliberately not merged.
type TrendPrediction struct {
	ID                     string   `json:"id"`
	Platform               string   `json:"platform"`
	Trend                  string   `json:"trend"`
	Confidence             float64  `json:"confidence"`
	Timeframe              string   `json:"timeframe"`
	PredictedGrowth        float64  `json:"predictedGrowth"`
	ContentSuggestions     []string `json:"contentSuggestions"`
	HashtagRecommendations []string `json:"hashtagRecommendations"`
	BestPostTimes          []string `json:"bestPostTimes"`
	TargetAudience         string   `json:"targetAudience"`
	Reasoning              string   `json:"reasoning"`
}

// StoredPrediction is the persisted subset of a TrendPrediction. Hashtag
// recommendations and best post times are not persisted columns; reads
// regenerate them from platform defaults.
type StoredPrediction struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"userId"`
	Platform           string    `json:"platform"`
	Trend              string    `json:"trend"`
	Confidence         float64   `json:"confidence"`
	Timeframe          string    `json:"timeframe"`
	PredictedGrowth    float64   `json:"predictedGrowth"`
	ContentSuggestions []string  `json:"contentSuggestions"`
	TargetAudience     string    `json:"targetAudience"`
	Reasoning          string    `json:"reasoning"`
	CreatedAt          time.Time `json:"createdAt"`
}

// Milestone is a performance milestone a user has reached.
type Milestone struct {
	Title      string    `json:"title"`
	Metric     string    `json:"metric"`
	Value      int       `json:"value"`
	AchievedAt time.Time `json:"achievedAt"`
}

// Collaboration is a brand collaboration record.
type Collaboration struct {
	BrandName string `json:"brandName"`
	Platform  string `json:"platform"`
	Status    string `json:"status"`
}

// QuickInsights is the one-line "top trend" widget payload.
type QuickInsights struct {
	TopTrend     string    `json:"topTrend"`
	Confidence   float64   `json:"confidence"`
	QuickTips    []string  `json:"quickTips"`
	NextAnalysis time.Time `json:"nextAnalysis"`
}

// Repository is the storage boundary the analyzer depends on. Error
// behavior on the repository side propagates untouched, except during the
// best-effort persistence step.
type Repository interface {
	GetSocialAccounts(ctx context.Context, userID string) ([]insight.SocialAccountSnapshot, error)
	GetPortfolioContent(ctx context.Context, userID, platform string) ([]insight.ContentRecord, error)
	GetPerformanceMilestones(ctx context.Context, userID string) ([]Milestone, error)
	GetContentCategories(ctx context.Context, userID string) ([]string, error)
	GetBrandCollaborations(ctx context.Context, userID string) ([]Collaboration, error)
	CreateTrendPrediction(ctx context.Context, rec StoredPrediction) error
	GetTrendPredictions(ctx context.Context, userID, platform string) ([]StoredPrediction, error)
}
