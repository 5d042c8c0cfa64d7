package prediction

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"trendpulse/internal/domain/insight"
	"trendpulse/internal/domain/prediction"
)

// ChatCompleter is the narrow slice of the OpenAI client the analyzer
// depends on. *openai.Client satisfies it; tests supply doubles.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// AnalyzerConfig contains configuration for the trend analyzer.
type AnalyzerConfig struct {
	// Model is the chat model requested from the completion API.
	Model string

	// RequestTimeout bounds the remote completion call. Zero means the
	// default of 30 seconds.
	RequestTimeout time.Duration

	// EventsTopic is the NATS subject prefix for prediction events.
	EventsTopic string

	// Now overrides the clock, used by tests. Zero value means time.Now.
	Now func() time.Time
}

// Analyzer orchestrates AI trend analysis: it gathers a user's data,
// requests a structured completion from the LLM, falls back to a local
// generator when the remote is unavailable, and persists the results
// best-effort. It holds no state across calls.
type Analyzer struct {
	repo   prediction.Repository
	llm    ChatCompleter
	events *nats.Conn
	logger *zap.Logger
	config AnalyzerConfig
	newID  func() string
}

// NewAnalyzer creates a trend analyzer. The NATS connection may be nil,
// in which case prediction events are not published.
func NewAnalyzer(
	repo prediction.Repository,
	llm ChatCompleter,
	events *nats.Conn,
	logger *zap.Logger,
	config AnalyzerConfig,
) *Analyzer {
	if config.Model == "" {
		config.Model = openai.GPT4oMini
	}
	if config.RequestTimeout <= 0 {
		config.RequestTimeout = 30 * time.Second
	}
	if config.EventsTopic == "" {
		config.EventsTopic = "trend"
	}
	if config.Now == nil {
		config.Now = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Analyzer{
		repo:   repo,
		llm:    llm,
		events: events,
		logger: logger,
		config: config,
		newID:  func() string { return uuid.New().String() },
	}
}

// userData is everything gathered for one analysis run.
type userData struct {
	accounts       []insight.SocialAccountSnapshot
	content        []insight.ContentRecord
	milestones     []prediction.Milestone
	categories     []string
	collaborations []prediction.Collaboration
}

// llmAnalysis is the JSON shape requested from the completion API.
type llmAnalysis struct {
	Predictions     []llmPrediction   `json:"predictions"`
	OverallInsights map[string]string `json:"overall_insights"`
}

type llmPrediction struct {
	Trend                  string   `json:"trend"`
	Confidence             float64  `json:"confidence"`
	Timeframe              string   `json:"timeframe"`
	PredictedGrowth        float64  `json:"predicted_growth"`
	ContentSuggestions     []string `json:"content_suggestions"`
	HashtagRecommendations []string `json:"hashtag_recommendations"`
	BestPostTimes          []string `json:"best_post_times"`
	TargetAudience         string   `json:"target_audience"`
	Reasoning              string   `json:"reasoning"`
}

// AnalyzeTrends runs a full analysis for a user and platform. Quota and
// rate-limit failures from the remote model are recovered through the
// local fallback generator; any other remote failure is fatal to the
// call. Persistence failures never are: the caller still receives every
// freshly computed prediction.
func (a *Analyzer) AnalyzeTrends(ctx context.Context, userID, platform, timeframe string) ([]prediction.TrendPrediction, error) {
	data, err := a.gatherUserData(ctx, userID, platform)
	if err != nil {
		return nil, fmt.Errorf("gathering user data: %w", err)
	}

	mc := marketContextFor(platform)

	raw, err := a.requestPredictions(ctx, data, mc, platform, timeframe)
	if err != nil {
		if !isRemoteUnavailable(err) {
			return nil, fmt.Errorf("failed to analyze trends: %w", err)
		}
		a.logger.Warn("llm unavailable, using fallback generator",
			zap.String("user_id", userID),
			zap.String("platform", platform),
			zap.Error(err),
		)
		raw = fallbackPredictions(platform, mc)
	}

	predictions := a.normalize(raw, platform)

	saved, failed := a.persist(ctx, userID, predictions)
	if len(failed) > 0 {
		a.logger.Warn("some predictions were not persisted",
			zap.String("user_id", userID),
			zap.Int("saved", len(saved)),
			zap.Int("failed", len(failed)),
		)
	}
	a.publishSaved(userID, saved)

	return predictions, nil
}

// gatherUserData issues the repository reads concurrently and fails if
// any of them does.
func (a *Analyzer) gatherUserData(ctx context.Context, userID, platform string) (*userData, error) {
	data := &userData{}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		data.accounts, err = a.repo.GetSocialAccounts(ctx, userID)
		return err
	})
	g.Go(func() (err error) {
		data.content, err = a.repo.GetPortfolioContent(ctx, userID, platform)
		return err
	})
	g.Go(func() (err error) {
		data.milestones, err = a.repo.GetPerformanceMilestones(ctx, userID)
		return err
	})
	g.Go(func() (err error) {
		data.categories, err = a.repo.GetContentCategories(ctx, userID)
		return err
	})
	g.Go(func() (err error) {
		data.collaborations, err = a.repo.GetBrandCollaborations(ctx, userID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return data, nil
}

// requestPredictions asks the completion API for a structured analysis.
func (a *Analyzer) requestPredictions(ctx context.Context, data *userData, mc marketContext, platform, timeframe string) ([]llmPrediction, error) {
	ctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	defer cancel()

	resp, err := a.llm.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.config.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: analysisSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(data, mc, platform, timeframe)},
		},
		Temperature: 0.7,
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("completion returned no choices")
	}

	var analysis llmAnalysis
	content := stripCodeFences(resp.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(content), &analysis); err != nil {
		return nil, fmt.Errorf("parsing completion: %w", err)
	}

	return analysis.Predictions, nil
}

const analysisSystemPrompt = `You are a social media trend analyst for an influencer marketplace. ` +
	`Respond ONLY with valid JSON matching this schema, no prose outside JSON string values: ` +
	`{"predictions":[{"trend":"","confidence":0.0,"timeframe":"","predicted_growth":0.0,` +
	`"content_suggestions":[],"hashtag_recommendations":[],"best_post_times":[],` +
	`"target_audience":"","reasoning":""}],"overall_insights":{}}`

// buildPrompt embeds the gathered user data and market context into a
// natural-language analysis request.
func buildPrompt(data *userData, mc marketContext, platform, timeframe string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Analyze %s trends over a %s horizon for this creator.\n\n", platform, timeframe)

	sb.WriteString("Accounts:\n")
	for _, account := range data.accounts {
		fmt.Fprintf(&sb, "- %s @%s: %d followers, engagement rate %s\n",
			account.Platform, account.Username, account.Followers, account.EngagementRate)
	}

	fmt.Fprintf(&sb, "\nRecent content (%d pieces):\n", len(data.content))
	for i, record := range data.content {
		if i >= 20 {
			fmt.Fprintf(&sb, "- ... and %d more\n", len(data.content)-i)
			break
		}
		fmt.Fprintf(&sb, "- [%s] %q: %d likes, %d comments, %d views\n",
			record.Platform, record.Title, record.Likes, record.Comments, record.Views)
	}

	fmt.Fprintf(&sb, "\nCategories: %s\n", strings.Join(data.categories, ", "))

	sb.WriteString("Milestones:\n")
	for _, milestone := range data.milestones {
		fmt.Fprintf(&sb, "- %s (%s: %d)\n", milestone.Title, milestone.Metric, milestone.Value)
	}

	sb.WriteString("Brand collaborations:\n")
	for _, collab := range data.collaborations {
		fmt.Fprintf(&sb, "- %s on %s (%s)\n", collab.BrandName, collab.Platform, collab.Status)
	}

	fmt.Fprintf(&sb, "\nCurrent %s market context:\n", platform)
	fmt.Fprintf(&sb, "- Trending formats: %s\n", strings.Join(mc.TrendingFormats, ", "))
	fmt.Fprintf(&sb, "- Popular categories: %s\n", strings.Join(mc.PopularCategories, ", "))
	fmt.Fprintf(&sb, "- Peak times: %s\n", strings.Join(mc.PeakTimes, ", "))
	fmt.Fprintf(&sb, "- Algorithm: %s\n", mc.AlgorithmNotes)

	sb.WriteString("\nReturn 2-4 predictions tailored to this creator.")

	return sb.String()
}

// isRemoteUnavailable reports whether a completion failure is recoverable
// through the local fallback: quota exhaustion, rate limiting, or the
// request timing out.
func isRemoteUnavailable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.HTTPStatusCode == 429 {
			return true
		}
		if code, ok := apiErr.Code.(string); ok && code == "insufficient_quota" {
			return true
		}
	}
	return false
}

// normalize converts raw predictions into the public shape: confidence
// clamped into [0,1], ids assigned, and at least one prediction
// guaranteed.
func (a *Analyzer) normalize(raw []llmPrediction, platform string) []prediction.TrendPrediction {
	if len(raw) == 0 {
		raw = []llmPrediction{defaultPrediction(platform)}
	}

	predictions := make([]prediction.TrendPrediction, len(raw))
	for i, p := range raw {
		confidence := p.Confidence
		if confidence < 0 {
			confidence = 0
		}
		if confidence > 1 {
			confidence = 1
		}

		timeframe := p.Timeframe
		if timeframe == "" {
			timeframe = "weekly"
		}

		predictions[i] = prediction.TrendPrediction{
			ID:                     a.newID(),
			Platform:               platform,
			Trend:                  p.Trend,
			Confidence:             confidence,
			Timeframe:              timeframe,
			PredictedGrowth:        p.PredictedGrowth,
			ContentSuggestions:     p.ContentSuggestions,
			HashtagRecommendations: p.HashtagRecommendations,
			BestPostTimes:          p.BestPostTimes,
			TargetAudience:         p.TargetAudience,
			Reasoning:              p.Reasoning,
		}
	}

	return predictions
}

// defaultPrediction is injected when the model returns zero predictions.
func defaultPrediction(platform string) llmPrediction {
	mc := marketContextFor(platform)
	return llmPrediction{
		Trend:                  "Content Optimization",
		Confidence:             0.65,
		Timeframe:              "weekly",
		PredictedGrowth:        8,
		ContentSuggestions:     []string{"Post consistently during peak hours", "Double down on your best-performing format"},
		HashtagRecommendations: mc.Hashtags,
		BestPostTimes:          mc.PeakTimes,
		TargetAudience:         "Your existing audience",
		Reasoning:              "Baseline optimization guidance while trend data accumulates",
	}
}

// persist writes each prediction best-effort and partitions the results.
// Failures are logged per record and never abort the call.
func (a *Analyzer) persist(ctx context.Context, userID string, predictions []prediction.TrendPrediction) (saved, failed []prediction.TrendPrediction) {
	now := a.config.Now()

	for _, p := range predictions {
		rec := prediction.StoredPrediction{
			ID:                 p.ID,
			UserID:             userID,
			Platform:           p.Platform,
			Trend:              p.Trend,
			Confidence:         p.Confidence,
			Timeframe:          p.Timeframe,
			PredictedGrowth:    p.PredictedGrowth,
			ContentSuggestions: p.ContentSuggestions,
			TargetAudience:     p.TargetAudience,
			Reasoning:          p.Reasoning,
			CreatedAt:          now,
		}

		if err := a.repo.CreateTrendPrediction(ctx, rec); err != nil {
			a.logger.Error("failed to persist prediction",
				zap.String("user_id", userID),
				zap.String("prediction_id", p.ID),
				zap.Error(err),
			)
			failed = append(failed, p)
			continue
		}
		saved = append(saved, p)
	}

	return saved, failed
}

// publishSaved emits a NATS event per persisted prediction.
func (a *Analyzer) publishSaved(userID string, saved []prediction.TrendPrediction) {
	if a.events == nil {
		return
	}

	subject := fmt.Sprintf("%s.predictions.%s", a.config.EventsTopic, userID)
	for _, p := range saved {
		data, err := json.Marshal(p)
		if err != nil {
			continue
		}
		if err := a.events.Publish(subject, data); err != nil {
			a.logger.Warn("failed to publish prediction event",
				zap.String("subject", subject),
				zap.Error(err),
			)
		}
	}
}

// stripCodeFences removes a surrounding markdown code fence if the model
// added one despite the strict-JSON instruction.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
