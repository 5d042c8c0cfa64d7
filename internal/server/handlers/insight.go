package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"trendpulse/internal/domain/insight"
	insightService "trendpulse/internal/service/insight"
)

// InsightHandler handles heuristic insight HTTP requests.
type InsightHandler struct {
	engine *insightService.Engine
	logger *zap.Logger
}

// NewInsightHandler creates a new insight handler.
func NewInsightHandler(engine *insightService.Engine, logger *zap.Logger) *InsightHandler {
	return &InsightHandler{
		engine: engine,
		logger: logger,
	}
}

type insightRequest struct {
	Platform string                          `json:"platform"`
	Content  []insight.ContentRecord         `json:"content"`
	Accounts []insight.SocialAccountSnapshot `json:"accounts"`
}

// GenerateInsights computes ranked trend insights from the posted content.
func (h *InsightHandler) GenerateInsights(w http.ResponseWriter, r *http.Request) {
	var req insightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	insights := h.engine.GenerateTrendPredictions(req.Content, req.Accounts, req.Platform)

	respondWithJSON(w, http.StatusOK, insights)
}

// GenerateAnalysis computes the dashboard trend analysis from the posted
// content.
func (h *InsightHandler) GenerateAnalysis(w http.ResponseWriter, r *http.Request) {
	var req insightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	analysis := h.engine.GenerateTrendAnalysis(req.Content, req.Accounts, req.Platform)

	respondWithJSON(w, http.StatusOK, analysis)
}
