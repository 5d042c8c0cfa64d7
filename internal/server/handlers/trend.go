package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"trendpulse/internal/service/prediction"
)

// TrendHandler handles AI trend analysis HTTP requests.
type TrendHandler struct {
	analyzer *prediction.Analyzer
	logger   *zap.Logger
}

// NewTrendHandler creates a new trend handler.
func NewTrendHandler(analyzer *prediction.Analyzer, logger *zap.Logger) *TrendHandler {
	return &TrendHandler{
		analyzer: analyzer,
		logger:   logger,
	}
}

type analyzeRequest struct {
	UserID    string `json:"userId"`
	Platform  string `json:"platform"`
	Timeframe string `json:"timeframe"`
}

// Analyze runs a fresh AI trend analysis for a user.
func (h *TrendHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.UserID == "" || req.Platform == "" {
		respondWithError(w, h.logger, http.StatusBadRequest, "userId and platform are required", nil)
		return
	}
	if req.Timeframe == "" {
		req.Timeframe = "weekly"
	}

	predictions, err := h.analyzer.AnalyzeTrends(r.Context(), req.UserID, req.Platform, req.Timeframe)
	if err != nil {
		respondWithError(w, h.logger, http.StatusInternalServerError, "Failed to analyze trends", err)
		return
	}

	respondWithJSON(w, http.StatusOK, predictions)
}

// GetPredictions returns previously persisted predictions.
func (h *TrendHandler) GetPredictions(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		respondWithError(w, h.logger, http.StatusBadRequest, "Missing user_id", nil)
		return
	}

	predictions, err := h.analyzer.GetCachedPredictions(r.Context(), userID, r.URL.Query().Get("platform"))
	if err != nil {
		respondWithError(w, h.logger, http.StatusInternalServerError, "Failed to get predictions", err)
		return
	}

	respondWithJSON(w, http.StatusOK, predictions)
}

// GetQuickInsights returns the top-trend widget payload.
func (h *TrendHandler) GetQuickInsights(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		respondWithError(w, h.logger, http.StatusBadRequest, "Missing user_id", nil)
		return
	}

	insights, err := h.analyzer.GetQuickInsights(r.Context(), userID, r.URL.Query().Get("platform"))
	if err != nil {
		respondWithError(w, h.logger, http.StatusInternalServerError, "Failed to get quick insights", err)
		return
	}

	respondWithJSON(w, http.StatusOK, insights)
}
