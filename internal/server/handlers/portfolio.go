package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"trendpulse/internal/adapter/storage"
	"trendpulse/internal/service/social"
)

// PortfolioHandler serves stored analysis inputs: portfolio content and
// social account snapshots.
type PortfolioHandler struct {
	store     *storage.PortfolioStore
	collector *social.TwitterCollector
	logger    *zap.Logger
}

// NewPortfolioHandler creates a new portfolio handler. The collector may
// be nil when no Twitter credentials are configured.
func NewPortfolioHandler(store *storage.PortfolioStore, collector *social.TwitterCollector, logger *zap.Logger) *PortfolioHandler {
	return &PortfolioHandler{
		store:     store,
		collector: collector,
		logger:    logger,
	}
}

// GetPortfolio returns the user's portfolio content.
func (h *PortfolioHandler) GetPortfolio(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		respondWithError(w, h.logger, http.StatusBadRequest, "Missing user_id", nil)
		return
	}

	content, err := h.store.GetPortfolioContent(r.Context(), userID, r.URL.Query().Get("platform"))
	if err != nil {
		respondWithError(w, h.logger, http.StatusInternalServerError, "Failed to get portfolio content", err)
		return
	}

	respondWithJSON(w, http.StatusOK, content)
}

// GetAccounts returns the user's social account snapshots.
func (h *PortfolioHandler) GetAccounts(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		respondWithError(w, h.logger, http.StatusBadRequest, "Missing user_id", nil)
		return
	}

	accounts, err := h.store.GetSocialAccounts(r.Context(), userID)
	if err != nil {
		respondWithError(w, h.logger, http.StatusInternalServerError, "Failed to get accounts", err)
		return
	}

	respondWithJSON(w, http.StatusOK, accounts)
}

type refreshRequest struct {
	UserID string `json:"userId"`
}

// RefreshAccounts pulls fresh follower counts from the platform APIs.
func (h *PortfolioHandler) RefreshAccounts(w http.ResponseWriter, r *http.Request) {
	if h.collector == nil {
		respondWithError(w, h.logger, http.StatusServiceUnavailable, "Platform collectors are not configured", nil)
		return
	}

	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.UserID == "" {
		respondWithError(w, h.logger, http.StatusBadRequest, "userId is required", nil)
		return
	}

	refreshed, err := h.collector.RefreshSnapshots(r.Context(), req.UserID)
	if err != nil {
		respondWithError(w, h.logger, http.StatusInternalServerError, "Failed to refresh accounts", err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]int{"refreshed": refreshed})
}
