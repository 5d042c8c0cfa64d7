package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// respondWithJSON writes a JSON response.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"failed to marshal response"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// respondWithError writes a JSON error response, logging server errors.
func respondWithError(w http.ResponseWriter, logger *zap.Logger, code int, message string, err error) {
	if err != nil && code >= 500 && logger != nil {
		logger.Error("request failed",
			zap.Int("status", code),
			zap.String("message", message),
			zap.Error(err),
		)
	}

	respondWithJSON(w, code, map[string]string{"error": message})
}
