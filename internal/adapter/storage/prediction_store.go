package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"

	"trendpulse/internal/domain/prediction"
)

// PredictionStore implements storage for AI trend predictions.
type PredictionStore struct {
	db *pgxpool.Pool
}

// NewPredictionStore creates a new prediction store.
func NewPredictionStore(db *pgxpool.Pool) *PredictionStore {
	return &PredictionStore{
		db: db,
	}
}

// CreateTrendPrediction persists a prediction.
func (s *PredictionStore) CreateTrendPrediction(ctx context.Context, rec prediction.StoredPrediction) error {
	query := `
		INSERT INTO trend_predictions (
			id, user_id, platform, trend, confidence, timeframe,
			predicted_growth, content_suggestions, target_audience,
			reasoning, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9,
			$10, $11
		)
	`

	suggestionsJSON, err := json.Marshal(rec.ContentSuggestions)
	if err != nil {
		return fmt.Errorf("error marshaling suggestions: %w", err)
	}

	_, err = s.db.Exec(
		ctx,
		query,
		rec.ID,
		rec.UserID,
		rec.Platform,
		rec.Trend,
		rec.Confidence,
		rec.Timeframe,
		rec.PredictedGrowth,
		suggestionsJSON,
		rec.TargetAudience,
		rec.Reasoning,
		rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// GetTrendPredictions returns a user's persisted predictions, newest
// first, optionally filtered by platform.
func (s *PredictionStore) GetTrendPredictions(ctx context.Context, userID, platform string) ([]prediction.StoredPrediction, error) {
	query := `
		SELECT id, user_id, platform, trend, confidence, timeframe,
			predicted_growth, content_suggestions, target_audience,
			reasoning, created_at
		FROM trend_predictions
		WHERE user_id = $1
	`

	args := []interface{}{userID}
	if platform != "" {
		query += " AND platform = $2"
		args = append(args, platform)
	}
	query += " ORDER BY created_at DESC LIMIT 50"

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var predictions []prediction.StoredPrediction
	for rows.Next() {
		var rec prediction.StoredPrediction
		var suggestionsJSON []byte

		if err := rows.Scan(
			&rec.ID,
			&rec.UserID,
			&rec.Platform,
			&rec.Trend,
			&rec.Confidence,
			&rec.Timeframe,
			&rec.PredictedGrowth,
			&suggestionsJSON,
			&rec.TargetAudience,
			&rec.Reasoning,
			&rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning prediction: %w", err)
		}

		if err := json.Unmarshal(suggestionsJSON, &rec.ContentSuggestions); err != nil {
			return nil, fmt.Errorf("error unmarshaling suggestions: %w", err)
		}

		predictions = append(predictions, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating predictions: %w", err)
	}

	return predictions, nil
}
