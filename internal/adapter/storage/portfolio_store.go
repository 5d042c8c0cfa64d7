package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"

	"trendpulse/internal/domain/insight"
	"trendpulse/internal/domain/prediction"
)

// PortfolioStore implements storage for the inputs of trend analysis:
// social account snapshots, portfolio content, milestones and
// collaborations.
type PortfolioStore struct {
	db *pgxpool.Pool
}

// NewPortfolioStore creates a new portfolio store.
func NewPortfolioStore(db *pgxpool.Pool) *PortfolioStore {
	return &PortfolioStore{
		db: db,
	}
}

// GetSocialAccounts returns the user's account snapshots.
func (s *PortfolioStore) GetSocialAccounts(ctx context.Context, userID string) ([]insight.SocialAccountSnapshot, error) {
	query := `
		SELECT platform, username, followers, engagement_rate, captured_at
		FROM social_accounts
		WHERE user_id = $1
		ORDER BY platform
	`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying social accounts: %w", err)
	}
	defer rows.Close()

	var accounts []insight.SocialAccountSnapshot
	for rows.Next() {
		var account insight.SocialAccountSnapshot
		if err := rows.Scan(
			&account.Platform,
			&account.Username,
			&account.Followers,
			&account.EngagementRate,
			&account.CapturedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning social account: %w", err)
		}
		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating social accounts: %w", err)
	}

	return accounts, nil
}

// UpdateSocialAccountFollowers updates the follower count on a stored
// snapshot, used by the platform collectors.
func (s *PortfolioStore) UpdateSocialAccountFollowers(ctx context.Context, userID, platform, username string, followers int) error {
	query := `
		UPDATE social_accounts
		SET followers = $4, captured_at = now()
		WHERE user_id = $1 AND platform = $2 AND username = $3
	`

	tag, err := s.db.Exec(ctx, query, userID, platform, username, followers)
	if err != nil {
		return fmt.Errorf("error updating social account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("social account not found: %s/%s", platform, username)
	}

	return nil
}

// GetPortfolioContent returns the user's published content, optionally
// filtered by platform.
func (s *PortfolioStore) GetPortfolioContent(ctx context.Context, userID, platform string) ([]insight.ContentRecord, error) {
	query := `
		SELECT id, platform, title, description, categories,
			COALESCE(likes, 0), COALESCE(comments, 0), COALESCE(views, 0),
			published_at, top_performer
		FROM portfolio_content
		WHERE user_id = $1
	`

	args := []interface{}{userID}
	if platform != "" {
		query += " AND platform = $2"
		args = append(args, platform)
	}
	query += " ORDER BY published_at DESC"

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying portfolio content: %w", err)
	}
	defer rows.Close()

	var records []insight.ContentRecord
	for rows.Next() {
		var record insight.ContentRecord
		if err := rows.Scan(
			&record.ID,
			&record.Platform,
			&record.Title,
			&record.Description,
			&record.Categories,
			&record.Likes,
			&record.Comments,
			&record.Views,
			&record.PublishedAt,
			&record.TopPerformer,
		); err != nil {
			return nil, fmt.Errorf("error scanning portfolio content: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating portfolio content: %w", err)
	}

	return records, nil
}

// GetPerformanceMilestones returns the user's performance milestones.
func (s *PortfolioStore) GetPerformanceMilestones(ctx context.Context, userID string) ([]prediction.Milestone, error) {
	query := `
		SELECT title, metric, value, achieved_at
		FROM performance_milestones
		WHERE user_id = $1
		ORDER BY achieved_at DESC
	`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying milestones: %w", err)
	}
	defer rows.Close()

	var milestones []prediction.Milestone
	for rows.Next() {
		var milestone prediction.Milestone
		if err := rows.Scan(
			&milestone.Title,
			&milestone.Metric,
			&milestone.Value,
			&milestone.AchievedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning milestone: %w", err)
		}
		milestones = append(milestones, milestone)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating milestones: %w", err)
	}

	return milestones, nil
}

// GetContentCategories returns the distinct categories across the user's
// portfolio content.
func (s *PortfolioStore) GetContentCategories(ctx context.Context, userID string) ([]string, error) {
	query := `
		SELECT DISTINCT unnest(categories)
		FROM portfolio_content
		WHERE user_id = $1
		ORDER BY 1
	`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, fmt.Errorf("error scanning category: %w", err)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

// GetBrandCollaborations returns the user's brand collaborations.
func (s *PortfolioStore) GetBrandCollaborations(ctx context.Context, userID string) ([]prediction.Collaboration, error) {
	query := `
		SELECT brand_name, platform, status
		FROM brand_collaborations
		WHERE user_id = $1
		ORDER BY brand_name
	`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying collaborations: %w", err)
	}
	defer rows.Close()

	var collaborations []prediction.Collaboration
	for rows.Next() {
		var collab prediction.Collaboration
		if err := rows.Scan(&collab.BrandName, &collab.Platform, &collab.Status); err != nil {
			return nil, fmt.Errorf("error scanning collaboration: %w", err)
		}
		collaborations = append(collaborations, collab)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating collaborations: %w", err)
	}

	return collaborations, nil
}
