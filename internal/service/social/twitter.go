package social

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	twitter "github.com/g8rswimmer/go-twitter/v2"
	"go.uber.org/zap"

	"trendpulse/internal/domain/insight"
)

// AccountStore is the storage slice the collector needs.
type AccountStore interface {
	GetSocialAccounts(ctx context.Context, userID string) ([]insight.SocialAccountSnapshot, error)
	UpdateSocialAccountFollowers(ctx context.Context, userID, platform, username string, followers int) error
}

// bearerAuthorizer adds an app-only bearer token to Twitter API requests.
type bearerAuthorizer struct {
	token string
}

func (a bearerAuthorizer) Add(req *http.Request) {
	req.Header.Add("Authorization", "Bearer "+a.token)
}

// TwitterCollector refreshes follower counts on stored Twitter account
// snapshots via the Twitter v2 user lookup API. Accounts on other
// platforms are left untouched.
type TwitterCollector struct {
	client *twitter.Client
	store  AccountStore
	logger *zap.Logger
}

// NewTwitterCollector creates a collector. The bearer token must be an
// app-only token with user read access.
func NewTwitterCollector(bearerToken string, store AccountStore, logger *zap.Logger) *TwitterCollector {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &TwitterCollector{
		client: &twitter.Client{
			Authorizer: bearerAuthorizer{token: bearerToken},
			Client:     &http.Client{Timeout: 10 * time.Second},
			Host:       "https://api.twitter.com",
		},
		store:  store,
		logger: logger,
	}
}

// RefreshSnapshots updates follower counts for the user's Twitter
// accounts and returns how many were refreshed. A lookup failure for one
// username does not abort the rest.
func (c *TwitterCollector) RefreshSnapshots(ctx context.Context, userID string) (int, error) {
	accounts, err := c.store.GetSocialAccounts(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("loading accounts: %w", err)
	}

	var usernames []string
	for _, account := range accounts {
		if strings.EqualFold(account.Platform, "twitter") && account.Username != "" {
			usernames = append(usernames, account.Username)
		}
	}
	if len(usernames) == 0 {
		return 0, nil
	}

	resp, err := c.client.UserNameLookup(ctx, usernames, twitter.UserLookupOpts{
		UserFields: []twitter.UserField{twitter.UserFieldPublicMetrics},
	})
	if err != nil {
		return 0, fmt.Errorf("twitter user lookup: %w", err)
	}

	refreshed := 0
	for _, user := range resp.Raw.Users {
		if user == nil || user.PublicMetrics == nil {
			continue
		}

		err := c.store.UpdateSocialAccountFollowers(ctx, userID, "twitter", user.UserName, user.PublicMetrics.Followers)
		if err != nil {
			c.logger.Warn("failed to update account snapshot",
				zap.String("user_id", userID),
				zap.String("username", user.UserName),
				zap.Error(err),
			)
			continue
		}
		refreshed++
	}

	return refreshed, nil
}
