package usecase

import (
	"context"

	alertdomain "cosmic-watch-backend/internal/alert/domain"
	asteroiddomain "cosmic-watch-backend/internal/asteroid/domain"
)

// Notifier is the fan-out port for newly created alerts. The generator's
// classify/dedupe/persist core stays testable with a fake implementation;
// production wires email, websocket push and FCM behind it.
type Notifier interface {
	EmailAlert(ctx context.Context, to string, alert *alertdomain.Alert) error
	NotifyUser(userID, event string, payload any)
	NotifyAll(event string, payload any)
	PushAlert(ctx context.Context, userID string, alert *alertdomain.Alert)
}

// FeedFetcher is the slice of the asteroid usecase the risk-analysis run
// needs.
type FeedFetcher interface {
	FetchFeed(ctx context.Context, startDate, endDate string) ([]*asteroiddomain.Asteroid, error)
}

// AnalysisResults counts the alerts produced by one risk-analysis run.
type AnalysisResults struct {
	GlobalAlerts    int `json:"globalAlerts"`
	WatchlistAlerts int `json:"watchlistAlerts"`
}

// AlertUsecase generates, serves and mutates alerts.
type AlertUsecase interface {
	// GenerateForAsteroids classifies scored asteroids and persists one
	// alert per (asteroid, owner, day). A nil userID creates system-wide
	// alerts. Returns the newly created alerts; an empty slice is valid.
	GenerateForAsteroids(ctx context.Context, asteroids []*asteroiddomain.Asteroid, userID *string) ([]*alertdomain.Alert, error)

	// RunRiskAnalysis executes the full pipeline: fetch today/tomorrow's
	// feed, generate system-wide alerts, then the per-user watchlist pass.
	RunRiskAnalysis(ctx context.Context) (*AnalysisResults, error)

	GetAlertsForUser(userID string) ([]*alertdomain.Alert, error)
	GetUnreadAlertsForUser(userID string) ([]*alertdomain.Alert, error)
	MarkAlertAsRead(alertID, userID string) (*alertdomain.Alert, error)
	DismissAlert(alertID, userID string) (bool, error)
}
