package repository

import (
	"time"

	alertdomain "cosmic-watch-backend/internal/alert/domain"
)

// AlertRepository defines the storage contract for alerts. Both backends
// share the same filter semantics: a user sees their own alerts plus
// system-wide ones, and read/dismiss operations only touch alerts the
// user owns.
type AlertRepository interface {
	Create(alert *alertdomain.Alert) error

	// FindForUser returns the user's alerts and system-wide alerts,
	// newest first.
	FindForUser(userID string) ([]*alertdomain.Alert, error)
	FindUnreadForUser(userID string) ([]*alertdomain.Alert, error)

	// FindRecent returns an alert for the same (asteroid, owner) created
	// at or after since, optionally narrowed by type. Used for the
	// one-alert-per-day dedupe check; returns (nil, nil) when none exists.
	FindRecent(asteroidID string, userID *string, alertType *alertdomain.AlertType, since time.Time) (*alertdomain.Alert, error)

	// MarkRead flips the read flag on a user-owned alert and returns the
	// updated record, or (nil, nil) when the user owns no such alert.
	MarkRead(alertID, userID string) (*alertdomain.Alert, error)

	// Delete removes a user-owned alert; the bool reports whether a
	// record was deleted.
	Delete(alertID, userID string) (bool, error)
}
