package domain

import (
	"time"

	"gorm.io/datatypes"
)

// AlertThresholds are per-watch overrides for when a tracked asteroid
// should raise an alert. Zero values mean "use the defaults".
type AlertThresholds struct {
	MinRiskScore      int     `json:"min_risk_score,omitempty"`
	MaxMissDistanceKM float64 `json:"max_miss_distance_km,omitempty"`
}

// WatchlistEntry is one tracked asteroid on a user's watchlist.
type WatchlistEntry struct {
	AsteroidID      string          `json:"asteroid_id"`
	Name            string          `json:"name"`
	AlertThresholds AlertThresholds `json:"alert_thresholds,omitempty"`
}

type User struct {
	ID        string                              `json:"id" gorm:"primaryKey"`
	Username  string                              `json:"username" gorm:"uniqueIndex;not null"`
	Email     string                              `json:"email" gorm:"uniqueIndex;not null"`
	Password  string                              `json:"-" gorm:"not null"` // Never return password in JSON
	Role      string                              `json:"role" gorm:"default:user"`
	Watchlist datatypes.JSONSlice[WatchlistEntry] `json:"watchlist"`
	CreatedAt time.Time                           `json:"created_at"`
	UpdatedAt time.Time                           `json:"updated_at"`
}

// FCMToken represents a Firebase Cloud Messaging device token for push notifications.
type FCMToken struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	UserID     string    `json:"user_id" gorm:"index;not null"`
	Token      string    `json:"-" gorm:"uniqueIndex;not null"` // Don't expose token in JSON
	DeviceInfo string    `json:"device_info"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
