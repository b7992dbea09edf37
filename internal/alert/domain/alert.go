package domain

import "time"

type AlertType string

const (
	TypeHazard    AlertType = "HAZARD"
	TypeApproach  AlertType = "APPROACH"
	TypeWatchlist AlertType = "WATCHLIST"
	TypeSystem    AlertType = "SYSTEM"
)

type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityHigh     Severity = "HIGH"
	SeverityMedium   Severity = "MEDIUM"
	SeverityLow      Severity = "LOW"
)

// Alert is one notification record. A nil UserID marks a system-wide
// alert visible to every user.
type Alert struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	UserID       *string   `json:"user_id" gorm:"index"`
	AsteroidID   string    `json:"asteroid_id" gorm:"index;not null"`
	AsteroidName string    `json:"asteroid_name" gorm:"not null"`
	Message      string    `json:"message" gorm:"not null"`
	Type         AlertType `json:"type" gorm:"default:APPROACH"`
	Severity     Severity  `json:"severity" gorm:"default:LOW"`
	RiskScore    int       `json:"risk_score"`
	MissDistance float64   `json:"miss_distance"` // kilometers
	IsRead       bool      `json:"is_read" gorm:"default:false"`
	CreatedAt    time.Time `json:"created_at"`
}
