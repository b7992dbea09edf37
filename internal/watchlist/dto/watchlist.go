package dto

import authdomain "cosmic-watch-backend/internal/auth/domain"

type AddWatchRequest struct {
	AsteroidID      string                     `json:"asteroid_id" binding:"required"`
	Name            string                     `json:"name"`
	AlertThresholds authdomain.AlertThresholds `json:"alert_thresholds"`
}
