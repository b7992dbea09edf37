package repository

import (
	"time"

	asteroiddomain "cosmic-watch-backend/internal/asteroid/domain"
)

// AsteroidRepository defines the storage contract for asteroids. Lookups
// return (nil, nil) when no record matches.
type AsteroidRepository interface {
	// Upsert inserts or replaces the record keyed by its NeoWs id.
	Upsert(asteroid *asteroiddomain.Asteroid) error
	FindByID(asteroidID string) (*asteroiddomain.Asteroid, error)
	FindAll() ([]*asteroiddomain.Asteroid, error)

	// FindApproaching returns the asteroid when its close-approach date
	// falls within [from, to).
	FindApproaching(asteroidID string, from, to time.Time) (*asteroiddomain.Asteroid, error)
}
