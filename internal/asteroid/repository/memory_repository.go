package repository

import (
	"sort"
	"sync"
	"time"

	asteroiddomain "cosmic-watch-backend/internal/asteroid/domain"
)

// memoryAsteroidRepository is the volatile fallback store.
type memoryAsteroidRepository struct {
	mu        sync.RWMutex
	asteroids map[string]*asteroiddomain.Asteroid
}

func NewMemoryAsteroidRepository() AsteroidRepository {
	return &memoryAsteroidRepository{asteroids: make(map[string]*asteroiddomain.Asteroid)}
}

func (r *memoryAsteroidRepository) Upsert(asteroid *asteroiddomain.Asteroid) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	asteroid.LastUpdated = time.Now()
	cp := *asteroid
	r.asteroids[asteroid.AsteroidID] = &cp
	return nil
}

func (r *memoryAsteroidRepository) FindByID(asteroidID string) (*asteroiddomain.Asteroid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if a, ok := r.asteroids[asteroidID]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, nil
}

func (r *memoryAsteroidRepository) FindAll() ([]*asteroiddomain.Asteroid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	asteroids := make([]*asteroiddomain.Asteroid, 0, len(r.asteroids))
	for _, a := range r.asteroids {
		cp := *a
		asteroids = append(asteroids, &cp)
	}
	sort.Slice(asteroids, func(i, j int) bool {
		return asteroids[i].RiskScore > asteroids[j].RiskScore
	})
	return asteroids, nil
}

func (r *memoryAsteroidRepository) FindApproaching(asteroidID string, from, to time.Time) (*asteroiddomain.Asteroid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.asteroids[asteroidID]
	if !ok {
		return nil, nil
	}
	if a.CloseApproachDate.Before(from) || !a.CloseApproachDate.Before(to) {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}
