package repository

import (
	"errors"
	"time"

	asteroiddomain "cosmic-watch-backend/internal/asteroid/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gormAsteroidRepository implements AsteroidRepository on GORM.
type gormAsteroidRepository struct {
	db *gorm.DB
}

func NewGormAsteroidRepository(db *gorm.DB) AsteroidRepository {
	return &gormAsteroidRepository{db: db}
}

func (r *gormAsteroidRepository) Upsert(asteroid *asteroiddomain.Asteroid) error {
	asteroid.LastUpdated = time.Now()
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "asteroid_id"}},
		UpdateAll: true,
	}).Create(asteroid).Error
}

func (r *gormAsteroidRepository) FindByID(asteroidID string) (*asteroiddomain.Asteroid, error) {
	var asteroid asteroiddomain.Asteroid
	err := r.db.Where("asteroid_id = ?", asteroidID).First(&asteroid).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &asteroid, nil
}

func (r *gormAsteroidRepository) FindAll() ([]*asteroiddomain.Asteroid, error) {
	var asteroids []*asteroiddomain.Asteroid
	err := r.db.Order("risk_score DESC").Find(&asteroids).Error
	if err != nil {
		return nil, err
	}
	return asteroids, nil
}

func (r *gormAsteroidRepository) FindApproaching(asteroidID string, from, to time.Time) (*asteroiddomain.Asteroid, error) {
	var asteroid asteroiddomain.Asteroid
	err := r.db.Where("asteroid_id = ? AND close_approach_date >= ? AND close_approach_date < ?",
		asteroidID, from, to).First(&asteroid).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &asteroid, nil
}
