package repository

import (
	"errors"
	"time"

	alertdomain "cosmic-watch-backend/internal/alert/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormAlertRepository implements AlertRepository on GORM.
type gormAlertRepository struct {
	db *gorm.DB
}

func NewGormAlertRepository(db *gorm.DB) AlertRepository {
	return &gormAlertRepository{db: db}
}

func (r *gormAlertRepository) Create(alert *alertdomain.Alert) error {
	if alert.ID == "" {
		alert.ID = uuid.New().String()
	}
	if alert.CreatedAt.IsZero() {
		alert.CreatedAt = time.Now()
	}
	return r.db.Create(alert).Error
}

func (r *gormAlertRepository) FindForUser(userID string) ([]*alertdomain.Alert, error) {
	var alerts []*alertdomain.Alert
	err := r.db.Where("user_id = ? OR user_id IS NULL", userID).
		Order("created_at DESC").Find(&alerts).Error
	if err != nil {
		return nil, err
	}
	return alerts, nil
}

func (r *gormAlertRepository) FindUnreadForUser(userID string) ([]*alertdomain.Alert, error) {
	var alerts []*alertdomain.Alert
	err := r.db.Where("(user_id = ? OR user_id IS NULL) AND is_read = ?", userID, false).
		Order("created_at DESC").Find(&alerts).Error
	if err != nil {
		return nil, err
	}
	return alerts, nil
}

func (r *gormAlertRepository) FindRecent(asteroidID string, userID *string, alertType *alertdomain.AlertType, since time.Time) (*alertdomain.Alert, error) {
	query := r.db.Where("asteroid_id = ? AND created_at > ?", asteroidID, since)
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	} else {
		query = query.Where("user_id IS NULL")
	}
	if alertType != nil {
		query = query.Where("type = ?", *alertType)
	}

	var alert alertdomain.Alert
	err := query.First(&alert).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &alert, nil
}

func (r *gormAlertRepository) MarkRead(alertID, userID string) (*alertdomain.Alert, error) {
	var alert alertdomain.Alert
	err := r.db.Where("id = ? AND user_id = ?", alertID, userID).First(&alert).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	alert.IsRead = true
	if err := r.db.Save(&alert).Error; err != nil {
		return nil, err
	}
	return &alert, nil
}

func (r *gormAlertRepository) Delete(alertID, userID string) (bool, error) {
	result := r.db.Where("id = ? AND user_id = ?", alertID, userID).Delete(&alertdomain.Alert{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
