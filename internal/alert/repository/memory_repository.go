package repository

import (
	"sort"
	"sync"
	"time"

	alertdomain "cosmic-watch-backend/internal/alert/domain"

	"github.com/google/uuid"
)

// memoryAlertRepository is the volatile fallback store. It filters on the
// same owner semantics as the GORM backend.
type memoryAlertRepository struct {
	mu     sync.RWMutex
	alerts map[string]*alertdomain.Alert
}

func NewMemoryAlertRepository() AlertRepository {
	return &memoryAlertRepository{alerts: make(map[string]*alertdomain.Alert)}
}

func (r *memoryAlertRepository) Create(alert *alertdomain.Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if alert.ID == "" {
		alert.ID = uuid.New().String()
	}
	if alert.CreatedAt.IsZero() {
		alert.CreatedAt = time.Now()
	}
	cp := *alert
	r.alerts[alert.ID] = &cp
	return nil
}

func (r *memoryAlertRepository) FindForUser(userID string) ([]*alertdomain.Alert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var alerts []*alertdomain.Alert
	for _, a := range r.alerts {
		if a.UserID == nil || *a.UserID == userID {
			cp := *a
			alerts = append(alerts, &cp)
		}
	}
	sortNewestFirst(alerts)
	return alerts, nil
}

func (r *memoryAlertRepository) FindUnreadForUser(userID string) ([]*alertdomain.Alert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var alerts []*alertdomain.Alert
	for _, a := range r.alerts {
		if (a.UserID == nil || *a.UserID == userID) && !a.IsRead {
			cp := *a
			alerts = append(alerts, &cp)
		}
	}
	sortNewestFirst(alerts)
	return alerts, nil
}

func (r *memoryAlertRepository) FindRecent(asteroidID string, userID *string, alertType *alertdomain.AlertType, since time.Time) (*alertdomain.Alert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.alerts {
		if a.AsteroidID != asteroidID || !a.CreatedAt.After(since) {
			continue
		}
		if !sameOwner(a.UserID, userID) {
			continue
		}
		if alertType != nil && a.Type != *alertType {
			continue
		}
		cp := *a
		return &cp, nil
	}
	return nil, nil
}

func (r *memoryAlertRepository) MarkRead(alertID, userID string) (*alertdomain.Alert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.alerts[alertID]
	if !ok || a.UserID == nil || *a.UserID != userID {
		return nil, nil
	}
	a.IsRead = true
	cp := *a
	return &cp, nil
}

func (r *memoryAlertRepository) Delete(alertID, userID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.alerts[alertID]
	if !ok || a.UserID == nil || *a.UserID != userID {
		return false, nil
	}
	delete(r.alerts, alertID)
	return true, nil
}

func sameOwner(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func sortNewestFirst(alerts []*alertdomain.Alert) {
	sort.Slice(alerts, func(i, j int) bool {
		return alerts[i].CreatedAt.After(alerts[j].CreatedAt)
	})
}
