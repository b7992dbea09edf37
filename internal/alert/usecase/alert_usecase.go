package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	alertdomain "cosmic-watch-backend/internal/alert/domain"
	alertrepository "cosmic-watch-backend/internal/alert/repository"
	asteroiddomain "cosmic-watch-backend/internal/asteroid/domain"
	asteroidrepository "cosmic-watch-backend/internal/asteroid/repository"
	authrepository "cosmic-watch-backend/internal/auth/repository"
)

const dedupeWindow = 24 * time.Hour

type alertUsecase struct {
	alertRepo    alertrepository.AlertRepository
	asteroidRepo asteroidrepository.AsteroidRepository
	userRepo     authrepository.UserRepository
	feed         FeedFetcher
	notifier     Notifier
}

func NewAlertUsecase(
	alertRepo alertrepository.AlertRepository,
	asteroidRepo asteroidrepository.AsteroidRepository,
	userRepo authrepository.UserRepository,
	feed FeedFetcher,
	notifier Notifier,
) AlertUsecase {
	return &alertUsecase{
		alertRepo:    alertRepo,
		asteroidRepo: asteroidRepo,
		userRepo:     userRepo,
		feed:         feed,
		notifier:     notifier,
	}
}

// classify maps a scored asteroid onto an alert type, severity and message.
// The bool reports whether the object warrants an alert at all.
func classify(a *asteroiddomain.Asteroid) (alertdomain.AlertType, alertdomain.Severity, string, bool) {
	switch {
	case a.RiskScore >= 70:
		msg := fmt.Sprintf("🔴 CRITICAL THREAT DETECTED: %s\nRisk Score: %d/100\nMiss Distance: %.0f km",
			a.Name, a.RiskScore, a.MissDistance.Kilometers)
		return alertdomain.TypeHazard, alertdomain.SeverityCritical, msg, true
	case a.RiskScore >= 50:
		msg := fmt.Sprintf("🟠 HIGH-RISK OBJECT: %s\nRisk Score: %d/100\nMiss Distance: %.0f km",
			a.Name, a.RiskScore, a.MissDistance.Kilometers)
		return alertdomain.TypeHazard, alertdomain.SeverityHigh, msg, true
	case a.IsPotentiallyHazardous || a.MissDistance.Lunar < 19.5:
		msg := fmt.Sprintf("🟡 POTENTIALLY HAZARDOUS: %s\nRisk Score: %d/100\nMiss Distance: %.0f km",
			a.Name, a.RiskScore, a.MissDistance.Kilometers)
		return alertdomain.TypeApproach, alertdomain.SeverityMedium, msg, true
	}
	return "", "", "", false
}

func (u *alertUsecase) GenerateForAsteroids(ctx context.Context, asteroids []*asteroiddomain.Asteroid, userID *string) ([]*alertdomain.Alert, error) {
	created := []*alertdomain.Alert{}
	for _, a := range asteroids {
		alertType, severity, message, ok := classify(a)
		if !ok {
			continue
		}

		// One alert per (asteroid, owner) per day.
		existing, err := u.alertRepo.FindRecent(a.AsteroidID, userID, nil, time.Now().Add(-dedupeWindow))
		if err != nil {
			return nil, err
		}
		if existing != nil {
			continue
		}

		alert := &alertdomain.Alert{
			UserID:       userID,
			AsteroidID:   a.AsteroidID,
			AsteroidName: a.Name,
			Message:      message,
			Type:         alertType,
			Severity:     severity,
			RiskScore:    a.RiskScore,
			MissDistance: a.MissDistance.Kilometers,
		}
		if err := u.alertRepo.Create(alert); err != nil {
			return nil, err
		}
		created = append(created, alert)

		u.sendEmails(ctx, alert)
	}
	return created, nil
}

// sendEmails fans an alert out to its owner, or to every registered user
// when the alert is system-wide and severe. Email failures never abort the
// run.
func (u *alertUsecase) sendEmails(ctx context.Context, alert *alertdomain.Alert) {
	if alert.UserID != nil {
		if alert.Severity == alertdomain.SeverityLow {
			return
		}
		user, err := u.userRepo.FindByID(*alert.UserID)
		if err != nil || user == nil || user.Email == "" {
			return
		}
		if err := u.notifier.EmailAlert(ctx, user.Email, alert); err != nil {
			log.Printf("[Alert] email to %s failed: %v", user.Email, err)
		}
		return
	}

	if alert.Severity != alertdomain.SeverityCritical && alert.Severity != alertdomain.SeverityHigh {
		return
	}
	users, err := u.userRepo.FindAllWithEmail()
	if err != nil {
		log.Printf("[Alert] loading recipients failed: %v", err)
		return
	}
	for _, user := range users {
		if err := u.notifier.EmailAlert(ctx, user.Email, alert); err != nil {
			log.Printf("[Alert] email to %s failed: %v", user.Email, err)
		}
	}
}

func (u *alertUsecase) RunRiskAnalysis(ctx context.Context) (*AnalysisResults, error) {
	log.Println("[Alert] running risk analysis")

	today := time.Now().UTC()
	tomorrow := today.Add(24 * time.Hour)
	asteroids, err := u.feed.FetchFeed(ctx, today.Format("2006-01-02"), tomorrow.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("risk analysis feed fetch: %w", err)
	}

	globalAlerts, err := u.GenerateForAsteroids(ctx, asteroids, nil)
	if err != nil {
		return nil, err
	}
	if len(globalAlerts) > 0 {
		u.notifier.NotifyAll("new_global_alerts", globalAlerts)
	}

	watchlistCount, err := u.runWatchlistPass(ctx)
	if err != nil {
		return nil, err
	}

	log.Printf("[Alert] risk analysis done: %d global, %d watchlist", len(globalAlerts), watchlistCount)
	return &AnalysisResults{GlobalAlerts: len(globalAlerts), WatchlistAlerts: watchlistCount}, nil
}

// runWatchlistPass raises a personal alert for every watched asteroid
// approaching within tomorrow's UTC calendar day.
func (u *alertUsecase) runWatchlistPass(ctx context.Context) (int, error) {
	users, err := u.userRepo.FindWithWatchlist()
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	count := 0
	watchlistType := alertdomain.TypeWatchlist
	for _, user := range users {
		for _, entry := range user.Watchlist {
			asteroid, err := u.asteroidRepo.FindApproaching(entry.AsteroidID, dayStart, dayEnd)
			if err != nil {
				log.Printf("[Alert] watchlist lookup %s failed: %v", entry.AsteroidID, err)
				continue
			}
			if asteroid == nil {
				continue
			}

			userID := user.ID
			existing, err := u.alertRepo.FindRecent(asteroid.AsteroidID, &userID, &watchlistType, time.Now().Add(-dedupeWindow))
			if err != nil {
				return count, err
			}
			if existing != nil {
				continue
			}

			severity := alertdomain.SeverityMedium
			if asteroid.RiskScore > 50 {
				severity = alertdomain.SeverityHigh
			}
			alert := &alertdomain.Alert{
				UserID:       &userID,
				AsteroidID:   asteroid.AsteroidID,
				AsteroidName: asteroid.Name,
				Message:      fmt.Sprintf("🔭 Watchlist Alert: %s satisfies approach criteria for tomorrow!", asteroid.Name),
				Type:         alertdomain.TypeWatchlist,
				Severity:     severity,
				RiskScore:    asteroid.RiskScore,
				MissDistance: asteroid.MissDistance.Kilometers,
			}
			if err := u.alertRepo.Create(alert); err != nil {
				return count, err
			}
			count++

			u.notifier.NotifyUser(user.ID, "new_alert", alert)
			u.sendEmails(ctx, alert)
			u.notifier.PushAlert(ctx, user.ID, alert)
		}
	}
	return count, nil
}

func (u *alertUsecase) GetAlertsForUser(userID string) ([]*alertdomain.Alert, error) {
	return u.alertRepo.FindForUser(userID)
}

func (u *alertUsecase) GetUnreadAlertsForUser(userID string) ([]*alertdomain.Alert, error) {
	return u.alertRepo.FindUnreadForUser(userID)
}

func (u *alertUsecase) MarkAlertAsRead(alertID, userID string) (*alertdomain.Alert, error) {
	return u.alertRepo.MarkRead(alertID, userID)
}

func (u *alertUsecase) DismissAlert(alertID, userID string) (bool, error) {
	return u.alertRepo.Delete(alertID, userID)
}
