package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	alertdomain "cosmic-watch-backend/internal/alert/domain"
	alertrepository "cosmic-watch-backend/internal/alert/repository"
	asteroiddomain "cosmic-watch-backend/internal/asteroid/domain"
	asteroidrepository "cosmic-watch-backend/internal/asteroid/repository"
	authdomain "cosmic-watch-backend/internal/auth/domain"
	authrepository "cosmic-watch-backend/internal/auth/repository"
)

// fakeNotifier records fan-out calls so tests can assert on them.
type fakeNotifier struct {
	mu         sync.Mutex
	emails     []string
	userEvents []string
	broadcasts []string
	pushes     []string
	emailErr   error
}

func (f *fakeNotifier) EmailAlert(_ context.Context, to string, _ *alertdomain.Alert) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.emails = append(f.emails, to)
	return f.emailErr
}

func (f *fakeNotifier) NotifyUser(userID, event string, _ any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.userEvents = append(f.userEvents, userID+":"+event)
}

func (f *fakeNotifier) NotifyAll(event string, _ any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.broadcasts = append(f.broadcasts, event)
}

func (f *fakeNotifier) PushAlert(_ context.Context, userID string, _ *alertdomain.Alert) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pushes = append(f.pushes, userID)
}

type fakeFeed struct {
	asteroids []*asteroiddomain.Asteroid
	err       error
}

func (f *fakeFeed) FetchFeed(context.Context, string, string) ([]*asteroiddomain.Asteroid, error) {
	return f.asteroids, f.err
}

func criticalAsteroid(id string) *asteroiddomain.Asteroid {
	return &asteroiddomain.Asteroid{
		AsteroidID:             id,
		Name:                   "(2025 XK)",
		MissDistance:           asteroiddomain.MissDistance{Kilometers: 500_000, Lunar: 1.3},
		IsPotentiallyHazardous: true,
		RiskScore:              100,
	}
}

func newTestUsecase(feed FeedFetcher, notifier Notifier) (AlertUsecase, alertrepository.AlertRepository, asteroidrepository.AsteroidRepository, authrepository.UserRepository) {
	alertRepo := alertrepository.NewMemoryAlertRepository()
	asteroidRepo := asteroidrepository.NewMemoryAsteroidRepository()
	userRepo := authrepository.NewMemoryUserRepository()
	uc := NewAlertUsecase(alertRepo, asteroidRepo, userRepo, feed, notifier)
	return uc, alertRepo, asteroidRepo, userRepo
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		asteroid *asteroiddomain.Asteroid
		wantType alertdomain.AlertType
		wantSev  alertdomain.Severity
		wantOK   bool
	}{
		{
			name:     "critical at 70",
			asteroid: &asteroiddomain.Asteroid{RiskScore: 70},
			wantType: alertdomain.TypeHazard,
			wantSev:  alertdomain.SeverityCritical,
			wantOK:   true,
		},
		{
			name:     "high at 50",
			asteroid: &asteroiddomain.Asteroid{RiskScore: 50},
			wantType: alertdomain.TypeHazard,
			wantSev:  alertdomain.SeverityHigh,
			wantOK:   true,
		},
		{
			name:     "hazardous flag alone",
			asteroid: &asteroiddomain.Asteroid{RiskScore: 30, IsPotentiallyHazardous: true},
			wantType: alertdomain.TypeApproach,
			wantSev:  alertdomain.SeverityMedium,
			wantOK:   true,
		},
		{
			name: "close lunar pass",
			asteroid: &asteroiddomain.Asteroid{
				RiskScore:    20,
				MissDistance: asteroiddomain.MissDistance{Lunar: 10},
			},
			wantType: alertdomain.TypeApproach,
			wantSev:  alertdomain.SeverityMedium,
			wantOK:   true,
		},
		{
			// Distant, non-hazardous and low score raises nothing.
			name: "quiet object",
			asteroid: &asteroiddomain.Asteroid{
				RiskScore:    35,
				MissDistance: asteroiddomain.MissDistance{Lunar: 19.5},
			},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotType, gotSev, msg, ok := classify(tt.asteroid)
			if ok != tt.wantOK {
				t.Fatalf("classify() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if gotType != tt.wantType || gotSev != tt.wantSev {
				t.Errorf("classify() = %v/%v, want %v/%v", gotType, gotSev, tt.wantType, tt.wantSev)
			}
			if msg == "" {
				t.Error("classify() returned empty message")
			}
		})
	}
}

func TestGenerateForAsteroidsDedupe(t *testing.T) {
	uc, _, _, _ := newTestUsecase(nil, &fakeNotifier{})
	asteroids := []*asteroiddomain.Asteroid{criticalAsteroid("3542519")}

	first, err := uc.GenerateForAsteroids(context.Background(), asteroids, nil)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("first run created %d alerts, want 1", len(first))
	}

	// Same asteroid inside the 24h window must not alert again.
	second, err := uc.GenerateForAsteroids(context.Background(), asteroids, nil)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if len(second) != 0 {
		t.Fatalf("second run created %d alerts, want 0", len(second))
	}
}

func TestGenerateForAsteroidsEmailsAllUsersOnCriticalGlobal(t *testing.T) {
	notifier := &fakeNotifier{}
	uc, _, _, userRepo := newTestUsecase(nil, notifier)

	for _, email := range []string{"ada@example.com", "linus@example.com"} {
		if err := userRepo.Create(&authdomain.User{Username: email, Email: email, Password: "x"}); err != nil {
			t.Fatal(err)
		}
	}

	_, err := uc.GenerateForAsteroids(context.Background(), []*asteroiddomain.Asteroid{criticalAsteroid("1")}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(notifier.emails) != 2 {
		t.Fatalf("sent %d emails, want 2", len(notifier.emails))
	}
}

func TestGenerateForAsteroidsEmailFailureIsNonFatal(t *testing.T) {
	notifier := &fakeNotifier{emailErr: errors.New("ses throttled")}
	uc, _, _, userRepo := newTestUsecase(nil, notifier)

	if err := userRepo.Create(&authdomain.User{Username: "ada", Email: "ada@example.com", Password: "x"}); err != nil {
		t.Fatal(err)
	}

	created, err := uc.GenerateForAsteroids(context.Background(), []*asteroiddomain.Asteroid{criticalAsteroid("1")}, nil)
	if err != nil {
		t.Fatalf("email failure aborted the run: %v", err)
	}
	if len(created) != 1 {
		t.Fatalf("created %d alerts, want 1", len(created))
	}
}

func TestGenerateForAsteroidsSkipsQuietObjects(t *testing.T) {
	uc, _, _, _ := newTestUsecase(nil, &fakeNotifier{})

	quiet := &asteroiddomain.Asteroid{
		AsteroidID:   "2000433",
		Name:         "433 Eros",
		RiskScore:    35,
		MissDistance: asteroiddomain.MissDistance{Kilometers: 2.6e7, Lunar: 70},
	}
	created, err := uc.GenerateForAsteroids(context.Background(), []*asteroiddomain.Asteroid{quiet}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(created) != 0 {
		t.Fatalf("created %d alerts for a quiet object, want 0", len(created))
	}
}

func TestRunRiskAnalysisBroadcastsGlobalAlerts(t *testing.T) {
	notifier := &fakeNotifier{}
	feed := &fakeFeed{asteroids: []*asteroiddomain.Asteroid{criticalAsteroid("1")}}
	uc, _, _, _ := newTestUsecase(feed, notifier)

	results, err := uc.RunRiskAnalysis(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if results.GlobalAlerts != 1 {
		t.Fatalf("GlobalAlerts = %d, want 1", results.GlobalAlerts)
	}
	if len(notifier.broadcasts) != 1 || notifier.broadcasts[0] != "new_global_alerts" {
		t.Fatalf("broadcasts = %v, want [new_global_alerts]", notifier.broadcasts)
	}
}

func TestRunRiskAnalysisNoBroadcastWithoutAlerts(t *testing.T) {
	notifier := &fakeNotifier{}
	uc, _, _, _ := newTestUsecase(&fakeFeed{}, notifier)

	results, err := uc.RunRiskAnalysis(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if results.GlobalAlerts != 0 || results.WatchlistAlerts != 0 {
		t.Fatalf("results = %+v, want zeros", results)
	}
	if len(notifier.broadcasts) != 0 {
		t.Fatalf("broadcasts = %v, want none", notifier.broadcasts)
	}
}

func TestRunRiskAnalysisFeedFailure(t *testing.T) {
	uc, _, _, _ := newTestUsecase(&fakeFeed{err: errors.New("upstream down")}, &fakeNotifier{})
	if _, err := uc.RunRiskAnalysis(context.Background()); err == nil {
		t.Fatal("expected error when the feed fetch fails")
	}
}

func TestWatchlistPassSingleAlertPerDay(t *testing.T) {
	notifier := &fakeNotifier{}
	feed := &fakeFeed{}
	uc, _, asteroidRepo, userRepo := newTestUsecase(feed, notifier)

	user := &authdomain.User{
		Username: "ada",
		Email:    "ada@example.com",
		Password: "x",
		Watchlist: []authdomain.WatchlistEntry{
			{AsteroidID: "3542519", Name: "(2010 PK9)"},
		},
	}
	if err := userRepo.Create(user); err != nil {
		t.Fatal(err)
	}

	// Approaching within tomorrow's UTC day.
	tomorrow := time.Now().UTC().Truncate(24 * time.Hour).Add(36 * time.Hour)
	watched := criticalAsteroid("3542519")
	watched.RiskScore = 60
	watched.CloseApproachDate = tomorrow
	if err := asteroidRepo.Upsert(watched); err != nil {
		t.Fatal(err)
	}

	results, err := uc.RunRiskAnalysis(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if results.WatchlistAlerts != 1 {
		t.Fatalf("WatchlistAlerts = %d, want 1", results.WatchlistAlerts)
	}
	if len(notifier.userEvents) != 1 || notifier.userEvents[0] != user.ID+":new_alert" {
		t.Fatalf("userEvents = %v, want [%s:new_alert]", notifier.userEvents, user.ID)
	}
	if len(notifier.pushes) != 1 {
		t.Fatalf("pushes = %v, want one push for the owner", notifier.pushes)
	}

	// Second run inside the dedupe window stays silent.
	results, err = uc.RunRiskAnalysis(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if results.WatchlistAlerts != 0 {
		t.Fatalf("second run WatchlistAlerts = %d, want 0", results.WatchlistAlerts)
	}
}

func TestWatchlistPassSeverityFromScore(t *testing.T) {
	tests := []struct {
		name  string
		score int
		want  alertdomain.Severity
	}{
		{"exactly 50 is medium", 50, alertdomain.SeverityMedium},
		{"above 50 is high", 51, alertdomain.SeverityHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, alertRepo, asteroidRepo, userRepo := newTestUsecase(&fakeFeed{}, &fakeNotifier{})

			user := &authdomain.User{
				Username:  "ada",
				Email:     "ada@example.com",
				Password:  "x",
				Watchlist: []authdomain.WatchlistEntry{{AsteroidID: "99942", Name: "Apophis"}},
			}
			if err := userRepo.Create(user); err != nil {
				t.Fatal(err)
			}

			watched := &asteroiddomain.Asteroid{
				AsteroidID:        "99942",
				Name:              "Apophis",
				RiskScore:         tt.score,
				MissDistance:      asteroiddomain.MissDistance{Kilometers: 3.1e4, Lunar: 0.1},
				CloseApproachDate: time.Now().UTC().Truncate(24 * time.Hour).Add(30 * time.Hour),
			}
			if err := asteroidRepo.Upsert(watched); err != nil {
				t.Fatal(err)
			}

			if _, err := uc.RunRiskAnalysis(context.Background()); err != nil {
				t.Fatal(err)
			}

			alerts, err := alertRepo.FindForUser(user.ID)
			if err != nil {
				t.Fatal(err)
			}
			var found *alertdomain.Alert
			for _, a := range alerts {
				if a.Type == alertdomain.TypeWatchlist {
					found = a
					break
				}
			}
			if found == nil {
				t.Fatal("no watchlist alert created")
			}
			if found.Severity != tt.want {
				t.Errorf("severity = %s, want %s", found.Severity, tt.want)
			}
		})
	}
}

func TestWatchlistPassIgnoresDistantApproaches(t *testing.T) {
	uc, _, asteroidRepo, userRepo := newTestUsecase(&fakeFeed{}, &fakeNotifier{})

	user := &authdomain.User{
		Username:  "ada",
		Email:     "ada@example.com",
		Password:  "x",
		Watchlist: []authdomain.WatchlistEntry{{AsteroidID: "433", Name: "Eros"}},
	}
	if err := userRepo.Create(user); err != nil {
		t.Fatal(err)
	}

	// Approach is a week out, not tomorrow.
	watched := criticalAsteroid("433")
	watched.CloseApproachDate = time.Now().UTC().Add(7 * 24 * time.Hour)
	if err := asteroidRepo.Upsert(watched); err != nil {
		t.Fatal(err)
	}

	results, err := uc.RunRiskAnalysis(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if results.WatchlistAlerts != 0 {
		t.Fatalf("WatchlistAlerts = %d, want 0", results.WatchlistAlerts)
	}
}

func TestMarkAlertAsReadScopedToOwner(t *testing.T) {
	uc, alertRepo, _, _ := newTestUsecase(nil, &fakeNotifier{})

	owner := "user-1"
	alert := &alertdomain.Alert{
		UserID:       &owner,
		AsteroidID:   "1",
		AsteroidName: "test",
		Message:      "msg",
		Type:         alertdomain.TypeWatchlist,
		Severity:     alertdomain.SeverityMedium,
	}
	if err := alertRepo.Create(alert); err != nil {
		t.Fatal(err)
	}

	if got, err := uc.MarkAlertAsRead(alert.ID, "someone-else"); err != nil || got != nil {
		t.Fatalf("MarkAlertAsRead(other user) = %v, %v; want nil, nil", got, err)
	}

	got, err := uc.MarkAlertAsRead(alert.ID, owner)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || !got.IsRead {
		t.Fatalf("MarkAlertAsRead(owner) = %+v, want read alert", got)
	}
}

func TestDismissAlert(t *testing.T) {
	uc, alertRepo, _, _ := newTestUsecase(nil, &fakeNotifier{})

	owner := "user-1"
	alert := &alertdomain.Alert{
		UserID:     &owner,
		AsteroidID: "1",
		Message:    "msg",
	}
	if err := alertRepo.Create(alert); err != nil {
		t.Fatal(err)
	}

	if deleted, err := uc.DismissAlert("unknown-id", owner); err != nil || deleted {
		t.Fatalf("DismissAlert(unknown) = %v, %v; want false, nil", deleted, err)
	}
	if deleted, err := uc.DismissAlert(alert.ID, owner); err != nil || !deleted {
		t.Fatalf("DismissAlert(owner) = %v, %v; want true, nil", deleted, err)
	}
}
