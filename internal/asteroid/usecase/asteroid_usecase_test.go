package usecase

import (
	"context"
	"errors"
	"testing"

	"cosmic-watch-backend/internal/asteroid/repository"
	"cosmic-watch-backend/pkg/nasa"
)

type fakeNEOSource struct {
	feed      []*nasa.Asteroid
	feedErr   error
	lookup    *nasa.Asteroid
	lookupErr error
}

func (f *fakeNEOSource) FetchFeed(context.Context, string, string) ([]*nasa.Asteroid, error) {
	return f.feed, f.feedErr
}

func (f *fakeNEOSource) Lookup(context.Context, string) (*nasa.Asteroid, error) {
	return f.lookup, f.lookupErr
}

func hazardousRecord(id string) *nasa.Asteroid {
	return &nasa.Asteroid{
		ID:            id,
		Name:          "(2010 PK9)",
		DiameterMaxKM: 0.26,
		VelocityKMS:   15.3,
		MissKM:        4.5e6,
		MissLunar:     11.7,
		Hazardous:     true,
	}
}

func TestFetchFeedScoresAndStores(t *testing.T) {
	repo := repository.NewMemoryAsteroidRepository()
	neo := &fakeNEOSource{feed: []*nasa.Asteroid{hazardousRecord("3542519")}}
	uc := NewAsteroidUsecase(repo, neo)

	asteroids, err := uc.FetchFeed(context.Background(), "2026-08-29", "2026-08-30")
	if err != nil {
		t.Fatalf("FetchFeed() error = %v", err)
	}
	if len(asteroids) != 1 {
		t.Fatalf("got %d asteroids, want 1", len(asteroids))
	}

	// hazard 40 + diameter 10 + velocity 10 + miss 15
	a := asteroids[0]
	if a.RiskScore != 75 || a.RiskCategory != "High" {
		t.Errorf("risk = %d/%s, want 75/High", a.RiskScore, a.RiskCategory)
	}

	stored, err := repo.FindByID("3542519")
	if err != nil {
		t.Fatal(err)
	}
	if stored == nil {
		t.Fatal("asteroid was not persisted")
	}
	if stored.RiskScore != 75 {
		t.Errorf("stored RiskScore = %d, want 75", stored.RiskScore)
	}
}

func TestFetchFeedPropagatesSourceError(t *testing.T) {
	uc := NewAsteroidUsecase(repository.NewMemoryAsteroidRepository(), &fakeNEOSource{feedErr: errors.New("upstream down")})
	if _, err := uc.FetchFeed(context.Background(), "2026-08-29", "2026-08-29"); err == nil {
		t.Fatal("expected error when the source fails")
	}
}

func TestGetByIDServesStoredRecord(t *testing.T) {
	repo := repository.NewMemoryAsteroidRepository()
	neo := &fakeNEOSource{lookup: func() *nasa.Asteroid {
		r := hazardousRecord("3542519")
		r.Orbital = &nasa.OrbitalData{Eccentricity: 0.68}
		return r
	}()}
	uc := NewAsteroidUsecase(repo, neo)

	// First call misses the store and hits the lookup endpoint.
	a, err := uc.GetByID(context.Background(), "3542519")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if a.Orbital == nil || a.Orbital.Eccentricity != 0.68 {
		t.Fatalf("orbital data not carried over: %+v", a.Orbital)
	}

	// Second call is served from the store even if the source dies.
	neo.lookup = nil
	neo.lookupErr = errors.New("upstream down")
	a, err = uc.GetByID(context.Background(), "3542519")
	if err != nil {
		t.Fatalf("GetByID() from store error = %v", err)
	}
	if a.Orbital == nil {
		t.Fatal("stored record lost its orbital data")
	}
}

func TestGetByIDStaleOverFail(t *testing.T) {
	repo := repository.NewMemoryAsteroidRepository()
	neo := &fakeNEOSource{lookup: hazardousRecord("3542519")}
	uc := NewAsteroidUsecase(repo, neo)

	// Store a record without orbital data.
	if _, err := uc.GetByID(context.Background(), "3542519"); err != nil {
		t.Fatal(err)
	}

	// The refresh attempt fails; the stale record is still served.
	neo.lookup = nil
	neo.lookupErr = errors.New("upstream down")
	a, err := uc.GetByID(context.Background(), "3542519")
	if err != nil {
		t.Fatalf("GetByID() error = %v, want stale record", err)
	}
	if a.AsteroidID != "3542519" {
		t.Errorf("AsteroidID = %s", a.AsteroidID)
	}
}

func TestGetByIDUnknown(t *testing.T) {
	uc := NewAsteroidUsecase(repository.NewMemoryAsteroidRepository(), &fakeNEOSource{lookupErr: errors.New("404")})
	if _, err := uc.GetByID(context.Background(), "nope"); !errors.Is(err, ErrAsteroidNotFound) {
		t.Fatalf("err = %v, want ErrAsteroidNotFound", err)
	}
}
