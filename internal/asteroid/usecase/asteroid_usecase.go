package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	asteroiddomain "cosmic-watch-backend/internal/asteroid/domain"
	"cosmic-watch-backend/internal/asteroid/repository"
	"cosmic-watch-backend/pkg/nasa"
	"cosmic-watch-backend/pkg/risk"
)

var ErrAsteroidNotFound = errors.New("asteroid not found")

// asteroidUsecase implements AsteroidUsecase.
type asteroidUsecase struct {
	repo repository.AsteroidRepository
	neo  NEOSource
}

func NewAsteroidUsecase(repo repository.AsteroidRepository, neo NEOSource) AsteroidUsecase {
	return &asteroidUsecase{repo: repo, neo: neo}
}

func (u *asteroidUsecase) FetchFeed(ctx context.Context, startDate, endDate string) ([]*asteroiddomain.Asteroid, error) {
	records, err := u.neo.FetchFeed(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	asteroids := make([]*asteroiddomain.Asteroid, 0, len(records))
	for _, rec := range records {
		a := scoreAndConvert(rec)
		if err := u.repo.Upsert(a); err != nil {
			log.Printf("[Asteroids] upsert failed for %s: %v", a.AsteroidID, err)
			continue
		}
		asteroids = append(asteroids, a)
	}
	return asteroids, nil
}

func (u *asteroidUsecase) GetByID(ctx context.Context, id string) (*asteroiddomain.Asteroid, error) {
	asteroid, err := u.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if asteroid != nil && asteroid.Orbital != nil {
		return asteroid, nil
	}

	// Not stored yet, or stored without orbital data: the lookup endpoint
	// has the full element set.
	rec, err := u.neo.Lookup(ctx, id)
	if err != nil {
		if asteroid != nil {
			return asteroid, nil // serve the stale record over failing
		}
		return nil, ErrAsteroidNotFound
	}

	asteroid = scoreAndConvert(rec)
	if err := u.repo.Upsert(asteroid); err != nil {
		return nil, err
	}
	return asteroid, nil
}

func (u *asteroidUsecase) ListStored() ([]*asteroiddomain.Asteroid, error) {
	return u.repo.FindAll()
}

func (u *asteroidUsecase) Refresh(ctx context.Context) (int, error) {
	today := time.Now().Format("2006-01-02")
	asteroids, err := u.FetchFeed(ctx, today, today)
	if err != nil {
		return 0, err
	}
	return len(asteroids), nil
}

func scoreAndConvert(rec *nasa.Asteroid) *asteroiddomain.Asteroid {
	result := risk.Score(risk.Input{
		DiameterMaxKM:  rec.DiameterMaxKM,
		VelocityKMS:    rec.VelocityKMS,
		MissDistanceKM: rec.MissKM,
		Hazardous:      rec.Hazardous,
	})

	a := &asteroiddomain.Asteroid{
		AsteroidID: rec.ID,
		Name:       rec.Name,
		Diameter: asteroiddomain.Diameter{
			Min: rec.DiameterMinKM,
			Max: rec.DiameterMaxKM,
		},
		Velocity: asteroiddomain.Velocity{
			KMPerSecond: rec.VelocityKMS,
			KMPerHour:   rec.VelocityKMH,
		},
		MissDistance: asteroiddomain.MissDistance{
			Kilometers: rec.MissKM,
			Lunar:      rec.MissLunar,
		},
		CloseApproachDate:      rec.CloseApproachDate,
		IsPotentiallyHazardous: rec.Hazardous,
		RiskScore:              result.Score,
		RiskCategory:           string(result.Category),
	}

	if rec.Orbital != nil {
		a.Orbital = &asteroiddomain.OrbitalData{
			Eccentricity:           rec.Orbital.Eccentricity,
			SemiMajorAxis:          rec.Orbital.SemiMajorAxis,
			Inclination:            rec.Orbital.Inclination,
			AscendingNodeLongitude: rec.Orbital.AscendingNodeLongitude,
			PerihelionArgument:     rec.Orbital.PerihelionArgument,
			MeanAnomaly:            rec.Orbital.MeanAnomaly,
			OrbitalPeriod:          rec.Orbital.OrbitalPeriod,
			EpochOsculation:        rec.Orbital.EpochOsculation,
		}
	}
	return a
}
