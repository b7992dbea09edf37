package usecase

import (
	"context"

	asteroiddomain "cosmic-watch-backend/internal/asteroid/domain"
	"cosmic-watch-backend/pkg/nasa"
)

// NEOSource is the slice of the NeoWs client the usecase needs.
// *nasa.Client satisfies it; tests substitute a fake.
type NEOSource interface {
	FetchFeed(ctx context.Context, startDate, endDate string) ([]*nasa.Asteroid, error)
	Lookup(ctx context.Context, id string) (*nasa.Asteroid, error)
}

// AsteroidUsecase ingests, scores and serves near-Earth objects.
type AsteroidUsecase interface {
	// FetchFeed pulls the NeoWs feed for the date range (YYYY-MM-DD,
	// inclusive), scores every object and upserts it into the store.
	FetchFeed(ctx context.Context, startDate, endDate string) ([]*asteroiddomain.Asteroid, error)

	// GetByID serves from the store when the record carries orbital data,
	// otherwise refreshes it from the NeoWs lookup endpoint.
	GetByID(ctx context.Context, id string) (*asteroiddomain.Asteroid, error)

	// ListStored returns every tracked object, highest risk first.
	ListStored() ([]*asteroiddomain.Asteroid, error)

	// Refresh re-ingests today's feed.
	Refresh(ctx context.Context) (int, error)
}
