package usecase

import (
	authdomain "cosmic-watch-backend/internal/auth/domain"
)

// WatchlistUsecase manages the tracked-asteroid list stored on the user
// record.
type WatchlistUsecase interface {
	// Add appends an entry; ErrAlreadyWatched when the asteroid is
	// already on the list.
	Add(userID string, entry authdomain.WatchlistEntry) ([]authdomain.WatchlistEntry, error)

	Get(userID string) ([]authdomain.WatchlistEntry, error)

	// Remove drops the asteroid if present and returns the updated list.
	// Removing an absent id is not an error.
	Remove(userID, asteroidID string) ([]authdomain.WatchlistEntry, error)
}
