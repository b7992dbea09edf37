package usecase

import (
	"errors"

	authdomain "cosmic-watch-backend/internal/auth/domain"
	authrepository "cosmic-watch-backend/internal/auth/repository"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrAlreadyWatched = errors.New("asteroid already in watchlist")
)

type watchlistUsecase struct {
	userRepo authrepository.UserRepository
}

func NewWatchlistUsecase(userRepo authrepository.UserRepository) WatchlistUsecase {
	return &watchlistUsecase{userRepo: userRepo}
}

func (u *watchlistUsecase) Add(userID string, entry authdomain.WatchlistEntry) ([]authdomain.WatchlistEntry, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	for _, e := range user.Watchlist {
		if e.AsteroidID == entry.AsteroidID {
			return nil, ErrAlreadyWatched
		}
	}

	user.Watchlist = append(user.Watchlist, entry)
	if err := u.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user.Watchlist, nil
}

func (u *watchlistUsecase) Get(userID string) ([]authdomain.WatchlistEntry, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.Watchlist == nil {
		return []authdomain.WatchlistEntry{}, nil
	}
	return user.Watchlist, nil
}

func (u *watchlistUsecase) Remove(userID, asteroidID string) ([]authdomain.WatchlistEntry, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	filtered := make([]authdomain.WatchlistEntry, 0, len(user.Watchlist))
	for _, e := range user.Watchlist {
		if e.AsteroidID != asteroidID {
			filtered = append(filtered, e)
		}
	}
	if len(filtered) == len(user.Watchlist) {
		// Nothing removed; removal stays idempotent.
		return filtered, nil
	}

	user.Watchlist = filtered
	if err := u.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user.Watchlist, nil
}
