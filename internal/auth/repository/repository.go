package repository

import authdomain "cosmic-watch-backend/internal/auth/domain"

// UserRepository defines the storage contract for users. Both the GORM
// and the in-memory backend implement it; lookups return (nil, nil) when
// no record matches.
type UserRepository interface {
	Create(user *authdomain.User) error
	FindByEmail(email string) (*authdomain.User, error)
	FindByUsernameOrEmail(username, email string) (*authdomain.User, error)
	FindByID(id string) (*authdomain.User, error)
	Update(user *authdomain.User) error

	// FindWithWatchlist returns every user with at least one watchlist entry.
	FindWithWatchlist() ([]*authdomain.User, error)

	// FindAllWithEmail returns every user with a registered email address.
	FindAllWithEmail() ([]*authdomain.User, error)
}

// FCMTokenRepository defines the storage contract for push device tokens.
type FCMTokenRepository interface {
	SaveToken(userID, token, deviceInfo string) error
	GetTokensByUserID(userID string) ([]authdomain.FCMToken, error)
	DeleteToken(token string) error
}
