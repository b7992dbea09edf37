package repository

import (
	"sync"
	"time"

	authdomain "cosmic-watch-backend/internal/auth/domain"

	"github.com/google/uuid"
)

// memoryUserRepository is the volatile fallback used when no database is
// configured. It keeps the exact field semantics of the GORM backend so
// call sites cannot tell the two apart.
type memoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]*authdomain.User
}

func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{users: make(map[string]*authdomain.User)}
}

func (r *memoryUserRepository) Create(user *authdomain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.ID = uuid.New().String()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	if user.Role == "" {
		user.Role = "user"
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *memoryUserRepository) FindByEmail(email string) (*authdomain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memoryUserRepository) FindByUsernameOrEmail(username, email string) (*authdomain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Username == username || u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memoryUserRepository) FindByID(id string) (*authdomain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *memoryUserRepository) Update(user *authdomain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.UpdatedAt = time.Now()
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *memoryUserRepository) FindWithWatchlist() ([]*authdomain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var users []*authdomain.User
	for _, u := range r.users {
		if len(u.Watchlist) > 0 {
			cp := *u
			users = append(users, &cp)
		}
	}
	return users, nil
}

func (r *memoryUserRepository) FindAllWithEmail() ([]*authdomain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var users []*authdomain.User
	for _, u := range r.users {
		if u.Email != "" {
			cp := *u
			users = append(users, &cp)
		}
	}
	return users, nil
}

// memoryFCMTokenRepository is the volatile token registry.
type memoryFCMTokenRepository struct {
	mu     sync.RWMutex
	tokens map[string]authdomain.FCMToken // keyed by device token
}

func NewMemoryFCMTokenRepository() FCMTokenRepository {
	return &memoryFCMTokenRepository{tokens: make(map[string]authdomain.FCMToken)}
}

func (r *memoryFCMTokenRepository) SaveToken(userID, token, deviceInfo string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.tokens[token]
	if ok {
		existing.UserID = userID
		existing.DeviceInfo = deviceInfo
		existing.UpdatedAt = time.Now()
		r.tokens[token] = existing
		return nil
	}
	r.tokens[token] = authdomain.FCMToken{
		ID:         uuid.New().String(),
		UserID:     userID,
		Token:      token,
		DeviceInfo: deviceInfo,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	return nil
}

func (r *memoryFCMTokenRepository) GetTokensByUserID(userID string) ([]authdomain.FCMToken, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var tokens []authdomain.FCMToken
	for _, t := range r.tokens {
		if t.UserID == userID {
			tokens = append(tokens, t)
		}
	}
	return tokens, nil
}

func (r *memoryFCMTokenRepository) DeleteToken(token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tokens, token)
	return nil
}
