package usecase

import (
	authdomain "cosmic-watch-backend/internal/auth/domain"
	authdto "cosmic-watch-backend/internal/auth/dto"
)

// AuthUsecase covers registration, login and token validation.
type AuthUsecase interface {
	Register(req *authdto.RegisterRequest) (*authdto.TokenResponse, error)
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)
	ValidateToken(token string) (*authdomain.User, error)
}
