package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/pradana/tracerstudy/internal/app/models/dto"
	"github.com/pradana/tracerstudy/internal/app/repositories"
	"github.com/pradana/tracerstudy/internal/pkg/apperrors"
	"github.com/pradana/tracerstudy/internal/pkg/auth"
	"github.com/pradana/tracerstudy/internal/pkg/logger"
)

// AuthService defines the interface for administrator authentication
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	userRepo   *repositories.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service instance
func NewAuthService(userRepo *repositories.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Login verifies administrator credentials and issues an access token.
// An unknown email and a wrong password produce the same error so the
// response never reveals which part failed.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		logger.Warn().Str("email", req.Email).Msg("Login attempt with invalid password")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("error generating access token: %w", err)
	}

	return &dto.LoginResponse{
		Message:     "Login successful",
		Data:        dto.LoginUserData{Nama: user.Nama},
		AccessToken: token,
		ExpiresIn:   expiresIn,
	}, nil
}
