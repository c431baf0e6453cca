package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/deckpilot-team/deckpilot/internal/domain/entities"
	"github.com/deckpilot-team/deckpilot/internal/domain/repositories"
	usecaseErrors "github.com/deckpilot-team/deckpilot/internal/usecase/errors"
	"github.com/deckpilot-team/deckpilot/pkg/jwt"
)

// TokenService resolves bearer tokens to active users. Token issuance happens
// in the external auth layer; this service only validates and loads.
type TokenService struct {
	jwtManager *jwt.Manager
	userRepo   repositories.UserRepository
}

// NewTokenService creates a new token service
func NewTokenService(jwtManager *jwt.Manager, userRepo repositories.UserRepository) *TokenService {
	return &TokenService{
		jwtManager: jwtManager,
		userRepo:   userRepo,
	}
}

// Authenticate validates an access token and returns the active user it names
func (s *TokenService) Authenticate(ctx context.Context, tokenString string) (*entities.User, error) {
	claims, err := s.jwtManager.ValidateAccessToken(tokenString)
	if err != nil {
		return nil, usecaseErrors.ErrTokenInvalid
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, usecaseErrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if !user.IsActive {
		return nil, usecaseErrors.ErrUserNotActive
	}

	return user, nil
}

// RefreshAccess exchanges a valid refresh token for a new access token
func (s *TokenService) RefreshAccess(ctx context.Context, refreshToken string) (string, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return "", usecaseErrors.ErrTokenInvalid
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return "", usecaseErrors.ErrUserNotFound
	}
	if !user.IsActive {
		return "", usecaseErrors.ErrUserNotActive
	}

	return s.jwtManager.GenerateAccessToken(user.ID, user.Email, string(user.Role))
}
