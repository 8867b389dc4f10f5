package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fintracker/internal/apperrors"
	"fintracker/internal/core/domain"
	portssvc "fintracker/internal/core/ports/services"
	"fintracker/internal/dto"
	"fintracker/internal/middleware"
	"fintracker/internal/utils"
)

// ErrInvalidCredentials is returned for a bad username/password pair. It is
// deliberately identical for both cases.
var ErrInvalidCredentials = errors.New("invalid username or password")

// authService registers users and issues signed access tokens.
type authService struct {
	userSvc   portssvc.UserSvcFacade
	jwtSecret string
	jwtExpiry time.Duration
	jwtIssuer string
}

// NewAuthService creates a new auth service.
func NewAuthService(userSvc portssvc.UserSvcFacade, jwtSecret string, jwtExpiry time.Duration, jwtIssuer string) portssvc.AuthSvcFacade {
	return &authService{
		userSvc:   userSvc,
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
		jwtIssuer: jwtIssuer,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Register creates a new user account.
func (s *authService) Register(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	return s.userSvc.CreateUser(ctx, req)
}

// Login verifies the credentials and issues a signed token.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userSvc.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrInvalidCredentials)
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		logger.Warn("login failed", slog.String("username", req.Username))
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrInvalidCredentials)
	}

	token, expiresAt, err := utils.GenerateJWT(user.UserID, s.jwtSecret, s.jwtExpiry, s.jwtIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	logger.Info("user logged in", slog.String("user_id", user.UserID))
	return &dto.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		UserID:    user.UserID,
		Username:  user.Username,
	}, nil
}
