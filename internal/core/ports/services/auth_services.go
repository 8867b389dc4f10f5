package services

import (
	"context"

	"fintracker/internal/core/domain"
	"fintracker/internal/dto"
)

// AuthSvcFacade issues access tokens for registered users.
type AuthSvcFacade interface {
	Register(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)
}
