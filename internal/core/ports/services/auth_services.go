package services

import (
	"context"

	"github.com/NiyonkuruJD/home_ledger_app/internal/core/domain"
	"github.com/NiyonkuruJD/home_ledger_app/internal/dto"
)

// AuthSvcFacade exposes registration and credential verification. Token
// formats and transport concerns stay in the handler/middleware layer.
type AuthSvcFacade interface {
	// Register creates a new user with a hashed password.
	Register(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)

	// Login verifies credentials and returns a signed access token.
	Login(ctx context.Context, req dto.LoginRequest) (string, *domain.User, error)
}
