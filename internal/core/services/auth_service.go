package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/NiyonkuruJD/home_ledger_app/internal/apperrors"
	"github.com/NiyonkuruJD/home_ledger_app/internal/core/domain"
	portsrepo "github.com/NiyonkuruJD/home_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/NiyonkuruJD/home_ledger_app/internal/core/ports/services"
	"github.com/NiyonkuruJD/home_ledger_app/internal/dto"
	"github.com/NiyonkuruJD/home_ledger_app/internal/platform/config"
	"github.com/NiyonkuruJD/home_ledger_app/internal/utils"
)

// authService implements the AuthSvcFacade interface
type authService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	cfg      *config.Config
	clock    portssvc.Clock
}

// NewAuthService creates a new auth service
func NewAuthService(repo portsrepo.UserRepositoryFacade, cfg *config.Config, clock portssvc.Clock) portssvc.AuthSvcFacade {
	return &authService{userRepo: repo, cfg: cfg, clock: clock}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) Register(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	existing, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check for existing user", slog.String("email", req.Email))
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("email already registered: %w", apperrors.ErrDuplicate)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, apperrors.ErrInternal
	}

	now := s.clock.Now()
	newUserID := uuid.NewString()
	user := domain.User{
		UserID:       newUserID,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     newUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: newUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user", slog.String("user_id", user.UserID))
		return nil, err
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID))
	return &user, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (string, *domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Same response as a wrong password; never reveal which one failed
			return "", nil, apperrors.ErrForbidden
		}
		s.LogError(ctx, err, "Failed to find user by email")
		return "", nil, err
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.LogDebug(ctx, "Password mismatch", slog.String("user_id", user.UserID))
		return "", nil, apperrors.ErrForbidden
	}

	token, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign token", slog.String("user_id", user.UserID))
		return "", nil, apperrors.ErrInternal
	}

	return token, user, nil
}
