package services

import (
	"context"

	"github.com/NiyonkuruJD/home_ledger_app/internal/core/domain"
	"github.com/NiyonkuruJD/home_ledger_app/internal/dto"
)

// MovementSvcFacade exposes movement and debt creation plus lifecycle
// operations, scoped to the requesting user.
type MovementSvcFacade interface {
	// CreateMovement validates category compatibility and persists a new
	// movement. Settled-on-create variants (Income, Gift) immediately affect
	// the account balance.
	CreateMovement(ctx context.Context, req dto.CreateMovementRequest, userID string) (*domain.Movement, error)

	// CreateDebt persists a new debt movement in the requested direction with
	// principal equal to the total amount.
	CreateDebt(ctx context.Context, req dto.CreateDebtRequest, userID string) (*domain.Movement, error)

	// GetMovementByID retrieves one of the user's movements.
	GetMovementByID(ctx context.Context, movementID string, userID string) (*domain.Movement, error)

	// ListMovementsByAccount retrieves a paginated slice of an account's movements.
	ListMovementsByAccount(ctx context.Context, accountID string, userID string, params dto.ListMovementsParams) (*dto.ListMovementsResponse, error)

	// UpdateMovement updates mutable fields. Amount changes never
	// retroactively alter recorded payments.
	UpdateMovement(ctx context.Context, movementID string, req dto.UpdateMovementRequest, userID string) (*domain.Movement, error)

	// DeleteMovement removes a movement. Fails while payments reference it
	// unless cascade is requested; reverses any settled balance effect.
	DeleteMovement(ctx context.Context, movementID string, userID string, cascadePayments bool) error
}
