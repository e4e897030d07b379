package repositories

import (
	"context"

	"github.com/NiyonkuruJD/home_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MovementReader defines read operations for movement data
type MovementReader interface {
	// FindMovementByID retrieves a movement (with debt details when present).
	FindMovementByID(ctx context.Context, movementID string) (*domain.Movement, error)

	// FindMovementsByAccountID retrieves the full movement history of an
	// account, ordered by date. Used by balance verification.
	FindMovementsByAccountID(ctx context.Context, accountID string) ([]domain.Movement, error)

	// ListMovementsByAccount retrieves a paginated slice of an account's
	// movements using token-based pagination.
	ListMovementsByAccount(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.Movement, *string, error)

	// CountMovementsByAccountID counts movements referencing an account.
	CountMovementsByAccountID(ctx context.Context, accountID string) (int64, error)

	// CountMovementsByCategoryID counts movements referencing a category.
	CountMovementsByCategoryID(ctx context.Context, categoryID string) (int64, error)

	// CountMovementsByCategoryAndVariants counts movements of the given
	// variants referencing a category. Used to guard category kind changes.
	CountMovementsByCategoryAndVariants(ctx context.Context, categoryID string, variants []domain.MovementVariant) (int64, error)

	// ListDebtsByOwner retrieves all debt movements of one direction for a user.
	ListDebtsByOwner(ctx context.Context, ownerUserID string, variant domain.MovementVariant) ([]domain.Movement, error)

	// SumRemainingByVariant totals (total - effective) over a user's
	// movements of the given variant. Feeds the debt balance report.
	SumRemainingByVariant(ctx context.Context, ownerUserID string, variant domain.MovementVariant) (decimal.Decimal, error)
}

// MovementWriter defines write operations for movement data. Writes that
// carry a non-zero balance delta update the owning account inside the same
// database transaction.
type MovementWriter interface {
	// SaveMovement persists a movement and applies its signed balance delta
	// (non-zero for settled-on-create variants) atomically.
	SaveMovement(ctx context.Context, movement domain.Movement, balanceDelta decimal.Decimal) error

	// UpdateMovement updates a movement's mutable fields and debt details.
	UpdateMovement(ctx context.Context, movement domain.Movement) error

	// DeleteMovement removes a movement, reverses its balance effect, and
	// cascades its payments when requested, all in one transaction.
	DeleteMovement(ctx context.Context, movement domain.Movement, balanceDelta decimal.Decimal, cascadePayments bool) error
}

// MovementRepositoryFacade combines all movement-related repository interfaces
type MovementRepositoryFacade interface {
	MovementReader
	MovementWriter
}

// MovementRepositoryWithTx extends MovementRepositoryFacade with transaction capabilities
type MovementRepositoryWithTx interface {
	MovementRepositoryFacade
	TransactionManager
}
