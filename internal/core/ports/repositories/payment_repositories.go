package repositories

import (
	"context"

	"github.com/NiyonkuruJD/home_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PaymentReader defines read operations for payment data
type PaymentReader interface {
	// FindPaymentByID retrieves a payment by its unique identifier.
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)

	// ListPaymentsByMovementID retrieves all payments recorded against a movement.
	ListPaymentsByMovementID(ctx context.Context, movementID string) ([]domain.Payment, error)

	// CountPaymentsByMovementID counts payments referencing a movement.
	CountPaymentsByMovementID(ctx context.Context, movementID string) (int64, error)
}

// PaymentWriter defines write operations for payment data. Both writes are
// all-or-nothing: the payment row, the movement/debt columns and the account
// balance move inside one database transaction.
type PaymentWriter interface {
	// SavePayment persists a confirmed payment together with the already
	// settled movement state and the signed account balance delta.
	SavePayment(ctx context.Context, payment domain.Payment, movement domain.Movement, balanceDelta decimal.Decimal) error

	// CancelPayment persists a cancellation: the payment's terminal status,
	// the reversed movement state and the inverse balance delta.
	CancelPayment(ctx context.Context, payment domain.Payment, movement domain.Movement, balanceDelta decimal.Decimal) error
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}

// PaymentRepositoryWithTx extends PaymentRepositoryFacade with transaction capabilities
type PaymentRepositoryWithTx interface {
	PaymentRepositoryFacade
	TransactionManager
}
