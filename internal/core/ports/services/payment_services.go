package services

import (
	"context"

	"github.com/NiyonkuruJD/home_ledger_app/internal/core/domain"
	"github.com/NiyonkuruJD/home_ledger_app/internal/dto"
)

// PaymentSvcFacade exposes settlement operations, scoped to the requesting user.
type PaymentSvcFacade interface {
	// RecordPayment validates, allocates and applies a payment against a
	// movement as one atomic unit (movement, debt details, account balance).
	RecordPayment(ctx context.Context, movementID string, req dto.RecordPaymentRequest, userID string) (*domain.Payment, error)

	// CancelPayment reverses a confirmed payment exactly once.
	CancelPayment(ctx context.Context, paymentID string, userID string) (*domain.Payment, error)

	// GetPaymentByID retrieves one of the user's payments.
	GetPaymentByID(ctx context.Context, paymentID string, userID string) (*domain.Payment, error)

	// ListPaymentsByMovement retrieves all payments against a movement.
	ListPaymentsByMovement(ctx context.Context, movementID string, userID string) ([]domain.Payment, error)
}
