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
	"github.com/NiyonkuruJD/home_ledger_app/internal/utils/accounting"
)

// paymentService implements the PaymentSvcFacade interface
type paymentService struct {
	BaseService
	paymentRepo  portsrepo.PaymentRepositoryFacade
	movementRepo portsrepo.MovementReader
	clock        portssvc.Clock
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	repo portsrepo.PaymentRepositoryFacade,
	movementRepo portsrepo.MovementReader,
	clock portssvc.Clock,
) portssvc.PaymentSvcFacade {
	return &paymentService{
		paymentRepo:  repo,
		movementRepo: movementRepo,
		clock:        clock,
	}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// RecordPayment applies the settlement pipeline in a fixed order: allocate,
// validate, settle the movement, update the debt payload, then persist the
// payment, the movement and the account balance as one unit.
func (s *paymentService) RecordPayment(ctx context.Context, movementID string, req dto.RecordPaymentRequest, userID string) (*domain.Payment, error) {
	movement, err := s.getOwnedMovement(ctx, movementID, userID)
	if err != nil {
		return nil, err
	}

	amount, err := domain.ParseAmount(req.Amount)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	paymentType, err := domain.ParsePaymentType(req.Type)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	now := s.clock.Now()
	date := now
	if req.Date != nil {
		date = *req.Date
	}

	payment := domain.Payment{
		PaymentID:   uuid.NewString(),
		OwnerUserID: userID,
		MovementID:  movement.MovementID,
		Amount:      amount,
		Type:        paymentType,
		Status:      domain.PaymentPending,
		Date:        date,
		Comment:     req.Comment,
		Reference:   req.Reference,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	payment.Allocate(movement.Debt)
	if err := payment.Validate(movement); err != nil {
		if errors.Is(err, domain.ErrExceedsBalance) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrStateConflict, err.Error())
		}
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	if err := movement.RegisterSettlement(payment.Amount); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrStateConflict, err.Error())
	}
	if movement.Debt != nil {
		movement.Debt.UpdateAfterPayment(payment)
	}
	movement.LastUpdatedAt = now
	movement.LastUpdatedBy = userID

	if err := payment.Confirm(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrStateConflict, err.Error())
	}

	balanceDelta, err := accounting.SignedEffect(movement.Variant, payment.Amount)
	if err != nil {
		return nil, err
	}

	if err := s.paymentRepo.SavePayment(ctx, payment, *movement, balanceDelta); err != nil {
		s.LogError(ctx, err, "Failed to save payment",
			slog.String("payment_id", payment.PaymentID),
			slog.String("movement_id", movement.MovementID))
		return nil, err
	}

	s.LogInfo(ctx, "Payment recorded",
		slog.String("payment_id", payment.PaymentID),
		slog.String("movement_id", movement.MovementID),
		slog.String("movement_status", string(movement.Status)))
	return &payment, nil
}

// CancelPayment reverses a confirmed payment exactly once: restore the
// movement's effective amount, restore the debt principal and apply the
// inverse balance delta.
func (s *paymentService) CancelPayment(ctx context.Context, paymentID string, userID string) (*domain.Payment, error) {
	payment, err := s.GetPaymentByID(ctx, paymentID, userID)
	if err != nil {
		return nil, err
	}

	if payment.Status == domain.PaymentCancelled {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrStateConflict, domain.ErrPaymentAlreadyCancelled.Error())
	}

	movement, err := s.getOwnedMovement(ctx, payment.MovementID, userID)
	if err != nil {
		return nil, err
	}

	if err := movement.ReverseSettlement(payment.Amount); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrStateConflict, err.Error())
	}
	if movement.Debt != nil {
		movement.Debt.ReverseAfterCancellation(*payment)
	}
	if err := payment.Cancel(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrStateConflict, err.Error())
	}

	now := s.clock.Now()
	payment.LastUpdatedAt = now
	payment.LastUpdatedBy = userID
	movement.LastUpdatedAt = now
	movement.LastUpdatedBy = userID

	effect, err := accounting.SignedEffect(movement.Variant, payment.Amount)
	if err != nil {
		return nil, err
	}
	balanceDelta := effect.Neg()

	if err := s.paymentRepo.CancelPayment(ctx, *payment, *movement, balanceDelta); err != nil {
		s.LogError(ctx, err, "Failed to cancel payment",
			slog.String("payment_id", paymentID),
			slog.String("movement_id", movement.MovementID))
		return nil, err
	}

	s.LogInfo(ctx, "Payment cancelled",
		slog.String("payment_id", paymentID),
		slog.String("movement_id", movement.MovementID),
		slog.String("movement_status", string(movement.Status)))
	return payment, nil
}

func (s *paymentService) GetPaymentByID(ctx context.Context, paymentID string, userID string) (*domain.Payment, error) {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find payment by ID", slog.String("payment_id", paymentID))
		}
		return nil, err
	}

	// Return NotFound to obscure existence from other users
	if payment.OwnerUserID != userID {
		s.LogDebug(ctx, "Payment belongs to a different user", slog.String("payment_id", paymentID))
		return nil, apperrors.ErrNotFound
	}
	return payment, nil
}

func (s *paymentService) ListPaymentsByMovement(ctx context.Context, movementID string, userID string) ([]domain.Payment, error) {
	if _, err := s.getOwnedMovement(ctx, movementID, userID); err != nil {
		return nil, err
	}

	payments, err := s.paymentRepo.ListPaymentsByMovementID(ctx, movementID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments", slog.String("movement_id", movementID))
		return nil, err
	}
	if payments == nil {
		return []domain.Payment{}, nil
	}
	return payments, nil
}

func (s *paymentService) getOwnedMovement(ctx context.Context, movementID string, userID string) (*domain.Movement, error) {
	movement, err := s.movementRepo.FindMovementByID(ctx, movementID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find movement by ID", slog.String("movement_id", movementID))
		}
		return nil, err
	}
	if movement.OwnerUserID != userID {
		return nil, apperrors.ErrNotFound
	}
	return movement, nil
}
