package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/NiyonkuruJD/home_ledger_app/internal/apperrors"
	"github.com/NiyonkuruJD/home_ledger_app/internal/core/domain"
	portsrepo "github.com/NiyonkuruJD/home_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/NiyonkuruJD/home_ledger_app/internal/core/ports/services"
	"github.com/NiyonkuruJD/home_ledger_app/internal/dto"
	"github.com/NiyonkuruJD/home_ledger_app/internal/utils/accounting"
)

// movementService implements the MovementSvcFacade interface
type movementService struct {
	BaseService
	movementRepo portsrepo.MovementRepositoryFacade
	paymentRepo  portsrepo.PaymentReader
	accountSvc   portssvc.AccountReaderSvc
	categorySvc  portssvc.CategorySvcFacade
	clock        portssvc.Clock
}

// NewMovementService creates a new movement service
func NewMovementService(
	repo portsrepo.MovementRepositoryFacade,
	paymentRepo portsrepo.PaymentReader,
	accountSvc portssvc.AccountReaderSvc,
	categorySvc portssvc.CategorySvcFacade,
	clock portssvc.Clock,
) portssvc.MovementSvcFacade {
	return &movementService{
		movementRepo: repo,
		paymentRepo:  paymentRepo,
		accountSvc:   accountSvc,
		categorySvc:  categorySvc,
		clock:        clock,
	}
}

var _ portssvc.MovementSvcFacade = (*movementService)(nil)

func (s *movementService) CreateMovement(ctx context.Context, req dto.CreateMovementRequest, userID string) (*domain.Movement, error) {
	variant, err := domain.ParseMovementVariant(req.Variant)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	if variant.IsDebt() {
		return nil, fmt.Errorf("%w: debt movements are created via the debt endpoint", apperrors.ErrValidation)
	}

	total, err := domain.ParseAmount(req.TotalAmount)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	movement := domain.Movement{
		MovementID:  uuid.NewString(),
		OwnerUserID: userID,
		Variant:     variant,
		TotalAmount: total,
		Date:        req.Date,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		AccountID:   req.AccountID,
		ProjectID:   req.ProjectID,
		ContactID:   req.ContactID,
	}

	return s.saveNewMovement(ctx, &movement, userID)
}

func (s *movementService) CreateDebt(ctx context.Context, req dto.CreateDebtRequest, userID string) (*domain.Movement, error) {
	variant, err := domain.ParseMovementVariant(req.Direction)
	if err != nil || !variant.IsDebt() {
		return nil, fmt.Errorf("%w: invalid debt direction %q", apperrors.ErrValidation, req.Direction)
	}

	total, err := domain.ParseAmount(req.TotalAmount)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	rate := decimal.Zero
	if req.InterestRate != "" {
		rate, err = domain.ParseAmount(req.InterestRate)
		if err != nil {
			return nil, fmt.Errorf("%w: interest rate: %s", apperrors.ErrValidation, err.Error())
		}
		if rate.IsNegative() {
			return nil, fmt.Errorf("%w: interest rate cannot be negative", apperrors.ErrValidation)
		}
	}

	movement := domain.Movement{
		MovementID:  uuid.NewString(),
		OwnerUserID: userID,
		Variant:     variant,
		TotalAmount: total,
		Date:        req.Date,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		AccountID:   req.AccountID,
		ContactID:   req.ContactID,
		Debt: &domain.DebtDetails{
			DueDate:            req.DueDate,
			InterestRate:       rate,
			PrincipalRemaining: total, // principal starts at the full amount
		},
	}

	return s.saveNewMovement(ctx, &movement, userID)
}

// saveNewMovement runs the shared tail of movement creation: account and
// category checks, settled-on-create handling and the persisted write with its
// balance delta.
func (s *movementService) saveNewMovement(ctx context.Context, movement *domain.Movement, userID string) (*domain.Movement, error) {
	if _, err := s.accountSvc.GetAccountByID(ctx, movement.AccountID, userID); err != nil {
		return nil, fmt.Errorf("invalid account: %w", err)
	}

	category, err := s.categorySvc.GetCategoryByID(ctx, movement.CategoryID, userID)
	if err != nil {
		return nil, fmt.Errorf("invalid category: %w", err)
	}
	if err := movement.CheckCategory(*category); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	balanceDelta := decimal.Zero
	if movement.Variant.SettledOnCreate() {
		movement.EffectiveAmount = movement.TotalAmount
		balanceDelta, err = accounting.SignedEffect(movement.Variant, movement.TotalAmount)
		if err != nil {
			return nil, err
		}
	} else {
		movement.EffectiveAmount = decimal.Zero
	}
	movement.RecomputeStatus()

	now := s.clock.Now()
	movement.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}

	if err := movement.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	if err := s.movementRepo.SaveMovement(ctx, *movement, balanceDelta); err != nil {
		s.LogError(ctx, err, "Failed to save movement", slog.String("movement_id", movement.MovementID))
		return nil, err
	}

	s.LogInfo(ctx, "Movement created",
		slog.String("movement_id", movement.MovementID),
		slog.String("variant", string(movement.Variant)),
		slog.String("status", string(movement.Status)))
	return movement, nil
}

func (s *movementService) GetMovementByID(ctx context.Context, movementID string, userID string) (*domain.Movement, error) {
	movement, err := s.movementRepo.FindMovementByID(ctx, movementID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find movement by ID", slog.String("movement_id", movementID))
		}
		return nil, err
	}

	// Return NotFound to obscure existence from other users
	if movement.OwnerUserID != userID {
		s.LogDebug(ctx, "Movement belongs to a different user", slog.String("movement_id", movementID))
		return nil, apperrors.ErrNotFound
	}
	return movement, nil
}

func (s *movementService) ListMovementsByAccount(ctx context.Context, accountID string, userID string, params dto.ListMovementsParams) (*dto.ListMovementsResponse, error) {
	if _, err := s.accountSvc.GetAccountByID(ctx, accountID, userID); err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	var token *string
	if params.NextToken != "" {
		token = &params.NextToken
	}

	movements, next, err := s.movementRepo.ListMovementsByAccount(ctx, accountID, limit, token)
	if err != nil {
		s.LogError(ctx, err, "Failed to list movements", slog.String("account_id", accountID))
		return nil, err
	}

	res := &dto.ListMovementsResponse{
		Movements: dto.ToListMovementResponse(movements, s.clock.Now()),
	}
	if next != nil {
		res.NextToken = *next
	}
	return res, nil
}

func (s *movementService) UpdateMovement(ctx context.Context, movementID string, req dto.UpdateMovementRequest, userID string) (*domain.Movement, error) {
	movement, err := s.GetMovementByID(ctx, movementID, userID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.TotalAmount != nil {
		// Amount edits are only safe while nothing has settled against the
		// movement; afterwards they would desynchronize balances and payments.
		if !movement.EffectiveAmount.IsZero() {
			return nil, fmt.Errorf("cannot change amount of a movement with settlements: %w", apperrors.ErrStateConflict)
		}
		total, err := domain.ParseAmount(*req.TotalAmount)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		movement.TotalAmount = total
		if movement.Debt != nil {
			movement.Debt.PrincipalRemaining = total
		}
		movement.RecomputeStatus()
		updated = true
	}
	if req.Date != nil {
		movement.Date = *req.Date
		updated = true
	}
	if req.Description != nil {
		movement.Description = *req.Description
		updated = true
	}
	if req.CategoryID != nil && *req.CategoryID != movement.CategoryID {
		category, err := s.categorySvc.GetCategoryByID(ctx, *req.CategoryID, userID)
		if err != nil {
			return nil, fmt.Errorf("invalid category: %w", err)
		}
		movement.CategoryID = *req.CategoryID
		if err := movement.CheckCategory(*category); err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		updated = true
	}
	if req.DueDate != nil {
		if movement.Debt == nil {
			return nil, fmt.Errorf("%w: only debt movements carry a due date", apperrors.ErrValidation)
		}
		movement.Debt.DueDate = req.DueDate
		updated = true
	}
	if !updated {
		return movement, nil
	}

	movement.LastUpdatedAt = s.clock.Now()
	movement.LastUpdatedBy = userID

	if err := movement.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	if err := s.movementRepo.UpdateMovement(ctx, *movement); err != nil {
		s.LogError(ctx, err, "Failed to update movement", slog.String("movement_id", movementID))
		return nil, err
	}

	s.LogInfo(ctx, "Movement updated", slog.String("movement_id", movementID))
	return movement, nil
}

func (s *movementService) DeleteMovement(ctx context.Context, movementID string, userID string, cascadePayments bool) error {
	movement, err := s.GetMovementByID(ctx, movementID, userID)
	if err != nil {
		return err
	}

	count, err := s.paymentRepo.CountPaymentsByMovementID(ctx, movementID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count payments for movement", slog.String("movement_id", movementID))
		return err
	}
	if count > 0 && !cascadePayments {
		return fmt.Errorf("movement has %d payments: %w", count, apperrors.ErrStateConflict)
	}

	// Deleting a movement reverses whatever it contributed to the balance.
	effect, err := accounting.SignedEffect(movement.Variant, movement.EffectiveAmount)
	if err != nil {
		return err
	}
	balanceDelta := effect.Neg()

	if err := s.movementRepo.DeleteMovement(ctx, *movement, balanceDelta, cascadePayments); err != nil {
		s.LogError(ctx, err, "Failed to delete movement", slog.String("movement_id", movementID))
		return err
	}

	s.LogInfo(ctx, "Movement deleted",
		slog.String("movement_id", movementID),
		slog.Bool("cascade_payments", cascadePayments))
	return nil
}
