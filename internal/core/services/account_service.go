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

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo  portsrepo.AccountRepositoryFacade
	currencyRepo portsrepo.CurrencyReader
	movementRepo portsrepo.MovementReader
	transferRepo portsrepo.TransferReader
	clock        portssvc.Clock
}

// NewAccountService creates a new account service
func NewAccountService(
	repo portsrepo.AccountRepositoryFacade,
	currencyRepo portsrepo.CurrencyReader,
	movementRepo portsrepo.MovementReader,
	transferRepo portsrepo.TransferReader,
	clock portssvc.Clock,
) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo:  repo,
		currencyRepo: currencyRepo,
		movementRepo: movementRepo,
		transferRepo: transferRepo,
		clock:        clock,
	}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	if _, err := s.currencyRepo.FindCurrencyByCode(ctx, req.CurrencyCode); err != nil {
		s.LogError(ctx, err, "Invalid currency code", slog.String("currency_code", req.CurrencyCode))
		return nil, fmt.Errorf("invalid currency code: %w", err)
	}

	opening := decimal.Zero
	if req.OpeningBalance != "" {
		parsed, err := domain.ParseAmount(req.OpeningBalance)
		if err != nil {
			return nil, fmt.Errorf("%w: opening balance: %s", apperrors.ErrValidation, err.Error())
		}
		opening = parsed
	}

	now := s.clock.Now()
	account := domain.Account{
		AccountID:      uuid.NewString(),
		OwnerUserID:    userID,
		Name:           req.Name,
		Kind:           domain.AccountKind(req.Kind),
		CurrencyCode:   req.CurrencyCode,
		Description:    req.Description,
		Number:         req.Number,
		Institution:    req.Institution,
		OpeningBalance: opening,
		CurrentBalance: opening,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("account_id", account.AccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account created", slog.String("account_id", account.AccountID))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string, userID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID", slog.String("account_id", accountID))
		}
		return nil, err
	}

	// Return NotFound to obscure existence from other users
	if account.OwnerUserID != userID {
		s.LogDebug(ctx, "Account belongs to a different user", slog.String("account_id", accountID))
		return nil, apperrors.ErrNotFound
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccountsByOwner(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.String("user_id", userID))
		return nil, err
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	account, err := s.GetAccountByID(ctx, accountID, userID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Name != nil {
		account.Name = *req.Name
		updated = true
	}
	if req.Description != nil {
		account.Description = *req.Description
		updated = true
	}
	if req.Number != nil {
		account.Number = *req.Number
		updated = true
	}
	if req.Institution != nil {
		account.Institution = *req.Institution
		updated = true
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
		updated = true
	}
	if !updated {
		s.LogDebug(ctx, "No fields provided for account update", slog.String("account_id", accountID))
		return account, nil
	}

	account.LastUpdatedAt = s.clock.Now()
	account.LastUpdatedBy = userID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account updated", slog.String("account_id", accountID))
	return account, nil
}

func (s *accountService) DeactivateAccount(ctx context.Context, accountID string, userID string) error {
	if _, err := s.GetAccountByID(ctx, accountID, userID); err != nil {
		return err
	}

	if err := s.accountRepo.DeactivateAccount(ctx, accountID, userID, s.clock.Now()); err != nil {
		s.LogError(ctx, err, "Failed to deactivate account", slog.String("account_id", accountID))
		return err
	}

	s.LogInfo(ctx, "Account deactivated", slog.String("account_id", accountID))
	return nil
}

func (s *accountService) DeleteAccount(ctx context.Context, accountID string, userID string) error {
	if _, err := s.GetAccountByID(ctx, accountID, userID); err != nil {
		return err
	}

	count, err := s.movementRepo.CountMovementsByAccountID(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count movements for account", slog.String("account_id", accountID))
		return err
	}
	if count > 0 {
		return fmt.Errorf("account has %d movements: %w", count, apperrors.ErrStateConflict)
	}

	if err := s.accountRepo.DeleteAccount(ctx, accountID); err != nil {
		s.LogError(ctx, err, "Failed to delete account", slog.String("account_id", accountID))
		return err
	}

	s.LogInfo(ctx, "Account deleted", slog.String("account_id", accountID))
	return nil
}

func (s *accountService) GetAccountBalance(ctx context.Context, accountID string, userID string) (decimal.Decimal, error) {
	account, err := s.GetAccountByID(ctx, accountID, userID)
	if err != nil {
		return decimal.Zero, err
	}
	// The incrementally maintained balance is the source of truth; reads never
	// trigger a recomputation.
	return account.CurrentBalance, nil
}

func (s *accountService) VerifyAccountBalance(ctx context.Context, accountID string, userID string) (decimal.Decimal, error) {
	account, err := s.GetAccountByID(ctx, accountID, userID)
	if err != nil {
		return decimal.Zero, err
	}

	movements, err := s.movementRepo.FindMovementsByAccountID(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load movements for verification", slog.String("account_id", accountID))
		return decimal.Zero, err
	}

	recomputed, err := accounting.RecomputeBalance(*account, movements)
	if err != nil {
		s.LogError(ctx, err, "Failed to recompute balance", slog.String("account_id", accountID))
		return decimal.Zero, fmt.Errorf("%w: %s", apperrors.ErrInconsistency, err.Error())
	}

	// Executed transfers shift the balance without leaving a movement behind.
	transfers, err := s.transferRepo.ListExecutedTransfersByAccount(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transfers for verification", slog.String("account_id", accountID))
		return decimal.Zero, err
	}
	for _, t := range transfers {
		if t.SourceAccountID == accountID {
			recomputed = recomputed.Sub(t.Amount)
		}
		if t.DestinationAccountID == accountID {
			recomputed = recomputed.Add(t.Amount)
		}
	}

	if !recomputed.Equal(account.CurrentBalance) {
		err := fmt.Errorf("stored balance %s diverges from recomputed %s: %w",
			account.CurrentBalance.String(), recomputed.String(), apperrors.ErrInconsistency)
		s.LogError(ctx, err, "Balance divergence detected",
			slog.String("account_id", accountID),
			slog.String("stored", account.CurrentBalance.String()),
			slog.String("recomputed", recomputed.String()))
		return decimal.Zero, err
	}

	return recomputed, nil
}
