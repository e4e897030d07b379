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
)

// transferService implements the TransferSvcFacade interface
type transferService struct {
	BaseService
	transferRepo portsrepo.TransferRepositoryFacade
	accountRepo  portsrepo.AccountReader
	clock        portssvc.Clock
}

// NewTransferService creates a new transfer service
func NewTransferService(
	repo portsrepo.TransferRepositoryFacade,
	accountRepo portsrepo.AccountReader,
	clock portssvc.Clock,
) portssvc.TransferSvcFacade {
	return &transferService{
		transferRepo: repo,
		accountRepo:  accountRepo,
		clock:        clock,
	}
}

var _ portssvc.TransferSvcFacade = (*transferService)(nil)

func (s *transferService) ExecuteTransfer(ctx context.Context, req dto.CreateTransferRequest, userID string) (*domain.Transfer, error) {
	amount, err := domain.ParseAmount(req.Amount)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	source, err := s.getOwnedAccount(ctx, req.SourceAccountID, userID)
	if err != nil {
		return nil, fmt.Errorf("invalid source account: %w", err)
	}
	dest, err := s.getOwnedAccount(ctx, req.DestinationAccountID, userID)
	if err != nil {
		return nil, fmt.Errorf("invalid destination account: %w", err)
	}

	now := s.clock.Now()
	date := now
	if req.Date != nil {
		date = *req.Date
	}

	transfer := domain.Transfer{
		TransferID:           uuid.NewString(),
		OwnerUserID:          userID,
		SourceAccountID:      req.SourceAccountID,
		DestinationAccountID: req.DestinationAccountID,
		Amount:               amount,
		CurrencyCode:         source.CurrencyCode,
		Date:                 date,
		Note:                 req.Note,
		Status:               domain.TransferPending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := transfer.Execute(source, dest, now); err != nil {
		if errors.Is(err, domain.ErrInvalidTransfer) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		return nil, err
	}

	if err := s.transferRepo.SaveTransfer(ctx, transfer, *source, *dest); err != nil {
		s.LogError(ctx, err, "Failed to save transfer", slog.String("transfer_id", transfer.TransferID))
		return nil, err
	}

	s.LogInfo(ctx, "Transfer executed",
		slog.String("transfer_id", transfer.TransferID),
		slog.String("source_account_id", transfer.SourceAccountID),
		slog.String("destination_account_id", transfer.DestinationAccountID))
	return &transfer, nil
}

func (s *transferService) CancelTransfer(ctx context.Context, transferID string, userID string) (*domain.Transfer, error) {
	transfer, err := s.GetTransferByID(ctx, transferID, userID)
	if err != nil {
		return nil, err
	}

	source, err := s.getOwnedAccount(ctx, transfer.SourceAccountID, userID)
	if err != nil {
		return nil, err
	}
	dest, err := s.getOwnedAccount(ctx, transfer.DestinationAccountID, userID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	if err := transfer.Cancel(source, dest, now); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrStateConflict, err.Error())
	}
	transfer.LastUpdatedAt = now
	transfer.LastUpdatedBy = userID

	if err := s.transferRepo.ReverseTransfer(ctx, *transfer, *source, *dest); err != nil {
		s.LogError(ctx, err, "Failed to reverse transfer", slog.String("transfer_id", transferID))
		return nil, err
	}

	s.LogInfo(ctx, "Transfer reversed", slog.String("transfer_id", transferID))
	return transfer, nil
}

func (s *transferService) GetTransferByID(ctx context.Context, transferID string, userID string) (*domain.Transfer, error) {
	transfer, err := s.transferRepo.FindTransferByID(ctx, transferID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transfer by ID", slog.String("transfer_id", transferID))
		}
		return nil, err
	}

	// Return NotFound to obscure existence from other users
	if transfer.OwnerUserID != userID {
		s.LogDebug(ctx, "Transfer belongs to a different user", slog.String("transfer_id", transferID))
		return nil, apperrors.ErrNotFound
	}
	return transfer, nil
}

func (s *transferService) ListTransfers(ctx context.Context, userID string, params dto.ListTransfersParams) (*dto.ListTransfersResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	var token *string
	if params.NextToken != "" {
		token = &params.NextToken
	}

	transfers, next, err := s.transferRepo.ListTransfersByOwner(ctx, userID, limit, token)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transfers", slog.String("user_id", userID))
		return nil, err
	}

	res := &dto.ListTransfersResponse{
		Transfers: dto.ToListTransferResponse(transfers),
	}
	if next != nil {
		res.NextToken = *next
	}
	return res, nil
}

func (s *transferService) getOwnedAccount(ctx context.Context, accountID string, userID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.OwnerUserID != userID {
		return nil, apperrors.ErrNotFound
	}
	return account, nil
}
