package services

import (
	"context"

	"github.com/NiyonkuruJD/home_ledger_app/internal/core/domain"
	"github.com/NiyonkuruJD/home_ledger_app/internal/dto"
)

// TransferSvcFacade exposes inter-account transfer operations, scoped to the
// requesting user.
type TransferSvcFacade interface {
	// ExecuteTransfer validates and applies a transfer: debit source, credit
	// destination, atomically.
	ExecuteTransfer(ctx context.Context, req dto.CreateTransferRequest, userID string) (*domain.Transfer, error)

	// CancelTransfer reverses an executed transfer exactly once.
	CancelTransfer(ctx context.Context, transferID string, userID string) (*domain.Transfer, error)

	// GetTransferByID retrieves one of the user's transfers.
	GetTransferByID(ctx context.Context, transferID string, userID string) (*domain.Transfer, error)

	// ListTransfers retrieves a paginated list of the user's transfers.
	ListTransfers(ctx context.Context, userID string, params dto.ListTransfersParams) (*dto.ListTransfersResponse, error)
}
