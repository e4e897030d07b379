package repositories

import (
	"context"

	"github.com/NiyonkuruJD/home_ledger_app/internal/core/domain"
)

// TransferReader defines read operations for transfer data
type TransferReader interface {
	// FindTransferByID retrieves a transfer by its unique identifier.
	FindTransferByID(ctx context.Context, transferID string) (*domain.Transfer, error)

	// ListTransfersByOwner retrieves a paginated list of a user's transfers
	// using token-based pagination.
	ListTransfersByOwner(ctx context.Context, ownerUserID string, limit int, nextToken *string) ([]domain.Transfer, *string, error)

	// ListExecutedTransfersByAccount retrieves every EXECUTED transfer that
	// touches the account as source or destination. Balance verification needs
	// these alongside the movement history.
	ListExecutedTransfersByAccount(ctx context.Context, accountID string) ([]domain.Transfer, error)
}

// TransferWriter defines write operations for transfer data. Both operations
// persist the transfer row and both account balances as one atomic unit,
// locking the accounts in stable id order.
type TransferWriter interface {
	// SaveTransfer persists an executed transfer and both updated accounts.
	SaveTransfer(ctx context.Context, transfer domain.Transfer, source domain.Account, dest domain.Account) error

	// ReverseTransfer persists a cancellation and both restored accounts.
	ReverseTransfer(ctx context.Context, transfer domain.Transfer, source domain.Account, dest domain.Account) error
}

// TransferRepositoryFacade combines all transfer-related repository interfaces
type TransferRepositoryFacade interface {
	TransferReader
	TransferWriter
}

// TransferRepositoryWithTx extends TransferRepositoryFacade with transaction capabilities
type TransferRepositoryWithTx interface {
	TransferRepositoryFacade
	TransactionManager
}
