package services

import (
	"context"

	"github.com/NiyonkuruJD/home_ledger_app/internal/core/domain"
	"github.com/NiyonkuruJD/home_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves one of the user's accounts.
	GetAccountByID(ctx context.Context, accountID string, userID string) (*domain.Account, error)

	// ListAccounts retrieves all the user's accounts.
	ListAccounts(ctx context.Context, userID string) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount persists a new account with its opening balance.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error)

	// UpdateAccount updates an existing account's details. Balances are never
	// writable here; only movements, payments and transfers touch them.
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error)

	// DeactivateAccount marks an account as inactive.
	DeactivateAccount(ctx context.Context, accountID string, userID string) error

	// DeleteAccount removes an account with no linked movements.
	DeleteAccount(ctx context.Context, accountID string, userID string) error
}

// AccountCalculatorSvc defines balance operations for account data
type AccountCalculatorSvc interface {
	// GetAccountBalance returns the incrementally maintained current balance.
	GetAccountBalance(ctx context.Context, accountID string, userID string) (decimal.Decimal, error)

	// VerifyAccountBalance recomputes the balance from movement history and
	// compares it with the stored value, returning apperrors.ErrInconsistency
	// on divergence.
	VerifyAccountBalance(ctx context.Context, accountID string, userID string) (decimal.Decimal, error)
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
	AccountCalculatorSvc
}
