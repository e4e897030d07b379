package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/NiyonkuruJD/home_ledger_app/internal/apperrors"
	"github.com/NiyonkuruJD/home_ledger_app/internal/core/domain"
	"github.com/NiyonkuruJD/home_ledger_app/internal/core/services"
	"github.com/NiyonkuruJD/home_ledger_app/internal/dto"
)

func transferFixtures(owner string) (*domain.Account, *domain.Account) {
	source := &domain.Account{
		AccountID:      "acc-src",
		OwnerUserID:    owner,
		CurrencyCode:   "EUR",
		OpeningBalance: decimal.RequireFromString("500.00"),
		CurrentBalance: decimal.RequireFromString("500.00"),
		IsActive:       true,
	}
	dest := &domain.Account{
		AccountID:      "acc-dst",
		OwnerUserID:    owner,
		CurrencyCode:   "EUR",
		CurrentBalance: decimal.RequireFromString("20.00"),
		IsActive:       true,
	}
	return source, dest
}

func TestExecuteTransferMovesFunds(t *testing.T) {
	transferRepo := new(MockTransferRepository)
	accountRepo := new(MockAccountRepository)
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	svc := services.NewTransferService(transferRepo, accountRepo, fixedClock{t: now})
	ctx := context.Background()

	source, dest := transferFixtures("user-1")
	accountRepo.On("FindAccountByID", ctx, "acc-src").Return(source, nil)
	accountRepo.On("FindAccountByID", ctx, "acc-dst").Return(dest, nil)
	transferRepo.On("SaveTransfer", ctx, mock.AnythingOfType("domain.Transfer"), mock.AnythingOfType("domain.Account"), mock.AnythingOfType("domain.Account")).Return(nil)

	transfer, err := svc.ExecuteTransfer(ctx, dto.CreateTransferRequest{
		SourceAccountID:      "acc-src",
		DestinationAccountID: "acc-dst",
		Amount:               "100.00",
	}, "user-1")
	require.NoError(t, err)

	assert.Equal(t, domain.TransferExecuted, transfer.Status)
	assert.Equal(t, "EUR", transfer.CurrencyCode)
	assert.Equal(t, "400.00", source.CurrentBalance.StringFixed(2))
	assert.Equal(t, "120.00", dest.CurrentBalance.StringFixed(2))

	// The repository receives the already-mutated accounts for the atomic write.
	savedSource := transferRepo.Calls[0].Arguments.Get(2).(domain.Account)
	savedDest := transferRepo.Calls[0].Arguments.Get(3).(domain.Account)
	assert.Equal(t, "400.00", savedSource.CurrentBalance.StringFixed(2))
	assert.Equal(t, "120.00", savedDest.CurrentBalance.StringFixed(2))
}

func TestExecuteTransferValidation(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(source, dest *domain.Account, req *dto.CreateTransferRequest)
		wantErr error
	}{
		{
			name: "insufficient source balance",
			mutate: func(source, dest *domain.Account, req *dto.CreateTransferRequest) {
				req.Amount = "600.00"
			},
			wantErr: apperrors.ErrValidation,
		},
		{
			name: "currency mismatch",
			mutate: func(source, dest *domain.Account, req *dto.CreateTransferRequest) {
				dest.CurrencyCode = "USD"
			},
			wantErr: apperrors.ErrValidation,
		},
		{
			name: "same account both sides",
			mutate: func(source, dest *domain.Account, req *dto.CreateTransferRequest) {
				req.DestinationAccountID = "acc-src"
			},
			wantErr: apperrors.ErrValidation,
		},
		{
			name: "malformed amount",
			mutate: func(source, dest *domain.Account, req *dto.CreateTransferRequest) {
				req.Amount = "10.999"
			},
			wantErr: apperrors.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transferRepo := new(MockTransferRepository)
			accountRepo := new(MockAccountRepository)
			svc := services.NewTransferService(transferRepo, accountRepo, fixedClock{t: now})

			source, dest := transferFixtures("user-1")
			req := dto.CreateTransferRequest{
				SourceAccountID:      "acc-src",
				DestinationAccountID: "acc-dst",
				Amount:               "100.00",
			}
			tt.mutate(source, dest, &req)

			accountRepo.On("FindAccountByID", ctx, "acc-src").Return(source, nil).Maybe()
			accountRepo.On("FindAccountByID", ctx, "acc-dst").Return(dest, nil).Maybe()

			_, err := svc.ExecuteTransfer(ctx, req, "user-1")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			transferRepo.AssertNotCalled(t, "SaveTransfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestExecuteTransferObscuresForeignAccount(t *testing.T) {
	transferRepo := new(MockTransferRepository)
	accountRepo := new(MockAccountRepository)
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	svc := services.NewTransferService(transferRepo, accountRepo, fixedClock{t: now})
	ctx := context.Background()

	source, _ := transferFixtures("someone-else")
	accountRepo.On("FindAccountByID", ctx, "acc-src").Return(source, nil)

	_, err := svc.ExecuteTransfer(ctx, dto.CreateTransferRequest{
		SourceAccountID:      "acc-src",
		DestinationAccountID: "acc-dst",
		Amount:               "10.00",
	}, "user-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCancelTransferRoundTripRestoresBalances(t *testing.T) {
	transferRepo := new(MockTransferRepository)
	accountRepo := new(MockAccountRepository)
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	svc := services.NewTransferService(transferRepo, accountRepo, fixedClock{t: now})
	ctx := context.Background()

	source, dest := transferFixtures("user-1")
	accountRepo.On("FindAccountByID", ctx, "acc-src").Return(source, nil)
	accountRepo.On("FindAccountByID", ctx, "acc-dst").Return(dest, nil)
	transferRepo.On("SaveTransfer", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	transferRepo.On("ReverseTransfer", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	transfer, err := svc.ExecuteTransfer(ctx, dto.CreateTransferRequest{
		SourceAccountID:      "acc-src",
		DestinationAccountID: "acc-dst",
		Amount:               "100.00",
	}, "user-1")
	require.NoError(t, err)

	transferRepo.On("FindTransferByID", ctx, transfer.TransferID).Return(transfer, nil)

	reversed, err := svc.CancelTransfer(ctx, transfer.TransferID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, domain.TransferReversed, reversed.Status)

	// Execute then cancel is the identity on both balances.
	assert.Equal(t, "500.00", source.CurrentBalance.StringFixed(2))
	assert.Equal(t, "20.00", dest.CurrentBalance.StringFixed(2))
}

func TestCancelTransferTwiceIsStateConflict(t *testing.T) {
	transferRepo := new(MockTransferRepository)
	accountRepo := new(MockAccountRepository)
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	svc := services.NewTransferService(transferRepo, accountRepo, fixedClock{t: now})
	ctx := context.Background()

	source, dest := transferFixtures("user-1")
	transfer := &domain.Transfer{
		TransferID:           "tr-1",
		OwnerUserID:          "user-1",
		SourceAccountID:      "acc-src",
		DestinationAccountID: "acc-dst",
		Amount:               decimal.RequireFromString("100.00"),
		CurrencyCode:         "EUR",
		Status:               domain.TransferReversed,
	}
	transferRepo.On("FindTransferByID", ctx, "tr-1").Return(transfer, nil)
	accountRepo.On("FindAccountByID", ctx, "acc-src").Return(source, nil)
	accountRepo.On("FindAccountByID", ctx, "acc-dst").Return(dest, nil)

	_, err := svc.CancelTransfer(ctx, "tr-1", "user-1")
	assert.ErrorIs(t, err, apperrors.ErrStateConflict)
	transferRepo.AssertNotCalled(t, "ReverseTransfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCancelPendingTransferIsStateConflict(t *testing.T) {
	transferRepo := new(MockTransferRepository)
	accountRepo := new(MockAccountRepository)
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	svc := services.NewTransferService(transferRepo, accountRepo, fixedClock{t: now})
	ctx := context.Background()

	source, dest := transferFixtures("user-1")
	transfer := &domain.Transfer{
		TransferID:           "tr-1",
		OwnerUserID:          "user-1",
		SourceAccountID:      "acc-src",
		DestinationAccountID: "acc-dst",
		Amount:               decimal.RequireFromString("100.00"),
		CurrencyCode:         "EUR",
		Status:               domain.TransferPending,
	}
	transferRepo.On("FindTransferByID", ctx, "tr-1").Return(transfer, nil)
	accountRepo.On("FindAccountByID", ctx, "acc-src").Return(source, nil)
	accountRepo.On("FindAccountByID", ctx, "acc-dst").Return(dest, nil)

	_, err := svc.CancelTransfer(ctx, "tr-1", "user-1")
	assert.ErrorIs(t, err, apperrors.ErrStateConflict)
}
