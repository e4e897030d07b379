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
	portssvc "github.com/NiyonkuruJD/home_ledger_app/internal/core/ports/services"
	"github.com/NiyonkuruJD/home_ledger_app/internal/core/services"
	"github.com/NiyonkuruJD/home_ledger_app/internal/dto"
)

type accountTestEnv struct {
	accountRepo  *MockAccountRepository
	currencyRepo *MockCurrencyRepository
	movementRepo *MockMovementRepository
	transferRepo *MockTransferRepository
	svc          portssvc.AccountSvcFacade
	now          time.Time
}

func newAccountTestEnv() *accountTestEnv {
	env := &accountTestEnv{
		accountRepo:  new(MockAccountRepository),
		currencyRepo: new(MockCurrencyRepository),
		movementRepo: new(MockMovementRepository),
		transferRepo: new(MockTransferRepository),
		now:          time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
	}
	env.svc = services.NewAccountService(env.accountRepo, env.currencyRepo, env.movementRepo, env.transferRepo, fixedClock{t: env.now})
	return env
}

func TestCreateAccountSetsOpeningBalance(t *testing.T) {
	env := newAccountTestEnv()
	ctx := context.Background()

	env.currencyRepo.On("FindCurrencyByCode", ctx, "EUR").Return(&domain.Currency{CurrencyCode: "EUR"}, nil)
	env.accountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil)

	account, err := env.svc.CreateAccount(ctx, dto.CreateAccountRequest{
		Name:           "Main wallet",
		Kind:           "CASH",
		CurrencyCode:   "EUR",
		OpeningBalance: "150.00",
	}, "user-1")
	require.NoError(t, err)

	assert.Equal(t, "150.00", account.OpeningBalance.StringFixed(2))
	assert.Equal(t, "150.00", account.CurrentBalance.StringFixed(2))
	assert.True(t, account.IsActive)
	assert.Equal(t, "user-1", account.OwnerUserID)
}

func TestCreateAccountRejectsUnknownCurrency(t *testing.T) {
	env := newAccountTestEnv()
	ctx := context.Background()

	env.currencyRepo.On("FindCurrencyByCode", ctx, "XXX").Return(nil, apperrors.ErrNotFound)

	_, err := env.svc.CreateAccount(ctx, dto.CreateAccountRequest{
		Name:         "Weird wallet",
		Kind:         "CASH",
		CurrencyCode: "XXX",
	}, "user-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	env.accountRepo.AssertNotCalled(t, "SaveAccount", mock.Anything, mock.Anything)
}

func TestGetAccountObscuresForeignOwnership(t *testing.T) {
	env := newAccountTestEnv()
	ctx := context.Background()

	account := &domain.Account{AccountID: "acc-1", OwnerUserID: "someone-else"}
	env.accountRepo.On("FindAccountByID", ctx, "acc-1").Return(account, nil)

	_, err := env.svc.GetAccountByID(ctx, "acc-1", "user-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestVerifyAccountBalanceConsistent(t *testing.T) {
	env := newAccountTestEnv()
	ctx := context.Background()

	account := &domain.Account{
		AccountID:      "acc-1",
		OwnerUserID:    "user-1",
		OpeningBalance: decimal.RequireFromString("100.00"),
		CurrentBalance: decimal.RequireFromString("180.00"),
	}
	movements := []domain.Movement{
		{MovementID: "m1", AccountID: "acc-1", Variant: domain.MovementIncome, EffectiveAmount: decimal.RequireFromString("200.00")},
		{MovementID: "m2", AccountID: "acc-1", Variant: domain.MovementExpense, EffectiveAmount: decimal.RequireFromString("70.00")},
	}
	transfers := []domain.Transfer{
		{TransferID: "t1", SourceAccountID: "acc-1", DestinationAccountID: "acc-2", Amount: decimal.RequireFromString("50.00"), Status: domain.TransferExecuted},
	}

	env.accountRepo.On("FindAccountByID", ctx, "acc-1").Return(account, nil)
	env.movementRepo.On("FindMovementsByAccountID", ctx, "acc-1").Return(movements, nil)
	env.transferRepo.On("ListExecutedTransfersByAccount", ctx, "acc-1").Return(transfers, nil)

	// 100 + 200 - 70 - 50 = 180, matching the stored balance.
	balance, err := env.svc.VerifyAccountBalance(ctx, "acc-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, "180.00", balance.StringFixed(2))
}

func TestVerifyAccountBalanceDetectsDivergence(t *testing.T) {
	env := newAccountTestEnv()
	ctx := context.Background()

	account := &domain.Account{
		AccountID:      "acc-1",
		OwnerUserID:    "user-1",
		OpeningBalance: decimal.RequireFromString("100.00"),
		CurrentBalance: decimal.RequireFromString("999.99"), // corrupted
	}
	movements := []domain.Movement{
		{MovementID: "m1", AccountID: "acc-1", Variant: domain.MovementIncome, EffectiveAmount: decimal.RequireFromString("200.00")},
	}

	env.accountRepo.On("FindAccountByID", ctx, "acc-1").Return(account, nil)
	env.movementRepo.On("FindMovementsByAccountID", ctx, "acc-1").Return(movements, nil)
	env.transferRepo.On("ListExecutedTransfersByAccount", ctx, "acc-1").Return([]domain.Transfer{}, nil)

	_, err := env.svc.VerifyAccountBalance(ctx, "acc-1", "user-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInconsistency)
}

func TestDeleteAccountWithMovementsIsBlocked(t *testing.T) {
	env := newAccountTestEnv()
	ctx := context.Background()

	account := &domain.Account{AccountID: "acc-1", OwnerUserID: "user-1"}
	env.accountRepo.On("FindAccountByID", ctx, "acc-1").Return(account, nil)
	env.movementRepo.On("CountMovementsByAccountID", ctx, "acc-1").Return(int64(3), nil)

	err := env.svc.DeleteAccount(ctx, "acc-1", "user-1")
	assert.ErrorIs(t, err, apperrors.ErrStateConflict)
	env.accountRepo.AssertNotCalled(t, "DeleteAccount", mock.Anything, mock.Anything)
}
