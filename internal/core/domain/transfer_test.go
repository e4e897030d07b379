package domain_test

import (
	"testing"
	"time"

	"github.com/NiyonkuruJD/home_ledger_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeAccounts() (*domain.Account, *domain.Account) {
	source := &domain.Account{
		AccountID:      "acc_a",
		OwnerUserID:    "user_1",
		CurrencyCode:   "EUR",
		CurrentBalance: amt("100.00"),
	}
	dest := &domain.Account{
		AccountID:      "acc_b",
		OwnerUserID:    "user_1",
		CurrencyCode:   "EUR",
		CurrentBalance: amt("0.00"),
	}
	return source, dest
}

func makeTransfer(amount string) *domain.Transfer {
	return &domain.Transfer{
		TransferID:           "tr_1",
		OwnerUserID:          "user_1",
		SourceAccountID:      "acc_a",
		DestinationAccountID: "acc_b",
		Amount:               amt(amount),
		CurrencyCode:         "EUR",
		Status:               domain.TransferPending,
	}
}

func TestTransfer_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Transfer, *domain.Account, *domain.Account)
		ok     bool
	}{
		{name: "valid", mutate: func(*domain.Transfer, *domain.Account, *domain.Account) {}, ok: true},
		{name: "zero amount", mutate: func(tr *domain.Transfer, _, _ *domain.Account) { tr.Amount = amt("0") }},
		{name: "same account", mutate: func(tr *domain.Transfer, _, _ *domain.Account) { tr.DestinationAccountID = tr.SourceAccountID }},
		{name: "foreign source account", mutate: func(_ *domain.Transfer, s, _ *domain.Account) { s.OwnerUserID = "user_2" }},
		{name: "currency mismatch on destination", mutate: func(_ *domain.Transfer, _, d *domain.Account) { d.CurrencyCode = "USD" }},
		{name: "insufficient source balance", mutate: func(tr *domain.Transfer, _, _ *domain.Account) { tr.Amount = amt("100.01") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source, dest := makeAccounts()
			tr := makeTransfer("50.00")
			tt.mutate(tr, source, dest)
			err := tr.Validate(source, dest)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, domain.ErrInvalidTransfer)
			}
		})
	}
}

func TestTransfer_ExecuteCancelRoundTrip(t *testing.T) {
	now := time.Now()
	source, dest := makeAccounts()
	tr := makeTransfer("100.00")

	require.NoError(t, tr.Execute(source, dest, now))
	assert.Equal(t, "0.00", domain.FormatAmount(source.CurrentBalance))
	assert.Equal(t, "100.00", domain.FormatAmount(dest.CurrentBalance))
	assert.Equal(t, domain.TransferExecuted, tr.Status)

	require.NoError(t, tr.Cancel(source, dest, now))
	assert.Equal(t, "100.00", domain.FormatAmount(source.CurrentBalance))
	assert.Equal(t, "0.00", domain.FormatAmount(dest.CurrentBalance))
	assert.Equal(t, domain.TransferReversed, tr.Status)
}

func TestTransfer_ExecuteTwice(t *testing.T) {
	now := time.Now()
	source, dest := makeAccounts()
	tr := makeTransfer("10.00")

	require.NoError(t, tr.Execute(source, dest, now))
	assert.ErrorIs(t, tr.Execute(source, dest, now), domain.ErrInvalidTransfer)
}

func TestTransfer_CancelBeforeExecute(t *testing.T) {
	now := time.Now()
	source, dest := makeAccounts()
	tr := makeTransfer("10.00")

	assert.ErrorIs(t, tr.Cancel(source, dest, now), domain.ErrTransferNotExecuted)
}

func TestTransfer_DoubleCancel(t *testing.T) {
	now := time.Now()
	source, dest := makeAccounts()
	tr := makeTransfer("10.00")

	require.NoError(t, tr.Execute(source, dest, now))
	require.NoError(t, tr.Cancel(source, dest, now))
	assert.ErrorIs(t, tr.Cancel(source, dest, now), domain.ErrTransferAlreadyReversed)

	// Balances unchanged by the failed second cancel.
	assert.Equal(t, "100.00", domain.FormatAmount(source.CurrentBalance))
	assert.Equal(t, "0.00", domain.FormatAmount(dest.CurrentBalance))
}

func TestTransfer_ValidationFailureLeavesStateUntouched(t *testing.T) {
	now := time.Now()
	source, dest := makeAccounts()
	tr := makeTransfer("500.00") // more than the source holds

	err := tr.Execute(source, dest, now)
	assert.ErrorIs(t, err, domain.ErrInvalidTransfer)
	assert.Equal(t, domain.TransferPending, tr.Status)
	assert.Equal(t, "100.00", domain.FormatAmount(source.CurrentBalance))
	assert.Equal(t, "0.00", domain.FormatAmount(dest.CurrentBalance))
}
